package mmse

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pierrec/lz4"

	"github.com/custodia-labs/savekit/internal/core/domain"
	"github.com/custodia-labs/savekit/internal/core/ports/driven"
	"github.com/custodia-labs/savekit/internal/logger"
)

// Ensure Codec implements the interface.
var _ driven.SaveCodec = (*Codec)(nil)

const (
	// Magic is the magic number for Motorsport Manager save files.
	Magic int32 = 0x73326d6d
	// Version is the only supported format version.
	Version int32 = 0x00000004

	// maxFrameSize bounds declared frame sizes so a corrupt header cannot
	// trigger a huge allocation.
	maxFrameSize = 1 << 30

	hashTableSize = 1 << 16
)

var errInvalidJSON = errors.New("invalid JSON")

// frameHeader holds the sizes that precede the frame bytes.
type frameHeader struct {
	SizeCom int32
	SizeRaw int32
}

func (h frameHeader) stored() bool {
	return h.SizeCom == h.SizeRaw
}

// Codec is the lz4-framed JSON save codec. It is stateless.
type Codec struct{}

// New creates a codec.
func New() *Codec {
	return &Codec{}
}

// Name identifies the format in logs.
func (c *Codec) Name() string {
	return "mmse"
}

// Decode parses a save file. Payloads are returned compacted, so a save
// whose JSON carries insignificant whitespace does not resave identically.
func (c *Codec) Decode(data []byte) (*domain.SaveDocument, error) {
	r := bytes.NewReader(data)

	magic, err := readInt32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read magic number: %v", domain.ErrDecode, err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: incorrect magic number 0x%08x", domain.ErrDecode, uint32(magic))
	}

	version, err := readInt32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read version number: %v", domain.ErrDecode, err)
	}
	if version != Version {
		return nil, fmt.Errorf("%w: unsupported version 0x%x", domain.ErrDecode, version)
	}

	info, err := readFrameHeader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: info frame sizes: %v", domain.ErrDecode, err)
	}
	dataHdr, err := readFrameHeader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: data frame sizes: %v", domain.ErrDecode, err)
	}

	infoPayload, err := readFrame(r, info)
	if err != nil {
		return nil, fmt.Errorf("%w: info frame: %v", domain.ErrDecode, err)
	}
	dataPayload, err := readFrame(r, dataHdr)
	if err != nil {
		return nil, fmt.Errorf("%w: data frame: %v", domain.ErrDecode, err)
	}

	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after data frame", domain.ErrDecode, r.Len())
	}
	infoPayload, err = canonical(infoPayload)
	if err != nil {
		return nil, fmt.Errorf("%w: info payload is not valid JSON", domain.ErrDecode)
	}
	dataPayload, err = canonical(dataPayload)
	if err != nil {
		return nil, fmt.Errorf("%w: data payload is not valid JSON", domain.ErrDecode)
	}

	logger.Debug("mmse: decoded info %d->%d bytes, data %d->%d bytes",
		info.SizeCom, info.SizeRaw, dataHdr.SizeCom, dataHdr.SizeRaw)

	return &domain.SaveDocument{
		Version: version,
		Info:    infoPayload,
		Data:    dataPayload,
	}, nil
}

// Encode serialises a document with compacted payloads. Output is
// deterministic for a given document.
func (c *Codec) Encode(doc *domain.SaveDocument) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrEncode)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: unsupported version 0x%x", domain.ErrEncode, doc.Version)
	}
	info, err := canonical(doc.Info)
	if err != nil {
		return nil, fmt.Errorf("%w: info payload is not valid JSON", domain.ErrEncode)
	}
	data, err := canonical(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: data payload is not valid JSON", domain.ErrEncode)
	}

	infoFrame, infoHdr, err := compress(info)
	if err != nil {
		return nil, fmt.Errorf("%w: compress info: %v", domain.ErrEncode, err)
	}
	dataFrame, dataHdr, err := compress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: compress data: %v", domain.ErrEncode, err)
	}

	var buf bytes.Buffer
	buf.Grow(24 + len(infoFrame) + len(dataFrame))
	for _, v := range []int32{Magic, doc.Version, infoHdr.SizeCom, infoHdr.SizeRaw, dataHdr.SizeCom, dataHdr.SizeRaw} {
		// Writes to a bytes.Buffer cannot fail.
		_ = writeInt32(&buf, v)
	}
	buf.Write(infoFrame)
	buf.Write(dataFrame)

	logger.Debug("mmse: encoded info %d->%d bytes, data %d->%d bytes",
		infoHdr.SizeRaw, infoHdr.SizeCom, dataHdr.SizeRaw, dataHdr.SizeCom)

	return buf.Bytes(), nil
}

// canonical compacts a JSON payload. Compacted payloads are the document
// model shared with the text bridge, which also compacts on parse.
func canonical(payload []byte) ([]byte, error) {
	if !json.Valid(payload) {
		return nil, errInvalidJSON
	}
	var buf bytes.Buffer
	buf.Grow(len(payload))
	if err := json.Compact(&buf, payload); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// readInt32 reads a little-endian int32.
func readInt32(r io.Reader) (int32, error) {
	var v int32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// writeInt32 writes a little-endian int32.
func writeInt32(w io.Writer, v int32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func readFrameHeader(r io.Reader) (frameHeader, error) {
	var h frameHeader
	var err error
	if h.SizeCom, err = readInt32(r); err != nil {
		return h, fmt.Errorf("read compressed size: %w", err)
	}
	if h.SizeRaw, err = readInt32(r); err != nil {
		return h, fmt.Errorf("read raw size: %w", err)
	}
	if h.SizeCom < 0 || h.SizeRaw < 0 || h.SizeCom > maxFrameSize || h.SizeRaw > maxFrameSize {
		return h, fmt.Errorf("invalid sizes %d/%d", h.SizeCom, h.SizeRaw)
	}
	return h, nil
}

// readFrame reads one frame and returns its uncompressed payload.
func readFrame(r *bytes.Reader, h frameHeader) ([]byte, error) {
	if int64(h.SizeCom) > int64(r.Len()) {
		return nil, fmt.Errorf("expecting %d bytes, %d remain", h.SizeCom, r.Len())
	}
	frame := make([]byte, h.SizeCom)
	if _, err := io.ReadFull(r, frame); err != nil {
		return nil, err
	}
	if h.stored() {
		return frame, nil
	}

	raw := make([]byte, h.SizeRaw)
	n, err := lz4.UncompressBlock(frame, raw)
	if err != nil {
		return nil, err
	}
	if n != int(h.SizeRaw) {
		return nil, fmt.Errorf("expecting %d bytes, uncompressed %d", h.SizeRaw, n)
	}
	return raw, nil
}

// compress returns the frame bytes for payload. Payloads lz4 cannot shrink
// are stored as-is so that SizeCom == SizeRaw marks them.
func compress(payload []byte) ([]byte, frameHeader, error) {
	if len(payload) > maxFrameSize {
		return nil, frameHeader{}, fmt.Errorf("payload of %d bytes exceeds frame limit", len(payload))
	}
	raw := int32(len(payload))

	dst := make([]byte, lz4.CompressBlockBound(len(payload)))
	n, err := lz4.CompressBlock(payload, dst, make([]int, hashTableSize))
	if err != nil {
		return nil, frameHeader{}, err
	}

	// lz4.CompressBlock returns 0 if the data is not compressible.
	if n == 0 || n >= len(payload) {
		return payload, frameHeader{SizeCom: raw, SizeRaw: raw}, nil
	}
	return dst[:n], frameHeader{SizeCom: int32(n), SizeRaw: raw}, nil
}
