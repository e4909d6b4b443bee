package services

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/savekit/internal/adapters/driven/editor/process"
	"github.com/custodia-labs/savekit/internal/adapters/driven/savecodec/mmse"
	"github.com/custodia-labs/savekit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/savekit/internal/core/domain"
)

// sampleDoc returns a document with compact payloads, so a parse of its
// text form encodes back to the same bytes.
func sampleDoc() *domain.SaveDocument {
	return &domain.SaveDocument{
		Version: mmse.Version,
		Info:    json.RawMessage(`{"name":"hero","playtime":3600}`),
		Data:    json.RawMessage(`{"gold":120,"inventory":["sword","potion","potion"],"flags":{"intro":true}}`),
	}
}

// spacedDoc returns a document whose payloads carry insignificant
// whitespace, as a hand-written or third-party tool might produce.
func spacedDoc() *domain.SaveDocument {
	return &domain.SaveDocument{
		Version: mmse.Version,
		Info:    json.RawMessage(`{"a": 1, "name": "hero"}`),
		Data:    json.RawMessage(`{"b": [1, 2],  "nested": {"x": true}}`),
	}
}

// storedSave lays out a save with uncompressed frames holding the payloads
// byte for byte.
func storedSave(t *testing.T, info, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, v := range []int32{mmse.Magic, mmse.Version, int32(len(info)), int32(len(info)), int32(len(data)), int32(len(data))} {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}
	buf.WriteString(info)
	buf.WriteString(data)
	return buf.Bytes()
}

func encodeSample(t *testing.T) []byte {
	t.Helper()
	raw, err := mmse.New().Encode(sampleDoc())
	require.NoError(t, err)
	return raw
}

// fakeLauncher tokenises like the real launcher but edits the memory
// filesystem instead of spawning a process.
type fakeLauncher struct {
	files    *memory.Files
	edit     func(text []byte) []byte
	exitCode int
	runErr   error

	runs     int
	lastPath string
}

func newFakeLauncher(files *memory.Files) *fakeLauncher {
	return &fakeLauncher{files: files}
}

func (l *fakeLauncher) Prepare(cmd domain.EditorCommand) (domain.Invocation, error) {
	return process.NewLauncher(nil, nil, nil).Prepare(cmd)
}

func (l *fakeLauncher) Run(_ context.Context, _ domain.Invocation, path string) (int, error) {
	l.runs++
	l.lastPath = path
	if l.runErr != nil {
		return -1, l.runErr
	}
	if l.edit != nil {
		text, ok := l.files.Get(path)
		if !ok {
			return -1, domain.ErrEditorInvocation
		}
		if err := l.files.WriteFile(path, l.edit(text)); err != nil {
			return -1, err
		}
	}
	return l.exitCode, nil
}

// perturbingCodec appends a byte to every encoding, so resaves never match.
type perturbingCodec struct {
	*mmse.Codec
}

func (c perturbingCodec) Encode(doc *domain.SaveDocument) ([]byte, error) {
	raw, err := c.Codec.Encode(doc)
	if err != nil {
		return nil, err
	}
	return append(raw, 0xff), nil
}

func (c perturbingCodec) Name() string {
	return "perturbing"
}
