// Package jsontext implements driven.TextCodec as pretty-printed JSON.
//
// The text form of a save is a single object:
//
//	{
//	  "version": 4,
//	  "info": { ... },
//	  "data": { ... }
//	}
//
// Parsing is strict: unknown fields, missing fields and trailing content
// are rejected with a *domain.TextError pointing at the offending line.
package jsontext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/savekit/internal/core/domain"
	"github.com/custodia-labs/savekit/internal/core/ports/driven"
)

// Ensure Bridge implements the interface.
var _ driven.TextCodec = (*Bridge)(nil)

// textDocument mirrors domain.SaveDocument with presence tracking.
type textDocument struct {
	Version *int32          `json:"version"`
	Info    json.RawMessage `json:"info"`
	Data    json.RawMessage `json:"data"`
}

// Bridge renders and parses the JSON text representation.
type Bridge struct {
	indent string
}

// New creates a bridge that indents nested values by indent spaces.
// Zero produces compact single-line output.
func New(indent int) *Bridge {
	if indent < 0 {
		indent = 0
	}
	return &Bridge{indent: strings.Repeat(" ", indent)}
}

// Extension is the suffix editors use to pick JSON highlighting.
func (b *Bridge) Extension() string {
	return ".json"
}

// ToText writes doc as indented JSON followed by a newline.
func (b *Bridge) ToText(w io.Writer, doc *domain.SaveDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", domain.ErrEncode)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if b.indent != "" {
		enc.SetIndent("", b.indent)
	}
	version := doc.Version
	if err := enc.Encode(textDocument{Version: &version, Info: doc.Info, Data: doc.Data}); err != nil {
		return fmt.Errorf("%w: render text: %v", domain.ErrEncode, err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: write text: %v", domain.ErrIO, err)
	}
	return nil
}

// FromText parses a text representation. Payloads are stored compacted.
func (b *Bridge) FromText(r io.Reader) (*domain.SaveDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read text: %v", domain.ErrIO, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var td textDocument
	if err := dec.Decode(&td); err != nil {
		return nil, diagnose(data, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		idx := skipSpace(data, int(dec.InputOffset()))
		return nil, at(data, idx, "unexpected content after document")
	}

	if td.Version == nil {
		return nil, &domain.TextError{Message: `missing field "version"`}
	}
	info, err := compactPayload(td.Info)
	if err != nil {
		return nil, &domain.TextError{Message: `missing field "info"`}
	}
	payload, err := compactPayload(td.Data)
	if err != nil {
		return nil, &domain.TextError{Message: `missing field "data"`}
	}

	return &domain.SaveDocument{
		Version: *td.Version,
		Info:    info,
		Data:    payload,
	}, nil
}

// compactPayload strips insignificant whitespace. Absent and null
// payloads are rejected.
func compactPayload(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errors.New("missing")
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// diagnose converts a decoder error into a located TextError.
func diagnose(data []byte, err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, io.EOF):
		return &domain.TextError{Message: "empty document"}
	case errors.Is(err, io.ErrUnexpectedEOF):
		return at(data, len(data)-1, "unexpected end of input")
	case errors.As(err, &syntaxErr):
		return at(data, int(syntaxErr.Offset)-1, syntaxErr.Error())
	case errors.As(err, &typeErr):
		msg := fmt.Sprintf("cannot use JSON %s as %s", typeErr.Value, typeErr.Type)
		if typeErr.Field != "" {
			msg = fmt.Sprintf("field %q: %s", typeErr.Field, msg)
		}
		return at(data, int(typeErr.Offset)-1, msg)
	}

	msg := err.Error()
	if name, ok := strings.CutPrefix(msg, "json: unknown field "); ok {
		if unquoted, uerr := strconv.Unquote(name); uerr == nil {
			name = unquoted
		}
		msg = fmt.Sprintf("unknown field %q", name)
		if idx := bytes.Index(data, []byte(strconv.Quote(name))); idx >= 0 {
			return at(data, idx, msg)
		}
	}
	return &domain.TextError{Message: msg}
}

// at builds a TextError for the byte at idx. Columns count bytes.
func at(data []byte, idx int, msg string) *domain.TextError {
	if len(data) == 0 {
		return &domain.TextError{Message: msg}
	}
	idx = max(0, min(idx, len(data)-1))

	lineStart := bytes.LastIndexByte(data[:idx], '\n') + 1
	lineEnd := len(data)
	if n := bytes.IndexByte(data[lineStart:], '\n'); n >= 0 {
		lineEnd = lineStart + n
	}

	line := bytes.Count(data[:idx], []byte{'\n'}) + 1
	column := idx - lineStart + 1
	source := strings.TrimRight(string(data[lineStart:lineEnd]), "\r")
	if idx >= lineEnd {
		// idx sits on the newline itself; point just past the text.
		column = len(source) + 1
	}

	return &domain.TextError{
		Line:    line,
		Column:  column,
		Message: msg,
		Source:  source,
	}
}

func skipSpace(data []byte, idx int) int {
	for idx < len(data) {
		switch data[idx] {
		case ' ', '\t', '\r', '\n':
			idx++
		default:
			return idx
		}
	}
	return idx
}
