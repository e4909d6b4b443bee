package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent the failure classes a command can surface.
// Adapters wrap them with context; callers test with errors.Is.
var (
	// ErrIO indicates a stream or file could not be opened, read or written.
	ErrIO = errors.New("i/o error")

	// ErrDecode indicates bytes are not a valid save document.
	ErrDecode = errors.New("decode error")

	// ErrMalformedText indicates text does not parse back into a save document.
	ErrMalformedText = errors.New("malformed text")

	// ErrEncode indicates a save document could not be encoded.
	ErrEncode = errors.New("encode error")

	// ErrEditorInvocation indicates the editor command is empty, cannot be
	// tokenised, or the editor process could not be started.
	ErrEditorInvocation = errors.New("editor invocation failed")

	// ErrResaveMismatch indicates decode followed by encode did not
	// reproduce the original bytes.
	ErrResaveMismatch = errors.New("resave did not match")

	// ErrInvalidInput indicates malformed or invalid user input.
	ErrInvalidInput = errors.New("invalid input")
)

// TextError describes where a text representation failed to parse.
// Line and Column are 1-based; zero means the position is unknown.
type TextError struct {
	Line    int
	Column  int
	Message string
	// Source is the offending line of text, without its newline.
	Source string
}

// Error renders the location, message and a caret under the offending column.
func (e *TextError) Error() string {
	var b strings.Builder
	b.WriteString(ErrMalformedText.Error())
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d, column %d", e.Line, e.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Source != "" {
		b.WriteString("\n  ")
		b.WriteString(e.Source)
		if e.Column > 0 {
			b.WriteString("\n  ")
			b.WriteString(strings.Repeat(" ", e.Column-1))
			b.WriteString("^")
		}
	}
	return b.String()
}

// Unwrap makes errors.Is(err, ErrMalformedText) hold.
func (e *TextError) Unwrap() error {
	return ErrMalformedText
}
