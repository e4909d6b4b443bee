// Package stream implements driven.StreamResolver over standard streams and
// local files.
package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/custodia-labs/savekit/internal/core/domain"
	"github.com/custodia-labs/savekit/internal/core/ports/driven"
	"github.com/custodia-labs/savekit/internal/logger"
)

// Ensure Resolver implements the interface.
var _ driven.StreamResolver = (*Resolver)(nil)

// Resolver opens buffered streams. "-" maps to the standard streams it was
// constructed with; anything else is a file path.
type Resolver struct {
	stdin  io.Reader
	stdout io.Writer
}

// NewResolver creates a resolver bound to the given standard streams.
func NewResolver(stdin io.Reader, stdout io.Writer) *Resolver {
	return &Resolver{stdin: stdin, stdout: stdout}
}

// OpenReader opens token for reading.
func (r *Resolver) OpenReader(token string) (io.ReadCloser, error) {
	if token == driven.StdStream {
		if isTerminal(r.stdin) {
			logger.Warn("reading from an interactive terminal; pipe a file or pass --input")
		}
		logger.Debug("stream: reading standard input")
		return io.NopCloser(bufio.NewReader(r.stdin)), nil
	}

	f, err := os.Open(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	logger.Debug("stream: reading %s", token)
	return &fileReader{Reader: bufio.NewReader(f), file: f}, nil
}

// OpenWriter opens token for writing, creating or truncating a file.
func (r *Resolver) OpenWriter(token string) (io.WriteCloser, error) {
	if token == driven.StdStream {
		logger.Debug("stream: writing standard output")
		return &bufferedWriter{Writer: bufio.NewWriter(r.stdout)}, nil
	}

	f, err := os.OpenFile(token, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	logger.Debug("stream: writing %s", token)
	return &bufferedWriter{Writer: bufio.NewWriter(f), file: f}, nil
}

// fileReader is a buffered reader that closes its file.
type fileReader struct {
	*bufio.Reader
	file *os.File
}

func (r *fileReader) Close() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return nil
}

// bufferedWriter flushes on Close and closes its file, if any.
type bufferedWriter struct {
	*bufio.Writer
	file   *os.File
	closed bool
}

func (w *bufferedWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.Flush()
	if w.file != nil {
		err = errors.Join(err, w.file.Close())
	}
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
