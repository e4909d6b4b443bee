package driven

import "io"

// StdStream is the path token that selects standard input or output.
const StdStream = "-"

// StreamResolver opens buffered byte streams from path tokens.
//
// The token StdStream resolves to standard input for reads and standard
// output for writes. Any other token is a filesystem path. Closing a
// writer flushes it; closing a standard stream never closes the
// underlying process stream.
type StreamResolver interface {
	// OpenReader opens an existing source for reading.
	// Returns an error wrapping domain.ErrIO if it cannot be opened.
	OpenReader(token string) (io.ReadCloser, error)

	// OpenWriter opens a sink, creating or truncating a file.
	// Returns an error wrapping domain.ErrIO if it cannot be opened.
	OpenWriter(token string) (io.WriteCloser, error)
}
