package driven

// FileStore performs whole-file operations. No locking is performed.
type FileStore interface {
	// ReadFile returns the full contents of path.
	ReadFile(path string) ([]byte, error)

	// WriteFile truncates path (creating it if needed) and writes data.
	WriteFile(path string, data []byte) error

	// CreateTemp creates a new temporary file whose name matches pattern
	// (a "*" is replaced by a random string), writes data to it and
	// returns its path.
	CreateTemp(pattern string, data []byte) (string, error)

	// Remove deletes path.
	Remove(path string) error

	// Join joins path elements using the store's separator.
	Join(elem ...string) string
}
