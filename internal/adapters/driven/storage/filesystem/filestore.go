// Package filesystem implements driven.FileStore on the local filesystem.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/savekit/internal/core/domain"
	"github.com/custodia-labs/savekit/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.FileStore = (*FileStore)(nil)

// FileStore reads and writes whole files. No locking is performed, so
// concurrent writers to the same path produce undefined results.
type FileStore struct {
	tempDir string
}

// NewFileStore creates a store. Temporary files go to tempDir, or to the
// system temporary directory when tempDir is empty.
func NewFileStore(tempDir string) *FileStore {
	return &FileStore{tempDir: tempDir}
}

// ReadFile returns the full contents of path.
func (s *FileStore) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return data, nil
}

// WriteFile truncates path, creating it if needed, and writes data.
// Existing files keep their permissions.
func (s *FileStore) WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return nil
}

// CreateTemp creates a temporary file matching pattern and writes data.
func (s *FileStore) CreateTemp(pattern string, data []byte) (string, error) {
	f, err := os.CreateTemp(s.tempDir, pattern)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	name := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return "", fmt.Errorf("%w: write %s: %w", domain.ErrIO, name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("%w: close %s: %w", domain.ErrIO, name, err)
	}
	return name, nil
}

// Remove deletes path.
func (s *FileStore) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return nil
}

// Join joins path elements with the OS separator.
func (s *FileStore) Join(elem ...string) string {
	return filepath.Join(elem...)
}
