package memory

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/custodia-labs/savekit/internal/core/domain"
	"github.com/custodia-labs/savekit/internal/core/ports/driven"
)

// Ensure Files implements the interfaces.
var (
	_ driven.FileStore      = (*Files)(nil)
	_ driven.StreamResolver = (*Files)(nil)
)

// TempDir is the directory CreateTemp places files in.
const TempDir = "/tmp"

// Files is an in-memory filesystem with standard streams. It records how
// often each path was opened for writing so tests can assert that a path
// was never touched.
type Files struct {
	mu      sync.Mutex
	files   map[string][]byte
	writes  map[string]int
	stdin   []byte
	stdout  bytes.Buffer
	tempSeq int
}

// NewFiles creates an empty in-memory filesystem.
func NewFiles() *Files {
	return &Files{
		files:  make(map[string][]byte),
		writes: make(map[string]int),
	}
}

// Put stores a file without counting it as a write.
func (f *Files) Put(name string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[name] = bytes.Clone(data)
}

// Get returns a copy of a file's contents.
func (f *Files) Get(name string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[name]
	return bytes.Clone(data), ok
}

// Paths lists stored files in sorted order.
func (f *Files) Paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	paths := make([]string, 0, len(f.files))
	for p := range f.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Writes returns how many times name was opened for writing.
func (f *Files) Writes(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes[name]
}

// SetStdin sets what reading "-" returns.
func (f *Files) SetStdin(data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stdin = bytes.Clone(data)
}

// Stdout returns everything written to "-".
func (f *Files) Stdout() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return bytes.Clone(f.stdout.Bytes())
}

// ReadFile returns a file's contents.
func (f *Files) ReadFile(name string) ([]byte, error) {
	data, ok := f.Get(name)
	if !ok {
		return nil, notExist("open", name)
	}
	return data, nil
}

// WriteFile replaces a file's contents.
func (f *Files) WriteFile(name string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes[name]++
	f.files[name] = bytes.Clone(data)
	return nil
}

// CreateTemp stores data under a fresh name in TempDir.
func (f *Files) CreateTemp(pattern string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tempSeq++
	seq := strconv.Itoa(f.tempSeq)
	name := pattern + seq
	if strings.Contains(pattern, "*") {
		name = strings.Replace(pattern, "*", seq, 1)
	}
	name = path.Join(TempDir, name)
	f.writes[name]++
	f.files[name] = bytes.Clone(data)
	return name, nil
}

// Remove deletes a file.
func (f *Files) Remove(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.files[name]; !ok {
		return notExist("remove", name)
	}
	delete(f.files, name)
	return nil
}

// Join joins elements with forward slashes.
func (f *Files) Join(elem ...string) string {
	return path.Join(elem...)
}

// OpenReader reads "-" from stdin, anything else from the stored files.
func (f *Files) OpenReader(token string) (io.ReadCloser, error) {
	if token == driven.StdStream {
		f.mu.Lock()
		defer f.mu.Unlock()
		return io.NopCloser(bytes.NewReader(bytes.Clone(f.stdin))), nil
	}
	data, err := f.ReadFile(token)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// OpenWriter buffers writes and commits them on Close. Opening a path
// truncates it immediately, like a real file.
func (f *Files) OpenWriter(token string) (io.WriteCloser, error) {
	if token != driven.StdStream {
		f.mu.Lock()
		f.writes[token]++
		f.files[token] = nil
		f.mu.Unlock()
	}
	return &memWriter{files: f, token: token}, nil
}

type memWriter struct {
	files  *Files
	token  string
	buf    bytes.Buffer
	closed bool
}

func (w *memWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("%w: write to closed stream", domain.ErrIO)
	}
	return w.buf.Write(p)
}

func (w *memWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	w.files.mu.Lock()
	defer w.files.mu.Unlock()
	if w.token == driven.StdStream {
		w.files.stdout.Write(w.buf.Bytes())
		return nil
	}
	w.files.files[w.token] = bytes.Clone(w.buf.Bytes())
	return nil
}

func notExist(op, name string) error {
	return fmt.Errorf("%w: %w", domain.ErrIO, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist})
}
