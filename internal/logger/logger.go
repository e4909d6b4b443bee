// Package logger provides verbose logging for savekit.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr so they never mix with JSON or save bytes
// written to stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// headLen is how many leading bytes Bytes prints.
const headLen = 16

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs. A nil writer
// restores os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf("[DEBUG] ", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf("[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf("[WARN] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Bytes prints the size of data and its leading bytes in hex, which is
// usually enough to tell a save from a JSON file or a truncated one.
func Bytes(label string, data []byte) {
	if !IsVerbose() {
		return
	}
	head := data
	suffix := ""
	if len(head) > headLen {
		head = head[:headLen]
		suffix = " ..."
	}
	logf("[DEBUG] ", "%s: %d bytes [% x%s]", label, len(data), head, suffix)
}

func logf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}
