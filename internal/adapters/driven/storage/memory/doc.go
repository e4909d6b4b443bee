// Package memory provides in-memory implementations of driven ports.
// They back the core service tests and never touch the filesystem.
package memory
