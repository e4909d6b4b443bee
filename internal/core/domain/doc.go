// Package domain defines the core entities for savekit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SaveDocument: A decoded save file
//   - EditorCommand: The editor selected for an edit session
//   - EditorSession: One in-place edit of a save file
//   - ResaveReport: The verdict of a decode/encode round-trip
//   - AppSettings: User configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
