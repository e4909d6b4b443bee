// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - SaveCodec: Decodes and encodes the binary save format
//   - TextCodec: Renders and parses the editable text representation
//   - StreamResolver: Maps "-" or a path to a buffered byte stream
//   - FileStore: Whole-file reads, writes and temporary files
//   - EditorLauncher: Tokenises and runs an external editor
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
