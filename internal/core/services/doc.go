// Package services implements the driving port interfaces.
// Services contain the command logic and orchestrate calls to driven
// ports (codec, text bridge, streams, files, editor).
//
// Services are pure Go; every side effect goes through a driven port.
package services
