package driving

import "context"

// ConvertService converts save files to and from their text representation.
// Input and output are path tokens; "-" selects standard input or output.
type ConvertService interface {
	// ToText decodes a binary save from input and writes pretty text to output.
	ToText(ctx context.Context, input, output string) error

	// FromText parses text from input and writes a binary save to output.
	FromText(ctx context.Context, input, output string) error
}
