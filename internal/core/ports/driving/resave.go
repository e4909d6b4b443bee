package driving

import (
	"context"

	"github.com/custodia-labs/savekit/internal/core/domain"
)

// ResaveService checks that a save file survives decode and re-encode.
type ResaveService interface {
	// Test decodes and re-encodes the file at path and compares the bytes.
	// On a mismatch the report is returned together with an error wrapping
	// domain.ErrResaveMismatch. When debug is set, both byte streams are
	// dumped for offline diffing.
	Test(ctx context.Context, path string, debug bool) (*domain.ResaveReport, error)
}
