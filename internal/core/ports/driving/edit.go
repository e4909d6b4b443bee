package driving

import (
	"context"

	"github.com/custodia-labs/savekit/internal/core/domain"
)

// EditService edits a save file in place through an external editor.
type EditService interface {
	// Edit runs one editor session against the save at path. The returned
	// session carries the outcome; the file is only written when the
	// re-encoded bytes differ from the original.
	Edit(ctx context.Context, path string, editor domain.EditorCommand) (*domain.EditorSession, error)
}
