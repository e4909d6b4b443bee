package driven

import (
	"context"

	"github.com/custodia-labs/savekit/internal/core/domain"
)

// EditorLauncher prepares and runs an external editor process.
type EditorLauncher interface {
	// Prepare tokenises an editor command with shell quoting rules.
	// Returns an error wrapping domain.ErrEditorInvocation if the command
	// is empty or cannot be tokenised.
	Prepare(cmd domain.EditorCommand) (domain.Invocation, error)

	// Run starts the editor on path, passed after a "--" separator, and
	// blocks until it exits. The exit code is returned; a non-zero code is
	// not an error. Failure to start wraps domain.ErrEditorInvocation.
	Run(ctx context.Context, inv domain.Invocation, path string) (int, error)
}
