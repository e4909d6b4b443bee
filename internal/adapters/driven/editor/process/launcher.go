// Package process implements driven.EditorLauncher by running the editor as
// a child process attached to the terminal.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
	"golang.org/x/term"

	"github.com/custodia-labs/savekit/internal/core/domain"
	"github.com/custodia-labs/savekit/internal/core/ports/driven"
	"github.com/custodia-labs/savekit/internal/logger"
)

// Ensure Launcher implements the interface.
var _ driven.EditorLauncher = (*Launcher)(nil)

// endOfOptions separates editor flags from the file argument.
const endOfOptions = "--"

// Launcher runs editors with the given standard streams.
type Launcher struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewLauncher creates a launcher whose children inherit the given streams.
func NewLauncher(stdin io.Reader, stdout, stderr io.Writer) *Launcher {
	return &Launcher{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Prepare splits the editor command with shell quoting rules, so
// `code --wait` or `"/Applications/My Editor" -n` work as one string.
func (l *Launcher) Prepare(cmd domain.EditorCommand) (domain.Invocation, error) {
	if strings.TrimSpace(cmd.Command) == "" {
		return domain.Invocation{}, fmt.Errorf("%w: editor command from %s is empty", domain.ErrEditorInvocation, cmd.Source)
	}

	args, err := shellwords.Parse(cmd.Command)
	if err != nil {
		return domain.Invocation{}, fmt.Errorf("%w: cannot parse editor command %q: %v",
			domain.ErrEditorInvocation, cmd.Command, err)
	}
	if len(args) == 0 || args[0] == "" {
		return domain.Invocation{}, fmt.Errorf("%w: editor command %q names no program",
			domain.ErrEditorInvocation, cmd.Command)
	}

	return domain.Invocation{Program: args[0], Args: args[1:]}, nil
}

// Run starts the editor on path and waits for it with no timeout. A
// non-zero exit status is returned as the code, not as an error; reporting
// it is left to the caller.
func (l *Launcher) Run(ctx context.Context, inv domain.Invocation, path string) (int, error) {
	args := make([]string, 0, len(inv.Args)+2)
	args = append(args, inv.Args...)
	args = append(args, endOfOptions, path)

	c := exec.CommandContext(ctx, inv.Program, args...)
	c.Stdin = l.stdin
	c.Stdout = l.stdout
	c.Stderr = l.stderr

	if f, ok := l.stdin.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		logger.Warn("standard input is not a terminal; %s may not be interactive", inv.Program)
	}
	logger.Debug("editor: running %s %s", inv.Program, strings.Join(args, " "))

	if err := c.Start(); err != nil {
		return -1, fmt.Errorf("%w: start %s: %w", domain.ErrEditorInvocation, inv.Program, err)
	}

	err := c.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, fmt.Errorf("%w: wait for %s: %w", domain.ErrEditorInvocation, inv.Program, err)
	}
	return 0, nil
}
