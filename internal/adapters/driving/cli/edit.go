package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/savekit/internal/core/domain"
)

var editEditor string

// lookupEnv is replaced in tests.
var lookupEnv = os.LookupEnv

var editCmd = &cobra.Command{
	Use:   "edit PATH",
	Short: "Edit a save in place with your text editor",
	Long: `Opens the JSON form of the save at PATH in an editor and writes the
save back if the result differs from the original.

The editor is --editor if given, otherwise $EDITOR, otherwise the
editor.command setting, otherwise vim. The command is split with shell
quoting rules and the file is passed after "--".`,
	Example: `  savekit edit slot1.sav
  savekit edit slot1.sav -e "code --wait"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editEditor, "editor", "e", "", "editor command (overrides $EDITOR)")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if editService == nil {
		return errors.New("edit service not configured")
	}

	editor, err := resolveEditor(cmd)
	if err != nil {
		return err
	}

	session, err := editService.Edit(context.Background(), args[0], editor)
	if err != nil {
		return err
	}

	s := stylesFor(cmd)
	switch session.Outcome {
	case domain.EditUnchanged:
		cmd.Println(s.Muted.Render("File unchanged, doing nothing."))
	case domain.EditModified:
		cmd.Println(s.Warning.Render("File modified, writing new save."))
	}
	return nil
}

// resolveEditor reads the flag, EDITOR and the configured editor once.
func resolveEditor(cmd *cobra.Command) (domain.EditorCommand, error) {
	lookup := domain.EditorLookup{
		Flag:    editEditor,
		FlagSet: cmd.Flags().Changed("editor"),
	}
	lookup.Env, lookup.EnvSet = lookupEnv(domain.EditorEnvVar)

	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return domain.EditorCommand{}, fmt.Errorf("failed to get settings: %w", err)
		}
		lookup.Configured = settings.Editor.Command
	}

	return domain.ResolveEditor(lookup), nil
}
