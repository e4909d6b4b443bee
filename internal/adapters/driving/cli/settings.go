package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change savekit settings.

Settings are stored as TOML in ~/.savekit/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Change one setting and save it.

Keys:
  editor.command   editor used when --editor and $EDITOR are unset
  resave.dump_dir  directory for test-resave --debug dumps
  text.indent      spaces per JSON nesting level (0 for compact output)`,
	Example: `  savekit settings set editor.command "code --wait"
  savekit settings set text.indent 4`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	s := stylesFor(cmd)
	cmd.Println(s.Title.Render("Current Settings"))
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Editor]")
	cmd.Printf("  Command: %s\n", orDefault(settings.Editor.Command, "(not set, uses $EDITOR or vim)"))
	cmd.Println()

	cmd.Println("[Resave]")
	cmd.Printf("  Dump directory: %s\n", settings.Resave.DumpDir)
	cmd.Println()

	cmd.Println("[Text]")
	cmd.Printf("  Indent: %d\n", settings.Text.Indent)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if !slices.Contains(settingsService.Keys(), key) {
			return fmt.Errorf("%w (valid keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
		}
		return err
	}

	cmd.Printf("%s = %q\n", stylesFor(cmd).Key.Render(key), value)
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
