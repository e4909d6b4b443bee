// Package cli provides the cobra command tree for savekit.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/savekit/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/savekit/internal/core/ports/driving"
	"github.com/custodia-labs/savekit/internal/logger"
)

var (
	version = "dev"
	verbose bool
)

// Services injected by main before Execute.
var (
	convertService  driving.ConvertService
	resaveService   driving.ResaveService
	editService     driving.EditService
	settingsService driving.SettingsService
)

// Services groups the driving ports the commands call.
type Services struct {
	Convert  driving.ConvertService
	Resave   driving.ResaveService
	Edit     driving.EditService
	Settings driving.SettingsService
}

var rootCmd = &cobra.Command{
	Use:   "savekit",
	Short: "Convert and edit binary game saves as JSON",
	Long: `savekit converts a game's binary save file to and from pretty JSON,
edits a save in place through your text editor, and checks that a save
survives a decode and re-encode byte for byte.

Paths given as "-" mean standard input or standard output.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.SetVersionTemplate("savekit version {{.Version}}\n")
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	convertService = s.Convert
	resaveService = s.Resave
	editService = s.Edit
	settingsService = s.Settings
}

// SetVersion sets the version reported by "version" and --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// stylesFor returns styles bound to the command's output stream.
func stylesFor(cmd *cobra.Command) *styles.Styles {
	return styles.NewStyles(cmd.OutOrStdout(), nil)
}
