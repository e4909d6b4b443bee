package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/savekit/internal/core/ports/driven"
)

var (
	toJSONInput    string
	toJSONOutput   string
	fromJSONInput  string
	fromJSONOutput string
)

var toJSONCmd = &cobra.Command{
	Use:   "to-json",
	Short: "Convert a binary save to JSON",
	Long: `Decodes a binary save and writes it as pretty-printed JSON.

The input is read and decoded before the output is opened, so a bad
input never creates or truncates the output file.`,
	Example: `  savekit to-json -i slot1.sav -o slot1.json
  savekit to-json < slot1.sav | jq .info`,
	Args: cobra.NoArgs,
	RunE: runToJSON,
}

var fromJSONCmd = &cobra.Command{
	Use:   "from-json",
	Short: "Convert JSON back to a binary save",
	Long:  `Parses the JSON form of a save and writes the encoded binary save.`,
	Example: `  savekit from-json -i slot1.json -o slot1.sav
  savekit to-json -i a.sav | savekit from-json -o b.sav`,
	Args: cobra.NoArgs,
	RunE: runFromJSON,
}

func init() {
	toJSONCmd.Flags().StringVarP(&toJSONInput, "input", "i", driven.StdStream, "binary save to read (- for stdin)")
	toJSONCmd.Flags().StringVarP(&toJSONOutput, "output", "o", driven.StdStream, "JSON file to write (- for stdout)")
	fromJSONCmd.Flags().StringVarP(&fromJSONInput, "input", "i", driven.StdStream, "JSON file to read (- for stdin)")
	fromJSONCmd.Flags().StringVarP(&fromJSONOutput, "output", "o", driven.StdStream, "binary save to write (- for stdout)")
	rootCmd.AddCommand(toJSONCmd)
	rootCmd.AddCommand(fromJSONCmd)
}

func runToJSON(_ *cobra.Command, _ []string) error {
	if convertService == nil {
		return errors.New("convert service not configured")
	}
	return convertService.ToText(context.Background(), toJSONInput, toJSONOutput)
}

func runFromJSON(_ *cobra.Command, _ []string) error {
	if convertService == nil {
		return errors.New("convert service not configured")
	}
	return convertService.FromText(context.Background(), fromJSONInput, fromJSONOutput)
}
