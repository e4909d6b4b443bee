package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var resaveDebug bool

var testResaveCmd = &cobra.Command{
	Use:   "test-resave PATH",
	Short: "Check that a save re-encodes byte for byte",
	Long: `Decodes the save at PATH, encodes it again and compares the bytes.

With --debug, a mismatch writes input.sav and output.sav to the dump
directory (resave.dump_dir, default the working directory) for diffing.`,
	Args: cobra.ExactArgs(1),
	RunE: runTestResave,
}

func init() {
	testResaveCmd.Flags().BoolVarP(&resaveDebug, "debug", "d", false, "dump input.sav and output.sav on mismatch")
	rootCmd.AddCommand(testResaveCmd)
}

func runTestResave(cmd *cobra.Command, args []string) error {
	if resaveService == nil {
		return errors.New("resave service not configured")
	}

	report, err := resaveService.Test(context.Background(), args[0], resaveDebug)
	if report != nil {
		for _, dump := range []string{report.InputDump, report.OutputDump} {
			if dump != "" {
				cmd.Printf("Wrote %s\n", dump)
			}
		}
	}
	if err != nil {
		return err
	}

	cmd.Println(stylesFor(cmd).Success.Render("Resave successful"))
	return nil
}
