package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/savekit/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "savekit", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestRootCmd_HasCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"to-json", "from-json", "edit", "test-resave", "settings", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestRootCmd_VersionFlag(t *testing.T) {
	setupTestServices(t)
	SetVersion("1.2.3")
	defer SetVersion("dev")

	out, err := execute("--version")

	assert.NoError(t, err)
	assert.Equal(t, "savekit version 1.2.3\n", out)
}

func TestRootCmd_VerboseEnablesLogger(t *testing.T) {
	setupTestServices(t)
	logs := new(bytes.Buffer)
	logger.SetOutput(logs)
	defer logger.SetOutput(os.Stderr)

	_, err := execute("version", "--verbose")

	assert.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	setupTestServices(t)

	_, err := execute("frobnicate")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestCommands_ServicesNotConfigured(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr string
	}{
		{args: []string{"to-json"}, wantErr: "convert service not configured"},
		{args: []string{"from-json"}, wantErr: "convert service not configured"},
		{args: []string{"test-resave", "a.sav"}, wantErr: "resave service not configured"},
		{args: []string{"edit", "a.sav"}, wantErr: "edit service not configured"},
		{args: []string{"settings", "show"}, wantErr: "settings service not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			setupTestServices(t)
			SetServices(Services{})

			_, err := execute(tt.args...)

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
