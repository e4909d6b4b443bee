package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/savekit/internal/adapters/driven/editor/process"
	"github.com/custodia-labs/savekit/internal/adapters/driven/savecodec/mmse"
	"github.com/custodia-labs/savekit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/savekit/internal/adapters/driven/text/jsontext"
	"github.com/custodia-labs/savekit/internal/core/domain"
	"github.com/custodia-labs/savekit/internal/core/services"
	"github.com/custodia-labs/savekit/internal/logger"
)

// testEnv holds the in-memory adapters behind the commands.
type testEnv struct {
	files    *memory.Files
	config   *memory.ConfigStore
	launcher *recordingLauncher
}

// recordingLauncher tokenises like the real launcher and applies edit to
// the staged file instead of spawning a process.
type recordingLauncher struct {
	files    *memory.Files
	edit     func(text []byte) []byte
	prepared []domain.EditorCommand
	runs     int
}

func (l *recordingLauncher) Prepare(cmd domain.EditorCommand) (domain.Invocation, error) {
	l.prepared = append(l.prepared, cmd)
	return process.NewLauncher(nil, nil, nil).Prepare(cmd)
}

func (l *recordingLauncher) Run(_ context.Context, _ domain.Invocation, path string) (int, error) {
	l.runs++
	if l.edit != nil {
		text, _ := l.files.Get(path)
		if err := l.files.WriteFile(path, l.edit(text)); err != nil {
			return -1, err
		}
	}
	return 0, nil
}

func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		files:  memory.NewFiles(),
		config: memory.NewConfigStore(),
	}
	env.launcher = &recordingLauncher{files: env.files}

	codec := mmse.New()
	text := jsontext.New(2)
	SetServices(Services{
		Convert:  services.NewConvertService(codec, text, env.files),
		Resave:   services.NewResaveService(codec, env.files, "."),
		Edit:     services.NewEditService(codec, text, env.files, env.launcher),
		Settings: services.NewSettingsService(env.config),
	})
	lookupEnv = func(string) (string, bool) { return "", false }
	resetFlags(rootCmd)

	t.Cleanup(func() {
		SetServices(Services{})
		lookupEnv = os.LookupEnv
		resetFlags(rootCmd)
		logger.SetVerbose(false)
	})
	return env
}

// resetFlags restores every flag to its default; cobra keeps flag state
// between Execute calls on the same command tree.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func sampleSave(t *testing.T) []byte {
	t.Helper()
	raw, err := mmse.New().Encode(&domain.SaveDocument{
		Version: mmse.Version,
		Info:    json.RawMessage(`{"name":"hero","slot":1}`),
		Data:    json.RawMessage(`{"gold":120,"items":["sword","shield"]}`),
	})
	require.NoError(t, err)
	return raw
}
