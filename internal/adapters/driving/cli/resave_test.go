package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/savekit/internal/core/domain"
)

func TestTestResaveCmd_Use(t *testing.T) {
	assert.Equal(t, "test-resave PATH", testResaveCmd.Use)
}

func TestTestResaveCmd_HasDebugFlag(t *testing.T) {
	flag := testResaveCmd.Flags().Lookup("debug")
	require.NotNil(t, flag, "debug flag should exist")
	assert.Equal(t, "d", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestTestResaveCmd_RequiresExactlyOneArg(t *testing.T) {
	setupTestServices(t)

	_, err := execute("test-resave")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestTestResaveCmd_Success(t *testing.T) {
	env := setupTestServices(t)
	env.files.Put("slot1.sav", sampleSave(t))

	out, err := execute("test-resave", "slot1.sav", "-d")

	require.NoError(t, err)
	assert.Equal(t, "Resave successful\n", out)
	assert.Equal(t, []string{"slot1.sav"}, env.files.Paths())
}

func TestTestResaveCmd_CorruptSave(t *testing.T) {
	env := setupTestServices(t)
	env.files.Put("slot1.sav", []byte("definitely not a save"))

	out, err := execute("test-resave", "slot1.sav")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecode)
	assert.NotContains(t, out, "Resave successful")
}

func TestTestResaveCmd_MissingFile(t *testing.T) {
	setupTestServices(t)

	_, err := execute("test-resave", "missing.sav")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
}

// stubResave returns a fixed report and error.
type stubResave struct {
	report *domain.ResaveReport
	err    error
}

func (s stubResave) Test(context.Context, string, bool) (*domain.ResaveReport, error) {
	return s.report, s.err
}

func TestTestResaveCmd_PrintsWrittenDumps(t *testing.T) {
	mismatch := fmt.Errorf("%w: slot1.sav", domain.ErrResaveMismatch)

	tests := []struct {
		name   string
		report *domain.ResaveReport
		want   string
	}{
		{
			name:   "both dumps",
			report: &domain.ResaveReport{InputDump: "input.sav", OutputDump: "output.sav"},
			want:   "Wrote input.sav\nWrote output.sav\n",
		},
		{
			name:   "only input dump written",
			report: &domain.ResaveReport{InputDump: "input.sav"},
			want:   "Wrote input.sav\n",
		},
		{
			name:   "only output dump written",
			report: &domain.ResaveReport{OutputDump: "output.sav"},
			want:   "Wrote output.sav\n",
		},
		{
			name:   "no dumps",
			report: &domain.ResaveReport{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t)
			resaveService = stubResave{report: tt.report, err: mismatch}

			out, err := execute("test-resave", "slot1.sav", "-d")

			assert.ErrorIs(t, err, domain.ErrResaveMismatch)
			assert.Equal(t, tt.want, out)
		})
	}
}
