package driving

import "github.com/custodia-labs/savekit/internal/core/domain"

// Setting keys accepted by SettingsService.Set.
const (
	SettingEditorCommand = "editor.command"
	SettingResaveDumpDir = "resave.dump_dir"
	SettingTextIndent    = "text.indent"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings with defaults applied.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses and persists a single setting by key.
	// Returns domain.ErrInvalidInput for unknown keys or bad values.
	Set(key, value string) error

	// Keys lists the settable keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns where settings are stored.
	Path() string
}
