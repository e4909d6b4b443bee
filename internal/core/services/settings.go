package services

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/custodia-labs/savekit/internal/core/domain"
	"github.com/custodia-labs/savekit/internal/core/ports/driven"
	"github.com/custodia-labs/savekit/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or out-of-range
// values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Editor: domain.EditorSettings{
			Command: s.configStore.GetString(driving.SettingEditorCommand),
		},
		Resave: domain.ResaveSettings{
			DumpDir: s.getString(driving.SettingResaveDumpDir, defaults.Resave.DumpDir),
		},
		Text: domain.TextSettings{
			Indent: s.getIndent(defaults.Text.Indent),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(driving.SettingEditorCommand, settings.Editor.Command); err != nil {
		return fmt.Errorf("save editor command: %w", err)
	}
	if err := s.configStore.Set(driving.SettingResaveDumpDir, settings.Resave.DumpDir); err != nil {
		return fmt.Errorf("save dump dir: %w", err)
	}
	if err := s.configStore.Set(driving.SettingTextIndent, settings.Text.Indent); err != nil {
		return fmt.Errorf("save text indent: %w", err)
	}
	return nil
}

// Set parses and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case driving.SettingEditorCommand:
		settings.Editor.Command = value
	case driving.SettingResaveDumpDir:
		settings.Resave.DumpDir = value
	case driving.SettingTextIndent:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number, got %q", domain.ErrInvalidInput, key, value)
		}
		settings.Text.Indent = n
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("%w: bad value %q for %s", err, value, key)
	}
	return s.Save(settings)
}

// Keys lists the settable keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := []string{
		driving.SettingEditorCommand,
		driving.SettingResaveDumpDir,
		driving.SettingTextIndent,
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns where settings are stored.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getIndent(defaultVal int) int {
	if _, ok := s.configStore.Get(driving.SettingTextIndent); !ok {
		return defaultVal
	}
	n := s.configStore.GetInt(driving.SettingTextIndent)
	if n < 0 || n > domain.MaxIndent {
		return defaultVal
	}
	return n
}
