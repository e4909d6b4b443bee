package domain

// AppSettings holds user configuration.
type AppSettings struct {
	Editor EditorSettings
	Resave ResaveSettings
	Text   TextSettings
}

// EditorSettings configures the edit command.
type EditorSettings struct {
	// Command is used when neither --editor nor EDITOR is set.
	Command string
}

// ResaveSettings configures test-resave.
type ResaveSettings struct {
	// DumpDir receives input.sav and output.sav on a debug mismatch.
	DumpDir string
}

// TextSettings configures the text representation.
type TextSettings struct {
	// Indent is the number of spaces per nesting level.
	Indent int
}

// MaxIndent bounds TextSettings.Indent.
const MaxIndent = 8

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Editor: EditorSettings{Command: ""},
		Resave: ResaveSettings{DumpDir: "."},
		Text:   TextSettings{Indent: 2},
	}
}

// Validate reports whether the settings are usable.
func (s AppSettings) Validate() error {
	if s.Text.Indent < 0 || s.Text.Indent > MaxIndent {
		return ErrInvalidInput
	}
	if s.Resave.DumpDir == "" {
		return ErrInvalidInput
	}
	return nil
}
