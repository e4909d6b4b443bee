// Package styles provides colour themes and styling for CLI status lines.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for CLI output.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates a change was made.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
		Error:   lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles contains lipgloss styles bound to one output stream. Colour is
// only emitted when that stream is a terminal.
type Styles struct {
	theme *Theme

	// Title style for section headers.
	Title lipgloss.Style

	// Key style for setting names.
	Key lipgloss.Style

	// Muted style for no-op outcomes.
	Muted lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for writes the user should notice.
	Warning lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style
}

// NewStyles creates styles for w from a theme.
func NewStyles(w io.Writer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	r := lipgloss.NewRenderer(w)

	return &Styles{
		theme: theme,

		Title: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Key: r.NewStyle().
			Foreground(theme.Primary),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Success: r.NewStyle().
			Foreground(theme.Success),

		Warning: r.NewStyle().
			Foreground(theme.Warning),

		Error: r.NewStyle().
			Bold(true).
			Foreground(theme.Error),
	}
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
