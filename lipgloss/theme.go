// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import (
	"strings"

	"github.com/fwojciec/echoquill"
)

// Compile-time interface verification.
var _ echoquill.Theme = (*Theme)(nil)

// Theme names accepted by ThemeByName.
const (
	DarkName  = "dark"
	LightName = "light"
)

// Theme implements echoquill.Theme with Lipgloss-compatible colors.
type Theme struct {
	name    string
	palette echoquill.Palette
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() echoquill.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the named theme, or false if the name is unknown.
func ThemeByName(name string) (*Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DarkName:
		return DarkTheme(), true
	case LightName:
		return LightTheme(), true
	}
	return nil, false
}

// Toggle returns the opposite theme of t.
func Toggle(t echoquill.Theme) *Theme {
	if t != nil && t.Name() == DarkName {
		return LightTheme()
	}
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		name: DarkName,
		palette: echoquill.Palette{
			// Catppuccin Mocha
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			Title:  "#cba6f7", // Mauve
			Accent: "#89b4fa", // Blue
			Muted:  "#6c7086",
			Border: "#45475a",

			Success: "#a6e3a1",
			Error:   "#f38ba8",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		name: LightName,
		palette: echoquill.Palette{
			// Catppuccin Latte
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			Title:  "#8839ef",
			Accent: "#1e66f5",
			Muted:  "#9ca0b0",
			Border: "#bcc0cc",

			Success: "#40a02b",
			Error:   "#d20f39",
		},
	}
}
