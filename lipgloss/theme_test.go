package lipgloss_test

import (
	"testing"

	"github.com/fwojciec/echoquill"
	"github.com/fwojciec/echoquill/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	t.Run("implements Theme interface", func(t *testing.T) {
		t.Parallel()

		var _ echoquill.Theme = lipgloss.DefaultTheme()
	})

	t.Run("is dark", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, lipgloss.DarkName, lipgloss.DefaultTheme().Name())
	})
}

func TestThemes_PaletteIsComplete(t *testing.T) {
	t.Parallel()

	for _, theme := range []*lipgloss.Theme{lipgloss.DarkTheme(), lipgloss.LightTheme()} {
		p := theme.Palette()
		assert.NotEmpty(t, p.Background, theme.Name())
		assert.NotEmpty(t, p.Foreground, theme.Name())
		assert.NotEmpty(t, p.Title, theme.Name())
		assert.NotEmpty(t, p.Accent, theme.Name())
		assert.NotEmpty(t, p.Muted, theme.Name())
		assert.NotEmpty(t, p.Border, theme.Name())
		assert.NotEmpty(t, p.Success, theme.Name())
		assert.NotEmpty(t, p.Error, theme.Name())
	}
}

func TestLightTheme_DiffersFromDark(t *testing.T) {
	t.Parallel()

	dark := lipgloss.DarkTheme().Palette()
	light := lipgloss.LightTheme().Palette()

	assert.NotEqual(t, dark.Background, light.Background)
	assert.NotEqual(t, dark.Foreground, light.Foreground)
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"dark", lipgloss.DarkName, true},
		{"Light", lipgloss.LightName, true},
		{" DARK ", lipgloss.DarkName, true},
		{"solarized", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			theme, ok := lipgloss.ThemeByName(tt.name)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, theme.Name())
			}
		})
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.LightName, lipgloss.Toggle(lipgloss.DarkTheme()).Name())
	assert.Equal(t, lipgloss.DarkName, lipgloss.Toggle(lipgloss.LightTheme()).Name())
	assert.Equal(t, lipgloss.DarkName, lipgloss.Toggle(nil).Name())
}
