package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/echoquill"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	sections := []string{
		m.titleView(),
		m.label("Theme", fieldTheme),
		m.input.View(),
		"",
		m.selectorView("Genre", fieldGenre, string(m.form.Genre()), len(echoquill.Genres())),
		m.selectorView("Tone", fieldTone, string(m.form.Tone()), len(echoquill.Tones())),
		m.selectorView("Length", fieldLength, string(m.form.Length()), len(echoquill.Lengths())),
		"",
		m.buttonView(),
		"",
		m.outputView(),
		m.statusView(),
		m.helpView(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) titleView() string {
	title := m.newStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.palette.Title)).
		Render("EchoQuill")
	subtitle := m.newStyle().
		Foreground(lipgloss.Color(m.palette.Muted)).
		Render("  AI story generator")
	return title + subtitle + "\n"
}

func (m Model) label(text string, f field) string {
	style := m.newStyle().Foreground(lipgloss.Color(m.palette.Muted))
	if m.focus == f {
		style = style.Foreground(lipgloss.Color(m.palette.Accent)).Bold(true)
	}
	return style.Render(text)
}

// selectorView renders "Label  ‹ Value ›" with arrows only on the focused selector.
func (m Model) selectorView(name string, f field, value string, options int) string {
	left, right := "  ", "  "
	if m.focus == f && options > 1 {
		left, right = "‹ ", " ›"
	}
	valueStyle := m.newStyle().Foreground(lipgloss.Color(m.palette.Foreground))
	if m.focus == f {
		valueStyle = valueStyle.Foreground(lipgloss.Color(m.palette.Accent))
	}
	return m.label(fmt.Sprintf("%-8s", name+":"), f) + left + valueStyle.Render(value) + right
}

func (m Model) buttonView() string {
	if m.loading() {
		return m.spinner.View() + " " + m.newStyle().
			Foreground(lipgloss.Color(m.palette.Muted)).
			Render("Generating...")
	}

	style := m.newStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.palette.Border))
	if m.focus == fieldGenerate {
		style = style.
			Bold(true).
			BorderForeground(lipgloss.Color(m.palette.Accent)).
			Foreground(lipgloss.Color(m.palette.Accent))
	}
	return style.Render("Generate Story")
}

func (m Model) outputView() string {
	if !m.hasStory() {
		return ""
	}
	panel := m.newStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.palette.Border)).
		Foreground(lipgloss.Color(m.palette.Foreground))
	heading := m.newStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.palette.Title)).
		Render("Your Story")
	return heading + "\n" + panel.Render(m.viewport.View())
}

func (m Model) statusView() string {
	if m.status == "" {
		return ""
	}
	color := m.palette.Muted
	switch m.statusKind {
	case statusSuccess:
		color = m.palette.Success
	case statusError:
		color = m.palette.Error
	}
	return m.newStyle().Foreground(lipgloss.Color(color)).Render(m.status)
}

func (m Model) helpView() string {
	bindings := []string{
		m.keymap.Generate.Help().Key + ":" + m.keymap.Generate.Help().Desc,
		"tab:field",
		"←/→:option",
	}
	if m.hasStory() {
		bindings = append(bindings,
			m.keymap.Copy.Help().Key+":"+m.keymap.Copy.Help().Desc,
			m.keymap.Export.Help().Key+":"+m.keymap.Export.Help().Desc,
			"pgup/pgdn:scroll",
		)
	}
	bindings = append(bindings,
		m.keymap.ToggleTheme.Help().Key+":"+m.keymap.ToggleTheme.Help().Desc,
		m.keymap.Quit.Help().Key+":"+m.keymap.Quit.Help().Desc,
	)
	return m.newStyle().
		Foreground(lipgloss.Color(m.palette.Muted)).
		Render(strings.Join(bindings, "  "))
}
