package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tabWidth = 8

// ExpandTabs converts tab characters to the appropriate number of spaces
// based on standard 8-column tab stops. The startCol parameter indicates
// the column position where the string begins.
func ExpandTabs(s string, startCol int) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var sb strings.Builder
	col := startCol
	for _, r := range s {
		switch r {
		case '\t':
			next := ((col / tabWidth) + 1) * tabWidth
			sb.WriteString(strings.Repeat(" ", next-col))
			col = next
		case '\n':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col += lipgloss.Width(string(r))
		}
	}
	return sb.String()
}

// WrapStory prepares story text for the viewport: tabs become spaces, CRLF
// becomes LF, and lines are word-wrapped to width. A width below one disables wrapping.
func WrapStory(story string, width int) string {
	s := ExpandTabs(strings.ReplaceAll(story, "\r\n", "\n"), 0)
	if width < 1 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
