package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
	"github.com/thenoetrevino/leadboard/internal/tui/theme"
)

// Render renders a notification banner based on severity level
func Render(severity Severity, message string) string {
	st := severity.style()

	headerText := st.icon + " " + st.title
	width := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.border)).
		Bold(true).
		Width(width).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Width(width).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.border)).
		Background(lipgloss.Color(theme.Background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(severityOf(n.Level), n.Message)
}
