package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/leadboard/internal/tui/theme"
)

type StatusBarProps struct {
	Width      int
	Hint       string // left side, usually the current interaction
	Connection string // right side, daemon link status
	Live       bool
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	left := SubtleStyle.Render(props.Hint)

	connColor := theme.Subtle
	if props.Live {
		connColor = theme.InfoFg
	}
	right := lipgloss.NewStyle().
		Foreground(lipgloss.Color(connColor)).
		Render("● "+props.Connection) + SubtleStyle.Render("  ? help")

	gap := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// RenderTitleBar renders the board name and card count
func RenderTitleBar(board string, cards, width int) string {
	title := TitleStyle.Render("leadboard") + SubtleStyle.Render(" / ") + TitleStyle.Render(board)
	count := SubtleStyle.Render(pluralize(cards, "lead"))
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(count), 1)
	return title + strings.Repeat(" ", gap) + count
}

func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
