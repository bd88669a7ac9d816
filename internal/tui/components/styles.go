// Package components provides reusable UI components and styles.
// Call InitStyles() after theme.Init so the styles pick up the configured colors.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/leadboard/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of pipeline columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of individual lead cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for hints, indicators and empty states
	SubtleStyle lipgloss.Style

	// HelpBoxStyle frames the key binding overlay
	HelpBoxStyle lipgloss.Style

	// DetailBoxStyle frames the card detail pane
	DetailBoxStyle lipgloss.Style
)

// InitStyles rebuilds every style from the current theme colors
func InitStyles() {
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Foreground(lipgloss.Color(theme.Normal))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Background(lipgloss.Color(theme.Background)).
		Padding(1, 2)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.FocusedBorder)).
		Background(lipgloss.Color(theme.Background)).
		Padding(0, 1)
}
