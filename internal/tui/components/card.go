package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/leadboard/internal/cli/styles"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/tui/theme"
)

// CardState is the highlight a card is drawn with
type CardState int

const (
	CardNormal   CardState = iota
	CardSelected           // keyboard focus
	CardDragging           // source card of a pointer drag
	CardGrabbed            // picked up with the keyboard
)

// RenderCard renders a single lead as a fixed-height card
//
//	╭──────────────────╮
//	│ Priya Raman     ●│
//	│ Raman Co · $1,200│
//	╰──────────────────╯
//
// width is the full outer width including the border.
func RenderCard(card models.Card, state CardState, width int) string {
	inner := max(width-2, 4)

	marker := priorityMarker(card.Priority)
	nameWidth := inner
	if marker != "" {
		nameWidth = inner - 2
	}
	name := lipgloss.NewStyle().Bold(true).Render(ellipsize(card.Name, nameWidth))
	nameLine := padRight(name, inner-lipgloss.Width(marker)) + marker

	sub := card.Company
	if card.Amount != nil {
		if sub != "" {
			sub += " · "
		}
		sub += styles.FormatAmount(*card.Amount)
	}
	if sub == "" {
		sub = "#" + card.ID
	}
	subLine := padRight(SubtleStyle.Render(ellipsize(sub, inner)), inner)

	style := CardStyle
	switch state {
	case CardSelected:
		style = style.BorderForeground(lipgloss.Color(theme.FocusedBorder))
	case CardDragging:
		style = style.
			BorderForeground(lipgloss.Color(theme.DraggingBorder)).
			BorderStyle(lipgloss.DoubleBorder()).
			Faint(true)
	case CardGrabbed:
		style = style.
			BorderForeground(lipgloss.Color(theme.GrabbedBorder)).
			BorderStyle(lipgloss.ThickBorder())
	}

	return style.Render(nameLine + "\n" + subLine)
}

func priorityMarker(p models.Priority) string {
	var color string
	switch p {
	case models.PriorityLow:
		color = theme.PriorityLow
	case models.PriorityMedium:
		color = theme.PriorityMedium
	case models.PriorityHigh:
		color = theme.PriorityHigh
	default:
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

// ellipsize shortens s to at most width terminal cells, marking the cut with
// an ellipsis. Wide runes count as two cells so cards never outgrow the layout.
func ellipsize(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// padRight pads a rendered string with spaces up to width cells
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
