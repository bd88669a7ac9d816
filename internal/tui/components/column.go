package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/tui/theme"
)

// ColumnProps describes one column to render
type ColumnProps struct {
	Column       models.ColumnID
	Cards        []models.Card
	Width        int // outer width including the border
	Height       int // outer height including the border
	Visible      int // card slots that fit
	ScrollOffset int
	Focused      bool
	DropReady    bool
	// StateOf returns the highlight for the card at index idx
	StateOf func(idx int, card models.Card) CardState
}

// RenderColumn renders a column with its header and visible cards
//
// Layout:
//
//	{Title} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
func RenderColumn(p ColumnProps) string {
	inner := p.Width - 2
	header := TitleStyle.Render(ellipsize(fmt.Sprintf("%s (%d)", p.Column.Title(), len(p.Cards)), inner))
	lines := []string{padRight(header, inner)}

	indicator := func(text string) string {
		return lipgloss.PlaceHorizontal(inner, lipgloss.Center, SubtleStyle.Render(text))
	}

	start := min(max(p.ScrollOffset, 0), len(p.Cards))
	end := min(start+p.Visible, len(p.Cards))

	if start > 0 {
		lines = append(lines, indicator("▲ more above"))
	} else {
		lines = append(lines, "")
	}

	var body strings.Builder
	if len(p.Cards) == 0 {
		body.WriteString(SubtleStyle.Italic(true).Render("No leads"))
	}
	for i := start; i < end; i++ {
		state := CardNormal
		if p.StateOf != nil {
			state = p.StateOf(i, p.Cards[i])
		}
		if i > start {
			body.WriteString("\n")
		}
		body.WriteString(RenderCard(p.Cards[i], state, inner))
	}
	lines = append(lines, body.String())

	content := strings.Join(lines, "\n")

	// content height excludes the two border rows; the last row is reserved
	// for the bottom indicator
	contentHeight := p.Height - 2
	used := lipgloss.Height(content)
	if pad := contentHeight - used - 1; pad > 0 {
		content += strings.Repeat("\n", pad)
	}
	bottom := ""
	if end < len(p.Cards) {
		bottom = indicator("▼ more below")
	}
	content += "\n" + bottom

	style := ColumnStyle
	switch {
	case p.DropReady:
		style = style.
			BorderForeground(lipgloss.Color(theme.DropReady)).
			BorderStyle(lipgloss.DoubleBorder())
	case p.Focused:
		style = style.BorderForeground(lipgloss.Color(theme.FocusedBorder))
	}

	return style.Render(content)
}
