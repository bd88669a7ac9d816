package render

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/leadboard/internal/tui"
	"github.com/thenoetrevino/leadboard/internal/tui/components"
	"github.com/thenoetrevino/leadboard/internal/tui/layout"
)

const detailMaxWidth = 56

// RenderHelpLayer renders the full key binding list as a centered modal
func RenderHelpLayer(m *tui.Model) *lipgloss.Layer {
	h := m.Help
	h.ShowAll = true
	content := components.HelpBoxStyle.Render(
		components.TitleStyle.Render("Keys") + "\n\n" +
			h.View(m.Keys) + "\n\n" +
			components.SubtleStyle.Render("Drag a card with the mouse to move it to another column."))
	return centered(content, m.UiState.Width(), m.UiState.Height())
}

// RenderDetailLayer renders the focused card's details on the right edge
func RenderDetailLayer(m *tui.Model) *lipgloss.Layer {
	if !m.UiState.ShowDetail() {
		return nil
	}
	card, ok := m.CurrentCard()
	if !ok {
		return nil
	}

	width := min(detailMaxWidth, m.UiState.Width()-4)
	content := components.RenderDetail(components.DetailProps{
		Card:   card,
		Column: m.CurrentColumn(),
		Width:  width - 4,
	})
	x := max(m.UiState.Width()-lipgloss.Width(content)-1, 0)
	return lipgloss.NewLayer(content).X(x).Y(layout.TitleBarHeight + 1)
}

func centered(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}
