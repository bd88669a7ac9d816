package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/leadboard/internal/tui"
	"github.com/thenoetrevino/leadboard/internal/tui/notifications"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
	"github.com/thenoetrevino/leadboard/internal/tui/theme"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)
	// cell motion reports drags while a button is held, which is all the
	// pointer controller needs
	view.MouseMode = tea.MouseModeCellMotion

	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// Base board with modal overlays on top
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(ViewBoard(m)),
	}
	if layer := RenderDetailLayer(m); layer != nil {
		layers = append(layers, layer)
	}
	if m.UiState.Mode() == state.HelpMode {
		if layer := RenderHelpLayer(m); layer != nil {
			layers = append(layers, layer)
		}
	}
	layers = append(layers, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}
