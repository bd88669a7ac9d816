package handlers

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/leadboard/internal/tui"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
)

// HandleHelpMode closes the help overlay; ctrl+c still quits
func HandleHelpMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if key.Matches(msg, m.Keys.ShowHelp, m.Keys.ReleaseCard, m.Keys.Quit) {
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}
