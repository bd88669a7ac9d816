package handlers

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/leadboard/internal/input"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/tui"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
)

// HandleNormalMode handles board navigation, keyboard grab and the toggles
func HandleNormalMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	m.NotificationState.Clear()
	keys := m.Keys

	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit

	case key.Matches(msg, keys.ShowHelp):
		m.UiState.SetMode(state.HelpMode)

	case key.Matches(msg, keys.MoveCardLeft):
		moveGrabbed(m, models.DirectionLeft)

	case key.Matches(msg, keys.MoveCardRight):
		moveGrabbed(m, models.DirectionRight)

	case key.Matches(msg, keys.PrevColumn):
		selectColumn(m, m.UiState.SelectedColumn()-1)

	case key.Matches(msg, keys.NextColumn):
		selectColumn(m, m.UiState.SelectedColumn()+1)

	case key.Matches(msg, keys.PrevCard):
		m.UiState.SetSelectedCard(max(m.UiState.SelectedCard()-1, 0))
		m.ClampSelection()

	case key.Matches(msg, keys.NextCard):
		m.UiState.SetSelectedCard(m.UiState.SelectedCard() + 1)
		m.ClampSelection()

	case key.Matches(msg, keys.GrabCard):
		if card, ok := m.CurrentCard(); ok {
			m.Grab.Activate(card.ID)
		}

	case key.Matches(msg, keys.ReleaseCard):
		release(m)

	case key.Matches(msg, keys.ToggleDetail):
		if _, ok := m.CurrentCard(); ok || m.UiState.ShowDetail() {
			m.UiState.ToggleDetail()
		}

	case key.Matches(msg, keys.Reload):
		m.App.LeadService.Reload()
		m.Refresh()
		m.NotificationState.Add(state.LevelInfo, "Board reloaded")
	}

	return nil
}

// moveGrabbed steps the grabbed card one column when it is the focused card.
// Focus follows the card into its new column.
func moveGrabbed(m *tui.Model, dir models.Direction) {
	card, ok := m.CurrentCard()
	if !ok || !m.Grab.IsGrabbed(card.ID) {
		return
	}
	if m.Grab.Move(dir) {
		m.Refresh()
		m.Focus(card.ID)
		return
	}
	// a grab released by Move means the card vanished underneath us
	if !m.Grab.IsGrabbed(card.ID) {
		m.Refresh()
	}
}

// release cancels whatever transient interaction is active, innermost first:
// a pointer drag, then a keyboard grab, then the detail pane
func release(m *tui.Model) {
	switch {
	case m.Pointer.Active():
		m.Drag.DragEnd()
		m.Pointer.Reset()
	case m.Grab.State() == input.GrabGrabbed:
		m.Grab.Escape()
	case m.UiState.ShowDetail():
		m.UiState.ToggleDetail()
	}
}

func selectColumn(m *tui.Model, idx int) {
	idx = min(max(idx, 0), len(models.ColumnOrder)-1)
	if idx == m.UiState.SelectedColumn() {
		return
	}
	m.UiState.SetSelectedColumn(idx)
	m.ClampSelection()
}
