package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/leadboard/internal/tui"
)

// HandleMouseClick focuses the card under the pointer and starts dragging it.
// Clicking a column outside any card only selects the column.
func HandleMouseClick(m *tui.Model, msg tea.MouseClickMsg) tea.Cmd {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return nil
	}

	// a press without a release (e.g. released outside the window) must not
	// leave a stale drag behind
	if m.Pointer.Active() {
		m.Drag.DragEnd()
		m.Pointer.Reset()
	}

	l := m.Layout()
	col, slot, onCard := l.CardSlotAt(mouse.X, mouse.Y)
	if col == "" {
		return nil
	}
	m.UiState.SetSelectedColumn(col.Index())

	idx := m.UiState.ScrollOffset(col) + slot
	cards := m.Board[col]
	if !onCard || idx >= len(cards) {
		m.ClampSelection()
		return nil
	}

	m.UiState.SetSelectedCard(idx)
	m.ClampSelection()

	payload, ok := m.Drag.DragStart(cards[idx].ID, col)
	if ok {
		m.Pointer.Begin(payload)
	}
	return nil
}

// HandleMouseMotion tracks which column the dragged card hovers over
func HandleMouseMotion(m *tui.Model, msg tea.MouseMotionMsg) tea.Cmd {
	if !m.Pointer.Active() {
		return nil
	}

	mouse := msg.Mouse()
	col, ok := m.Layout().ColumnAt(mouse.X, mouse.Y)
	prev := m.Pointer.Hover()
	if ok && col == prev {
		return nil
	}

	if prev != "" {
		m.Drag.DragLeave(prev)
	}
	if !ok {
		m.Pointer.SetHover("")
		return nil
	}
	m.Drag.DragEnter(col)
	m.Pointer.SetHover(col)
	return nil
}

// HandleMouseRelease drops the dragged card on the column under the pointer.
// Releasing outside the board ends the drag without moving anything.
func HandleMouseRelease(m *tui.Model, msg tea.MouseReleaseMsg) tea.Cmd {
	if !m.Pointer.Active() {
		return nil
	}
	defer m.Pointer.Reset()

	cardID, _ := m.Drag.DraggedCard()
	mouse := msg.Mouse()
	col, ok := m.Layout().ColumnAt(mouse.X, mouse.Y)
	if !ok {
		m.Drag.DragEnd()
		return nil
	}

	if m.Drag.Drop(col, m.Pointer.Payload()) {
		m.Refresh()
		m.Focus(cardID)
	}
	return nil
}

