package render

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/tui"
	"github.com/thenoetrevino/leadboard/internal/tui/components"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
)

// ViewBoard renders the title bar, the five columns and the status bar
func ViewBoard(m *tui.Model) string {
	l := m.Layout()
	dropReady, _ := m.Drag.DropReadyColumn()
	selectedCol := m.CurrentColumn()

	columns := make([]string, 0, len(models.ColumnOrder))
	for _, col := range models.ColumnOrder {
		focused := col == selectedCol
		columns = append(columns, components.RenderColumn(components.ColumnProps{
			Column:       col,
			Cards:        m.Board[col],
			Width:        l.ColumnWidth,
			Height:       l.ColumnHeight,
			Visible:      l.VisibleCards,
			ScrollOffset: m.UiState.ScrollOffset(col),
			Focused:      focused,
			DropReady:    col == dropReady,
			StateOf: func(idx int, card models.Card) components.CardState {
				return cardState(m, focused, idx, card)
			},
		}))
	}

	title := components.RenderTitleBar(m.App.BoardKey(), m.Board.Len(), l.Width)
	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	status := components.RenderStatusBar(components.StatusBarProps{
		Width:      l.Width,
		Hint:       statusHint(m),
		Connection: m.ConnectionState.Status().String(),
		Live:       m.ConnectionState.Status() == state.Connected,
	})

	return lipgloss.JoinVertical(lipgloss.Left, title, board, status)
}

// cardState picks the highlight for one card. Drag and grab outrank focus so
// the moving card stays recognizable.
func cardState(m *tui.Model, focusedColumn bool, idx int, card models.Card) components.CardState {
	switch {
	case m.Drag.IsDragging(card.ID):
		return components.CardDragging
	case m.Grab.IsGrabbed(card.ID):
		return components.CardGrabbed
	case focusedColumn && idx == m.UiState.SelectedCard():
		return components.CardSelected
	default:
		return components.CardNormal
	}
}

// statusHint describes the interaction in progress, or the short key help
func statusHint(m *tui.Model) string {
	if id, ok := m.Drag.DraggedCard(); ok {
		if col, ready := m.Drag.DropReadyColumn(); ready {
			return fmt.Sprintf("Drop %s on %s", cardName(m, id), col.Title())
		}
		return fmt.Sprintf("Dragging %s, release on another column", cardName(m, id))
	}
	if id, ok := m.Grab.Grabbed(); ok {
		return fmt.Sprintf("Grabbed %s  %s/%s move  %s release",
			cardName(m, id),
			m.Keys.MoveCardLeft.Help().Key,
			m.Keys.MoveCardRight.Help().Key,
			m.Keys.ReleaseCard.Help().Key)
	}
	return m.Help.View(m.Keys)
}

func cardName(m *tui.Model, cardID string) string {
	for _, col := range models.ColumnOrder {
		for _, c := range m.Board[col] {
			if c.ID == cardID {
				return c.Name
			}
		}
	}
	return "#" + cardID
}
