package tui

import "github.com/thenoetrevino/leadboard/internal/models"

// CurrentColumn returns the selected column
func (m *Model) CurrentColumn() models.ColumnID {
	idx := min(max(m.UiState.SelectedColumn(), 0), len(models.ColumnOrder)-1)
	return models.ColumnOrder[idx]
}

// CurrentCards returns the cards of the selected column
func (m *Model) CurrentCards() []models.Card {
	return m.Board[m.CurrentColumn()]
}

// CurrentCard returns the focused card, if the selected column has any
func (m *Model) CurrentCard() (models.Card, bool) {
	cards := m.CurrentCards()
	idx := m.UiState.SelectedCard()
	if idx < 0 || idx >= len(cards) {
		return models.Card{}, false
	}
	return cards[idx], true
}

// Refresh re-reads the board from the store and keeps the selection in range
func (m *Model) Refresh() {
	m.Board = m.App.Store.Board()
	m.ClampSelection()
}

// ClampSelection keeps the selected card index inside the selected column
// and scrolls it into view
func (m *Model) ClampSelection() {
	col := m.CurrentColumn()
	cards := m.Board[col]

	idx := m.UiState.SelectedCard()
	if idx >= len(cards) {
		idx = len(cards) - 1
	}
	idx = max(idx, 0)
	m.UiState.SetSelectedCard(idx)

	visible := m.Layout().VisibleCards
	for _, c := range models.ColumnOrder {
		if c == col {
			m.UiState.EnsureVisible(c, idx, visible, len(cards))
			continue
		}
		// keep other columns' offsets valid after cards left them
		m.UiState.EnsureVisible(c, m.UiState.ScrollOffset(c), visible, len(m.Board[c]))
	}
}

// Focus selects cardID wherever it currently is. It reports false when the
// card is not on the board.
func (m *Model) Focus(cardID string) bool {
	for ci, col := range models.ColumnOrder {
		for i, card := range m.Board[col] {
			if card.ID == cardID {
				m.UiState.SetSelectedColumn(ci)
				m.UiState.SetSelectedCard(i)
				m.ClampSelection()
				return true
			}
		}
	}
	return false
}
