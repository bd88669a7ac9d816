package state

import "github.com/thenoetrevino/leadboard/internal/models"

// Mode represents the current interaction mode of the TUI
type Mode int

const (
	NormalMode Mode = iota // board navigation, grab and drag
	HelpMode               // key binding overlay
)

// UIState manages navigation, terminal size and the interaction mode.
// Selection is positional: a column index plus a card index inside it.
type UIState struct {
	selectedColumn int
	selectedCard   int
	width          int
	height         int
	mode           Mode
	showDetail     bool

	// scrollOffsets holds the index of the first visible card per column
	scrollOffsets map[models.ColumnID]int
}

// NewUIState creates a UIState with the first column selected
func NewUIState() *UIState {
	return &UIState{
		mode:          NormalMode,
		scrollOffsets: make(map[models.ColumnID]int),
	}
}

// SelectedColumn returns the index of the selected column
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedCard returns the index of the selected card within the selected column
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// Width returns the current terminal width
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ShowDetail reports whether the card detail pane is open
func (s *UIState) ShowDetail() bool {
	return s.showDetail
}

// ToggleDetail opens or closes the card detail pane
func (s *UIState) ToggleDetail() {
	s.showDetail = !s.showDetail
}

// ScrollOffset returns the first visible card index for col
func (s *UIState) ScrollOffset(col models.ColumnID) int {
	return s.scrollOffsets[col]
}

// SetScrollOffset updates the first visible card index for col
func (s *UIState) SetScrollOffset(col models.ColumnID, offset int) {
	s.scrollOffsets[col] = max(offset, 0)
}

// EnsureVisible scrolls col so that card index idx lies inside a window of
// visible cards, and clamps the offset to the column length.
func (s *UIState) EnsureVisible(col models.ColumnID, idx, visible, total int) {
	if visible <= 0 {
		return
	}
	offset := s.scrollOffsets[col]
	if idx < offset {
		offset = idx
	}
	if idx >= offset+visible {
		offset = idx - visible + 1
	}
	offset = min(offset, max(total-visible, 0))
	s.scrollOffsets[col] = max(offset, 0)
}
