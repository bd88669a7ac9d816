// Package layout holds the board geometry shared by the renderer and the
// mouse hit-testing, so a click always lands on what was drawn there.
package layout

import "github.com/thenoetrevino/leadboard/internal/models"

const (
	TitleBarHeight  = 1  // board name row at the top
	StatusBarHeight = 1  // key hints and connection status at the bottom
	CardHeight      = 4  // border + name + company line + border
	MinColumnWidth  = 18 // narrower columns truncate everything
	MinColumnHeight = 5 + CardHeight

	// columnOverhead is the column chrome around the card list:
	// top border, header, top indicator, bottom indicator, bottom border
	columnOverhead = 5
	// cardsOffset is the distance from the column top to the first card
	cardsOffset = 3
)

// Layout is the computed geometry for one terminal size
type Layout struct {
	Width        int
	Height       int
	ColumnWidth  int
	ColumnHeight int
	VisibleCards int
}

// New computes the geometry for a terminal of the given size
func New(width, height int) Layout {
	colWidth := max(width/len(models.ColumnOrder), MinColumnWidth)
	colHeight := max(height-TitleBarHeight-StatusBarHeight, MinColumnHeight)
	return Layout{
		Width:        width,
		Height:       height,
		ColumnWidth:  colWidth,
		ColumnHeight: colHeight,
		VisibleCards: max((colHeight-columnOverhead)/CardHeight, 1),
	}
}

// BoardTop is the first row occupied by the columns
func (l Layout) BoardTop() int {
	return TitleBarHeight
}

// CardsTop is the first row of the first visible card slot
func (l Layout) CardsTop() int {
	return l.BoardTop() + cardsOffset
}

// ColumnX returns the left edge of the column at index i
func (l Layout) ColumnX(i int) int {
	return i * l.ColumnWidth
}

// ColumnAt returns the column under the cell (x, y)
func (l Layout) ColumnAt(x, y int) (models.ColumnID, bool) {
	if x < 0 || y < l.BoardTop() || y >= l.BoardTop()+l.ColumnHeight {
		return "", false
	}
	idx := x / l.ColumnWidth
	if idx >= len(models.ColumnOrder) {
		return "", false
	}
	return models.ColumnOrder[idx], true
}

// CardSlotAt returns the column and the visible card slot under (x, y).
// The slot is relative to the column's scroll offset.
func (l Layout) CardSlotAt(x, y int) (models.ColumnID, int, bool) {
	col, ok := l.ColumnAt(x, y)
	if !ok {
		return "", 0, false
	}
	rel := y - l.CardsTop()
	if rel < 0 {
		return col, 0, false
	}
	slot := rel / CardHeight
	if slot >= l.VisibleCards {
		return col, 0, false
	}
	return col, slot, true
}
