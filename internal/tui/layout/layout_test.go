package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/leadboard/internal/models"
)

func TestNew_Geometry(t *testing.T) {
	l := New(100, 30)

	assert.Equal(t, 20, l.ColumnWidth)
	assert.Equal(t, 28, l.ColumnHeight)
	assert.Equal(t, 5, l.VisibleCards) // (28-5)/4
}

func TestNew_SmallTerminal(t *testing.T) {
	l := New(40, 6)

	assert.Equal(t, MinColumnWidth, l.ColumnWidth)
	assert.Equal(t, MinColumnHeight, l.ColumnHeight)
	assert.Equal(t, 1, l.VisibleCards)
}

func TestColumnAt(t *testing.T) {
	l := New(100, 30)

	tests := []struct {
		name   string
		x, y   int
		want   models.ColumnID
		wantOK bool
	}{
		{"first column", 0, 5, models.ColumnNew, true},
		{"last cell of first column", 19, 5, models.ColumnNew, true},
		{"third column", 45, 10, models.ColumnQualified, true},
		{"last column", 99, 28, models.ColumnLost, true},
		{"title bar", 10, 0, "", false},
		{"status bar", 10, 29, "", false},
		{"right of the board", 100, 5, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.ColumnAt(tt.x, tt.y)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestCardSlotAt(t *testing.T) {
	l := New(100, 30)
	top := l.CardsTop()

	col, slot, ok := l.CardSlotAt(25, top)
	assert.True(t, ok)
	assert.Equal(t, models.ColumnContacted, col)
	assert.Equal(t, 0, slot)

	_, slot, ok = l.CardSlotAt(25, top+CardHeight+1)
	assert.True(t, ok)
	assert.Equal(t, 1, slot)

	// column header is inside the column but not on a card
	col, _, ok = l.CardSlotAt(25, l.BoardTop()+1)
	assert.False(t, ok)
	assert.Equal(t, models.ColumnContacted, col)

	// below the last visible slot
	_, _, ok = l.CardSlotAt(25, top+l.VisibleCards*CardHeight)
	assert.False(t, ok)
}
