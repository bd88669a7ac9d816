package models

import "fmt"

// Board maps every pipeline column to its ordered list of cards
type Board map[ColumnID][]Card

// NewBoard returns a board with an empty list for every column
func NewBoard() Board {
	b := make(Board, len(ColumnOrder))
	b.Normalize()
	return b
}

// Normalize makes sure every column in ColumnOrder has a non-nil list.
// An emptied column stays present as an empty list, never a missing key.
func (b Board) Normalize() {
	for _, id := range ColumnOrder {
		if b[id] == nil {
			b[id] = []Card{}
		}
	}
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for col, cards := range b {
		copied := make([]Card, len(cards))
		for i, c := range cards {
			copied[i] = c.Clone()
		}
		out[col] = copied
	}
	return out
}

// Equal reports whether both boards hold the same cards in the same order.
// A missing column and an empty column compare equal.
func (b Board) Equal(o Board) bool {
	for col := range b {
		if !sameCards(b[col], o[col]) {
			return false
		}
	}
	for col := range o {
		if _, ok := b[col]; !ok && len(o[col]) > 0 {
			return false
		}
	}
	return true
}

func sameCards(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// CardIDs returns every card id on the board in column order
func (b Board) CardIDs() []string {
	var ids []string
	for _, col := range ColumnOrder {
		for _, c := range b[col] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Len returns the total number of cards across all columns
func (b Board) Len() int {
	total := 0
	for _, cards := range b {
		total += len(cards)
	}
	return total
}

// Validate checks that only known columns are present, every card is valid,
// and no card id appears more than once across the board.
func (b Board) Validate() error {
	seen := make(map[string]ColumnID)
	for col, cards := range b {
		if !col.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, col)
		}
		for _, c := range cards {
			if err := c.Validate(); err != nil {
				return err
			}
			if prev, dup := seen[c.ID]; dup {
				return fmt.Errorf("%w: %q in %s and %s", ErrDuplicateCard, c.ID, prev, col)
			}
			seen[c.ID] = col
		}
	}
	return nil
}
