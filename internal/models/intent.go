package models

// MoveIntent is the typed request to move one card.
// ToIndex is optional; nil appends the card to the end of To.
type MoveIntent struct {
	CardID  string
	From    ColumnID
	To      ColumnID
	ToIndex *int
}

// IndexPtr is a convenience for building intents with an explicit position
func IndexPtr(i int) *int {
	return &i
}
