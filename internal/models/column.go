package models

import "strings"

// ColumnID identifies one of the fixed pipeline columns.
// The set of columns is static configuration, not runtime data.
type ColumnID string

const (
	ColumnNew       ColumnID = "new"
	ColumnContacted ColumnID = "contacted"
	ColumnQualified ColumnID = "qualified"
	ColumnWon       ColumnID = "won"
	ColumnLost      ColumnID = "lost"
)

// ColumnOrder is the fixed left-to-right ordering of the pipeline.
// Keyboard moves step through this slice one position at a time.
var ColumnOrder = []ColumnID{
	ColumnNew,
	ColumnContacted,
	ColumnQualified,
	ColumnWon,
	ColumnLost,
}

// columnTitles holds the display label for each column
var columnTitles = map[ColumnID]string{
	ColumnNew:       "New",
	ColumnContacted: "Contacted",
	ColumnQualified: "Qualified",
	ColumnWon:       "Won",
	ColumnLost:      "Lost",
}

// Direction is a one-step move along ColumnOrder
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

// String returns the direction name used in logs and CLI output
func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// Valid reports whether the column belongs to the fixed pipeline
func (c ColumnID) Valid() bool {
	return c.Index() >= 0
}

// Index returns the position of the column in ColumnOrder, or -1 if unknown
func (c ColumnID) Index() int {
	for i, id := range ColumnOrder {
		if id == c {
			return i
		}
	}
	return -1
}

// Title returns the human readable column name
func (c ColumnID) Title() string {
	if title, ok := columnTitles[c]; ok {
		return title
	}
	return string(c)
}

// Adjacent returns the neighbouring column in the given direction.
// The boolean is false when c is unknown or already at that edge.
func (c ColumnID) Adjacent(dir Direction) (ColumnID, bool) {
	idx := c.Index()
	if idx < 0 {
		return "", false
	}

	switch dir {
	case DirectionLeft:
		idx--
	case DirectionRight:
		idx++
	default:
		return "", false
	}

	if idx < 0 || idx >= len(ColumnOrder) {
		return "", false
	}
	return ColumnOrder[idx], true
}

// ParseColumnID resolves a user supplied column name (id or title, case-insensitive)
func ParseColumnID(s string) (ColumnID, bool) {
	for _, id := range ColumnOrder {
		if strings.EqualFold(string(id), s) || strings.EqualFold(id.Title(), s) {
			return id, true
		}
	}
	return "", false
}
