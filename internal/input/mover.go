// Package input translates pointer and keyboard gestures into board moves.
//
// The controllers never mutate the board themselves: they resolve a card's
// location through FindColumnOf and request changes through MoveCard.
package input

import "github.com/thenoetrevino/leadboard/internal/models"

// Mover is the part of the board store the controllers depend on
type Mover interface {
	MoveCard(intent models.MoveIntent) (bool, error)
	FindColumnOf(cardID string) (models.ColumnID, bool)
}
