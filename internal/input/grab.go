package input

import (
	"log/slog"

	"github.com/thenoetrevino/leadboard/internal/models"
)

// GrabState is the keyboard grab lifecycle
type GrabState int

const (
	GrabIdle GrabState = iota
	GrabGrabbed
)

// String returns the state name for logs and debugging
func (s GrabState) String() string {
	if s == GrabGrabbed {
		return "grabbed"
	}
	return "idle"
}

// GrabController is the keyboard equivalent of drag and drop:
// grab a card, then direct it one column left or right.
// At most one card is grabbed at a time.
type GrabController struct {
	mover   Mover
	logger  *slog.Logger
	grabbed *string
}

// NewGrabController creates a controller with nothing grabbed
func NewGrabController(mover Mover, logger *slog.Logger) *GrabController {
	if logger == nil {
		logger = slog.Default()
	}
	return &GrabController{mover: mover, logger: logger}
}

// State returns the current grab state
func (g *GrabController) State() GrabState {
	if g.grabbed == nil {
		return GrabIdle
	}
	return GrabGrabbed
}

// Grabbed returns the grabbed card id, if any
func (g *GrabController) Grabbed() (string, bool) {
	if g.grabbed == nil {
		return "", false
	}
	return *g.grabbed, true
}

// IsGrabbed reports whether cardID is the grabbed card
func (g *GrabController) IsGrabbed(cardID string) bool {
	return g.grabbed != nil && *g.grabbed == cardID
}

// Activate toggles grab mode for cardID. Activating the grabbed card releases
// it; activating another card releases the first and grabs the new one.
func (g *GrabController) Activate(cardID string) {
	if g.IsGrabbed(cardID) {
		g.grabbed = nil
		return
	}
	id := cardID
	g.grabbed = &id
}

// Escape releases the grabbed card without moving it
func (g *GrabController) Escape() {
	g.grabbed = nil
}

// Move sends the grabbed card one column in dir, appending it to the end of
// that column. A successful move releases the grab. At the first or last
// column the call is a no-op and the card stays grabbed.
func (g *GrabController) Move(dir models.Direction) bool {
	if g.grabbed == nil {
		return false
	}
	cardID := *g.grabbed

	from, ok := g.mover.FindColumnOf(cardID)
	if !ok {
		g.logger.Debug("grabbed card no longer on board, releasing", "card_id", cardID)
		g.grabbed = nil
		return false
	}

	to, ok := from.Adjacent(dir)
	if !ok {
		return false
	}

	moved, err := g.mover.MoveCard(models.MoveIntent{CardID: cardID, From: from, To: to})
	if err != nil {
		g.logger.Warn("keyboard move failed", "card_id", cardID, "from", from, "to", to, "error", err)
	}
	if moved {
		g.grabbed = nil
	}
	return moved
}
