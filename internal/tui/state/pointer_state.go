package state

import "github.com/thenoetrevino/leadboard/internal/models"

// PointerState holds what the terminal mouse gesture carries between events:
// the payload captured at press time and the column currently under the pointer.
type PointerState struct {
	payload []byte
	hover   models.ColumnID
}

// NewPointerState creates an idle PointerState
func NewPointerState() *PointerState {
	return &PointerState{}
}

// Begin records the payload of a new gesture
func (p *PointerState) Begin(payload []byte) {
	p.payload = payload
	p.hover = ""
}

// Payload returns the payload of the active gesture, nil when idle
func (p *PointerState) Payload() []byte {
	return p.payload
}

// Active reports whether a gesture is in progress
func (p *PointerState) Active() bool {
	return p.payload != nil
}

// Hover returns the column under the pointer, empty when outside the board
func (p *PointerState) Hover() models.ColumnID {
	return p.hover
}

// SetHover records the column under the pointer
func (p *PointerState) SetHover(col models.ColumnID) {
	p.hover = col
}

// Reset ends the gesture
func (p *PointerState) Reset() {
	p.payload = nil
	p.hover = ""
}
