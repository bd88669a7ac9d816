package input

import (
	"log/slog"

	"github.com/thenoetrevino/leadboard/internal/models"
)

// DragState is the pointer drag lifecycle
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
	DragDropReady
)

// String returns the state name for logs and debugging
func (s DragState) String() string {
	switch s {
	case DragDragging:
		return "dragging"
	case DragDropReady:
		return "drop-ready"
	default:
		return "idle"
	}
}

// DragController turns one press-drag-release gesture into at most one move
type DragController struct {
	mover  Mover
	logger *slog.Logger

	state     DragState
	cardID    string
	source    models.ColumnID
	dropReady models.ColumnID
}

// NewDragController creates a controller in the idle state
func NewDragController(mover Mover, logger *slog.Logger) *DragController {
	if logger == nil {
		logger = slog.Default()
	}
	return &DragController{mover: mover, logger: logger}
}

// State returns the current drag state
func (d *DragController) State() DragState {
	return d.state
}

// DraggedCard returns the card being dragged, if any
func (d *DragController) DraggedCard() (string, bool) {
	if d.state == DragIdle {
		return "", false
	}
	return d.cardID, true
}

// SourceColumn returns the column the drag started from
func (d *DragController) SourceColumn() (models.ColumnID, bool) {
	if d.state == DragIdle {
		return "", false
	}
	return d.source, true
}

// DropReadyColumn returns the column currently marked as the hover target
func (d *DragController) DropReadyColumn() (models.ColumnID, bool) {
	if d.state != DragDropReady {
		return "", false
	}
	return d.dropReady, true
}

// IsDragging reports whether cardID is the card being dragged
func (d *DragController) IsDragging(cardID string) bool {
	return d.state != DragIdle && d.cardID == cardID
}

// DragStart begins a drag of cardID from column from and returns the
// transfer payload to attach to the gesture. A card that is not actually in
// from is refused and the controller stays idle.
func (d *DragController) DragStart(cardID string, from models.ColumnID) ([]byte, bool) {
	d.reset()

	col, ok := d.mover.FindColumnOf(cardID)
	if !ok || col != from {
		d.logger.Debug("drag start ignored, card not in column", "card_id", cardID, "from", from)
		return nil, false
	}

	payload, err := EncodePayload(Payload{CardID: cardID, FromColumn: from})
	if err != nil {
		d.logger.Warn("failed to encode drag payload", "card_id", cardID, "error", err)
		return nil, false
	}

	d.state = DragDragging
	d.cardID = cardID
	d.source = from
	return payload, true
}

// DragEnter marks col as drop-ready when it differs from the source column
func (d *DragController) DragEnter(col models.ColumnID) {
	if d.state == DragIdle {
		return
	}
	if col == d.source || !col.Valid() {
		d.state = DragDragging
		d.dropReady = ""
		return
	}
	d.state = DragDropReady
	d.dropReady = col
}

// DragLeave clears the drop-ready marker if the pointer left that column
func (d *DragController) DragLeave(col models.ColumnID) {
	if d.state != DragDropReady || d.dropReady != col {
		return
	}
	d.state = DragDragging
	d.dropReady = ""
}

// Drop completes the gesture on col using the payload captured at drag start.
// It reports whether a move was performed. Missing or malformed payloads and
// drops onto the source column are ignored. The controller is always idle afterwards.
func (d *DragController) Drop(col models.ColumnID, payload []byte) bool {
	defer d.reset()

	p, err := DecodePayload(payload)
	if err != nil {
		d.logger.Debug("drop ignored, bad payload", "column", col, "error", err)
		return false
	}
	if p.FromColumn == col {
		return false
	}

	moved, err := d.mover.MoveCard(models.MoveIntent{CardID: p.CardID, From: p.FromColumn, To: col})
	if err != nil {
		d.logger.Warn("drop move failed", "card_id", p.CardID, "from", p.FromColumn, "to", col, "error", err)
	}
	return moved
}

// DragEnd ends the gesture without a drop (released outside any column,
// escape, or cancelled by the host). All transient state is cleared.
func (d *DragController) DragEnd() {
	d.reset()
}

func (d *DragController) reset() {
	d.state = DragIdle
	d.cardID = ""
	d.source = ""
	d.dropReady = ""
}
