package input

import (
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/leadboard/internal/models"
)

// Payload travels with a drag gesture so the drop target can rebuild the
// move without querying global state.
type Payload struct {
	CardID     string          `json:"cardId"`
	FromColumn models.ColumnID `json:"fromColumn"`
}

// EncodePayload serializes a transfer payload
func EncodePayload(p Payload) ([]byte, error) {
	return json.Marshal(p)
}

// DecodePayload parses a transfer payload and checks its fields
func DecodePayload(data []byte) (Payload, error) {
	if len(data) == 0 {
		return Payload{}, fmt.Errorf("%w: empty", models.ErrInvalidPayload)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", models.ErrInvalidPayload, err)
	}
	if p.CardID == "" {
		return Payload{}, fmt.Errorf("%w: missing card id", models.ErrInvalidPayload)
	}
	if !p.FromColumn.Valid() {
		return Payload{}, fmt.Errorf("%w: unknown column %q", models.ErrInvalidPayload, p.FromColumn)
	}
	return p, nil
}
