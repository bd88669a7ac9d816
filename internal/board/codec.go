package board

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/leadboard/internal/models"
)

// EncodeSnapshot serializes the board as one JSON object keyed by column id.
// Columns are written in pipeline order and empty columns are written as [].
func EncodeSnapshot(b models.Board) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range models.ColumnOrder {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(col))
		if err != nil {
			return nil, err
		}
		cards := b[col]
		if cards == nil {
			cards = []models.Card{}
		}
		value, err := json.Marshal(cards)
		if err != nil {
			return nil, fmt.Errorf("failed to encode column %s: %w", col, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeSnapshot parses and validates a persisted snapshot.
// Missing columns are filled with empty lists; anything that would break the
// single-owner invariant is reported as ErrCorruptSnapshot.
func DecodeSnapshot(data []byte) (models.Board, error) {
	var raw map[models.ColumnID][]models.Card
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCorruptSnapshot, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: snapshot is not an object", models.ErrCorruptSnapshot)
	}

	b := models.Board(raw)
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCorruptSnapshot, err)
	}
	b.Normalize()
	return b, nil
}
