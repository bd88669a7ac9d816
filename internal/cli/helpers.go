package cli

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/leadboard/internal/models"
)

// MoveTargetKind says how a move destination was written on the command line
type MoveTargetKind int

const (
	TargetColumn MoveTargetKind = iota
	TargetNext
	TargetPrev
)

// MoveTarget is a parsed move destination: next, prev or a column name
type MoveTarget struct {
	Kind   MoveTargetKind
	Column models.ColumnID
}

// ParseMoveTarget resolves "next", "prev" or a column id/title (case-insensitive)
func ParseMoveTarget(s string) (MoveTarget, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "next":
		return MoveTarget{Kind: TargetNext}, nil
	case "prev", "previous":
		return MoveTarget{Kind: TargetPrev}, nil
	}

	col, ok := models.ParseColumnID(strings.TrimSpace(s))
	if !ok {
		return MoveTarget{}, fmt.Errorf("%w: %q", models.ErrUnknownColumn, s)
	}
	return MoveTarget{Kind: TargetColumn, Column: col}, nil
}

// FormatAvailableColumns lists the pipeline columns for error suggestions
func FormatAvailableColumns() string {
	names := make([]string, len(models.ColumnOrder))
	for i, col := range models.ColumnOrder {
		names[i] = string(col)
	}
	return strings.Join(names, ", ")
}
