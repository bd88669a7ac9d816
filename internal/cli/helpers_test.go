package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/leadboard/internal/app"
	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/models"
)

// ============================================================================
// Move Target Tests
// ============================================================================

func TestParseMoveTarget(t *testing.T) {
	tests := []struct {
		in       string
		wantKind MoveTargetKind
		wantCol  models.ColumnID
		wantErr  bool
	}{
		{"next", TargetNext, "", false},
		{"NEXT", TargetNext, "", false},
		{"prev", TargetPrev, "", false},
		{"previous", TargetPrev, "", false},
		{"won", TargetColumn, models.ColumnWon, false},
		{"Qualified", TargetColumn, models.ColumnQualified, false},
		{" lost ", TargetColumn, models.ColumnLost, false},
		{"archived", 0, "", true},
		{"", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoveTarget(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrUnknownColumn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantCol, got.Column)
		})
	}
}

func TestFormatAvailableColumns(t *testing.T) {
	assert.Equal(t, "new, contacted, qualified, won, lost", FormatAvailableColumns())
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitNotFound, ExitCode(Exit(ExitNotFound, models.ErrCardNotFound)))

	wrapped := fmt.Errorf("running move: %w", Exit(ExitValidation, models.ErrAlreadyLastColumn))
	assert.Equal(t, ExitValidation, ExitCode(wrapped))
	assert.ErrorIs(t, wrapped, models.ErrAlreadyLastColumn)

	assert.Equal(t, "exit status 2", Exit(ExitUsage, nil).Error())
}

// ============================================================================
// Context Tests
// ============================================================================

func TestGetCLIFromContext_ReusesAttachedApp(t *testing.T) {
	a, err := app.New(context.Background(), nil, app.WithProvider(board.NewMemoryProvider()))
	require.NoError(t, err)

	c, err := GetCLIFromContext(WithApp(context.Background(), a))
	require.NoError(t, err)
	assert.Same(t, a, c.App)

	// Borrowed apps stay open for their owner
	require.NoError(t, c.Close())
	assert.True(t, a.LeadService.GetBoard().Equal(board.SeedBoard()))
}

func TestGetCLIFromContext_OpensFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Board.Storage = config.StorageMemory
	cfg.Board.DataDir = t.TempDir()

	c, err := GetCLIFromContext(WithConfig(context.Background(), cfg))
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Same(t, cfg, c.App.Config)
	assert.Same(t, cfg, ConfigFromContext(WithConfig(context.Background(), cfg)))
	assert.Nil(t, ConfigFromContext(context.Background()))
}
