package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/models"
)

var (
	_ board.Provider = (*SnapshotProvider)(nil)
	_ board.Deleter  = (*SnapshotProvider)(nil)
)

// setupTestDB creates a migrated database in a temp directory
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := InitDB(context.Background(), filepath.Join(t.TempDir(), "data", "leadboard.db"))
	require.NoError(t, err, "failed to initialize test database")

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// ============================================================================
// InitDB Tests
// ============================================================================

func TestInitDB_CreatesSchema(t *testing.T) {
	db := setupTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='board_snapshots'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "board_snapshots", name)
}

func TestInitDB_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leadboard.db")

	db, err := InitDB(context.Background(), path)
	require.NoError(t, err)
	repo := NewSnapshotRepository(db)
	_, err = repo.SaveSnapshot(context.Background(), "pipeline", []byte(`{}`))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDB(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	snap, err := NewSnapshotRepository(db).GetSnapshot(context.Background(), "pipeline")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(snap.Payload))
}

// ============================================================================
// Repository Tests
// ============================================================================

func TestSnapshotRepository_GetMissing(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))

	_, err := repo.GetSnapshot(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrSnapshotNotFound))
}

func TestSnapshotRepository_SaveIncrementsRevision(t *testing.T) {
	t.Setenv("LEADBOARD_USER", "dana")
	ctx := context.Background()
	repo := NewSnapshotRepository(setupTestDB(t))

	rev, err := repo.SaveSnapshot(ctx, "pipeline", []byte(`{"new":[]}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)

	rev, err = repo.SaveSnapshot(ctx, "pipeline", []byte(`{"won":[]}`))
	require.NoError(t, err)
	assert.Equal(t, int64(2), rev)

	snap, err := repo.GetSnapshot(ctx, "pipeline")
	require.NoError(t, err)
	assert.Equal(t, "pipeline", snap.BoardKey)
	assert.Equal(t, `{"won":[]}`, string(snap.Payload))
	assert.Equal(t, int64(2), snap.Revision)
	assert.False(t, snap.UpdatedAt.IsZero())
	assert.Equal(t, "dana", snap.UpdatedBy)
}

func TestSnapshotRepository_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository(setupTestDB(t))

	for _, key := range []string{"sales", "pipeline", "partners"} {
		_, err := repo.SaveSnapshot(ctx, key, []byte(`{}`))
		require.NoError(t, err)
	}

	boards, err := repo.ListBoards(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 3)
	assert.Equal(t, "partners", boards[0].BoardKey)
	assert.Equal(t, "pipeline", boards[1].BoardKey)
	assert.Equal(t, "sales", boards[2].BoardKey)
	assert.Nil(t, boards[0].Payload)

	require.NoError(t, repo.DeleteSnapshot(ctx, "pipeline"))
	_, err = repo.GetSnapshot(ctx, "pipeline")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	boards, err = repo.ListBoards(ctx)
	require.NoError(t, err)
	assert.Len(t, boards, 2)
}

// ============================================================================
// Provider Tests
// ============================================================================

func TestSnapshotProvider_NotFoundIsNotAnError(t *testing.T) {
	p := NewSnapshotProvider(NewSnapshotRepository(setupTestDB(t)), "pipeline")

	data, found, err := p.Read()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
	assert.Equal(t, "pipeline", p.BoardKey())
}

func TestSnapshotProvider_BoardsAreIsolated(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))
	a := NewSnapshotProvider(repo, "a")
	b := NewSnapshotProvider(repo, "b")

	require.NoError(t, a.Write([]byte(`{"new":[]}`)))

	_, found, err := b.Read()
	require.NoError(t, err)
	assert.False(t, found)

	data, found, err := a.Read()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"new":[]}`, string(data))
}

func TestSnapshotProvider_StoreRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSnapshotRepository(db)

	first := board.New(NewSnapshotProvider(repo, "pipeline"))
	seeded := first.LoadOrSeed()
	assert.True(t, seeded.Equal(board.SeedBoard()))

	moved, err := first.MoveCard(models.MoveIntent{
		CardID: "3",
		From:   models.ColumnQualified,
		To:     models.ColumnWon,
	})
	require.NoError(t, err)
	require.True(t, moved)

	// A second store over the same database sees the persisted move
	second := board.New(NewSnapshotProvider(repo, "pipeline"))
	reloaded := second.LoadOrSeed()

	assert.True(t, reloaded.Equal(first.Board()))
	col, ok := second.FindColumnOf("3")
	require.True(t, ok)
	assert.Equal(t, models.ColumnWon, col)

	snap, err := repo.GetSnapshot(context.Background(), "pipeline")
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap.Revision, "seed write plus one move")
}

func TestSnapshotProvider_ResetStartsNewHistory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSnapshotRepository(db)

	store := board.New(NewSnapshotProvider(repo, "pipeline"))
	store.LoadOrSeed()
	for _, intent := range []models.MoveIntent{
		{CardID: "3", From: models.ColumnQualified, To: models.ColumnWon},
		{CardID: "1", From: models.ColumnNew, To: models.ColumnLost},
	} {
		_, err := store.MoveCard(intent)
		require.NoError(t, err)
	}

	snap, err := repo.GetSnapshot(context.Background(), "pipeline")
	require.NoError(t, err)
	require.Equal(t, int64(3), snap.Revision)

	require.NoError(t, store.Reset())

	snap, err = repo.GetSnapshot(context.Background(), "pipeline")
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.Revision, "reset drops the row before reseeding")

	reloaded := board.New(NewSnapshotProvider(repo, "pipeline")).LoadOrSeed()
	assert.True(t, reloaded.Equal(board.SeedBoard()))
}

func TestSnapshotProvider_DeleteMissingBoard(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))
	assert.NoError(t, NewSnapshotProvider(repo, "never-written").Delete())
}

func TestSnapshotProvider_CorruptRowIsReseeded(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t))
	_, err := repo.SaveSnapshot(context.Background(), "pipeline", []byte(`not json`))
	require.NoError(t, err)

	store := board.New(NewSnapshotProvider(repo, "pipeline"))
	got := store.LoadOrSeed()
	assert.True(t, got.Equal(board.SeedBoard()))

	snap, err := repo.GetSnapshot(context.Background(), "pipeline")
	require.NoError(t, err)
	decoded, err := board.DecodeSnapshot(snap.Payload)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(board.SeedBoard()))
}
