package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/leadboard/internal/user"
)

// BoardSnapshot is one stored board payload
type BoardSnapshot struct {
	BoardKey  string
	Payload   []byte
	Revision  int64
	UpdatedAt time.Time
	UpdatedBy string // OS user that wrote the last revision
}

// SnapshotRepository handles all board snapshot database operations.
type SnapshotRepository struct {
	db     *sql.DB
	author string
}

// NewSnapshotRepository creates a repository over an initialized database.
// Saves are attributed to user.Name().
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db, author: user.Name()}
}

// GetSnapshot returns the stored snapshot for a board, or ErrSnapshotNotFound
func (r *SnapshotRepository) GetSnapshot(ctx context.Context, boardKey string) (*BoardSnapshot, error) {
	var (
		snap    BoardSnapshot
		payload string
		updated sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT board_key, payload, revision, updated_at, updated_by FROM board_snapshots WHERE board_key = ?`,
		boardKey,
	).Scan(&snap.BoardKey, &payload, &snap.Revision, &updated, &snap.UpdatedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, boardKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot for board %s: %w", boardKey, err)
	}

	snap.Payload = []byte(payload)
	if updated.Valid {
		snap.UpdatedAt = updated.Time
	}
	return &snap, nil
}

// SaveSnapshot inserts or replaces the snapshot for a board and returns its new revision
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, boardKey string, payload []byte) (int64, error) {
	var revision int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO board_snapshots (board_key, payload, revision, updated_at, updated_by)
			VALUES (?, ?, 1, ?, ?)
			ON CONFLICT(board_key) DO UPDATE SET
				payload = excluded.payload,
				revision = board_snapshots.revision + 1,
				updated_at = excluded.updated_at,
				updated_by = excluded.updated_by`,
			boardKey, string(payload), time.Now().UTC(), r.author,
		)
		if err != nil {
			return fmt.Errorf("failed to save snapshot for board %s: %w", boardKey, err)
		}

		err = tx.QueryRowContext(ctx,
			`SELECT revision FROM board_snapshots WHERE board_key = ?`, boardKey,
		).Scan(&revision)
		if err != nil {
			return fmt.Errorf("failed to read revision for board %s: %w", boardKey, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return revision, nil
}

// DeleteSnapshot removes a board's snapshot. Deleting a missing board is not an error.
func (r *SnapshotRepository) DeleteSnapshot(ctx context.Context, boardKey string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM board_snapshots WHERE board_key = ?`, boardKey)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot for board %s: %w", boardKey, err)
	}
	return nil
}

// ListBoards returns every stored board without payloads, ordered by key
func (r *SnapshotRepository) ListBoards(ctx context.Context) ([]*BoardSnapshot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT board_key, revision, updated_at, updated_by FROM board_snapshots ORDER BY board_key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var boards []*BoardSnapshot
	for rows.Next() {
		var (
			snap    BoardSnapshot
			updated sql.NullTime
		)
		if err := rows.Scan(&snap.BoardKey, &snap.Revision, &updated, &snap.UpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan board row: %w", err)
		}
		if updated.Valid {
			snap.UpdatedAt = updated.Time
		}
		boards = append(boards, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate boards: %w", err)
	}
	return boards, nil
}
