package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// One row per board holding the serialized snapshot
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS board_snapshots (
			board_key TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			revision INTEGER NOT NULL DEFAULT 1,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_by TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_board_snapshots_updated
		ON board_snapshots(updated_at)
	`)
	return err
}
