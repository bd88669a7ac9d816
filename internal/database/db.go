// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// InitDB opens (creating if needed) the SQLite database at path and runs migrations
func InitDB(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign key constraints
	_, err = db.ExecContext(ctx, "PRAGMA foreign_keys = ON")
	if err != nil {
		slog.Error("Failed to enable foreign keys", "error", err)
		closeDB(db)
		return nil, err
	}

	// Enable WAL mode so the CLI and the TUI can share the file
	_, err = db.ExecContext(ctx, "PRAGMA journal_mode = WAL")
	if err != nil {
		slog.Error("Failed to enable WAL mode", "error", err)
		closeDB(db)
		return nil, err
	}

	// Set busy timeout to 5 seconds (SQLite will retry for this duration)
	_, err = db.ExecContext(ctx, "PRAGMA busy_timeout = 5000")
	if err != nil {
		slog.Error("Failed to set busy timeout", "error", err)
		closeDB(db)
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite benefits from a single writer connection
	db.SetMaxIdleConns(1)

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func closeDB(db *sql.DB) {
	if closeErr := db.Close(); closeErr != nil {
		slog.Error("error closing db", "error", closeErr)
	}
}
