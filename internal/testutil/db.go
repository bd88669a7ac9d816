package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/database"
	"github.com/thenoetrevino/leadboard/internal/models"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	return <-outC
}

// SetupTestDB creates a migrated SQLite database in a temp directory
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "leadboard.db"))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// SnapshotOf encodes a board for seeding a provider
func SnapshotOf(t *testing.T, b models.Board) []byte {
	t.Helper()

	data, err := board.EncodeSnapshot(b)
	if err != nil {
		t.Fatalf("Failed to encode board: %v", err)
	}
	return data
}

// AssertCardIn fails the test unless cardID sits in col
func AssertCardIn(t *testing.T, store *board.Store, cardID string, col models.ColumnID) {
	t.Helper()

	got, ok := store.FindColumnOf(cardID)
	if !ok {
		t.Fatalf("card %s not found on board", cardID)
	}
	if got != col {
		t.Errorf("card %s is in %s, want %s", cardID, got, col)
	}
}
