package database

import (
	"context"
	"errors"
	"time"
)

// DefaultProviderTimeout bounds every provider call
const DefaultProviderTimeout = 5 * time.Second

// SnapshotProvider binds a SnapshotRepository to one board key so the
// board store can use SQLite through its synchronous Read/Write contract.
type SnapshotProvider struct {
	repo     *SnapshotRepository
	boardKey string
	timeout  time.Duration
}

// NewSnapshotProvider creates a provider for boardKey
func NewSnapshotProvider(repo *SnapshotRepository, boardKey string) *SnapshotProvider {
	return &SnapshotProvider{
		repo:     repo,
		boardKey: boardKey,
		timeout:  DefaultProviderTimeout,
	}
}

// BoardKey returns the board this provider reads and writes
func (p *SnapshotProvider) BoardKey() string {
	return p.boardKey
}

// Read returns the stored payload; found is false when the board has no row yet
func (p *SnapshotProvider) Read() ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	snap, err := p.repo.GetSnapshot(ctx, p.boardKey)
	if errors.Is(err, ErrSnapshotNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return snap.Payload, true, nil
}

// Write replaces the stored payload
func (p *SnapshotProvider) Write(data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	_, err := p.repo.SaveSnapshot(ctx, p.boardKey, data)
	return err
}

// Delete drops the board's row, so the next write starts again at revision 1
func (p *SnapshotProvider) Delete() error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	return p.repo.DeleteSnapshot(ctx, p.boardKey)
}
