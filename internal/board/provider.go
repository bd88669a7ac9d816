// Package board owns the pipeline board state: column membership, ordering,
// persistence and rehydration.
package board

import "sync"

// Provider reads and writes one serialized board snapshot.
// Both calls are synchronous from the store's point of view.
type Provider interface {
	// Read returns the stored snapshot. found is false when nothing has been stored.
	Read() (data []byte, found bool, err error)

	// Write replaces the stored snapshot.
	Write(data []byte) error
}

// Deleter is implemented by providers that can drop their snapshot entirely.
// Reset deletes before reseeding so the stored history starts over.
type Deleter interface {
	// Delete removes the stored snapshot. Deleting nothing is not an error.
	Delete() error
}

// MemoryProvider keeps the snapshot in process memory
type MemoryProvider struct {
	mu     sync.Mutex
	data   []byte
	found  bool
	writes int
}

// NewMemoryProvider returns an empty in-memory provider
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{}
}

// Read implements Provider
func (p *MemoryProvider) Read() ([]byte, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.found {
		return nil, false, nil
	}
	return append([]byte(nil), p.data...), true, nil
}

// Write implements Provider
func (p *MemoryProvider) Write(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = append([]byte(nil), data...)
	p.found = true
	p.writes++
	return nil
}

// Set replaces the stored bytes without counting as a write.
// Tests use it to plant corrupt snapshots.
func (p *MemoryProvider) Set(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = append([]byte(nil), data...)
	p.found = true
}

// Delete implements Deleter
func (p *MemoryProvider) Delete() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = nil
	p.found = false
	return nil
}

// Writes returns how many times Write has been called
func (p *MemoryProvider) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}

// Compile-time verification that the providers implement Provider
var (
	_ Provider = (*MemoryProvider)(nil)
	_ Provider = (*FileProvider)(nil)
	_ Deleter  = (*MemoryProvider)(nil)
	_ Deleter  = (*FileProvider)(nil)
)
