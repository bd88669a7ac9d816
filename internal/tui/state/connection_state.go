package state

import "sync"

// ConnectionStatus represents the current connection state to the sync daemon
type ConnectionStatus int

const (
	Offline ConnectionStatus = iota // running without a daemon
	Connected
	Reconnecting
	Disconnected // daemon was reachable once, gave up reconnecting
)

// String returns the label shown in the status bar
func (cs ConnectionStatus) String() string {
	switch cs {
	case Offline:
		return "Offline"
	case Connected:
		return "Live"
	case Reconnecting:
		return "Reconnecting"
	case Disconnected:
		return "Disconnected"
	default:
		return "Unknown"
	}
}

// ConnectionState tracks the daemon link. The notify callback writes it from
// the client goroutine while the view reads it, hence the lock.
type ConnectionState struct {
	mu     sync.RWMutex
	status ConnectionStatus
}

// NewConnectionState creates a ConnectionState with the given initial status
func NewConnectionState(initial ConnectionStatus) *ConnectionState {
	return &ConnectionState{status: initial}
}

// Status returns the current connection status
func (cs *ConnectionState) Status() ConnectionStatus {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.status
}

// SetStatus updates the connection status
func (cs *ConnectionState) SetStatus(status ConnectionStatus) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.status = status
}
