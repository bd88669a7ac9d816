package events

import (
	"errors"
	"os"
	"syscall"
)

var (
	ErrNilClient    = errors.New("event client is nil")
	ErrNotConnected = errors.New("not connected to daemon")
	ErrQueueFull    = errors.New("event queue full")
	ErrClientClosed = errors.New("event client closed")
)

// ErrorCode represents daemon-related error types.
type ErrorCode int

const (
	ErrSocketNotFound ErrorCode = iota
	ErrSocketPermission
	ErrDaemonNotRunning
	ErrConnectionRefused
)

// DaemonError represents a structured daemon error with context.
type DaemonError struct {
	Code    ErrorCode
	Message string
	Hint    string
}

// Error implements the error interface.
func (e *DaemonError) Error() string {
	if e.Hint != "" {
		return e.Message + ". " + e.Hint
	}
	return e.Message
}

// ClassifyDaemonError maps common errors to structured DaemonError types.
func ClassifyDaemonError(err error) *DaemonError {
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return &DaemonError{
			Code:    ErrSocketNotFound,
			Message: "Socket file not found",
			Hint:    "Start the sync daemon: leadboard-daemon",
		}
	}

	if errors.Is(err, os.ErrPermission) {
		return &DaemonError{
			Code:    ErrSocketPermission,
			Message: "Permission denied",
			Hint:    "Check data directory permissions: chmod 700 ~/.leadboard/",
		}
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.ECONNREFUSED {
		return &DaemonError{
			Code:    ErrConnectionRefused,
			Message: "Connection refused",
			Hint:    "Daemon may have crashed. Restart it: leadboard-daemon",
		}
	}

	return &DaemonError{
		Code:    ErrDaemonNotRunning,
		Message: "Daemon not running",
		Hint:    "Start the sync daemon: leadboard-daemon",
	}
}
