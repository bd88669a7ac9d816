package tui

import "github.com/thenoetrevino/leadboard/internal/events"

// RefreshMsg is sent when another process changed a board
type RefreshMsg struct {
	Event events.Event
}

// EventStreamClosedMsg is sent when the daemon event channel closes for good
type EventStreamClosedMsg struct{}
