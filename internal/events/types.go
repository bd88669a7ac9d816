package events

import "time"

// ProtocolVersion is sent with every message so peers can detect mismatches
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged EventType = "board_changed"
	EventPing         EventType = "ping"
	EventPong         EventType = "pong"
)

// Event represents a board change notification
type Event struct {
	Type       EventType
	Board      string    // For filtering - which board was modified ("" = all boards)
	Origin     string    // Process that made the change, so it can ignore its own echo
	CardID     string    `json:",omitempty"` // Card that moved, when known
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// SubscribeMessage is sent by clients to subscribe to specific board updates
type SubscribeMessage struct {
	Board string // "" = all boards
}

// Message wraps events and control messages for wire protocol
type Message struct {
	Version   int
	Type      string            // "event", "subscribe", "ping", "pong"
	Event     *Event            `json:",omitempty"`
	Subscribe *SubscribeMessage `json:",omitempty"`
}

// NotificationMsg is a user-facing message about the connection state
type NotificationMsg struct {
	Level   string // "info", "warning", "error"
	Message string
}

// NotifyFunc receives connection notifications (lost, reconnected, gave up)
type NotifyFunc func(level, message string)
