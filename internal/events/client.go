package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Client represents a connection to the sync daemon for receiving live updates.
// It handles event sending, receiving, batching, reconnection, and subscriptions.
type Client struct {
	socketPath string
	origin     string
	conn       net.Conn
	encoder    *json.Encoder
	decoder    *json.Decoder
	mu         sync.Mutex

	// Batching configuration
	eventQueue chan Event
	debounce   time.Duration
	closed     bool // Prevent double-close panics

	// Reconnection configuration
	maxRetries int
	baseDelay  time.Duration

	// Subscription state
	currentBoard string

	// Event tracking, owned by the listen goroutine
	lastSequence int64

	notify NotifyFunc

	// Context for graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc

	// Batching goroutine
	batcherOnce    sync.Once
	batcherStarted bool
	batcherDone    chan struct{}
}

// NewClient creates a new event client but does not connect.
// The socket path should be the full path to the Unix domain socket.
// The debounce duration controls event batching (default 100ms, LEADBOARD_EVENT_DEBOUNCE_MS overrides).
func NewClient(socketPath string) (*Client, error) {
	debounceMs := 100
	if envVal := os.Getenv("LEADBOARD_EVENT_DEBOUNCE_MS"); envVal != "" {
		if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
			debounceMs = parsed
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		socketPath:  socketPath,
		origin:      uuid.NewString(),
		eventQueue:  make(chan Event, 100),
		debounce:    time.Duration(debounceMs) * time.Millisecond,
		maxRetries:  5,
		baseDelay:   1 * time.Second,
		ctx:         ctx,
		cancel:      cancel,
		batcherDone: make(chan struct{}),
	}, nil
}

// Origin returns the id stamped on every event this client sends
func (c *Client) Origin() string {
	if c == nil {
		return ""
	}
	return c.origin
}

// SetNotifyFunc registers a callback for connection state changes
func (c *Client) SetNotifyFunc(fn NotifyFunc) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.notify = fn
	c.mu.Unlock()
}

func (c *Client) notifyf(level, format string, args ...any) {
	c.mu.Lock()
	fn := c.notify
	c.mu.Unlock()
	if fn != nil {
		fn(level, fmt.Sprintf(format, args...))
	}
}

// Connect establishes a connection to the daemon socket and subscribes
// to the current board (all boards until Subscribe is called).
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return ErrNilClient
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClientClosed
	}
	err := c.dialLocked(ctx)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	c.batcherOnce.Do(func() {
		c.mu.Lock()
		c.batcherStarted = true
		c.mu.Unlock()
		go c.startBatcher()
	})

	return nil
}

// dialLocked must be called with c.mu held
func (c *Client) dialLocked(ctx context.Context) error {
	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial daemon socket: %w", err)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)

	msg := Message{
		Version:   ProtocolVersion,
		Type:      "subscribe",
		Subscribe: &SubscribeMessage{Board: c.currentBoard},
	}
	if err := c.writeLocked(msg); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			log.Printf("Error closing connection: %v", closeErr)
		}
		c.conn = nil
		return fmt.Errorf("failed to send subscription: %w", err)
	}
	return nil
}

// writeLocked encodes one message with a write deadline, then clears the
// deadline so later writes on an idle connection are not rejected.
func (c *Client) writeLocked(msg Message) error {
	if c.conn == nil {
		return ErrNotConnected
	}
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	err := c.encoder.Encode(msg)
	if clearErr := c.conn.SetWriteDeadline(time.Time{}); clearErr != nil && err == nil {
		err = fmt.Errorf("connection error: %w", clearErr)
	}
	return err
}

// SendEvent queues an event to be sent to the daemon.
// Events are batched and sent in bursts within the debounce window.
// Returns ErrQueueFull if the queue is full (non-blocking send).
func (c *Client) SendEvent(event Event) error {
	if c == nil {
		return ErrNilClient
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClientClosed
	}
	if event.Origin == "" {
		event.Origin = c.origin
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case c.eventQueue <- event:
		return nil
	default:
		return fmt.Errorf("%w (capacity %d)", ErrQueueFull, cap(c.eventQueue))
	}
}

// mergeEvent folds next into the pending batch. Changes to different boards
// collapse to an all-boards event.
func mergeEvent(pending *Event, next Event) *Event {
	if pending == nil {
		merged := next
		merged.Type = EventBoardChanged
		return &merged
	}
	if pending.Board != next.Board {
		pending.Board = ""
	}
	if pending.CardID != next.CardID {
		pending.CardID = ""
	}
	pending.Timestamp = next.Timestamp
	return pending
}

// startBatcher runs in a goroutine and batches events from the queue.
// It sends a single event every debounce duration if any events are pending.
func (c *Client) startBatcher() {
	defer close(c.batcherDone)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	var pending *Event

	flushPending := func() {
		if pending == nil {
			return
		}
		pending.Origin = c.origin
		msg := Message{Version: ProtocolVersion, Type: "event", Event: pending}

		c.mu.Lock()
		err := c.writeLocked(msg)
		c.mu.Unlock()

		if err != nil && !isConnectionError(err) {
			log.Printf("Failed to send batched event: %v", err)
		}
		pending = nil
	}

	drain := func() {
		for {
			select {
			case evt, ok := <-c.eventQueue:
				if !ok {
					return
				}
				pending = mergeEvent(pending, evt)
			default:
				return
			}
		}
	}

	for {
		select {
		case <-c.ctx.Done():
			drain()
			flushPending()
			return

		case event, ok := <-c.eventQueue:
			if !ok {
				flushPending()
				return
			}
			pending = mergeEvent(pending, event)
			drain()

		case <-ticker.C:
			flushPending()
		}
	}
}

// Listen starts listening for events from the daemon.
// It returns a channel that receives events and handles reconnection automatically.
// The channel is closed when context is done, the client closes, or reconnection fails.
// Events sent by this client are filtered out.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	eventChan := make(chan Event, 10)
	if c == nil {
		close(eventChan)
		return eventChan, ErrNilClient
	}
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// listenLoop reads events from the daemon and handles reconnection.
func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	for {
		if ctx.Err() != nil || c.isClosed() {
			return
		}

		err := c.readEvents(ctx, eventChan)
		if err == nil || ctx.Err() != nil || c.isClosed() {
			return
		}

		log.Printf("Connection lost: %v, reconnecting...", err)
		c.notifyf("warning", "Lost connection to sync daemon, reconnecting")

		if c.reconnect(ctx) {
			c.lastSequence = 0 // daemon may have restarted its counter
			c.notifyf("info", "Reconnected to sync daemon")
			continue
		}

		log.Printf("Failed to reconnect after %d attempts, giving up", c.maxRetries)
		c.notifyf("error", "Sync daemon unavailable, live updates disabled")
		return
	}
}

// readEvents reads messages from the socket and sends them to the event channel.
func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		var msg Message

		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return ErrNotConnected
		}
		// Set read deadline to detect hung connections (pings arrive every 30s)
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode message: %w", err)
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil {
				continue
			}
			if msg.Event.SequenceID > 0 {
				if msg.Event.SequenceID <= c.lastSequence {
					continue
				}
				c.lastSequence = msg.Event.SequenceID
			}
			if msg.Event.Origin == c.origin {
				continue
			}
			select {
			case eventChan <- *msg.Event:
			case <-ctx.Done():
				return ctx.Err()
			}

		case "ping":
			c.mu.Lock()
			err := c.writeLocked(Message{Version: ProtocolVersion, Type: "pong"})
			c.mu.Unlock()
			// Broken pipe/connection closed is expected during disconnection
			if err != nil && !isConnectionError(err) {
				log.Printf("Failed to send pong: %v", err)
			}
		}
	}
}

// isConnectionError checks if an error is a network connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, net.ErrClosed) || errors.Is(err, ErrNotConnected) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "connection reset")
}

// reconnect attempts to reconnect to the daemon with exponential backoff.
// It tries up to maxRetries times, doubling the delay each time.
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay

	for i := 0; i < c.maxRetries; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-c.ctx.Done():
			return false
		case <-time.After(delay):
			c.mu.Lock()
			if c.closed {
				c.mu.Unlock()
				return false
			}
			if c.conn != nil {
				if err := c.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
					log.Printf("Error closing connection during reconnect: %v", err)
				}
				c.conn = nil
			}
			err := c.dialLocked(ctx)
			c.mu.Unlock()

			if err == nil {
				log.Printf("Reconnected to daemon (attempt %d/%d)", i+1, c.maxRetries)
				return true
			}

			log.Printf("Reconnection attempt %d/%d failed, retrying in %v", i+1, c.maxRetries, delay)
			delay *= 2 // Exponential backoff: 1s, 2s, 4s, 8s, 16s
		}
	}

	return false
}

// Subscribe changes the subscription to a specific board.
// An empty board subscribes to every board. The choice is remembered
// and replayed after a reconnect.
func (c *Client) Subscribe(board string) error {
	if c == nil {
		return ErrNilClient
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.currentBoard = board

	if c.conn == nil {
		return ErrNotConnected
	}

	return c.writeLocked(Message{
		Version:   ProtocolVersion,
		Type:      "subscribe",
		Subscribe: &SubscribeMessage{Board: board},
	})
}

// Close closes the connection to the daemon and stops all goroutines.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true

	// Closing the queue lets the batcher flush pending events before exiting
	close(c.eventQueue)
	started := c.batcherStarted
	c.mu.Unlock()

	if started {
		<-c.batcherDone
	}
	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		if err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
	}

	return nil
}
