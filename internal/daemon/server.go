// Package daemon implements the sync relay: a unix socket server that fans
// board-changed events out to every process watching the same board.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/leadboard/internal/events"
)

// client represents a connected client to the daemon
type client struct {
	conn         net.Conn
	send         chan events.Message
	subscription events.SubscribeMessage
	lastPong     time.Time
	closed       bool
	mu           sync.Mutex // Protects subscription, lastPong, closed and sends on send
}

// subscribed reports whether the client wants events for board
func (c *client) subscribed(board string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return board == "" || c.subscription.Board == "" || c.subscription.Board == board
}

// Server represents the sync daemon
type Server struct {
	socketPath       string
	listener         net.Listener
	clients          map[*client]bool
	mu               sync.RWMutex
	ctx              context.Context
	cancel           context.CancelFunc
	broadcast        chan events.Event
	metrics          *Metrics
	sequenceCounter  atomic.Int64
	clientBufferSize int // Configurable client send queue size
	pingInterval     time.Duration
	staleAfter       time.Duration
	shutdownOnce     sync.Once
}

// getEnvInt reads an integer from an environment variable, returning defaultVal if not set or invalid
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

// NewServer creates a new daemon server listening on socketPath
func NewServer(socketPath string) (*Server, error) {
	dir := filepath.Dir(socketPath)
	if dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	// Remove stale socket file if it exists
	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		socketPath:       socketPath,
		listener:         listener,
		clients:          make(map[*client]bool),
		ctx:              ctx,
		cancel:           cancel,
		broadcast:        make(chan events.Event, getEnvInt("LEADBOARD_DAEMON_BROADCAST_BUFFER", 100)),
		metrics:          NewMetrics(),
		clientBufferSize: getEnvInt("LEADBOARD_DAEMON_CLIENT_BUFFER", 10),
		pingInterval:     30 * time.Second,
		staleAfter:       90 * time.Second,
	}, nil
}

// Metrics returns the live counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// SocketPath returns the path the server listens on
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Start runs the daemon server until ctx is cancelled or Shutdown is called.
// It starts three main goroutines: accept, broadcast, and health monitoring.
func (s *Server) Start(ctx context.Context) error {
	log.Printf("Daemon starting, listening on %s", s.socketPath)

	combinedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-s.ctx.Done():
			cancel()
		case <-combinedCtx.Done():
		}
	}()

	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- s.acceptLoop(combinedCtx)
	}()

	go s.broadcastLoop(combinedCtx)
	go s.monitorHealth(combinedCtx)

	select {
	case <-combinedCtx.Done():
		log.Println("Daemon context cancelled, shutting down")
	case err := <-acceptErr:
		if err != nil {
			log.Printf("Accept loop error: %v", err)
		}
	}

	return s.Shutdown()
}

// acceptLoop accepts incoming client connections
func (s *Server) acceptLoop(ctx context.Context) error {
	unixListener, _ := s.listener.(*net.UnixListener)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// Set a deadline so we can check for context cancellation
		if unixListener != nil {
			if err := unixListener.SetDeadline(time.Now().Add(1 * time.Second)); err != nil {
				log.Printf("Error setting listener deadline: %v", err)
			}
		}

		conn, err := s.listener.Accept()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{
			conn:     conn,
			send:     make(chan events.Message, s.clientBufferSize),
			lastPong: time.Now(),
		}

		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()

		s.updateClientCount()
		log.Printf("Client connected, total clients: %d", s.ClientCount())

		go s.handleClient(c)
		go s.clientWriter(c)
	}
}

// broadcastLoop distributes events to subscribed clients
func (s *Server) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event := <-s.broadcast:
			event.SequenceID = s.sequenceCounter.Add(1)
			if event.Timestamp.IsZero() {
				event.Timestamp = time.Now()
			}
			s.metrics.IncBroadcastsTotal()

			msg := events.Message{
				Version: events.ProtocolVersion,
				Type:    "event",
				Event:   &event,
			}

			for _, c := range s.snapshotClients() {
				if !c.subscribed(event.Board) {
					continue
				}
				// Non-blocking send - if client is slow, skip
				if !s.sendToClient(c, msg) {
					log.Printf("Client send queue full, event dropped (board %q)", event.Board)
				}
			}
		}
	}
}

// handleClient reads messages from a connected client
func (s *Server) handleClient(c *client) {
	defer func() {
		s.removeClient(c)
		log.Printf("Client disconnected, total clients: %d", s.ClientCount())
	}()

	decoder := json.NewDecoder(c.conn)

	for {
		var msg events.Message
		if err := decoder.Decode(&msg); err != nil {
			return
		}

		if msg.Version != 0 && msg.Version != events.ProtocolVersion {
			log.Printf("Warning: received message with protocol version %d, expected %d", msg.Version, events.ProtocolVersion)
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil || msg.Event.Type != events.EventBoardChanged {
				continue
			}
			s.metrics.IncEventsReceived()
			if err := s.Broadcast(*msg.Event); err != nil {
				s.metrics.IncEventsDropped()
				log.Printf("Dropping event for board %q: %v", msg.Event.Board, err)
			}

		case "subscribe":
			if msg.Subscribe != nil {
				c.mu.Lock()
				c.subscription = *msg.Subscribe
				c.mu.Unlock()
				log.Printf("Client subscribed to board %q", msg.Subscribe.Board)
			}

		case "pong":
			c.mu.Lock()
			c.lastPong = time.Now()
			c.mu.Unlock()
		}
	}
}

// clientWriter sends messages to a client
func (s *Server) clientWriter(c *client) {
	encoder := json.NewEncoder(c.conn)

	for msg := range c.send {
		if err := encoder.Encode(msg); err != nil {
			return
		}
	}
}

// monitorHealth sends ping messages and removes stale clients
func (s *Server) monitorHealth(ctx context.Context) {
	pingTicker := time.NewTicker(s.pingInterval)
	defer pingTicker.Stop()

	pingMsg := events.Message{
		Version: events.ProtocolVersion,
		Type:    "ping",
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-pingTicker.C:
			now := time.Now()
			var stale []*client

			for _, c := range s.snapshotClients() {
				c.mu.Lock()
				lastPong := c.lastPong
				c.mu.Unlock()

				if now.Sub(lastPong) > s.staleAfter {
					stale = append(stale, c)
					continue
				}
				if !s.sendToClient(c, pingMsg) {
					log.Printf("Failed to send ping to client (queue full)")
				}
			}

			for _, c := range stale {
				log.Printf("Removing stale client (no pong for %v)", s.staleAfter)
				s.metrics.IncStaleRemoved()
				s.removeClient(c)
			}
		}
	}
}

// Broadcast sends an event to the broadcast channel (non-blocking)
func (s *Server) Broadcast(event events.Event) error {
	if s.ctx.Err() != nil {
		return fmt.Errorf("daemon shutting down")
	}
	select {
	case s.broadcast <- event:
		return nil
	default:
		return fmt.Errorf("broadcast channel full")
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		log.Println("Shutting down daemon...")

		s.cancel()

		if s.listener != nil {
			if closeErr := s.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
				log.Printf("Error closing listener: %v", closeErr)
			}
		}

		s.mu.Lock()
		clients := make([]*client, 0, len(s.clients))
		for c := range s.clients {
			clients = append(clients, c)
		}
		s.clients = make(map[*client]bool)
		s.mu.Unlock()

		for _, c := range clients {
			s.closeClient(c)
		}
		s.updateClientCount()

		if removeErr := os.Remove(s.socketPath); removeErr != nil && !os.IsNotExist(removeErr) {
			log.Printf("Warning: failed to remove socket file: %v", removeErr)
		}
	})

	return nil
}

// Helper methods

// ClientCount returns the number of connected clients
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) updateClientCount() {
	s.metrics.SetConnectedClients(int32(s.ClientCount()))
}

func (s *Server) snapshotClients() []*client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	return clients
}

// removeClient safely removes a client from the server
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()

	s.closeClient(c)
	s.updateClientCount()
}

// closeClient closes the connection and send queue exactly once
func (s *Server) closeClient(c *client) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if err := c.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("Error closing client connection: %v", err)
	}
	close(c.send)
}

// sendToClient attempts to send a message to a client (non-blocking)
// Returns true if successful, false if the queue is full or the client is gone
func (s *Server) sendToClient(c *client, msg events.Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		s.metrics.IncEventsSent()
		return true
	default:
		s.metrics.IncEventsDropped()
		return false
	}
}
