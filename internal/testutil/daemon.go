package testutil

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/leadboard/internal/daemon"
	"github.com/thenoetrevino/leadboard/internal/events"
)

// GetTestSocketPath generates a unique temporary socket path for testing.
// The socket is guaranteed to not exist and will be cleaned up by test cleanup.
func GetTestSocketPath(t *testing.T) string {
	t.Helper()

	// Create a unique temporary directory for this test
	tmpDir := t.TempDir()
	socketPath := filepath.Join(tmpDir, "test-leadboard.sock")

	// Register cleanup to remove socket if it exists
	t.Cleanup(func() {
		if _, err := os.Stat(socketPath); err == nil {
			_ = os.Remove(socketPath)
		}
	})

	return socketPath
}

// SetupTestDaemon creates a test daemon server on a temporary socket.
// It starts the server in a goroutine and waits for it to be ready.
// Returns the server and socket path. Cleanup is automatic via t.Cleanup().
func SetupTestDaemon(t *testing.T) (*daemon.Server, string) {
	t.Helper()

	socketPath := GetTestSocketPath(t)

	server, err := daemon.NewServer(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test daemon: %v", err)
	}

	// Register cleanup FIRST, before starting server
	t.Cleanup(func() {
		if err := server.Shutdown(); err != nil {
			t.Logf("Warning: daemon shutdown error during cleanup: %v", err)
		}
		// Double-check socket removal
		if _, err := os.Stat(socketPath); err == nil {
			if err := os.Remove(socketPath); err != nil {
				t.Logf("Warning: failed to remove socket during cleanup: %v", err)
			}
		}
	})

	// Start server in background
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() {
		if err := server.Start(ctx); err != nil {
			t.Logf("Server error: %v", err)
		}
	}()

	// Wait for socket to be created (max 2 seconds)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(socketPath); err == nil {
			// Socket exists, give server a moment to be ready
			time.Sleep(10 * time.Millisecond)
			return server, socketPath
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatal("Timeout waiting for daemon socket to be created")
	return nil, ""
}

// SetupTestClient creates a test event client connected to the given socket path.
// Cleanup is automatic via t.Cleanup().
func SetupTestClient(t *testing.T, socketPath string) *events.Client {
	t.Helper()

	client, err := events.NewClient(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}

	// Register cleanup
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("Warning: client close error during cleanup: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect test client: %v", err)
	}

	return client
}

// ConnectRawClient creates a raw net.Conn to the daemon socket for low-level testing.
// Returns the connection, encoder, and decoder. Cleanup is automatic via t.Cleanup().
func ConnectRawClient(t *testing.T, socketPath string) (net.Conn, *json.Encoder, *json.Decoder) {
	t.Helper()

	conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", socketPath)
	if err != nil {
		t.Fatalf("Failed to dial daemon socket: %v", err)
	}

	// Register cleanup
	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Logf("Warning: connection close error during cleanup: %v", err)
		}
	})

	encoder := json.NewEncoder(conn)
	decoder := json.NewDecoder(conn)

	return conn, encoder, decoder
}

// WaitForEvent waits for an event on a channel with timeout.
// Returns the event if received, or fails the test on timeout.
func WaitForEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) events.Event {
	t.Helper()

	select {
	case event, ok := <-ch:
		if !ok {
			t.Fatal("Event channel closed unexpectedly")
		}
		return event
	case <-time.After(timeout):
		t.Fatalf("Timeout waiting for event after %v", timeout)
		return events.Event{}
	}
}

// WaitForNoEvent verifies that NO event is received within the timeout.
// This is useful for testing that events are NOT sent when they shouldn't be.
func WaitForNoEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) {
	t.Helper()

	select {
	case event := <-ch:
		t.Fatalf("Unexpected event received: %+v", event)
	case <-time.After(timeout):
		// Success - no event received
	}
}

// SendSubscribeMessage subscribes a raw connection to one board ("" for all).
func SendSubscribeMessage(t *testing.T, encoder *json.Encoder, board string) {
	t.Helper()

	msg := events.Message{
		Version: events.ProtocolVersion,
		Type:    "subscribe",
		Subscribe: &events.SubscribeMessage{
			Board: board,
		},
	}

	if err := encoder.Encode(msg); err != nil {
		t.Fatalf("Failed to send subscribe message: %v", err)
	}
}

// SendEventMessage sends an event message from a raw connection.
func SendEventMessage(t *testing.T, encoder *json.Encoder, event events.Event) {
	t.Helper()

	msg := events.Message{
		Version: events.ProtocolVersion,
		Type:    "event",
		Event:   &event,
	}

	if err := encoder.Encode(msg); err != nil {
		t.Fatalf("Failed to send event message: %v", err)
	}
}

// WaitForCondition waits for a condition to become true within the timeout.
// The condition function is called repeatedly until it returns true or timeout.
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, description string) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Logf("Timeout waiting for condition: %s", description)
	return false
}
