package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/daemon"
)

// metricsInterval is how often the daemon logs its counters
const metricsInterval = 5 * time.Minute

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	// Data directory comes from the same config the board uses (HOME is set by systemd)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	socketPath := cfg.SocketPath()

	// Ensure the data directory exists with secure permissions
	if err := os.MkdirAll(cfg.Board.DataDir, 0o700); err != nil {
		slog.Error("failed to create data directory", "path", cfg.Board.DataDir, "error", err)
		os.Exit(1)
	}

	// Create and start the daemon server
	server, err := daemon.NewServer(socketPath)
	if err != nil {
		slog.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	slog.Info("leadboard daemon starting", "socket_path", socketPath, "pid", os.Getpid())

	go logMetrics(ctx, server)

	// Start the daemon (blocks until shutdown)
	if err := server.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	snap := server.Metrics().GetSnapshot()
	slog.Info("leadboard daemon shutting down gracefully",
		"events_received", snap.EventsReceived,
		"broadcasts", snap.BroadcastsTotal,
		"uptime", snap.Uptime)
}

func logMetrics(ctx context.Context, server *daemon.Server) {
	ticker := time.NewTicker(metricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := server.Metrics().GetSnapshot()
			slog.Info("daemon metrics",
				"clients", snap.ConnectedClients,
				"events_received", snap.EventsReceived,
				"events_sent", snap.EventsSent,
				"events_dropped", snap.EventsDropped,
				"stale_removed", snap.StaleRemoved)
		}
	}
}
