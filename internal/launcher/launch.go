package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/leadboard/internal/app"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/logging"
	"github.com/thenoetrevino/leadboard/internal/tui/core"
)

// shutdownGrace bounds how long Launch waits for the program to exit after a signal
const shutdownGrace = 5 * time.Second

// Launch starts the board TUI. A nil cfg loads the user configuration.
func Launch(parent context.Context, cfg *config.Config) error {
	if cfg == nil {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	// Initialize logging to file before anything else; the TUI owns the terminal
	if err := logging.Init(cfg.LogDir()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	if parent == nil {
		parent = context.Background()
	}
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Connect to daemon for live updates (optional - daemon may not be running)
	eventClient := app.ConnectEvents(ctx, cfg.SocketPath())
	if eventClient != nil {
		if err := eventClient.Subscribe(cfg.Board.Name); err != nil {
			slog.Warn("failed to subscribe to board events", "board", cfg.Board.Name, "error", err)
		}
		defer func() {
			if err := eventClient.Close(); err != nil {
				slog.Error("error closing event client", "error", err)
			}
		}()
	}

	opts := []app.Option{app.WithLogger(slog.Default())}
	if eventClient != nil {
		opts = append(opts, app.WithEventPublisher(eventClient))
	}
	application, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	slog.Info("starting board", "board", cfg.Board.Name, "storage", cfg.Board.Storage, "live", eventClient != nil)

	tuiApp := core.New(ctx, application, cfg, eventClient)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
			slog.Warn("program did not exit within grace period")
		}
	}

	return nil
}
