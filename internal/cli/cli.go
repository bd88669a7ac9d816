package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/leadboard/internal/app"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/events"
)

// CLI represents the CLI application context
type CLI struct {
	App         *app.App // Application container with services
	eventClient events.EventPublisher
	owned       bool
}

// NewCLI opens the configured board and, if a sync daemon is running,
// connects to it so moves made here reach open boards.
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	// Silent fallback when the daemon is not running
	var eventClient events.EventPublisher
	client, err := events.NewClient(cfg.SocketPath())
	if err == nil {
		if err := client.Connect(ctx); err == nil {
			eventClient = client
		} else {
			_ = client.Close()
		}
	}

	application, err := app.New(ctx, cfg, app.WithEventPublisher(eventClient))
	if err != nil {
		if eventClient != nil {
			_ = eventClient.Close()
		}
		return nil, err
	}

	return &CLI{
		App:         application,
		eventClient: eventClient,
		owned:       true,
	}, nil
}

// Close flushes pending events and releases the board storage.
// A CLI borrowed from the context leaves the app open for its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	if c.eventClient != nil {
		_ = c.eventClient.Close()
	}
	return c.App.Close()
}
