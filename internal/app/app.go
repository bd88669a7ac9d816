package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/database"
	"github.com/thenoetrevino/leadboard/internal/events"
	"github.com/thenoetrevino/leadboard/internal/services/lead"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Board state, the only writer of column membership
	Store *board.Store

	// Service layer (business logic)
	LeadService lead.Service

	// Event system for live updates
	eventClient events.EventPublisher

	db     *sql.DB
	logger *slog.Logger
}

// New creates a new App with all services initialized.
// The storage backend is chosen by cfg.Board.Storage unless WithProvider is given.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	options := &appConfig{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	a := &App{
		Config:      cfg,
		eventClient: options.eventClient,
		logger:      options.logger,
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = a.openProvider(ctx)
		if err != nil {
			return nil, err
		}
	}

	a.Store = board.New(provider, board.WithLogger(a.logger))
	a.LeadService = lead.NewService(a.Store, a.eventClient, cfg.Board.Name, a.logger)
	a.Store.OnChange(a.LeadService.NotifyMoved)

	a.Store.LoadOrSeed()
	return a, nil
}

// openProvider builds the snapshot provider for the configured backend
func (a *App) openProvider(ctx context.Context) (board.Provider, error) {
	switch a.Config.Board.Storage {
	case config.StorageMemory:
		return board.NewMemoryProvider(), nil
	case config.StorageFile:
		return board.NewFileProvider(a.Config.SnapshotPath()), nil
	default:
		db, err := database.InitDB(ctx, a.Config.DatabasePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.db = db
		repo := database.NewSnapshotRepository(db)
		return database.NewSnapshotProvider(repo, a.Config.Board.Name), nil
	}
}

// BoardKey returns the name of the open board
func (a *App) BoardKey() string {
	return a.Config.Board.Name
}

// EventClient returns the live update client, or nil when running without the daemon
func (a *App) EventClient() events.EventPublisher {
	return a.eventClient
}

// Close releases the database handle if one was opened
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// ConnectEvents creates a client for the sync daemon at socketPath.
// A missing daemon is not fatal: the warning is logged and nil is returned.
func ConnectEvents(ctx context.Context, socketPath string) events.EventPublisher {
	client, err := events.NewClient(socketPath)
	if err != nil {
		daemonErr := events.ClassifyDaemonError(err)
		slog.Warn("failed to create daemon client", "message", daemonErr.Message, "hint", daemonErr.Hint)
		slog.Info("continuing without live updates")
		return nil
	}

	if err := client.Connect(ctx); err != nil {
		daemonErr := events.ClassifyDaemonError(err)
		slog.Warn("failed to connect to daemon", "message", daemonErr.Message, "hint", daemonErr.Hint)
		slog.Info("continuing without live updates")
		_ = client.Close()
		return nil
	}
	return client
}
