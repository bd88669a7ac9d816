package cli

import (
	"context"

	"github.com/thenoetrevino/leadboard/internal/app"
	"github.com/thenoetrevino/leadboard/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp attaches an already built app, used by tests and the TUI launcher
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig attaches the config resolved from root flags
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the config set by WithConfig, if any
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx == nil {
		return nil
	}
	cfg, _ := ctx.Value(configKey).(*config.Config)
	return cfg
}

// GetCLIFromContext returns a CLI for the command being run.
// An app attached with WithApp is reused; otherwise one is opened from config.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, eventClient: a.EventClient()}, nil
	}
	return NewCLI(ctx, ConfigFromContext(ctx))
}
