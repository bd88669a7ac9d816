package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/leadboard/internal/app"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/events"
	"github.com/thenoetrevino/leadboard/internal/tui"
	"github.com/thenoetrevino/leadboard/internal/tui/handlers"
	"github.com/thenoetrevino/leadboard/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model
func New(ctx context.Context, application *app.App, cfg *config.Config, eventClient events.EventPublisher) *App {
	return &App{model: tui.InitialModel(ctx, application, cfg, eventClient)}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update implements tea.Model by delegating to handlers.Update
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, handlers.Update(a.model, msg)
}

// View implements tea.Model by delegating to render.View
func (a *App) View() tea.View {
	return render.View(a.model)
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
