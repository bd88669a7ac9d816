package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/leadboard/internal/app"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/events"
	"github.com/thenoetrevino/leadboard/internal/input"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/tui/components"
	"github.com/thenoetrevino/leadboard/internal/tui/layout"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
	"github.com/thenoetrevino/leadboard/internal/tui/theme"
)

// Model is the board TUI state. Update and View live in the handlers and
// render packages; core.App ties them to tea.Model.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config
	Keys   KeyMap
	Help   help.Model

	// Board is the last snapshot read from the store, used for drawing
	Board models.Board

	UiState           *state.UIState
	NotificationState *state.NotificationState
	ConnectionState   *state.ConnectionState
	Pointer           *state.PointerState

	Drag *input.DragController
	Grab *input.GrabController

	// Live updates; both are nil when running without the daemon
	EventChan  <-chan events.Event
	NotifyChan chan events.NotificationMsg
}

// InitialModel builds the model for application. eventClient may be nil.
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config, eventClient events.EventPublisher) *Model {
	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	logger := slog.Default()
	m := &Model{
		Ctx:               ctx,
		App:               application,
		Config:            cfg,
		Keys:              NewKeyMap(cfg.KeyMappings),
		Help:              help.New(),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		ConnectionState:   state.NewConnectionState(state.Offline),
		Pointer:           state.NewPointerState(),
		Drag:              input.NewDragController(application.Store, logger),
		Grab:              input.NewGrabController(application.Store, logger),
	}
	m.Refresh()

	if eventClient != nil {
		m.NotifyChan = make(chan events.NotificationMsg, 10)
		eventClient.SetNotifyFunc(func(level, message string) {
			select {
			case m.NotifyChan <- events.NotificationMsg{Level: level, Message: message}:
			default:
				slog.Debug("notification dropped, channel full", "message", message)
			}
		})

		eventChan, err := eventClient.Listen(ctx)
		if err != nil {
			slog.Warn("failed to listen for board events", "error", err)
		} else {
			m.EventChan = eventChan
			m.ConnectionState.SetStatus(state.Connected)
		}
	}
	return m
}

// Init starts the live update listeners
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.WaitForEvent(), m.WaitForNotification())
}

// WaitForEvent blocks on the next board event from the daemon
func (m *Model) WaitForEvent() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	ch := m.EventChan
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return EventStreamClosedMsg{}
		}
		return RefreshMsg{Event: event}
	}
}

// WaitForNotification blocks on the next connection notification
func (m *Model) WaitForNotification() tea.Cmd {
	if m.NotifyChan == nil {
		return nil
	}
	ch := m.NotifyChan
	return func() tea.Msg {
		return <-ch
	}
}

// Layout returns the board geometry for the current terminal size
func (m *Model) Layout() layout.Layout {
	return layout.New(m.UiState.Width(), m.UiState.Height())
}
