package handlers

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/leadboard/internal/events"
	"github.com/thenoetrevino/leadboard/internal/tui"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	// Context cancelled means graceful shutdown
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tui.RefreshMsg:
		HandleRefresh(m, msg)
		return m.WaitForEvent()

	case tui.EventStreamClosedMsg:
		m.ConnectionState.SetStatus(state.Disconnected)
		return nil

	case events.NotificationMsg:
		HandleNotification(m, msg)
		return m.WaitForNotification()

	case tea.KeyPressMsg:
		return HandleKeyMsg(m, msg)

	case tea.MouseClickMsg:
		return HandleMouseClick(m, msg)

	case tea.MouseMotionMsg:
		return HandleMouseMotion(m, msg)

	case tea.MouseReleaseMsg:
		return HandleMouseRelease(m, msg)

	case tea.WindowSizeMsg:
		return HandleWindowResize(m, msg)
	}

	return nil
}

// HandleKeyMsg dispatches key messages to the appropriate mode handler
func HandleKeyMsg(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.HelpMode:
		return HandleHelpMode(m, msg)
	default:
		return HandleNormalMode(m, msg)
	}
}

// HandleWindowResize handles terminal resize events
func HandleWindowResize(m *tui.Model, msg tea.WindowSizeMsg) tea.Cmd {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)
	m.NotificationState.SetWindowSize(msg.Width, msg.Height)
	m.ClampSelection()
	return nil
}

// HandleRefresh reloads the board when another process changed it.
// Focus stays on the same card if it is still on the board.
func HandleRefresh(m *tui.Model, msg tui.RefreshMsg) {
	if msg.Event.Board != "" && msg.Event.Board != m.App.BoardKey() {
		return
	}

	focused, hadFocus := m.CurrentCard()
	m.App.LeadService.Reload()
	m.Refresh()
	if hadFocus {
		m.Focus(focused.ID)
	}
	slog.Debug("board reloaded after remote change", "board", msg.Event.Board, "card_id", msg.Event.CardID)
}

// HandleNotification shows a connection notice and tracks the link status
func HandleNotification(m *tui.Model, msg events.NotificationMsg) {
	level := state.LevelInfo
	switch msg.Level {
	case "error":
		level = state.LevelError
		m.ConnectionState.SetStatus(state.Disconnected)
	case "warning":
		level = state.LevelWarning
		m.ConnectionState.SetStatus(state.Reconnecting)
	default:
		m.ConnectionState.SetStatus(state.Connected)
	}
	m.NotificationState.Add(level, msg.Message)
}
