package handlers

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/leadboard/internal/app"
	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/events"
	"github.com/thenoetrevino/leadboard/internal/input"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/tui"
	"github.com/thenoetrevino/leadboard/internal/tui/layout"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
)

// ============================================================================
// Helpers
// ============================================================================

func setupModel(t *testing.T, provider *board.MemoryProvider) *tui.Model {
	t.Helper()
	cfg := config.Default()
	cfg.Board.Storage = config.StorageMemory
	cfg.Board.DataDir = t.TempDir()

	application, err := app.New(context.Background(), cfg, app.WithProvider(provider))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	m := tui.InitialModel(context.Background(), application, cfg, nil)
	Update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func press(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	return Update(m, msg)
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var (
	enterKey      = tea.KeyPressMsg{Code: tea.KeyEnter}
	escKey        = tea.KeyPressMsg{Code: tea.KeyEscape}
	shiftRightKey = tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift}
)

// cardCell returns a cell inside the visible card slot of column col
func cardCell(m *tui.Model, col models.ColumnID, slot int) (int, int) {
	l := m.Layout()
	return l.ColumnX(col.Index()) + 2, l.CardsTop() + slot*layout.CardHeight + 1
}

// columnCell returns a cell inside column col below its cards
func columnCell(m *tui.Model, col models.ColumnID) (int, int) {
	l := m.Layout()
	return l.ColumnX(col.Index()) + 2, l.BoardTop() + l.ColumnHeight - 2
}

func click(m *tui.Model, x, y int) {
	Update(m, tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
}

func motion(m *tui.Model, x, y int) {
	Update(m, tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft})
}

func releaseAt(m *tui.Model, x, y int) {
	Update(m, tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft})
}

func columnOf(t *testing.T, m *tui.Model, cardID string) models.ColumnID {
	t.Helper()
	col, ok := m.App.Store.FindColumnOf(cardID)
	require.True(t, ok, "card %s should be on the board", cardID)
	return col
}

// ============================================================================
// Keyboard grab
// ============================================================================

func TestKeyboardGrab_MovesToNextColumn(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())

	card, ok := m.CurrentCard()
	require.True(t, ok)
	require.Equal(t, "1", card.ID)

	press(m, enterKey)
	assert.True(t, m.Grab.IsGrabbed("1"))

	press(m, shiftRightKey)

	assert.Equal(t, models.ColumnContacted, columnOf(t, m, "1"))
	assert.Equal(t, input.GrabIdle, m.Grab.State())

	focused, ok := m.CurrentCard()
	require.True(t, ok)
	assert.Equal(t, "1", focused.ID, "focus follows the moved card")
	assert.Equal(t, models.ColumnContacted, m.CurrentColumn())

	cards := m.Board[models.ColumnContacted]
	assert.Equal(t, "1", cards[len(cards)-1].ID, "card is appended to the end")
}

func TestKeyboardGrab_LastColumnIsNoop(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())
	_, err := m.App.Store.MoveCard(models.MoveIntent{CardID: "8", From: models.ColumnQualified, To: models.ColumnLost})
	require.NoError(t, err)
	m.Refresh()
	require.True(t, m.Focus("8"))

	press(m, enterKey)
	press(m, shiftRightKey)

	assert.Equal(t, models.ColumnLost, columnOf(t, m, "8"))
	assert.True(t, m.Grab.IsGrabbed("8"), "card stays grabbed at the edge")
}

func TestKeyboardGrab_EscapeReleases(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())

	press(m, enterKey)
	press(m, escKey)
	press(m, shiftRightKey)

	assert.Equal(t, input.GrabIdle, m.Grab.State())
	assert.Equal(t, models.ColumnNew, columnOf(t, m, "1"))
}

func TestKeyboardGrab_RequiresFocusOnGrabbedCard(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())

	press(m, enterKey)     // grab card 1
	press(m, runeKey('j')) // focus card 2
	press(m, shiftRightKey)

	assert.Equal(t, models.ColumnNew, columnOf(t, m, "1"))
	assert.Equal(t, models.ColumnNew, columnOf(t, m, "2"))
	assert.True(t, m.Grab.IsGrabbed("1"))
}

func TestKeyboardGrab_ShiftLeftFromFirstColumn(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())
	shiftLeft := tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModShift}

	press(m, enterKey)
	press(m, shiftLeft)

	assert.Equal(t, models.ColumnNew, columnOf(t, m, "1"))
	assert.True(t, m.Grab.IsGrabbed("1"))
}

// ============================================================================
// Navigation
// ============================================================================

func TestNavigation_ColumnsAndCards(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())

	press(m, runeKey('l'))
	assert.Equal(t, models.ColumnContacted, m.CurrentColumn())

	press(m, runeKey('j'))
	press(m, runeKey('j')) // clamped at the last card
	card, ok := m.CurrentCard()
	require.True(t, ok)
	assert.Equal(t, "5", card.ID)

	press(m, runeKey('h'))
	press(m, runeKey('h')) // clamped at the first column
	assert.Equal(t, models.ColumnNew, m.CurrentColumn())

	press(m, runeKey('k'))
	press(m, runeKey('k'))
	card, _ = m.CurrentCard()
	assert.Equal(t, "1", card.ID)
}

func TestNavigation_EmptyColumnHasNoCard(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())
	for range 3 {
		press(m, runeKey('l'))
	}

	assert.Equal(t, models.ColumnWon, m.CurrentColumn())
	_, ok := m.CurrentCard()
	assert.False(t, ok)

	press(m, enterKey)
	assert.Equal(t, input.GrabIdle, m.Grab.State())
}

// ============================================================================
// Pointer drag
// ============================================================================

func TestPointerDrag_DropOnAnotherColumn(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())

	x, y := cardCell(m, models.ColumnContacted, 0)
	click(m, x, y)
	id, ok := m.Drag.DraggedCard()
	require.True(t, ok)
	require.Equal(t, "4", id)

	qx, qy := columnCell(m, models.ColumnQualified)
	motion(m, qx, qy)
	col, ready := m.Drag.DropReadyColumn()
	require.True(t, ready)
	assert.Equal(t, models.ColumnQualified, col)

	releaseAt(m, qx, qy)

	assert.Equal(t, models.ColumnQualified, columnOf(t, m, "4"))
	assert.Equal(t, input.DragIdle, m.Drag.State())
	assert.False(t, m.Pointer.Active())
	focused, _ := m.CurrentCard()
	assert.Equal(t, "4", focused.ID)
}

func TestPointerDrag_LeaveAndReleaseOutside(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())
	before := m.App.Store.Board()

	x, y := cardCell(m, models.ColumnContacted, 0)
	click(m, x, y)

	wx, wy := columnCell(m, models.ColumnWon)
	motion(m, wx, wy)
	_, ready := m.Drag.DropReadyColumn()
	require.True(t, ready, "won should be drop-ready")

	motion(m, wx, 0) // title bar, outside every column
	_, ready = m.Drag.DropReadyColumn()
	assert.False(t, ready)
	assert.Equal(t, input.DragDragging, m.Drag.State())

	releaseAt(m, wx, 0)

	assert.True(t, before.Equal(m.App.Store.Board()), "board unchanged")
	assert.Equal(t, input.DragIdle, m.Drag.State())
	_, dragging := m.Drag.DraggedCard()
	assert.False(t, dragging)
}

func TestPointerDrag_DropOnSourceColumn(t *testing.T) {
	provider := board.NewMemoryProvider()
	m := setupModel(t, provider)
	writes := provider.Writes()

	x, y := cardCell(m, models.ColumnNew, 1)
	click(m, x, y)
	sx, sy := columnCell(m, models.ColumnNew)
	motion(m, sx, sy)
	releaseAt(m, sx, sy)

	assert.Equal(t, models.ColumnNew, columnOf(t, m, "2"))
	assert.Equal(t, writes, provider.Writes(), "no snapshot write for a no-op drop")
	assert.Equal(t, input.DragIdle, m.Drag.State())
}

func TestPointerDrag_EscapeCancels(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())

	x, y := cardCell(m, models.ColumnNew, 0)
	click(m, x, y)
	press(m, escKey)

	assert.Equal(t, input.DragIdle, m.Drag.State())
	assert.False(t, m.Pointer.Active())

	// a late release must not move anything
	wx, wy := columnCell(m, models.ColumnWon)
	releaseAt(m, wx, wy)
	assert.Equal(t, models.ColumnNew, columnOf(t, m, "1"))
}

func TestPointerDrag_ClickOnEmptySpaceSelectsColumn(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())

	x, y := columnCell(m, models.ColumnWon)
	click(m, x, y)

	assert.Equal(t, models.ColumnWon, m.CurrentColumn())
	assert.Equal(t, input.DragIdle, m.Drag.State())
}

func TestPointerDrag_RightButtonIgnored(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())

	x, y := cardCell(m, models.ColumnNew, 0)
	Update(m, tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseRight})

	assert.Equal(t, input.DragIdle, m.Drag.State())
}

// ============================================================================
// Live updates and toggles
// ============================================================================

func TestRefresh_ReloadsCurrentBoard(t *testing.T) {
	provider := board.NewMemoryProvider()
	m := setupModel(t, provider)

	other, err := app.New(context.Background(), m.Config, app.WithProvider(provider))
	require.NoError(t, err)
	_, err = other.Store.MoveCard(models.MoveIntent{CardID: "1", From: models.ColumnNew, To: models.ColumnWon})
	require.NoError(t, err)

	Update(m, tui.RefreshMsg{Event: events.Event{Type: events.EventBoardChanged, Board: "partners"}})
	assert.Equal(t, models.ColumnNew, columnOf(t, m, "1"), "events for other boards are ignored")

	Update(m, tui.RefreshMsg{Event: events.Event{Type: events.EventBoardChanged, Board: m.App.BoardKey()}})
	assert.Equal(t, models.ColumnWon, columnOf(t, m, "1"))
	assert.Equal(t, "1", m.Board[models.ColumnWon][0].ID)
}

func TestNotification_UpdatesConnectionState(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())

	Update(m, events.NotificationMsg{Level: "warning", Message: "Lost connection to sync daemon, reconnecting"})
	assert.Equal(t, state.Reconnecting, m.ConnectionState.Status())
	assert.True(t, m.NotificationState.HasAny())

	Update(m, events.NotificationMsg{Level: "info", Message: "Reconnected to sync daemon"})
	assert.Equal(t, state.Connected, m.ConnectionState.Status())

	Update(m, events.NotificationMsg{Level: "error", Message: "Sync daemon unavailable"})
	assert.Equal(t, state.Disconnected, m.ConnectionState.Status())

	press(m, runeKey('j'))
	assert.False(t, m.NotificationState.HasAny(), "a key press dismisses notifications")
}

func TestHelpMode_Toggle(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())

	press(m, runeKey('?'))
	assert.Equal(t, state.HelpMode, m.UiState.Mode())

	// board keys are inert while help is open
	press(m, runeKey('l'))
	assert.Equal(t, models.ColumnNew, m.CurrentColumn())

	press(m, escKey)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestDetail_Toggle(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())

	press(m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	assert.True(t, m.UiState.ShowDetail())

	press(m, escKey)
	assert.False(t, m.UiState.ShowDetail())
}

func TestQuit(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())

	cmd := press(m, runeKey('q'))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestUpdate_CancelledContextQuits(t *testing.T) {
	m := setupModel(t, board.NewMemoryProvider())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.Ctx = ctx

	cmd := Update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
