package lead

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/events"
	"github.com/thenoetrevino/leadboard/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// recordingPublisher records every event handed to SendEvent
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	fail   bool
}

func (p *recordingPublisher) SendEvent(event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("queue full")
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) sent() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}

func (p *recordingPublisher) Connect(ctx context.Context) error                       { return nil }
func (p *recordingPublisher) Listen(ctx context.Context) (<-chan events.Event, error) { return nil, nil }
func (p *recordingPublisher) Subscribe(board string) error                            { return nil }
func (p *recordingPublisher) SetNotifyFunc(fn events.NotifyFunc)                      {}
func (p *recordingPublisher) Close() error                                            { return nil }

func setupService(t *testing.T) (Service, *board.Store, *recordingPublisher) {
	t.Helper()
	store := board.New(board.NewMemoryProvider())
	store.LoadOrSeed()
	pub := &recordingPublisher{}
	svc := NewService(store, pub, "pipeline", nil)
	store.OnChange(svc.NotifyMoved)
	return svc, store, pub
}

// ============================================================================
// Read Tests
// ============================================================================

func TestGetCard(t *testing.T) {
	svc, _, _ := setupService(t)

	loc, err := svc.GetCard("3")
	require.NoError(t, err)
	assert.Equal(t, models.ColumnQualified, loc.Column)
	assert.Equal(t, 0, loc.Index)
	assert.Equal(t, "3", loc.Card.ID)

	_, err = svc.GetCard("999")
	assert.ErrorIs(t, err, models.ErrCardNotFound)

	_, err = svc.GetCard("")
	assert.ErrorIs(t, err, ErrEmptyCardID)
}

// ============================================================================
// Move Tests
// ============================================================================

func TestMoveCard_ResolvesSourceColumn(t *testing.T) {
	svc, store, pub := setupService(t)

	res, err := svc.MoveCard(MoveCardRequest{CardID: "3", To: models.ColumnWon})
	require.NoError(t, err)

	assert.True(t, res.Moved)
	assert.Equal(t, models.ColumnQualified, res.From)
	assert.Equal(t, models.ColumnWon, res.To)
	assert.Equal(t, 0, res.Index)

	col, ok := store.FindColumnOf("3")
	require.True(t, ok)
	assert.Equal(t, models.ColumnWon, col)

	sent := pub.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, events.EventBoardChanged, sent[0].Type)
	assert.Equal(t, "pipeline", sent[0].Board)
	assert.Equal(t, "3", sent[0].CardID)
}

func TestMoveCard_WithIndex(t *testing.T) {
	svc, store, _ := setupService(t)

	res, err := svc.MoveCard(MoveCardRequest{CardID: "7", To: models.ColumnQualified, Index: models.IndexPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Index)
	assert.Equal(t, "7", store.Cards(models.ColumnQualified)[1].ID)
}

func TestMoveCard_SameColumnIsSilentSuccess(t *testing.T) {
	svc, _, pub := setupService(t)

	res, err := svc.MoveCard(MoveCardRequest{CardID: "1", To: models.ColumnNew})
	require.NoError(t, err)
	assert.False(t, res.Moved)
	assert.Equal(t, models.ColumnNew, res.To)
	assert.Empty(t, pub.sent(), "no-op moves should not notify peers")
}

func TestMoveCard_Validation(t *testing.T) {
	svc, _, _ := setupService(t)

	tests := []struct {
		name string
		req  MoveCardRequest
		want error
	}{
		{"empty id", MoveCardRequest{To: models.ColumnWon}, ErrEmptyCardID},
		{"unknown column", MoveCardRequest{CardID: "1", To: "archived"}, models.ErrUnknownColumn},
		{"negative index", MoveCardRequest{CardID: "1", To: models.ColumnWon, Index: models.IndexPtr(-1)}, ErrInvalidPosition},
		{"missing card", MoveCardRequest{CardID: "42", To: models.ColumnWon}, models.ErrCardNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.MoveCard(tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMoveCardAdjacent(t *testing.T) {
	svc, _, _ := setupService(t)

	res, err := svc.MoveCardToNextColumn("4")
	require.NoError(t, err)
	assert.Equal(t, models.ColumnContacted, res.From)
	assert.Equal(t, models.ColumnQualified, res.To)

	res, err = svc.MoveCardToPrevColumn("4")
	require.NoError(t, err)
	assert.Equal(t, models.ColumnContacted, res.To)

	_, err = svc.MoveCardToPrevColumn("1")
	assert.ErrorIs(t, err, models.ErrAlreadyFirstColumn)

	_, err = svc.MoveCard(MoveCardRequest{CardID: "1", To: models.ColumnLost})
	require.NoError(t, err)
	_, err = svc.MoveCardToNextColumn("1")
	assert.ErrorIs(t, err, models.ErrAlreadyLastColumn)
}

func TestMoveCard_PersistFailureStillReportsMove(t *testing.T) {
	store := board.New(refusingProvider{})
	store.LoadOrSeed()
	svc := NewService(store, nil, "pipeline", nil)

	res, err := svc.MoveCard(MoveCardRequest{CardID: "3", To: models.ColumnWon})
	require.Error(t, err)
	assert.True(t, board.IsPersistError(err))
	require.NotNil(t, res)
	assert.True(t, res.Moved)
	assert.Equal(t, models.ColumnWon, res.To)
}

// refusingProvider reads as empty and rejects every write
type refusingProvider struct{}

func (refusingProvider) Read() ([]byte, bool, error) { return nil, false, nil }
func (refusingProvider) Write([]byte) error          { return errors.New("read-only filesystem") }

// ============================================================================
// Reset / Publish Tests
// ============================================================================

func TestResetBoard(t *testing.T) {
	svc, _, pub := setupService(t)

	_, err := svc.MoveCard(MoveCardRequest{CardID: "3", To: models.ColumnWon})
	require.NoError(t, err)

	require.NoError(t, svc.ResetBoard())
	assert.True(t, svc.GetBoard().Equal(board.SeedBoard()))

	sent := pub.sent()
	require.Len(t, sent, 2)
	assert.Empty(t, sent[1].CardID, "reset is a whole-board change")
}

func TestPublishFailureDoesNotFailMove(t *testing.T) {
	svc, _, pub := setupService(t)
	pub.fail = true

	res, err := svc.MoveCard(MoveCardRequest{CardID: "5", To: models.ColumnWon})
	require.NoError(t, err)
	assert.True(t, res.Moved)
}
