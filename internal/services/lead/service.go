// Package lead holds the board operations shared by the command line and
// the terminal UI: lookups, targeted moves, and reset, plus the board-changed
// notifications that keep other processes in sync.
package lead

import (
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/events"
	"github.com/thenoetrevino/leadboard/internal/models"
)

// Service defines all lead-board business operations
type Service interface {
	// Read operations
	GetBoard() models.Board
	GetCard(cardID string) (*CardLocation, error)

	// Card movements
	MoveCard(req MoveCardRequest) (*MoveResult, error)
	MoveCardToNextColumn(cardID string) (*MoveResult, error)
	MoveCardToPrevColumn(cardID string) (*MoveResult, error)

	// Administration
	ResetBoard() error
	Reload() models.Board

	// NotifyMoved publishes a board-changed event for a persisted move
	NotifyMoved(intent models.MoveIntent)
}

// CardLocation is a card plus the column and position that hold it
type CardLocation struct {
	Card   models.Card
	Column models.ColumnID
	Index  int
}

// MoveCardRequest encapsulates a targeted move. The source column is resolved
// from the board, so callers only name the destination.
type MoveCardRequest struct {
	CardID string
	To     models.ColumnID
	Index  *int // Optional: nil appends to the destination
}

// MoveResult reports where the card ended up
type MoveResult struct {
	CardID string          `json:"card_id"`
	From   models.ColumnID `json:"from_column"`
	To     models.ColumnID `json:"to_column"`
	Index  int             `json:"index"`
	Moved  bool            `json:"moved"`
}

// service implements Service interface
type service struct {
	store       *board.Store
	eventClient events.EventPublisher
	boardKey    string
	logger      *slog.Logger
}

// NewService creates a new lead service for the board identified by boardKey
func NewService(store *board.Store, eventClient events.EventPublisher, boardKey string, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		store:       store,
		eventClient: eventClient,
		boardKey:    boardKey,
		logger:      logger,
	}
}

func (s *service) GetBoard() models.Board {
	return s.store.Board()
}

func (s *service) Reload() models.Board {
	return s.store.Reload()
}

// GetCard finds a card anywhere on the board
func (s *service) GetCard(cardID string) (*CardLocation, error) {
	if cardID == "" {
		return nil, ErrEmptyCardID
	}

	card, col, ok := s.store.Card(cardID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrCardNotFound, cardID)
	}

	return &CardLocation{
		Card:   card,
		Column: col,
		Index:  positionOf(s.store.Cards(col), cardID),
	}, nil
}

// MoveCard moves a card to a named column. Targeting the card's current
// column without an index succeeds without touching the board.
func (s *service) MoveCard(req MoveCardRequest) (*MoveResult, error) {
	if req.CardID == "" {
		return nil, ErrEmptyCardID
	}
	if !req.To.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownColumn, req.To)
	}
	if req.Index != nil && *req.Index < 0 {
		return nil, ErrInvalidPosition
	}

	from, ok := s.store.FindColumnOf(req.CardID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrCardNotFound, req.CardID)
	}

	return s.move(models.MoveIntent{
		CardID:  req.CardID,
		From:    from,
		To:      req.To,
		ToIndex: req.Index,
	})
}

// MoveCardToNextColumn moves a card one column to the right
func (s *service) MoveCardToNextColumn(cardID string) (*MoveResult, error) {
	return s.moveAdjacent(cardID, models.DirectionRight)
}

// MoveCardToPrevColumn moves a card one column to the left
func (s *service) MoveCardToPrevColumn(cardID string) (*MoveResult, error) {
	return s.moveAdjacent(cardID, models.DirectionLeft)
}

func (s *service) moveAdjacent(cardID string, dir models.Direction) (*MoveResult, error) {
	if cardID == "" {
		return nil, ErrEmptyCardID
	}

	from, ok := s.store.FindColumnOf(cardID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrCardNotFound, cardID)
	}

	to, ok := from.Adjacent(dir)
	if !ok {
		if dir == models.DirectionLeft {
			return nil, fmt.Errorf("%w (%s)", models.ErrAlreadyFirstColumn, from.Title())
		}
		return nil, fmt.Errorf("%w (%s)", models.ErrAlreadyLastColumn, from.Title())
	}

	return s.move(models.MoveIntent{CardID: cardID, From: from, To: to})
}

func (s *service) move(intent models.MoveIntent) (*MoveResult, error) {
	moved, err := s.store.MoveCard(intent)
	if err != nil && !board.IsPersistError(err) {
		return nil, err
	}

	col := intent.From
	if moved {
		col = intent.To
	}
	result := &MoveResult{
		CardID: intent.CardID,
		From:   intent.From,
		To:     col,
		Index:  positionOf(s.store.Cards(col), intent.CardID),
		Moved:  moved,
	}

	// A failed write still moved the card in memory; report both
	return result, err
}

// ResetBoard replaces the board with the sample data and tells peers
func (s *service) ResetBoard() error {
	if err := s.store.Reset(); err != nil {
		return fmt.Errorf("failed to reset board: %w", err)
	}
	s.publish("")
	return nil
}

// NotifyMoved is registered as a store listener so every persisted move,
// whichever input produced it, reaches the sync daemon.
func (s *service) NotifyMoved(intent models.MoveIntent) {
	s.publish(intent.CardID)
}

// publish sends a board-changed event if an event client exists
func (s *service) publish(cardID string) {
	if s.eventClient == nil {
		return
	}

	err := events.PublishWithRetry(s.eventClient, events.Event{
		Type:   events.EventBoardChanged,
		Board:  s.boardKey,
		CardID: cardID,
	}, 3)
	if err != nil {
		s.logger.Warn("board change not published", "board", s.boardKey, "card_id", cardID, "error", err)
	}
}

func positionOf(cards []models.Card, cardID string) int {
	for i, c := range cards {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}
