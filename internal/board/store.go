package board

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/leadboard/internal/models"
)

// Store is the single source of truth for column membership and order.
// It is the only component allowed to mutate the board; every successful
// mutation is persisted before the call returns.
type Store struct {
	mu       sync.Mutex
	provider Provider
	board    models.Board
	loaded   bool

	logger   *slog.Logger
	seed     func() models.Board
	onChange []func(models.MoveIntent)
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSeed replaces the sample data used when no valid snapshot exists
func WithSeed(seed func() models.Board) Option {
	return func(s *Store) {
		if seed != nil {
			s.seed = seed
		}
	}
}

// WithOnChange registers a listener called after every persisted move
func WithOnChange(fn func(models.MoveIntent)) Option {
	return func(s *Store) {
		if fn != nil {
			s.onChange = append(s.onChange, fn)
		}
	}
}

// New creates a store backed by provider. Storage is not touched until
// LoadOrSeed (or the first operation that needs the board) is called.
func New(provider Provider, opts ...Option) *Store {
	s := &Store{
		provider: provider,
		logger:   slog.Default(),
		seed:     SeedBoard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers a listener after construction
func (s *Store) OnChange(fn func(models.MoveIntent)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

// LoadOrSeed rehydrates the board from the provider.
// An absent, unreadable or corrupt snapshot is replaced by the seed data,
// which is persisted immediately so later loads are stable.
func (s *Store) LoadOrSeed() models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.board.Clone()
}

// Reload re-reads the provider, discarding the in-memory board.
// It is used when another process reports that the snapshot changed.
func (s *Store) Reload() models.Board {
	return s.LoadOrSeed()
}

// load must be called with s.mu held
func (s *Store) load() {
	s.loaded = true

	data, found, err := s.provider.Read()
	switch {
	case err != nil:
		s.logger.Warn("failed to read board snapshot, seeding", "error", err)
	case !found:
		s.logger.Info("no board snapshot found, seeding")
	default:
		b, decodeErr := DecodeSnapshot(data)
		if decodeErr == nil {
			s.board = b
			return
		}
		s.logger.Warn("board snapshot is corrupt, seeding", "error", decodeErr)
	}

	s.board = s.seed()
	s.board.Normalize()
	if err := s.persist(); err != nil {
		s.logger.Error("failed to persist seed board", "error", err)
	}
}

// ensureLoaded must be called with s.mu held
func (s *Store) ensureLoaded() {
	if !s.loaded {
		s.load()
	}
}

// persist must be called with s.mu held
func (s *Store) persist() error {
	data, err := EncodeSnapshot(s.board)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistFailed, err)
	}
	if err := s.provider.Write(data); err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistFailed, err)
	}
	return nil
}

// MoveCard moves a card between (or within) columns.
//
// It reports whether the board changed. Precondition violations leave the
// board untouched and return a sentinel error; a same-column move without an
// index is a silent no-op. If the snapshot write fails the in-memory move
// stands and the returned error wraps ErrPersistFailed.
func (s *Store) MoveCard(intent models.MoveIntent) (bool, error) {
	s.mu.Lock()
	moved, err := s.moveLocked(intent)
	listeners := s.onChange
	s.mu.Unlock()

	if moved && err == nil {
		for _, fn := range listeners {
			fn(intent)
		}
	}
	return moved, err
}

func (s *Store) moveLocked(intent models.MoveIntent) (bool, error) {
	s.ensureLoaded()

	if !intent.From.Valid() {
		return false, fmt.Errorf("%w: from %q", models.ErrUnknownColumn, intent.From)
	}
	if !intent.To.Valid() {
		return false, fmt.Errorf("%w: to %q", models.ErrUnknownColumn, intent.To)
	}

	source := s.board[intent.From]
	srcIdx := indexOf(source, intent.CardID)
	if srcIdx < 0 {
		s.logger.Debug("move rejected, card not in source column",
			"card_id", intent.CardID, "from", intent.From, "to", intent.To)
		return false, fmt.Errorf("%w: %q not in %s", models.ErrCardNotInColumn, intent.CardID, intent.From)
	}

	if intent.From == intent.To && intent.ToIndex == nil {
		return false, nil
	}

	if intent.From != intent.To && indexOf(s.board[intent.To], intent.CardID) >= 0 {
		s.logger.Error("move rejected, card already in destination column",
			"card_id", intent.CardID, "from", intent.From, "to", intent.To)
		return false, fmt.Errorf("%w: %q already in %s", models.ErrDuplicateCard, intent.CardID, intent.To)
	}

	card := source[srcIdx]
	remaining := make([]models.Card, 0, len(source)-1)
	remaining = append(remaining, source[:srcIdx]...)
	remaining = append(remaining, source[srcIdx+1:]...)
	s.board[intent.From] = remaining

	dest := s.board[intent.To]
	pos := len(dest)
	if intent.ToIndex != nil {
		pos = clamp(*intent.ToIndex, 0, len(dest))
	}

	if intent.From == intent.To && pos == srcIdx {
		s.board[intent.From] = source
		return false, nil
	}

	inserted := make([]models.Card, 0, len(dest)+1)
	inserted = append(inserted, dest[:pos]...)
	inserted = append(inserted, card)
	inserted = append(inserted, dest[pos:]...)
	s.board[intent.To] = inserted

	s.logger.Debug("card moved",
		"card_id", intent.CardID, "from", intent.From, "to", intent.To, "index", pos)

	if err := s.persist(); err != nil {
		s.logger.Error("failed to persist board after move", "card_id", intent.CardID, "error", err)
		return true, err
	}
	return true, nil
}

// FindColumnOf returns the column currently holding the card
func (s *Store) FindColumnOf(cardID string) (models.ColumnID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	for _, col := range models.ColumnOrder {
		if indexOf(s.board[col], cardID) >= 0 {
			return col, true
		}
	}
	return "", false
}

// Card looks up a card and the column that owns it
func (s *Store) Card(cardID string) (models.Card, models.ColumnID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	for _, col := range models.ColumnOrder {
		cards := s.board[col]
		if idx := indexOf(cards, cardID); idx >= 0 {
			return cards[idx].Clone(), col, true
		}
	}
	return models.Card{}, "", false
}

// Board returns a deep copy of the current board
func (s *Store) Board() models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	return s.board.Clone()
}

// Cards returns a copy of one column's ordered card list
func (s *Store) Cards(col models.ColumnID) []models.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	src := s.board[col]
	out := make([]models.Card, len(src))
	for i, c := range src {
		out[i] = c.Clone()
	}
	return out
}

// Reset replaces the board with the seed data and persists it.
// Providers that implement Deleter drop the old snapshot first. A failed
// delete leaves both the stored and the in-memory board untouched.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.provider.(Deleter); ok {
		if err := d.Delete(); err != nil {
			return fmt.Errorf("%w: %v", models.ErrPersistFailed, err)
		}
	}

	s.loaded = true
	s.board = s.seed()
	s.board.Normalize()
	if err := s.persist(); err != nil {
		return err
	}
	s.logger.Info("board reset to seed data")
	return nil
}

// IsPersistError reports whether err came from a failed snapshot write
func IsPersistError(err error) bool {
	return errors.Is(err, models.ErrPersistFailed)
}

func indexOf(cards []models.Card, cardID string) int {
	for i, c := range cards {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
