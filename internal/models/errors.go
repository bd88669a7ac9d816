package models

import "errors"

// Domain errors for board operations
var (
	// ErrUnknownColumn indicates a column id outside the fixed pipeline
	ErrUnknownColumn = errors.New("unknown column")

	// ErrCardNotInColumn indicates a move whose card is not in the claimed source column
	ErrCardNotInColumn = errors.New("card is not in the source column")

	// ErrCardNotFound indicates a card id that is not on the board
	ErrCardNotFound = errors.New("card not found")

	// ErrDuplicateCard indicates the same card id in more than one place
	ErrDuplicateCard = errors.New("card already present")

	// ErrInvalidCard indicates a card that fails field validation
	ErrInvalidCard = errors.New("invalid card")

	// ErrCorruptSnapshot indicates a persisted snapshot that cannot be used
	ErrCorruptSnapshot = errors.New("corrupt board snapshot")

	// ErrPersistFailed indicates the in-memory move succeeded but the write did not
	ErrPersistFailed = errors.New("failed to persist board")

	// ErrInvalidPayload indicates a drag transfer payload that cannot be parsed
	ErrInvalidPayload = errors.New("invalid transfer payload")

	// ErrAlreadyFirstColumn indicates a leftward move from the first column
	ErrAlreadyFirstColumn = errors.New("card is already in the first column")

	// ErrAlreadyLastColumn indicates a rightward move from the last column
	ErrAlreadyLastColumn = errors.New("card is already in the last column")
)
