package lead

import "errors"

// Validation errors
var (
	ErrEmptyCardID     = errors.New("card id cannot be empty")
	ErrInvalidPosition = errors.New("invalid position: must be >= 0")
)
