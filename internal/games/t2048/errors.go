package t2048

import "errors"

// Errors returned by board operations. They are always wrapped with the
// offending coordinate or value, so match them with errors.Is.
var (
	ErrOutOfBounds  = errors.New("t2048: coordinate out of bounds")
	ErrOccupiedCell = errors.New("t2048: cell already occupied")
	ErrInvalidSize  = errors.New("t2048: invalid board size")
	ErrInvalidValue = errors.New("t2048: invalid tile value")
)
