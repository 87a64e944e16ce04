package apperror

import "errors"

var (
	ErrInvalidSide    = errors.New("board side must be at least 1")
	ErrInvalidPlayer  = errors.New("player must be 1 or 2")
	ErrUnknownPattern = errors.New("unknown board pattern")
)
