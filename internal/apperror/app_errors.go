package apperror

import "errors"

var (
	ErrSquareOutOfRange = errors.New("square is out of range")
	ErrOutsideBoard     = errors.New("point is outside the board")
	ErrUnknownAction    = errors.New("unknown action")
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrUnknownMode      = errors.New("unknown application mode")
)
