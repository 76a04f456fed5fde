package apperror

import "errors"

// board and move errors, raised by the core and never swallowed by it.
var (
	ErrMalformedBoard  = errors.New("malformed board")
	ErrIllegalMove     = errors.New("cell is already occupied")
	ErrOutOfRange      = errors.New("coordinate is out of range")
	ErrNoMoveAvailable = errors.New("no move available")
)

// game session errors.
var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrGameNotFound     = errors.New("game not found")
	ErrUnknownOpponent  = errors.New("unknown opponent")
	ErrUnknownSide      = errors.New("unknown side")
	ErrConcurrentUpdate = errors.New("game was updated concurrently")
)
