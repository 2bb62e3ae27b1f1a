package draughtsmg

import "errors"

var (
	// ErrMalformedFEN reports an unparseable position string.
	ErrMalformedFEN = errors.New("malformed FEN")

	// ErrMalformedMove reports an unparseable movetext string.
	ErrMalformedMove = errors.New("malformed move")

	// ErrInvalidMove reports a move that is not legal in the position it
	// was applied to.
	ErrInvalidMove = errors.New("move is not legal in this position")
)
