package mines

import "errors"

// Sentinel errors returned by the engine. Callers match them with errors.Is;
// the returned errors are wrapped with the offending values.
var (
	// ErrInvalidDifficulty is returned when a difficulty has a zero dimension,
	// no mines, or at least as many mines as cells.
	ErrInvalidDifficulty = errors.New("mines: invalid difficulty")

	// ErrOutOfBounds is returned by any position-taking operation when the
	// position lies outside the current board.
	ErrOutOfBounds = errors.New("mines: position out of bounds")

	// ErrMinesPlaced is returned when mines are placed on a board twice.
	ErrMinesPlaced = errors.New("mines: mines already placed")

	// ErrInvalidLayout is returned by PlaceMines for a layout that does not
	// match the board's difficulty (wrong count or duplicates).
	ErrInvalidLayout = errors.New("mines: invalid mine layout")
)
