// Package mines implements the rules engine of a Minesweeper-style puzzle.
//
// The package holds no UI code. A Board stores cells and executes single-cell
// primitives; a GameState drives a Board through the New → InProgress →
// Won/Lost state machine, placing mines lazily so that the first revealed
// cell is never a mine. Front-ends issue position-indexed commands and drain
// the RevealedCells/FlaggedCells batches to learn what to repaint.
package mines

import (
	"cmp"
	"fmt"
	"slices"
)

// Position is a (column, row) coordinate on a board.
type Position struct {
	Col int
	Row int
}

// NewPosition creates a position from a column and a row.
func NewPosition(col, row int) Position {
	return Position{Col: col, Row: row}
}

// PositionFromIndex converts a linear index back into a position for a board
// with the given height. It is the inverse of Position.Index.
func PositionFromIndex(index, height int) Position {
	return Position{
		Col: index / height,
		Row: index % height,
	}
}

// Index returns the linear index of the position: col*height + row.
func (p Position) Index(height int) int {
	return p.Col*height + p.Row
}

// Offset returns the position shifted by (dc, dr).
func (p Position) Offset(dc, dr int) Position {
	return Position{Col: p.Col + dc, Row: p.Row + dr}
}

// String returns "(col, row)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Col, p.Row)
}

// sortPositions orders positions by column, then row, which matches the
// linear index order for any board height.
func sortPositions(ps []Position) {
	slices.SortFunc(ps, func(a, b Position) int {
		if c := cmp.Compare(a.Col, b.Col); c != 0 {
			return c
		}
		return cmp.Compare(a.Row, b.Row)
	})
}
