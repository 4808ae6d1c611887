package mines

import "strconv"

// Display glyphs returned by Cell.String and GameState.DisplayCell.
const (
	MineGlyph  = "💣"
	FlagGlyph  = "🚩"
	BlankGlyph = " "
)

// maxCount is the largest possible number of adjacent mines.
const maxCount = 8

// Content is what a cell holds: a mine, or the number of adjacent mines.
// Non-negative values are counts; Mine is the only negative value.
type Content int8

// Mine marks a cell holding a mine.
const Mine Content = -1

// Count returns the content for a cell with n adjacent mines, saturating to
// the 0..8 range.
func Count(n int) Content {
	switch {
	case n < 0:
		return 0
	case n > maxCount:
		return maxCount
	default:
		return Content(n)
	}
}

// IsMine reports whether the content is a mine.
func (c Content) IsMine() bool {
	return c == Mine
}

// Count returns the adjacency number and true, or 0 and false for a mine.
func (c Content) Count() (int, bool) {
	if c.IsMine() {
		return 0, false
	}
	return int(c), true
}

// addOne increments a count by one, saturating at 8. Mines are unchanged.
func (c Content) addOne() Content {
	if c.IsMine() || c >= maxCount {
		return c
	}
	return c + 1
}

// String maps the content to its display glyph.
func (c Content) String() string {
	switch {
	case c.IsMine():
		return MineGlyph
	case c == 0:
		return BlankGlyph
	default:
		return strconv.Itoa(int(c))
	}
}

// State is the visibility of a cell.
type State uint8

const (
	Hidden State = iota
	Revealed
	Flagged
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case Revealed:
		return "Revealed"
	case Flagged:
		return "Flagged"
	default:
		return "Unknown"
	}
}

// Cell is a single square of the board.
type Cell struct {
	Content Content
	State   State
}

func (c Cell) IsHidden() bool   { return c.State == Hidden }
func (c Cell) IsRevealed() bool { return c.State == Revealed }
func (c Cell) IsFlagged() bool  { return c.State == Flagged }
func (c Cell) IsMine() bool     { return c.Content.IsMine() }

// IsEmpty reports whether the cell is a safe cell with no adjacent mines.
func (c Cell) IsEmpty() bool { return c.Content == 0 }

// reveal marks the cell revealed. Revealed is terminal.
func (c *Cell) reveal() {
	c.State = Revealed
}

// flag flags a hidden cell and reports whether it changed.
func (c *Cell) flag() bool {
	if c.State != Hidden {
		return false
	}
	c.State = Flagged
	return true
}

// unflag clears a flag and reports whether it changed.
func (c *Cell) unflag() bool {
	if c.State != Flagged {
		return false
	}
	c.State = Hidden
	return true
}

// String returns what a player sees on this cell: nothing while hidden, the
// flag glyph while flagged, and the content once revealed.
func (c Cell) String() string {
	switch c.State {
	case Revealed:
		return c.Content.String()
	case Flagged:
		return FlagGlyph
	default:
		return ""
	}
}
