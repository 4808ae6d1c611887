package mines

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// neighborOffsets lists the eight (dc, dr) offsets around a cell.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board owns the cell grid and the mine set. It executes single-cell
// primitives only; flood fill and win/loss rules live in GameState.
type Board struct {
	difficulty Difficulty
	cells      [][]Cell // [row][col]
	mines      mapset.Set[Position]
	placed     bool

	revealedCount int // revealed cells that are not mines
	flaggedCount  int // may exceed the mine count
}

// NewBoard allocates an all-hidden board without mines.
// Mines are placed later by GenerateMines or PlaceMines.
func NewBoard(d Difficulty) (*Board, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	cells := make([][]Cell, d.Height)
	for row := range cells {
		cells[row] = make([]Cell, d.Width)
	}

	return &Board{
		difficulty: d,
		cells:      cells,
		mines:      mapset.New[Position](),
	}, nil
}

// Contains reports whether pos lies on the board.
func (b *Board) Contains(pos Position) bool {
	return pos.Col >= 0 && pos.Col < b.difficulty.Width &&
		pos.Row >= 0 && pos.Row < b.difficulty.Height
}

func (b *Board) validate(pos Position) error {
	if !b.Contains(pos) {
		return fmt.Errorf("%w: %s on a %dx%d board", ErrOutOfBounds, pos, b.difficulty.Width, b.difficulty.Height)
	}
	return nil
}

func (b *Board) at(pos Position) *Cell {
	return &b.cells[pos.Row][pos.Col]
}

// GenerateMines places the difficulty's mines uniformly at random among the
// cells that are neither excluded nor in preFlagged, then computes adjacency
// counts. If flags leave too few eligible cells, flagged cells become
// eligible again; the excluded cell never does.
func (b *Board) GenerateMines(rng *rand.Rand, excluded Position, preFlagged mapset.Set[Position]) error {
	if err := b.validate(excluded); err != nil {
		return err
	}
	if b.placed {
		return ErrMinesPlaced
	}

	d := b.difficulty
	candidates := make([]Position, 0, d.Capacity())
	var flagged []Position
	for index := range d.Capacity() {
		pos := PositionFromIndex(index, d.Height)
		switch {
		case pos == excluded:
		case preFlagged.Size() > 0 && preFlagged.Has(pos):
			flagged = append(flagged, pos)
		default:
			candidates = append(candidates, pos)
		}
	}
	if len(candidates) < d.Mines {
		candidates = append(candidates, flagged...)
	}

	// Partial Fisher-Yates: the first d.Mines entries become a uniform
	// sample without replacement.
	for i := range d.Mines {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	return b.PlaceMines(candidates[:d.Mines]...)
}

// PlaceMines puts mines at exactly the given positions and computes
// adjacency counts. The number of positions must equal the difficulty's mine
// count and each position must be distinct and on the board.
func (b *Board) PlaceMines(positions ...Position) error {
	if b.placed {
		return ErrMinesPlaced
	}
	if len(positions) != b.difficulty.Mines {
		return fmt.Errorf("%w: got %d mines, want %d", ErrInvalidLayout, len(positions), b.difficulty.Mines)
	}

	layout := mapset.New[Position]()
	for _, pos := range positions {
		if err := b.validate(pos); err != nil {
			return err
		}
		if layout.Has(pos) {
			return fmt.Errorf("%w: duplicate mine at %s", ErrInvalidLayout, pos)
		}
		layout.Put(pos)
	}

	for _, pos := range positions {
		b.at(pos).Content = Mine
	}
	for _, pos := range positions {
		for adj := range b.neighbors(pos) {
			cell := b.at(adj)
			cell.Content = cell.Content.addOne()
		}
	}

	b.mines = layout
	b.placed = true
	return nil
}

// Reveal reveals a single cell. It does not cascade.
func (b *Board) Reveal(pos Position) (RevealResult, error) {
	if err := b.validate(pos); err != nil {
		return RevealResult{}, err
	}

	cell := b.at(pos)
	if cell.IsRevealed() || cell.IsFlagged() {
		return cantRevealResult, nil
	}

	cell.reveal()
	if cell.IsMine() {
		return gameOverAt(pos), nil
	}

	b.revealedCount++
	return continueResult, nil
}

// Flag flags a hidden cell. The flag count is not capped by the mine count.
func (b *Board) Flag(pos Position) (bool, error) {
	if err := b.validate(pos); err != nil {
		return false, err
	}
	if !b.at(pos).flag() {
		return false, nil
	}
	b.flaggedCount++
	return true, nil
}

// Unflag removes a flag.
func (b *Board) Unflag(pos Position) (bool, error) {
	if err := b.validate(pos); err != nil {
		return false, err
	}
	if !b.at(pos).unflag() {
		return false, nil
	}
	if b.flaggedCount > 0 {
		b.flaggedCount--
	}
	return true, nil
}

// RevealMines reveals every mine that is not flagged and returns those
// positions. Used when the game is lost.
func (b *Board) RevealMines() []Position {
	var revealed []Position
	for _, pos := range b.MinePositions() {
		cell := b.at(pos)
		if cell.IsFlagged() {
			continue
		}
		cell.reveal()
		revealed = append(revealed, pos)
	}
	return revealed
}

// FlagMines flags every hidden mine and returns the newly flagged positions.
// Used when the game is won.
func (b *Board) FlagMines() []Position {
	var flagged []Position
	for _, pos := range b.MinePositions() {
		if b.at(pos).flag() {
			b.flaggedCount++
			flagged = append(flagged, pos)
		}
	}
	return flagged
}

// AdjacentPositions returns the in-bounds neighbours of pos. The sequence
// can be ranged over any number of times.
func (b *Board) AdjacentPositions(pos Position) (iter.Seq[Position], error) {
	if err := b.validate(pos); err != nil {
		return nil, err
	}
	return b.neighbors(pos), nil
}

// neighbors yields the in-bounds neighbours of a position already known to
// be valid.
func (b *Board) neighbors(pos Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, off := range neighborOffsets {
			adj := pos.Offset(off[0], off[1])
			if !b.Contains(adj) {
				continue
			}
			if !yield(adj) {
				return
			}
		}
	}
}

// Cell returns a copy of the cell at pos.
func (b *Board) Cell(pos Position) (Cell, error) {
	if err := b.validate(pos); err != nil {
		return Cell{}, err
	}
	return *b.at(pos), nil
}

// MinePositions returns the mine positions in index order.
func (b *Board) MinePositions() []Position {
	positions := make([]Position, 0, b.mines.Size())
	b.mines.Each(func(pos Position) {
		positions = append(positions, pos)
	})
	sortPositions(positions)
	return positions
}

// FlaggedPositions returns the positions of all flagged cells.
func (b *Board) FlaggedPositions() mapset.Set[Position] {
	flagged := mapset.New[Position]()
	for row := range b.cells {
		for col := range b.cells[row] {
			if b.cells[row][col].IsFlagged() {
				flagged.Put(Position{Col: col, Row: row})
			}
		}
	}
	return flagged
}

// MinesPlaced reports whether mines have been placed.
func (b *Board) MinesPlaced() bool {
	return b.placed
}

// RevealedCount returns the number of revealed safe cells.
func (b *Board) RevealedCount() int {
	return b.revealedCount
}

// FlaggedCount returns the number of flagged cells.
func (b *Board) FlaggedCount() int {
	return b.flaggedCount
}

// Size returns the board width and height.
func (b *Board) Size() (width, height int) {
	return b.difficulty.Width, b.difficulty.Height
}

// Difficulty returns the difficulty the board was built with.
func (b *Board) Difficulty() Difficulty {
	return b.difficulty
}
