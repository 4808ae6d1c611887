package mines

import (
	"fmt"
	"io"
	"iter"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"
)

// maxDisplaySeconds is the largest elapsed time shown by ElapsedSeconds.
const maxDisplaySeconds = 999

// GameState drives a Board through a single game. It is not safe for
// concurrent use; a front-end calls it from one goroutine.
type GameState struct {
	board      *Board
	difficulty Difficulty
	status     Status

	startedAt time.Time
	elapsed   uint64 // whole seconds, never clamped

	revealedCells mapset.Set[Position]
	flaggedCells  mapset.Set[Position]

	counter int // flags-remaining count-up, see FlagsRemaining

	rng    *rand.Rand
	now    func() time.Time
	logger *log.Logger
}

// Option configures a GameState.
type Option func(*GameState)

// WithRand sets the random source used for mine placement.
func WithRand(rng *rand.Rand) Option {
	return func(g *GameState) {
		g.rng = rng
	}
}

// WithSeed seeds the random source used for mine placement.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithClock replaces time.Now as the game clock.
func WithClock(now func() time.Time) Option {
	return func(g *GameState) {
		g.now = now
	}
}

// WithLogger sets the logger for game events. By default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(g *GameState) {
		g.logger = logger
	}
}

// NewGame creates a game in the New state. Mines are placed on the first
// reveal.
func NewGame(d Difficulty, opts ...Option) (*GameState, error) {
	board, err := NewBoard(d)
	if err != nil {
		return nil, err
	}

	g := &GameState{
		board:         board,
		difficulty:    d,
		status:        StatusNew,
		revealedCells: mapset.New[Position](),
		flaggedCells:  mapset.New[Position](),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	return g, nil
}

// start moves New → InProgress and starts the clock one second in the past,
// so the first tick already shows 1.
func (g *GameState) start() {
	g.status = StatusInProgress
	g.startedAt = g.now().Add(-time.Second)
	g.elapsed = 0
	g.logger.Debug("game started", "difficulty", g.difficulty)
}

// lose moves to Lost and exposes every unflagged mine.
func (g *GameState) lose(mine Position) {
	g.updateElapsed()
	g.status = StatusLost
	g.revealedCells.Put(mine)
	for _, pos := range g.board.RevealMines() {
		g.revealedCells.Put(pos)
	}
	g.logger.Info("game lost", "mine", mine, "elapsed", g.elapsed)
}

// win moves to Won and flags every mine.
func (g *GameState) win() {
	g.updateElapsed()
	g.status = StatusWon
	g.board.FlagMines()
	for _, pos := range g.board.MinePositions() {
		g.flaggedCells.Put(pos)
	}
	g.logger.Info("game won", "difficulty", g.difficulty, "elapsed", g.elapsed)
}

func (g *GameState) updateElapsed() {
	if g.startedAt.IsZero() {
		return
	}
	d := g.now().Sub(g.startedAt)
	if d < 0 {
		d = 0
	}
	g.elapsed = uint64(d / time.Second)
}

// Restart discards the board and returns to the New state with the current
// difficulty.
func (g *GameState) Restart() error {
	board, err := NewBoard(g.difficulty)
	if err != nil {
		return fmt.Errorf("mines: restart: %w", err)
	}

	g.board = board
	g.status = StatusNew
	g.startedAt = time.Time{}
	g.elapsed = 0
	g.revealedCells = mapset.New[Position]()
	g.flaggedCells = mapset.New[Position]()
	g.counter = 0
	return nil
}

// ChangeDifficulty validates d, switches to it and restarts. An invalid
// difficulty leaves the current game untouched.
func (g *GameState) ChangeDifficulty(d Difficulty) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("mines: change difficulty: %w", err)
	}
	g.logger.Debug("difficulty changed", "from", g.difficulty, "to", d)
	g.difficulty = d
	return g.Restart()
}

// Tick is called by the front-end at a fixed cadence. While the game is in
// progress it refreshes the elapsed time; in every state it advances the
// flags-remaining count-up by one until it reaches the mine count.
func (g *GameState) Tick() {
	if g.status == StatusInProgress {
		g.updateElapsed()
	}
	if g.counter < g.difficulty.Mines {
		g.counter++
	}
}

// Status returns the current game status.
func (g *GameState) Status() Status {
	return g.status
}

// Difficulty returns the active difficulty.
func (g *GameState) Difficulty() Difficulty {
	return g.difficulty
}

// ElapsedSeconds returns the elapsed time for display, clamped to 999.
func (g *GameState) ElapsedSeconds() int {
	return int(min(g.elapsed, maxDisplaySeconds))
}

// RawElapsedSeconds returns the unclamped elapsed time.
func (g *GameState) RawElapsedSeconds() uint64 {
	return g.elapsed
}

// FlagsRemaining returns the remaining-mines display value. After a restart
// it counts up from zero one tick at a time; once it has caught up with the
// mine count it follows LiveFlagsRemaining.
func (g *GameState) FlagsRemaining() int {
	if g.counter < g.difficulty.Mines {
		return g.counter
	}
	return g.LiveFlagsRemaining()
}

// LiveFlagsRemaining returns mines minus flags, floored at zero, without the
// count-up animation.
func (g *GameState) LiveFlagsRemaining() int {
	return max(g.difficulty.Mines-g.board.FlaggedCount(), 0)
}

// DisplayCell returns the display string of the cell at pos.
func (g *GameState) DisplayCell(pos Position) (string, error) {
	cell, err := g.board.Cell(pos)
	if err != nil {
		return "", err
	}
	return cell.String(), nil
}

// Cell returns a copy of the cell at pos.
func (g *GameState) Cell(pos Position) (Cell, error) {
	return g.board.Cell(pos)
}

// AdjacentPositions returns the in-bounds neighbours of pos.
func (g *GameState) AdjacentPositions(pos Position) (iter.Seq[Position], error) {
	return g.board.AdjacentPositions(pos)
}

// MinePositions returns the mine layout, empty until the first reveal.
func (g *GameState) MinePositions() []Position {
	return g.board.MinePositions()
}

// RevealedCells returns the positions revealed since the last
// ClearRevealedCells, in index order.
func (g *GameState) RevealedCells() []Position {
	return setToSlice(g.revealedCells)
}

// ClearRevealedCells empties the revealed batch.
func (g *GameState) ClearRevealedCells() {
	g.revealedCells = mapset.New[Position]()
}

// FlaggedCells returns the flagged positions recorded since the last
// ClearFlaggedCells, in index order.
func (g *GameState) FlaggedCells() []Position {
	return setToSlice(g.flaggedCells)
}

// ClearFlaggedCells empties the flagged batch.
func (g *GameState) ClearFlaggedCells() {
	g.flaggedCells = mapset.New[Position]()
}

func setToSlice(s mapset.Set[Position]) []Position {
	out := make([]Position, 0, s.Size())
	s.Each(func(pos Position) {
		out = append(out, pos)
	})
	sortPositions(out)
	return out
}
