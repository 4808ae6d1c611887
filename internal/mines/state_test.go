package mines

import (
	"errors"
	"testing"
	"time"
)

// fakeClock is a manually advanced game clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
func newFakeClock() *fakeClock               { return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)} }

// mustGame builds a game. A non-empty layout is placed immediately so the
// first reveal does not generate mines.
func mustGame(t *testing.T, d Difficulty, layout ...Position) *GameState {
	t.Helper()
	g, err := NewGame(d, WithSeed(1))
	if err != nil {
		t.Fatalf("NewGame(%v) failed: %v", d, err)
	}
	if len(layout) > 0 {
		if err := g.board.PlaceMines(layout...); err != nil {
			t.Fatalf("PlaceMines(%v) failed: %v", layout, err)
		}
	}
	return g
}

func TestNewGame(t *testing.T) {
	g := mustGame(t, Beginner)

	if g.Status() != StatusNew {
		t.Errorf("Status() = %v, want New", g.Status())
	}
	if g.Difficulty() != Beginner {
		t.Errorf("Difficulty() = %v, want %v", g.Difficulty(), Beginner)
	}
	if g.ElapsedSeconds() != 0 {
		t.Errorf("ElapsedSeconds() = %d, want 0", g.ElapsedSeconds())
	}
	if g.FlagsRemaining() != 0 {
		t.Errorf("FlagsRemaining() = %d, want 0 before any tick", g.FlagsRemaining())
	}
	if len(g.MinePositions()) != 0 {
		t.Error("mines must not be placed before the first reveal")
	}

	if _, err := NewGame(Difficulty{Width: 3, Height: 3, Mines: 0}); !errors.Is(err, ErrInvalidDifficulty) {
		t.Errorf("NewGame with no mines error = %v, want ErrInvalidDifficulty", err)
	}
}

func TestTickElapsed(t *testing.T) {
	clock := newFakeClock()
	g, err := NewGame(Difficulty{Width: 4, Height: 1, Mines: 1}, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if err := g.board.PlaceMines(NewPosition(1, 0)); err != nil {
		t.Fatalf("PlaceMines failed: %v", err)
	}

	// The clock does not run before the first move.
	clock.Advance(10 * time.Second)
	g.Tick()
	if g.ElapsedSeconds() != 0 {
		t.Errorf("ElapsedSeconds() before start = %d, want 0", g.ElapsedSeconds())
	}

	if _, err := g.RevealCell(NewPosition(0, 0)); err != nil {
		t.Fatalf("RevealCell failed: %v", err)
	}
	if g.Status() != StatusInProgress {
		t.Fatalf("Status() = %v, want InProgress", g.Status())
	}

	g.Tick()
	if g.ElapsedSeconds() != 1 {
		t.Errorf("ElapsedSeconds() on first tick = %d, want 1", g.ElapsedSeconds())
	}

	clock.Advance(5 * time.Second)
	g.Tick()
	if g.ElapsedSeconds() != 6 {
		t.Errorf("ElapsedSeconds() = %d, want 6", g.ElapsedSeconds())
	}

	clock.Advance(2000 * time.Second)
	g.Tick()
	if g.ElapsedSeconds() != 999 {
		t.Errorf("ElapsedSeconds() = %d, want display clamp 999", g.ElapsedSeconds())
	}
	if g.RawElapsedSeconds() != 2006 {
		t.Errorf("RawElapsedSeconds() = %d, want 2006", g.RawElapsedSeconds())
	}

	// The clock freezes once the game is over.
	if _, err := g.RevealCell(NewPosition(1, 0)); err != nil {
		t.Fatalf("RevealCell failed: %v", err)
	}
	clock.Advance(time.Minute)
	g.Tick()
	if g.RawElapsedSeconds() != 2006 {
		t.Errorf("RawElapsedSeconds() after loss = %d, want 2006", g.RawElapsedSeconds())
	}
}

func TestFlagsRemainingCountsUp(t *testing.T) {
	g := mustGame(t, Beginner)

	for i := 1; i <= 3; i++ {
		g.Tick()
		if g.FlagsRemaining() != i {
			t.Errorf("after %d ticks FlagsRemaining() = %d, want %d", i, g.FlagsRemaining(), i)
		}
	}

	// Flags placed during the count-up do not change the animation value.
	if ok, _ := g.ToggleFlag(NewPosition(0, 0)); !ok {
		t.Fatal("ToggleFlag should flag a hidden cell")
	}
	if g.FlagsRemaining() != 3 {
		t.Errorf("FlagsRemaining() during count-up = %d, want 3", g.FlagsRemaining())
	}
	if g.LiveFlagsRemaining() != 9 {
		t.Errorf("LiveFlagsRemaining() = %d, want 9", g.LiveFlagsRemaining())
	}

	for range 20 {
		g.Tick()
	}
	if g.FlagsRemaining() != 9 {
		t.Errorf("FlagsRemaining() after count-up = %d, want 9", g.FlagsRemaining())
	}
}

func TestFlagsRemainingFloor(t *testing.T) {
	g := mustGame(t, Difficulty{Width: 4, Height: 1, Mines: 1})
	for range 5 {
		g.Tick()
	}
	for col := range 3 {
		if ok, _ := g.ToggleFlag(NewPosition(col, 0)); !ok {
			t.Fatalf("ToggleFlag(%d) should succeed", col)
		}
	}
	if g.board.FlaggedCount() != 3 {
		t.Errorf("FlaggedCount() = %d, want 3 (flags are not capped)", g.board.FlaggedCount())
	}
	if g.FlagsRemaining() != 0 {
		t.Errorf("FlagsRemaining() = %d, want 0", g.FlagsRemaining())
	}
}

func TestToggleFlag(t *testing.T) {
	g := mustGame(t, Beginner)
	pos := NewPosition(2, 3)

	ok, err := g.ToggleFlag(pos)
	if err != nil || !ok {
		t.Fatalf("ToggleFlag = %v, %v; want true", ok, err)
	}
	if g.Status() != StatusInProgress {
		t.Errorf("Status() after first flag = %v, want InProgress", g.Status())
	}
	if len(g.MinePositions()) != 0 {
		t.Error("flagging must not place mines")
	}
	if got := g.FlaggedCells(); len(got) != 1 || got[0] != pos {
		t.Errorf("FlaggedCells() = %v, want [%v]", got, pos)
	}
	if s, _ := g.DisplayCell(pos); s != FlagGlyph {
		t.Errorf("DisplayCell = %q, want flag glyph", s)
	}

	ok, _ = g.ToggleFlag(pos)
	if !ok {
		t.Fatal("second ToggleFlag should unflag")
	}
	if len(g.FlaggedCells()) != 0 {
		t.Errorf("FlaggedCells() after unflag = %v, want empty", g.FlaggedCells())
	}

	if _, err := g.ToggleFlag(NewPosition(9, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("ToggleFlag out of bounds error = %v, want ErrOutOfBounds", err)
	}
}

func TestToggleFlagRevealedCell(t *testing.T) {
	g := mustGame(t, Difficulty{Width: 2, Height: 2, Mines: 1}, NewPosition(0, 0))
	if _, err := g.RevealCell(NewPosition(1, 1)); err != nil {
		t.Fatalf("RevealCell failed: %v", err)
	}
	if ok, err := g.ToggleFlag(NewPosition(1, 1)); ok || err != nil {
		t.Errorf("ToggleFlag on revealed cell = %v, %v; want false, nil", ok, err)
	}
}

func TestRestart(t *testing.T) {
	g := mustGame(t, Beginner)
	_, _ = g.ToggleFlag(NewPosition(8, 8))
	_, _ = g.RevealCell(NewPosition(0, 0))
	for range 5 {
		g.Tick()
	}

	if err := g.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	assertFresh(t, g, Beginner)
}

func TestChangeDifficulty(t *testing.T) {
	g := mustGame(t, Beginner)
	_, _ = g.RevealCell(NewPosition(4, 4))

	if err := g.ChangeDifficulty(Expert); err != nil {
		t.Fatalf("ChangeDifficulty failed: %v", err)
	}
	assertFresh(t, g, Expert)

	if _, err := g.RevealCell(NewPosition(29, 15)); err != nil {
		t.Errorf("RevealCell on new board failed: %v", err)
	}

	err := g.ChangeDifficulty(Difficulty{Width: 2, Height: 2, Mines: 4})
	if !errors.Is(err, ErrInvalidDifficulty) {
		t.Errorf("ChangeDifficulty(invalid) error = %v, want ErrInvalidDifficulty", err)
	}
	if g.Difficulty() != Expert {
		t.Errorf("invalid difficulty must leave game untouched, got %v", g.Difficulty())
	}
}

func assertFresh(t *testing.T, g *GameState, d Difficulty) {
	t.Helper()
	if g.Status() != StatusNew {
		t.Errorf("Status() = %v, want New", g.Status())
	}
	if g.Difficulty() != d {
		t.Errorf("Difficulty() = %v, want %v", g.Difficulty(), d)
	}
	if g.ElapsedSeconds() != 0 || g.RawElapsedSeconds() != 0 {
		t.Errorf("elapsed = %d/%d, want 0", g.ElapsedSeconds(), g.RawElapsedSeconds())
	}
	if len(g.RevealedCells()) != 0 || len(g.FlaggedCells()) != 0 {
		t.Errorf("batches not cleared: revealed=%v flagged=%v", g.RevealedCells(), g.FlaggedCells())
	}
	if g.FlagsRemaining() != 0 {
		t.Errorf("FlagsRemaining() = %d, want 0", g.FlagsRemaining())
	}
	if len(g.MinePositions()) != 0 {
		t.Error("a fresh board must have no mines")
	}
	if g.board.FlaggedCount() != 0 || g.board.RevealedCount() != 0 {
		t.Error("a fresh board must have no revealed or flagged cells")
	}
}

func TestDrainBatches(t *testing.T) {
	g := mustGame(t, Difficulty{Width: 2, Height: 2, Mines: 1}, NewPosition(0, 0))
	_, _ = g.ToggleFlag(NewPosition(0, 1))
	_, _ = g.RevealCell(NewPosition(1, 1))

	if len(g.RevealedCells()) != 1 || len(g.FlaggedCells()) != 1 {
		t.Fatalf("RevealedCells() = %v, FlaggedCells() = %v", g.RevealedCells(), g.FlaggedCells())
	}

	g.ClearRevealedCells()
	g.ClearFlaggedCells()
	if len(g.RevealedCells()) != 0 || len(g.FlaggedCells()) != 0 {
		t.Error("Clear* must empty the batches")
	}

	// Clearing the batch does not unflag the cell.
	if cell, _ := g.Cell(NewPosition(0, 1)); !cell.IsFlagged() {
		t.Error("cell should still be flagged")
	}
}

func TestDisplayCell(t *testing.T) {
	g := mustGame(t, Difficulty{Width: 3, Height: 1, Mines: 1}, NewPosition(2, 0))

	if s, _ := g.DisplayCell(NewPosition(0, 0)); s != "" {
		t.Errorf("hidden DisplayCell = %q, want empty", s)
	}

	_, _ = g.RevealCell(NewPosition(0, 0))
	if s, _ := g.DisplayCell(NewPosition(0, 0)); s != BlankGlyph {
		t.Errorf("empty DisplayCell = %q, want blank", s)
	}
	if s, _ := g.DisplayCell(NewPosition(1, 0)); s != "1" {
		t.Errorf("numbered DisplayCell = %q, want \"1\"", s)
	}
	// Revealing (0,0) cascades to (1,0), which wins the game and flags the mine.
	if s, _ := g.DisplayCell(NewPosition(2, 0)); s != FlagGlyph {
		t.Errorf("mine DisplayCell after win = %q, want flag glyph", s)
	}

	if _, err := g.DisplayCell(NewPosition(3, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("DisplayCell out of bounds error = %v, want ErrOutOfBounds", err)
	}
}

func TestStatusFace(t *testing.T) {
	tests := []struct {
		status Status
		face   string
		over   bool
	}{
		{StatusNew, "🙂", false},
		{StatusInProgress, "🙂", false},
		{StatusWon, "😎", true},
		{StatusLost, "👺", true},
	}
	for _, tt := range tests {
		if tt.status.Face() != tt.face {
			t.Errorf("%v.Face() = %q, want %q", tt.status, tt.status.Face(), tt.face)
		}
		if tt.status.IsOver() != tt.over {
			t.Errorf("%v.IsOver() = %v, want %v", tt.status, tt.status.IsOver(), tt.over)
		}
	}
}
