package mines

import "testing"

func TestPositionIndexRoundTrip(t *testing.T) {
	for _, d := range []Difficulty{Beginner, Intermediate, Expert, {Width: 7, Height: 3, Mines: 1}} {
		seen := make(map[int]bool, d.Capacity())
		for col := range d.Width {
			for row := range d.Height {
				pos := NewPosition(col, row)
				index := pos.Index(d.Height)
				if index < 0 || index >= d.Capacity() {
					t.Fatalf("%v: Index(%v) = %d, out of range", d, pos, index)
				}
				if seen[index] {
					t.Fatalf("%v: Index(%v) = %d, already used", d, pos, index)
				}
				seen[index] = true

				if back := PositionFromIndex(index, d.Height); back != pos {
					t.Errorf("%v: PositionFromIndex(%d) = %v, want %v", d, index, back, pos)
				}
			}
		}
	}
}

func TestPositionIndexFormula(t *testing.T) {
	pos := NewPosition(3, 2)
	if got := pos.Index(16); got != 3*16+2 {
		t.Errorf("Index(16) = %d, want %d", got, 3*16+2)
	}
}

func TestContentCount(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		display string
	}{
		{"mine", Mine, MineGlyph},
		{"zero", Count(0), BlankGlyph},
		{"one", Count(1), "1"},
		{"eight", Count(8), "8"},
		{"saturates", Count(12), "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.content.String(); got != tt.display {
				t.Errorf("String() = %q, want %q", got, tt.display)
			}
		})
	}
}

func TestContentAddOne(t *testing.T) {
	c := Count(0)
	for range 12 {
		c = c.addOne()
	}
	if n, ok := c.Count(); !ok || n != 8 {
		t.Errorf("Count() after 12 increments = %d, %v; want 8, true", n, ok)
	}

	if m := Mine.addOne(); m != Mine {
		t.Errorf("Mine.addOne() = %v, want Mine", m)
	}
}

func TestCellTransitions(t *testing.T) {
	var c Cell
	if !c.IsHidden() {
		t.Fatal("zero Cell should be hidden")
	}
	if !c.flag() || !c.IsFlagged() {
		t.Fatal("flag() on hidden cell should succeed")
	}
	if c.flag() {
		t.Error("flag() on flagged cell should report no change")
	}
	if !c.unflag() || !c.IsHidden() {
		t.Fatal("unflag() on flagged cell should succeed")
	}
	c.reveal()
	if c.flag() || c.unflag() {
		t.Error("flag/unflag on revealed cell should report no change")
	}
	if !c.IsRevealed() {
		t.Error("revealed cell should stay revealed")
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Cell{Content: Count(3), State: Hidden}, ""},
		{Cell{Content: Mine, State: Flagged}, FlagGlyph},
		{Cell{Content: Mine, State: Revealed}, MineGlyph},
		{Cell{Content: Count(0), State: Revealed}, BlankGlyph},
		{Cell{Content: Count(4), State: Revealed}, "4"},
	}

	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("%v/%v String() = %q, want %q", tt.cell.State, tt.cell.Content, got, tt.want)
		}
	}
}
