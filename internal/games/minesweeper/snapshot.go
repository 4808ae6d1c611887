package minesweeper

import (
	"strings"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Snapshot captures the game for determinism tests and debugging.
type Snapshot struct {
	Tick           uint64
	Preset         mines.Preset
	Difficulty     mines.Difficulty
	Status         mines.Status
	Cursor         mines.Position
	Elapsed        int
	FlagsRemaining int
	Mines          []mines.Position
	LastRevealed   []mines.Position
	LastFlagged    []mines.Position
	// Board has one line per row: '#' hidden, 'F' flag, '*' mine,
	// '.' empty, '1'-'8' counts.
	Board string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:           g.tick,
		Preset:         g.preset,
		Difficulty:     g.engine.Difficulty(),
		Status:         g.engine.Status(),
		Cursor:         g.cursor,
		Elapsed:        g.engine.ElapsedSeconds(),
		FlagsRemaining: g.engine.FlagsRemaining(),
		Mines:          g.engine.MinePositions(),
		LastRevealed:   g.lastRevealed,
		LastFlagged:    g.lastFlagged,
		Board:          g.boardString(),
	}
}

func (g *Game) boardString() string {
	d := g.engine.Difficulty()
	var sb strings.Builder
	sb.Grow((d.Width + 1) * d.Height)

	for row := range d.Height {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range d.Width {
			s, _ := g.engine.DisplayCell(mines.NewPosition(col, row))
			switch s {
			case "":
				sb.WriteByte('#')
			case mines.FlagGlyph:
				sb.WriteByte('F')
			case mines.MineGlyph:
				sb.WriteByte('*')
			case mines.BlankGlyph:
				sb.WriteByte('.')
			default:
				sb.WriteString(s)
			}
		}
	}
	return sb.String()
}
