package minesweeper

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

const (
	headerRows = 3 // title, counters, spacer
	statusRows = 1
	minScreenW = 25
	minScreenH = 10
)

// numberColors follows the classic palette: 1 blue, 2 green, 3 red, ...
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorRed,
	core.ColorMagenta,
	core.ColorYellow,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// viewport is the visible window of a board larger than the screen.
type viewport struct {
	col, row   int // top-left visible cell
	w, h       int // visible cells
	cols, rows int // board size
}

// follow scrolls so that pos is visible.
func (v *viewport) follow(pos mines.Position) {
	if pos.Col < v.col {
		v.col = pos.Col
	}
	if pos.Col >= v.col+v.w {
		v.col = pos.Col - v.w + 1
	}
	if pos.Row < v.row {
		v.row = pos.Row
	}
	if pos.Row >= v.row+v.h {
		v.row = pos.Row - v.h + 1
	}
	v.col = core.Clamp(v.col, 0, v.cols-v.w)
	v.row = core.Clamp(v.row, 0, v.rows-v.h)
}

// layout sizes the viewport for the current board and screen.
func (g *Game) layout() {
	d := g.engine.Difficulty()
	g.view.cols = d.Width
	g.view.rows = d.Height
	g.view.w = core.Clamp((g.screenW-3)/2, 1, d.Width)
	g.view.h = core.Clamp(g.screenH-headerRows-2-statusRows, 1, d.Height)
	g.view.follow(g.cursor)
}

// boardRect is the framed board area. Each cell takes two columns: a
// separator and the glyph.
func (g *Game) boardRect() core.Rect {
	w := 2*g.view.w + 3
	h := g.view.h + 2
	return core.NewRect((g.screenW-w)/2, headerRows, w, h)
}

// cellAt maps screen coordinates to a board position.
func (g *Game) cellAt(x, y int) (mines.Position, bool) {
	r := g.boardRect()
	dx := x - r.X - 1
	dy := y - r.Y - 1
	if dx < 0 || dy < 0 {
		return mines.Position{}, false
	}
	c, row := dx/2, dy
	if c >= g.view.w || row >= g.view.h {
		return mines.Position{}, false
	}
	return mines.NewPosition(g.view.col+c, g.view.row+row), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	box := g.boardRect()
	g.renderHeader(dst, box)
	g.renderBoard(dst, box)
	g.renderStatus(dst, box)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	y := g.screenH / 2
	dst.DrawTextCentered(y, msg)
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHeader draws the title, the mine counter, the face and the timer.
func (g *Game) renderHeader(dst *core.Screen, box core.Rect) {
	d := g.engine.Difficulty()
	dst.DrawTextCentered(0, fmt.Sprintf("MINESWEEPER  %s %dx%d, %d mines", g.preset.Title(), d.Width, d.Height, d.Mines))

	st := g.State()
	dst.DrawTextColored(box.X, 1, fmt.Sprintf("%03d", min(st.FlagsRemaining, 999)), core.ColorBrightRed)

	timer := fmt.Sprintf("%03d", st.Elapsed)
	dst.DrawTextColored(box.Right()-len(timer), 1, timer, core.ColorBrightRed)

	face := g.face()
	cx, _ := box.Center()
	dst.DrawTextColored(cx-utf8.RuneCountInString(face)/2, 1, face, core.ColorBrightYellow)
}

func (g *Game) face() string {
	switch g.engine.Status() {
	case mines.StatusWon:
		return glyphs.Face.Won
	case mines.StatusLost:
		return glyphs.Face.Lost
	default:
		return glyphs.Face.Playing
	}
}

// renderBoard draws the frame, the visible cells and the cursor.
func (g *Game) renderBoard(dst *core.Screen, box core.Rect) {
	dst.DrawBox(box, core.ColorGray)
	g.renderScrollMarks(dst, box)

	for r := range g.view.h {
		for c := range g.view.w {
			pos := mines.NewPosition(g.view.col+c, g.view.row+r)
			glyph, color := g.cellGlyph(pos)
			dst.SetColored(box.X+2+2*c, box.Y+1+r, glyph, color)
		}
	}

	if g.engine.Status().IsOver() {
		return
	}
	cx := box.X + 2 + 2*(g.cursor.Col-g.view.col)
	cy := box.Y + 1 + g.cursor.Row - g.view.row
	dst.SetColored(cx-1, cy, '[', core.ColorBrightYellow)
	dst.SetColored(cx+1, cy, ']', core.ColorBrightYellow)
}

// renderScrollMarks shows on the frame which sides have hidden cells.
func (g *Game) renderScrollMarks(dst *core.Screen, box core.Rect) {
	cx, cy := box.Center()
	if g.view.col > 0 {
		dst.SetColored(box.X, cy, '<', core.ColorBrightYellow)
	}
	if g.view.col+g.view.w < g.view.cols {
		dst.SetColored(box.Right()-1, cy, '>', core.ColorBrightYellow)
	}
	if g.view.row > 0 {
		dst.SetColored(cx, box.Y, '^', core.ColorBrightYellow)
	}
	if g.view.row+g.view.h < g.view.rows {
		dst.SetColored(cx, box.Bottom()-1, 'v', core.ColorBrightYellow)
	}
}

// cellGlyph maps the engine's display string of pos to a glyph and color.
func (g *Game) cellGlyph(pos mines.Position) (rune, core.Color) {
	s, err := g.engine.DisplayCell(pos)
	if err != nil {
		return ' ', core.ColorDefault
	}

	switch s {
	case "":
		return firstRune(glyphs.Hidden), core.ColorGray
	case mines.FlagGlyph:
		if g.engine.Status() == mines.StatusLost {
			if cell, _ := g.engine.Cell(pos); !cell.IsMine() {
				return 'x', core.ColorMagenta
			}
		}
		return firstRune(glyphs.Flag), core.ColorBrightRed
	case mines.MineGlyph:
		if g.lostAt != nil && *g.lostAt == pos {
			return firstRune(glyphs.Mine), core.ColorBrightRed
		}
		return firstRune(glyphs.Mine), core.ColorBrightWhite
	case mines.BlankGlyph:
		return firstRune(glyphs.Empty), core.ColorGray
	}

	n := int(s[0] - '0')
	if n < 1 || n > 8 {
		return '?', core.ColorDefault
	}
	return rune(s[0]), numberColors[n]
}

// renderStatus draws the line under the board.
func (g *Game) renderStatus(dst *core.Screen, box core.Rect) {
	y := box.Bottom()
	switch g.engine.Status() {
	case mines.StatusWon:
		msg := fmt.Sprintf("Cleared in %ds!  r: new game", g.engine.ElapsedSeconds())
		dst.DrawTextColored(box.X, y, msg, core.ColorGreen)
	case mines.StatusLost:
		dst.DrawTextColored(box.X, y, "Boom!  r: try again", core.ColorRed)
	default:
		dst.DrawTextColored(box.X, y, fmt.Sprintf("%d,%d", g.cursor.Col+1, g.cursor.Row+1), core.ColorGray)
	}
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}
