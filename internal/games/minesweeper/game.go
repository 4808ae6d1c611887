// Package minesweeper plays the mines engine on the platform: it owns the
// cursor, maps input frames to engine commands, ticks the engine clock and
// draws the board into a core.Screen.
package minesweeper

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// Game implements registry.Game for one difficulty preset. The preset can
// be switched during play with the 1-4 keys.
type Game struct {
	id     string
	preset mines.Preset
	engine *mines.GameState
	tick   uint64

	screenW  int
	screenH  int
	tickRate int
	tooSmall bool

	engineAcc int // frames accumulated towards the next engine tick

	cursor mines.Position
	view   viewport
	lostAt *mines.Position

	// Drained engine batches of the last command.
	lastRevealed []mines.Position
	lastFlagged  []mines.Position

	clock func() time.Time
}

// Package-level settings applied on the next Reset.
var (
	customDifficulty = mines.Custom
	glyphs           = config.DefaultConfig().Glyphs
	engineTickHz     = config.DefaultConfig().Timing.EngineTickHz
	logger           = log.New(io.Discard)
)

// SetCustomDifficulty sets the board used by the custom preset.
func SetCustomDifficulty(d mines.Difficulty) {
	customDifficulty = d
}

// SetGlyphs sets the glyphs used to draw the board.
func SetGlyphs(g config.GlyphConfig) {
	glyphs = g
}

// SetEngineTickHz sets how many times per second the engine clock ticks.
func SetEngineTickHz(hz int) {
	engineTickHz = hz
}

// SetLogger sets the logger for game events.
func SetLogger(l *log.Logger) {
	logger = l
}

// New creates a game for the given preset.
func New(preset mines.Preset) *Game {
	return &Game{
		id:     string(preset),
		preset: preset,
	}
}

func init() {
	for _, p := range mines.Presets() {
		registry.Register(string(p), func() registry.Game {
			return New(p)
		})
	}
}

// ID returns the registered variant id.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name of the current preset.
func (g *Game) Title() string {
	return "Minesweeper: " + g.preset.Title()
}

// difficultyFor returns the board of a preset, honoring the custom override.
func difficultyFor(p mines.Preset) mines.Difficulty {
	if p == mines.PresetCustom {
		return customDifficulty
	}
	d, _ := p.Difficulty()
	return d
}

// Reset starts a fresh game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.engineAcc = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	if g.clock == nil {
		g.clock = time.Now
	}

	opts := []mines.Option{
		mines.WithSeed(cfg.Seed),
		mines.WithClock(g.clock),
		mines.WithLogger(logger.With("game", g.id)),
	}
	engine, err := mines.NewGame(difficultyFor(g.preset), opts...)
	if err != nil {
		logger.Warn("invalid difficulty, using built-in board", "preset", g.preset, "error", err)
		d, _ := g.preset.Difficulty()
		engine, _ = mines.NewGame(d, opts...)
	}
	g.engine = engine

	g.resetBoardState()
	g.checkScreenSize()
	logger.Info("game reset", "preset", g.preset, "difficulty", g.engine.Difficulty(), "seed", cfg.Seed)
}

// resetBoardState puts the cursor in the middle of a new board.
func (g *Game) resetBoardState() {
	d := g.engine.Difficulty()
	g.cursor = mines.NewPosition(d.Width/2, d.Height/2)
	g.lostAt = nil
	g.lastRevealed = nil
	g.lastFlagged = nil
	g.view = viewport{}
	g.layout()
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
	g.layout()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.advanceClock()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionBeginner):
		g.changePreset(mines.PresetBeginner)
	case in.Has(core.ActionIntermediate):
		g.changePreset(mines.PresetIntermediate)
	case in.Has(core.ActionExpert):
		g.changePreset(mines.PresetExpert)
	case in.Has(core.ActionCustom):
		g.changePreset(mines.PresetCustom)
	case in.Has(core.ActionRestart):
		g.restart()
	}

	g.moveCursor(in)

	if in.Pressed() {
		g.handlePointer(in.Pointer)
	}

	switch {
	case in.Has(core.ActionReveal):
		g.reveal(g.cursor)
	case in.Has(core.ActionFlag):
		g.toggleFlag(g.cursor)
	case in.Has(core.ActionChord):
		g.chord(g.cursor)
	}

	changed := g.drain()
	return core.StepResult{State: g.State(), Changed: changed}
}

// advanceClock ticks the engine engineTickHz times per second of frames.
func (g *Game) advanceClock() {
	hz := core.Clamp(engineTickHz, 1, g.tickRate)
	g.engineAcc += hz
	for g.engineAcc >= g.tickRate {
		g.engineAcc -= g.tickRate
		g.engine.Tick()
	}
}

func (g *Game) changePreset(p mines.Preset) {
	if err := g.engine.ChangeDifficulty(difficultyFor(p)); err != nil {
		logger.Warn("difficulty change rejected", "preset", p, "error", err)
		return
	}
	g.preset = p
	g.resetBoardState()
}

func (g *Game) restart() {
	if err := g.engine.Restart(); err != nil {
		logger.Error("restart failed", "error", err)
		return
	}
	g.resetBoardState()
}

func (g *Game) moveCursor(in core.InputFrame) {
	d := g.engine.Difficulty()
	col, row := g.cursor.Col, g.cursor.Row
	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}
	g.cursor = mines.NewPosition(core.Clamp(col, 0, d.Width-1), core.Clamp(row, 0, d.Height-1))
	g.view.follow(g.cursor)
}

// handlePointer maps a press on the board to a command: left reveals (or
// chords on a revealed number), right flags, middle chords.
func (g *Game) handlePointer(p core.Pointer) {
	pos, ok := g.cellAt(p.X, p.Y)
	if !ok {
		return
	}
	g.cursor = pos

	switch p.Button {
	case core.ButtonLeft:
		if cell, err := g.engine.Cell(pos); err == nil && cell.IsRevealed() {
			g.chord(pos)
			return
		}
		g.reveal(pos)
	case core.ButtonRight:
		g.toggleFlag(pos)
	case core.ButtonMiddle:
		g.chord(pos)
	}
}

func (g *Game) reveal(pos mines.Position) {
	res, err := g.engine.RevealCell(pos)
	if err != nil {
		logger.Error("reveal failed", "pos", pos, "error", err)
		return
	}
	g.afterReveal(res)
}

func (g *Game) chord(pos mines.Position) {
	res, err := g.engine.Chording(pos)
	if err != nil {
		logger.Error("chord failed", "pos", pos, "error", err)
		return
	}
	g.afterReveal(res)
}

func (g *Game) afterReveal(res mines.RevealResult) {
	if res.Outcome == mines.GameOver {
		mine := res.Mine
		g.lostAt = &mine
	}
}

func (g *Game) toggleFlag(pos mines.Position) {
	if _, err := g.engine.ToggleFlag(pos); err != nil {
		logger.Error("flag failed", "pos", pos, "error", err)
	}
}

// drain takes the engine's revealed and flagged batches so the next command
// starts from empty ones.
func (g *Game) drain() int {
	revealed := g.engine.RevealedCells()
	flagged := g.engine.FlaggedCells()
	if len(revealed) == 0 && len(flagged) == 0 {
		return 0
	}
	g.engine.ClearRevealedCells()
	g.engine.ClearFlaggedCells()

	g.lastRevealed = revealed
	g.lastFlagged = flagged
	logger.Debug("cells changed", "revealed", len(revealed), "flagged", len(flagged), "status", g.engine.Status())
	return len(revealed) + len(flagged)
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	status := g.engine.Status()
	return core.GameState{
		GameOver:       status.IsOver(),
		Won:            status == mines.StatusWon,
		Elapsed:        g.engine.ElapsedSeconds(),
		FlagsRemaining: g.engine.FlagsRemaining(),
	}
}
