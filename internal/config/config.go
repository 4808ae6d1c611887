// Package config loads the YAML configuration of the game: difficulty
// preset, custom board, frame rate, glyphs and logging.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Config is the complete configuration.
type Config struct {
	Preset DifficultyPreset `yaml:"preset"`
	Custom CustomDifficulty `yaml:"custom"`
	Timing TimingConfig     `yaml:"timing"`
	Glyphs GlyphConfig      `yaml:"glyphs"`
	Log    LogConfig        `yaml:"log"`
}

// CustomDifficulty overrides the board used by the custom preset.
type CustomDifficulty struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// Difficulty converts the override to an engine difficulty.
func (c CustomDifficulty) Difficulty() mines.Difficulty {
	return mines.Difficulty{Width: c.Width, Height: c.Height, Mines: c.Mines}
}

// TimingConfig controls the frame loop.
type TimingConfig struct {
	TickRate     int `yaml:"tick_rate"`      // Frames per second
	EngineTickHz int `yaml:"engine_tick_hz"` // Engine ticks per second, at most tick_rate
}

// GlyphConfig holds the single-character glyphs used to draw the board.
// Emoji are avoided by default because terminals disagree on their width.
type GlyphConfig struct {
	Hidden string `yaml:"hidden"`
	Empty  string `yaml:"empty"`
	Flag   string `yaml:"flag"`
	Mine   string `yaml:"mine"`
	Face   Faces  `yaml:"face"`
}

// Faces are the status indicators shown in the header.
type Faces struct {
	Playing string `yaml:"playing"`
	Won     string `yaml:"won"`
	Lost    string `yaml:"lost"`
}

// LogConfig controls the debug log. An empty file disables logging.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// DifficultyPreset names one of the four difficulties.
type DifficultyPreset string

const (
	PresetBeginner     DifficultyPreset = DifficultyPreset(mines.PresetBeginner)
	PresetIntermediate DifficultyPreset = DifficultyPreset(mines.PresetIntermediate)
	PresetExpert       DifficultyPreset = DifficultyPreset(mines.PresetExpert)
	PresetCustom       DifficultyPreset = DifficultyPreset(mines.PresetCustom)
)

// ErrUnknownPreset is returned for a preset name that is not one of the four
// difficulties.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ResolveDifficulty returns the board for preset. The custom preset uses the
// configured override instead of the built-in 100x100 board.
func (c Config) ResolveDifficulty(preset DifficultyPreset) (mines.Difficulty, error) {
	if preset == PresetCustom {
		d := c.Custom.Difficulty()
		if err := d.Validate(); err != nil {
			return mines.Difficulty{}, fmt.Errorf("config: custom: %w", err)
		}
		return d, nil
	}
	d, ok := mines.Preset(preset).Difficulty()
	if !ok {
		return mines.Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	return d, nil
}

// Validate checks that the configuration can be used as is.
func (c Config) Validate() error {
	if _, err := c.ResolveDifficulty(c.Preset); err != nil {
		return err
	}
	if _, err := c.ResolveDifficulty(PresetCustom); err != nil {
		return err
	}
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("config: timing.tick_rate must be positive, got %d", c.Timing.TickRate)
	}
	if c.Timing.EngineTickHz <= 0 || c.Timing.EngineTickHz > c.Timing.TickRate {
		return fmt.Errorf("config: timing.engine_tick_hz must be in 1..%d, got %d",
			c.Timing.TickRate, c.Timing.EngineTickHz)
	}

	glyphs := map[string]string{
		"glyphs.hidden": c.Glyphs.Hidden,
		"glyphs.empty":  c.Glyphs.Empty,
		"glyphs.flag":   c.Glyphs.Flag,
		"glyphs.mine":   c.Glyphs.Mine,
	}
	for name, g := range glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: %s must be a single character, got %q", name, g)
		}
	}
	return nil
}
