package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

//go:embed defaults/mines.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/mines.yaml and is used if that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Preset: PresetBeginner,
		Custom: CustomDifficulty{
			Width:  mines.Custom.Width,
			Height: mines.Custom.Height,
			Mines:  mines.Custom.Mines,
		},
		Timing: TimingConfig{
			TickRate:     30,
			EngineTickHz: 20,
		},
		Glyphs: GlyphConfig{
			Hidden: "■",
			Empty:  "·",
			Flag:   "F",
			Mine:   "*",
			Face: Faces{
				Playing: ":)",
				Won:     "B)",
				Lost:    "X(",
			},
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
