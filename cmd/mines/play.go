package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
	flagMines  int
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a difficulty",
	Long: `Start a game at the given difficulty preset: beginner, intermediate,
expert or custom. Without an argument the configured preset is used.

The --width, --height and --mines flags override the custom board and
select the custom preset when no preset is given.

Controls:
  Arrows/hjkl/wasd  - Move the cursor
  Space/Enter       - Reveal (chord on a revealed number)
  F                 - Flag or unflag
  C                 - Chord
  1-4               - Switch difficulty
  R                 - New game
  Left click        - Reveal, right click - flag, middle click - chord
  Q/Ctrl+C          - Quit

Examples:
  mines play
  mines play intermediate
  mines play custom --width 60 --height 30 --mines 300
  mines play expert --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Custom board width")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Custom board height")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom mine count")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fail(err)
	}

	preset, err := playPreset(&cfg, args)
	if err != nil {
		fail(err)
	}

	if !registry.Exists(string(preset)) {
		fail(fmt.Errorf("unknown difficulty %q; run 'mines list' to see them", preset))
	}

	s, err := newSession(cfg)
	if err != nil {
		fail(err)
	}
	defer s.Close()

	game, err := registry.Create(string(preset))
	if err != nil {
		fail(err)
	}

	if err := tui.Run(game, s.runtimeConfig(), s.logger.Logger); err != nil {
		s.Close()
		fail(fmt.Errorf("running game: %w", err))
	}
}

// playPreset picks the preset from the arguments and folds the custom board
// flags into cfg.
func playPreset(cfg *config.Config, args []string) (config.DifficultyPreset, error) {
	overridden := flagWidth > 0 || flagHeight > 0 || flagMines > 0
	if flagWidth > 0 {
		cfg.Custom.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Custom.Height = flagHeight
	}
	if flagMines > 0 {
		cfg.Custom.Mines = flagMines
	}

	preset := cfg.Preset
	switch {
	case len(args) == 1:
		preset = config.DifficultyPreset(args[0])
	case overridden:
		preset = config.PresetCustom
	}

	if _, err := cfg.ResolveDifficulty(preset); err != nil {
		return preset, err
	}
	return preset, nil
}
