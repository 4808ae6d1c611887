package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/logging"
)

// loadConfig loads the configuration and applies the global flags.
func loadConfig() (config.Config, config.Source, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, src, err
	}

	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
		cfg.Timing.EngineTickHz = min(cfg.Timing.EngineTickHz, flagFPS)
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	return cfg, src, cfg.Validate()
}

// session is what a play or menu run needs besides the game itself.
type session struct {
	cfg    config.Config
	logger *logging.Logger
}

// newSession loads the configuration, opens the log and applies the
// settings to the minesweeper variants.
func newSession(cfg config.Config) (*session, error) {
	logPath, err := config.ExpandPath(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{File: logPath, Level: cfg.Log.Level})
	if err != nil {
		return nil, err
	}

	minesweeper.SetCustomDifficulty(cfg.Custom.Difficulty())
	minesweeper.SetGlyphs(cfg.Glyphs)
	minesweeper.SetEngineTickHz(cfg.Timing.EngineTickHz)
	minesweeper.SetLogger(logger.Logger)

	return &session{cfg: cfg, logger: logger}, nil
}

// runtimeConfig sizes the screen to the terminal.
func (s *session) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.cfg.Timing.TickRate,
		Seed:     flagSeed,
	}
}

func (s *session) Close() {
	//nolint:errcheck // Best-effort close of the log file
	s.logger.Close()
}
