package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a game.
Quitting a game returns to the menu.

Examples:
  mines menu
  mines menu --fps 60`,
	Run: runMenu,
}

// menuItems lists the registered variants with their resolved boards.
func menuItems(cfg config.Config) []tui.MenuItem {
	games := registry.List()
	items := make([]tui.MenuItem, 0, len(games))
	for _, g := range games {
		d, err := cfg.ResolveDifficulty(config.DifficultyPreset(g.ID))
		if err != nil {
			continue
		}
		items = append(items, tui.MenuItem{
			GameID: g.ID,
			Title:  g.Title,
			Board:  fmt.Sprintf("%dx%d", d.Width, d.Height),
			Mines:  d.Mines,
		})
	}
	return items
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fail(err)
	}

	s, err := newSession(cfg)
	if err != nil {
		fail(err)
	}
	defer s.Close()

	items := menuItems(cfg)
	rc := s.runtimeConfig()

	for {
		result, err := tui.RunMenu(items, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		rc = result.Config
		if result.Quit {
			return
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh board for each game unless a seed was given
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, rc, s.logger.Logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
