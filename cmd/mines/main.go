// mines is Minesweeper for the terminal.
//
// Usage:
//
//	mines play [preset]   - Play a difficulty (default from config)
//	mines menu            - Pick a difficulty interactively
//	mines list            - List difficulties
//	mines config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Frame rate (default: from config)
//	--seed <value>        - RNG seed for reproducible boards
//	--config <path>       - Configuration file
//	--log-file <path>     - Write a debug log
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the difficulty variants
	_ "github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper for the terminal, with keyboard and mouse controls.

Available commands:
  play     - Play a difficulty directly
  menu     - Interactive difficulty picker
  list     - Show all difficulties
  config   - Print the effective configuration

Examples:
  mines play expert
  mines play custom --width 40 --height 20 --mines 150
  mines menu --seed 42
  mines config > ~/.mines/config.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write a log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints err and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
