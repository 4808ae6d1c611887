package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after the search path and the global flags
are applied, as YAML. The source is written to stderr.

Search order: --config, ~/.mines/config.yaml, ./configs/mines.yaml,
then the built-in defaults.`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, src, err := loadConfig()
	if err != nil {
		fail(err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail(err)
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", src)
	os.Stdout.Write(data) //nolint:errcheck // stdout
}
