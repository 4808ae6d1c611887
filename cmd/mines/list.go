package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all difficulties",
	Long:  `Shows every difficulty preset with its board size and mine count.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fail(err)
	}

	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No difficulties available.")
		return
	}

	fmt.Println("Available difficulties:")
	fmt.Println()
	fmt.Printf("  %-14s %-8s %s\n", "ID", "Board", "Mines")
	fmt.Printf("  %-14s %-8s %s\n", "--", "-----", "-----")

	for _, g := range games {
		d, err := cfg.ResolveDifficulty(config.DifficultyPreset(g.ID))
		if err != nil {
			continue
		}
		fmt.Printf("  %-14s %-8s %d\n", g.ID, fmt.Sprintf("%dx%d", d.Width, d.Height), d.Mines)
	}

	fmt.Println()
	fmt.Println("Run 'mines play <id>' to play.")
}
