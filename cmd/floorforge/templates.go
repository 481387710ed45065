package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/floorforge/floorforge/internal/config"
	"github.com/floorforge/floorforge/internal/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available room templates",
	Long: `List the room templates used for spatial placement: the built-in set
plus any custom templates from the floor configuration.

Examples:
  floorforge templates
  floorforge templates --config ./my-floor.yaml`,
	Run: runTemplates,
}

func runTemplates(_ *cobra.Command, _ []string) {
	pool := template.Builtin()

	// Layer in custom templates from the config, when one is given
	if flagConfig != "" {
		ff, err := config.LoadFloor(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg, err := config.Build(ff)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if cfg.Pool != nil {
			pool = cfg.Pool
		}
	}

	fmt.Printf("  %-10s  %-7s  %-6s  %-7s  %-11s  %s\n", "ID", "Size", "Cells", "Weight", "Difficulty", "Types")
	fmt.Printf("  %-10s  %-7s  %-6s  %-7s  %-11s  %s\n", "--", "----", "-----", "------", "----------", "-----")

	for _, t := range pool.All() {
		b := t.Bounds()

		types := "any"
		if len(t.RoomTypes) > 0 {
			names := make([]string, len(t.RoomTypes))
			for i, rt := range t.RoomTypes {
				names[i] = string(rt)
			}
			types = strings.Join(names, ", ")
		}

		difficulty := "any"
		if t.MinDifficulty != 0 || t.MaxDifficulty != 0 {
			difficulty = fmt.Sprintf("%.2f-%.2f", t.MinDifficulty, t.MaxDifficulty)
		}

		fmt.Printf("  %-10s  %-7s  %-6d  %-7d  %-11s  %s\n",
			t.ID, fmt.Sprintf("%dx%d", b.W, b.H), len(t.Cells), t.Weight, difficulty, types)
	}
}
