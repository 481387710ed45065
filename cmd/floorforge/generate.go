package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/floorforge/floorforge/internal/config"
	"github.com/floorforge/floorforge/internal/dungeon"
	"github.com/floorforge/floorforge/internal/graph"
	"github.com/floorforge/floorforge/internal/render"
	"github.com/floorforge/floorforge/internal/storage"
)

var (
	flagTopology string
	flagRooms    int
	flagSave     bool
	flagPlain    bool
	flagLegend   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a floor and print the map",
	Long: `Generate one dungeon floor and print its map to stdout.

The floor configuration comes from --config (or the usual search order:
~/.floorforge/configs/floor.yaml, ./configs/floor.yaml, built-in default).
Flags override individual config values.

Examples:
  floorforge generate
  floorforge generate --seed 42
  floorforge generate --topology cellular --rooms 24
  floorforge generate --save           # Persist to the floors database
  floorforge generate --plain          # No ANSI colors`,
	Run: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagTopology, "topology", "", "Topology kind: spanning-tree, grid, cellular, maze, hub-spoke")
	generateCmd.Flags().IntVar(&flagRooms, "rooms", 0, "Room count (overrides config)")
	generateCmd.Flags().BoolVar(&flagSave, "save", false, "Save the generated floor to the database")
	generateCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without ANSI colors")
	generateCmd.Flags().BoolVar(&flagLegend, "legend", false, "Print the glyph legend")
}

// resolveConfig loads the floor config and applies flag overrides.
func resolveConfig() (dungeon.FloorConfig, error) {
	ff, err := config.LoadFloor(flagConfig)
	if err != nil {
		return dungeon.FloorConfig{}, err
	}
	cfg, err := config.Build(ff)
	if err != nil {
		return dungeon.FloorConfig{}, err
	}

	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if flagTopology != "" {
		cfg.Topology.Kind = graph.Kind(flagTopology)
	}
	if flagRooms > 0 {
		cfg.RoomCount = flagRooms
	}

	return cfg, nil
}

func runGenerate(_ *cobra.Command, _ []string) {
	cfg, err := resolveConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	floor, err := dungeon.Generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating floor: %v\n", err)
		os.Exit(1)
	}

	canvas := render.Draw(floor)
	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(canvas.String())
	} else {
		fmt.Println(canvas.Styled())
	}

	if flagLegend {
		fmt.Println()
		fmt.Println(render.Legend())
	}

	fmt.Println()
	fmt.Printf("seed=%d topology=%s rooms=%d hallways=%d critical-path=%d\n",
		floor.Seed, cfg.Topology.Kind, len(floor.Rooms), len(floor.Hallways), len(floor.CriticalPath))

	if flagSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening floors database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		id, err := store.SaveFloor(storage.FloorEntry{
			Seed:      floor.Seed,
			Topology:  string(cfg.Topology.Kind),
			RoomCount: len(floor.Rooms),
			Hallways:  len(floor.Hallways),
			Layout:    canvas.String(),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving floor: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved as floor #%d\n", id)
	}
}
