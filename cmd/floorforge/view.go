package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/floorforge/floorforge/internal/platform/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Explore generated floors interactively",
	Long: `Open the interactive floor viewer.

Controls:
  Arrows/hjkl - Pan the map
  N           - Regenerate with the next seed
  G           - Regenerate with a random seed
  L           - Toggle the glyph legend
  Q/Ctrl+C    - Quit

Examples:
  floorforge view
  floorforge view --seed 42
  floorforge view --config ./my-floor.yaml`,
	Run: runView,
}

func runView(_ *cobra.Command, _ []string) {
	cfg, err := resolveConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial viewport
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunViewer(cfg, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
