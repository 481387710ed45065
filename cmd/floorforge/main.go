// floorforge is a procedural dungeon floor generator for the terminal.
//
// Usage:
//
//	floorforge generate          - Generate a floor and print it
//	floorforge view              - Explore floors interactively
//	floorforge serve             - Start SSH server for remote exploration
//	floorforge floors            - List saved floors
//	floorforge show <id>         - Show a saved floor's layout
//	floorforge stats             - Show generation statistics
//	floorforge templates         - List available room templates
//
// Global flags:
//
//	--config <path> - Floor configuration YAML
//	--seed <value>  - RNG seed for reproducible layouts
//	--db <path>     - Database path (default: ~/.floorforge/floors.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   uint64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floorforge",
	Short: "Floorforge - Procedural dungeon floors in your terminal",
	Long: `Floorforge generates dungeon floor layouts: a room graph is built
with one of several topology algorithms, room types are assigned under
declarative constraints, room templates are packed onto a grid, and
disconnected rooms are joined with A* hallways. The same seed always
produces the same floor.

Available commands:
  generate  - Generate a floor and print the map
  view      - Interactive floor explorer
  serve     - Start SSH server for remote exploration
  floors    - Browse saved floors
  show      - Print a saved floor's layout
  stats     - Generation statistics per topology
  templates - List available room templates

Examples:
  floorforge generate
  floorforge generate --seed 42 --topology maze --save
  floorforge view --config ./my-floor.yaml
  floorforge serve --ssh :2222
  floorforge floors --browse`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to floor config YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.floorforge/floors.db", "Path to floors database")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(floorsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(templatesCmd)
}
