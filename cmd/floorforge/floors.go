package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/floorforge/floorforge/internal/platform/tui"
	"github.com/floorforge/floorforge/internal/storage"
)

var (
	flagFloorsLimit    int
	flagFloorsTopology string
	flagFloorsBrowse   bool
)

var floorsCmd = &cobra.Command{
	Use:   "floors",
	Short: "List saved floors",
	Long: `List floors saved with 'floorforge generate --save'.

Examples:
  floorforge floors
  floorforge floors --topology maze
  floorforge floors --limit 50
  floorforge floors --browse          # Interactive browser`,
	Run: runFloors,
}

func init() {
	floorsCmd.Flags().IntVar(&flagFloorsLimit, "limit", 20, "Maximum floors to list")
	floorsCmd.Flags().StringVar(&flagFloorsTopology, "topology", "", "Only floors with this topology kind")
	floorsCmd.Flags().BoolVar(&flagFloorsBrowse, "browse", false, "Open the interactive floors browser")
}

func runFloors(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening floors database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagFloorsBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunBrowser(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var floors []storage.FloorEntry
	if flagFloorsTopology != "" {
		floors, err = store.FloorsByTopology(flagFloorsTopology, flagFloorsLimit)
	} else {
		floors, err = store.RecentFloors(flagFloorsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving floors: %v\n", err)
		os.Exit(1)
	}

	if len(floors) == 0 {
		fmt.Println("No saved floors.")
		fmt.Println()
		fmt.Println("Generate one with 'floorforge generate --save'.")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-20s  %-13s  %-6s  %-8s  %s\n", "ID", "Seed", "Topology", "Rooms", "Hallways", "Date")
	fmt.Printf("  %-5s  %-20s  %-13s  %-6s  %-8s  %s\n", "--", "----", "--------", "-----", "--------", "----")

	for _, f := range floors {
		fmt.Printf("  %-5d  %-20d  %-13s  %-6d  %-8d  %s\n",
			f.ID, f.Seed, f.Topology, f.RoomCount, f.Hallways,
			f.CreatedAt.Format("2006-01-02 15:04"))
	}
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved floor's layout",
	Long: `Print the stored map of a saved floor.

Examples:
  floorforge show 3`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid floor ID %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening floors database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	floor, err := store.FloorByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving floor: %v\n", err)
		os.Exit(1)
	}
	if floor == nil {
		fmt.Fprintf(os.Stderr, "Error: no floor with ID %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'floorforge floors' to see saved floors.")
		os.Exit(1)
	}

	fmt.Println(floor.Layout)
	fmt.Println()
	fmt.Printf("seed=%d topology=%s rooms=%d hallways=%d saved=%s\n",
		floor.Seed, floor.Topology, floor.RoomCount, floor.Hallways,
		floor.CreatedAt.Format("2006-01-02 15:04"))
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show generation statistics per topology",
	Long: `Display aggregate statistics over all saved floors, grouped by
topology kind.

Examples:
  floorforge stats`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening floors database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetTopologyStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No saved floors yet.")
		return
	}

	fmt.Printf("  %-13s  %-7s  %-10s  %-9s  %s\n", "Topology", "Floors", "Avg rooms", "Hallways", "Last generated")
	fmt.Printf("  %-13s  %-7s  %-10s  %-9s  %s\n", "--------", "------", "---------", "--------", "--------------")

	for _, kind := range []string{"spanning-tree", "grid", "cellular", "maze", "hub-spoke"} {
		st, ok := stats[kind]
		if !ok {
			continue
		}
		fmt.Printf("  %-13s  %-7d  %-10.1f  %-9d  %s\n",
			st.Topology, st.FloorCount, st.AvgRooms, st.TotalHallways,
			st.LastGenerated.Format("2006-01-02 15:04"))
	}
}
