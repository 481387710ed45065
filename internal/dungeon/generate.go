package dungeon

import (
	"fmt"

	"github.com/floorforge/floorforge/internal/assign"
	"github.com/floorforge/floorforge/internal/core"
	"github.com/floorforge/floorforge/internal/graph"
	"github.com/floorforge/floorforge/internal/hallway"
	"github.com/floorforge/floorforge/internal/spatial"
)

// Generate runs the full pipeline for one floor. The run is single-threaded
// and synchronous; all randomness derives from cfg.Seed through one child
// stream per stage.
func Generate(cfg FloorConfig) (*Floor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root := core.NewRNG(cfg.Seed)
	pool := cfg.pool()

	g, err := graph.Generate(cfg.Topology, cfg.RoomCount, cfg.BranchingFactor, root.Child(core.StreamGraph))
	if err != nil {
		return nil, fmt.Errorf("dungeon: topology: %w", err)
	}

	types, err := assign.Assign(g, assign.Options{
		Constraints:  cfg.Constraints,
		Requirements: cfg.Requirements,
		FloorIndex:   cfg.FloorIndex,
		ZoneMap:      cfg.ZoneMap,
	}, root.Child(core.StreamTypes))
	if err != nil {
		return nil, err
	}

	// The router shares the solver's occupancy: each corridor is routed and
	// claimed as soon as its connection is flagged, so later room placements
	// cannot wall an earlier channel in.
	router := hallway.NewRouter(g, root.Child(core.StreamHallways))
	res, err := spatial.Solve(g, types, pool,
		root.Child(core.StreamTemplates),
		root.Child(core.StreamSpatial),
		spatial.Options{Mode: cfg.HallwayMode, ZoneMap: cfg.ZoneMap, RouteHallway: router.Route})
	if err != nil {
		return nil, err
	}

	return &Floor{
		Seed:         cfg.Seed,
		Graph:        g,
		Assignments:  types,
		Rooms:        res.Rooms,
		Doors:        res.Doors,
		Hallways:     router.Hallways(),
		Occupied:     res.Occupancy,
		SpawnID:      g.StartID,
		BossID:       g.BossID,
		CriticalPath: g.CriticalPath,
	}, nil
}
