// Package dungeon is the orchestration layer of the floor generator: it
// validates a floor configuration, derives one random stream per pipeline
// stage, runs graph, types, placement and hallways in fixed order, and
// assembles the final floor layout.
package dungeon

import (
	"github.com/floorforge/floorforge/internal/assign"
	"github.com/floorforge/floorforge/internal/constraint"
	"github.com/floorforge/floorforge/internal/core"
	"github.com/floorforge/floorforge/internal/graph"
	"github.com/floorforge/floorforge/internal/hallway"
	"github.com/floorforge/floorforge/internal/spatial"
	"github.com/floorforge/floorforge/internal/template"
)

// FloorConfig fully specifies one floor generation run.
type FloorConfig struct {
	// Seed drives every random draw. Equal configs with equal seeds produce
	// byte-identical floors.
	Seed uint64
	// FloorIndex is threaded into floor-aware constraints.
	FloorIndex int

	RoomCount       int
	BranchingFactor float64
	Topology        graph.Config

	Requirements []assign.Requirement
	Constraints  []constraint.Constraint

	// Pool supplies room templates; nil selects the builtin pool.
	Pool *template.Pool

	HallwayMode spatial.HallwayMode

	// ZoneMap optionally maps node ids to zone ids for zone-aware
	// constraints, zone-scoped requirements and zone-preferred templates.
	ZoneMap map[int]int
}

// Floor is a fully-specified generated floor layout.
type Floor struct {
	Seed uint64

	Graph       *graph.FloorGraph
	Assignments map[int]core.RoomType

	Rooms    []*spatial.PlacedRoom
	Doors    []spatial.DoorPair
	Hallways []hallway.Hallway

	// Occupied is the final occupied-cell set, consumed read-only by
	// post-processing stages.
	Occupied *spatial.Occupancy

	SpawnID      int
	BossID       int
	CriticalPath []int
}

// Validate checks the configuration before any stage runs. All failures are
// caller-correctable and reported as *ConfigError.
func (cfg *FloorConfig) Validate() error {
	if cfg.RoomCount < 2 {
		return &ConfigError{Field: "RoomCount", Reason: "must be at least 2"}
	}
	if cfg.BranchingFactor < 0 || cfg.BranchingFactor > 1 {
		return &ConfigError{Field: "BranchingFactor", Reason: "must be in [0,1]"}
	}

	// Spawn and boss claim two nodes before any requirement is served.
	required := 2
	for _, req := range cfg.Requirements {
		if req.Count < 0 {
			return &ConfigError{Field: "Requirements", Reason: "counts must be non-negative"}
		}
		required += req.Count
	}
	if cfg.RoomCount < required {
		return &ConfigError{Field: "RoomCount", Reason: "too small for spawn, boss and all required rooms"}
	}

	pool := cfg.pool()
	if pool.Len() == 0 {
		return &ConfigError{Field: "Pool", Reason: "no templates"}
	}
	for _, rt := range []core.RoomType{core.RoomSpawn, core.RoomBoss, core.RoomStandard} {
		if !pool.HasType(rt) {
			return &ConfigError{Field: "Pool", Reason: "no template for room type " + string(rt)}
		}
	}
	for _, req := range cfg.Requirements {
		if !pool.HasType(req.Type) {
			return &ConfigError{Field: "Pool", Reason: "no template for room type " + string(req.Type)}
		}
	}
	return nil
}

func (cfg *FloorConfig) pool() *template.Pool {
	if cfg.Pool != nil {
		return cfg.Pool
	}
	return template.Builtin()
}
