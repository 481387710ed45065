package config

import (
	_ "embed"
)

//go:embed defaults/floor.yaml
var defaultFloorYAML []byte

// DefaultFloorFile returns the default floor configuration.
func DefaultFloorFile() FloorFile {
	return FloorFile{
		Floor: FloorSection{
			Seed:            1,
			FloorIndex:      0,
			RoomCount:       12,
			BranchingFactor: 0.15,
			HallwayMode:     "when-needed",
		},
		Topology: TopologySection{
			Kind: "spanning-tree",
		},
		Requirements: []RequirementDef{
			{Type: "treasure", Count: 1},
			{Type: "shop", Count: 1},
		},
		Constraints: []ConstraintDef{
			{Kind: "dead_end", Type: "treasure"},
			{Kind: "min_distance", Type: "shop", Min: 2},
		},
	}
}
