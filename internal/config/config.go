// Package config provides YAML-based floor configuration loading for the
// floorforge CLI and SSH server.
package config

// FloorFile is the YAML document describing one floor configuration.
type FloorFile struct {
	Floor        FloorSection     `yaml:"floor"`
	Topology     TopologySection  `yaml:"topology"`
	Requirements []RequirementDef `yaml:"requirements"`
	Constraints  []ConstraintDef  `yaml:"constraints"`
	Templates    []TemplateDef    `yaml:"templates"`
	Zones        map[int]int      `yaml:"zones,omitempty"` // node id -> zone id
}

// FloorSection holds the top-level generation knobs.
type FloorSection struct {
	Seed            uint64  `yaml:"seed"`
	FloorIndex      int     `yaml:"floor_index"`
	RoomCount       int     `yaml:"room_count"`
	BranchingFactor float64 `yaml:"branching_factor"`
	HallwayMode     string  `yaml:"hallway_mode"` // when-needed | none | always
}

// TopologySection selects and parameterizes the topology generator.
type TopologySection struct {
	Kind     string          `yaml:"kind"`
	Grid     GridSection     `yaml:"grid,omitempty"`
	Cellular CellularSection `yaml:"cellular,omitempty"`
	Maze     MazeSection     `yaml:"maze,omitempty"`
	HubSpoke HubSpokeSection `yaml:"hub_spoke,omitempty"`
}

// GridSection configures the grid topology.
type GridSection struct {
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	EightWay bool `yaml:"eight_way"`
}

// CellularSection configures the cellular-automata topology.
type CellularSection struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	FillChance    float64 `yaml:"fill_chance"`
	Iterations    int     `yaml:"iterations"`
	BirthLimit    int     `yaml:"birth_limit"`
	SurvivalLimit int     `yaml:"survival_limit"`
}

// MazeSection configures the maze topology.
type MazeSection struct {
	Algorithm string `yaml:"algorithm"` // prim | kruskal
	Perfect   bool   `yaml:"perfect"`
}

// HubSpokeSection configures the hub-and-spoke topology.
type HubSpokeSection struct {
	HubCount       int `yaml:"hub_count"`
	MaxSpokeLength int `yaml:"max_spoke_length"`
}

// RequirementDef declares a required room-type count. A missing zone key
// scopes the requirement globally.
type RequirementDef struct {
	Type  string `yaml:"type"`
	Count int    `yaml:"count"`
	Zone  *int   `yaml:"zone,omitempty"`
}

// ConstraintDef declares one constraint by kind name. Which value fields are
// read depends on the kind.
type ConstraintDef struct {
	Kind  string `yaml:"kind"`
	Type  string `yaml:"type"`
	Min   int    `yaml:"min,omitempty"`
	Max   int    `yaml:"max,omitempty"`
	Other string `yaml:"other,omitempty"`
	Floor int    `yaml:"floor,omitempty"`
	Zone  int    `yaml:"zone,omitempty"`
}

// TemplateDef declares a custom room template as rows of '#' (floor) and
// '.' (empty). Door eligibility defaults to the full perimeter of the shape.
type TemplateDef struct {
	ID            string   `yaml:"id"`
	Weight        int      `yaml:"weight"`
	Types         []string `yaml:"types,omitempty"`
	Rows          []string `yaml:"rows"`
	MinDifficulty float64  `yaml:"min_difficulty,omitempty"`
	MaxDifficulty float64  `yaml:"max_difficulty,omitempty"`
}
