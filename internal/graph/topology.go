package graph

import (
	"errors"
	"fmt"
	"math"

	"github.com/floorforge/floorforge/internal/core"
)

// Kind selects one of the topology generation algorithms.
type Kind string

const (
	KindSpanningTree Kind = "spanning-tree"
	KindGrid         Kind = "grid"
	KindCellular     Kind = "cellular"
	KindMaze         Kind = "maze"
	KindHubSpoke     Kind = "hub-spoke"
)

// MazeAlgorithm selects the spanning-tree algorithm for maze topologies.
type MazeAlgorithm string

const (
	MazePrim    MazeAlgorithm = "prim"
	MazeKruskal MazeAlgorithm = "kruskal"
)

var (
	// ErrRoomCount is returned when fewer than two rooms are requested.
	ErrRoomCount = errors.New("graph: room count must be at least 2")
	// ErrBranchingFactor is returned when the branching factor leaves [0,1].
	ErrBranchingFactor = errors.New("graph: branching factor must be in [0,1]")
	// ErrGridTooSmall is returned when a grid cannot hold the room count.
	ErrGridTooSmall = errors.New("graph: grid too small for room count")
	// ErrHubCount is returned for a non-positive or oversized hub count.
	ErrHubCount = errors.New("graph: hub count must be in [1, roomCount)")
	// ErrSpokeLength is returned for a non-positive max spoke length.
	ErrSpokeLength = errors.New("graph: max spoke length must be positive")
	// ErrUnknownKind is returned for an unrecognized topology kind.
	ErrUnknownKind = errors.New("graph: unknown topology kind")
)

// GridConfig configures the grid topology.
type GridConfig struct {
	Width    int
	Height   int
	EightWay bool // include diagonal neighbors as candidate edges
}

// CellularConfig configures the cellular-automata topology.
type CellularConfig struct {
	Width         int
	Height        int
	FillChance    float64 // initial live probability, defaults to 0.45
	Iterations    int     // birth/survival passes, defaults to 4
	BirthLimit    int     // dead cell becomes live above this neighbor count
	SurvivalLimit int     // live cell dies below this neighbor count
}

// MazeConfig configures the maze topology.
type MazeConfig struct {
	Algorithm MazeAlgorithm // defaults to prim
	// Perfect generates a pure spanning tree; imperfect mazes add
	// branching-factor loops on top.
	Perfect bool
}

// HubSpokeConfig configures the hub-and-spoke topology.
type HubSpokeConfig struct {
	HubCount       int
	MaxSpokeLength int
}

// Config selects and parameterizes a topology generator.
type Config struct {
	Kind     Kind
	Grid     GridConfig
	Cellular CellularConfig
	Maze     MazeConfig
	HubSpoke HubSpokeConfig
}

// Generate produces a connected floor graph with exactly roomCount nodes.
// Malformed configuration fails before any graph is built. All randomness
// comes from rng, so equal inputs produce identical graphs.
func Generate(cfg Config, roomCount int, branching float64, rng *core.RNG) (*FloorGraph, error) {
	if roomCount < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrRoomCount, roomCount)
	}
	if branching < 0 || branching > 1 {
		return nil, fmt.Errorf("%w (got %g)", ErrBranchingFactor, branching)
	}

	var (
		g   *FloorGraph
		err error
	)
	switch cfg.Kind {
	case KindSpanningTree, "":
		g = generateSpanningTree(roomCount, branching, rng)
	case KindGrid:
		g, err = generateGrid(roomCount, branching, cfg.Grid, rng)
	case KindCellular:
		g, err = generateCellular(roomCount, branching, cfg.Cellular, rng)
	case KindMaze:
		g, err = generateMaze(roomCount, branching, cfg.Maze, rng)
	case KindHubSpoke:
		g, err = generateHubSpoke(roomCount, branching, cfg.HubSpoke, rng)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, cfg.Kind)
	}
	if err != nil {
		return nil, err
	}

	g.ComputeDistances()
	return g, nil
}

// pair is an unordered candidate edge with a < b.
type pair struct {
	a, b int
}

// addExtraEdges adds round(branching × |remaining candidates|) random loop
// edges from the candidate set, skipping pairs the spanning tree already
// connected. The candidate slice order must be deterministic.
func addExtraEdges(g *FloorGraph, candidates []pair, branching float64, rng *core.RNG) {
	remaining := make([]pair, 0, len(candidates))
	for _, p := range candidates {
		if !g.HasConnection(p.a, p.b) {
			remaining = append(remaining, p)
		}
	}
	extra := int(math.Round(branching * float64(len(remaining))))
	if extra == 0 {
		return
	}
	rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})
	for i := 0; i < extra; i++ {
		g.Connect(remaining[i].a, remaining[i].b)
	}
}

// allPairs enumerates every unordered node pair in ascending order.
func allPairs(n int) []pair {
	out := make([]pair, 0, n*(n-1)/2)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			out = append(out, pair{a, b})
		}
	}
	return out
}
