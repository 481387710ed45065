package graph

import "github.com/floorforge/floorforge/internal/core"

// generateSpanningTree grows a tree directly: each new node attaches to a
// uniformly random already-connected node. Loop edges are then drawn from the
// full set of unordered node pairs.
func generateSpanningTree(roomCount int, branching float64, rng *core.RNG) *FloorGraph {
	g := NewFloorGraph(roomCount)
	for i := 1; i < roomCount; i++ {
		g.Connect(rng.Intn(i), i)
	}
	addExtraEdges(g, allPairs(roomCount), branching, rng)
	return g
}
