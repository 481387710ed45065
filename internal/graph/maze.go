package graph

import (
	"fmt"

	"github.com/floorforge/floorforge/internal/core"
)

// generateMaze restricts nodes to a square grid and generates a spanning
// tree using a randomized maze algorithm: Prim's (random frontier edges) or
// Kruskal's (shuffled edges joined through a union-find). Perfect mazes stop
// at the pure tree; imperfect mazes add branching-factor loops on top.
func generateMaze(roomCount int, branching float64, cfg MazeConfig, rng *core.RNG) (*FloorGraph, error) {
	side := 1
	for side*side < roomCount {
		side++
	}

	g := NewFloorGraph(roomCount)
	candidates := gridCandidates(roomCount, side, false)

	switch cfg.Algorithm {
	case MazePrim, "":
		frontierSpanningTree(g, candidates, rng)
	case MazeKruskal:
		kruskalSpanningTree(g, candidates, rng)
	default:
		return nil, fmt.Errorf("graph: unknown maze algorithm %q", cfg.Algorithm)
	}

	if !cfg.Perfect {
		addExtraEdges(g, candidates, branching, rng)
	}
	return g, nil
}

// kruskalSpanningTree builds a uniform spanning tree by shuffling the
// candidate edges (equivalent to random weights) and joining components
// through a union-find with path compression and union by rank.
func kruskalSpanningTree(g *FloorGraph, candidates []pair, rng *core.RNG) {
	edges := make([]pair, len(candidates))
	copy(edges, candidates)
	rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	dsu := newUnionFind(g.Len())
	accepted := 0
	for _, e := range edges {
		if dsu.union(e.a, e.b) {
			g.Connect(e.a, e.b)
			accepted++
			if accepted == g.Len()-1 {
				break
			}
		}
	}
}

// unionFind is a disjoint-set structure over dense node indices.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

// find walks to the root, compressing the path as it goes.
func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// union merges the sets of a and b by rank. Returns false if already joined.
func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	return true
}
