package graph

import (
	"fmt"

	"github.com/floorforge/floorforge/internal/core"
)

// generateGrid lays nodes on a width×height lattice (row-major, first
// roomCount positions), restricts candidate edges to 4-way or 8-way grid
// neighbors, and builds the spanning tree by randomly selecting frontier
// edges outward from node 0.
func generateGrid(roomCount int, branching float64, cfg GridConfig, rng *core.RNG) (*FloorGraph, error) {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 || w*h < roomCount {
		return nil, fmt.Errorf("%w (%dx%d grid, %d rooms)", ErrGridTooSmall, w, h, roomCount)
	}

	g := NewFloorGraph(roomCount)
	candidates := gridCandidates(roomCount, w, cfg.EightWay)
	frontierSpanningTree(g, candidates, rng)
	addExtraEdges(g, candidates, branching, rng)
	return g, nil
}

// gridCandidates enumerates neighbor pairs among the first roomCount
// row-major lattice positions, in deterministic ascending order.
func gridCandidates(roomCount, width int, eightWay bool) []pair {
	// Offsets reaching "forward" positions only, so each pair appears once.
	offsets := [][2]int{{1, 0}, {0, 1}}
	if eightWay {
		offsets = append(offsets, [2]int{1, 1}, [2]int{-1, 1})
	}

	var out []pair
	for id := 0; id < roomCount; id++ {
		x, y := id%width, id/width
		for _, off := range offsets {
			nx, ny := x+off[0], y+off[1]
			if nx < 0 || nx >= width {
				continue
			}
			nid := ny*width + nx
			if nid >= roomCount {
				continue
			}
			a, b := id, nid
			if a > b {
				a, b = b, a
			}
			out = append(out, pair{a, b})
		}
	}
	return out
}

// frontierSpanningTree connects all nodes using randomized Prim's algorithm
// over the candidate edge set: repeatedly pick a uniformly random edge
// crossing from the visited set to the unvisited set.
func frontierSpanningTree(g *FloorGraph, candidates []pair, rng *core.RNG) {
	n := g.Len()
	adj := make([][]int, n)
	for _, p := range candidates {
		adj[p.a] = append(adj[p.a], p.b)
		adj[p.b] = append(adj[p.b], p.a)
	}

	visited := make([]bool, n)
	visited[0] = true
	frontier := make([]pair, 0, len(adj[0]))
	for _, nb := range adj[0] {
		frontier = append(frontier, pair{0, nb})
	}

	connected := 1
	for connected < n && len(frontier) > 0 {
		idx := rng.Intn(len(frontier))
		edge := frontier[idx]
		frontier[idx] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if visited[edge.b] {
			continue
		}
		g.Connect(edge.a, edge.b)
		visited[edge.b] = true
		connected++
		for _, nb := range adj[edge.b] {
			if !visited[nb] {
				frontier = append(frontier, pair{edge.b, nb})
			}
		}
	}
}
