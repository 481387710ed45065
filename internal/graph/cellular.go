package graph

import (
	"fmt"
	"sort"

	"github.com/floorforge/floorforge/internal/core"
)

// generateCellular seeds random live cells on an oversized grid, runs
// birth/survival iterations to sculpt an organic footprint, keeps the largest
// connected component, and spanning-trees the kept cells. When the automaton
// yields too few usable cells, nearest-neighbor stitching grows the set until
// it can hold every room.
func generateCellular(roomCount int, branching float64, cfg CellularConfig, rng *core.RNG) (*FloorGraph, error) {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		// Oversize so the automaton has space to carve interesting shapes.
		side := 2
		for side*side < roomCount*3 {
			side++
		}
		w, h = side, side
	}
	if w*h < roomCount {
		return nil, fmt.Errorf("%w (%dx%d automaton grid, %d rooms)", ErrGridTooSmall, w, h, roomCount)
	}

	fill := cfg.FillChance
	if fill <= 0 || fill >= 1 {
		fill = 0.45
	}
	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = 4
	}
	birth := cfg.BirthLimit
	if birth <= 0 {
		birth = 4
	}
	survival := cfg.SurvivalLimit
	if survival <= 0 {
		survival = 3
	}

	// Seed random live cells.
	live := make([]bool, w*h)
	for i := range live {
		live[i] = rng.Float() < fill
	}

	// Birth/survival passes over the 8-neighborhood.
	for it := 0; it < iterations; it++ {
		next := make([]bool, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				n := liveNeighbors(live, w, h, x, y)
				idx := y*w + x
				if live[idx] {
					next[idx] = n >= survival
				} else {
					next[idx] = n > birth
				}
			}
		}
		live = next
	}

	cells := largestComponent(live, w, h)
	cells = stitchToCount(cells, roomCount, w, h, rng)

	// Map the first roomCount cells (BFS order from the component seed) to
	// node ids, then spanning-tree them over 4-way adjacency.
	cells = cells[:roomCount]
	id := make(map[core.Cell]int, roomCount)
	for i, c := range cells {
		id[c] = i
	}

	g := NewFloorGraph(roomCount)
	candidates := cellAdjacency(cells, id)
	frontierSpanningTree(g, candidates, rng)
	stitchDisconnected(g, cells, rng)
	addExtraEdges(g, candidates, branching, rng)
	return g, nil
}

func liveNeighbors(live []bool, w, h, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			if live[ny*w+nx] {
				n++
			}
		}
	}
	return n
}

// largestComponent returns the biggest 4-connected group of live cells in
// BFS order from its lowest-index member. Deterministic for a given board.
func largestComponent(live []bool, w, h int) []core.Cell {
	seen := make([]bool, w*h)
	var best []core.Cell
	for start := 0; start < w*h; start++ {
		if !live[start] || seen[start] {
			continue
		}
		comp := []core.Cell{{X: start % w, Y: start / w}}
		seen[start] = true
		for head := 0; head < len(comp); head++ {
			for _, nb := range comp[head].Neighbors4() {
				if nb.X < 0 || nb.X >= w || nb.Y < 0 || nb.Y >= h {
					continue
				}
				idx := nb.Y*w + nb.X
				if live[idx] && !seen[idx] {
					seen[idx] = true
					comp = append(comp, nb)
				}
			}
		}
		if len(comp) > len(best) {
			best = comp
		}
	}
	return best
}

// stitchToCount grows the cell set to at least want cells by repeatedly
// annexing the unclaimed grid cell nearest to the existing set.
func stitchToCount(cells []core.Cell, want, w, h int, rng *core.RNG) []core.Cell {
	if len(cells) == 0 {
		cells = []core.Cell{{X: w / 2, Y: h / 2}}
	}
	claimed := make(map[core.Cell]bool, len(cells))
	for _, c := range cells {
		claimed[c] = true
	}

	for len(cells) < want {
		// Collect free cells orthogonally adjacent to the set; these keep
		// the stitched footprint connected.
		frontier := make([]core.Cell, 0)
		seen := make(map[core.Cell]bool)
		for _, c := range cells {
			for _, nb := range c.Neighbors4() {
				if nb.X < 0 || nb.X >= w || nb.Y < 0 || nb.Y >= h {
					continue
				}
				if claimed[nb] || seen[nb] {
					continue
				}
				seen[nb] = true
				frontier = append(frontier, nb)
			}
		}
		sort.Slice(frontier, func(i, j int) bool {
			if frontier[i].Y != frontier[j].Y {
				return frontier[i].Y < frontier[j].Y
			}
			return frontier[i].X < frontier[j].X
		})
		pick := frontier[rng.Intn(len(frontier))]
		claimed[pick] = true
		cells = append(cells, pick)
	}
	return cells
}

// cellAdjacency enumerates 4-way neighbor pairs among the chosen cells.
func cellAdjacency(cells []core.Cell, id map[core.Cell]int) []pair {
	var out []pair
	for i, c := range cells {
		for _, nb := range c.Neighbors4() {
			j, ok := id[nb]
			if !ok || j <= i {
				continue
			}
			out = append(out, pair{i, j})
		}
	}
	return out
}

// stitchDisconnected connects any node the frontier tree could not reach to
// its nearest (Manhattan) already-connected node. The automaton component is
// 4-connected, but truncating to roomCount cells can still strand cells.
func stitchDisconnected(g *FloorGraph, cells []core.Cell, rng *core.RNG) {
	reached := make([]bool, g.Len())
	reached[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, ci := range g.Nodes[cur].Conns {
			next := g.Conns[ci].Other(cur)
			if !reached[next] {
				reached[next] = true
				queue = append(queue, next)
			}
		}
	}

	for i := 0; i < g.Len(); i++ {
		if reached[i] {
			continue
		}
		best, bestDist := -1, 0
		for j := 0; j < g.Len(); j++ {
			if !reached[j] {
				continue
			}
			d := cells[i].Manhattan(cells[j])
			if best == -1 || d < bestDist {
				best, bestDist = j, d
			}
		}
		g.Connect(best, i)
		reached[i] = true
	}
}
