// Package hallway connects rooms the spatial solver could not place touching,
// using A* search over the 4-connected cell grid.
package hallway

import (
	"container/heap"

	"github.com/floorforge/floorforge/internal/core"
	"github.com/floorforge/floorforge/internal/spatial"
)

// Exploration bounds. The cap scales with endpoint separation so distant
// doors get a bigger budget, while a blocked search still terminates.
const (
	minNodeCap = 10_000
	maxNodeCap = 50_000
)

// pathNode is one open-set entry: a cell, its cost from the start, and its
// priority (cost + Manhattan heuristic).
type pathNode struct {
	cell     core.Cell
	cost     int
	priority int
	index    int
}

// openSet is a min-heap over pathNode priorities.
type openSet []*pathNode

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].priority != s[j].priority {
		return s[i].priority < s[j].priority
	}
	// Tie-break on cost so deeper nodes expand first; keeps exploration
	// order fully deterministic.
	return s[i].cost > s[j].cost
}

func (s openSet) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index = i
	s[j].index = j
}

func (s *openSet) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*s)
	*s = append(*s, n)
}

func (s *openSet) Pop() any {
	old := *s
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*s = old[:len(old)-1]
	return n
}

// findPath runs A* from start to goal over free cells, cost 1 per step.
// Both endpoints must be free. Returns nil when the node cap is exceeded or
// the open set empties before reaching the goal.
func findPath(start, goal core.Cell, occ *spatial.Occupancy) []core.Cell {
	nodeCap := core.Clamp(start.Manhattan(goal)*100, minNodeCap, maxNodeCap)

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &pathNode{cell: start, cost: 0, priority: start.Manhattan(goal)})

	cameFrom := map[core.Cell]core.Cell{start: start}
	bestCost := map[core.Cell]int{start: 0}

	explored := 0
	for open.Len() > 0 {
		cur := heap.Pop(open).(*pathNode)
		if cur.cell.Equal(goal) {
			return rebuildPath(cameFrom, start, goal)
		}
		explored++
		if explored > nodeCap {
			return nil
		}

		for _, nb := range cur.cell.Neighbors4() {
			if occ.Occupied(nb) && !nb.Equal(goal) {
				continue
			}
			cost := cur.cost + 1
			if prev, seen := bestCost[nb]; seen && prev <= cost {
				continue
			}
			bestCost[nb] = cost
			cameFrom[nb] = cur.cell
			heap.Push(open, &pathNode{
				cell:     nb,
				cost:     cost,
				priority: cost + nb.Manhattan(goal),
			})
		}
	}
	return nil
}

func rebuildPath(cameFrom map[core.Cell]core.Cell, start, goal core.Cell) []core.Cell {
	path := []core.Cell{goal}
	for cur := goal; !cur.Equal(start); cur = cameFrom[cur] {
		path = append(path, cameFrom[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// nearestFree finds the closest free cell to c within the given radius using
// breadth-first search, crossing occupied cells if necessary. ok is false
// when the whole neighborhood is claimed.
func nearestFree(c core.Cell, radius int, occ *spatial.Occupancy) (core.Cell, bool) {
	if !occ.Occupied(c) {
		return c, true
	}
	seen := map[core.Cell]bool{c: true}
	queue := []core.Cell{c}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range cur.Neighbors4() {
			if seen[nb] || c.Manhattan(nb) > radius {
				continue
			}
			if !occ.Occupied(nb) {
				return nb, true
			}
			seen[nb] = true
			queue = append(queue, nb)
		}
	}
	return core.Cell{}, false
}
