package hallway

import (
	"fmt"

	"github.com/floorforge/floorforge/internal/core"
	"github.com/floorforge/floorforge/internal/graph"
	"github.com/floorforge/floorforge/internal/spatial"
)

// Endpoint relocation radius bounds (see nearestFree).
const (
	minRelocateRadius = 5
	maxRelocateRadius = 15
)

// Segment is one maximal straight run of a corridor path, axis-aligned.
type Segment struct {
	Start core.Cell
	End   core.Cell
}

// Hallway is a realized corridor: an ordered list of straight segments and
// the two doors it connects. Created once, never mutated.
type Hallway struct {
	ID       int
	Segments []Segment
	DoorA    spatial.Door
	DoorB    spatial.Door
}

// Cells expands the segment list back into the corridor's path cells.
func (h *Hallway) Cells() []core.Cell {
	var out []core.Cell
	for i, seg := range h.Segments {
		cells := segmentCells(seg)
		if i > 0 {
			cells = cells[1:] // joint cell already emitted by the previous run
		}
		out = append(out, cells...)
	}
	return out
}

func segmentCells(seg Segment) []core.Cell {
	dx := sign(seg.End.X - seg.Start.X)
	dy := sign(seg.End.Y - seg.Start.Y)
	cells := []core.Cell{seg.Start}
	for cur := seg.Start; !cur.Equal(seg.End); {
		cur = cur.Add(dx, dy)
		cells = append(cells, cur)
	}
	return cells
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// PathError reports that no corridor could be routed for a connection after
// trying every door pair and exhausting each pair's node-exploration budget.
type PathError struct {
	NodeA, NodeB int
	From, To     core.Cell
}

func (e *PathError) Error() string {
	return fmt.Sprintf("hallway: no path for connection %d-%d (last door pair %v to %v)", e.NodeA, e.NodeB, e.From, e.To)
}

// Router routes corridors one connection at a time against the solver's
// occupancy. Wired into the solve through spatial.Options.RouteHallway, it
// claims each corridor's cells the moment the connection is flagged, while
// the channel between the two rooms is still clear.
type Router struct {
	g        *graph.FloorGraph
	rng      *core.RNG
	hallways []Hallway
}

// NewRouter creates a router for one generation run. rng is the dedicated
// hallway stream.
func NewRouter(g *graph.FloorGraph, rng *core.RNG) *Router {
	return &Router{g: g, rng: rng}
}

// Route finds a corridor for the connection at arena index ci, marks its
// path cells occupied and records its door pair on the solver result, so
// every connection ends up with exactly two doors.
func (r *Router) Route(ci int, res *spatial.Result) error {
	h, err := r.findCorridor(ci, res)
	if err != nil {
		return err
	}
	h.ID = len(r.hallways)
	r.hallways = append(r.hallways, h)
	res.Doors = append(res.Doors, spatial.DoorPair{ConnIndex: ci, A: h.DoorA, B: h.DoorB})
	return nil
}

// Hallways returns every corridor routed so far, in routing order.
func (r *Router) Hallways() []Hallway {
	return r.hallways
}

// findCorridor tries every door pair between the two rooms, in random
// order, until A* finds a corridor.
func (r *Router) findCorridor(ci int, res *spatial.Result) (Hallway, error) {
	conn := r.g.Conns[ci]
	roomA := res.Rooms[conn.A]
	roomB := res.Rooms[conn.B]
	doorsA := roomA.Doors()
	doorsB := roomB.Doors()

	pairs := make([][2]int, 0, len(doorsA)*len(doorsB))
	for i := range doorsA {
		for j := range doorsB {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	r.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	var lastFrom, lastTo core.Cell
	for _, p := range pairs {
		da, db := doorsA[p[0]], doorsB[p[1]]
		start := da.Cell.Step(da.Edge)
		goal := db.Cell.Step(db.Edge)
		lastFrom, lastTo = start, goal

		// A prior ring placement may have claimed an endpoint cell; relocate
		// to the nearest free substitute before searching.
		radius := core.Clamp(start.Manhattan(goal)/2, minRelocateRadius, maxRelocateRadius)
		start, ok := nearestFree(start, radius, res.Occupancy)
		if !ok {
			continue
		}
		goal, ok = nearestFree(goal, radius, res.Occupancy)
		if !ok {
			continue
		}

		path := findPath(start, goal, res.Occupancy)
		if path == nil {
			continue
		}

		for _, c := range path {
			res.Occupancy.Claim(c, spatial.HallwayOwner)
		}
		return Hallway{
			Segments: compress(path),
			DoorA:    da,
			DoorB:    db,
		}, nil
	}

	return Hallway{}, &PathError{NodeA: conn.A, NodeB: conn.B, From: lastFrom, To: lastTo}
}

// compress folds a cell path into maximal straight segments: runs of
// consecutive cells sharing a direction.
func compress(path []core.Cell) []Segment {
	if len(path) == 0 {
		return nil
	}
	if len(path) == 1 {
		return []Segment{{Start: path[0], End: path[0]}}
	}

	var segments []Segment
	segStart := path[0]
	dir := path[1].Sub(path[0])
	for i := 2; i < len(path); i++ {
		if step := path[i].Sub(path[i-1]); step != dir {
			segments = append(segments, Segment{Start: segStart, End: path[i-1]})
			segStart = path[i-1]
			dir = step
		}
	}
	segments = append(segments, Segment{Start: segStart, End: path[len(path)-1]})
	return segments
}
