package spatial

import (
	"fmt"

	"github.com/floorforge/floorforge/internal/core"
	"github.com/floorforge/floorforge/internal/graph"
	"github.com/floorforge/floorforge/internal/template"
)

// HallwayMode controls whether the solver may leave rooms unconnected in
// space and defer the connection to a corridor.
type HallwayMode int

const (
	// HallwaysWhenNeeded places rooms touching when geometry allows and
	// falls back to a gapped placement plus a hallway when it does not.
	HallwaysWhenNeeded HallwayMode = iota
	// HallwaysNone requires every connection to be realized by touching
	// rooms; failure to align is a fatal placement error.
	HallwaysNone
	// HallwaysAlways skips the adjacency search entirely and connects every
	// pair of rooms with a hallway.
	HallwaysAlways
)

// maxRingGap bounds the outward search for a gapped anchor.
const maxRingGap = 16

// PlacementError reports that a room could not be placed for a connection.
// The two node ids give the caller enough context to diagnose whether the
// template pool is too large for the available space.
type PlacementError struct {
	NodeA, NodeB int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("spatial: cannot place rooms for connection %d-%d", e.NodeA, e.NodeB)
}

// PlacedRoom is one node's realized room: its template (shared, not owned),
// its anchor cell in world space, its type and its difficulty. Immutable
// after creation.
type PlacedRoom struct {
	NodeID     int
	Template   *template.Template
	Anchor     core.Cell
	Type       core.RoomType
	Difficulty float64
}

// WorldCells returns the room's footprint in world space.
func (r *PlacedRoom) WorldCells() []core.Cell {
	out := make([]core.Cell, len(r.Template.Cells))
	for i, c := range r.Template.Cells {
		out[i] = c.AddCell(r.Anchor)
	}
	return out
}

// Bounds returns the room's bounding rectangle in world space.
func (r *PlacedRoom) Bounds() core.Rect {
	b := r.Template.Bounds()
	return core.Rect{X: b.X + r.Anchor.X, Y: b.Y + r.Anchor.Y, W: b.W, H: b.H}
}

// Options parameterizes one solve.
type Options struct {
	Mode    HallwayMode
	ZoneMap map[int]int

	// RouteHallway, when set, is invoked the moment a connection is flagged
	// RequiresHallway: both rooms are placed and the channel between them is
	// still clear. The callback claims the corridor's cells in the shared
	// occupancy, so later placements cannot wall the corridor in. When nil,
	// flagged connections are left for the caller to route after the solve.
	RouteHallway func(connIndex int, res *Result) error
}

// Result is the solver's output: one placed room per node, the occupied-cell
// set, and the door pairs of every connection realized by touching rooms.
// Connections flagged RequiresHallway on the graph get their doors from the
// hallway pathfinder.
type Result struct {
	Rooms     []*PlacedRoom
	Occupancy *Occupancy
	Doors     []DoorPair
}

// Solve places one room per graph node with no cell overlap. The start room
// anchors at the origin; the rest are placed in BFS order so each room grows
// off an already-placed parent. tmplRNG and placeRNG are the independent
// template-selection and spatial-placement streams.
func Solve(g *graph.FloorGraph, types map[int]core.RoomType, pool *template.Pool, tmplRNG, placeRNG *core.RNG, opts Options) (*Result, error) {
	res := &Result{
		Rooms:     make([]*PlacedRoom, g.Len()),
		Occupancy: NewOccupancy(),
	}

	maxDist := 1
	for i := range g.Nodes {
		if g.Nodes[i].DistanceFromStart > maxDist {
			maxDist = g.Nodes[i].DistanceFromStart
		}
	}

	place := func(id int, anchor core.Cell, tmpl *template.Template) {
		room := &PlacedRoom{
			NodeID:     id,
			Template:   tmpl,
			Anchor:     anchor,
			Type:       types[id],
			Difficulty: float64(g.Nodes[id].DistanceFromStart) / float64(maxDist),
		}
		res.Occupancy.Place(tmpl.Cells, anchor, id)
		res.Rooms[id] = room
	}

	startTmpl, err := pickTemplate(pool, g, types, g.StartID, maxDist, opts, tmplRNG)
	if err != nil {
		return nil, err
	}
	place(g.StartID, core.C(0, 0), startTmpl)

	// BFS from the start node; every unvisited neighbor is placed relative
	// to its already-placed parent.
	settled := make([]bool, len(g.Conns))
	queue := []int{g.StartID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		parent := res.Rooms[cur]

		for _, nb := range g.Neighbors(cur) {
			if res.Rooms[nb] != nil {
				continue
			}
			tmpl, err := pickTemplate(pool, g, types, nb, maxDist, opts, tmplRNG)
			if err != nil {
				return nil, err
			}

			var (
				anchor core.Cell
				ok     bool
			)
			if opts.Mode != HallwaysAlways {
				anchor, ok = adjacentAnchor(parent, tmpl, res.Occupancy)
			}
			if !ok {
				if opts.Mode == HallwaysNone {
					return nil, &PlacementError{NodeA: cur, NodeB: nb}
				}
				anchor, ok = ringAnchor(parent, tmpl, res.Occupancy, placeRNG)
				if !ok {
					return nil, &PlacementError{NodeA: cur, NodeB: nb}
				}
			}
			place(nb, anchor, tmpl)
			if err := settleNode(g, res, nb, settled, opts); err != nil {
				return nil, err
			}
			queue = append(queue, nb)
		}
	}
	return res, nil
}

func pickTemplate(pool *template.Pool, g *graph.FloorGraph, types map[int]core.RoomType, id, maxDist int, opts Options, rng *core.RNG) (*template.Template, error) {
	zone := -1
	if opts.ZoneMap != nil {
		if z, ok := opts.ZoneMap[id]; ok {
			zone = z
		}
	}
	difficulty := float64(g.Nodes[id].DistanceFromStart) / float64(maxDist)
	return pool.Pick(types[id], difficulty, zone, rng)
}

// adjacentAnchor enumerates every door-eligible (cell, edge) pair on the new
// template against every exterior door slot of the parent, looking for
// geometrically opposite edges. The anchor that makes the two cells touch is
// accepted if the full footprint collides with nothing.
func adjacentAnchor(parent *PlacedRoom, tmpl *template.Template, occ *Occupancy) (core.Cell, bool) {
	for _, pd := range worldDoorSlots(parent) {
		target := pd.Cell.Step(pd.Edge)
		wantEdge := pd.Edge.Opposite()
		for _, slot := range tmpl.DoorSlots() {
			if slot.Edge != wantEdge {
				continue
			}
			anchor := target.Sub(slot.Cell)
			if occ.CanPlace(tmpl.Cells, anchor) {
				return anchor, true
			}
		}
	}
	return core.Cell{}, false
}

// ringAnchor searches outward in expanding concentric rings around the
// parent's bounding box for a non-colliding anchor. The starting position on
// each ring is randomized; the scan itself is exhaustive.
func ringAnchor(parent *PlacedRoom, tmpl *template.Template, occ *Occupancy, rng *core.RNG) (core.Cell, bool) {
	pb := parent.Bounds()
	tb := tmpl.Bounds()
	for gap := 2; gap <= maxRingGap; gap++ {
		ring := perimeterCells(pb.Expand(gap))
		start := rng.Intn(len(ring))
		for i := range ring {
			p := ring[(start+i)%len(ring)]
			anchor := p.Sub(core.C(tb.X, tb.Y))
			if occ.CanPlace(tmpl.Cells, anchor) {
				return anchor, true
			}
		}
	}
	return core.Cell{}, false
}

// perimeterCells lists a rectangle's border cells clockwise from the
// top-left corner.
func perimeterCells(r core.Rect) []core.Cell {
	if r.W <= 0 || r.H <= 0 {
		return []core.Cell{{X: r.X, Y: r.Y}}
	}
	out := make([]core.Cell, 0, 2*r.W+2*r.H)
	for x := r.X; x < r.Right(); x++ {
		out = append(out, core.C(x, r.Y))
	}
	for y := r.Y + 1; y < r.Bottom(); y++ {
		out = append(out, core.C(r.Right()-1, y))
	}
	if r.H > 1 {
		for x := r.Right() - 2; x >= r.X; x-- {
			out = append(out, core.C(x, r.Bottom()-1))
		}
	}
	if r.W > 1 {
		for y := r.Bottom() - 2; y > r.Y; y-- {
			out = append(out, core.C(r.X, y))
		}
	}
	return out
}

// settleNode resolves every connection between id and an already-placed
// node, right after id's room lands. Touching pairs record their doors;
// everything else is flagged hallway-required and routed on the spot, so
// a corridor is searched while the channel between its rooms is still
// clear. Deferring all routing to a pass after placement would let later
// rooms wall earlier channels in. HallwaysAlways skips the touch check;
// HallwaysNone treats any non-touching pair as fatal.
func settleNode(g *graph.FloorGraph, res *Result, id int, settled []bool, opts Options) error {
	for _, ci := range g.Nodes[id].Conns {
		conn := &g.Conns[ci]
		if settled[ci] || res.Rooms[conn.Other(id)] == nil {
			continue
		}
		settled[ci] = true
		if opts.Mode != HallwaysAlways {
			a, b := res.Rooms[conn.A], res.Rooms[conn.B]
			if da, db, ok := touchingDoors(a, b); ok {
				res.Doors = append(res.Doors, DoorPair{ConnIndex: ci, A: da, B: db})
				continue
			}
			if opts.Mode == HallwaysNone {
				return &PlacementError{NodeA: conn.A, NodeB: conn.B}
			}
		}
		conn.RequiresHallway = true
		if opts.RouteHallway != nil {
			if err := opts.RouteHallway(ci, res); err != nil {
				return err
			}
		}
	}
	return nil
}
