package spatial

import (
	"errors"
	"testing"

	"github.com/floorforge/floorforge/internal/assign"
	"github.com/floorforge/floorforge/internal/core"
	"github.com/floorforge/floorforge/internal/graph"
	"github.com/floorforge/floorforge/internal/template"
)

func solveFixture(t *testing.T, roomCount int, seed uint64, mode HallwayMode) (*graph.FloorGraph, *Result) {
	t.Helper()
	rng := core.NewRNG(seed)
	g, err := graph.Generate(graph.Config{Kind: graph.KindSpanningTree}, roomCount, 0.2, rng.Child(core.StreamGraph))
	if err != nil {
		t.Fatal(err)
	}
	types, err := assign.Assign(g, assign.Options{}, rng.Child(core.StreamTypes))
	if err != nil {
		t.Fatal(err)
	}
	res, err := Solve(g, types, template.Builtin(), rng.Child(core.StreamTemplates), rng.Child(core.StreamSpatial), Options{Mode: mode})
	if err != nil {
		t.Fatal(err)
	}
	return g, res
}

func TestSolvePlacesEveryRoomWithoutOverlap(t *testing.T) {
	for seed := uint64(1); seed <= 15; seed++ {
		g, res := solveFixture(t, 14, seed, HallwaysWhenNeeded)

		claimed := make(map[core.Cell]int)
		for id, room := range res.Rooms {
			if room == nil {
				t.Fatalf("seed %d: node %d never placed", seed, id)
			}
			for _, c := range room.WorldCells() {
				if prev, taken := claimed[c]; taken {
					t.Fatalf("seed %d: cell %v claimed by both %d and %d", seed, c, prev, id)
				}
				claimed[c] = id
			}
		}
		_ = g
	}
}

func TestSolveStartRoomAtOrigin(t *testing.T) {
	g, res := solveFixture(t, 8, 3, HallwaysWhenNeeded)
	if !res.Rooms[g.StartID].Anchor.Equal(core.C(0, 0)) {
		t.Errorf("start anchor = %v, want origin", res.Rooms[g.StartID].Anchor)
	}
}

func TestSolveTouchingDoorsAreAdjacent(t *testing.T) {
	_, res := solveFixture(t, 12, 5, HallwaysWhenNeeded)
	for _, pair := range res.Doors {
		if pair.A.Cell.Manhattan(pair.B.Cell) != 1 {
			t.Errorf("door pair %v / %v not orthogonally adjacent", pair.A.Cell, pair.B.Cell)
		}
		if pair.A.Edge.Opposite() != pair.B.Edge {
			t.Errorf("door edges %v / %v not opposite", pair.A.Edge, pair.B.Edge)
		}
	}
}

func TestSolveAlwaysModeFlagsEveryConnection(t *testing.T) {
	g, res := solveFixture(t, 10, 7, HallwaysAlways)
	for ci, conn := range g.Conns {
		if !conn.RequiresHallway {
			t.Errorf("connection %d not flagged in always mode", ci)
		}
	}
	if len(res.Doors) != 0 {
		t.Errorf("always mode recorded %d touching door pairs, want 0", len(res.Doors))
	}
}

func TestSolveRouteCallbackFiresOncePerConnection(t *testing.T) {
	rng := core.NewRNG(11)
	g, err := graph.Generate(graph.Config{Kind: graph.KindSpanningTree}, 10, 0.2, rng.Child(core.StreamGraph))
	if err != nil {
		t.Fatal(err)
	}
	types, err := assign.Assign(g, assign.Options{}, rng.Child(core.StreamTypes))
	if err != nil {
		t.Fatal(err)
	}

	routed := make(map[int]int)
	opts := Options{
		Mode: HallwaysAlways,
		RouteHallway: func(ci int, res *Result) error {
			conn := g.Conns[ci]
			if res.Rooms[conn.A] == nil || res.Rooms[conn.B] == nil {
				t.Fatalf("connection %d routed before both rooms were placed", ci)
			}
			routed[ci]++
			return nil
		},
	}
	_, err = Solve(g, types, template.Builtin(), rng.Child(core.StreamTemplates), rng.Child(core.StreamSpatial), opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(routed) != len(g.Conns) {
		t.Fatalf("callback saw %d connections, want %d", len(routed), len(g.Conns))
	}
	for ci, n := range routed {
		if n != 1 {
			t.Errorf("connection %d routed %d times", ci, n)
		}
	}
}

func TestSolveNoneModeFailsWithHugeTemplates(t *testing.T) {
	// A template whose only door edge is North can never align with a copy
	// of itself placed off a North door, once the first placements box the
	// space in. Use a pair of templates that cannot face each other.
	oneWay, err := template.New("oneway", template.RectCells(3, 3),
		map[core.Cell]core.Edge{core.C(1, 0): core.North}, 1)
	if err != nil {
		t.Fatal(err)
	}
	pool := template.NewPool(oneWay)

	rng := core.NewRNG(2)
	g, err := graph.Generate(graph.Config{Kind: graph.KindSpanningTree}, 3, 0, rng.Child(core.StreamGraph))
	if err != nil {
		t.Fatal(err)
	}
	types, err := assign.Assign(g, assign.Options{}, rng.Child(core.StreamTypes))
	if err != nil {
		t.Fatal(err)
	}

	_, err = Solve(g, types, pool, rng.Child(core.StreamTemplates), rng.Child(core.StreamSpatial), Options{Mode: HallwaysNone})
	var pe *PlacementError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want PlacementError", err)
	}
}

func TestSolveDeterministic(t *testing.T) {
	_, a := solveFixture(t, 16, 99, HallwaysWhenNeeded)
	_, b := solveFixture(t, 16, 99, HallwaysWhenNeeded)
	for id := range a.Rooms {
		if !a.Rooms[id].Anchor.Equal(b.Rooms[id].Anchor) {
			t.Errorf("node %d anchors differ: %v vs %v", id, a.Rooms[id].Anchor, b.Rooms[id].Anchor)
		}
		if a.Rooms[id].Template.ID != b.Rooms[id].Template.ID {
			t.Errorf("node %d templates differ: %s vs %s", id, a.Rooms[id].Template.ID, b.Rooms[id].Template.ID)
		}
	}
}

func TestSolveDifficultyNormalized(t *testing.T) {
	_, res := solveFixture(t, 12, 13, HallwaysWhenNeeded)
	for id, room := range res.Rooms {
		if room.Difficulty < 0 || room.Difficulty > 1 {
			t.Errorf("node %d difficulty %g outside [0,1]", id, room.Difficulty)
		}
	}
}

func TestPerimeterCells(t *testing.T) {
	ring := perimeterCells(core.NewRect(0, 0, 3, 3))
	if len(ring) != 8 {
		t.Fatalf("3x3 perimeter has %d cells, want 8", len(ring))
	}
	seen := make(map[core.Cell]bool)
	for _, c := range ring {
		if seen[c] {
			t.Fatalf("perimeter repeats cell %v", c)
		}
		seen[c] = true
		if c.X != 0 && c.X != 2 && c.Y != 0 && c.Y != 2 {
			t.Fatalf("cell %v is not on the border", c)
		}
	}
}

func TestOccupancyPanicsOnDoublePlace(t *testing.T) {
	occ := NewOccupancy()
	cells := []core.Cell{core.C(0, 0)}
	occ.Place(cells, core.C(5, 5), 1)

	defer func() {
		if recover() == nil {
			t.Error("double placement must panic")
		}
	}()
	occ.Place(cells, core.C(5, 5), 2)
}
