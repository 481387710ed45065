package assign

import (
	"errors"
	"testing"

	"github.com/floorforge/floorforge/internal/constraint"
	"github.com/floorforge/floorforge/internal/core"
	"github.com/floorforge/floorforge/internal/graph"
)

func testGraph(t *testing.T, roomCount int, seed uint64) *graph.FloorGraph {
	t.Helper()
	g, err := graph.Generate(graph.Config{Kind: graph.KindSpanningTree}, roomCount, 0.2, core.NewRNG(seed))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestAssignSpawnAndBoss(t *testing.T) {
	g := testGraph(t, 12, 3)
	types, err := Assign(g, Options{}, core.NewRNG(3))
	if err != nil {
		t.Fatal(err)
	}

	if types[g.StartID] != core.RoomSpawn {
		t.Errorf("start node type = %q, want spawn", types[g.StartID])
	}
	if g.BossID < 0 {
		t.Fatal("boss not selected")
	}
	if types[g.BossID] != core.RoomBoss {
		t.Errorf("boss node type = %q, want boss", types[g.BossID])
	}

	// Boss must sit at the maximum distance from start.
	maxDist := 0
	for i := range g.Nodes {
		if i != g.StartID && g.Nodes[i].DistanceFromStart > maxDist {
			maxDist = g.Nodes[i].DistanceFromStart
		}
	}
	if g.Nodes[g.BossID].DistanceFromStart != maxDist {
		t.Errorf("boss at distance %d, want max distance %d", g.Nodes[g.BossID].DistanceFromStart, maxDist)
	}
}

func TestAssignCriticalPathValid(t *testing.T) {
	g := testGraph(t, 15, 11)
	if _, err := Assign(g, Options{}, core.NewRNG(11)); err != nil {
		t.Fatal(err)
	}

	cp := g.CriticalPath
	if len(cp) == 0 || cp[0] != g.StartID || cp[len(cp)-1] != g.BossID {
		t.Fatalf("critical path %v must run from start %d to boss %d", cp, g.StartID, g.BossID)
	}
	for i := 0; i+1 < len(cp); i++ {
		if !g.HasConnection(cp[i], cp[i+1]) {
			t.Errorf("critical path step %d-%d is not a connection", cp[i], cp[i+1])
		}
	}
	for _, id := range cp {
		if !g.Nodes[id].OnCriticalPath {
			t.Errorf("node %d on the path but not flagged", id)
		}
	}
}

func TestAssignFillsEveryNode(t *testing.T) {
	g := testGraph(t, 10, 7)
	types, err := Assign(g, Options{}, core.NewRNG(7))
	if err != nil {
		t.Fatal(err)
	}
	if len(types) != g.Len() {
		t.Fatalf("%d nodes typed, want %d", len(types), g.Len())
	}
	standard := 0
	for _, rt := range types {
		if rt == core.RoomStandard {
			standard++
		}
	}
	if standard != g.Len()-2 {
		t.Errorf("%d standard rooms, want %d", standard, g.Len()-2)
	}
}

func TestAssignRequirementCounts(t *testing.T) {
	// Pure tree: plenty of dead ends for the treasure constraint.
	g, err := graph.Generate(graph.Config{Kind: graph.KindSpanningTree}, 20, 0, core.NewRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{
		Requirements: []Requirement{
			{Type: core.RoomTreasure, Count: 3, Zone: NoZone},
			{Type: core.RoomShop, Count: 2, Zone: NoZone},
		},
		Constraints: []constraint.Constraint{
			constraint.DeadEnd(core.RoomTreasure),
		},
	}
	types, assignErr := Assign(g, opts, core.NewRNG(5))
	if assignErr != nil {
		t.Fatal(assignErr)
	}

	counts := map[core.RoomType]int{}
	for _, rt := range types {
		counts[rt]++
	}
	if counts[core.RoomTreasure] != 3 {
		t.Errorf("treasure count = %d, want 3", counts[core.RoomTreasure])
	}
	if counts[core.RoomShop] != 2 {
		t.Errorf("shop count = %d, want 2", counts[core.RoomShop])
	}

	// Every treasure node honors its dead-end constraint.
	for id, rt := range types {
		if rt == core.RoomTreasure && !g.IsDeadEnd(id) {
			t.Errorf("treasure node %d is not a dead end", id)
		}
	}
}

func TestAssignUnsatisfiableBossConstraint(t *testing.T) {
	// No path in a 5-node graph can reach distance 10.
	g := testGraph(t, 5, 2)
	opts := Options{
		Constraints: []constraint.Constraint{
			constraint.MinDistanceFromStart(core.RoomBoss, 10),
		},
	}
	_, err := Assign(g, opts, core.NewRNG(2))
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ConstraintError", err)
	}
	if ce.RoomType != core.RoomBoss {
		t.Errorf("error names %q, want boss", ce.RoomType)
	}
}

func TestAssignBosslessWhenOnlyFloorConstraintsFail(t *testing.T) {
	g := testGraph(t, 8, 4)
	opts := Options{
		FloorIndex: 1,
		Constraints: []constraint.Constraint{
			constraint.FloorExclusive(core.RoomBoss, 5),
		},
	}
	_, err := Assign(g, opts, core.NewRNG(4))
	if err != nil {
		t.Fatalf("floor-aware boss failure must yield a bossless floor, got %v", err)
	}
	if g.BossID != -1 {
		t.Errorf("BossID = %d, want -1", g.BossID)
	}
	if len(g.CriticalPath) != 1 || g.CriticalPath[0] != g.StartID {
		t.Errorf("bossless critical path = %v, want singleton start", g.CriticalPath)
	}
}

func TestAssignShortfallError(t *testing.T) {
	g := testGraph(t, 6, 9)
	opts := Options{
		Requirements: []Requirement{
			{Type: core.RoomTreasure, Count: 10, Zone: NoZone},
		},
	}
	_, err := Assign(g, opts, core.NewRNG(9))
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ConstraintError", err)
	}
	if ce.Want != 10 || ce.Got >= 10 {
		t.Errorf("shortfall misreported: want %d got %d", ce.Want, ce.Got)
	}
}

func TestAssignZoneScopedRequirement(t *testing.T) {
	g := testGraph(t, 12, 6)
	zoneMap := map[int]int{}
	for i := 0; i < g.Len(); i++ {
		zoneMap[i] = i % 2
	}
	opts := Options{
		ZoneMap: zoneMap,
		Requirements: []Requirement{
			{Type: core.RoomAltar, Count: 2, Zone: 1},
		},
	}
	types, err := Assign(g, opts, core.NewRNG(6))
	if err != nil {
		t.Fatal(err)
	}
	for id, rt := range types {
		if rt == core.RoomAltar && zoneMap[id] != 1 {
			t.Errorf("altar node %d placed outside zone 1", id)
		}
	}
}

func TestAssignDeterministic(t *testing.T) {
	opts := Options{
		Requirements: []Requirement{
			{Type: core.RoomTreasure, Count: 2, Zone: NoZone},
			{Type: core.RoomShop, Count: 1, Zone: NoZone},
		},
	}
	g1 := testGraph(t, 16, 42)
	t1, err := Assign(g1, opts, core.NewRNG(42))
	if err != nil {
		t.Fatal(err)
	}
	g2 := testGraph(t, 16, 42)
	t2, err := Assign(g2, opts, core.NewRNG(42))
	if err != nil {
		t.Fatal(err)
	}

	if g1.BossID != g2.BossID {
		t.Errorf("boss ids differ: %d vs %d", g1.BossID, g2.BossID)
	}
	for id, rt := range t1 {
		if t2[id] != rt {
			t.Errorf("node %d: %q vs %q", id, rt, t2[id])
		}
	}
}
