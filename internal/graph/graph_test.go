package graph

import (
	"errors"
	"testing"

	"github.com/floorforge/floorforge/internal/core"
)

func TestConnectIgnoresDuplicatesAndSelfLoops(t *testing.T) {
	g := NewFloorGraph(3)
	if g.Connect(0, 1) < 0 {
		t.Fatal("first connection rejected")
	}
	if g.Connect(1, 0) >= 0 {
		t.Error("duplicate connection accepted")
	}
	if g.Connect(1, 1) >= 0 {
		t.Error("self-loop accepted")
	}
	if len(g.Conns) != 1 {
		t.Errorf("arena holds %d connections, want 1", len(g.Conns))
	}
}

func TestNeighborsAndDegree(t *testing.T) {
	g := NewFloorGraph(4)
	g.Connect(0, 1)
	g.Connect(0, 2)
	g.Connect(2, 3)

	nbs := g.Neighbors(0)
	if len(nbs) != 2 || nbs[0] != 1 || nbs[1] != 2 {
		t.Errorf("Neighbors(0) = %v, want [1 2]", nbs)
	}
	if !g.IsDeadEnd(3) {
		t.Error("node 3 should be a dead end")
	}
	if g.IsDeadEnd(0) {
		t.Error("node 0 should not be a dead end")
	}
}

func TestComputeDistances(t *testing.T) {
	// 0 - 1 - 2 - 3 chain with a 0-3 shortcut.
	g := NewFloorGraph(4)
	g.Connect(0, 1)
	g.Connect(1, 2)
	g.Connect(2, 3)
	g.Connect(0, 3)
	g.ComputeDistances()

	want := []int{0, 1, 2, 1}
	for i, d := range want {
		if g.Nodes[i].DistanceFromStart != d {
			t.Errorf("node %d distance = %d, want %d", i, g.Nodes[i].DistanceFromStart, d)
		}
	}
}

func TestShortestPath(t *testing.T) {
	g := NewFloorGraph(5)
	g.Connect(0, 1)
	g.Connect(1, 2)
	g.Connect(2, 3)
	g.Connect(0, 4)
	g.Connect(4, 3)

	path := g.ShortestPath(0, 3)
	if len(path) != 3 || path[0] != 0 || path[2] != 3 {
		t.Errorf("ShortestPath = %v, want length-3 path from 0 to 3", path)
	}
	for i := 0; i+1 < len(path); i++ {
		if !g.HasConnection(path[i], path[i+1]) {
			t.Errorf("path step %d-%d is not a real connection", path[i], path[i+1])
		}
	}

	if p := g.ShortestPath(2, 2); len(p) != 1 || p[0] != 2 {
		t.Errorf("path to self = %v, want [2]", p)
	}
}

func allKinds() []Config {
	return []Config{
		{Kind: KindSpanningTree},
		{Kind: KindGrid, Grid: GridConfig{Width: 6, Height: 6}},
		{Kind: KindGrid, Grid: GridConfig{Width: 6, Height: 6, EightWay: true}},
		{Kind: KindCellular},
		{Kind: KindMaze, Maze: MazeConfig{Algorithm: MazePrim}},
		{Kind: KindMaze, Maze: MazeConfig{Algorithm: MazeKruskal, Perfect: true}},
		{Kind: KindHubSpoke, HubSpoke: HubSpokeConfig{HubCount: 3, MaxSpokeLength: 4}},
	}
}

func TestGenerateAllKindsConnected(t *testing.T) {
	for _, cfg := range allKinds() {
		for seed := uint64(1); seed <= 20; seed++ {
			g, err := Generate(cfg, 24, 0.3, core.NewRNG(seed))
			if err != nil {
				t.Fatalf("%s seed %d: %v", cfg.Kind, seed, err)
			}
			if g.Len() != 24 {
				t.Fatalf("%s seed %d: %d nodes, want 24", cfg.Kind, seed, g.Len())
			}
			if !g.Connected() {
				t.Fatalf("%s seed %d: graph disconnected", cfg.Kind, seed)
			}
			for i := range g.Nodes {
				if g.Nodes[i].DistanceFromStart < 0 {
					t.Fatalf("%s seed %d: node %d has no distance", cfg.Kind, seed, i)
				}
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, cfg := range allKinds() {
		a, err := Generate(cfg, 18, 0.5, core.NewRNG(777))
		if err != nil {
			t.Fatal(err)
		}
		b, err := Generate(cfg, 18, 0.5, core.NewRNG(777))
		if err != nil {
			t.Fatal(err)
		}
		if len(a.Conns) != len(b.Conns) {
			t.Fatalf("%s: connection counts differ: %d vs %d", cfg.Kind, len(a.Conns), len(b.Conns))
		}
		for i := range a.Conns {
			if a.Conns[i].A != b.Conns[i].A || a.Conns[i].B != b.Conns[i].B {
				t.Fatalf("%s: connection %d differs: %+v vs %+v", cfg.Kind, i, a.Conns[i], b.Conns[i])
			}
		}
	}
}

func TestPerfectMazeIsTree(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		cfg := Config{Kind: KindMaze, Maze: MazeConfig{Algorithm: MazeKruskal, Perfect: true}}
		g, err := Generate(cfg, 16, 1.0, core.NewRNG(seed))
		if err != nil {
			t.Fatal(err)
		}
		if len(g.Conns) != g.Len()-1 {
			t.Errorf("seed %d: perfect maze has %d edges, want %d", seed, len(g.Conns), g.Len()-1)
		}
	}
}

func TestZeroBranchingYieldsTree(t *testing.T) {
	g, err := Generate(Config{Kind: KindSpanningTree}, 30, 0, core.NewRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Conns) != 29 {
		t.Errorf("tree has %d edges, want 29", len(g.Conns))
	}
}

func TestGenerateConfigErrors(t *testing.T) {
	rng := core.NewRNG(1)
	tests := []struct {
		name      string
		cfg       Config
		roomCount int
		branching float64
		wantErr   error
	}{
		{"too few rooms", Config{}, 1, 0.5, ErrRoomCount},
		{"branching too high", Config{}, 5, 1.5, ErrBranchingFactor},
		{"branching negative", Config{}, 5, -0.1, ErrBranchingFactor},
		{"grid too small", Config{Kind: KindGrid, Grid: GridConfig{Width: 2, Height: 2}}, 9, 0, ErrGridTooSmall},
		{"hub count zero", Config{Kind: KindHubSpoke, HubSpoke: HubSpokeConfig{HubCount: 0, MaxSpokeLength: 3}}, 9, 0, ErrHubCount},
		{"hub count too large", Config{Kind: KindHubSpoke, HubSpoke: HubSpokeConfig{HubCount: 9, MaxSpokeLength: 3}}, 9, 0, ErrHubCount},
		{"spoke length zero", Config{Kind: KindHubSpoke, HubSpoke: HubSpokeConfig{HubCount: 2}}, 9, 0, ErrSpokeLength},
		{"unknown kind", Config{Kind: "voronoi"}, 9, 0, ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.cfg, tt.roomCount, tt.branching, rng)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHubSpokeChainsBounded(t *testing.T) {
	cfg := Config{Kind: KindHubSpoke, HubSpoke: HubSpokeConfig{HubCount: 2, MaxSpokeLength: 3}}
	for seed := uint64(1); seed <= 10; seed++ {
		g, err := Generate(cfg, 20, 0, core.NewRNG(seed))
		if err != nil {
			t.Fatal(err)
		}
		// With zero branching every spoke node sits within MaxSpokeLength
		// hops of some hub.
		for id := 2; id < g.Len(); id++ {
			best := -1
			for hub := 0; hub < 2; hub++ {
				if p := g.ShortestPath(hub, id); p != nil && (best == -1 || len(p)-1 < best) {
					best = len(p) - 1
				}
			}
			if best > 3 {
				t.Errorf("seed %d: node %d is %d hops from nearest hub, want <= 3", seed, id, best)
			}
		}
	}
}
