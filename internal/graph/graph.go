// Package graph provides the floor graph model and the topology generators
// that produce it. Every generator builds a spanning tree first, so graphs
// are connected by construction and never repaired afterward.
package graph

// Node is one room vertex. Identity is its dense index in [0, roomCount).
type Node struct {
	// DistanceFromStart is the BFS hop count from the start node,
	// filled by ComputeDistances after topology generation.
	DistanceFromStart int
	// OnCriticalPath marks membership of the start-to-boss shortest path,
	// set during room-type assignment.
	OnCriticalPath bool
	// Conns holds indices into the graph's connection arena.
	Conns []int
}

// Connection is an unordered pair of node indices. Connections live in the
// graph's arena; nodes refer to them by index, avoiding cyclic ownership.
type Connection struct {
	A, B int
	// RequiresHallway is set by the spatial solver when the two rooms could
	// not be placed touching, and consumed by the hallway generator.
	RequiresHallway bool
}

// Other returns the endpoint opposite to id.
func (c Connection) Other(id int) int {
	if c.A == id {
		return c.B
	}
	return c.A
}

// FloorGraph is the connected topology of one dungeon floor.
type FloorGraph struct {
	Nodes []Node
	Conns []Connection

	StartID int
	// BossID is -1 until assignment selects a boss, and stays -1 on
	// bossless floors.
	BossID int
	// CriticalPath is the ordered node sequence from start to boss,
	// computed once after type assignment.
	CriticalPath []int
}

// NewFloorGraph creates a graph with n isolated nodes and no connections.
func NewFloorGraph(n int) *FloorGraph {
	return &FloorGraph{
		Nodes:   make([]Node, n),
		StartID: 0,
		BossID:  -1,
	}
}

// Connect adds an undirected connection between a and b and returns its arena
// index. Self-loops and duplicates are ignored and return -1.
func (g *FloorGraph) Connect(a, b int) int {
	if a == b || g.HasConnection(a, b) {
		return -1
	}
	idx := len(g.Conns)
	g.Conns = append(g.Conns, Connection{A: a, B: b})
	g.Nodes[a].Conns = append(g.Nodes[a].Conns, idx)
	g.Nodes[b].Conns = append(g.Nodes[b].Conns, idx)
	return idx
}

// HasConnection reports whether a and b are directly connected.
func (g *FloorGraph) HasConnection(a, b int) bool {
	for _, ci := range g.Nodes[a].Conns {
		if g.Conns[ci].Other(a) == b {
			return true
		}
	}
	return false
}

// ConnectionBetween returns the arena index of the connection joining a and
// b, or -1 if none exists.
func (g *FloorGraph) ConnectionBetween(a, b int) int {
	for _, ci := range g.Nodes[a].Conns {
		if g.Conns[ci].Other(a) == b {
			return ci
		}
	}
	return -1
}

// Neighbors returns the ids adjacent to id, in connection insertion order.
func (g *FloorGraph) Neighbors(id int) []int {
	out := make([]int, 0, len(g.Nodes[id].Conns))
	for _, ci := range g.Nodes[id].Conns {
		out = append(out, g.Conns[ci].Other(id))
	}
	return out
}

// Degree returns the number of connections touching id.
func (g *FloorGraph) Degree(id int) int {
	return len(g.Nodes[id].Conns)
}

// IsDeadEnd reports whether id has exactly one connection.
func (g *FloorGraph) IsDeadEnd(id int) bool {
	return len(g.Nodes[id].Conns) == 1
}

// Len returns the node count.
func (g *FloorGraph) Len() int {
	return len(g.Nodes)
}
