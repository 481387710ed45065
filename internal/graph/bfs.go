package graph

// ComputeDistances fills DistanceFromStart for every node by breadth-first
// search from the start node. Every topology generator calls this as its
// final step.
func (g *FloorGraph) ComputeDistances() {
	for i := range g.Nodes {
		g.Nodes[i].DistanceFromStart = -1
	}
	g.Nodes[g.StartID].DistanceFromStart = 0

	queue := []int{g.StartID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, ci := range g.Nodes[cur].Conns {
			next := g.Conns[ci].Other(cur)
			if g.Nodes[next].DistanceFromStart == -1 {
				g.Nodes[next].DistanceFromStart = g.Nodes[cur].DistanceFromStart + 1
				queue = append(queue, next)
			}
		}
	}
}

// ShortestPath returns the BFS shortest node sequence from from to to,
// inclusive of both endpoints. Returns nil if to is unreachable.
func (g *FloorGraph) ShortestPath(from, to int) []int {
	if from == to {
		return []int{from}
	}
	parent := make([]int, len(g.Nodes))
	for i := range parent {
		parent[i] = -1
	}
	parent[from] = from

	queue := []int{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, ci := range g.Nodes[cur].Conns {
			next := g.Conns[ci].Other(cur)
			if parent[next] != -1 {
				continue
			}
			parent[next] = cur
			if next == to {
				return chasePath(parent, from, to)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func chasePath(parent []int, from, to int) []int {
	path := []int{to}
	for cur := to; cur != from; cur = parent[cur] {
		path = append(path, parent[cur])
	}
	// Reverse into start-to-goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Connected reports whether every node is reachable from the start node.
func (g *FloorGraph) Connected() bool {
	seen := make([]bool, len(g.Nodes))
	seen[g.StartID] = true
	count := 1
	queue := []int{g.StartID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, ci := range g.Nodes[cur].Conns {
			next := g.Conns[ci].Other(cur)
			if !seen[next] {
				seen[next] = true
				count++
				queue = append(queue, next)
			}
		}
	}
	return count == len(g.Nodes)
}
