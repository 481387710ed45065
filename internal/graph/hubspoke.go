package graph

import (
	"fmt"

	"github.com/floorforge/floorforge/internal/core"
)

// generateHubSpoke designates the first HubCount node ids as hubs, spanning-
// trees the hubs together, then distributes the remaining nodes as spoke
// chains off randomly chosen hubs. A chain that reaches MaxSpokeLength is
// closed and the next node starts a fresh chain at its hub, so every chain
// stays rooted and the graph remains connected.
func generateHubSpoke(roomCount int, branching float64, cfg HubSpokeConfig, rng *core.RNG) (*FloorGraph, error) {
	hubs := cfg.HubCount
	if hubs < 1 || hubs >= roomCount {
		return nil, fmt.Errorf("%w (got %d for %d rooms)", ErrHubCount, hubs, roomCount)
	}
	maxSpoke := cfg.MaxSpokeLength
	if maxSpoke < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrSpokeLength, maxSpoke)
	}

	g := NewFloorGraph(roomCount)

	// Spanning tree over the hubs.
	for i := 1; i < hubs; i++ {
		g.Connect(rng.Intn(i), i)
	}

	// Distribute the rest as bounded chains. chainTail[h] is the node the
	// next spoke room attaches to; chainLen[h] counts the open chain.
	chainTail := make([]int, hubs)
	chainLen := make([]int, hubs)
	for h := range chainTail {
		chainTail[h] = h
	}

	for id := hubs; id < roomCount; id++ {
		h := rng.Intn(hubs)
		if chainLen[h] >= maxSpoke {
			// Truncated chain: reconnect to the hub and start over.
			chainTail[h] = h
			chainLen[h] = 0
		}
		g.Connect(chainTail[h], id)
		chainTail[h] = id
		chainLen[h]++
	}

	addExtraEdges(g, allPairs(roomCount), branching, rng)
	return g, nil
}
