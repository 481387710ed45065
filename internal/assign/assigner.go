// Package assign implements greedy, priority-ordered room-type assignment
// over a generated floor graph. The pass is deterministic and never
// backtracks: processing order is the lever that keeps over-constrained
// configurations satisfiable, not search.
package assign

import (
	"fmt"
	"sort"

	"github.com/floorforge/floorforge/internal/constraint"
	"github.com/floorforge/floorforge/internal/core"
	"github.com/floorforge/floorforge/internal/graph"
)

// ConstraintError reports that the greedy pass could not place the required
// count of some room type. It is a property of the configuration; the caller
// may retry with another seed but never with the same requirements.
type ConstraintError struct {
	RoomType core.RoomType
	Want     int
	Got      int
}

func (e *ConstraintError) Error() string {
	if e.Want == 0 {
		return fmt.Sprintf("assign: no valid node for room type %q", e.RoomType)
	}
	return fmt.Sprintf("assign: room type %q requires %d nodes, only %d qualify", e.RoomType, e.Want, e.Got)
}

// Requirement declares that exactly Count nodes receive the given room type.
// Zone scopes the requirement to one zone; NoZone means global.
type Requirement struct {
	Type  core.RoomType
	Count int
	Zone  int
}

// NoZone marks a requirement as global.
const NoZone = -1

// Options parameterizes one assignment pass.
type Options struct {
	Constraints  []constraint.Constraint
	Requirements []Requirement
	// FloorIndex and ZoneMap are injected by the orchestrator and threaded
	// into every constraint evaluation.
	FloorIndex int
	ZoneMap    map[int]int
}

// Assign runs the greedy pass: spawn at the start node, boss at a farthest
// valid node, critical path in between, then every declared requirement in
// descending constraint-priority order, and finally the standard fill.
// On success every node has a type and the graph's BossID, CriticalPath and
// OnCriticalPath flags are set.
func Assign(g *graph.FloorGraph, opts Options, rng *core.RNG) (map[int]core.RoomType, error) {
	ctx := &constraint.Context{
		Graph:       g,
		Assignments: make(map[int]core.RoomType, g.Len()),
		FloorIndex:  opts.FloorIndex,
		ZoneMap:     opts.ZoneMap,
	}

	// 1. Spawn claims the start node.
	ctx.Assignments[g.StartID] = core.RoomSpawn

	// 2. Boss location.
	if err := selectBoss(g, ctx, opts.Constraints, rng); err != nil {
		return nil, err
	}

	// 3. Critical path: shortest start-boss path, or the singleton start
	// node on a bossless floor.
	if g.BossID >= 0 {
		g.CriticalPath = g.ShortestPath(g.StartID, g.BossID)
	} else {
		g.CriticalPath = []int{g.StartID}
	}
	for _, id := range g.CriticalPath {
		g.Nodes[id].OnCriticalPath = true
	}

	// 4. Declared requirements, global before zone-scoped, each bucket in
	// descending priority of the type's constraint set.
	global, zoned := splitRequirements(opts.Requirements, opts.Constraints)
	for _, req := range append(global, zoned...) {
		if err := fill(g, ctx, opts.Constraints, req, rng); err != nil {
			return nil, err
		}
	}

	// 5. Standard fill for everything left.
	for id := 0; id < g.Len(); id++ {
		if _, ok := ctx.Assignments[id]; !ok {
			ctx.Assignments[id] = core.RoomStandard
		}
	}

	return ctx.Assignments, nil
}

// selectBoss picks uniformly at random among the valid nodes tied for
// maximum distance from start. The tie-break draw is deliberate: equal
// farthest-distance ties keep variety across seeds.
func selectBoss(g *graph.FloorGraph, ctx *constraint.Context, cs []constraint.Constraint, rng *core.RNG) error {
	bossCs := constraint.ForType(cs, core.RoomBoss)

	var candidates []int
	maxDist := -1
	for id := 0; id < g.Len(); id++ {
		if id == g.StartID {
			continue
		}
		if !constraint.AllValid(bossCs, id, ctx) {
			continue
		}
		d := g.Nodes[id].DistanceFromStart
		switch {
		case d > maxDist:
			maxDist = d
			candidates = candidates[:0]
			candidates = append(candidates, id)
		case d == maxDist:
			candidates = append(candidates, id)
		}
	}

	if len(candidates) == 0 {
		if len(bossCs) > 0 && allFloorAware(bossCs) {
			// Every obstacle is a floor-aware rule: this floor simply has
			// no boss.
			g.BossID = -1
			return nil
		}
		return &ConstraintError{RoomType: core.RoomBoss}
	}

	g.BossID = candidates[rng.Intn(len(candidates))]
	ctx.Assignments[g.BossID] = core.RoomBoss
	return nil
}

func allFloorAware(cs []constraint.Constraint) bool {
	for _, c := range cs {
		if !constraint.FloorAware(c) {
			return false
		}
	}
	return true
}

// splitRequirements partitions requirements into global and zone-scoped
// buckets and sorts each by descending constraint priority. The sort is
// stable so equal-priority requirements keep their declared order.
func splitRequirements(reqs []Requirement, cs []constraint.Constraint) (global, zoned []Requirement) {
	for _, r := range reqs {
		if r.Zone == NoZone {
			global = append(global, r)
		} else {
			zoned = append(zoned, r)
		}
	}
	byPriority := func(rs []Requirement) {
		sort.SliceStable(rs, func(i, j int) bool {
			pi := constraint.Priority(constraint.ForType(cs, rs[i].Type))
			pj := constraint.Priority(constraint.ForType(cs, rs[j].Type))
			return pi > pj
		})
	}
	byPriority(global)
	byPriority(zoned)
	return global, zoned
}

// fill assigns req.Count nodes of req.Type from the shuffled pool of
// unassigned nodes that satisfy every constraint targeting the type.
func fill(g *graph.FloorGraph, ctx *constraint.Context, cs []constraint.Constraint, req Requirement, rng *core.RNG) error {
	typeCs := constraint.ForType(cs, req.Type)

	pool := make([]int, 0, g.Len())
	for id := 0; id < g.Len(); id++ {
		if _, taken := ctx.Assignments[id]; taken {
			continue
		}
		if req.Zone != NoZone {
			zone, ok := ctx.ZoneMap[id]
			if !ok || zone != req.Zone {
				continue
			}
		}
		if constraint.AllValid(typeCs, id, ctx) {
			pool = append(pool, id)
		}
	}

	if len(pool) < req.Count {
		return &ConstraintError{RoomType: req.Type, Want: req.Count, Got: len(pool)}
	}

	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	for _, id := range pool[:req.Count] {
		ctx.Assignments[id] = req.Type
	}
	return nil
}
