package constraint

// IsValid answers whether node is an acceptable location for the
// constraint's target room type, given the graph and the assignments made so
// far. The switch is exhaustive over every Kind; unknown kinds reject.
func IsValid(c Constraint, node int, ctx *Context) bool {
	g := ctx.Graph
	switch c.Kind {
	case KindMinDistanceFromStart:
		return g.Nodes[node].DistanceFromStart >= c.Min
	case KindMaxDistanceFromStart:
		return g.Nodes[node].DistanceFromStart <= c.Max
	case KindMinConnections:
		return g.Degree(node) >= c.Min
	case KindMaxConnections:
		return g.Degree(node) <= c.Max
	case KindDeadEnd:
		return g.IsDeadEnd(node)
	case KindNotDeadEnd:
		return !g.IsDeadEnd(node)
	case KindOnCriticalPath:
		return g.Nodes[node].OnCriticalPath
	case KindOffCriticalPath:
		return !g.Nodes[node].OnCriticalPath
	case KindComeBefore:
		return orderedOnCriticalPath(c, node, ctx, true)
	case KindComeAfter:
		return orderedOnCriticalPath(c, node, ctx, false)
	case KindAdjacentToType:
		for _, nb := range g.Neighbors(node) {
			if ctx.Assignments[nb] == c.Other {
				return true
			}
		}
		return false
	case KindNotAdjacentToType:
		for _, nb := range g.Neighbors(node) {
			if ctx.Assignments[nb] == c.Other {
				return false
			}
		}
		return true
	case KindFloorRange:
		return ctx.FloorIndex >= c.Min && ctx.FloorIndex <= c.Max
	case KindFloorExclusive:
		return ctx.FloorIndex == c.Min
	case KindFloorCap:
		return ctx.CountAssigned(c.RoomType) < c.Max
	case KindZoneOnly:
		if ctx.ZoneMap == nil {
			return false
		}
		zone, ok := ctx.ZoneMap[node]
		return ok && zone == c.Min
	case KindSpatialDeferred:
		// Real evaluation happens during spatial placement.
		return true
	case KindCustom:
		return c.Predicate != nil && c.Predicate(node, ctx)
	case KindAnd:
		for _, s := range c.Subs {
			if !IsValid(s, node, ctx) {
				return false
			}
		}
		return true
	case KindOr:
		for _, s := range c.Subs {
			if IsValid(s, node, ctx) {
				return true
			}
		}
		return false
	case KindNot:
		return len(c.Subs) == 1 && !IsValid(c.Subs[0], node, ctx)
	default:
		return false
	}
}

// orderedOnCriticalPath checks come-before/come-after ordering relative to
// every already-assigned node of the other type. Nodes off the critical path
// satisfy ordering trivially, as do comparisons against off-path nodes.
func orderedOnCriticalPath(c Constraint, node int, ctx *Context, before bool) bool {
	pos := criticalPathIndex(ctx, node)
	if pos < 0 {
		return true
	}
	for other, rt := range ctx.Assignments {
		if rt != c.Other {
			continue
		}
		otherPos := criticalPathIndex(ctx, other)
		if otherPos < 0 {
			continue
		}
		if before && pos >= otherPos {
			return false
		}
		if !before && pos <= otherPos {
			return false
		}
	}
	return true
}

func criticalPathIndex(ctx *Context, node int) int {
	for i, id := range ctx.Graph.CriticalPath {
		if id == node {
			return i
		}
	}
	return -1
}

// AllValid reports whether the node satisfies every constraint in cs.
func AllValid(cs []Constraint, node int, ctx *Context) bool {
	for _, c := range cs {
		if !IsValid(c, node, ctx) {
			return false
		}
	}
	return true
}
