package constraint

// Weight returns the priority contribution of a single constraint. The table
// is fixed: requirement ordering derives from these values, and downstream
// seed reproducibility depends on them bit-for-bit.
func Weight(c Constraint) int {
	switch c.Kind {
	case KindDeadEnd:
		return 10
	case KindFloorExclusive:
		return 9
	case KindOnCriticalPath:
		return 8
	case KindOffCriticalPath:
		return 7
	case KindFloorRange:
		return 6
	case KindFloorCap:
		return 5
	case KindMinDistanceFromStart, KindMaxDistanceFromStart:
		return 3
	case KindAnd, KindOr, KindNot:
		// Composites score as their heaviest operand.
		best := 1
		for _, s := range c.Subs {
			if w := Weight(s); w > best {
				best = w
			}
		}
		return best
	default:
		return 1
	}
}

// Priority scores a room type's constraint set. Requirements are processed
// in descending priority so the most spatially-constrained types claim nodes
// while slots are still plentiful.
func Priority(cs []Constraint) int {
	total := 0
	for _, c := range cs {
		total += Weight(c)
	}
	return total
}
