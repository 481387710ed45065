package core

// Edge is a bit-flag set of wall sides. A single flag designates the side a
// door opens through; combined flags declare door eligibility on templates.
type Edge uint8

const (
	EdgeNone Edge = 0
	North    Edge = 1 << iota
	South
	East
	West
	EdgeAll = North | South | East | West
)

// edgeOrder fixes the iteration order for Sides. Generation code iterates
// door edges in this order, so it must never change.
var edgeOrder = [4]Edge{North, South, East, West}

// Has returns true if e contains the given flag.
func (e Edge) Has(flag Edge) bool {
	return e&flag != 0
}

// Sides returns the individual flags set in e, in fixed N, S, E, W order.
func (e Edge) Sides() []Edge {
	sides := make([]Edge, 0, 4)
	for _, s := range edgeOrder {
		if e.Has(s) {
			sides = append(sides, s)
		}
	}
	return sides
}

// Opposite returns the facing edge. Combined or empty flag sets map to EdgeNone.
func (e Edge) Opposite() Edge {
	switch e {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return EdgeNone
	}
}

// Delta returns the (dx, dy) unit step through this edge.
func (e Edge) Delta() (int, int) {
	switch e {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns a readable name for a single edge flag or flag set.
func (e Edge) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case EdgeAll:
		return "all"
	}
	out := ""
	for _, s := range e.Sides() {
		if out != "" {
			out += "|"
		}
		out += s.String()
	}
	return out
}
