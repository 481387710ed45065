// Package constraint implements the declarative predicates that govern
// room-type assignment. Constraints are a closed tagged variant evaluated by
// exhaustive switch; context (floor index, zone map) is threaded through an
// explicit evaluation value rather than injected into constraint state.
package constraint

import (
	"errors"
	"fmt"

	"github.com/floorforge/floorforge/internal/core"
	"github.com/floorforge/floorforge/internal/graph"
)

// Kind discriminates the constraint variants.
type Kind int

const (
	KindNone Kind = iota
	KindMinDistanceFromStart
	KindMaxDistanceFromStart
	KindMinConnections
	KindMaxConnections
	KindDeadEnd
	KindNotDeadEnd
	KindOnCriticalPath
	KindOffCriticalPath
	KindComeBefore
	KindComeAfter
	KindAdjacentToType
	KindNotAdjacentToType
	KindFloorRange
	KindFloorExclusive
	KindFloorCap
	KindZoneOnly
	KindSpatialDeferred
	KindCustom
	KindAnd
	KindOr
	KindNot
)

var kindNames = map[Kind]string{
	KindMinDistanceFromStart: "min-distance-from-start",
	KindMaxDistanceFromStart: "max-distance-from-start",
	KindMinConnections:       "min-connections",
	KindMaxConnections:       "max-connections",
	KindDeadEnd:              "dead-end",
	KindNotDeadEnd:           "not-dead-end",
	KindOnCriticalPath:       "on-critical-path",
	KindOffCriticalPath:      "off-critical-path",
	KindComeBefore:           "come-before",
	KindComeAfter:            "come-after",
	KindAdjacentToType:       "adjacent-to-type",
	KindNotAdjacentToType:    "not-adjacent-to-type",
	KindFloorRange:           "floor-range",
	KindFloorExclusive:       "floor-exclusive",
	KindFloorCap:             "floor-cap",
	KindZoneOnly:             "zone-only",
	KindSpatialDeferred:      "spatial-deferred",
	KindCustom:               "custom",
	KindAnd:                  "and",
	KindOr:                   "or",
	KindNot:                  "not",
}

// String returns the configuration name for a kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ErrMixedTargets is returned when And or Not combine sub-constraints bound
// to different room types.
var ErrMixedTargets = errors.New("constraint: and/not sub-constraints must target one room type")

// Constraint is one predicate bound to exactly one target room type. Which
// fields are meaningful depends on Kind. Constraints are pure: they never
// mutate the graph or the running assignment.
type Constraint struct {
	Kind     Kind
	RoomType core.RoomType

	// Min and Max carry numeric bounds: distance for the distance kinds,
	// connection counts, floor index range, or per-floor cap (Max).
	Min int
	Max int

	// Other names the counterpart room type for adjacency and critical-path
	// ordering kinds.
	Other core.RoomType

	// Subs holds the operands of And, Or and Not.
	Subs []Constraint

	// Predicate is the escape hatch for KindCustom.
	Predicate func(node int, ctx *Context) bool
}

// MinDistanceFromStart requires a node at least min BFS hops from start.
func MinDistanceFromStart(rt core.RoomType, min int) Constraint {
	return Constraint{Kind: KindMinDistanceFromStart, RoomType: rt, Min: min}
}

// MaxDistanceFromStart requires a node at most max BFS hops from start.
func MaxDistanceFromStart(rt core.RoomType, max int) Constraint {
	return Constraint{Kind: KindMaxDistanceFromStart, RoomType: rt, Max: max}
}

// MinConnections requires a node with at least min connections.
func MinConnections(rt core.RoomType, min int) Constraint {
	return Constraint{Kind: KindMinConnections, RoomType: rt, Min: min}
}

// MaxConnections requires a node with at most max connections.
func MaxConnections(rt core.RoomType, max int) Constraint {
	return Constraint{Kind: KindMaxConnections, RoomType: rt, Max: max}
}

// DeadEnd requires a node with exactly one connection.
func DeadEnd(rt core.RoomType) Constraint {
	return Constraint{Kind: KindDeadEnd, RoomType: rt}
}

// NotDeadEnd excludes single-connection nodes.
func NotDeadEnd(rt core.RoomType) Constraint {
	return Constraint{Kind: KindNotDeadEnd, RoomType: rt}
}

// OnCriticalPath restricts the type to critical-path nodes.
func OnCriticalPath(rt core.RoomType) Constraint {
	return Constraint{Kind: KindOnCriticalPath, RoomType: rt}
}

// OffCriticalPath excludes critical-path nodes.
func OffCriticalPath(rt core.RoomType) Constraint {
	return Constraint{Kind: KindOffCriticalPath, RoomType: rt}
}

// ComeBefore requires the node to precede every node of the other type on
// the critical path. Nodes off the critical path trivially satisfy it.
func ComeBefore(rt, other core.RoomType) Constraint {
	return Constraint{Kind: KindComeBefore, RoomType: rt, Other: other}
}

// ComeAfter requires the node to follow every node of the other type on the
// critical path.
func ComeAfter(rt, other core.RoomType) Constraint {
	return Constraint{Kind: KindComeAfter, RoomType: rt, Other: other}
}

// AdjacentToType requires at least one neighbor already assigned the other
// type.
func AdjacentToType(rt, other core.RoomType) Constraint {
	return Constraint{Kind: KindAdjacentToType, RoomType: rt, Other: other}
}

// NotAdjacentToType forbids neighbors already assigned the other type.
func NotAdjacentToType(rt, other core.RoomType) Constraint {
	return Constraint{Kind: KindNotAdjacentToType, RoomType: rt, Other: other}
}

// FloorRange permits the type only when the floor index lies in [min, max].
func FloorRange(rt core.RoomType, min, max int) Constraint {
	return Constraint{Kind: KindFloorRange, RoomType: rt, Min: min, Max: max}
}

// FloorExclusive permits the type only on exactly the given floor.
func FloorExclusive(rt core.RoomType, floor int) Constraint {
	return Constraint{Kind: KindFloorExclusive, RoomType: rt, Min: floor}
}

// FloorCap limits how many nodes of the type may exist on one floor.
func FloorCap(rt core.RoomType, max int) Constraint {
	return Constraint{Kind: KindFloorCap, RoomType: rt, Max: max}
}

// ZoneOnly restricts the type to nodes mapped to the given zone.
func ZoneOnly(rt core.RoomType, zone int) Constraint {
	return Constraint{Kind: KindZoneOnly, RoomType: rt, Min: zone}
}

// SpatialDeferred declares a spatial requirement resolved during placement;
// at assignment time it always evaluates true.
func SpatialDeferred(rt core.RoomType) Constraint {
	return Constraint{Kind: KindSpatialDeferred, RoomType: rt}
}

// Custom wraps an arbitrary predicate.
func Custom(rt core.RoomType, pred func(node int, ctx *Context) bool) Constraint {
	return Constraint{Kind: KindCustom, RoomType: rt, Predicate: pred}
}

// And requires every sub-constraint to hold. All operands must share one
// target room type.
func And(subs ...Constraint) (Constraint, error) {
	if err := homogeneous(subs); err != nil {
		return Constraint{}, err
	}
	return Constraint{Kind: KindAnd, RoomType: subs[0].RoomType, Subs: subs}, nil
}

// Or requires at least one sub-constraint to hold. Operands may target mixed
// room types, expressing "either room type may be adjacent".
func Or(rt core.RoomType, subs ...Constraint) Constraint {
	return Constraint{Kind: KindOr, RoomType: rt, Subs: subs}
}

// Not inverts a single sub-constraint sharing its target room type.
func Not(sub Constraint) Constraint {
	return Constraint{Kind: KindNot, RoomType: sub.RoomType, Subs: []Constraint{sub}}
}

func homogeneous(subs []Constraint) error {
	if len(subs) == 0 {
		return fmt.Errorf("%w (no operands)", ErrMixedTargets)
	}
	for _, s := range subs[1:] {
		if s.RoomType != subs[0].RoomType {
			return fmt.Errorf("%w (%q vs %q)", ErrMixedTargets, subs[0].RoomType, s.RoomType)
		}
	}
	return nil
}

// ForType filters constraints down to those targeting the given room type.
func ForType(cs []Constraint, rt core.RoomType) []Constraint {
	out := make([]Constraint, 0, len(cs))
	for _, c := range cs {
		if c.RoomType == rt {
			out = append(out, c)
		}
	}
	return out
}

// FloorAware reports whether a constraint's outcome depends on the floor
// index. The assigner uses this for the bossless-floor rule: a boss search
// that fails only because of floor-aware constraints is not an error.
func FloorAware(c Constraint) bool {
	switch c.Kind {
	case KindFloorRange, KindFloorExclusive, KindFloorCap:
		return true
	case KindAnd, KindOr, KindNot:
		for _, s := range c.Subs {
			if FloorAware(s) {
				return true
			}
		}
	}
	return false
}

// Context carries everything constraint evaluation may consult. It is built
// by the assigner and passed explicitly to every IsValid call.
type Context struct {
	Graph *graph.FloorGraph
	// Assignments holds the types committed so far, keyed by node id.
	Assignments map[int]core.RoomType
	// FloorIndex is injected by the orchestrator for floor-aware kinds.
	FloorIndex int
	// ZoneMap maps node id to zone id; nil when zoning is not in use.
	ZoneMap map[int]int
}

// CountAssigned returns how many nodes currently hold the given type.
func (ctx *Context) CountAssigned(rt core.RoomType) int {
	n := 0
	for _, t := range ctx.Assignments {
		if t == rt {
			n++
		}
	}
	return n
}
