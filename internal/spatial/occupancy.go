// Package spatial packs room templates into 2D space, one room per graph
// node, growing breadth-first from the start room so every placement has an
// already-placed geometric anchor. The single correctness property every
// operation preserves: no two placed elements ever claim the same world cell.
package spatial

import (
	"strconv"

	"github.com/floorforge/floorforge/internal/core"
)

// HallwayOwner is the owner id recorded for cells claimed by corridors.
const HallwayOwner = -1

// Occupancy is the running set of world cells claimed by placed rooms and
// hallway segments, keyed by owner node id. The solver and the hallway
// pathfinder write it in lockstep during one solve, so neither can claim
// the other's cells.
type Occupancy struct {
	cells map[core.Cell]int
}

// NewOccupancy creates an empty occupancy set.
func NewOccupancy() *Occupancy {
	return &Occupancy{cells: make(map[core.Cell]int)}
}

// Occupied reports whether the world cell is claimed.
func (o *Occupancy) Occupied(c core.Cell) bool {
	_, ok := o.cells[c]
	return ok
}

// Owner returns the node id claiming the cell, or HallwayOwner for corridor
// cells. ok is false for free cells.
func (o *Occupancy) Owner(c core.Cell) (int, bool) {
	id, ok := o.cells[c]
	return id, ok
}

// CanPlace reports whether every local cell, offset by anchor, is free.
func (o *Occupancy) CanPlace(local []core.Cell, anchor core.Cell) bool {
	for _, c := range local {
		if o.Occupied(c.AddCell(anchor)) {
			return false
		}
	}
	return true
}

// Place claims every local cell offset by anchor for the owner.
// Callers must check CanPlace first; claiming an occupied cell panics,
// because it would break the pipeline-wide disjointness invariant.
func (o *Occupancy) Place(local []core.Cell, anchor core.Cell, owner int) {
	for _, c := range local {
		world := c.AddCell(anchor)
		if prev, taken := o.cells[world]; taken {
			panic("spatial: cell " + world.String() + " already owned by " + strconv.Itoa(prev))
		}
		o.cells[world] = owner
	}
}

// Claim marks a single world cell for the owner. Used by the hallway
// pathfinder for corridor cells.
func (o *Occupancy) Claim(c core.Cell, owner int) {
	o.cells[c] = owner
}

// Len returns the number of occupied cells.
func (o *Occupancy) Len() int {
	return len(o.cells)
}

// Cells returns a copy of the occupied-cell set for read-only consumers.
func (o *Occupancy) Cells() map[core.Cell]int {
	out := make(map[core.Cell]int, len(o.cells))
	for c, id := range o.cells {
		out[c] = id
	}
	return out
}
