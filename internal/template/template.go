// Package template defines immutable room footprints and the weighted pools
// the spatial solver draws them from.
package template

import (
	"errors"
	"fmt"
	"sort"

	"github.com/floorforge/floorforge/internal/core"
)

var (
	// ErrNoOrigin is returned when a template footprint does not include (0,0).
	ErrNoOrigin = errors.New("template: footprint must contain the origin")
	// ErrBadWeight is returned when a template weight is not positive.
	ErrBadWeight = errors.New("template: weight must be > 0")
	// ErrDoorOutsideFootprint is returned when a door cell is not part of the footprint.
	ErrDoorOutsideFootprint = errors.New("template: door cell outside footprint")
)

// Template is an immutable named room shape: a set of local cells (always
// including the origin), a mapping from local cell to the edges a door may
// open through, a selection weight, and the room types it may represent.
// Templates are shared by reference across many placed rooms and never
// mutated after construction.
type Template struct {
	ID    string
	Cells []core.Cell
	Doors map[core.Cell]core.Edge
	// Weight biases random selection within a pool. Must be positive.
	Weight int
	// RoomTypes lists the types this template may represent.
	// Empty means any type.
	RoomTypes []core.RoomType
	// MinDifficulty and MaxDifficulty bound the normalized room difficulty
	// this template is eligible for. The zero band (0, 0) means unbounded.
	MinDifficulty float64
	MaxDifficulty float64
}

// DoorSlot is one door-eligible (local cell, edge) pair.
type DoorSlot struct {
	Cell core.Cell
	Edge core.Edge
}

// New constructs a validated template.
func New(id string, cells []core.Cell, doors map[core.Cell]core.Edge, weight int, types ...core.RoomType) (*Template, error) {
	t := &Template{
		ID:        id,
		Cells:     cells,
		Doors:     doors,
		Weight:    weight,
		RoomTypes: types,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the structural invariants of the template.
func (t *Template) Validate() error {
	if t.Weight <= 0 {
		return fmt.Errorf("%w (template %s: weight %d)", ErrBadWeight, t.ID, t.Weight)
	}
	hasOrigin := false
	set := make(map[core.Cell]bool, len(t.Cells))
	for _, c := range t.Cells {
		set[c] = true
		if c.X == 0 && c.Y == 0 {
			hasOrigin = true
		}
	}
	if !hasOrigin {
		return fmt.Errorf("%w (template %s)", ErrNoOrigin, t.ID)
	}
	for c := range t.Doors {
		if !set[c] {
			return fmt.Errorf("%w (template %s: cell %v)", ErrDoorOutsideFootprint, t.ID, c)
		}
	}
	return nil
}

// Bounds returns the bounding rectangle of the footprint in local space.
func (t *Template) Bounds() core.Rect {
	return core.BoundsOf(t.Cells)
}

// CellSet returns the footprint as a set keyed by local cell.
func (t *Template) CellSet() map[core.Cell]bool {
	set := make(map[core.Cell]bool, len(t.Cells))
	for _, c := range t.Cells {
		set[c] = true
	}
	return set
}

// DoorSlots returns every door-eligible (cell, edge) pair in a deterministic
// order: cells sorted by (Y, X), edges in fixed N, S, E, W order. Only edges
// that actually face empty space are included; an interior cell declared with
// EdgeAll contributes nothing.
func (t *Template) DoorSlots() []DoorSlot {
	set := t.CellSet()
	cells := make([]core.Cell, 0, len(t.Doors))
	for c := range t.Doors {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})

	slots := make([]DoorSlot, 0, len(cells))
	for _, c := range cells {
		for _, e := range t.Doors[c].Sides() {
			if set[c.Step(e)] {
				continue // edge faces another footprint cell, not a wall
			}
			slots = append(slots, DoorSlot{Cell: c, Edge: e})
		}
	}
	return slots
}

// AllowsType reports whether this template may represent the given room type.
func (t *Template) AllowsType(rt core.RoomType) bool {
	if len(t.RoomTypes) == 0 {
		return true
	}
	for _, allowed := range t.RoomTypes {
		if allowed == rt {
			return true
		}
	}
	return false
}

// AllowsDifficulty reports whether a normalized difficulty value falls inside
// this template's band. The zero band accepts everything.
func (t *Template) AllowsDifficulty(d float64) bool {
	if t.MinDifficulty == 0 && t.MaxDifficulty == 0 {
		return true
	}
	return d >= t.MinDifficulty && d <= t.MaxDifficulty
}

// RectCells returns the cells of a w×h rectangle anchored at the origin.
// Helper for building simple rectangular templates.
func RectCells(w, h int) []core.Cell {
	cells := make([]core.Cell, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells = append(cells, core.C(x, y))
		}
	}
	return cells
}

// PerimeterDoors marks every outer cell of a w×h rectangle door-eligible on
// its outward-facing edges.
func PerimeterDoors(w, h int) map[core.Cell]core.Edge {
	doors := make(map[core.Cell]core.Edge)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var e core.Edge
			if y == 0 {
				e |= core.North
			}
			if y == h-1 {
				e |= core.South
			}
			if x == 0 {
				e |= core.West
			}
			if x == w-1 {
				e |= core.East
			}
			if e != core.EdgeNone {
				doors[core.C(x, y)] = e
			}
		}
	}
	return doors
}
