package spatial

import "github.com/floorforge/floorforge/internal/core"

// Door is one side of a connection between two rooms: the world cell the
// door sits in, the edge it opens through, and the room it belongs to.
// Every connection gets two doors, whether or not a hallway lies between
// them.
type Door struct {
	Cell   core.Cell
	Edge   core.Edge
	NodeID int
}

// DoorPair joins the two doors of one connection, keyed by its arena index.
type DoorPair struct {
	ConnIndex int
	A, B      Door
}

// Doors returns the room's door-eligible slots in world space. The hallway
// pathfinder draws its endpoint candidates from this list.
func (r *PlacedRoom) Doors() []Door {
	return worldDoorSlots(r)
}

// worldDoorSlots returns a placed room's door slots translated to world
// space, in the template's deterministic slot order.
func worldDoorSlots(r *PlacedRoom) []Door {
	slots := r.Template.DoorSlots()
	out := make([]Door, 0, len(slots))
	for _, s := range slots {
		out = append(out, Door{
			Cell:   s.Cell.AddCell(r.Anchor),
			Edge:   s.Edge,
			NodeID: r.NodeID,
		})
	}
	return out
}

// touchingDoors finds the first pair of opposite-edge door slots whose world
// cells are orthogonally adjacent between two placed rooms. ok is false when
// the rooms do not touch door-to-door.
func touchingDoors(a, b *PlacedRoom) (Door, Door, bool) {
	bSlots := make(map[core.Cell]core.Edge)
	for _, d := range worldDoorSlots(b) {
		bSlots[d.Cell] |= d.Edge
	}
	for _, da := range worldDoorSlots(a) {
		facing := da.Cell.Step(da.Edge)
		if bSlots[facing].Has(da.Edge.Opposite()) {
			db := Door{Cell: facing, Edge: da.Edge.Opposite(), NodeID: b.NodeID}
			return da, db, true
		}
	}
	return Door{}, Door{}, false
}
