package template

import "github.com/floorforge/floorforge/internal/core"

// Builtin returns the default template pool: a spread of rectangular rooms
// usable by any type, an L-shape and a cross for variety, and a large hall
// reserved for boss rooms.
func Builtin() *Pool {
	return NewPool(
		mustRect("square2", 2, 2, 3),
		mustRect("square3", 3, 3, 4),
		mustRect("square4", 4, 4, 2),
		mustRect("wide3x2", 3, 2, 3),
		mustRect("tall2x4", 2, 4, 2),
		mustL(),
		mustCross(),
		mustBossHall(),
	)
}

func mustRect(id string, w, h, weight int) *Template {
	t, err := New(id, RectCells(w, h), PerimeterDoors(w, h), weight)
	if err != nil {
		panic(err)
	}
	return t
}

// mustL builds an L-shaped footprint:
//
//	##
//	#.
//	##  (3 tall, 2 wide, inner corner open)
func mustL() *Template {
	cells := []core.Cell{
		core.C(0, 0), core.C(1, 0),
		core.C(0, 1),
		core.C(0, 2), core.C(1, 2),
	}
	doors := map[core.Cell]core.Edge{
		core.C(0, 0): core.North | core.West,
		core.C(1, 0): core.North | core.East,
		core.C(0, 1): core.West,
		core.C(0, 2): core.South | core.West,
		core.C(1, 2): core.South | core.East,
	}
	t, err := New("lshape", cells, doors, 2)
	if err != nil {
		panic(err)
	}
	return t
}

// mustCross builds a plus-shaped footprint with one door on each arm tip.
func mustCross() *Template {
	cells := []core.Cell{
		core.C(0, 0),
		core.C(0, -1), core.C(0, 1), core.C(-1, 0), core.C(1, 0),
	}
	doors := map[core.Cell]core.Edge{
		core.C(0, -1): core.North,
		core.C(0, 1):  core.South,
		core.C(1, 0):  core.East,
		core.C(-1, 0): core.West,
	}
	t, err := New("cross", cells, doors, 2)
	if err != nil {
		panic(err)
	}
	return t
}

// mustBossHall builds a 5x5 hall only eligible for boss rooms, biased toward
// the deep end of the floor.
func mustBossHall() *Template {
	t, err := New("bosshall", RectCells(5, 5), PerimeterDoors(5, 5), 5, core.RoomBoss)
	if err != nil {
		panic(err)
	}
	t.MinDifficulty = 0.5
	t.MaxDifficulty = 1.0
	return t
}
