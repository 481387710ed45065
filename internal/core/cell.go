// Package core provides fundamental types and utilities for the floor
// generation pipeline. It contains no external dependencies to keep the
// generation logic pure and testable.
package core

import "fmt"

// Cell represents a 2D grid coordinate.
// X increases to the east, Y increases to the south (screen coordinates).
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// AddCell returns the sum of two cells.
func (c Cell) AddCell(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns the component-wise difference c - other.
func (c Cell) Sub(other Cell) Cell {
	return Cell{X: c.X - other.X, Y: c.Y - other.Y}
}

// Step returns a new Cell one step through the given edge.
func (c Cell) Step(e Edge) Cell {
	dx, dy := e.Delta()
	return c.Add(dx, dy)
}

// Equal returns true if two cells are the same.
func (c Cell) Equal(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

// Manhattan returns the Manhattan distance to another cell.
func (c Cell) Manhattan(other Cell) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Neighbors4 returns the four orthogonally adjacent cells in N, S, E, W order.
func (c Cell) Neighbors4() [4]Cell {
	return [4]Cell{
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
		{X: c.X + 1, Y: c.Y},
		{X: c.X - 1, Y: c.Y},
	}
}
