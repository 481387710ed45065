// Package render draws generated floors into a 2D character buffer and
// converts the buffer to plain or ANSI-styled strings for display.
package render

import (
	"strings"

	"github.com/floorforge/floorforge/internal/core"
)

// Tile is one canvas cell: a glyph plus a style key for coloring.
type Tile struct {
	Rune  rune
	Style string
}

// Canvas is a 2D tile buffer. It decouples floor drawing from the terminal:
// drawing code works in world coordinates while the canvas handles offsets
// and bounds.
type Canvas struct {
	width  int
	height int
	// offset translates world coordinates into buffer coordinates so that
	// negative world positions land inside the buffer.
	offset core.Cell
	tiles  [][]Tile
}

// NewCanvas creates a canvas covering the given world-space bounds plus a
// one-tile margin on every side.
func NewCanvas(bounds core.Rect) *Canvas {
	b := bounds.Expand(1)
	c := &Canvas{
		width:  b.W,
		height: b.H,
		offset: core.C(-b.X, -b.Y),
	}
	c.tiles = make([][]Tile, c.height)
	for y := range c.tiles {
		c.tiles[y] = make([]Tile, c.width)
		for x := range c.tiles[y] {
			c.tiles[y][x] = Tile{Rune: ' '}
		}
	}
	return c
}

// Width returns the canvas width in tiles.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in tiles.
func (c *Canvas) Height() int {
	return c.height
}

// Set places a tile at the given world position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(pos core.Cell, t Tile) {
	x, y := pos.X+c.offset.X, pos.Y+c.offset.Y
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.tiles[y][x] = t
}

// Get returns the tile at the given world position.
// Returns a blank tile for out-of-bounds coordinates.
func (c *Canvas) Get(pos core.Cell) Tile {
	x, y := pos.X+c.offset.X, pos.Y+c.offset.Y
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Tile{Rune: ' '}
	}
	return c.tiles[y][x]
}

// Crop returns a view of the canvas starting at buffer position (x, y) with
// at most w×h tiles. Out-of-range regions are filled with blanks, so the
// result always has the requested dimensions when w and h are positive.
func (c *Canvas) Crop(x, y, w, h int) *Canvas {
	out := &Canvas{width: w, height: h}
	out.tiles = make([][]Tile, h)
	for oy := range out.tiles {
		out.tiles[oy] = make([]Tile, w)
		for ox := range out.tiles[oy] {
			sx, sy := x+ox, y+oy
			if sx < 0 || sx >= c.width || sy < 0 || sy >= c.height {
				out.tiles[oy][ox] = Tile{Rune: ' '}
			} else {
				out.tiles[oy][ox] = c.tiles[sy][sx]
			}
		}
	}
	return out
}

// String converts the canvas to a plain string without styling.
// Each row is joined with newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height) // Pre-allocate for efficiency

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.tiles[y][x].Rune)
		}
	}
	return sb.String()
}
