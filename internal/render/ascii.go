package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/floorforge/floorforge/internal/core"
	"github.com/floorforge/floorforge/internal/dungeon"
)

// Glyphs per room type. Standard rooms render as floor dots so special
// rooms stand out.
var typeGlyphs = map[core.RoomType]rune{
	core.RoomSpawn:    'S',
	core.RoomBoss:     'B',
	core.RoomStandard: '.',
	core.RoomTreasure: 'T',
	core.RoomShop:     '$',
	core.RoomAltar:    'A',
	core.RoomGuard:    'G',
	core.RoomSecret:   '?',
}

const (
	hallwayGlyph = '░'
	doorGlyph    = '+'

	styleHallway = "hallway"
	styleDoor    = "door"
)

// Draw renders a generated floor into a canvas. Hallways are drawn first,
// then room footprints, then door markers on top.
func Draw(floor *dungeon.Floor) *Canvas {
	cells := floor.Occupied.Cells()
	world := make([]core.Cell, 0, len(cells))
	for c := range cells {
		world = append(world, c)
	}
	canvas := NewCanvas(core.BoundsOf(world))

	for _, h := range floor.Hallways {
		for _, c := range h.Cells() {
			canvas.Set(c, Tile{Rune: hallwayGlyph, Style: styleHallway})
		}
	}

	for _, room := range floor.Rooms {
		glyph, ok := typeGlyphs[room.Type]
		if !ok {
			glyph = '.'
		}
		for _, c := range room.WorldCells() {
			canvas.Set(c, Tile{Rune: glyph, Style: string(room.Type)})
		}
	}

	for _, pair := range floor.Doors {
		canvas.Set(pair.A.Cell, Tile{Rune: doorGlyph, Style: styleDoor})
		canvas.Set(pair.B.Cell, Tile{Rune: doorGlyph, Style: styleDoor})
	}

	return canvas
}

// Legend returns a one-line glyph key for the floor map.
func Legend() string {
	types := make([]core.RoomType, 0, len(typeGlyphs))
	for rt := range typeGlyphs {
		types = append(types, rt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	parts := make([]string, 0, len(types)+2)
	for _, rt := range types {
		parts = append(parts, fmt.Sprintf("%c %s", typeGlyphs[rt], rt))
	}
	parts = append(parts, fmt.Sprintf("%c hallway", hallwayGlyph))
	parts = append(parts, fmt.Sprintf("%c door", doorGlyph))
	return strings.Join(parts, "  ")
}
