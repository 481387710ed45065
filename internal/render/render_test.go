package render

import (
	"strings"
	"testing"

	"github.com/floorforge/floorforge/internal/core"
	"github.com/floorforge/floorforge/internal/dungeon"
	"github.com/floorforge/floorforge/internal/graph"
)

func testFloor(t *testing.T, seed uint64) *dungeon.Floor {
	t.Helper()
	floor, err := dungeon.Generate(dungeon.FloorConfig{
		Seed:            seed,
		RoomCount:       8,
		BranchingFactor: 0.1,
		Topology:        graph.Config{Kind: graph.KindSpanningTree},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return floor
}

func TestDrawContainsSpawnAndBoss(t *testing.T) {
	canvas := Draw(testFloor(t, 3))
	out := canvas.String()
	if !strings.ContainsRune(out, 'S') {
		t.Error("rendered map has no spawn glyph")
	}
	if !strings.ContainsRune(out, 'B') {
		t.Error("rendered map has no boss glyph")
	}
}

func TestDrawCoversAllRoomCells(t *testing.T) {
	floor := testFloor(t, 4)
	canvas := Draw(floor)
	for _, room := range floor.Rooms {
		for _, c := range room.WorldCells() {
			if canvas.Get(c).Rune == ' ' {
				t.Fatalf("room %d cell %v rendered blank", room.NodeID, c)
			}
		}
	}
}

func TestCanvasOutOfBounds(t *testing.T) {
	canvas := NewCanvas(core.NewRect(0, 0, 3, 3))
	canvas.Set(core.C(100, 100), Tile{Rune: 'x'})
	if got := canvas.Get(core.C(100, 100)); got.Rune != ' ' {
		t.Errorf("out-of-bounds Get = %q, want blank", got.Rune)
	}
}

func TestCanvasRowLengths(t *testing.T) {
	canvas := Draw(testFloor(t, 5))
	rows := strings.Split(canvas.String(), "\n")
	if len(rows) != canvas.Height() {
		t.Fatalf("rows = %d, want %d", len(rows), canvas.Height())
	}
	for i, row := range rows {
		if len([]rune(row)) != canvas.Width() {
			t.Errorf("row %d length = %d, want %d", i, len([]rune(row)), canvas.Width())
		}
	}
}

func TestStyledPreservesGlyphs(t *testing.T) {
	canvas := Draw(testFloor(t, 6))
	styled := canvas.Styled()
	if !strings.Contains(styled, "S") {
		t.Error("styled output lost the spawn glyph")
	}
}

func TestLegend(t *testing.T) {
	legend := Legend()
	for _, want := range []string{"spawn", "boss", "hallway", "door"} {
		if !strings.Contains(legend, want) {
			t.Errorf("legend missing %q", want)
		}
	}
}
