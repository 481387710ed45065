package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/floorforge/floorforge/internal/core"
)

// styleMap maps tile style keys to lipgloss styles.
var styleMap = map[string]lipgloss.Style{
	"":                          lipgloss.NewStyle(),
	string(core.RoomSpawn):      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	string(core.RoomBoss):       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	string(core.RoomStandard):   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	string(core.RoomTreasure):   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	string(core.RoomShop):       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	string(core.RoomAltar):      lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	string(core.RoomGuard):      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	string(core.RoomSecret):     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	styleHallway:                lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	styleDoor:                   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}

// Styled converts the canvas to a styled string for display.
// Groups adjacent tiles with the same style to minimize ANSI escape sequences.
func (c *Canvas) Styled() string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.width*c.height*2 + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive tiles with the same style for efficiency
		x := 0
		for x < c.width {
			startStyle := c.tiles[y][x].Style

			var run strings.Builder
			for x < c.width && c.tiles[y][x].Style == startStyle {
				run.WriteRune(c.tiles[y][x].Rune)
				x++
			}

			style, ok := styleMap[startStyle]
			if !ok {
				style = styleMap[""]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
