// Package tui provides terminal UI components including SSH server support via Wish.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/floorforge/floorforge/internal/dungeon"
	"github.com/floorforge/floorforge/internal/render"
)

// Pan step in tiles per keypress.
const panStep = 2

// ViewerKeyMap defines the key bindings for the floor viewer.
type ViewerKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	NextSeed   key.Binding
	RandomSeed key.Binding
	Legend     key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.NextSeed, k.RandomSeed, k.Legend, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextSeed, k.RandomSeed, k.Legend, k.Quit},
	}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "pan up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "pan down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "pan left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "pan right"),
		),
		NextSeed: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next seed"),
		),
		RandomSeed: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "random seed"),
		),
		Legend: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "legend"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ViewerModel is the Bubble Tea model for interactively exploring generated
// floors. It regenerates in place when the seed changes and pans a viewport
// over the rendered map.
type ViewerModel struct {
	cfg    dungeon.FloorConfig
	floor  *dungeon.Floor
	canvas *render.Canvas
	genErr error

	camX, camY int
	showLegend bool
	width      int
	height     int

	help     help.Model
	keys     ViewerKeyMap
	quitting bool
}

// NewViewerModel creates a viewer model and generates the initial floor.
func NewViewerModel(cfg dungeon.FloorConfig, width, height int) ViewerModel {
	h := help.New()
	h.ShowAll = false

	m := ViewerModel{
		cfg:    cfg,
		width:  width,
		height: height,
		help:   h,
		keys:   DefaultViewerKeyMap(),
	}
	m.regenerate()
	return m
}

// regenerate rebuilds the floor and canvas for the current config.
func (m *ViewerModel) regenerate() {
	m.camX, m.camY = 0, 0
	m.floor, m.genErr = dungeon.Generate(m.cfg)
	if m.genErr != nil {
		m.canvas = nil
		return
	}
	m.canvas = render.Draw(m.floor)
}

// Init initializes the viewer model.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.camY -= panStep
		case key.Matches(msg, m.keys.Down):
			m.camY += panStep
		case key.Matches(msg, m.keys.Left):
			m.camX -= panStep
		case key.Matches(msg, m.keys.Right):
			m.camX += panStep

		case key.Matches(msg, m.keys.NextSeed):
			m.cfg.Seed++
			m.regenerate()
		case key.Matches(msg, m.keys.RandomSeed):
			m.cfg.Seed = uint64(time.Now().UnixNano())
			m.regenerate()

		case key.Matches(msg, m.keys.Legend):
			m.showLegend = !m.showLegend
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// View renders the viewer.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(m.statusLine()))
	b.WriteString("\n")

	viewH := m.height - 3 // Title, help and a separator line
	if m.showLegend {
		viewH--
	}
	if viewH < 1 {
		viewH = 1
	}

	if m.genErr != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Padding(1, 2)
		b.WriteString(errStyle.Render(fmt.Sprintf("generation failed: %v", m.genErr)))
		b.WriteString(strings.Repeat("\n", viewH-1))
	} else {
		b.WriteString(m.canvas.Crop(m.camX, m.camY, m.width, viewH).Styled())
	}
	b.WriteString("\n")

	if m.showLegend {
		legendStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		b.WriteString(legendStyle.Render(render.Legend()))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statusLine summarizes the current floor.
func (m ViewerModel) statusLine() string {
	if m.genErr != nil {
		return fmt.Sprintf("floorforge  seed=%d  %s", m.cfg.Seed, m.cfg.Topology.Kind)
	}
	return fmt.Sprintf("floorforge  seed=%d  %s  rooms=%d  hallways=%d",
		m.floor.Seed, m.cfg.Topology.Kind, len(m.floor.Rooms), len(m.floor.Hallways))
}

// IsQuitting returns true if the user requested to quit.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// RunViewer runs the interactive floor viewer in the local terminal.
func RunViewer(cfg dungeon.FloorConfig, width, height int) error {
	model := NewViewerModel(cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
