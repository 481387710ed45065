package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/floorforge/floorforge/internal/storage"
)

// Browser layout constants
const (
	minWidthForPreview = 80  // Minimum width to show the layout preview pane
	tableWidth         = 52  // Width of the floors table
	maxFloors          = 100 // Max floors to load
)

// topologyFilters are the selectable topology tabs. Empty string means all.
var topologyFilters = []string{"", "spanning-tree", "grid", "cellular", "maze", "hub-spoke"}

// BrowserKeyMap defines the key bindings for the floors browser.
type BrowserKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Delete     key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Delete, k.Back, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next topology"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev topology"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete floor"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for browsing saved floors.
type BrowserModel struct {
	store       *storage.Store
	filter      int // Index into topologyFilters
	floors      []storage.FloorEntry
	table       table.Model
	help        help.Model
	keys        BrowserKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showPreview bool
}

// NewBrowserModel creates a new floors browser model.
func NewBrowserModel(store *storage.Store, width, height int) BrowserModel {
	keys := DefaultBrowserKeyMap()
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showPreview: width >= minWidthForPreview,
	}

	m.table = m.createTable()
	m.loadFloors()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Seed", Width: 12},
		{Title: "Topology", Width: 13},
		{Title: "Rooms", Width: 6},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadFloors loads saved floors for the current topology filter.
func (m *BrowserModel) loadFloors() {
	if m.store == nil {
		m.floors = nil
		m.updateTableRows()
		return
	}

	var (
		floors []storage.FloorEntry
		err    error
	)
	if filter := topologyFilters[m.filter]; filter == "" {
		floors, err = m.store.RecentFloors(maxFloors)
	} else {
		floors, err = m.store.FloorsByTopology(filter, maxFloors)
	}
	if err != nil {
		m.floors = nil
	} else {
		m.floors = floors
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current floors.
func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.floors))
	for i, f := range m.floors {
		rows[i] = table.Row{
			fmt.Sprintf("%d", f.ID),
			fmt.Sprintf("%d", f.Seed),
			f.Topology,
			fmt.Sprintf("%d", f.RoomCount),
			f.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// selected returns the floor under the cursor, or nil.
func (m *BrowserModel) selected() *storage.FloorEntry {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.floors) {
		return nil
	}
	return &m.floors[i]
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(topologyFilters)
			m.loadFloors()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter--
			if m.filter < 0 {
				m.filter = len(topologyFilters) - 1
			}
			m.loadFloors()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if f := m.selected(); f != nil && m.store != nil {
				//nolint:errcheck // Best-effort delete
				m.store.DeleteFloor(f.ID)
				m.loadFloors()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showPreview = m.width >= minWidthForPreview
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "SAVED FLOORS"
	if filter := topologyFilters[m.filter]; filter != "" {
		title = fmt.Sprintf("SAVED FLOORS - %s", filter)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showPreview {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", m.renderPreview()))
	} else {
		b.WriteString(tableRendered)
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderPreview renders the selected floor's saved layout.
func (m BrowserModel) renderPreview() string {
	previewStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	f := m.selected()
	if f == nil {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return previewStyle.Render(emptyStyle.Render("No floor selected."))
	}

	// Clip the stored layout to the available pane
	maxW := m.width - tableWidth - 10
	maxH := m.height - 10
	lines := strings.Split(f.Layout, "\n")
	if len(lines) > maxH && maxH > 0 {
		lines = lines[:maxH]
	}
	for i, line := range lines {
		if runes := []rune(line); len(runes) > maxW && maxW > 0 {
			lines[i] = string(runes[:maxW])
		}
	}

	return previewStyle.Render(strings.Join(lines, "\n"))
}

// renderTableContent renders the table or empty message.
func (m BrowserModel) renderTableContent() string {
	if len(m.floors) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No saved floors.\nGenerate one with `floorforge generate --save`!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back.
func (m BrowserModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers a single line of text within the given width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// RunBrowser runs the saved-floors browser in the local terminal.
// Returns true if user wants to go back, false if quitting.
func RunBrowser(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewBrowserModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(BrowserModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
