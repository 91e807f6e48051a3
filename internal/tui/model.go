// Package tui draws a region map in the terminal and turns mouse motion into
// pointer events on the map's shapes.
package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"regionmap/internal/region"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Data
	renderer *region.Renderer
	canvas   *Canvas
	session  *Session

	// region list
	l list.Model

	// region table
	showTable bool
	tbl       table.Model

	// hover state
	hovered    *shape
	hoverHasXY bool
	hoverX     float64
	hoverY     float64
}

// New builds the program model for a renderer drawn on a terminal Canvas.
// sess may be nil when no hover callbacks report into it.
func New(r *region.Renderer, sess *Session) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "regionmap ready",
		renderer:    r,
		session:     sess,
	}
	m.canvas, _ = r.Surface().(*Canvas)
	if m.canvas == nil {
		m.status = "surface is not a terminal canvas"
	}
	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(regionItems(r), d, 0, 0)
	m.l.Title = "Regions"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// region table setup
	m.tbl = table.New(table.WithFocused(true), table.WithColumns(regionColumns()))
	m.tbl.SetHeight(12)
	m.refreshTable()
	return m
}

func (m Model) Init() tea.Cmd { return nil }
