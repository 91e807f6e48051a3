package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"regionmap/internal/region"
)

const sidebarWidth = 28

// mapArea mirrors the layout of View: origin and size of the map in cells.
func (m Model) mapArea() (x, y, w, h int) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)
	mapWidth := contentWidth - sw
	if mapWidth < 10 {
		mapWidth = 10
	}
	return sw, headerHeight, mapWidth, contentHeight
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, _, _, h := m.mapArea()
		m.l.SetSize(sidebarWidth-2, h-2)
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.showTable {
			switch msg.String() {
			case "esc", "a":
				m.showTable = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			_, _, _, h := m.mapArea()
			m.l.SetSize(sidebarWidth-2, h-2)
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showTable = true
			m.refreshTable()
		case "d":
			m.status = m.diagnosticsStatus()
		case "up":
			if !m.showSidebar {
				m.offsetY -= 1
			}
		case "down":
			if !m.showSidebar {
				m.offsetY += 1
			}
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		if !m.showTable {
			m = m.trackPointer(msg)
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// trackPointer hit-tests the mouse position and fires leave/enter on the
// shapes it crossed.
func (m Model) trackPointer(msg tea.MouseMsg) Model {
	if m.canvas == nil {
		return m
	}
	ox, oy, w, h := m.mapArea()
	cx, cy := msg.X-ox, msg.Y-oy
	var hit *shape
	ev := &region.PointerEvent{Native: msg}
	if cx >= 0 && cx < w && cy >= 0 && cy < h {
		p := m.viewport(w, h).fromCell(cx, cy)
		ev.X, ev.Y = p.X, p.Y
		m.hoverHasXY = true
		m.hoverX, m.hoverY = p.X, p.Y
		hit = m.canvas.hitTest(p)
	} else {
		m.hoverHasXY = false
	}
	if hit == m.hovered {
		return m
	}
	if m.hovered != nil {
		m.hovered.fireLeave(ev)
	}
	m.hovered = hit
	if hit != nil {
		hit.fireEnter(ev)
	}
	m.afterHover()
	return m
}

func (m *Model) afterHover() {
	if m.session == nil {
		return
	}
	if cur := m.session.Current(); cur != nil {
		m.status = m.session.Status()
		m.selectRegion(cur.Region())
	} else {
		m.status = ""
	}
	if m.showTable {
		m.refreshTable()
	}
}

func (m Model) diagnosticsStatus() string {
	diags := m.renderer.Diagnostics()
	if len(diags) == 0 {
		return "no draw errors"
	}
	return fmt.Sprintf("%d outlines skipped, first: %v", len(diags), diags[0])
}
