package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"

	"regionmap/internal/region"
)

type regionItem struct {
	reg *region.Region
}

func (i regionItem) Title() string {
	if i.reg.Name != "" {
		return i.reg.Name
	}
	return i.reg.ID
}

func (i regionItem) Description() string {
	return fmt.Sprintf("%s  %d outlines", i.reg.ID, len(i.reg.Paths)+len(i.reg.Polygons))
}

func (i regionItem) FilterValue() string { return i.reg.ID + " " + i.reg.Name }

func regionItems(r *region.Renderer) []list.Item {
	regs := r.Regions()
	items := make([]list.Item, 0, len(regs))
	for _, reg := range regs {
		items = append(items, regionItem{reg: reg})
	}
	return items
}

func regionColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "id", Width: 12},
		{Title: "name", Width: 24},
		{Title: "paths", Width: 6},
		{Title: "polygons", Width: 9},
		{Title: "state", Width: 12},
	}
}

// refreshTable rebuilds rows so the state column follows hover changes.
func (m *Model) refreshTable() {
	regs := m.renderer.Regions()
	rows := make([]table.Row, 0, len(regs))
	for i, reg := range regs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			reg.ID,
			reg.Name,
			fmt.Sprintf("%d", len(reg.Paths)),
			fmt.Sprintf("%d", len(reg.Polygons)),
			reg.State().String(),
		})
	}
	m.tbl.SetRows(rows)
}

// selectRegion moves the sidebar cursor onto reg.
func (m *Model) selectRegion(reg *region.Region) {
	for i, it := range m.l.Items() {
		if ri, ok := it.(regionItem); ok && ri.reg == reg {
			m.l.Select(i)
			return
		}
	}
}
