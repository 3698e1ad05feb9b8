package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshTable fills the record table from the rendered chart, in mark order.
func (m *Model) refreshTable() {
	if m.chart == nil {
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "abbr", Width: 6},
		{Title: "poverty", Width: 9},
		{Title: "smokes", Width: 9},
	}
	rows := make([]table.Row, 0, len(m.chart.Marks))
	for i, mk := range m.chart.Marks {
		r := mk.Record
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			r.Abbr,
			strconv.FormatFloat(r.Poverty, 'f', -1, 64),
			strconv.FormatFloat(r.Smokes, 'f', -1, 64),
		})
	}
	// clear rows first so the column count never disagrees with the rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
