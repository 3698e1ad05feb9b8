package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	_, _, w, h := m.chartArea()

	header := titleStyle.Render(" smokescatter ─ poverty vs. smokers by state ")
	header = lipgloss.NewStyle().Width(w).Render(header)

	var body string
	switch {
	case m.err != nil:
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, errStyle.Render("error: "+m.err.Error()))
	case m.phase != phaseRendered:
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.spin.View()+" loading "+m.source)
	case m.showTable:
		tbl := m.tbl
		colW := 0
		for _, c := range tbl.Columns() {
			colW += c.Width + 2
		}
		maxW := min(w, max(32, colW+4))
		tbl.SetWidth(maxW - 4)
		tbl.SetHeight(max(1, min(h-4, 20)))
		box := boxStyle.Width(maxW).Render(tbl.View())
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
	default:
		body = lipgloss.NewStyle().Width(w).Height(h).Render(m.renderChart(w, h))
	}

	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.pointerIn && m.phase == phaseRendered && !m.showTable {
		coords = dimStyle.Render(fmt.Sprintf("  poverty=%.2f smokes=%.2f  ", m.pointerX, m.pointerY))
	}
	spacer := max(0, w-lipgloss.Width(status)-lipgloss.Width(coords))
	line1 := lipgloss.JoinHorizontal(lipgloss.Bottom, status, lipgloss.NewStyle().Width(spacer).Render(""), coords)
	footer := lipgloss.JoinVertical(lipgloss.Left, line1, m.help.View(keys))
	footer = lipgloss.NewStyle().Width(w).Render(footer)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(w).Height(m.height).Render(ui)
}
