package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerHeight = 1
	footerHeight = 2
)

// chartArea is the screen rectangle of the chart (must match View).
func (m Model) chartArea() (x, y, w, h int) {
	w = max(10, m.width)
	h = max(4, m.height-headerHeight-footerHeight)
	return 0, headerHeight, w, h
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case startMsg:
		if m.phase != phaseIdle {
			return m, nil
		}
		m.phase = phaseLoading
		m.status = "loading " + m.source
		log.Printf("loading %s", m.source)
		return m, tea.Batch(m.spin.Tick, m.loadCmd())
	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case loadedMsg:
		m.phase = phaseRendered
		m.chart = msg.chart
		m.refreshTable()
		m.status = fmt.Sprintf("loaded: %s  marks=%d  click a mark for details", m.source, len(m.chart.Marks))
		log.Printf("rendered %d marks from %s", len(m.chart.Marks), m.source)
	case loadFailedMsg:
		m.err = msg.err
		m.status = "load error: " + msg.err.Error()
		log.Printf("load %s: %v", m.source, msg.err)
		return m, tea.Quit
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.Table):
			if m.phase == phaseRendered {
				m.showTable = !m.showTable
				m.tooltip, m.hover = -1, -1
			}
		default:
			if m.showTable {
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}
	case tea.MouseMsg:
		if m.phase == phaseRendered && !m.showTable {
			m = m.pointer(msg)
		}
	}
	return m, nil
}

// pointer tracks the mark under the mouse. A left press on a mark opens its
// tooltip; leaving the hovered mark closes it. Entering a mark does not.
func (m Model) pointer(msg tea.MouseMsg) Model {
	c := m.chart
	x0, y0, w, h := m.chartArea()
	cx, cy := msg.X-x0, msg.Y-y0
	hit := -1
	if cx >= 0 && cx < w && cy >= 0 && cy < h {
		p := newProjection(c.Opts.Geometry, w, h)
		px, py := p.canvas(cx, cy)
		sw, sh := p.cellSize()
		if i, ok := c.HitTest(px, py, sw/2, sh/2); ok {
			hit = i
		}
		left, top := c.Abs(0, 0)
		m.pointerIn = true
		m.pointerX = c.X.Invert(px - left)
		m.pointerY = c.Y.Invert(py - top)
	} else {
		m.pointerIn = false
	}

	if m.hover >= 0 && hit != m.hover && m.tooltip >= 0 {
		m.tooltip = -1
		m.status = "tooltip hidden"
	}
	m.hover = hit

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && hit >= 0 {
		m.tooltip = hit
		m.status = "selected " + c.Marks[hit].Record.Abbr
	}
	return m
}
