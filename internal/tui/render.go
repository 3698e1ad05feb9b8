package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"smokescatter/internal/chart"
)

// projection maps the fixed-pixel chart canvas onto a w×h cell area through
// the 2x4 braille micro-grid. It never changes the chart's own geometry.
type projection struct {
	w, h     int
	pxW, pxH float64
}

func newProjection(g chart.Geometry, w, h int) projection {
	return projection{w: max(1, w), h: max(1, h), pxW: g.Width, pxH: g.Height}
}

func (p projection) sx() float64 { return float64(2*p.w-1) / p.pxW }
func (p projection) sy() float64 { return float64(4*p.h-1) / p.pxH }

// micro converts canvas pixels to micro-pixel coordinates.
func (p projection) micro(px, py float64) (int, int) {
	return int(math.Round(px * p.sx())), int(math.Round(py * p.sy()))
}

// cell converts canvas pixels to the containing cell.
func (p projection) cell(px, py float64) (int, int) {
	mx, my := p.micro(px, py)
	return floorDiv(mx, 2), floorDiv(my, 4)
}

// canvas returns the canvas pixel at the centre of cell (cx, cy).
func (p projection) canvas(cx, cy int) (float64, float64) {
	return (float64(2*cx) + 0.5) / p.sx(), (float64(4*cy) + 1.5) / p.sy()
}

// cellSize is the canvas extent of one cell, in pixels.
func (p projection) cellSize() (float64, float64) {
	return p.pxW / float64(p.w), p.pxH / float64(p.h)
}

type kind uint8

const (
	kNone kind = iota
	kAxis
	kTick
	kTitle
	kMark
	kHover
	kLabel
	kTooltip
)

type grid struct {
	w, h int
	r    [][]rune
	k    [][]kind
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, r: make([][]rune, h), k: make([][]kind, h)}
	for y := 0; y < h; y++ {
		g.r[y] = []rune(strings.Repeat(" ", w))
		g.k[y] = make([]kind, w)
	}
	return g
}

func (g *grid) set(x, y int, r rune, k kind) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.r[y][x] = r
	g.k[y][x] = k
}

func (g *grid) text(x, y int, s string, k kind) {
	for _, r := range s {
		g.set(x, y, r, k)
		x++
	}
}

// lines renders each row, styling runs of equal kind together.
func (g *grid) lines(styles map[kind]lipgloss.Style) []string {
	out := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		var sb strings.Builder
		start := 0
		for x := 1; x <= g.w; x++ {
			if x < g.w && g.k[y][x] == g.k[y][start] {
				continue
			}
			run := string(g.r[y][start:x])
			if st, ok := styles[g.k[y][start]]; ok {
				run = st.Render(run)
			}
			sb.WriteString(run)
			start = x
		}
		out[y] = sb.String()
	}
	return out
}

// renderChart draws axes, marks, labels and the open tooltip into a w×h area.
func (m Model) renderChart(w, h int) string {
	c := m.chart
	g := newGrid(w, h)
	p := newProjection(c.Opts.Geometry, w, h)

	m.drawAxes(g, p)

	st := c.Opts.Style
	rx, ry := st.Radius*p.sx(), st.Radius*p.sy()
	marks := newBrailleBuf(w, h)
	hover := newBrailleBuf(w, h)
	for i, mk := range c.Marks {
		mx, my := p.micro(c.Abs(mk.CX, mk.CY))
		marks.fillEllipse(mx, my, rx, ry)
		if i == m.hover {
			hover.fillEllipse(mx, my, rx, ry)
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r := hover.glyph(x, y); r != 0 {
				g.set(x, y, r, kHover)
			} else if r := marks.glyph(x, y); r != 0 {
				g.set(x, y, r, kMark)
			}
		}
	}

	for _, mk := range c.Marks {
		cx, cy := p.cell(c.Abs(mk.CX, mk.CY))
		n := utf8.RuneCountInString(mk.Record.Abbr)
		g.text(cx-n/2, cy, mk.Record.Abbr, kLabel)
	}

	if m.tooltip >= 0 && m.tooltip < len(c.Marks) {
		m.drawTooltip(g, p)
	}

	markHex := blendHex(st.Fill, st.Opacity, canvasBg)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(hexOf(st.LabelColor))).Background(lipgloss.Color(markHex))
	if st.LabelBold {
		label = label.Bold(true)
	}
	styles := map[kind]lipgloss.Style{
		kAxis:    axisStyle,
		kTick:    tickStyle,
		kTitle:   tickStyle.Bold(true),
		kMark:    lipgloss.NewStyle().Foreground(lipgloss.Color(markHex)),
		kHover:   hoverStyle,
		kLabel:   label,
		kTooltip: tooltipStyle,
	}
	return strings.Join(g.lines(styles), "\n")
}

func (m Model) drawAxes(g *grid, p projection) {
	c := m.chart
	geo := c.Opts.Geometry
	left, top := c.Abs(0, 0)
	right, bottom := c.Abs(geo.InnerWidth(), geo.InnerHeight())
	colL, rowT := p.cell(left, top)
	colR, rowB := p.cell(right, bottom)

	// titles first so tick labels win where they collide
	tx, _ := p.cell(c.Abs(geo.InnerWidth()/2, 0))
	_, ty := p.cell(0, bottom+geo.Margin.Top)
	ty = clamp(max(ty, rowB+2), 0, g.h-1)
	n := utf8.RuneCountInString(c.XAxis.Label)
	g.text(tx-n/2, ty, c.XAxis.Label, kTitle)

	yl := []rune(c.YAxis.Label)
	vx, vy := p.cell(left-geo.Margin.Left+40, (top+bottom)/2)
	for i, r := range yl {
		g.set(max(0, vx), vy-len(yl)/2+i, r, kTitle)
	}

	for x := colL; x <= colR; x++ {
		g.set(x, rowB, '─', kAxis)
	}
	for y := rowT; y <= rowB; y++ {
		g.set(colL, y, '│', kAxis)
	}
	g.set(colL, rowB, '└', kAxis)

	for _, t := range c.XAxis.Ticks {
		x, _ := p.cell(left+t.Pos, bottom)
		g.set(x, rowB, '┬', kAxis)
		n := utf8.RuneCountInString(t.Text)
		g.text(x-n/2, rowB+1, t.Text, kTick)
	}
	for _, t := range c.YAxis.Ticks {
		_, y := p.cell(left, top+t.Pos)
		g.set(colL, y, '┤', kAxis)
		n := utf8.RuneCountInString(t.Text)
		g.text(colL-1-n, y, t.Text, kTick)
	}
}

func (m Model) drawTooltip(g *grid, p projection) {
	c := m.chart
	lines := c.TooltipLines(m.tooltip)
	inner := 0
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l))
	}
	bw, bh := inner+4, len(lines)+2
	cw, ch := p.cellSize()
	ox, oy := c.TooltipOrigin(m.tooltip, float64(bw)*cw, float64(bh)*ch)
	x0, y0 := p.cell(ox, oy)
	x0 = clamp(x0, 0, g.w-bw)
	y0 = clamp(y0, 0, g.h-bh)

	g.set(x0, y0, '╭', kTooltip)
	g.set(x0+bw-1, y0, '╮', kTooltip)
	g.set(x0, y0+bh-1, '╰', kTooltip)
	g.set(x0+bw-1, y0+bh-1, '╯', kTooltip)
	for x := x0 + 1; x < x0+bw-1; x++ {
		g.set(x, y0, '─', kTooltip)
		g.set(x, y0+bh-1, '─', kTooltip)
	}
	for i, l := range lines {
		y := y0 + 1 + i
		g.set(x0, y, '│', kTooltip)
		g.text(x0+1, y, " "+l+strings.Repeat(" ", inner-utf8.RuneCountInString(l))+" ", kTooltip)
		g.set(x0+bw-1, y, '│', kTooltip)
	}
}

// markCell is the screen cell at the centre of mark i, or false before render.
func (m Model) markCell(i int) (int, int, bool) {
	if m.chart == nil || i < 0 || i >= len(m.chart.Marks) {
		return 0, 0, false
	}
	x0, y0, w, h := m.chartArea()
	p := newProjection(m.chart.Opts.Geometry, w, h)
	mk := m.chart.Marks[i]
	cx, cy := p.cell(m.chart.Abs(mk.CX, mk.CY))
	return x0 + cx, y0 + cy, true
}
