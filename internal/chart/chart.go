// Package chart lays out the poverty/smokers scatter plot: two linear scales,
// two axes, one mark per record and the tooltip attached to each mark.
// A Chart is built once and never changes afterwards.
package chart

import (
	"strconv"

	"smokescatter/internal/dataset"
	"smokescatter/internal/scale"
)

// Tick is one labelled axis position.
type Tick struct {
	Value float64
	Pos   float64 // along the axis, in plot-area pixels
	Text  string
}

// Axis is an axis title with its ticks.
type Axis struct {
	Label string
	Ticks []Tick
}

// Mark is a record placed at its plot-area pixel centre.
type Mark struct {
	Record dataset.Record
	CX     float64
	CY     float64
}

// Chart is a built scatter plot; it is read-only once Build returns.
type Chart struct {
	Opts  Options
	X     scale.Linear
	Y     scale.Linear
	XAxis Axis
	YAxis Axis
	Marks []Mark
}

// Build derives the scales from the full record set and places every mark.
// Both domains run from opts.Floor to the field maximum.
func Build(records []dataset.Record, opts Options) *Chart {
	g := opts.Geometry
	xMax, ok := scale.MaxOf(records, func(r dataset.Record) float64 { return r.Poverty })
	if !ok {
		xMax = opts.Floor
	}
	yMax, ok := scale.MaxOf(records, func(r dataset.Record) float64 { return r.Smokes })
	if !ok {
		yMax = opts.Floor
	}
	c := &Chart{
		Opts: opts,
		X:    scale.NewLinear(opts.Floor, xMax, 0, g.InnerWidth()),
		Y:    scale.NewLinear(opts.Floor, yMax, g.InnerHeight(), 0),
	}
	c.XAxis = buildAxis(c.X, opts.XLabel, opts.TickCount)
	c.YAxis = buildAxis(c.Y, opts.YLabel, opts.TickCount)
	c.Marks = make([]Mark, len(records))
	for i, r := range records {
		c.Marks[i] = Mark{Record: r, CX: c.X.Map(r.Poverty), CY: c.Y.Map(r.Smokes)}
	}
	return c
}

func buildAxis(s scale.Linear, label string, count int) Axis {
	if count <= 0 {
		count = scale.DefaultTickCount
	}
	format := s.TickFormat(count)
	values := s.Ticks(count)
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Value: v, Pos: s.Map(v), Text: format(v)}
	}
	return Axis{Label: label, Ticks: ticks}
}

// Abs converts plot-area coordinates to outer canvas coordinates.
func (c *Chart) Abs(x, y float64) (float64, float64) {
	m := c.Opts.Geometry.Margin
	return x + m.Left, y + m.Top
}

// HitTest returns the topmost mark whose circle, widened by slackX and slackY,
// contains the canvas point (px, py). Later marks paint over earlier ones.
func (c *Chart) HitTest(px, py, slackX, slackY float64) (int, bool) {
	r := c.Opts.Style.Radius
	rx, ry := r+slackX, r+slackY
	if rx <= 0 || ry <= 0 {
		return -1, false
	}
	for i := len(c.Marks) - 1; i >= 0; i-- {
		ax, ay := c.Abs(c.Marks[i].CX, c.Marks[i].CY)
		dx := (px - ax) / rx
		dy := (py - ay) / ry
		if dx*dx+dy*dy <= 1 {
			return i, true
		}
	}
	return -1, false
}

// TooltipLines is the tooltip body for mark i.
func (c *Chart) TooltipLines(i int) []string {
	r := c.Marks[i].Record
	return []string{
		r.Abbr,
		"Poverty: " + formatValue(r.Poverty),
		"Smokers: " + formatValue(r.Smokes),
	}
}

// TooltipOrigin returns the canvas position of the top-left corner of a w×h
// tooltip for mark i: centred above the mark, then moved by TooltipOffset.
func (c *Chart) TooltipOrigin(i int, w, h float64) (float64, float64) {
	ax, ay := c.Abs(c.Marks[i].CX, c.Marks[i].CY)
	off := c.Opts.TooltipOffset
	x := ax - w/2 + off[1]
	y := ay - c.Opts.Style.Radius - h + off[0]
	return x, y
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
