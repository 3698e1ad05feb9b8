package chart

import (
	"fmt"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/svg"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// axisTicker hands the precomputed axis ticks to gonum in place of its own.
type axisTicker []Tick

func (t axisTicker) Ticks(min, max float64) []plot.Tick {
	out := make([]plot.Tick, 0, len(t))
	for _, tk := range t {
		out = append(out, plot.Tick{Value: tk.Value, Label: tk.Text})
	}
	return out
}

// Plot builds a gonum plot of the chart. Pixels are treated as points.
func (c *Chart) Plot() (*plot.Plot, error) {
	st := c.Opts.Style
	p := plot.New()
	p.X.Label.Text = c.XAxis.Label
	p.Y.Label.Text = c.YAxis.Label
	p.X.Tick.Marker = axisTicker(c.XAxis.Ticks)
	p.Y.Tick.Marker = axisTicker(c.YAxis.Ticks)

	xys := make(plotter.XYs, len(c.Marks))
	names := make([]string, len(c.Marks))
	for i, m := range c.Marks {
		xys[i] = plotter.XY{X: m.Record.Poverty, Y: m.Record.Smokes}
		names[i] = m.Record.Abbr
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	sc.GlyphStyle = draw.GlyphStyle{
		Color:  st.Translucent(),
		Radius: vg.Length(st.Radius),
		Shape:  draw.CircleGlyph{},
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	for i := range labels.TextStyle {
		ts := &labels.TextStyle[i]
		ts.Color = st.LabelColor
		ts.Font.Size = vg.Length(st.LabelSize)
		if st.LabelBold {
			ts.Font.Weight = xfont.WeightBold
		}
		ts.XAlign = draw.XCenter
		ts.YAlign = draw.YCenter
	}
	p.Add(sc, labels)

	// Add widens the axes to the data; pin them back to the scale domains.
	p.X.Min, p.X.Max = c.X.Domain()
	p.Y.Min, p.Y.Max = c.Y.Domain()
	return p, nil
}

func (c *Chart) size() (vg.Length, vg.Length) {
	g := c.Opts.Geometry
	return vg.Length(g.Width), vg.Length(g.Height)
}

// crop applies the chart margins to a full-size drawing canvas.
func (c *Chart) crop(dc draw.Canvas) draw.Canvas {
	m := c.Opts.Geometry.Margin
	return draw.Crop(dc, vg.Length(m.Left), -vg.Length(m.Right), vg.Length(m.Bottom), -vg.Length(m.Top))
}

// WriteSVG draws the gonum plot onto a tdewolff canvas and writes it as SVG.
func (c *Chart) WriteSVG(w io.Writer) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	width, height := c.size()
	cv := canvas.New(float64(width/vg.Millimeter), float64(height/vg.Millimeter))
	p.Draw(c.crop(renderers.NewGonumPlot(cv)))
	return svg.Writer(w, cv)
}

// WriteGonum writes the plot with one of gonum's own vg backends
// (png, pdf, eps, jpg, tif, svg).
func (c *Chart) WriteGonum(w io.Writer, format string) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	width, height := c.size()
	cw, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}
	p.Draw(c.crop(draw.New(cw)))
	_, err = cw.WriteTo(w)
	return err
}
