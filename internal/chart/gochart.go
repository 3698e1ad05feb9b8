package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func goChartTicks(a Axis) []gochart.Tick {
	// go-chart needs two ticks to span an axis; fall back to its own otherwise
	if len(a.Ticks) < 2 {
		return nil
	}
	out := make([]gochart.Tick, len(a.Ticks))
	for i, t := range a.Ticks {
		out[i] = gochart.Tick{Value: t.Value, Label: t.Text}
	}
	return out
}

// WriteGoChart renders the chart with go-chart as png or svg.
func (c *Chart) WriteGoChart(w io.Writer, format string) error {
	st := c.Opts.Style
	g := c.Opts.Geometry
	fill := st.Translucent()
	dot := drawing.Color{R: fill.R, G: fill.G, B: fill.B, A: fill.A}
	text := drawing.Color{R: st.LabelColor.R, G: st.LabelColor.G, B: st.LabelColor.B, A: 0xff}

	xs := make([]float64, len(c.Marks))
	ys := make([]float64, len(c.Marks))
	notes := make([]gochart.Value2, len(c.Marks))
	for i, m := range c.Marks {
		xs[i], ys[i] = m.Record.Poverty, m.Record.Smokes
		notes[i] = gochart.Value2{XValue: xs[i], YValue: ys[i], Label: m.Record.Abbr}
	}
	x0, x1 := c.X.Domain()
	y0, y1 := c.Y.Domain()
	ch := gochart.Chart{
		Width:  int(g.Width),
		Height: int(g.Height),
		Background: gochart.Style{Padding: gochart.Box{
			Top:    int(g.Margin.Top),
			Left:   int(g.Margin.Left),
			Right:  int(g.Margin.Right),
			Bottom: int(g.Margin.Bottom),
		}},
		XAxis: gochart.XAxis{
			Name:  c.XAxis.Label,
			Range: &gochart.ContinuousRange{Min: x0, Max: x1},
			Ticks: goChartTicks(c.XAxis),
		},
		YAxis: gochart.YAxis{
			Name:  c.YAxis.Label,
			Range: &gochart.ContinuousRange{Min: y0, Max: y1},
			Ticks: goChartTicks(c.YAxis),
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "regions",
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeWidth: gochart.Disabled,
					DotWidth:    st.Radius,
					DotColor:    dot,
				},
			},
			gochart.AnnotationSeries{
				Annotations: notes,
				Style: gochart.Style{
					FillColor:   dot,
					StrokeColor: dot,
					FontColor:   text,
					FontSize:    st.LabelSize,
				},
			},
		},
	}
	var rp gochart.RendererProvider
	switch format {
	case "png":
		rp = gochart.PNG
	case "svg":
		rp = gochart.SVG
	default:
		return fmt.Errorf("go-chart: unsupported format %q", format)
	}
	return ch.Render(rp, w)
}
