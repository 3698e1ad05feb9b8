package chart

import (
	"image/color"

	"smokescatter/internal/scale"
)

// Margin is the space between the outer canvas edge and the plot area, in pixels.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Geometry holds the fixed outer size of the chart and its margins.
type Geometry struct {
	Width  float64
	Height float64
	Margin Margin
}

func (g Geometry) InnerWidth() float64  { return g.Width - g.Margin.Left - g.Margin.Right }
func (g Geometry) InnerHeight() float64 { return g.Height - g.Margin.Top - g.Margin.Bottom }

// Style describes how every mark and label is painted. Nothing is data driven.
type Style struct {
	Radius     float64
	Fill       color.RGBA // opaque; Opacity is applied separately
	Opacity    float64
	LabelSize  float64
	LabelColor color.RGBA
	LabelBold  bool
}

// Translucent returns the fill with Opacity applied as alpha.
func (s Style) Translucent() color.NRGBA {
	a := s.Opacity
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{R: s.Fill.R, G: s.Fill.G, B: s.Fill.B, A: uint8(a*255 + 0.5)}
}

type Options struct {
	Geometry Geometry
	// Floor is the start of both scale domains. It is not the data minimum.
	Floor     float64
	TickCount int
	Style     Style
	XLabel    string
	YLabel    string
	// TooltipOffset shifts the tooltip from its north placement, as [top, left].
	TooltipOffset [2]float64
}

// DefaultOptions reproduces the layout of the census scatter plot.
func DefaultOptions() Options {
	return Options{
		Geometry: Geometry{
			Width:  1000,
			Height: 700,
			Margin: Margin{Top: 20, Right: 40, Bottom: 60, Left: 100},
		},
		Floor:     3,
		TickCount: scale.DefaultTickCount,
		Style: Style{
			Radius:     15,
			Fill:       color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff},
			Opacity:    0.6,
			LabelSize:  12,
			LabelColor: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
			LabelBold:  true,
		},
		XLabel:        "Poverty %",
		YLabel:        "# of smokes",
		TooltipOffset: [2]float64{80, -60},
	}
}
