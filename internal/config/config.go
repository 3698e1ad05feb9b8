// Package config reads the YAML chart configuration. Every field is optional;
// omitted fields keep the defaults of the census scatter plot.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"smokescatter/internal/chart"
	"smokescatter/internal/dataset"
)

// DefaultDataPath is where the dataset is read from when nothing else is given.
const DefaultDataPath = "assets/data/data.csv"

var ErrUnknownColor = errors.New("config: unknown color")

type Config struct {
	Data    string  `yaml:"data"`
	Columns Columns `yaml:"columns"`
	Canvas  Canvas  `yaml:"canvas"`
	Scale   Scale   `yaml:"scale"`
	Marks   Marks   `yaml:"marks"`
	Labels  Labels  `yaml:"labels"`
	Axes    Axes    `yaml:"axes"`
	Tooltip Tooltip `yaml:"tooltip"`
	Export  Export  `yaml:"export"`
}

type Columns struct {
	Region  string `yaml:"region"`
	Poverty string `yaml:"poverty"`
	Smokes  string `yaml:"smokes"`
}

type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin Margin  `yaml:"margin"`
}

type Scale struct {
	Floor float64 `yaml:"floor"`
	Ticks int     `yaml:"ticks"`
}

type Marks struct {
	Radius  float64 `yaml:"radius"`
	Fill    string  `yaml:"fill"`
	Opacity float64 `yaml:"opacity"`
}

type Labels struct {
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
	Bold  bool    `yaml:"bold"`
}

type Axes struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

type Tooltip struct {
	// Offset is [top, left] in pixels.
	Offset [2]float64 `yaml:"offset"`
}

type Export struct {
	Backend string `yaml:"backend"`
}

func Default() Config {
	return Config{
		Data: DefaultDataPath,
		Columns: Columns{
			Region:  dataset.DefaultColumns.Region,
			Poverty: dataset.DefaultColumns.Poverty,
			Smokes:  dataset.DefaultColumns.Smokes,
		},
		Canvas: Canvas{
			Width:  1000,
			Height: 700,
			Margin: Margin{Top: 20, Right: 40, Bottom: 60, Left: 100},
		},
		Scale:   Scale{Floor: 3, Ticks: 10},
		Marks:   Marks{Radius: 15, Fill: "green", Opacity: 0.6},
		Labels:  Labels{Size: 12, Color: "white", Bold: true},
		Axes:    Axes{X: "Poverty %", Y: "# of smokes"},
		Tooltip: Tooltip{Offset: [2]float64{80, -60}},
		Export:  Export{Backend: string(chart.BackendGonum)},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Canvas.Width-c.Canvas.Margin.Left-c.Canvas.Margin.Right <= 0 {
		errs = append(errs, errors.New("config: canvas width leaves no room inside the margins"))
	}
	if c.Canvas.Height-c.Canvas.Margin.Top-c.Canvas.Margin.Bottom <= 0 {
		errs = append(errs, errors.New("config: canvas height leaves no room inside the margins"))
	}
	if c.Marks.Radius < 0 {
		errs = append(errs, fmt.Errorf("config: negative mark radius %v", c.Marks.Radius))
	}
	if c.Marks.Opacity < 0 || c.Marks.Opacity > 1 {
		errs = append(errs, fmt.Errorf("config: opacity %v outside [0, 1]", c.Marks.Opacity))
	}
	if c.Labels.Size <= 0 {
		errs = append(errs, fmt.Errorf("config: label size %v must be positive", c.Labels.Size))
	}
	if c.Data == "" {
		errs = append(errs, errors.New("config: empty data path"))
	}
	if _, err := chart.ParseBackend(c.Export.Backend); err != nil {
		errs = append(errs, err)
	}
	for _, s := range []string{c.Marks.Fill, c.Labels.Color} {
		if _, err := ParseColor(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c Config) DatasetColumns() dataset.Columns {
	return dataset.Columns{Region: c.Columns.Region, Poverty: c.Columns.Poverty, Smokes: c.Columns.Smokes}
}

// ChartOptions converts the config into chart layout options.
func (c Config) ChartOptions() (chart.Options, error) {
	fill, err := ParseColor(c.Marks.Fill)
	if err != nil {
		return chart.Options{}, err
	}
	label, err := ParseColor(c.Labels.Color)
	if err != nil {
		return chart.Options{}, err
	}
	m := c.Canvas.Margin
	return chart.Options{
		Geometry: chart.Geometry{
			Width:  c.Canvas.Width,
			Height: c.Canvas.Height,
			Margin: chart.Margin{Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left},
		},
		Floor:     c.Scale.Floor,
		TickCount: c.Scale.Ticks,
		Style: chart.Style{
			Radius:     c.Marks.Radius,
			Fill:       fill,
			Opacity:    c.Marks.Opacity,
			LabelSize:  c.Labels.Size,
			LabelColor: label,
			LabelBold:  c.Labels.Bold,
		},
		XLabel:        c.Axes.X,
		YLabel:        c.Axes.Y,
		TooltipOffset: c.Tooltip.Offset,
	}, nil
}

// ParseColor accepts an SVG/CSS colour keyword or a #rgb / #rrggbb hex value.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		if cf, err := colorful.Hex(s); err == nil {
			r, g, b := cf.RGB255()
			return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
