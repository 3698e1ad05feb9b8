package tui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	hoverFg   = lipgloss.Color("#FFA500")
	borderCol = lipgloss.Color("#243141")

	// canvasBg is what translucent marks are blended against.
	canvasBg = "#0B0F14"

	appStyle     = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(baseDimFg)
	axisStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	tickStyle    = lipgloss.NewStyle().Foreground(baseFg)
	tooltipStyle = lipgloss.NewStyle().Foreground(baseFg).Background(lipgloss.Color("#0F141A"))
	hoverStyle   = lipgloss.NewStyle().Foreground(hoverFg)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

// blendHex composites c at opacity over the background colour bg.
func blendHex(c color.RGBA, opacity float64, bg string) string {
	fc, ok := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	if !ok {
		return bg
	}
	bc, err := colorful.Hex(bg)
	if err != nil {
		return fc.Hex()
	}
	return bc.BlendRgb(fc, opacity).Clamped().Hex()
}

func hexOf(c color.RGBA) string {
	fc, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	return fc.Hex()
}
