package tui

import "math"

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
}

// fillEllipse sets every micro-pixel inside the ellipse centred on (mx, my).
// Radii below half a dot still light the centre dot.
func (b *brailleBuf) fillEllipse(mx, my int, rx, ry float64) {
	rx = math.Max(rx, 0.5)
	ry = math.Max(ry, 0.5)
	x0, x1 := int(math.Floor(float64(mx)-rx)), int(math.Ceil(float64(mx)+rx))
	y0, y1 := int(math.Floor(float64(my)-ry)), int(math.Ceil(float64(my)+ry))
	for y := y0; y <= y1; y++ {
		dy := float64(y-my) / ry
		for x := x0; x <= x1; x++ {
			dx := float64(x-mx) / rx
			if dx*dx+dy*dy <= 1 {
				b.setPixel(x, y)
			}
		}
	}
}

// glyph returns the braille glyph for a cell, or 0 when the cell is blank.
func (b *brailleBuf) glyph(cx, cy int) rune {
	mask := b.m[cy][cx]
	if mask == 0 {
		return 0
	}
	return rune(0x2800 + int(mask))
}
