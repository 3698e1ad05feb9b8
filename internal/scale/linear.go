// Package scale maps numeric data values onto pixel coordinates.
package scale

import "math"

// Linear is a continuous linear map from a domain [D0, D1] to a range [R0, R1].
// The range may be inverted (R0 > R1), as for a screen-space vertical axis.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear returns a scale mapping the domain [d0, d1] onto the range [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

func (s Linear) Domain() (float64, float64) { return s.d0, s.d1 }
func (s Linear) Range() (float64, float64)  { return s.r0, s.r1 }

// Map returns the range value for v. Values outside the domain extrapolate.
// A degenerate domain maps everything to the middle of the range.
func (s Linear) Map(v float64) float64 {
	return s.r0 + normalize(s.d0, s.d1, v)*(s.r1-s.r0)
}

// Invert is the inverse of Map.
func (s Linear) Invert(px float64) float64 {
	return s.d0 + normalize(s.r0, s.r1, px)*(s.d1-s.d0)
}

func normalize(a, b, v float64) float64 {
	span := b - a
	if span == 0 || math.IsNaN(span) {
		return 0.5
	}
	return (v - a) / span
}

// MaxOf returns the largest value of f over items, and false when items is empty.
func MaxOf[T any](items []T, f func(T) float64) (float64, bool) {
	if len(items) == 0 {
		return 0, false
	}
	best := math.Inf(-1)
	for _, it := range items {
		if v := f(it); v > best {
			best = v
		}
	}
	return best, true
}
