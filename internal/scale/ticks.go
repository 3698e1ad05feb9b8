package scale

import (
	"math"
	"strconv"
)

// DefaultTickCount is the number of ticks an axis asks for.
const DefaultTickCount = 10

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickStep returns the 1, 2 or 5 times a power of ten step closest to
// (stop-start)/count.
func tickStep(start, stop float64, count int) float64 {
	step := (stop - start) / float64(max(1, count))
	power := math.Floor(math.Log10(step))
	errf := step / math.Pow(10, power)
	mult := 1.0
	switch {
	case errf >= e10:
		mult = 10
	case errf >= e5:
		mult = 5
	case errf >= e2:
		mult = 2
	}
	return mult * math.Pow(10, power)
}

// Ticks returns roughly count evenly spaced, rounded values inside the domain,
// in domain order.
func (s Linear) Ticks(count int) []float64 {
	start, stop := s.d0, s.d1
	if math.IsNaN(start) || math.IsNaN(stop) || count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	step := tickStep(start, stop, count)
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return nil
	}
	var out []float64
	if step >= 1 {
		lo, hi := math.Ceil(start/step), math.Floor(stop/step)
		for k := lo; k <= hi; k++ {
			v := k * step
			if v == 0 {
				v = 0 // drop the sign of a negative zero from Ceil
			}
			out = append(out, v)
		}
	} else {
		// divide by the inverse step so fractional ticks come out exact
		inv := math.Round(1 / step)
		lo, hi := math.Ceil(start*inv), math.Floor(stop*inv)
		for k := lo; k <= hi; k++ {
			v := k / inv
			if v == 0 {
				v = 0
			}
			out = append(out, v)
		}
	}
	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// TickFormat returns a formatter with the fixed precision implied by the tick step.
func (s Linear) TickFormat(count int) func(float64) string {
	start, stop := s.d0, s.d1
	if stop < start {
		start, stop = stop, start
	}
	prec := 0
	if stop > start && count > 0 {
		step := tickStep(start, stop, count)
		if step > 0 && !math.IsInf(step, 0) {
			prec = max(0, -int(math.Floor(math.Log10(step))))
		}
	}
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', prec, 64)
	}
}
