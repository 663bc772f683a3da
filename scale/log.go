// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
	"strconv"
)

// LogScale is a base 10 logarithmic scale.
//
// It has two modes, chosen from the range being drawn. When the
// range starts in (0, 10) and negative values are not allowed, it
// is in small-log mode and uses log10 directly, so ranges such as
// [1e-6, 1e-2] get decade ticks below one. Otherwise it uses an
// adjusted transform that is sign-preserving and linear-ish below
// 10 in magnitude, mapping 0 to 0, so a range can span zero.
type LogScale struct {
	// Threshold is the smallest positive value shown in
	// small-log mode. Zero means 1e-100.
	Threshold float64

	// AllowNegative enables the adjusted transform for every
	// range, so zero and negative values can be shown.
	AllowNegative bool
}

func (s *LogScale) threshold() float64 {
	if s.Threshold > 0 {
		return s.Threshold
	}
	return 1e-100
}

// withOptions returns s with o's log settings folded in. Negative
// values are allowed if either allows them, and the threshold is the
// larger of the two.
func (s *LogScale) withOptions(o *Options) *LogScale {
	return &LogScale{
		Threshold:     max(s.threshold(), o.smallLog()),
		AllowNegative: s.AllowNegative || o.AllowNegativeLog,
	}
}

// SmallLog reports whether s is in small-log mode for r.
func (s *LogScale) SmallLog(r Range) bool {
	return !s.AllowNegative && r.Lower > 0 && r.Lower < 10
}

func (s *LogScale) Transform(r Range, v float64) float64 {
	if s.SmallLog(r) {
		return math.Log10(v)
	}
	return adjustedLog10(v)
}

func (s *LogScale) Inverse(r Range, t float64) float64 {
	if s.SmallLog(r) {
		return math.Pow(10, t)
	}
	return adjustedPow10(t)
}

// adjustedLog10 is log10(|v|) with the sign of v, except that
// magnitudes below 10 are first moved towards 10 by a tenth of the
// gap, so that 0 maps to 0 and the curve is continuous.
func adjustedLog10(v float64) float64 {
	neg := v < 0
	if neg {
		v = -v
	}
	if v < 10 {
		v += (10 - v) / 10
	}
	res := math.Log10(v)
	if neg {
		return -res
	}
	return res
}

// adjustedPow10 is the inverse of adjustedLog10.
func adjustedPow10(t float64) float64 {
	neg := t < 0
	if neg {
		t = -t
	}
	var res float64
	if t < 1 {
		res = (math.Pow(10, t+1) - 10) / 9
	} else {
		res = math.Pow(10, t)
	}
	if neg {
		return -res
	}
	return res
}

// logFloor returns the power of ten at or below v, or floor(v) for
// values the log cannot express.
func (s *LogScale) logFloor(v float64) float64 {
	switch {
	case v > 10 || (!s.AllowNegative && v > 0):
		return math.Pow10(int(math.Floor(math.Log10(v))))
	case s.AllowNegative && v < -10:
		return -math.Pow10(int(math.Ceil(math.Log10(-v))))
	}
	return math.Floor(v)
}

// logCeil returns the power of ten at or above v, or ceil(v) for
// values the log cannot express.
func (s *LogScale) logCeil(v float64) float64 {
	switch {
	case v > 10 || (!s.AllowNegative && v > 0):
		return math.Pow10(int(math.Ceil(math.Log10(v))))
	case s.AllowNegative && v < -10:
		return -math.Pow10(int(math.Floor(math.Log10(-v))))
	}
	return math.Ceil(v)
}

// AutoRange fits a log range to data. Margins are fractions of the
// data's decade count. RangeType, IncludeZero and FixedSize do not
// apply to log scales. The log settings in o add to those of s.
func (s *LogScale) AutoRange(data *Range, o *Options) (Range, error) {
	s = s.withOptions(o)
	thr := s.threshold()
	r := o.DefaultRange
	if data != nil {
		r = *data
		if o.StrictValues && !s.AllowNegative && r.Lower <= 0 {
			return Range{}, fmt.Errorf("%w: log scale cannot show values <= 0 (data %v)", ErrConfiguration, r)
		}
	} else if !s.AllowNegative && r.Lower <= 0 {
		r = Range{1, 10}
	}
	if _, err := NewRange(r.Lower, r.Upper); err != nil {
		return Range{}, err
	}

	lower := r.Lower
	if lower > 0 && o.LowerMargin > 0 {
		l := math.Log10(lower)
		lower = math.Pow(10, l-max(math.Abs(l), 1)*o.LowerMargin)
	}
	if o.AutoRangeNextLog {
		lower = s.logFloor(lower)
	}
	if !s.AllowNegative && lower < thr {
		lower = thr
	}

	upper := r.Upper
	if upper > 0 && o.UpperMargin > 0 {
		l := math.Log10(upper)
		upper = math.Pow(10, l+max(math.Abs(l), 1)*o.UpperMargin)
	}
	if !s.AllowNegative && upper < 1 && upper > 0 && lower > 0 {
		// Everything is below one: round up at the precision of
		// upper's own decade rather than to 1.
		mult := math.Pow(10, math.Ceil(-math.Log10(upper)+0.001))
		upper = math.Ceil(upper*mult) / mult
	} else if o.AutoRangeNextLog {
		upper = s.logCeil(upper)
	} else {
		upper = math.Ceil(upper)
	}
	if !s.AllowNegative && upper < lower {
		upper = lower * 10
	}

	if upper-lower < o.MinimumSize || upper == lower {
		lower, upper = centerOn(lower, upper, o.MinimumSize)
		if upper-lower < o.MinimumSize {
			adj := 0.01
			if a := math.Abs(upper); a > thr {
				adj = a / 100
			}
			lower, upper = centerOn(lower, upper, adj)
		}
		if !s.AllowNegative && lower < thr {
			lower = thr
		}
	}
	return NewRange(lower, upper)
}

// centerOn returns a range of the given length around the midpoint
// of [lower, upper].
func centerOn(lower, upper, length float64) (float64, float64) {
	mid := lower/2 + upper/2
	return mid - length/2, mid + length/2
}

// zeroTickSlack is how close a generated tick must be to 1 to stand
// in for zero on a range that spans zero.
const zeroTickSlack = 1e-4

// ticks generates the log ticks for r: every j*10^i for the decades
// covering r, with labels on the first of each decade, on the first
// tick in r and the tick at its upper bound, and on a few more
// digits when r spans few decades. If that yields fewer than two labeled ticks, r is
// too narrow for log ticks and is ticked linearly instead.
func (s *LogScale) ticks(a *Axis, r Range, dev Interval, edge Edge, m Measurer) []Tick {
	o := &a.Options
	s = s.withOptions(o)
	thr := s.threshold()
	small := s.SmallLog(r)
	lower, upper := r.Lower, r.Upper
	if small && lower < thr {
		lower = thr
	}

	// Start at the decade at or below lower so digits such as
	// 0.5 in [0.5, 0.8] are reached.
	first := int(math.Floor(s.Transform(r, lower)))
	last := int(math.Ceil(s.Transform(r, upper)))
	extra := 3 - int(math.RoundToEven(s.Transform(r, upper))-math.RoundToEven(s.Transform(r, lower)))
	spansZero := lower <= 0 && upper >= 0

	w := newTickWriter(edge, a.VerticalLabels)
	add := func(v float64, i, j int) {
		if j == 0 || j < extra || v >= upper || len(w.ticks) == 0 {
			w.add(Major, v, s.label(o, v, i, j, small))
		} else {
			w.add(Minor, v, "")
		}
	}
	zeroDone := false
walk:
	for i := first; i <= last; i++ {
		for j := 0; j < 10; j++ {
			var v float64
			if small {
				v = math.Pow10(i) * float64(1+j)
			} else {
				if zeroDone {
					// Redo the digit that zero replaced.
					j--
				}
				if i >= 0 {
					v = math.Pow10(i) * float64(1+j)
				} else {
					v = -(math.Pow10(-i) - math.Pow10(-i-1)*float64(j))
				}
				if !zeroDone {
					if math.Abs(v-1) < zeroTickSlack && spansZero {
						v = 0
						zeroDone = true
					}
				} else {
					zeroDone = false
				}
			}
			if v > upper {
				if !sameValue(v, upper) {
					break walk
				}
				// Rounding in the decade product.
				v = upper
			}
			if v < lower-thr && !sameValue(v, lower) {
				continue
			}
			add(v, i, j)
		}
	}

	if majors(w.ticks) < 2 {
		u := a.linearUnit(r, dev, edge, m)
		a.debug("log range too narrow, using linear ticks", "range", r, "unit", u.Size)
		minor := u.MinorCount
		if o.MinorTickCount > 0 {
			minor = o.MinorTickCount
		}
		if ticks, ok := linearTicks(r, u, minor, o.LabelFormatOverride, o.maxTicks(), newTickWriter(edge, a.VerticalLabels)); ok {
			return ticks
		}
	}
	return w.ticks
}

func majors(ticks []Tick) int {
	n := 0
	for _, t := range ticks {
		if t.Kind == Major {
			n++
		}
	}
	return n
}

func (s *LogScale) label(o *Options, v float64, i, j int, small bool) string {
	if o.LabelFormatOverride != nil {
		return o.LabelFormatOverride.Format(v)
	}
	if o.Log10Labels && j == 0 && v != 0 {
		switch {
		case small || i >= 0:
			return "10^" + strconv.Itoa(i)
		default:
			return "-10^" + strconv.Itoa(-i)
		}
	}
	if o.ExpLabels {
		return ExpFormat{}.Format(v)
	}
	digits := 0
	if small && i < 0 {
		digits = -i
	}
	return DecimalFormat{Digits: digits, Grouping: true}.Format(v)
}
