// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// AutoRange fits a linear range to data. The steps run in a fixed
// order: sign restriction, zero inclusion, then either the fixed
// size or the minimum size, then margins.
func (LinearScale) AutoRange(data *Range, o *Options) (Range, error) {
	r := o.DefaultRange
	if data != nil {
		r = *data
	}
	if _, err := NewRange(r.Lower, r.Upper); err != nil {
		return Range{}, err
	}
	lower, upper := o.RangeType.clamp(r.Lower, r.Upper)
	if o.IncludeZero {
		lower, upper = min(lower, 0), max(upper, 0)
	}
	length := upper - lower

	if o.FixedSize > 0 {
		lower = upper - o.FixedSize
		lower, upper = shiftInto(o.RangeType, lower, upper)
		return NewRange(lower, upper)
	}

	if length < o.MinimumSize || length == 0 {
		expand := (o.MinimumSize - length) / 2
		upper += expand
		lower -= expand
		if lower == upper {
			adjust := math.Abs(lower) / 10
			if adjust == 0 {
				adjust = 0.5
			}
			lower -= adjust
			upper += adjust
		}
		lower, upper = shiftInto(o.RangeType, lower, upper)
	}

	lowerPad, upperPad := o.LowerMargin*length, o.UpperMargin*length
	if o.StickyZero {
		if lower < 0 && upper > 0 {
			// Zero is inside the range. Padding the bound
			// nearer to zero would only push it further past
			// zero, so pad the far side alone.
			if -lower < upper {
				lowerPad = 0
			} else if upper < -lower {
				upperPad = 0
			}
			lower -= lowerPad
			upper += upperPad
		} else {
			if upper <= 0 {
				upper = min(0, upper+upperPad)
			} else {
				upper += upperPad
			}
			if lower >= 0 {
				lower = max(0, lower-lowerPad)
			} else {
				lower -= lowerPad
			}
		}
	} else {
		lower -= lowerPad
		upper += upperPad
	}
	lower, upper = o.RangeType.clamp(lower, upper)
	return NewRange(lower, upper)
}

// shiftInto moves [lower, upper] so it satisfies t, keeping its
// length.
func shiftInto(t RangeType, lower, upper float64) (float64, float64) {
	switch t {
	case Positive:
		if lower < 0 {
			return 0, upper - lower
		}
	case Negative:
		if upper > 0 {
			return lower - upper, 0
		}
	}
	return lower, upper
}

func (LinearScale) ticks(a *Axis, r Range, dev Interval, edge Edge, m Measurer) []Tick {
	if a.AutoTickUnit && m != nil {
		a.selectTickUnit(r, dev, edge, m)
	}
	ticks, ok := linearTicks(r, a.Unit, a.MinorCount(), a.Options.LabelFormatOverride, a.Options.maxTicks(), newTickWriter(edge, a.VerticalLabels))
	if !ok {
		a.debug("tick count exceeds limit, no ticks generated", "range", r, "unit", a.Unit.Size, "max", a.Options.maxTicks())
	}
	return ticks
}

// linearTicks emits major ticks at the multiples of u.Size within r
// and minorCount-1 minor ticks in each major interval, including the
// partial intervals at either end. It reports false, with no ticks,
// if there would be more than maxCount major ticks.
func linearTicks(r Range, u TickUnit, minorCount int, override LabelFormatter, maxCount int, w *tickWriter) ([]Tick, bool) {
	size := u.Size
	if !(size > 0) {
		return nil, true
	}
	// Slack for quotients such as 0.3/0.1 = 2.9999999999999996.
	const slack = 1e-9
	first := math.Ceil(r.Lower/size - slack)
	last := math.Floor(r.Upper/size + slack)
	count := last - first + 1
	if count > float64(maxCount) {
		return nil, false
	}

	label := func(v float64) string {
		if override != nil {
			return override.Format(v)
		}
		return u.Label(v)
	}
	at := func(k float64) float64 {
		v := k * size
		// Snap values a rounding error outside the range.
		if v > r.Upper && v-r.Upper <= slack*size {
			v = r.Upper
		} else if v < r.Lower && r.Lower-v <= slack*size {
			v = r.Lower
		}
		if v == 0 {
			// Fold -0 from ceil of a small negative quotient.
			v = 0
		}
		return v
	}

	lowest := first * size
	for k := minorCount - 1; k >= 1; k-- {
		if v := lowest - size*float64(k)/float64(minorCount); r.Contains(v) {
			w.add(Minor, v, "")
		}
	}
	for i := 0; i < int(count); i++ {
		cur, next := at(first+float64(i)), (first+float64(i)+1)*size
		w.add(Major, cur, label(cur))
		for k := 1; k < minorCount; k++ {
			if v := cur + (next-cur)*float64(k)/float64(minorCount); r.Contains(v) {
				w.add(Minor, v, "")
			}
		}
	}
	return w.ticks, true
}
