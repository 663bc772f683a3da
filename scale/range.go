// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Range is a closed interval [Lower, Upper] of data values.
//
// Ranges are values: operations that change a range return a new
// one.
type Range struct {
	Lower float64 `toml:"lower" yaml:"lower"`
	Upper float64 `toml:"upper" yaml:"upper"`
}

// NewRange returns the range [lower, upper]. It returns
// ErrInvalidRange if lower > upper or either bound is NaN.
func NewRange(lower, upper float64) (Range, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return Range{}, fmt.Errorf("%w: lower %g > upper %g", ErrInvalidRange, lower, upper)
	}
	return Range{lower, upper}, nil
}

// MustRange is like NewRange but panics on an invalid range.
func MustRange(lower, upper float64) Range {
	r, err := NewRange(lower, upper)
	if err != nil {
		panic(err)
	}
	return r
}

// DataRange returns the extent of xs, ignoring NaNs. It returns nil
// if xs contains no numbers, which callers treat as "no data".
func DataRange(xs ...float64) *Range {
	clean := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			clean = append(clean, x)
		}
	}
	if len(clean) == 0 {
		return nil
	}
	lo, hi := stats.Bounds(clean)
	return &Range{lo, hi}
}

// Contains reports whether v lies in r, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Lower && v <= r.Upper
}

// Length returns Upper - Lower.
func (r Range) Length() float64 {
	return r.Upper - r.Lower
}

// Central returns the midpoint of r.
func (r Range) Central() float64 {
	return r.Lower/2 + r.Upper/2
}

// ExpandToInclude returns the smallest range containing both r
// and v.
func (r Range) ExpandToInclude(v float64) Range {
	if v < r.Lower {
		return Range{v, r.Upper}
	}
	if v > r.Upper {
		return Range{r.Lower, v}
	}
	return r
}

// Constrain returns the value in r closest to v.
func (r Range) Constrain(v float64) float64 {
	if r.Contains(v) {
		return v
	}
	if v > r.Upper {
		return r.Upper
	}
	if v < r.Lower {
		return r.Lower
	}
	// NaN.
	return v
}

// Expand widens r by the given fractions of its length on each
// side. If the result would be inverted, it collapses to the
// midpoint of the expanded bounds.
func (r Range) Expand(lowerFrac, upperFrac float64) Range {
	l := r.Length()
	lower := r.Lower - l*lowerFrac
	upper := r.Upper + l*upperFrac
	if lower > upper {
		mid := lower/2 + upper/2
		return Range{mid, mid}
	}
	return Range{lower, upper}
}

// Shift returns r moved by delta.
func (r Range) Shift(delta float64) Range {
	return Range{r.Lower + delta, r.Upper + delta}
}

// Combine returns the smallest range containing a and b. Either may
// be nil, meaning no data; the result is nil only if both are.
func Combine(a, b *Range) *Range {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		r := *b
		return &r
	case b == nil:
		r := *a
		return &r
	}
	return &Range{math.Min(a.Lower, b.Lower), math.Max(a.Upper, b.Upper)}
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Lower, r.Upper)
}
