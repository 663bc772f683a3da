// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// A TickUnit is the spacing between major ticks, together with the
// formatter for their labels and the number of minor intervals each
// major interval is divided into.
type TickUnit struct {
	Size       float64
	MinorCount int
	Format     LabelFormatter
}

// NewTickUnit returns a tick unit of the given size. It returns
// ErrInvalidUnit if size is not strictly positive and finite.
func NewTickUnit(size float64, minorCount int, format LabelFormatter) (TickUnit, error) {
	if !(size > 0) || math.IsInf(size, 1) {
		return TickUnit{}, fmt.Errorf("%w: size %g", ErrInvalidUnit, size)
	}
	if minorCount < 0 {
		minorCount = 0
	}
	if format == nil {
		format = DecimalFormat{Digits: digitsFor(size)}
	}
	return TickUnit{size, minorCount, format}, nil
}

// Label formats v with u's formatter.
func (u TickUnit) Label(v float64) string {
	if u.Format == nil {
		return DecimalFormat{Digits: digitsFor(u.Size)}.Format(v)
	}
	return u.Format.Format(v)
}

func (u TickUnit) String() string {
	return fmt.Sprintf("TickUnit(%g, %d)", u.Size, u.MinorCount)
}

// TickUnits is an immutable catalog of tick units, sorted by
// strictly increasing size. It is safe for concurrent use.
type TickUnits struct {
	units []TickUnit
}

// NewTickUnits returns a catalog of the given units. Units are
// sorted by size; if two units share a size the first one wins.
func NewTickUnits(units ...TickUnit) (*TickUnits, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("%w: empty catalog", ErrInvalidUnit)
	}
	us := make([]TickUnit, len(units))
	copy(us, units)
	for _, u := range us {
		if !(u.Size > 0) || math.IsInf(u.Size, 1) {
			return nil, fmt.Errorf("%w: size %g", ErrInvalidUnit, u.Size)
		}
	}
	sort.SliceStable(us, func(i, j int) bool { return us[i].Size < us[j].Size })
	out := us[:1]
	for _, u := range us[1:] {
		if u.Size != out[len(out)-1].Size {
			out = append(out, u)
		}
	}
	return &TickUnits{out}, nil
}

// Len returns the number of units in the catalog.
func (t *TickUnits) Len() int { return len(t.units) }

// Units returns a copy of the catalog in increasing order.
func (t *TickUnits) Units() []TickUnit {
	return append([]TickUnit(nil), t.units...)
}

// Ceiling returns the smallest unit whose size is >= size, or the
// largest unit if there is none.
func (t *TickUnits) Ceiling(size float64) TickUnit {
	i := sort.Search(len(t.units), func(i int) bool { return t.units[i].Size >= size })
	if i == len(t.units) {
		i--
	}
	return t.units[i]
}

// LargerThan returns the smallest unit strictly larger than u, or
// the largest unit if u is already at or above it.
func (t *TickUnits) LargerThan(u TickUnit) TickUnit {
	i := sort.Search(len(t.units), func(i int) bool { return t.units[i].Size > u.Size })
	if i == len(t.units) {
		i--
	}
	return t.units[i]
}

// Catalog decades. 1e-10 is finer than any sensible float64 data
// range drawn on a screen and 1e12 covers byte counts and money.
const (
	minDecade = -10
	maxDecade = 12
)

// StandardTickUnits returns the shared catalog of 1, 2 and 5 times
// powers of ten, with labels precise enough for each size.
var StandardTickUnits = sync.OnceValue(func() *TickUnits {
	return decadeUnits(minDecade, maxDecade)
})

// IntegerTickUnits is like StandardTickUnits but only contains
// whole-number sizes, for axes that count things.
var IntegerTickUnits = sync.OnceValue(func() *TickUnits {
	return decadeUnits(0, maxDecade)
})

func decadeUnits(lo, hi int) *TickUnits {
	steps := []struct {
		mult  float64
		minor int
	}{{1, 5}, {2, 4}, {5, 5}}

	var units []TickUnit
	for k := lo; k <= hi; k++ {
		p := math.Pow10(k)
		digits := 0
		if k < 0 {
			digits = -k
		}
		for _, s := range steps {
			units = append(units, TickUnit{
				Size:       s.mult * p,
				MinorCount: s.minor,
				Format:     DecimalFormat{Digits: digits, Grouping: true},
			})
		}
	}
	t, err := NewTickUnits(units...)
	if err != nil {
		panic(err)
	}
	return t
}
