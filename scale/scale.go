// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data ranges onto device coordinates and
// chooses readable tick marks for them.
//
// A Scale is either LinearScale or *LogScale. An Axis combines a
// scale with its options and tick unit catalog and is the entry
// point renderers use once per draw pass: AutoRange to fit the
// data, ValueToDevice and DeviceToValue per point, and
// RefreshTicks for the tick marks and labels.
package scale

import (
	"fmt"
	"math"
)

// A Scale transforms data values into a space in which they are
// mapped linearly onto the device.
//
// The transform may depend on the range being drawn (log scales
// change mode near the origin), so it takes that range as well.
type Scale interface {
	// Transform maps a data value into linear space.
	Transform(r Range, v float64) float64
	// Inverse undoes Transform.
	Inverse(r Range, t float64) float64

	// AutoRange returns the range to display for the data extent,
	// which is nil if there is no data.
	AutoRange(data *Range, o *Options) (Range, error)

	ticks(a *Axis, r Range, dev Interval, edge Edge, m Measurer) []Tick
}

// LinearScale is the identity transform.
type LinearScale struct{}

func (LinearScale) Transform(r Range, v float64) float64 { return v }

func (LinearScale) Inverse(r Range, t float64) float64 { return t }

// A Mapper converts between data values and device coordinates.
type Mapper struct {
	Scale Scale
	// Inverted reverses the direction of the mapping, so the
	// lower bound lands at the far end of the device interval.
	Inverted bool
}

func (m Mapper) scale() Scale {
	if m.Scale == nil {
		return LinearScale{}
	}
	return m.Scale
}

// span returns the transformed bounds of r.
func (m Mapper) span(r Range) (lo, hi float64, err error) {
	s := m.scale()
	lo, hi = s.Transform(r, r.Lower), s.Transform(r, r.Upper)
	if !(hi-lo != 0) || math.IsInf(hi-lo, 0) {
		return 0, 0, fmt.Errorf("%w: cannot map against %v", ErrDegenerateRange, r)
	}
	return lo, hi, nil
}

// ValueToDevice returns the device coordinate of v when r is drawn
// into dev along edge.
func (m Mapper) ValueToDevice(v float64, r Range, dev Interval, edge Edge) (float64, error) {
	lo, hi, err := m.span(r)
	if err != nil {
		return 0, err
	}
	dmin, dmax := dev.bounds(edge)
	t := (m.scale().Transform(r, v) - lo) / (hi - lo)
	if m.Inverted {
		return dmax - t*(dmax-dmin), nil
	}
	return dmin + t*(dmax-dmin), nil
}

// DeviceToValue is the inverse of ValueToDevice.
func (m Mapper) DeviceToValue(d float64, r Range, dev Interval, edge Edge) (float64, error) {
	lo, hi, err := m.span(r)
	if err != nil {
		return 0, err
	}
	dmin, dmax := dev.bounds(edge)
	if dmax == dmin {
		return 0, fmt.Errorf("%w: empty device interval", ErrDegenerateRange)
	}
	t := (d - dmin) / (dmax - dmin)
	if m.Inverted {
		return m.scale().Inverse(r, hi-t*(hi-lo)), nil
	}
	return m.scale().Inverse(r, lo+t*(hi-lo)), nil
}

// LengthToDevice returns the device distance covered by a data
// length, measured from zero.
func (m Mapper) LengthToDevice(length float64, r Range, dev Interval, edge Edge) (float64, error) {
	z, err := m.ValueToDevice(0, r, dev, edge)
	if err != nil {
		return 0, err
	}
	l, err := m.ValueToDevice(length, r, dev, edge)
	if err != nil {
		return 0, err
	}
	return math.Abs(l - z), nil
}
