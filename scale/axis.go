// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"context"
	"log/slog"
)

// An Axis holds the state of one numeric axis of a plot: its scale,
// options, current range and current tick unit.
//
// An Axis is owned by one plot and must not be used from several
// goroutines at once. Its tick unit catalog may be shared.
type Axis struct {
	Scale   Scale
	Options Options

	// Units is the catalog automatic tick unit selection draws
	// from, and Unit the unit in use.
	Units        *TickUnits
	Unit         TickUnit
	AutoTickUnit bool

	Inverted       bool
	VerticalLabels bool
	LabelInsets    Insets

	// TickMarkOutside is the length of tick marks drawn outside
	// the data area.
	TickMarkOutside float64

	// Label is the axis title, laid out beyond the tick labels
	// with LabelGap device units before it.
	Label    string
	LabelGap float64

	// Logger, if non-nil, receives debug events about tick
	// selection.
	Logger *slog.Logger

	r Range
}

// NewAxis returns an axis using s (LinearScale{} if nil) with
// default options, the standard tick units and range [0, 1].
func NewAxis(s Scale) *Axis {
	if s == nil {
		s = LinearScale{}
	}
	units := StandardTickUnits()
	o := DefaultOptions()
	return &Axis{
		Scale:           s,
		Options:         o,
		Units:           units,
		Unit:            units.Ceiling(1),
		AutoTickUnit:    true,
		LabelInsets:     Insets{Top: 2, Left: 4, Bottom: 2, Right: 4},
		TickMarkOutside: 2,
		LabelGap:        4,
		r:               o.DefaultRange,
	}
}

// Scale returns the scale an axis built from o uses: a *LogScale
// carrying o's log settings if log is set, LinearScale otherwise.
func (o *Options) Scale(log bool) Scale {
	if log {
		return &LogScale{Threshold: o.SmallLogThreshold, AllowNegative: o.AllowNegativeLog}
	}
	return LinearScale{}
}

// Range returns the axis' current range.
func (a *Axis) Range() Range { return a.r }

// SetRange sets the axis range.
func (a *Axis) SetRange(r Range) error {
	if _, err := NewRange(r.Lower, r.Upper); err != nil {
		return err
	}
	a.r = r
	return nil
}

// AutoRange fits the axis range to the data extent, which is nil if
// there is no data, and returns the new range. On error the range is
// unchanged.
func (a *Axis) AutoRange(data *Range) (Range, error) {
	r, err := a.scale().AutoRange(data, &a.Options)
	if err != nil {
		return a.r, err
	}
	a.r = r
	return r, nil
}

// scale returns the scale in use, with the axis' log options folded
// into a log scale.
func (a *Axis) scale() Scale {
	switch s := a.Scale.(type) {
	case nil:
		return LinearScale{}
	case *LogScale:
		return s.withOptions(&a.Options)
	}
	return a.Scale
}

func (a *Axis) mapper() Mapper {
	return Mapper{a.scale(), a.Inverted}
}

// ValueToDevice maps v into dev along edge using the current range.
func (a *Axis) ValueToDevice(v float64, dev Interval, edge Edge) (float64, error) {
	return a.mapper().ValueToDevice(v, a.r, dev, edge)
}

// DeviceToValue maps a device coordinate back to a data value.
func (a *Axis) DeviceToValue(d float64, dev Interval, edge Edge) (float64, error) {
	return a.mapper().DeviceToValue(d, a.r, dev, edge)
}

// RefreshTicks generates the ticks for the current range drawn into
// dev along edge. If AutoTickUnit is set and m is non-nil, a linear
// axis first selects a tick unit whose labels fit. The result is
// freshly allocated on every call.
//
// An empty result for a non-empty range means the range holds more
// ticks than Options.MaxTickCount allows.
func (a *Axis) RefreshTicks(dev Interval, edge Edge, m Measurer) []Tick {
	return a.scale().ticks(a, a.r, dev, edge, m)
}

// Layout places the tick mark and tick label bands for ticks, and
// the axis label band if there is a label, starting at cursor and
// moving away from the data area on edge. m must not be nil.
func (a *Axis) Layout(cursor float64, ticks []Tick, edge Edge, m Measurer) AxisState {
	st := AxisState{Cursor: cursor, Ticks: ticks}
	st.MoveCursor(a.TickMarkOutside, edge)
	for _, t := range ticks {
		if t.Label == "" {
			continue
		}
		if e := a.across(t.Label, edge, m); e > st.Max {
			st.Max = e
		}
	}
	st.MoveCursor(st.Max, edge)
	if a.Label != "" {
		_, h := m.Measure(a.Label)
		st.MoveCursor(a.LabelGap+h, edge)
	}
	return st
}

// along returns the room a label needs along the axis, and across
// the room it needs perpendicular to it, insets included.
func (a *Axis) along(label string, edge Edge, m Measurer) float64 {
	w, h := m.Measure(label)
	if edge.IsHorizontal() != a.VerticalLabels {
		return w + a.LabelInsets.Left + a.LabelInsets.Right
	}
	return h + a.LabelInsets.Top + a.LabelInsets.Bottom
}

func (a *Axis) across(label string, edge Edge, m Measurer) float64 {
	w, h := m.Measure(label)
	if edge.IsHorizontal() != a.VerticalLabels {
		return h + a.LabelInsets.Top + a.LabelInsets.Bottom
	}
	return w + a.LabelInsets.Left + a.LabelInsets.Right
}

// selectTickUnit sets a.Unit to a unit whose labels for r fit
// along dev.
func (a *Axis) selectTickUnit(r Range, dev Interval, edge Edge, m Measurer) {
	mp := a.mapper()
	deviceLength := func(size float64) float64 {
		l, err := mp.LengthToDevice(size, r, dev, edge)
		if err != nil {
			return 0
		}
		return l
	}
	a.Unit = SelectTickUnit(a.units(), a.Unit.Size, deviceLength, a.labelExtent(r, edge, m))
	a.debug("selected tick unit", "range", r, "unit", a.Unit.Size)
}

// linearUnit picks a unit for ticking r as if it were drawn on a
// linear scale, without changing a.Unit. With no measurer it aims
// for about five intervals.
func (a *Axis) linearUnit(r Range, dev Interval, edge Edge, m Measurer) TickUnit {
	guess := r.Length() / 5
	if m == nil || !(dev.Length() > 0) || !(r.Length() > 0) {
		return a.units().Ceiling(guess)
	}
	deviceLength := func(size float64) float64 {
		return size / r.Length() * dev.Length()
	}
	return SelectTickUnit(a.units(), guess, deviceLength, a.labelExtent(r, edge, m))
}

// labelExtent returns the room along the axis a unit's labels need.
// The widest labels are at the ends of the range.
func (a *Axis) labelExtent(r Range, edge Edge, m Measurer) func(TickUnit) float64 {
	return func(u TickUnit) float64 {
		label := u.Label
		if f := a.Options.LabelFormatOverride; f != nil {
			label = f.Format
		}
		return max(a.along(label(r.Lower), edge, m), a.along(label(r.Upper), edge, m))
	}
}

func (a *Axis) units() *TickUnits {
	if a.Units == nil {
		a.Units = StandardTickUnits()
	}
	return a.Units
}

// MinorCount returns the number of minor intervals per major interval
// for the current tick unit, honouring Options.MinorTickCount.
func (a *Axis) MinorCount() int {
	if a.Options.MinorTickCount > 0 {
		return a.Options.MinorTickCount
	}
	return a.Unit.MinorCount
}

func (a *Axis) debug(msg string, args ...any) {
	if a.Logger != nil {
		a.Logger.Log(context.Background(), slog.LevelDebug, msg, args...)
	}
}
