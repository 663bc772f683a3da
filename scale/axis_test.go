// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveCursor(t *testing.T) {
	tests := []struct {
		edge Edge
		want float64
	}{
		{Top, 7},
		{Bottom, 13},
		{Left, 7},
		{Right, 13},
	}
	for _, test := range tests {
		st := AxisState{Cursor: 10}
		st.MoveCursor(3, test.edge)
		assert.Equalf(t, test.want, st.Cursor, "edge %v", test.edge)
	}
}

func TestLayout(t *testing.T) {
	m := BasicMeasurer()
	a := NewAxis(nil)
	ticks := []Tick{{Kind: Major, Value: 0, Label: "0"}, {Kind: Minor, Value: 50}, {Kind: Major, Value: 100, Label: "100"}}

	// Horizontal labels on a horizontal axis: 13 high plus 4 of
	// insets.
	st := a.Layout(100, ticks, Bottom, m)
	assert.Equal(t, 17.0, st.Max)
	assert.Equal(t, 119.0, st.Cursor)
	assert.Len(t, st.Ticks, 3)

	// Beside a vertical axis the widest label counts.
	a.Label = "ms"
	st = a.Layout(50, ticks, Left, m)
	assert.Equal(t, 29.0, st.Max)
	assert.Equal(t, 50.0-2-29-4-13, st.Cursor)

	a.VerticalLabels = true
	st = a.Layout(0, ticks, Top, m)
	assert.Equal(t, 29.0, st.Max)
	assert.Equal(t, -2.0-29-4-13, st.Cursor)
}

func TestAxisAutoRange(t *testing.T) {
	a := NewAxis(nil)
	r, err := a.AutoRange(&Range{-3.2, 47.9})
	require.NoError(t, err)
	assert.Equal(t, r, a.Range())
	assert.InDelta(t, -3.2, r.Lower, 1e-9)

	// A failed auto range leaves the axis alone.
	a.Scale = &LogScale{}
	_, err = a.AutoRange(&Range{-1, 10})
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Equal(t, r, a.Range())

	assert.ErrorIs(t, a.SetRange(Range{2, 1}), ErrInvalidRange)
	assert.Equal(t, r, a.Range())
}

func TestAxisMapping(t *testing.T) {
	a := NewAxis(nil)
	require.NoError(t, a.SetRange(MustRange(0, 10)))
	d, err := a.ValueToDevice(2, Interval{0, 100}, Left)
	require.NoError(t, err)
	assert.InDelta(t, 80, d, 1e-9)

	a.Inverted = true
	d, err = a.ValueToDevice(2, Interval{0, 100}, Left)
	require.NoError(t, err)
	assert.InDelta(t, 20, d, 1e-9)
	v, err := a.DeviceToValue(d, Interval{0, 100}, Left)
	require.NoError(t, err)
	assert.InDelta(t, 2, v, 1e-9)
}

func TestOptionsScale(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, LinearScale{}, o.Scale(false))

	o.SmallLogThreshold = 1e-6
	o.AllowNegativeLog = true
	s, ok := o.Scale(true).(*LogScale)
	require.True(t, ok)
	assert.Equal(t, 1e-6, s.Threshold)
	assert.True(t, s.AllowNegative)
}

func TestTextEnums(t *testing.T) {
	var e Edge
	require.NoError(t, e.UnmarshalText([]byte(" Left ")))
	assert.Equal(t, Left, e)
	assert.Equal(t, Right, e.Opposite())
	assert.ErrorIs(t, e.UnmarshalText([]byte("middle")), ErrConfiguration)
	b, err := Top.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "top", string(b))

	var rt RangeType
	require.NoError(t, rt.UnmarshalText([]byte("POSITIVE")))
	assert.Equal(t, Positive, rt)
	assert.ErrorIs(t, rt.UnmarshalText([]byte("sideways")), ErrConfiguration)
	assert.Equal(t, "RangeType(7)", RangeType(7).String())
}
