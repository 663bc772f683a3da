// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTickUnit(t *testing.T) {
	std := StandardTickUnits()
	deviceLength := func(size float64) float64 { return size * 10 }

	// Fixed label extent: the first guess fits.
	u := SelectTickUnit(std, 1, deviceLength, func(TickUnit) float64 { return 25 })
	assert.Equal(t, 5.0, u.Size)

	// The guess's own labels are wider than the current unit's and
	// no longer fit, so selection steps up once.
	extent := func(u TickUnit) float64 {
		if u.Size < 2 {
			return 15
		}
		return 25
	}
	u = SelectTickUnit(std, 1, deviceLength, extent)
	assert.Equal(t, 5.0, u.Size)

	// Degenerate device lengths keep the current unit.
	u = SelectTickUnit(std, 20, func(float64) float64 { return 0 }, func(TickUnit) float64 { return 0 })
	assert.Equal(t, 20.0, u.Size)
}

func TestAxisSelectsTickUnit(t *testing.T) {
	a := NewAxis(LinearScale{})
	require.NoError(t, a.SetRange(MustRange(0, 100)))

	// "100" in 7x13 is 21 wide plus 8 of insets, so a 100 device
	// unit axis needs units of at least 29.
	ticks := a.RefreshTicks(Interval{0, 100}, Bottom, BasicMeasurer())
	assert.Equal(t, 50.0, a.Unit.Size)
	major, _, labels := split(ticks)
	assert.Equal(t, []float64{0, 50, 100}, major)
	assert.Equal(t, []string{"0", "50", "100"}, labels)

	// Without a measurer the unit is left alone.
	a.Unit = StandardTickUnits().Ceiling(10)
	major, _, _ = split(a.RefreshTicks(Interval{0, 100}, Bottom, nil))
	assert.Len(t, major, 11)
	assert.Equal(t, 10.0, a.Unit.Size)
}
