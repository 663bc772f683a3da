// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// SelectTickUnit picks the tick unit from units whose labels fit
// along the axis.
//
// current is the size of the unit in use. deviceLength converts a
// data length into device units and labelExtent reports how much
// room along the axis a unit's labels need. Label extent depends on
// the unit (its formatter decides the digit count), so the choice is
// made in two passes: a guess from the current unit's labels, then a
// check of the guess's own labels, stepping up one unit if they do
// not fit.
func SelectTickUnit(units *TickUnits, current float64, deviceLength func(size float64) float64, labelExtent func(u TickUnit) float64) TickUnit {
	u1 := units.Ceiling(current)
	guess := u1.Size
	if l := deviceLength(u1.Size); l > 0 {
		guess = labelExtent(u1) / l * u1.Size
	}
	u2 := units.Ceiling(guess)
	if labelExtent(u2) > deviceLength(u2.Size) {
		u2 = units.LargerThan(u2)
	}
	return u2
}
