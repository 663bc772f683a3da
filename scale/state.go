// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// AxisState tracks layout of one axis during a single draw pass.
// Cursor is the device coordinate, perpendicular to the axis, where
// the next band (tick marks, tick labels, axis label) starts. It
// moves away from the data area as bands are laid out.
type AxisState struct {
	Cursor float64
	// Max is the largest tick label extent seen, perpendicular to
	// the axis.
	Max   float64
	Ticks []Tick
}

func (s *AxisState) CursorUp(units float64)    { s.Cursor -= units }
func (s *AxisState) CursorDown(units float64)  { s.Cursor += units }
func (s *AxisState) CursorLeft(units float64)  { s.Cursor -= units }
func (s *AxisState) CursorRight(units float64) { s.Cursor += units }

// MoveCursor moves the cursor units away from the data area on the
// given edge.
func (s *AxisState) MoveCursor(units float64, edge Edge) {
	switch edge {
	case Top:
		s.CursorUp(units)
	case Bottom:
		s.CursorDown(units)
	case Left:
		s.CursorLeft(units)
	case Right:
		s.CursorRight(units)
	}
}
