// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
)

// TickKind distinguishes labeled major ticks from unlabeled minor
// subdivisions.
type TickKind int

const (
	Major TickKind = iota
	Minor
)

func (k TickKind) String() string {
	switch k {
	case Major:
		return "major"
	case Minor:
		return "minor"
	}
	return fmt.Sprintf("TickKind(%d)", int(k))
}

// A TextAnchor is the point of a label's bounding box that is
// placed at the label's position.
type TextAnchor int

const (
	Center TextAnchor = iota
	TopCenter
	BottomCenter
	CenterLeft
	CenterRight
)

func (a TextAnchor) String() string {
	switch a {
	case Center:
		return "center"
	case TopCenter:
		return "top-center"
	case BottomCenter:
		return "bottom-center"
	case CenterLeft:
		return "center-left"
	case CenterRight:
		return "center-right"
	}
	return fmt.Sprintf("TextAnchor(%d)", int(a))
}

// A Tick is one position along an axis.
type Tick struct {
	Kind  TickKind
	Value float64
	// Label is empty for minor ticks.
	Label string

	// TextAnchor is the label point placed at the tick, and
	// RotationAnchor the point the label rotates about by Angle
	// radians.
	TextAnchor     TextAnchor
	RotationAnchor TextAnchor
	Angle          float64
}

// labelPlacement returns the anchors and angle for tick labels
// drawn on the outside of edge.
func labelPlacement(edge Edge, vertical bool) (anchor, rotation TextAnchor, angle float64) {
	switch edge {
	case Top:
		if vertical {
			return CenterLeft, CenterLeft, -math.Pi / 2
		}
		return BottomCenter, BottomCenter, 0
	case Bottom:
		if vertical {
			return CenterRight, CenterRight, -math.Pi / 2
		}
		return TopCenter, TopCenter, 0
	case Left:
		if vertical {
			return BottomCenter, BottomCenter, -math.Pi / 2
		}
		return CenterRight, CenterRight, 0
	}
	if vertical {
		return BottomCenter, BottomCenter, math.Pi / 2
	}
	return CenterLeft, CenterLeft, 0
}

// tickWriter accumulates one pass of ticks in increasing value
// order. Generation only moves forward: a value at or below the
// previous tick is either merged into it (when equal) or dropped.
type tickWriter struct {
	ticks          []Tick
	anchor, rotate TextAnchor
	angle          float64
}

func newTickWriter(edge Edge, vertical bool) *tickWriter {
	w := &tickWriter{}
	w.anchor, w.rotate, w.angle = labelPlacement(edge, vertical)
	return w
}

// add emits a tick at v.
func (w *tickWriter) add(kind TickKind, v float64, label string) {
	t := Tick{kind, v, label, w.anchor, w.rotate, w.angle}
	if n := len(w.ticks); n > 0 {
		last := &w.ticks[n-1]
		if sameValue(last.Value, v) {
			// Decade boundaries are generated twice; the
			// later one starts its decade and owns the label.
			if kind == Major {
				*last = t
			}
			return
		}
		if v < last.Value {
			return
		}
	}
	w.ticks = append(w.ticks, t)
}

func sameValue(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= 1e-12*scale
}
