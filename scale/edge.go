// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"strings"
)

// An Edge identifies the side of a data area an axis is drawn
// along, and hence which device axis a range is mapped onto.
type Edge int

const (
	Bottom Edge = iota
	Top
	Left
	Right
)

var edgeNames = [...]string{"bottom", "top", "left", "right"}

func (e Edge) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return fmt.Sprintf("Edge(%d)", int(e))
	}
	return edgeNames[e]
}

// IsHorizontal reports whether e is Top or Bottom, that is, whether
// values are mapped onto the device x axis.
func (e Edge) IsHorizontal() bool {
	return e == Top || e == Bottom
}

// Opposite returns the edge facing e.
func (e Edge) Opposite() Edge {
	switch e {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	}
	return Left
}

// UnmarshalText parses an edge name, ignoring case.
func (e *Edge) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range edgeNames {
		if s == n {
			*e = Edge(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown edge %q", ErrConfiguration, s)
}

func (e Edge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// An Interval is the device-space extent of a data area along one
// device axis, for example [MinX, MaxX] of a plot rectangle.
// Start <= End.
type Interval struct {
	Start, End float64
}

// Length returns End - Start.
func (i Interval) Length() float64 {
	return i.End - i.Start
}

// bounds returns the device coordinates of the lower and upper
// ends of a range drawn along e. Device y grows downward, so the
// lower bound of a vertical axis sits at End.
func (i Interval) bounds(e Edge) (lo, hi float64) {
	if e.IsHorizontal() {
		return i.Start, i.End
	}
	return i.End, i.Start
}
