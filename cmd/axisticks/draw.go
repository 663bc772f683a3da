// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-axis/scale"
)

const (
	previewTickLen = 6
	previewGap     = 16 // Between the axis line and the canvas edge on the data side.
	basicFontSize  = 11 // Roughly the 7x13 cell.
)

// drawAxis renders p's axis line, tick marks, tick labels and axis
// label as an SVG document. The canvas is sized to fit the label
// bands Axis.Layout reserves.
func drawAxis(w io.Writer, p *plan) error {
	a, edge := p.axis, p.cfg.Edge
	a.TickMarkOutside = previewTickLen
	band := math.Abs(a.Layout(0, p.ticks, edge, p.m).Cursor)

	// Labels at the ends of the axis overhang it by up to their
	// width.
	endPad := float64(previewGap)
	for _, t := range p.ticks {
		if t.Label != "" {
			lw, _ := p.m.Measure(t.Label)
			endPad = max(endPad, lw+a.LabelInsets.Left+a.LabelInsets.Right)
		}
	}
	dev := scale.Interval{Start: endPad, End: endPad + p.cfg.Length}
	along := dev.End + endPad
	across := band + 2*previewGap

	// line is the axis line's position across the axis. Bands
	// grow away from it, towards the far side of the canvas.
	var line float64
	var width, height float64
	if edge.IsHorizontal() {
		width, height = along, across
	} else {
		width, height = across, along
	}
	switch edge {
	case scale.Bottom, scale.Right:
		line = previewGap
	case scale.Top:
		line = height - previewGap
	case scale.Left:
		line = width - previewGap
	}
	pt := func(pos, cross float64) (x, y float64) {
		if edge.IsHorizontal() {
			return pos, cross
		}
		return cross, pos
	}
	out := func(by float64) float64 {
		st := scale.AxisState{Cursor: line}
		st.MoveCursor(by, edge)
		return st.Cursor
	}

	s := newSVGCanvas(w, width, height)
	s.setFill(color.White)
	s.rect(0, 0, width, height)
	s.fillPath()

	s.setStroke(color.Black)
	s.setLineWidth(1)
	x0, y0 := pt(dev.Start, line)
	x1, y1 := pt(dev.End, line)
	s.line(x0, y0, x1, y1)
	s.strokePath()

	// Tick marks, minor ones half length and grey.
	for _, kind := range []scale.TickKind{scale.Minor, scale.Major} {
		n := a.TickMarkOutside
		if kind == scale.Minor {
			n /= 2
			s.setStroke(color.Gray{0x80})
		} else {
			s.setStroke(color.Black)
		}
		for _, t := range p.ticks {
			if t.Kind != kind {
				continue
			}
			pos, err := a.ValueToDevice(t.Value, dev, edge)
			if err != nil {
				return err
			}
			x0, y0 := pt(pos, line)
			x1, y1 := pt(pos, out(n))
			s.line(x0, y0, x1, y1)
		}
		s.strokePath()
	}
	s.setStroke(nil)

	// Tick labels start past the tick mark and the inset on the
	// axis side of the label.
	s.fontSize = p.cfg.FontSize
	if s.fontSize == 0 {
		s.fontSize = basicFontSize
	}
	s.setFill(color.Black)
	near := a.LabelInsets.Top
	switch edge {
	case scale.Top:
		near = a.LabelInsets.Bottom
	case scale.Left:
		near = a.LabelInsets.Right
	case scale.Right:
		near = a.LabelInsets.Left
	}
	for _, t := range p.ticks {
		if t.Label == "" {
			continue
		}
		pos, err := a.ValueToDevice(t.Value, dev, edge)
		if err != nil {
			return err
		}
		x, y := pt(pos, out(a.TickMarkOutside+near))
		s.text(x, y, t.TextAnchor, t.Angle, t.Label)
	}

	if a.Label != "" {
		st := a.Layout(line, p.ticks, edge, p.m)
		x, y := pt((dev.Start+dev.End)/2, st.Cursor)
		switch edge {
		case scale.Bottom:
			s.text(x, y, scale.BottomCenter, 0, a.Label)
		case scale.Top:
			s.text(x, y, scale.TopCenter, 0, a.Label)
		case scale.Left:
			s.text(x, y, scale.TopCenter, -math.Pi/2, a.Label)
		case scale.Right:
			s.text(x, y, scale.TopCenter, math.Pi/2, a.Label)
		}
	}
	return s.Done()
}
