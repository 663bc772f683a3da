// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-axis/scale"
)

// svgCanvas writes SVG paths and text. The first write error is
// kept and returned by Done.
type svgCanvas struct {
	w   io.Writer
	err error

	fill, stroke string
	lineWidth    string
	fontSize     float64

	path []string
}

func newSVGCanvas(w io.Writer, width, height float64) *svgCanvas {
	s := &svgCanvas{w: w}
	s.fprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%v\" height=\"%v\" font-family=\"sans-serif\">\n", svglen(width), svglen(height))
	return s
}

type svglen float64

func (v svglen) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func colorToCSS(c color.Color) string {
	cc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if cc.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", cc.R, cc.G, cc.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%f)", cc.R, cc.G, cc.B, float64(cc.A)/0xff)
}

func (s *svgCanvas) fprintf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *svgCanvas) setFill(c color.Color) {
	if c == nil {
		s.fill = ""
	} else {
		s.fill = "fill:" + colorToCSS(c)
	}
}

func (s *svgCanvas) setStroke(c color.Color) {
	if c == nil {
		s.stroke = ""
	} else {
		s.stroke = "stroke:" + colorToCSS(c)
	}
}

func (s *svgCanvas) setLineWidth(lw float64) {
	s.lineWidth = fmt.Sprintf("stroke-width:%v", svglen(lw))
}

func style(parts ...string) string {
	val := strings.Join(nonEmpty(parts), ";")
	if val == "" {
		return ""
	}
	return " style=\"" + val + "\""
}

func nonEmpty(parts []string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// line adds a segment from (x0, y0) to (x1, y1) to the current path.
func (s *svgCanvas) line(x0, y0, x1, y1 float64) {
	s.path = append(s.path, fmt.Sprintf("M%v %v", svglen(x0), svglen(y0)))
	switch {
	case x0 == x1:
		s.path = append(s.path, fmt.Sprintf("v%v", svglen(y1-y0)))
	case y0 == y1:
		s.path = append(s.path, fmt.Sprintf("h%v", svglen(x1-x0)))
	default:
		s.path = append(s.path, fmt.Sprintf("l%v %v", svglen(x1-x0), svglen(y1-y0)))
	}
}

func (s *svgCanvas) rect(x, y, w, h float64) {
	s.path = append(s.path, fmt.Sprintf("M%v %vh%vv%vh%vz", svglen(x), svglen(y), svglen(w), svglen(h), svglen(-w)))
}

func (s *svgCanvas) strokePath() {
	if len(s.path) > 0 {
		s.fprintf("<path d=\"%s\"%s/>\n", strings.Join(s.path, ""), style(s.stroke, s.lineWidth))
	}
	s.path = s.path[:0]
}

func (s *svgCanvas) fillPath() {
	if len(s.path) > 0 {
		s.fprintf("<path d=\"%s\"%s/>\n", strings.Join(s.path, ""), style(s.fill))
	}
	s.path = s.path[:0]
}

// text draws a label with its anchor point at (x, y), rotated by
// angle radians about that point.
func (s *svgCanvas) text(x, y float64, anchor scale.TextAnchor, angle float64, text string) {
	var astr, bstr string
	switch anchor {
	case scale.TopCenter:
		astr, bstr = "middle", "hanging"
	case scale.BottomCenter:
		astr, bstr = "middle", "alphabetic"
	case scale.CenterLeft:
		astr, bstr = "start", "middle"
	case scale.CenterRight:
		astr, bstr = "end", "middle"
	default:
		astr, bstr = "middle", "middle"
	}
	rstr := ""
	if angle != 0 {
		deg := angle * 180 / math.Pi
		rstr = fmt.Sprintf(" transform=\"rotate(%v,%v,%v)\"", svglen(deg), svglen(x), svglen(y))
	}
	fstr := ""
	if s.fontSize != 0 {
		fstr = fmt.Sprintf(" font-size=\"%v\"", svglen(s.fontSize))
	}
	s.fprintf("<text x=\"%v\" y=\"%v\" text-anchor=\"%s\" dominant-baseline=\"%s\"%s%s%s>", svglen(x), svglen(y), astr, bstr, rstr, fstr, style(s.fill))
	if s.err == nil {
		s.err = xml.EscapeText(s.w, []byte(text))
	}
	s.fprintf("</text>\n")
}

func (s *svgCanvas) Done() error {
	s.fprintf("</svg>\n")
	return s.err
}
