// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// A Measurer reports the device-space extent of a rendered label.
type Measurer interface {
	Measure(label string) (width, height float64)
}

// FaceMeasurer measures labels set in a font face.
//
// A FaceMeasurer is only as safe for concurrent use as its Face;
// truetype faces cache glyphs and are not.
type FaceMeasurer struct {
	Face font.Face
}

func (m FaceMeasurer) Measure(label string) (width, height float64) {
	return fromFixed(font.MeasureString(m.Face, label)), fromFixed(m.Face.Metrics().Height)
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// BasicMeasurer measures labels in the fixed 7x13 bitmap font. Its
// results do not depend on any font file.
func BasicMeasurer() FaceMeasurer {
	return FaceMeasurer{basicfont.Face7x13}
}

// NewFontMeasurer returns a measurer for the Go Regular font at the
// given point size, at 72 DPI so points equal device units.
func NewFontMeasurer(size float64) (FaceMeasurer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return FaceMeasurer{}, fmt.Errorf("parsing Go Regular: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
	return FaceMeasurer{face}, nil
}

// Insets is padding around tick labels in device units.
type Insets struct {
	Top, Left, Bottom, Right float64
}
