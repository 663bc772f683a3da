// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// A LabelFormatter turns a tick value into its label text.
type LabelFormatter interface {
	Format(v float64) string
}

// FormatFunc adapts an ordinary function to a LabelFormatter.
type FormatFunc func(v float64) string

func (f FormatFunc) Format(v float64) string { return f(v) }

// PrintfFormat formats values with fmt.Sprintf, for example "%g" or
// "%.1f ms".
type PrintfFormat string

func (f PrintfFormat) Format(v float64) string {
	return fmt.Sprintf(string(f), v)
}

// DecimalFormat formats values with a fixed number of fractional
// digits. If Grouping is set, the integer part is split into groups
// of thousands.
type DecimalFormat struct {
	Digits   int
	Grouping bool
}

var groupPrinter = sync.OnceValue(func() *message.Printer {
	return message.NewPrinter(language.English)
})

func (f DecimalFormat) Format(v float64) string {
	v = roundTo(v, f.Digits)
	if f.Grouping {
		return groupPrinter().Sprintf("%."+strconv.Itoa(f.Digits)+"f", v)
	}
	return strconv.FormatFloat(v, 'f', f.Digits, 64)
}

// roundTo rounds v to digits fractional digits and folds negative
// zero, so accumulated error like -2.7e-17 prints as "0".
func roundTo(v float64, digits int) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	if digits >= 0 && digits <= 15 {
		p := math.Pow10(digits)
		if r := math.Round(v*p) / p; !math.IsInf(r, 0) && !math.IsNaN(r) {
			v = r
		}
	}
	if v == 0 {
		return 0
	}
	return v
}

// ExpFormat formats values in compact scientific notation such as
// "1e3" or "2.5e-5".
type ExpFormat struct{}

func (ExpFormat) Format(v float64) string {
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign := ""
	switch exp[0] {
	case '-':
		sign = "-"
		exp = exp[1:]
	case '+':
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		return mant
	}
	return mant + "e" + sign + exp
}

// digitsFor returns the number of fractional digits needed to show
// multiples of size exactly.
func digitsFor(size float64) int {
	if size >= 1 {
		return 0
	}
	d := int(math.Ceil(-math.Log10(size) - 1e-9))
	// Catch sizes such as 0.25 whose mantissa needs more digits.
	for d < 17 && math.Abs(size*math.Pow10(d)-math.Round(size*math.Pow10(d))) > 1e-9 {
		d++
	}
	return d
}
