// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"strings"
)

// A RangeType restricts the sign of automatically computed ranges.
type RangeType int

const (
	Full RangeType = iota
	Positive
	Negative
)

var rangeTypeNames = [...]string{"full", "positive", "negative"}

func (t RangeType) String() string {
	if t < 0 || int(t) >= len(rangeTypeNames) {
		return fmt.Sprintf("RangeType(%d)", int(t))
	}
	return rangeTypeNames[t]
}

// UnmarshalText parses a range type name, ignoring case.
func (t *RangeType) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range rangeTypeNames {
		if s == n {
			*t = RangeType(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown range type %q", ErrConfiguration, s)
}

func (t RangeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// clamp forces lower and upper to the sign t allows.
func (t RangeType) clamp(lower, upper float64) (float64, float64) {
	switch t {
	case Positive:
		return max(0, lower), max(0, upper)
	case Negative:
		return min(0, lower), min(0, upper)
	}
	return lower, upper
}

// Options configures auto-ranging and tick generation for an axis.
type Options struct {
	// IncludeZero widens auto ranges to contain zero.
	IncludeZero bool `toml:"include_zero" yaml:"include_zero"`

	// StickyZero stops margins from pushing a bound across zero.
	StickyZero bool `toml:"sticky_zero" yaml:"sticky_zero"`

	RangeType RangeType `toml:"range_type" yaml:"range_type"`

	// LowerMargin and UpperMargin pad auto ranges by a fraction of
	// the data length (of decades, for log scales).
	LowerMargin float64 `toml:"lower_margin" yaml:"lower_margin"`
	UpperMargin float64 `toml:"upper_margin" yaml:"upper_margin"`

	// MinimumSize is the smallest length an auto range may have.
	MinimumSize float64 `toml:"minimum_size" yaml:"minimum_size"`

	// FixedSize, if > 0, makes auto ranges exactly this long,
	// ending at the data maximum.
	FixedSize float64 `toml:"fixed_size" yaml:"fixed_size"`

	// DefaultRange is used when there is no data.
	DefaultRange Range `toml:"default_range" yaml:"default_range"`

	// MinorTickCount, if > 0, overrides the tick unit's count of
	// minor intervals per major interval.
	MinorTickCount int `toml:"minor_tick_count" yaml:"minor_tick_count"`

	// MaxTickCount bounds the number of major ticks a linear scale
	// will generate. Beyond it, no ticks are generated at all.
	MaxTickCount int `toml:"max_tick_count" yaml:"max_tick_count"`

	// LabelFormatOverride, if set, formats every major tick label
	// in place of the tick unit's formatter.
	LabelFormatOverride LabelFormatter `toml:"-" yaml:"-"`

	// SmallLogThreshold is the smallest positive value a log
	// scale will show, and the slack used when comparing ticks to
	// the range bounds. A LogScale's own Threshold, if larger,
	// takes precedence.
	SmallLogThreshold float64 `toml:"small_log_threshold" yaml:"small_log_threshold"`

	// AllowNegativeLog lets a log scale show zero and negative
	// values through a sign-preserving transform, as does
	// LogScale.AllowNegative.
	AllowNegativeLog bool `toml:"allow_negative_log" yaml:"allow_negative_log"`

	// StrictValues makes log auto-ranging fail on non-positive
	// data when AllowNegativeLog is false.
	StrictValues bool `toml:"strict_values" yaml:"strict_values"`

	// AutoRangeNextLog snaps log auto ranges out to whole decades.
	AutoRangeNextLog bool `toml:"auto_range_next_log" yaml:"auto_range_next_log"`

	// ExpLabels labels log ticks in scientific notation.
	ExpLabels bool `toml:"exp_labels" yaml:"exp_labels"`

	// Log10Labels labels decade ticks as powers of ten, "10^3".
	Log10Labels bool `toml:"log10_labels" yaml:"log10_labels"`
}

// DefaultOptions returns the options a new axis starts with.
func DefaultOptions() Options {
	return Options{
		IncludeZero:       true,
		StickyZero:        true,
		RangeType:         Full,
		LowerMargin:       0.05,
		UpperMargin:       0.05,
		MinimumSize:       1e-8,
		DefaultRange:      Range{0, 1},
		MaxTickCount:      500,
		SmallLogThreshold: 1e-100,
		StrictValues:      true,
	}
}

func (o *Options) smallLog() float64 {
	if o.SmallLogThreshold > 0 {
		return o.SmallLogThreshold
	}
	return 1e-100
}

func (o *Options) maxTicks() int {
	if o.MaxTickCount > 0 {
		return o.MaxTickCount
	}
	return 500
}
