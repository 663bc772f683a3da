// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axisconf loads axis settings from TOML or YAML files.
//
// A file holds the axis layout at the top level and scale.Options in
// an "options" table. Settings a file omits keep their defaults.
// For example:
//
//	log = true
//	edge = "left"
//	format = "%gms"
//
//	[options]
//	auto_range_next_log = true
//	upper_margin = 0.1
package axisconf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-axis/scale"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is one axis' settings.
type Config struct {
	// Log selects a logarithmic scale.
	Log bool `toml:"log" yaml:"log"`

	Edge scale.Edge `toml:"edge" yaml:"edge"`

	// Length is the device length of the axis.
	Length float64 `toml:"length" yaml:"length"`

	// FontSize is the label size in points. Zero measures labels
	// in the 7x13 bitmap font.
	FontSize float64 `toml:"font_size" yaml:"font_size"`

	// Format, if set, is a printf format for every tick label.
	Format string `toml:"format" yaml:"format"`

	// TickUnits is "standard" or "integer".
	TickUnits string `toml:"tick_units" yaml:"tick_units"`

	Inverted       bool   `toml:"inverted" yaml:"inverted"`
	VerticalLabels bool   `toml:"vertical_labels" yaml:"vertical_labels"`
	Label          string `toml:"label" yaml:"label"`

	Options scale.Options `toml:"options" yaml:"options"`
}

// Default returns the settings used when there is no file.
func Default() Config {
	return Config{
		Length:    600,
		TickUnits: "standard",
		Options:   scale.DefaultOptions(),
	}
}

// Load reads the file at path, choosing the format by extension.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var format string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		format = "toml"
	case ".yaml", ".yml":
		format = "yaml"
	default:
		return Config{}, fmt.Errorf("%w: %s: unknown config file type %q", scale.ErrConfiguration, path, ext)
	}
	c, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads settings in format ("toml" or "yaml") from r on top
// of the defaults. Unknown keys are errors.
func Decode(r io.Reader, format string) (Config, error) {
	c := Default()
	var err error
	switch format {
	case "toml":
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&c)
	case "yaml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&c)
		if err == io.EOF {
			// Empty document.
			err = nil
		}
	default:
		return Config{}, fmt.Errorf("%w: unknown config format %q", scale.ErrConfiguration, format)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", scale.ErrConfiguration, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks settings that have no meaningful value.
func (c *Config) Validate() error {
	o := &c.Options
	switch {
	case c.Length <= 0:
		return fmt.Errorf("%w: length %v must be positive", scale.ErrConfiguration, c.Length)
	case c.FontSize < 0:
		return fmt.Errorf("%w: font size %v is negative", scale.ErrConfiguration, c.FontSize)
	case o.LowerMargin < 0 || o.UpperMargin < 0:
		return fmt.Errorf("%w: negative margin", scale.ErrConfiguration)
	case o.MinimumSize < 0 || o.FixedSize < 0:
		return fmt.Errorf("%w: negative minimum or fixed size", scale.ErrConfiguration)
	case o.MinorTickCount < 0:
		return fmt.Errorf("%w: negative minor tick count", scale.ErrConfiguration)
	}
	if _, err := scale.NewRange(o.DefaultRange.Lower, o.DefaultRange.Upper); err != nil {
		return fmt.Errorf("%w: default range: %w", scale.ErrConfiguration, err)
	}
	if _, err := c.units(); err != nil {
		return err
	}
	return nil
}

func (c *Config) units() (*scale.TickUnits, error) {
	switch strings.ToLower(c.TickUnits) {
	case "", "standard":
		return scale.StandardTickUnits(), nil
	case "integer":
		return scale.IntegerTickUnits(), nil
	}
	return nil, fmt.Errorf("%w: unknown tick units %q", scale.ErrConfiguration, c.TickUnits)
}

// Axis returns a new axis with c's settings.
func (c *Config) Axis() (*scale.Axis, error) {
	units, err := c.units()
	if err != nil {
		return nil, err
	}
	a := scale.NewAxis(c.Options.Scale(c.Log))
	a.Options = c.Options
	if c.Format != "" {
		a.Options.LabelFormatOverride = scale.PrintfFormat(c.Format)
	}
	a.Units = units
	a.Unit = units.Ceiling(a.Unit.Size)
	a.Inverted = c.Inverted
	a.VerticalLabels = c.VerticalLabels
	a.Label = c.Label
	if err := a.SetRange(c.Options.DefaultRange); err != nil {
		return nil, err
	}
	return a, nil
}

// Measurer returns the label measurer for c's font size.
func (c *Config) Measurer() (scale.Measurer, error) {
	if c.FontSize == 0 {
		return scale.BasicMeasurer(), nil
	}
	return scale.NewFontMeasurer(c.FontSize)
}
