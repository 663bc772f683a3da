// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axisticks computes an axis range and its ticks for a data
// sample.
//
// Data is read as numbers separated by white space or commas, from
// the --data file or from standard input, and the axis range is
// fitted to it. --lower and --upper set the range directly instead.
//
//	axisticks ticks --data latencies.txt --log
//	seq 1 37 | axisticks svg --edge left -o axis.svg
//
// The ticks subcommand prints the tick table. The svg subcommand
// renders a preview of the axis.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aclements/go-axis/internal/axisconf"
	"github.com/aclements/go-axis/scale"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type flags struct {
	data, config string
	lower, upper float64
	edge         edgeValue
	length       float64
	fontSize     float64
	log          bool
	verbose      bool
}

func (f *flags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.data, "data", "", "read data from `file` (default stdin)")
	fs.StringVar(&f.config, "config", "", "load axis settings from a .toml or .yaml `file`")
	fs.Float64Var(&f.lower, "lower", 0, "set the range lower bound instead of fitting data")
	fs.Float64Var(&f.upper, "upper", 0, "set the range upper bound instead of fitting data")
	fs.Var(&f.edge, "edge", "draw the axis along the `edge` (bottom, top, left, right)")
	fs.Float64Var(&f.length, "length", 0, "axis length in device units (default 600)")
	fs.Float64Var(&f.fontSize, "font-size", 0, "measure labels in Go Regular at this `size` (default 7x13 bitmap)")
	fs.BoolVar(&f.log, "log", false, "use a logarithmic scale")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log tick selection to stderr")
}

// edgeValue is a pflag.Value for scale.Edge.
type edgeValue struct{ scale.Edge }

func (e *edgeValue) Set(s string) error { return e.UnmarshalText([]byte(s)) }
func (e *edgeValue) Type() string       { return "edge" }

var _ pflag.Value = (*edgeValue)(nil)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := new(flags)
	root := &cobra.Command{
		Use:          "axisticks",
		Short:        "Compute axis ranges and ticks for a data sample",
		SilenceUsage: true,
	}
	f.register(root.PersistentFlags())
	root.AddCommand(newTicksCmd(f), newSVGCmd(f))
	return root
}

// A plan is an axis with its range and ticks computed.
type plan struct {
	cfg   axisconf.Config
	axis  *scale.Axis
	dev   scale.Interval
	m     scale.Measurer
	ticks []scale.Tick
	log   *slog.Logger
}

func newPlan(cmd *cobra.Command, f *flags) (*plan, error) {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg := axisconf.Default()
	if f.config != "" {
		var err error
		if cfg, err = axisconf.Load(f.config); err != nil {
			return nil, err
		}
	}
	fs := cmd.Flags()
	if fs.Changed("edge") {
		cfg.Edge = f.edge.Edge
	}
	if fs.Changed("length") {
		cfg.Length = f.length
	}
	if fs.Changed("font-size") {
		cfg.FontSize = f.fontSize
	}
	if fs.Changed("log") {
		cfg.Log = f.log
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a, err := cfg.Axis()
	if err != nil {
		return nil, err
	}
	a.Logger = logger

	switch lo, hi := fs.Changed("lower"), fs.Changed("upper"); {
	case lo && hi:
		r, err := scale.NewRange(f.lower, f.upper)
		if err != nil {
			return nil, err
		}
		if err := a.SetRange(r); err != nil {
			return nil, err
		}
	case lo || hi:
		return nil, fmt.Errorf("%w: --lower and --upper must be given together", scale.ErrConfiguration)
	default:
		in := cmd.InOrStdin()
		if f.data != "" {
			file, err := os.Open(f.data)
			if err != nil {
				return nil, err
			}
			defer file.Close()
			in = file
		}
		xs, err := readData(in)
		if err != nil {
			return nil, err
		}
		data := scale.DataRange(xs...)
		r, err := a.AutoRange(data)
		if err != nil {
			return nil, err
		}
		logger.Debug("auto range", "samples", len(xs), "data", data, "range", r)
	}

	m, err := cfg.Measurer()
	if err != nil {
		return nil, err
	}
	p := &plan{cfg: cfg, axis: a, dev: scale.Interval{Start: 0, End: cfg.Length}, m: m, log: logger}
	p.ticks = a.RefreshTicks(p.dev, cfg.Edge, m)
	if len(p.ticks) == 0 {
		logger.Warn("no ticks generated", "range", a.Range(), "max", a.Options.MaxTickCount)
	}
	return p, nil
}

func newTicksCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "ticks",
		Short: "Print the axis range and tick table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPlan(cmd, f)
			if err != nil {
				return err
			}
			return writeTable(newOutput(cmd.OutOrStdout()), p)
		},
	}
}

func newSVGCmd(f *flags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Render an SVG preview of the axis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPlan(cmd, f)
			if err != nil {
				return err
			}
			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			if err := drawAxis(w, p); err != nil {
				return err
			}
			if c, ok := w.(io.Closer); ok && out != "" {
				return c.Close()
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the SVG to `file` (default stdout)")
	return cmd
}
