// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aclements/go-axis/scale"
	"github.com/muesli/termenv"
)

// newOutput returns a styled writer for w. Styles are dropped when w
// is not a terminal.
func newOutput(w io.Writer) *termenv.Output {
	return termenv.NewOutput(w)
}

// writeTable prints the axis range, the tick unit and one row per
// tick with its device coordinate. Major ticks are bold.
func writeTable(out *termenv.Output, p *plan) error {
	a := p.axis
	kind := "linear"
	if s, ok := a.Scale.(*scale.LogScale); ok {
		kind = "log"
		if s.SmallLog(a.Range()) {
			kind = "small log"
		}
	}
	header := out.String(fmt.Sprintf("%s axis %v along %v", kind, a.Range(), p.cfg.Edge)).Underline()
	if _, err := fmt.Fprintln(out, header); err != nil {
		return err
	}
	if kind == "linear" {
		fmt.Fprintf(out, "unit %g, %d minor intervals\n", a.Unit.Size, a.MinorCount())
	}

	// Styling escapes would break tabwriter's column widths, so
	// rows are padded first and styled afterwards.
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "kind\tvalue\tdevice\tlabel\n")
	for _, t := range p.ticks {
		d, err := a.ValueToDevice(t.Value, p.dev, p.cfg.Edge)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%v\t%s\t%s\t%s\n", t.Kind, strconv.FormatFloat(t.Value, 'g', -1, 64), strconv.FormatFloat(d, 'f', 2, 64), t.Label)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	rows := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for i, row := range rows {
		st := out.String(row)
		if i > 0 && p.ticks[i-1].Kind == scale.Major {
			st = st.Bold()
		}
		if _, err := fmt.Fprintln(out, st); err != nil {
			return err
		}
	}
	return nil
}
