// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-axis/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTicksCommand(t *testing.T) {
	out, _, err := run(t, "", "ticks", "--lower", "0", "--upper", "100", "--length", "100")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "linear axis [0, 100] along bottom", lines[0])
	assert.Equal(t, "unit 50, 5 minor intervals", lines[1])
	assert.Equal(t, []string{"kind", "value", "device", "label"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"major", "0", "0.00", "0"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"minor", "10", "10.00"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"major", "100", "100.00", "100"}, strings.Fields(lines[len(lines)-1]))
}

func TestTicksFromData(t *testing.T) {
	out, stderr, err := run(t, "47.9 1 2\n-3.2\n", "ticks", "--verbose", "--edge", "left")
	require.NoError(t, err)
	assert.Contains(t, out, "linear axis [-3.2, 50.45")
	assert.Contains(t, out, "along left")
	assert.Contains(t, stderr, "auto range")
	assert.Contains(t, stderr, "selected tick unit")
}

func TestTicksLog(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(data, []byte("1\n1000\n"), 0666))
	conf := filepath.Join(dir, "axis.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("options:\n  lower_margin: 0\n  upper_margin: 0\n"), 0666))

	out, _, err := run(t, "", "ticks", "--log", "--data", data, "--config", conf)
	require.NoError(t, err)
	assert.Contains(t, out, "small log axis [1, 1000]")
	assert.Contains(t, out, "1,000")
}

func TestCommandErrors(t *testing.T) {
	_, _, err := run(t, "", "ticks", "--lower", "1")
	assert.ErrorIs(t, err, scale.ErrConfiguration)

	_, _, err = run(t, "", "ticks", "--lower", "2", "--upper", "1")
	assert.ErrorIs(t, err, scale.ErrInvalidRange)

	_, _, err = run(t, "-1 10", "ticks", "--log")
	assert.ErrorIs(t, err, scale.ErrConfiguration)

	_, _, err = run(t, "", "ticks", "--edge", "middle")
	assert.Error(t, err)

	_, _, err = run(t, "", "ticks", "--length", "0", "--lower", "0", "--upper", "1")
	assert.ErrorIs(t, err, scale.ErrConfiguration)
}

func TestSVGCommand(t *testing.T) {
	for _, edge := range []string{"bottom", "top", "left", "right"} {
		t.Run(edge, func(t *testing.T) {
			out, _, err := run(t, "", "svg", "--lower", "0", "--upper", "100", "--length", "300", "--edge", edge)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, "<svg "))
			assert.True(t, strings.HasSuffix(out, "</svg>\n"))
			assert.Contains(t, out, ">100</text>")
			assert.Contains(t, out, ">0</text>")
		})
	}

	dir := t.TempDir()
	conf := filepath.Join(dir, "axis.toml")
	require.NoError(t, os.WriteFile(conf, []byte("label = \"a < b\"\nvertical_labels = true\n"), 0666))
	path := filepath.Join(dir, "axis.svg")
	_, _, err := run(t, "", "svg", "--config", conf, "--lower", "0", "--upper", "1", "-o", path)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), ">a &lt; b</text>")
	assert.Contains(t, string(b), "rotate(-90,")
}
