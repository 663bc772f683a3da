// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadData(t *testing.T) {
	xs, err := readData(strings.NewReader("1 2,3\n# comment\n\n\t-4.5e1 , NaN\n"))
	require.NoError(t, err)
	require.Len(t, xs, 5)
	assert.Equal(t, []float64{1, 2, 3, -45}, xs[:4])
	assert.NotEqual(t, xs[4], xs[4], "NaN")

	_, err = readData(strings.NewReader("1\n2\nbanana\n"))
	assert.ErrorContains(t, err, "line 3")
}
