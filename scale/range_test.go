// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	r, err := NewRange(-1, 2)
	require.NoError(t, err)
	assert.Equal(t, Range{-1, 2}, r)
	assert.Equal(t, 3.0, r.Length())
	assert.Equal(t, 0.5, r.Central())

	_, err = NewRange(0, 0)
	assert.NoError(t, err, "zero-length ranges are legal")

	for _, bad := range [][2]float64{{2, 1}, {math.NaN(), 1}, {0, math.NaN()}} {
		_, err := NewRange(bad[0], bad[1])
		assert.Truef(t, errors.Is(err, ErrInvalidRange), "NewRange(%v, %v) = %v", bad[0], bad[1], err)
	}
	assert.Panics(t, func() { MustRange(1, 0) })
}

func TestRangeContains(t *testing.T) {
	r := MustRange(0, 10)
	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(-1e-12))
	assert.False(t, r.Contains(10.000001))
	assert.False(t, r.Contains(math.NaN()))
}

func TestRangeExpandToInclude(t *testing.T) {
	r := MustRange(0, 10)
	assert.Equal(t, Range{-5, 10}, r.ExpandToInclude(-5))
	assert.Equal(t, Range{0, 12}, r.ExpandToInclude(12))
	assert.Equal(t, r, r.ExpandToInclude(3))
	// The receiver is not modified.
	assert.Equal(t, Range{0, 10}, r)
}

func TestRangeHelpers(t *testing.T) {
	r := MustRange(0, 10)
	assert.Equal(t, Range{-1, 12}, r.Expand(0.1, 0.2))
	assert.Equal(t, Range{5, 5}, r.Expand(-0.75, -0.75))
	assert.Equal(t, Range{5, 15}, r.Shift(5))
	assert.Equal(t, 10.0, r.Constrain(11))
	assert.Equal(t, 0.0, r.Constrain(-3))
	assert.Equal(t, 4.0, r.Constrain(4))
	assert.Equal(t, "[0, 10]", r.String())
}

func TestDataRange(t *testing.T) {
	assert.Nil(t, DataRange())
	assert.Nil(t, DataRange(math.NaN(), math.NaN()))

	r := DataRange(3, -1, math.NaN(), 7, 2)
	require.NotNil(t, r)
	assert.Equal(t, Range{-1, 7}, *r)

	r = DataRange(4)
	require.NotNil(t, r)
	assert.Equal(t, Range{4, 4}, *r)
}

func TestCombine(t *testing.T) {
	a, b := &Range{0, 1}, &Range{-2, 0.5}
	assert.Nil(t, Combine(nil, nil))
	assert.Equal(t, a, Combine(a, nil))
	assert.Equal(t, b, Combine(nil, b))
	assert.Equal(t, &Range{-2, 1}, Combine(a, b))

	c := Combine(a, nil)
	c.Lower = 99
	assert.Equal(t, 0.0, a.Lower, "Combine must copy")
}
