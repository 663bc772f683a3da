// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "errors"

var (
	// ErrInvalidRange is returned when a range is constructed with
	// its lower bound above its upper bound (or with a NaN bound).
	ErrInvalidRange = errors.New("invalid range")

	// ErrDegenerateRange is returned when a value is mapped
	// against a zero-length range or device interval.
	ErrDegenerateRange = errors.New("degenerate range")

	// ErrInvalidUnit is returned for a tick unit whose size is not
	// strictly positive.
	ErrInvalidUnit = errors.New("invalid tick unit")

	// ErrConfiguration is returned when the axis options are
	// inconsistent with the data, for example non-positive values
	// on a strict logarithmic axis.
	ErrConfiguration = errors.New("axis configuration error")
)
