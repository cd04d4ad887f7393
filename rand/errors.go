// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import "golang.org/x/xerrors"

// Errors returned by this package. Each failure is wrapped with the
// operation and its arguments; test for the kind with errors.Is.
var (
	// ErrInvalidRange is returned when a range query has low > high
	// or a bound that is not a number.
	ErrInvalidRange = xerrors.New("invalid range")

	// ErrInvalidProbability is returned when a probability lies outside [0, 1].
	ErrInvalidProbability = xerrors.New("invalid probability")

	// ErrInvalidInput is returned for empty or degenerate input, such as
	// a weighted choice whose weights are all zero.
	ErrInvalidInput = xerrors.New("invalid input")

	// ErrInvalidConfiguration is returned for unknown algorithms, float
	// modes or other construction parameters.
	ErrInvalidConfiguration = xerrors.New("invalid configuration")

	// ErrSerialization is returned when persisted state is corrupt,
	// truncated or written by an incompatible version.
	ErrSerialization = xerrors.New("serialization error")
)
