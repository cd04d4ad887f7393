// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"golang.org/x/xerrors"

	"golang.org/x/exp/procgen/rand"
)

// ErrDimensionMismatch reports a point whose coordinate count differs from
// the generator's dimensionality, or a batch whose output slice does not
// match its input.
var ErrDimensionMismatch = xerrors.New("dimension mismatch")

// These are the rand package's errors, so errors.Is matches either name.
var (
	ErrInvalidConfiguration = rand.ErrInvalidConfiguration
	ErrInvalidInput         = rand.ErrInvalidInput
	ErrSerialization        = rand.ErrSerialization
)
