// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"math"

	"golang.org/x/xerrors"

	"golang.org/x/exp/procgen/rand"
)

const (
	tableSize = 256
	tableMask = tableSize - 1
)

// A PermutationTable is a shuffled permutation of 0..255, optionally with
// one random unit gradient per entry. It is built once from a Random and
// never changes afterwards.
type PermutationTable struct {
	perm [tableSize]uint8

	// gradDims is the length of each gradient, or 0 if the table has none.
	gradDims int
	grad     [tableSize][MaxDimensions]float32
}

// NewPermutationTable shuffles 0..255 with r and, if gradientDims is
// positive, draws a unit gradient of that many components for every entry.
func NewPermutationTable(r *rand.Random, gradientDims int) (*PermutationTable, error) {
	if r == nil {
		return nil, xerrors.Errorf("noise: NewPermutationTable: nil Random: %w", ErrInvalidConfiguration)
	}
	if gradientDims < 0 || gradientDims > MaxDimensions {
		return nil, xerrors.Errorf("noise: NewPermutationTable(%d): %w", gradientDims, ErrInvalidConfiguration)
	}
	t := &PermutationTable{gradDims: gradientDims}
	for i := range t.perm {
		t.perm[i] = uint8(i)
	}
	rand.ShuffleSlice(r, t.perm[:])

	for i := range t.grad {
		g := t.grad[i][:gradientDims]
		var mag float32
		for j := range g {
			v, err := r.Float32Range(-0.5, 0.5)
			if err != nil {
				return nil, err
			}
			g[j] = v
			mag += v * v
		}
		if mag > 0 {
			inv := float32(1 / math.Sqrt(float64(mag)))
			for j := range g {
				g[j] *= inv
			}
		}
	}
	return t, nil
}

// Index returns the permuted value at i. Any i is accepted; only its low
// eight bits are used.
func (t *PermutationTable) Index(i int) int { return int(t.perm[i&tableMask]) }

// Gradient returns a copy of the gradient at i, masked like Index. It is
// empty if the table was built without gradients.
func (t *PermutationTable) Gradient(i int) []float32 {
	return append([]float32(nil), t.grad[i&tableMask][:t.gradDims]...)
}

// GradientDimensions reports the length of each gradient.
func (t *PermutationTable) GradientDimensions() int { return t.gradDims }

func (t *PermutationTable) hash(i int32) int32 { return int32(t.perm[i&tableMask]) }
