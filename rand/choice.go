// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"math"

	"golang.org/x/xerrors"
)

// Weighted pairs an item with its relative weight for Choose.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// WeightedIndex returns an index into weights, chosen with probability
// proportional to its weight. It consumes one word.
//
// It fails with ErrInvalidInput if weights is empty, sums to zero, or
// holds a negative, NaN or infinite weight.
func (r *Random) WeightedIndex(weights []float64) (int, error) {
	i, err := r.pick(len(weights), func(i int) float64 { return weights[i] })
	if err != nil {
		return 0, xerrors.Errorf("rand: WeightedIndex: %w", err)
	}
	return i, nil
}

// Choose returns one item, chosen with probability proportional to its
// weight. It fails like WeightedIndex.
func Choose[T any](r *Random, items []Weighted[T]) (T, error) {
	i, err := r.pick(len(items), func(i int) float64 { return items[i].Weight })
	if err != nil {
		var zero T
		return zero, xerrors.Errorf("rand: Choose: %w", err)
	}
	return items[i].Item, nil
}

func (r *Random) pick(n int, weight func(int) float64) (int, error) {
	if n == 0 {
		return 0, xerrors.Errorf("no items: %w", ErrInvalidInput)
	}
	var total float64
	for i := 0; i < n; i++ {
		w := weight(i)
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, xerrors.Errorf("weight %d is %v: %w", i, w, ErrInvalidInput)
		}
		total += w
	}
	if total == 0 {
		return 0, xerrors.Errorf("all weights are zero: %w", ErrInvalidInput)
	}
	if math.IsInf(total, 0) {
		return 0, xerrors.Errorf("weights overflow: %w", ErrInvalidInput)
	}

	x := r.Float64() * total
	last := -1
	for i := 0; i < n; i++ {
		w := weight(i)
		if w == 0 {
			continue
		}
		if x < w {
			return i, nil
		}
		x -= w
		last = i
	}
	// Rounding, or a legacy-mode draw of exactly 1, ran past the end.
	return last, nil
}

// Shuffle permutes n elements with the Fisher-Yates algorithm, using r as
// its only entropy source. swap exchanges the elements at i and j.
// It fails with ErrInvalidInput if n < 0.
func (r *Random) Shuffle(n int, swap func(i, j int)) error {
	if n < 0 {
		return xerrors.Errorf("rand: Shuffle(%d): %w", n, ErrInvalidInput)
	}
	for i := n - 1; i > 0; i-- {
		j := int(r.uintn(uint64(i) + 1))
		swap(i, j)
	}
	return nil
}

// ShuffleSlice permutes s in place. It draws exactly as Shuffle does.
func ShuffleSlice[T any](r *Random, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := int(r.uintn(uint64(i) + 1))
		s[i], s[j] = s[j], s[i]
	}
}
