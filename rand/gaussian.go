// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"math"

	"golang.org/x/xerrors"
)

// normal returns a standard normal deviate using Marsaglia's polar form of
// the Box-Muller transform. Each accepted pair yields two deviates; the
// second is kept for the next call and is part of the serialized state.
func (r *Random) normal() float64 {
	if r.hasSpare {
		r.hasSpare = false
		return r.spare
	}
	var x1, x2, w float64
	for {
		x1 = r.Float64()*2 - 1
		x2 = r.Float64()*2 - 1
		w = x1*x1 + x2*x2
		if w > 0 && w < 1 {
			break
		}
	}
	w = math.Sqrt(-2 * math.Log(w) / w)
	r.spare = x2 * w
	r.hasSpare = true
	return x1 * w
}

// Gaussian returns a normally distributed value. It fails with
// ErrInvalidRange if mean or stdDev is not finite or stdDev is negative.
func (r *Random) Gaussian(mean, stdDev float64) (float64, error) {
	if err := checkNormal(mean, stdDev); err != nil {
		return 0, xerrors.Errorf("rand: Gaussian(%v, %v): %w", mean, stdDev, err)
	}
	return mean + r.normal()*stdDev, nil
}

// GaussianInverse returns a normal deviate moved 3 standard deviations
// toward the tails, which makes values near the mean the least likely.
func (r *Random) GaussianInverse(mean, stdDev float64) (float64, error) {
	if err := checkNormal(mean, stdDev); err != nil {
		return 0, xerrors.Errorf("rand: GaussianInverse(%v, %v): %w", mean, stdDev, err)
	}
	return r.inverse(mean, stdDev), nil
}

func (r *Random) inverse(mean, stdDev float64) float64 {
	v := mean + r.normal()*stdDev
	if v >= mean {
		return v - 3*stdDev
	}
	return v + 3*stdDev
}

// GaussianRange returns a normally distributed value centered in [lo, hi]
// with a standard deviation of (hi-lo)/6, clamped to [lo, hi].
func (r *Random) GaussianRange(lo, hi float64) (float64, error) {
	if err := checkRange(lo, hi); err != nil {
		return 0, xerrors.Errorf("rand: GaussianRange(%v, %v): %w", lo, hi, err)
	}
	// Three-sigma rule: nearly all samples fall inside before clamping.
	v := (lo+hi)/2 + r.normal()*(hi-lo)/6
	return clamp(v, lo, hi), nil
}

// GaussianRangeInverse is GaussianRange with the inverse distribution.
func (r *Random) GaussianRangeInverse(lo, hi float64) (float64, error) {
	if err := checkRange(lo, hi); err != nil {
		return 0, xerrors.Errorf("rand: GaussianRangeInverse(%v, %v): %w", lo, hi, err)
	}
	return clamp(r.inverse((lo+hi)/2, (hi-lo)/6), lo, hi), nil
}

// GaussianRangeMean returns a normally distributed value around mean,
// with a standard deviation of a third of the larger distance to a bound,
// clamped to [lo, hi]. It fails with ErrInvalidRange unless
// lo <= mean <= hi.
func (r *Random) GaussianRangeMean(lo, hi, mean float64) (float64, error) {
	stdDev, err := meanStdDev(lo, hi, mean)
	if err != nil {
		return 0, xerrors.Errorf("rand: GaussianRangeMean(%v, %v, %v): %w", lo, hi, mean, err)
	}
	return clamp(mean+r.normal()*stdDev, lo, hi), nil
}

// GaussianRangeMeanInverse is GaussianRangeMean with the inverse
// distribution.
func (r *Random) GaussianRangeMeanInverse(lo, hi, mean float64) (float64, error) {
	stdDev, err := meanStdDev(lo, hi, mean)
	if err != nil {
		return 0, xerrors.Errorf("rand: GaussianRangeMeanInverse(%v, %v, %v): %w", lo, hi, mean, err)
	}
	return clamp(r.inverse(mean, stdDev), lo, hi), nil
}

// GaussianIntRange rounds a GaussianRange sample to the nearest integer.
func (r *Random) GaussianIntRange(lo, hi int32) (int32, error) {
	if lo > hi {
		return 0, xerrors.Errorf("rand: GaussianIntRange(%d, %d): %w", lo, hi, ErrInvalidRange)
	}
	v, err := r.GaussianRange(float64(lo), float64(hi))
	if err != nil {
		return 0, err
	}
	return int32(clamp(math.Round(v), float64(lo), float64(hi))), nil
}

func checkNormal(mean, stdDev float64) error {
	if !finite(mean) || !finite(stdDev) || stdDev < 0 {
		return ErrInvalidRange
	}
	return nil
}

func checkRange(lo, hi float64) error {
	if !finite(lo) || !finite(hi) || lo > hi {
		return ErrInvalidRange
	}
	return nil
}

func meanStdDev(lo, hi, mean float64) (float64, error) {
	if err := checkRange(lo, hi); err != nil {
		return 0, err
	}
	if !(mean >= lo && mean <= hi) {
		return 0, ErrInvalidRange
	}
	return math.Max(hi-mean, mean-lo) / 3, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
