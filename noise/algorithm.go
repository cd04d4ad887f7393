// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"strconv"

	"golang.org/x/xerrors"
)

// An Algorithm selects the noise function a Generator evaluates.
type Algorithm uint8

const (
	// Perlin is gradient noise over a hypercubic lattice with random
	// unit gradients.
	Perlin Algorithm = iota
	// Simplex is gradient noise over a simplicial lattice with hashed
	// gradients. It is cheaper than Perlin in higher dimensions.
	Simplex
	// Wavelet is band-limited noise from a filtered 32x32x32 tile. It
	// supports at most three dimensions.
	Wavelet
	// OpenSimplex is Kurt Spencer's patent-free simplex variant.
	OpenSimplex
)

// DefaultAlgorithm is used when no algorithm is chosen.
const DefaultAlgorithm = Simplex

var algorithmNames = [...]string{
	Perlin:      "perlin",
	Simplex:     "simplex",
	Wavelet:     "wavelet",
	OpenSimplex: "opensimplex",
}

func (a Algorithm) valid() bool { return int(a) < len(algorithmNames) }

func (a Algorithm) String() string {
	if a.valid() {
		return algorithmNames[a]
	}
	return "Algorithm(" + strconv.Itoa(int(a)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, xerrors.Errorf("noise: marshal %v: %w", a, ErrSerialization)
	}
	return []byte(algorithmNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	for i, name := range algorithmNames {
		if string(text) == name {
			*a = Algorithm(i)
			return nil
		}
	}
	return xerrors.Errorf("noise: unknown algorithm %q: %w", text, ErrSerialization)
}
