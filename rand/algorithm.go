// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"strconv"

	"golang.org/x/xerrors"
)

// Algorithm identifies a bit generator backend.
type Algorithm uint8

const (
	// ComplementaryMultiplyWithCarry is Marsaglia's CMWC4096 generator.
	ComplementaryMultiplyWithCarry Algorithm = iota

	// MersenneTwister is the 32-bit MT19937 generator.
	MersenneTwister

	// PCG is the 64-bit PCG RXS M XS permuted congruential generator.
	PCG
)

// DefaultAlgorithm is used when no algorithm is chosen explicitly.
const DefaultAlgorithm = ComplementaryMultiplyWithCarry

var algorithmNames = [...]string{
	ComplementaryMultiplyWithCarry: "cmwc",
	MersenneTwister:                "mt19937",
	PCG:                            "pcg",
}

func (a Algorithm) valid() bool { return int(a) < len(algorithmNames) }

func (a Algorithm) String() string {
	if !a.valid() {
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
	return algorithmNames[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, xerrors.Errorf("rand: marshal %v: %w", a, ErrInvalidConfiguration)
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
	return xerrors.Errorf("rand: unknown algorithm %q: %w", text, ErrSerialization)
}
