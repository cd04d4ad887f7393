// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"strconv"

	"golang.org/x/xerrors"
)

// FloatMode selects how a backend turns a 32-bit word into a float.
type FloatMode uint8

const (
	// FloatUniform yields evenly spaced values in [0, 1): 24 bits of the
	// word for a float32 and all 32 bits for a float64.
	FloatUniform FloatMode = iota

	// FloatLegacy multiplies the word by 1/0xffffffff.
	// The float32 result is biased and can be exactly 1.0.
	FloatLegacy
)

var floatModeNames = [...]string{
	FloatUniform: "uniform",
	FloatLegacy:  "legacy",
}

func (m FloatMode) valid() bool { return int(m) < len(floatModeNames) }

func (m FloatMode) String() string {
	if !m.valid() {
		return "FloatMode(" + strconv.Itoa(int(m)) + ")"
	}
	return floatModeNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m FloatMode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, xerrors.Errorf("rand: marshal %v: %w", m, ErrInvalidConfiguration)
	}
	return []byte(floatModeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *FloatMode) UnmarshalText(text []byte) error {
	for i, name := range floatModeNames {
		if string(text) == name {
			*m = FloatMode(i)
			return nil
		}
	}
	return xerrors.Errorf("rand: unknown float mode %q: %w", text, ErrSerialization)
}

const (
	// 1/0xffffffff rounded to float32, i.e. exactly 2^-32.
	legacyDiv32 float32 = 1.0 / float32(0xffffffff)
	legacyDiv64 float64 = 1.0 / float64(0xffffffff)

	mantissa24 = 1 << 24
	word32     = 1 << 32
)

func float32From(w uint32, mode FloatMode) float32 {
	if mode == FloatLegacy {
		return float32(w) * legacyDiv32
	}
	// A float32 mantissa holds 24 bits, so this grid is exact and uniform.
	return float32(w%mantissa24) / mantissa24
}

// float64From derives a float64 the way the CMWC and PCG backends do.
// MT19937 differs in legacy mode; see MT19937.Float64.
func float64From(w uint32, mode FloatMode) float64 {
	if mode == FloatLegacy {
		return float64(w) * legacyDiv64
	}
	return float64(w) / word32
}
