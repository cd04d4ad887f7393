// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"math"
	"strconv"

	"golang.org/x/xerrors"
)

// MaxOctaves is the largest octave count a Fractal accepts.
const MaxOctaves = 128

// A Mode selects how a Fractal combines octaves.
type Mode uint8

const (
	// FBM sums signed octaves (fractal Brownian motion).
	FBM Mode = iota
	// Turbulence sums the absolute value of each octave, so the result
	// lies in [0, 1].
	Turbulence
)

var modeNames = [...]string{
	FBM:        "fbm",
	Turbulence: "turbulence",
}

func (m Mode) valid() bool { return int(m) < len(modeNames) }

func (m Mode) String() string {
	if !m.valid() {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// FractalParams configures a Fractal.
//
// Octave k is sampled at the point scaled by Lacunarity^k and weighted by
// Persistence^k. A Persistence or Lacunarity of zero is accepted: every
// octave after the first then contributes nothing, or samples the origin.
type FractalParams struct {
	Octaves     int
	Persistence float32
	Lacunarity  float32
	Mode        Mode
}

// DefaultFractalParams returns four octaves of FBM, each at twice the
// frequency and half the amplitude of the last.
func DefaultFractalParams() FractalParams {
	return FractalParams{Octaves: 4, Persistence: 0.5, Lacunarity: 2, Mode: FBM}
}

func (p FractalParams) validate() error {
	switch {
	case p.Octaves < 1 || p.Octaves > MaxOctaves:
		return xerrors.Errorf("octaves %d not in [1, %d]: %w", p.Octaves, MaxOctaves, ErrInvalidConfiguration)
	case !finite(p.Persistence):
		return xerrors.Errorf("persistence %v: %w", p.Persistence, ErrInvalidConfiguration)
	case !finite(p.Lacunarity):
		return xerrors.Errorf("lacunarity %v: %w", p.Lacunarity, ErrInvalidConfiguration)
	case !p.Mode.valid():
		return xerrors.Errorf("mode %v: %w", p.Mode, ErrInvalidConfiguration)
	}
	return nil
}

// A Fractal sums several octaves of a Generator. Like the Generator, it is
// immutable and safe for concurrent use.
type Fractal struct {
	gen    *Generator
	params FractalParams

	// Per-octave frequency and amplitude, and the sum of |amplitude|.
	freq  []float32
	amp   []float64
	total float64
}

// NewFractal returns a Fractal over g. It fails with
// ErrInvalidConfiguration if g is nil or p is out of range.
func NewFractal(g *Generator, p FractalParams) (*Fractal, error) {
	if g == nil {
		return nil, xerrors.Errorf("noise: NewFractal: nil generator: %w", ErrInvalidConfiguration)
	}
	if err := p.validate(); err != nil {
		return nil, xerrors.Errorf("noise: NewFractal: %w", err)
	}
	f := &Fractal{
		gen:    g,
		params: p,
		freq:   make([]float32, p.Octaves),
		amp:    make([]float64, p.Octaves),
	}
	freq, amp := float32(1), float64(1)
	for i := range f.freq {
		f.freq[i], f.amp[i] = freq, amp
		f.total += math.Abs(amp)
		freq *= p.Lacunarity
		amp *= float64(p.Persistence)
	}
	if math.IsInf(f.total, 0) {
		return nil, xerrors.Errorf("noise: NewFractal: amplitude overflows after %d octaves: %w", p.Octaves, ErrInvalidConfiguration)
	}
	return f, nil
}

// Params returns the parameters f was built with.
func (f *Fractal) Params() FractalParams { return f.params }

// Generator returns the base generator.
func (f *Fractal) Generator() *Generator { return f.gen }

// Get returns the fractal value at p, normalized by the total amplitude so
// that it stays in [-1, 1]. With one octave it equals the base generator.
// It fails like Generator.Get, and with ErrInvalidInput if a scaled
// coordinate overflows float32.
func (f *Fractal) Get(p []float32) (float32, error) {
	if err := f.gen.check(p); err != nil {
		return 0, xerrors.Errorf("noise: Fractal.Get: %w", err)
	}
	var scaled [MaxDimensions]float32
	q := scaled[:len(p)]
	var sum float64
	for o, freq := range f.freq {
		for i, x := range p {
			q[i] = x * freq
			if !finite(q[i]) {
				return 0, xerrors.Errorf("noise: Fractal.Get: coordinate %d overflows at octave %d: %w", i, o, ErrInvalidInput)
			}
		}
		v := float64(f.gen.eval(q))
		if f.params.Mode == Turbulence {
			v = math.Abs(v)
		}
		sum += v * f.amp[o]
	}
	return float32(sum / f.total), nil
}

// FBM is shorthand for a one-off FBM Fractal over g; p.Mode is ignored.
// Build a Fractal once when sampling many points.
func (g *Generator) FBM(point []float32, p FractalParams) (float32, error) {
	p.Mode = FBM
	return g.fractal(point, p)
}

// Turbulence is shorthand for a one-off Turbulence Fractal over g;
// p.Mode is ignored.
func (g *Generator) Turbulence(point []float32, p FractalParams) (float32, error) {
	p.Mode = Turbulence
	return g.fractal(point, p)
}

func (g *Generator) fractal(point []float32, p FractalParams) (float32, error) {
	f, err := NewFractal(g, p)
	if err != nil {
		return 0, err
	}
	return f.Get(point)
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
