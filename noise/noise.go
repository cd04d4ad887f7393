// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package noise implements coherent noise in one to four dimensions and
// fractal sums of it.
//
// A Generator is built once from a rand.Random, which it consumes to fill
// its tables, and is a pure function of the coordinates afterwards. It is
// never mutated by sampling, so a built Generator may be shared between
// goroutines. The Random used to build it is not retained.
package noise

import (
	"log/slog"
	"math"

	"github.com/ojrac/opensimplex-go"
	"golang.org/x/xerrors"

	"golang.org/x/exp/procgen/rand"
)

// MaxDimensions is the largest dimensionality a Generator supports.
const MaxDimensions = 4

// A Generator evaluates one noise algorithm at points of a fixed
// dimensionality.
type Generator struct {
	algo Algorithm
	dims int

	// Perlin and Simplex.
	table *PermutationTable
	// Wavelet.
	tile *waveletTile
	// OpenSimplex.
	seed int64
	osn  opensimplex.Noise32

	logger *slog.Logger
}

type config struct {
	logger *slog.Logger
}

// An Option configures a Generator at construction.
type Option func(*config)

// WithLogger sets the logger that receives construction events.
// By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// New builds a Generator for algo in dims dimensions, drawing its tables
// from r. r advances; the Generator keeps no reference to it.
//
// New fails with ErrInvalidConfiguration if dims is outside
// [1, MaxDimensions], if algo is unknown, if algo is Wavelet and dims
// exceeds 3, or if r is nil.
func New(algo Algorithm, dims int, r *rand.Random, opts ...Option) (*Generator, error) {
	switch {
	case !algo.valid():
		return nil, xerrors.Errorf("noise: New(%v, %d): unknown algorithm: %w", algo, dims, ErrInvalidConfiguration)
	case dims < 1 || dims > MaxDimensions:
		return nil, xerrors.Errorf("noise: New(%v, %d): dimensions must be in [1, %d]: %w", algo, dims, MaxDimensions, ErrInvalidConfiguration)
	case algo == Wavelet && dims > waveletMaxDimensions:
		return nil, xerrors.Errorf("noise: New(%v, %d): wavelet noise has at most %d dimensions: %w", algo, dims, waveletMaxDimensions, ErrInvalidConfiguration)
	case r == nil:
		return nil, xerrors.Errorf("noise: New(%v, %d): nil Random: %w", algo, dims, ErrInvalidConfiguration)
	}
	c := newConfig(opts)
	g := &Generator{algo: algo, dims: dims, logger: c.logger}

	var err error
	switch algo {
	case Perlin:
		g.table, err = NewPermutationTable(r, dims)
	case Simplex:
		g.table, err = NewPermutationTable(r, 0)
	case Wavelet:
		g.tile, err = newWaveletTile(r)
	case OpenSimplex:
		g.seed = int64(r.Uint64())
		g.osn = opensimplex.New32(g.seed)
	}
	if err != nil {
		return nil, xerrors.Errorf("noise: New(%v, %d): %w", algo, dims, err)
	}
	g.logger.Debug("built noise generator",
		slog.String("algorithm", algo.String()),
		slog.Int("dimensions", dims))
	return g, nil
}

// Algorithm reports the noise function g evaluates.
func (g *Generator) Algorithm() Algorithm { return g.algo }

// Dimensions reports how many coordinates g expects.
func (g *Generator) Dimensions() int { return g.dims }

// Table returns g's permutation table, or nil for algorithms that do not
// use one.
func (g *Generator) Table() *PermutationTable { return g.table }

// Get returns the noise value at p, in [-1, 1]. The same p always yields
// the same value.
//
// It fails with ErrDimensionMismatch if len(p) differs from Dimensions,
// and with ErrInvalidInput if a coordinate is NaN or infinite.
func (g *Generator) Get(p []float32) (float32, error) {
	if err := g.check(p); err != nil {
		return 0, xerrors.Errorf("noise: Get: %w", err)
	}
	return g.eval(p), nil
}

func (g *Generator) check(p []float32) error {
	if len(p) != g.dims {
		return xerrors.Errorf("%d coordinates for a %d-dimensional generator: %w", len(p), g.dims, ErrDimensionMismatch)
	}
	for i, v := range p {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return xerrors.Errorf("coordinate %d is %v: %w", i, v, ErrInvalidInput)
		}
	}
	return nil
}

// eval assumes p has been checked.
func (g *Generator) eval(p []float32) float32 {
	var v float32
	switch g.algo {
	case Perlin:
		v = g.perlin(p)
	case Simplex:
		v = g.simplex(p)
	case Wavelet:
		v = g.tile.eval(p)
	case OpenSimplex:
		v = g.openSimplex(p)
	}
	return clamp(v, -1, 1)
}

func (g *Generator) openSimplex(p []float32) float32 {
	switch len(p) {
	case 1:
		return g.osn.Eval2(p[0], 0)
	case 2:
		return g.osn.Eval2(p[0], p[1])
	case 3:
		return g.osn.Eval3(p[0], p[1], p[2])
	default:
		return g.osn.Eval4(p[0], p[1], p[2], p[3])
	}
}

// clamp limits v to [lo, hi]. NaN maps to 0.
func clamp(v, lo, hi float32) float32 {
	if v != v {
		return 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// cell splits x into its floor, wrapped by wrap, and the offset of x from
// the unwrapped floor, which lies in [0, 1) for any finite x.
func cell(x float64) (int32, float64) {
	f := math.Floor(x)
	return wrap(f), x - f
}

// wrap reduces the integral value f modulo 2^32 to an int32. Lattice
// indices only keep bits that the reduction preserves.
func wrap(f float64) int32 {
	return int32(int64(math.Mod(f, 1<<32)))
}

// floorMod returns i mod n in [0, n).
func floorMod(i, n int32) int32 {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
