// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rand implements seeded, reproducible pseudo-random number
// generation for procedural content.
//
// A Random wraps exactly one bit generator backend, chosen from a small
// closed set (see Algorithm), and implements every sampling operation once
// against that backend's 32-bit word stream. Two Randoms built from the same
// seed, algorithm and float mode produce identical results for identical
// call sequences on every platform.
//
// A Random is not safe for concurrent use. Use one per goroutine, or guard
// it with a mutex.
package rand

import (
	crand "crypto/rand"
	"encoding/binary"
	"log/slog"
	"math/bits"

	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"
)

// A Random is a seeded generator and the sampling operations built on it.
// The zero value is not usable; construct one with New or a sibling.
type Random struct {
	algo Algorithm
	// Exactly one backend is non-nil, the one selected by algo.
	mt   *MT19937
	cmwc *CMWC
	pcg  *PCGSource

	// Second value of the last polar Box-Muller pair.
	spare    float64
	hasSpare bool

	logger *slog.Logger
}

type config struct {
	algo   Algorithm
	mode   FloatMode
	logger *slog.Logger
}

// An Option configures a Random at construction.
type Option func(*config)

// WithAlgorithm selects the backend. The default is DefaultAlgorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(c *config) { c.algo = a }
}

// WithFloatMode selects how the backend derives floats. The default is
// FloatUniform.
func WithFloatMode(m FloatMode) Option {
	return func(c *config) { c.mode = m }
}

// WithLogger sets the logger that receives construction and restore
// events. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) (config, error) {
	c := config{algo: DefaultAlgorithm, mode: FloatUniform}
	for _, opt := range opts {
		opt(&c)
	}
	if !c.algo.valid() {
		return c, xerrors.Errorf("%v: %w", c.algo, ErrInvalidConfiguration)
	}
	if !c.mode.valid() {
		return c, xerrors.Errorf("%v: %w", c.mode, ErrInvalidConfiguration)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c, nil
}

// New returns a Random seeded with seed.
func New(seed uint32, opts ...Option) (*Random, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, xerrors.Errorf("rand: New(%d): %w", seed, err)
	}
	r := &Random{algo: c.algo, logger: c.logger}
	switch c.algo {
	case MersenneTwister:
		r.mt = NewMT19937(seed, c.mode)
	case PCG:
		r.pcg = NewPCGSource(uint64(seed), c.mode)
	default:
		r.cmwc = NewCMWC(seed, c.mode)
	}
	r.logger.Debug("seeded generator",
		slog.String("algorithm", c.algo.String()),
		slog.String("float_mode", c.mode.String()),
		slog.Uint64("seed", uint64(seed)))
	return r, nil
}

// NewFromKey returns a Random seeded with a key of one or more words.
// A 64-bit seed is passed as {low, high}. The key is scrambled through
// MT19937 init_by_array before it reaches any backend, so zero or repeated
// words still yield a well-mixed state.
func NewFromKey(key []uint32, opts ...Option) (*Random, error) {
	if len(key) == 0 {
		return nil, xerrors.Errorf("rand: NewFromKey: empty key: %w", ErrInvalidInput)
	}
	c, err := newConfig(opts)
	if err != nil {
		return nil, xerrors.Errorf("rand: NewFromKey: %w", err)
	}
	r := &Random{algo: c.algo, logger: c.logger}
	r.seedKey(key, c.mode)
	r.logger.Debug("seeded generator",
		slog.String("algorithm", c.algo.String()),
		slog.String("float_mode", c.mode.String()),
		slog.Int("key_words", len(key)))
	return r, nil
}

func (r *Random) seedKey(key []uint32, mode FloatMode) {
	r.mt, r.cmwc, r.pcg = nil, nil, nil
	r.hasSpare, r.spare = false, 0
	switch r.algo {
	case MersenneTwister:
		r.mt = NewMT19937FromKey(key, mode)
	case PCG:
		r.pcg = NewPCGSourceFromKey(key, mode)
	default:
		r.cmwc = NewCMWCFromKey(key, mode)
	}
}

// NewFromBytes returns a Random seeded with the big-endian word in b.
func NewFromBytes(b [4]byte, opts ...Option) (*Random, error) {
	return New(binary.BigEndian.Uint32(b[:]), opts...)
}

// NewFromEntropy returns a Random seeded from the operating system's
// cryptographic random source. Its output is not reproducible.
func NewFromEntropy(opts ...Option) (*Random, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, xerrors.Errorf("rand: NewFromEntropy: %w", err)
	}
	key := make([]uint32, len(b)/4)
	for i := range key {
		key[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return NewFromKey(key, opts...)
}

// Algorithm reports the backend in use.
func (r *Random) Algorithm() Algorithm { return r.algo }

// FloatMode reports how the backend derives floats.
func (r *Random) FloatMode() FloatMode {
	switch r.algo {
	case MersenneTwister:
		return r.mt.FloatMode()
	case PCG:
		return r.pcg.FloatMode()
	default:
		return r.cmwc.FloatMode()
	}
}

// Clone returns an independent Random that continues from r's current
// position. Both produce the same sequence from here on.
func (r *Random) Clone() *Random {
	c := *r
	if r.mt != nil {
		mt := *r.mt
		c.mt = &mt
	}
	if r.cmwc != nil {
		cmwc := *r.cmwc
		c.cmwc = &cmwc
	}
	if r.pcg != nil {
		pcg := *r.pcg
		c.pcg = &pcg
	}
	return &c
}

// Uint32 returns the backend's next raw word.
func (r *Random) Uint32() uint32 {
	switch r.algo {
	case MersenneTwister:
		return r.mt.Uint32()
	case PCG:
		return r.pcg.Uint32()
	default:
		return r.cmwc.Uint32()
	}
}

// Uint64 returns two raw words, the first drawn in the low half.
func (r *Random) Uint64() uint64 {
	lo := uint64(r.Uint32())
	hi := uint64(r.Uint32())
	return hi<<32 | lo
}

// Float32 returns a float from one word. It is in [0, 1) in uniform mode
// and in [0, 1] in legacy mode.
func (r *Random) Float32() float32 {
	switch r.algo {
	case MersenneTwister:
		return r.mt.Float32()
	case PCG:
		return r.pcg.Float32()
	default:
		return r.cmwc.Float32()
	}
}

// Float64 returns a float from one word. It is in [0, 1) in uniform mode
// and in [0, 1] in legacy mode.
func (r *Random) Float64() float64 {
	switch r.algo {
	case MersenneTwister:
		return r.mt.Float64()
	case PCG:
		return r.pcg.Float64()
	default:
		return r.cmwc.Float64()
	}
}

// uint32n returns a value in [0, n) without modulo bias, using the
// multiply-shift reduction with rejection. n == 0 means [0, 2^32).
func (r *Random) uint32n(n uint32) uint32 {
	if n == 0 {
		return r.Uint32()
	}
	m := uint64(r.Uint32()) * uint64(n)
	if low := uint32(m); low < n {
		thresh := -n % n
		for low < thresh {
			m = uint64(r.Uint32()) * uint64(n)
			low = uint32(m)
		}
	}
	return uint32(m >> 32)
}

func (r *Random) uint64n(n uint64) uint64 {
	hi, lo := bits.Mul64(r.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.Uint64(), n)
		}
	}
	return hi
}

// uintn returns a value in [0, n). n == 0 means [0, 2^64). Spans that fit
// in 32 bits consume 32-bit words only.
func (r *Random) uintn(n uint64) uint64 {
	switch {
	case n == 0:
		return r.Uint64()
	case n <= 1<<32:
		return uint64(r.uint32n(uint32(n)))
	default:
		return r.uint64n(n)
	}
}

// IntRange returns a uniformly distributed integer in [lo, hi].
// IntRange(a, a) returns a. It fails with ErrInvalidRange if lo > hi.
func (r *Random) IntRange(lo, hi int32) (int32, error) {
	v, err := Between(r, lo, hi)
	if err != nil {
		return 0, xerrors.Errorf("rand: IntRange(%d, %d): %w", lo, hi, ErrInvalidRange)
	}
	return v, nil
}

// Between returns a uniformly distributed integer of any integer type in
// [lo, hi]. It fails with ErrInvalidRange if lo > hi.
func Between[T constraints.Integer](r *Random, lo, hi T) (T, error) {
	if lo > hi {
		return 0, xerrors.Errorf("rand: Between(%d, %d): %w", lo, hi, ErrInvalidRange)
	}
	// Wraps correctly for signed types: the difference is taken mod 2^64.
	span := uint64(hi) - uint64(lo) + 1
	return lo + T(r.uintn(span)), nil
}

// IntN returns a uniformly distributed integer in [0, n).
// It fails with ErrInvalidRange if n <= 0.
func (r *Random) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, xerrors.Errorf("rand: IntN(%d): %w", n, ErrInvalidRange)
	}
	return int(r.uintn(uint64(n))), nil
}

// Float32Range returns a uniformly distributed float in [lo, hi].
// It fails with ErrInvalidRange if lo > hi or either bound is not finite.
func (r *Random) Float32Range(lo, hi float32) (float32, error) {
	if !finite(float64(lo)) || !finite(float64(hi)) || lo > hi {
		return 0, xerrors.Errorf("rand: Float32Range(%v, %v): %w", lo, hi, ErrInvalidRange)
	}
	f := r.Float32()
	if span := hi - lo; finite(float64(span)) {
		// The conversion keeps the product from being fused into the add.
		return lo + float32(f*span), nil
	}
	// The span overflows, so lo < 0 < hi and the two terms cannot.
	return min(max(float32(lo*(1-f))+float32(hi*f), lo), hi), nil
}

// Float64Range returns a uniformly distributed float in [lo, hi].
// It fails with ErrInvalidRange if lo > hi or either bound is not finite.
func (r *Random) Float64Range(lo, hi float64) (float64, error) {
	if !finite(lo) || !finite(hi) || lo > hi {
		return 0, xerrors.Errorf("rand: Float64Range(%v, %v): %w", lo, hi, ErrInvalidRange)
	}
	f := r.Float64()
	if span := hi - lo; finite(span) {
		return lo + float64(f*span), nil
	}
	return min(max(float64(lo*(1-f))+float64(hi*f), lo), hi), nil
}

// Bool returns true with probability p. Bool(0) is always false and
// Bool(1) always true. It fails with ErrInvalidProbability if p is outside
// [0, 1].
func (r *Random) Bool(p float64) (bool, error) {
	if !(p >= 0 && p <= 1) {
		return false, xerrors.Errorf("rand: Bool(%v): %w", p, ErrInvalidProbability)
	}
	f := r.Float64()
	return p == 1 || f < p, nil
}
