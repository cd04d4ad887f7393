// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

// CMWC is George Marsaglia's complementary multiply-with-carry generator
// with a lag of 4096. Its state is a ring of 4096 words, a carry and the
// current ring position.
type CMWC struct {
	q    [cmwcLag]uint32
	c    uint32
	cur  int
	mode FloatMode
}

const (
	cmwcLag      = 4096
	cmwcMul      = 18782
	cmwcMaxCarry = 809430660 // recommended by Marsaglia

	lcgMul = 1103515245
	lcgInc = 12345
)

// NewCMWC returns a generator whose ring is filled from seed with the
// glibc linear congruential generator. Every seed, including zero,
// yields a ring with varied words and a carry below the recommended bound.
func NewCMWC(seed uint32, mode FloatMode) *CMWC {
	g := &CMWC{mode: mode}
	s := seed
	for i := range g.q {
		s = s*lcgMul + lcgInc
		g.q[i] = s
	}
	g.c = (s*lcgMul + lcgInc) % cmwcMaxCarry
	return g
}

// NewCMWCFromKey returns a generator whose ring is filled from an MT19937
// seeded with init_by_array(key). The scrambling spreads every key word over
// the whole ring, so identical or zero keys do not produce a degenerate ring.
func NewCMWCFromKey(key []uint32, mode FloatMode) *CMWC {
	mt := NewMT19937FromKey(key, FloatUniform)
	g := &CMWC{mode: mode}
	for i := range g.q {
		g.q[i] = mt.Uint32()
	}
	g.c = mt.Uint32() % cmwcMaxCarry
	return g
}

// Uint32 returns the next word.
func (g *CMWC) Uint32() uint32 {
	g.cur = (g.cur + 1) & (cmwcLag - 1)
	t := cmwcMul*uint64(g.q[g.cur]) + uint64(g.c)
	g.c = uint32(t >> 32)
	x := uint32(t + uint64(g.c))
	if x < g.c {
		x++
		g.c++
	}
	if x+1 == 0 {
		g.c++
		x = 0
	}
	g.q[g.cur] = 0xfffffffe - x
	return g.q[g.cur]
}

// Float32 returns a float derived from one word according to the float mode.
func (g *CMWC) Float32() float32 { return float32From(g.Uint32(), g.mode) }

// Float64 returns a float derived from one word according to the float mode.
func (g *CMWC) Float64() float64 { return float64From(g.Uint32(), g.mode) }

// FloatMode reports how floats are derived.
func (g *CMWC) FloatMode() FloatMode { return g.mode }
