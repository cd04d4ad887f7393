// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

// MT19937 is the 32-bit Mersenne Twister as defined in
//
//	Mersenne Twister: A 623-dimensionally equidistributed uniform
//	pseudo-random number generator
//	Makoto Matsumoto and Takuji Nishimura
//	ACM Transactions on Modeling and Computer Simulation, 1998
//
// Its state is 624 words plus an index. The whole array is regenerated
// (twisted) once every 624 draws.
type MT19937 struct {
	mt   [mtN]uint32
	idx  int
	mode FloatMode
}

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
	mtTemperB   = 0x9d2c5680
	mtTemperC   = 0xefc60000
	mtInitMul   = 1812433253
	mtKeySeed   = 19650218
)

// NewMT19937 returns a generator seeded with init_genrand(seed).
func NewMT19937(seed uint32, mode FloatMode) *MT19937 {
	m := &MT19937{mode: mode}
	m.seed(seed)
	return m
}

// NewMT19937FromKey returns a generator seeded with init_by_array(key).
// The key is scrambled into the whole state and the first word is forced
// non-zero, so an all-zero or all-identical key still gives a full-period
// generator. An empty key is treated as {0}.
func NewMT19937FromKey(key []uint32, mode FloatMode) *MT19937 {
	if len(key) == 0 {
		key = []uint32{0}
	}
	m := &MT19937{mode: mode}
	m.seed(mtKeySeed)
	i, j := 1, 0
	k := mtN
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		m.mt[i] = (m.mt[i] ^ ((m.mt[i-1] ^ (m.mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			m.mt[0] = m.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		m.mt[i] = (m.mt[i] ^ ((m.mt[i-1] ^ (m.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			m.mt[0] = m.mt[mtN-1]
			i = 1
		}
	}
	m.mt[0] = mtUpperMask
	return m
}

func (m *MT19937) seed(seed uint32) {
	m.mt[0] = seed
	for i := 1; i < mtN; i++ {
		m.mt[i] = mtInitMul*(m.mt[i-1]^(m.mt[i-1]>>30)) + uint32(i)
	}
	m.idx = mtN
}

func (m *MT19937) twist() {
	mag01 := [2]uint32{0, mtMatrixA}
	var kk int
	for ; kk < mtN-mtM; kk++ {
		y := (m.mt[kk] & mtUpperMask) | (m.mt[kk+1] & mtLowerMask)
		m.mt[kk] = m.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < mtN-1; kk++ {
		y := (m.mt[kk] & mtUpperMask) | (m.mt[kk+1] & mtLowerMask)
		m.mt[kk] = m.mt[kk+mtM-mtN] ^ (y >> 1) ^ mag01[y&1]
	}
	y := (m.mt[mtN-1] & mtUpperMask) | (m.mt[0] & mtLowerMask)
	m.mt[mtN-1] = m.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
	m.idx = 0
}

// Uint32 returns the next tempered word.
func (m *MT19937) Uint32() uint32 {
	if m.idx >= mtN {
		m.twist()
	}
	y := m.mt[m.idx]
	m.idx++

	y ^= y >> 11
	y ^= (y << 7) & mtTemperB
	y ^= (y << 15) & mtTemperC
	y ^= y >> 18
	return y
}

// Float32 returns a float derived from one word according to the float mode.
func (m *MT19937) Float32() float32 { return float32From(m.Uint32(), m.mode) }

// Float64 returns a float derived from one word according to the float mode.
// In legacy mode this is the legacy float32 widened.
func (m *MT19937) Float64() float64 {
	if m.mode == FloatLegacy {
		return float64(m.Float32())
	}
	return float64From(m.Uint32(), m.mode)
}

// FloatMode reports how floats are derived.
func (m *MT19937) FloatMode() FloatMode { return m.mode }
