// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

// PCGSource is a 64-bit permuted congruential generator as defined in
//
//	PCG: A Family of Simple Fast Space-Efficient Statistically Good
//	Algorithms for Random Number Generation
//	Melissa E. O'Neill, Harvey Mudd College
//	http://www.pcg-random.org/pdf/toms-oneill-pcg-family-v1.02.pdf
//
// The generator here is PCG RXS M XS 64. It has 64 bits of state, so it is
// represented by a single word. The 32-bit word used by Random is the high
// half of each 64-bit output.
type PCGSource struct {
	state uint64
	mode  FloatMode
}

const (
	pcgMultiplier = 6364136223846793005
	pcgIncrement  = 1442695040888963407
	pcgPermuter   = 12605985483714917081
)

// NewPCGSource returns a generator whose state is seed. Any seed, zero
// included, is a valid LCG state with full period.
func NewPCGSource(seed uint64, mode FloatMode) *PCGSource {
	return &PCGSource{state: seed, mode: mode}
}

// NewPCGSourceFromKey scrambles key through MT19937 init_by_array and uses
// two of the resulting words as the state.
func NewPCGSourceFromKey(key []uint32, mode FloatMode) *PCGSource {
	mt := NewMT19937FromKey(key, FloatUniform)
	lo := uint64(mt.Uint32())
	hi := uint64(mt.Uint32())
	return &PCGSource{state: hi<<32 | lo, mode: mode}
}

// Uint64 returns a pseudo-random 64-bit unsigned integer.
func (pcg *PCGSource) Uint64() uint64 {
	oldstate := pcg.state
	pcg.state = pcg.state*pcgMultiplier + pcgIncrement
	word := ((oldstate >> ((oldstate >> 59) + 5)) ^ oldstate) * pcgPermuter
	return (word >> 43) ^ word
}

// Uint32 returns the high half of the next 64-bit output.
func (pcg *PCGSource) Uint32() uint32 { return uint32(pcg.Uint64() >> 32) }

// Float32 returns a float derived from one word according to the float mode.
func (pcg *PCGSource) Float32() float32 { return float32From(pcg.Uint32(), pcg.mode) }

// Float64 returns a float derived from one word according to the float mode.
func (pcg *PCGSource) Float64() float64 { return float64From(pcg.Uint32(), pcg.mode) }

// FloatMode reports how floats are derived.
func (pcg *PCGSource) FloatMode() FloatMode { return pcg.mode }
