// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

// perlinLimit keeps Perlin output strictly inside (-1, 1).
const perlinLimit = 0.99999

func (g *Generator) perlin(p []float32) float32 {
	var (
		n [MaxDimensions]int32   // lattice cell
		r [MaxDimensions]float32 // offset within the cell
		w [MaxDimensions]float32 // faded offset
	)
	for i, x := range p {
		c, f := cell(float64(x))
		n[i], r[i] = c, float32(f)
		w[i] = fade(r[i])
	}

	// Corner c has bit d set when it lies on the far side of dimension d.
	var corners [1 << MaxDimensions]float32
	dims := len(p)
	for c := 0; c < 1<<dims; c++ {
		var (
			cn [MaxDimensions]int32
			cr [MaxDimensions]float32
		)
		for d := 0; d < dims; d++ {
			cn[d], cr[d] = n[d], r[d]
			if c&(1<<d) != 0 {
				cn[d]++
				cr[d]--
			}
		}
		corners[c] = g.lattice(cn[:dims], cr[:dims])
	}

	// Collapse one dimension per pass, starting with the first.
	for d := 0; d < dims; d++ {
		half := 1 << (dims - d - 1)
		for c := 0; c < half; c++ {
			corners[c] = lerp(corners[2*c], corners[2*c+1], w[d])
		}
	}
	return clamp(corners[0], -perlinLimit, perlinLimit)
}

// lattice returns the dot product of the gradient hashed from the corner
// n with the offset f from that corner.
func (g *Generator) lattice(n []int32, f []float32) float32 {
	var idx int32
	for _, ni := range n {
		idx = g.table.hash(idx + ni)
	}
	grad := &g.table.grad[idx]
	var dot float32
	for i, fi := range f {
		dot += grad[i] * fi
	}
	return dot
}

func fade(t float32) float32 { return t * t * (3 - 2*t) }

func lerp(a, b, t float32) float32 { return a + t*(b-a) }
