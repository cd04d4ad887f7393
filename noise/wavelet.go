// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"math"

	"golang.org/x/exp/procgen/rand"
)

// Wavelet noise after Cook and DeRose, "Wavelet Noise", SIGGRAPH 2005.

const (
	waveletMaxDimensions = 3
	waveletScale         = 2

	tileSide   = 32
	tileArea   = tileSide * tileSide
	tileVolume = tileArea * tileSide

	// Radius of the downsampling filter.
	aRadius = 16
)

// aCoeffs is the quadratic B-spline analysis filter.
var aCoeffs = [2 * aRadius]float32{
	0.000334, -0.001528, 0.000410, 0.003545, -0.000938, -0.008233, 0.002172, 0.019120,
	-0.005040, -0.044412, 0.011655, 0.103311, -0.025936, -0.243780, 0.033979, 0.655340,
	0.655340, 0.033979, -0.243780, -0.025936, 0.103311, 0.011655, -0.044412, -0.005040,
	0.019120, 0.002172, -0.008233, -0.000938, 0.003546, 0.000410, -0.001528, 0.000334,
}

// pCoeffs is the matching refinement filter.
var pCoeffs = [4]float32{0.25, 0.75, 0.75, 0.25}

// A waveletTile is a periodic 32x32x32 block of band-limited noise,
// indexed x + y*32 + z*32*32.
type waveletTile [tileVolume]float32

func newWaveletTile(r *rand.Random) (*waveletTile, error) {
	noise := new(waveletTile)
	for i := range noise {
		v, err := r.Float32Range(-1, 1)
		if err != nil {
			return nil, err
		}
		noise[i] = v
	}

	// Subtract the coarse band: downsample then upsample along each axis.
	var down, up waveletTile
	for y := 0; y < tileSide; y++ {
		for z := 0; z < tileSide; z++ {
			i := y*tileSide + z*tileArea
			downsample(noise[i:], down[i:], 1)
			upsample(down[i:], up[i:], 1)
		}
	}
	for x := 0; x < tileSide; x++ {
		for z := 0; z < tileSide; z++ {
			i := x + z*tileArea
			downsample(up[i:], down[i:], tileSide)
			upsample(down[i:], up[i:], tileSide)
		}
	}
	for x := 0; x < tileSide; x++ {
		for y := 0; y < tileSide; y++ {
			i := x + y*tileSide
			downsample(up[i:], down[i:], tileArea)
			upsample(down[i:], up[i:], tileArea)
		}
	}
	for i := range noise {
		noise[i] -= up[i]
	}

	// Add a shifted copy of itself to even out the variance. The shift
	// must be odd.
	offset := tileSide / 2
	if offset&1 == 0 {
		offset++
	}
	for z := 0; z < tileSide; z++ {
		sz := (z + offset) % tileSide
		for y := 0; y < tileSide; y++ {
			sy := (y + offset) % tileSide
			for x := 0; x < tileSide; x++ {
				sx := (x + offset) % tileSide
				down[x+y*tileSide+z*tileArea] = noise[sx+sy*tileSide+sz*tileArea]
			}
		}
	}
	for i := range noise {
		noise[i] += down[i]
	}
	return noise, nil
}

// downsample filters one row of tileSide samples, spaced stride apart, into
// tileSide/2 samples at the same stride.
func downsample(from, to []float32, stride int) {
	for i := 0; i < tileSide/2; i++ {
		var sum float32
		for k := 2*i - aRadius; k < 2*i+aRadius; k++ {
			sum += aCoeffs[aRadius+k-2*i] * from[int(floorMod(int32(k), tileSide))*stride]
		}
		to[i*stride] = sum
	}
}

// upsample expands tileSide/2 samples back to tileSide.
func upsample(from, to []float32, stride int) {
	for i := 0; i < tileSide; i++ {
		var sum float32
		for k := i / 2; k <= i/2+1; k++ {
			sum += pCoeffs[2+i-2*k] * from[int(floorMod(int32(k), tileSide/2))*stride]
		}
		to[i*stride] = sum
	}
}

// eval samples the tile with a quadratic B-spline. Unused dimensions are
// evaluated at zero.
func (t *waveletTile) eval(p []float32) float32 {
	var (
		mid [waveletMaxDimensions]int32
		w   [waveletMaxDimensions][3]float32
	)
	for i := range mid {
		var x float64
		if i < len(p) {
			x = float64(p[i]) * waveletScale
		}
		m := math.Ceil(x - 0.5)
		mid[i] = wrap(m)
		d := float32(m - (x - 0.5))
		w[i][0] = d * d * 0.5
		w[i][2] = (1 - d) * (1 - d) * 0.5
		w[i][1] = 1 - w[i][0] - w[i][2]
	}

	var result float32
	for dz := int32(-1); dz <= 1; dz++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dx := int32(-1); dx <= 1; dx++ {
				weight := w[0][dx+1] * w[1][dy+1] * w[2][dz+1]
				cx := floorMod(mid[0]+dx, tileSide)
				cy := floorMod(mid[1]+dy, tileSide)
				cz := floorMod(mid[2]+dz, tileSide)
				result += weight * t[cz*tileArea+cy*tileSide+cx]
			}
		}
	}
	return result
}
