// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import "math"

// Simplex noise after Ken Perlin's 2001 design and Stefan Gustavson's
// reference implementation, with coordinates scaled by simplexScale.

const simplexScale = 0.5

// Skew and unskew factors: F = (sqrt(n+1)-1)/n, G = (1-1/sqrt(n+1))/n.
const (
	f2 = 0.366025403
	g2 = 0.211324865
	f3 = 0.333333333
	g3 = 0.166666667
	f4 = 0.309016994
	g4 = 0.138196601
)

// simplexRanks orders the corners of a 4D simplex. It is indexed by six
// pairwise coordinate comparisons; entry k of a row is the rank of
// coordinate k. Unreachable rows are zero.
var simplexRanks = [64][4]uint8{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 0, 0, 0}, {0, 2, 3, 1},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {1, 2, 3, 0},
	{0, 2, 1, 3}, {0, 0, 0, 0}, {0, 3, 1, 2}, {0, 3, 2, 1},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {1, 3, 2, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{1, 2, 0, 3}, {0, 0, 0, 0}, {1, 3, 0, 2}, {0, 0, 0, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {2, 3, 0, 1}, {2, 3, 1, 0},
	{1, 0, 2, 3}, {1, 0, 3, 2}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{0, 0, 0, 0}, {2, 0, 3, 1}, {0, 0, 0, 0}, {2, 1, 3, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{2, 0, 1, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{3, 0, 1, 2}, {3, 0, 2, 1}, {0, 0, 0, 0}, {3, 1, 2, 0},
	{2, 1, 0, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{3, 1, 0, 2}, {0, 0, 0, 0}, {3, 2, 0, 1}, {3, 2, 1, 0},
}

func (g *Generator) simplex(p []float32) float32 {
	switch len(p) {
	case 1:
		return g.simplex1(p[0])
	case 2:
		return g.simplex2(p[0], p[1])
	case 3:
		return g.simplex3(p[0], p[1], p[2])
	default:
		return g.simplex4(p[0], p[1], p[2], p[3])
	}
}

func (g *Generator) simplex1(x float32) float32 {
	c, f := cell(float64(x) * simplexScale)
	i0, i1 := c, c+1
	x0 := float32(f)
	x1 := x0 - 1
	t0 := 1 - x0*x0
	t1 := 1 - x1*x1
	t0 *= t0
	t1 *= t1
	n0 := grad1(g.table.hash(i0), x0) * t0 * t0
	n1 := grad1(g.table.hash(i1), x1) * t1 * t1
	return 0.25 * (n0 + n1)
}

func (g *Generator) simplex2(x, y float32) float32 {
	const scale = simplexScale
	xs, ys := float64(x)*scale, float64(y)*scale
	s := (xs + ys) * f2
	fi, fj := math.Floor(xs+s), math.Floor(ys+s)
	t := (fi + fj) * g2
	x0 := float32(xs - (fi - t))
	y0 := float32(ys - (fj - t))
	i, j := wrap(fi), wrap(fj)

	var i1, j1 int32
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}
	x1 := x0 - float32(i1) + float32(g2)
	y1 := y0 - float32(j1) + float32(g2)
	x2 := x0 - 1 + float32(2*g2)
	y2 := y0 - 1 + float32(2*g2)

	h := g.table.hash
	var n0, n1, n2 float32
	if t0 := 0.5 - x0*x0 - y0*y0; t0 >= 0 {
		t0 *= t0
		n0 = grad2(h(i+h(j)), x0, y0) * t0 * t0
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 >= 0 {
		t1 *= t1
		n1 = grad2(h(i+i1+h(j+j1)), x1, y1) * t1 * t1
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 >= 0 {
		t2 *= t2
		n2 = grad2(h(i+1+h(j+1)), x2, y2) * t2 * t2
	}
	return 40 * (n0 + n1 + n2)
}

func (g *Generator) simplex3(x, y, z float32) float32 {
	const scale = simplexScale
	xs, ys, zs := float64(x)*scale, float64(y)*scale, float64(z)*scale
	s := (xs + ys + zs) * f3
	fi, fj, fk := math.Floor(xs+s), math.Floor(ys+s), math.Floor(zs+s)
	t := (fi + fj + fk) * g3
	x0 := float32(xs - (fi - t))
	y0 := float32(ys - (fj - t))
	z0 := float32(zs - (fk - t))
	i, j, k := wrap(fi), wrap(fj), wrap(fk)

	var i1, j1, k1, i2, j2, k2 int32
	switch {
	case x0 >= y0 && y0 >= z0:
		i1, i2, j2 = 1, 1, 1
	case x0 >= y0 && x0 >= z0:
		i1, i2, k2 = 1, 1, 1
	case x0 >= y0:
		k1, i2, k2 = 1, 1, 1
	case y0 < z0:
		k1, j2, k2 = 1, 1, 1
	case x0 < z0:
		j1, j2, k2 = 1, 1, 1
	default:
		j1, i2, j2 = 1, 1, 1
	}

	x1 := x0 - float32(i1) + float32(g3)
	y1 := y0 - float32(j1) + float32(g3)
	z1 := z0 - float32(k1) + float32(g3)
	x2 := x0 - float32(i2) + float32(2*g3)
	y2 := y0 - float32(j2) + float32(2*g3)
	z2 := z0 - float32(k2) + float32(2*g3)
	x3 := x0 - 1 + float32(3*g3)
	y3 := y0 - 1 + float32(3*g3)
	z3 := z0 - 1 + float32(3*g3)

	h := g.table.hash
	var n0, n1, n2, n3 float32
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0; t0 >= 0 {
		t0 *= t0
		n0 = grad3(h(i+h(j+h(k))), x0, y0, z0) * t0 * t0
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1; t1 >= 0 {
		t1 *= t1
		n1 = grad3(h(i+i1+h(j+j1+h(k+k1))), x1, y1, z1) * t1 * t1
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2; t2 >= 0 {
		t2 *= t2
		n2 = grad3(h(i+i2+h(j+j2+h(k+k2))), x2, y2, z2) * t2 * t2
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3; t3 >= 0 {
		t3 *= t3
		n3 = grad3(h(i+1+h(j+1+h(k+1))), x3, y3, z3) * t3 * t3
	}
	return 32 * (n0 + n1 + n2 + n3)
}

func (g *Generator) simplex4(x, y, z, w float32) float32 {
	const scale = simplexScale
	xs, ys, zs, ws := float64(x)*scale, float64(y)*scale, float64(z)*scale, float64(w)*scale
	s := (xs + ys + zs + ws) * f4
	fi, fj, fk, fl := math.Floor(xs+s), math.Floor(ys+s), math.Floor(zs+s), math.Floor(ws+s)
	t := (fi + fj + fk + fl) * g4
	x0 := float32(xs - (fi - t))
	y0 := float32(ys - (fj - t))
	z0 := float32(zs - (fk - t))
	w0 := float32(ws - (fl - t))
	i, j, k, l := wrap(fi), wrap(fj), wrap(fk), wrap(fl)

	var c int
	if x0 > y0 {
		c |= 32
	}
	if x0 > z0 {
		c |= 16
	}
	if y0 > z0 {
		c |= 8
	}
	if x0 > w0 {
		c |= 4
	}
	if y0 > w0 {
		c |= 2
	}
	if z0 > w0 {
		c |= 1
	}
	rank := simplexRanks[c]
	// Corner m of the simplex steps along every axis whose rank is at
	// least 4-m.
	step := func(axis int, least uint8) int32 {
		if rank[axis] >= least {
			return 1
		}
		return 0
	}
	i1, j1, k1, l1 := step(0, 3), step(1, 3), step(2, 3), step(3, 3)
	i2, j2, k2, l2 := step(0, 2), step(1, 2), step(2, 2), step(3, 2)
	i3, j3, k3, l3 := step(0, 1), step(1, 1), step(2, 1), step(3, 1)

	x1 := x0 - float32(i1) + float32(g4)
	y1 := y0 - float32(j1) + float32(g4)
	z1 := z0 - float32(k1) + float32(g4)
	w1 := w0 - float32(l1) + float32(g4)
	x2 := x0 - float32(i2) + float32(2*g4)
	y2 := y0 - float32(j2) + float32(2*g4)
	z2 := z0 - float32(k2) + float32(2*g4)
	w2 := w0 - float32(l2) + float32(2*g4)
	x3 := x0 - float32(i3) + float32(3*g4)
	y3 := y0 - float32(j3) + float32(3*g4)
	z3 := z0 - float32(k3) + float32(3*g4)
	w3 := w0 - float32(l3) + float32(3*g4)
	x4 := x0 - 1 + float32(4*g4)
	y4 := y0 - 1 + float32(4*g4)
	z4 := z0 - 1 + float32(4*g4)
	w4 := w0 - 1 + float32(4*g4)

	h := g.table.hash
	var n0, n1, n2, n3, n4 float32
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0 - w0*w0; t0 >= 0 {
		t0 *= t0
		n0 = grad4(h(i+h(j+h(k+h(l)))), x0, y0, z0, w0) * t0 * t0
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1 - w1*w1; t1 >= 0 {
		t1 *= t1
		n1 = grad4(h(i+i1+h(j+j1+h(k+k1+h(l+l1)))), x1, y1, z1, w1) * t1 * t1
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2 - w2*w2; t2 >= 0 {
		t2 *= t2
		n2 = grad4(h(i+i2+h(j+j2+h(k+k2+h(l+l2)))), x2, y2, z2, w2) * t2 * t2
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3 - w3*w3; t3 >= 0 {
		t3 *= t3
		n3 = grad4(h(i+i3+h(j+j3+h(k+k3+h(l+l3)))), x3, y3, z3, w3) * t3 * t3
	}
	if t4 := 0.6 - x4*x4 - y4*y4 - z4*z4 - w4*w4; t4 >= 0 {
		t4 *= t4
		n4 = grad4(h(i+1+h(j+1+h(k+1+h(l+1)))), x4, y4, z4, w4) * t4 * t4
	}
	return 27 * (n0 + n1 + n2 + n3 + n4)
}

func grad1(h int32, x float32) float32 {
	h &= 0xF
	grad := 1 + float32(h&7)
	if h&8 != 0 {
		grad = -grad
	}
	return grad * x
}

func grad2(h int32, x, y float32) float32 {
	h &= 0x7
	u, v := x, 2*y
	if h >= 4 {
		u, v = y, 2*x
	}
	return signed(u, h&1) + signed(v, h&2)
}

func grad3(h int32, x, y, z float32) float32 {
	h &= 0xF
	u := y
	if h < 8 {
		u = x
	}
	var v float32
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	return signed(u, h&1) + signed(v, h&2)
}

func grad4(h int32, x, y, z, t float32) float32 {
	h &= 0x1F
	u, v, w := x, y, z
	if h >= 24 {
		u = y
	}
	if h >= 16 {
		v = z
	}
	if h >= 8 {
		w = t
	}
	return signed(u, h&1) + signed(v, h&2) + signed(w, h&4)
}

// signed returns -v if bit is set and v otherwise.
func signed(v float32, bit int32) float32 {
	if bit != 0 {
		return -v
	}
	return v
}
