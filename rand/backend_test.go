// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func draw(n int, next func() uint32) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = next()
	}
	return out
}

func TestMT19937Reference(t *testing.T) {
	for _, test := range []struct {
		name string
		mt   *MT19937
		want []uint32
	}{
		{"init_genrand(5489)", NewMT19937(5489, FloatUniform),
			[]uint32{3499211612, 581869302, 3890346734, 3586334585, 545404204}},
		{"init_genrand(12345)", NewMT19937(12345, FloatUniform),
			[]uint32{3992670690, 3823185381, 1358822685}},
		{"init_by_array(mt19937ar.c)", NewMT19937FromKey([]uint32{0x123, 0x234, 0x345, 0x456}, FloatUniform),
			[]uint32{1067595299, 955945823, 477289528}},
	} {
		got := draw(len(test.want), test.mt.Uint32)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want, +got):\n%s", test.name, diff)
		}
	}
}

func TestMT19937TenThousandth(t *testing.T) {
	// The value required of a default-seeded std::mt19937 by C++11.
	mt := NewMT19937(5489, FloatUniform)
	for i := 0; i < 9999; i++ {
		mt.Uint32()
	}
	if got, want := mt.Uint32(), uint32(4123659995); got != want {
		t.Errorf("10000th output = %d, want %d", got, want)
	}
}

func TestMT19937DegenerateKeys(t *testing.T) {
	for _, key := range [][]uint32{nil, {0}, {0, 0, 0, 0}, {7, 7, 7, 7, 7}} {
		mt := NewMT19937FromKey(key, FloatUniform)
		if mt.mt[0] != mtUpperMask {
			t.Errorf("key %v: mt[0] = %#x, want %#x", key, mt.mt[0], mtUpperMask)
		}
		got := draw(64, mt.Uint32)
		seen := map[uint32]bool{}
		for _, v := range got {
			seen[v] = true
		}
		if len(seen) < 60 {
			t.Errorf("key %v: only %d distinct words in 64 draws", key, len(seen))
		}
	}
	got := draw(2, NewMT19937FromKey([]uint32{0, 0, 0, 0}, FloatUniform).Uint32)
	if diff := cmp.Diff([]uint32{1840135726, 3064149041}, got); diff != "" {
		t.Errorf("zero key: mismatch (-want, +got):\n%s", diff)
	}
}

func TestCMWCReference(t *testing.T) {
	for _, test := range []struct {
		seed uint32
		want []uint32
	}{
		{12345, []uint32{1857994053, 1909894792, 1448113069, 3647991750, 2333854524}},
		{0, []uint32{1245241678, 2098878600, 1909894792}},
	} {
		got := draw(len(test.want), NewCMWC(test.seed, FloatUniform).Uint32)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("seed %d: mismatch (-want, +got):\n%s", test.seed, diff)
		}
	}
}

func TestCMWCKeyScrambling(t *testing.T) {
	g := NewCMWCFromKey([]uint32{0, 0, 0}, FloatUniform)
	if g.c >= cmwcMaxCarry {
		t.Errorf("carry %d not below %d", g.c, cmwcMaxCarry)
	}
	if allZero(g.q[:]) {
		t.Fatal("ring is all zero")
	}
	a := draw(16, g.Uint32)
	b := draw(16, NewCMWCFromKey([]uint32{0, 0, 0}, FloatUniform).Uint32)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same key diverged (-first, +second):\n%s", diff)
	}
	c := draw(16, NewCMWCFromKey([]uint32{0, 0, 1}, FloatUniform).Uint32)
	if cmp.Equal(a, c) {
		t.Error("different keys produced the same stream")
	}
}

func TestPCGReference(t *testing.T) {
	pcg := NewPCGSource(1, FloatUniform)
	got := []uint64{pcg.Uint64(), pcg.Uint64(), pcg.Uint64()}
	want := []uint64{12605985483715718391, 13112265920887089679, 13890324607627709258}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("seed 1: mismatch (-want, +got):\n%s", diff)
	}
	got32 := draw(3, NewPCGSource(12345, FloatUniform).Uint32)
	if diff := cmp.Diff([]uint32{4109467303, 796087369, 1307754850}, got32); diff != "" {
		t.Errorf("seed 12345: mismatch (-want, +got):\n%s", diff)
	}
}

func TestFloatDerivation(t *testing.T) {
	for _, test := range []struct {
		w    uint32
		mode FloatMode
		f32  float32
		f64  float64
	}{
		{0, FloatUniform, 0, 0},
		{0, FloatLegacy, 0, 0},
		{1 << 24, FloatUniform, 0, 1.0 / 256},
		{0xffffffff, FloatUniform, float32(0xffffff) / (1 << 24), float64(0xffffffff) / (1 << 32)},
		// The legacy quirk: the largest words round up to exactly 1.
		{0xffffffff, FloatLegacy, 1, 1},
		{0x80000000, FloatLegacy, 0.5, float64(0x80000000) / float64(0xffffffff)},
	} {
		if got := float32From(test.w, test.mode); got != test.f32 {
			t.Errorf("float32From(%#x, %v) = %v, want %v", test.w, test.mode, got, test.f32)
		}
		if got := float64From(test.w, test.mode); got != test.f64 {
			t.Errorf("float64From(%#x, %v) = %v, want %v", test.w, test.mode, got, test.f64)
		}
	}
}

func TestMT19937LegacyFloat64IsWidenedFloat32(t *testing.T) {
	a := NewMT19937(99, FloatLegacy)
	b := NewMT19937(99, FloatLegacy)
	for i := 0; i < 100; i++ {
		if got, want := a.Float64(), float64(b.Float32()); got != want {
			t.Fatalf("draw %d: Float64() = %v, want %v", i, got, want)
		}
	}
}

func TestUniformFloatsBelowOne(t *testing.T) {
	type backend interface {
		Float32() float32
		Float64() float64
	}
	for _, g := range []backend{
		NewCMWC(3, FloatUniform),
		NewMT19937(3, FloatUniform),
		NewPCGSource(3, FloatUniform),
	} {
		for i := 0; i < 100000; i++ {
			if f := g.Float32(); f < 0 || f >= 1 {
				t.Fatalf("%T: Float32() = %v, out of [0, 1)", g, f)
			}
			if f := g.Float64(); f < 0 || f >= 1 {
				t.Fatalf("%T: Float64() = %v, out of [0, 1)", g, f)
			}
		}
	}
}
