// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"golang.org/x/exp/procgen/rand"
)

func TestParseDice(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want rand.Dice
	}{
		{"3d6", rand.Dice{Rolls: 3, Faces: 6, Multiplier: 1}},
		{"d20", rand.Dice{Rolls: 1, Faces: 20, Multiplier: 1}},
		{"1D8", rand.Dice{Rolls: 1, Faces: 8, Multiplier: 1}},
		{"2d4+1", rand.Dice{Rolls: 2, Faces: 4, Multiplier: 1, Offset: 1}},
		{"4d10-3", rand.Dice{Rolls: 4, Faces: 10, Multiplier: 1, Offset: -3}},
		{"5*3d6", rand.Dice{Rolls: 3, Faces: 6, Multiplier: 5}},
		{"0.5x2d12+0.5", rand.Dice{Rolls: 2, Faces: 12, Multiplier: 0.5, Offset: 0.5}},
		{"  3d6 ", rand.Dice{Rolls: 3, Faces: 6, Multiplier: 1}},
	} {
		got, err := rand.ParseDice(tc.in)
		if err != nil {
			t.Errorf("ParseDice(%q): %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseDice(%q) mismatch (-want, +got):\n%s", tc.in, diff)
		}
	}
}

func TestParseDiceInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"6",
		"3d",
		"d",
		"0d6",
		"3d0",
		"-1d6",
		"3d6+",
		"3d6+x",
		"ad6",
		"*3d6",
		"3d6d6",
		"99999999999d6",
		"50000d100000",
		"2d2147483647",
	} {
		if d, err := rand.ParseDice(in); !errors.Is(err, rand.ErrInvalidInput) {
			t.Errorf("ParseDice(%q) = %v, %v; want ErrInvalidInput", in, d, err)
		}
	}
}

func TestDiceRoll(t *testing.T) {
	r := mustNew(t, 17)
	d, err := rand.ParseDice("3d6+2")
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[int32]bool)
	for i := 0; i < 10000; i++ {
		v, err := d.Roll(r)
		if err != nil {
			t.Fatal(err)
		}
		if v < 5 || v > 20 {
			t.Fatalf("3d6+2 rolled %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 16 {
		t.Errorf("3d6+2 produced %d distinct totals, want 16", len(seen))
	}

	// A roll is the sum of IntRange(1, Faces) draws.
	a, b := mustNew(t, 3), mustNew(t, 3)
	v, err := rand.RollDice(a, "2*4d8-1")
	if err != nil {
		t.Fatal(err)
	}
	var sum int32
	for i := 0; i < 4; i++ {
		x, _ := b.IntRange(1, 8)
		sum += x
	}
	if want := 2 * (sum - 1); v != want {
		t.Errorf("2*4d8-1 = %d, want %d", v, want)
	}

	if _, err := (rand.Dice{Rolls: 1, Faces: 0, Multiplier: 1}).Roll(r); !errors.Is(err, rand.ErrInvalidInput) {
		t.Errorf("rolling a zero-faced die: error = %v, want ErrInvalidInput", err)
	}
	if _, err := rand.RollDice(r, "nonsense"); !errors.Is(err, rand.ErrInvalidInput) {
		t.Errorf("RollDice(nonsense) error = %v, want ErrInvalidInput", err)
	}
}

func TestDiceRollOverflow(t *testing.T) {
	r := mustNew(t, 3)
	if v, err := rand.RollDice(r, "50000d100000"); !errors.Is(err, rand.ErrInvalidInput) {
		t.Errorf("RollDice(50000d100000) = %d, %v; want ErrInvalidInput", v, err)
	}
	for _, d := range []rand.Dice{
		{Rolls: 50000, Faces: 100000, Multiplier: 1},
		{Rolls: 1, Faces: 6, Multiplier: 1e30},
		{Rolls: 1, Faces: 6, Multiplier: -1e30},
		{Rolls: 1, Faces: 6, Multiplier: 1, Offset: 3e9},
	} {
		if v, err := d.Roll(r); !errors.Is(err, rand.ErrInvalidInput) {
			t.Errorf("%v.Roll = %d, %v; want ErrInvalidInput", d, v, err)
		}
	}
	v, err := rand.RollDice(r, "1d1000000000")
	if err != nil || v < 1 {
		t.Errorf("RollDice(1d1000000000) = %d, %v", v, err)
	}
}

func TestDiceString(t *testing.T) {
	for _, in := range []string{"3d6", "1d20", "2d4+1", "4d10-3", "5*3d6", "0.5*2d12+0.5"} {
		d, err := rand.ParseDice(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := d.String(); got != in {
			t.Errorf("ParseDice(%q).String() = %q", in, got)
		}
		again, err := rand.ParseDice(d.String())
		if err != nil || again != d {
			t.Errorf("ParseDice(%q) = %v, %v; want %v", d.String(), again, err, d)
		}
	}
}
