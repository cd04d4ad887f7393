// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// Dice is a set of identical dice and the rule for scoring a roll:
// the sum of Rolls dice with Faces faces, plus Offset, times Multiplier.
type Dice struct {
	Rolls      int32
	Faces      int32
	Multiplier float32
	Offset     float32
}

// ParseDice parses dice notation of the form
//
//	[mul*]<rolls>d<faces>[+offset|-offset]
//
// such as "3d6", "d20", "2d4+1" or "5*3d6-2". 'x' may replace '*' and
// 'D' may replace 'd'. A missing roll count means one die.
// Malformed notation fails with ErrInvalidInput.
func ParseDice(s string) (Dice, error) {
	d := Dice{Rolls: 1, Multiplier: 1}
	rest := strings.TrimSpace(s)
	fail := func(why string) (Dice, error) {
		return Dice{}, xerrors.Errorf("rand: ParseDice(%q): %s: %w", s, why, ErrInvalidInput)
	}

	if i := strings.IndexAny(rest, "*x"); i >= 0 {
		m, err := strconv.ParseFloat(rest[:i], 32)
		if err != nil || !finite(m) {
			return fail("bad multiplier")
		}
		d.Multiplier = float32(m)
		rest = rest[i+1:]
	}

	i := strings.IndexAny(rest, "dD")
	if i < 0 {
		return fail("missing 'd'")
	}
	if i > 0 {
		n, err := strconv.ParseInt(rest[:i], 10, 32)
		if err != nil || n < 1 {
			return fail("bad roll count")
		}
		d.Rolls = int32(n)
	}
	rest = rest[i+1:]

	faces := rest
	if j := strings.IndexAny(rest, "+-"); j >= 0 {
		faces = rest[:j]
		o, err := strconv.ParseFloat(rest[j:], 32)
		if err != nil || !finite(o) {
			return fail("bad offset")
		}
		d.Offset = float32(o)
	}
	n, err := strconv.ParseInt(faces, 10, 32)
	if err != nil || n < 1 {
		return fail("bad face count")
	}
	d.Faces = int32(n)
	if int64(d.Rolls)*int64(d.Faces) > math.MaxInt32 {
		return fail("total exceeds int32")
	}
	return d, nil
}

// Roll rolls the dice once. Each die consumes draws as IntRange(1, Faces).
// It fails with ErrInvalidInput, without drawing, if the largest possible
// sum exceeds int32, and after drawing if the scored roll does.
func (d Dice) Roll(r *Random) (int32, error) {
	if d.Rolls < 0 || d.Faces < 1 || int64(d.Rolls)*int64(d.Faces) > math.MaxInt32 {
		return 0, xerrors.Errorf("rand: roll %v: %w", d, ErrInvalidInput)
	}
	var sum int32
	for i := int32(0); i < d.Rolls; i++ {
		v, err := r.IntRange(1, d.Faces)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	v := float64((float32(sum) + d.Offset) * d.Multiplier)
	if !(v > math.MinInt32-1 && v < math.MaxInt32+1) {
		return 0, xerrors.Errorf("rand: roll %v: score %v out of range: %w", d, v, ErrInvalidInput)
	}
	return int32(v), nil
}

// String returns d in the notation accepted by ParseDice.
func (d Dice) String() string {
	var b strings.Builder
	if d.Multiplier != 1 {
		b.WriteString(strconv.FormatFloat(float64(d.Multiplier), 'g', -1, 32))
		b.WriteByte('*')
	}
	b.WriteString(strconv.Itoa(int(d.Rolls)))
	b.WriteByte('d')
	b.WriteString(strconv.Itoa(int(d.Faces)))
	if d.Offset > 0 {
		b.WriteByte('+')
	}
	if d.Offset != 0 {
		b.WriteString(strconv.FormatFloat(float64(d.Offset), 'g', -1, 32))
	}
	return b.String()
}

// RollDice parses s and rolls it once. Keep the Dice from ParseDice when
// rolling the same notation repeatedly.
func RollDice(r *Random, s string) (int32, error) {
	d, err := ParseDice(s)
	if err != nil {
		return 0, err
	}
	return d.Roll(r)
}
