// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"encoding/binary"
	"io"
	mathrand "math/rand"
	randv2 "math/rand/v2"
)

// A Random can stand in wherever the ecosystem expects a generic source of
// random bits: math/rand/v2 (and gonum's distributions), math/rand, and
// anything that reads bytes from an io.Reader.
var (
	_ randv2.Source     = (*Random)(nil)
	_ mathrand.Source64 = (*Random)(nil)
	_ io.Reader         = (*Random)(nil)
)

// Read fills p with random bytes, taking each word little-endian first.
// A trailing partial word consumes a whole word. It never fails.
func (r *Random) Read(p []byte) (n int, err error) {
	for len(p) >= 4 {
		binary.LittleEndian.PutUint32(p, r.Uint32())
		p = p[4:]
		n += 4
	}
	if len(p) > 0 {
		w := r.Uint32()
		for i := range p {
			p[i] = byte(w)
			w >>= 8
		}
		n += len(p)
	}
	return n, nil
}

// Int63 returns a non-negative 63-bit integer, for math/rand.Source.
func (r *Random) Int63() int64 {
	return int64(r.Uint64() & (1<<63 - 1))
}

// Seed reseeds r in place, for math/rand.Source. The algorithm and float
// mode are kept; the 64-bit seed is applied as the key {low, high}, so
// Seed(s) matches NewFromKey([]uint32{low, high}).
func (r *Random) Seed(seed int64) {
	u := uint64(seed)
	r.seedKey([]uint32{uint32(u), uint32(u >> 32)}, r.FloatMode())
}
