// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"encoding/binary"
	"log/slog"
	"math"

	"github.com/goccy/go-json"
	"golang.org/x/xerrors"
)

// StateVersion is the version written into every State and binary encoding.
const StateVersion = 1

// State is a complete snapshot of a Random. Restoring it yields a Random
// whose future output is bit-identical to the original's.
type State struct {
	Version   int       `json:"version"`
	Algorithm Algorithm `json:"algorithm"`
	FloatMode FloatMode `json:"float_mode"`

	// Words is the MT19937 array or the CMWC ring; Index is the position
	// within it. Both are empty for PCG.
	Words []uint32 `json:"words,omitempty"`
	Index int      `json:"index"`

	// Carry is the CMWC carry.
	Carry uint32 `json:"carry,omitempty"`

	// PCGState is the PCG state word.
	PCGState uint64 `json:"pcg_state,omitempty"`

	// Spare is the cached second Gaussian deviate, if any.
	Spare *float64 `json:"spare,omitempty"`
}

// State returns a snapshot of r. It does not advance r.
func (r *Random) State() State {
	s := State{
		Version:   StateVersion,
		Algorithm: r.algo,
		FloatMode: r.FloatMode(),
	}
	switch r.algo {
	case MersenneTwister:
		s.Words = append([]uint32(nil), r.mt.mt[:]...)
		s.Index = r.mt.idx
	case PCG:
		s.PCGState = r.pcg.state
	default:
		s.Words = append([]uint32(nil), r.cmwc.q[:]...)
		s.Index = r.cmwc.cur
		s.Carry = r.cmwc.c
	}
	if r.hasSpare {
		spare := r.spare
		s.Spare = &spare
	}
	return s
}

// Restore returns a Random that continues exactly where the snapshot was
// taken. Only WithLogger is honored among opts; the algorithm and float
// mode come from s. Inconsistent snapshots fail with ErrSerialization.
func Restore(s State, opts ...Option) (*Random, error) {
	r := &Random{}
	if err := r.restore(s); err != nil {
		return nil, err
	}
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	r.logger = c.logger
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	r.logger.Debug("restored generator",
		slog.String("algorithm", r.algo.String()),
		slog.String("float_mode", s.FloatMode.String()))
	return r, nil
}

func (r *Random) restore(s State) error {
	bad := func(why string, args ...any) error {
		return xerrors.Errorf("rand: restore: "+why+": %w", append(args, ErrSerialization)...)
	}
	if s.Version != StateVersion {
		return bad("version %d, want %d", s.Version, StateVersion)
	}
	if !s.Algorithm.valid() {
		return bad("unknown algorithm %v", s.Algorithm)
	}
	if !s.FloatMode.valid() {
		return bad("unknown float mode %v", s.FloatMode)
	}
	if s.Spare != nil && !finite(*s.Spare) {
		return bad("spare %v is not finite", *s.Spare)
	}

	out := Random{algo: s.Algorithm, logger: r.logger}
	switch s.Algorithm {
	case MersenneTwister:
		if len(s.Words) != mtN {
			return bad("mt19937 has %d words, want %d", len(s.Words), mtN)
		}
		if s.Index < 0 || s.Index > mtN {
			return bad("mt19937 index %d out of range", s.Index)
		}
		m := &MT19937{idx: s.Index, mode: s.FloatMode}
		copy(m.mt[:], s.Words)
		if allZero(m.mt[:]) {
			return bad("mt19937 state is all zero")
		}
		out.mt = m
	case PCG:
		if len(s.Words) != 0 || s.Carry != 0 || s.Index != 0 {
			return bad("pcg state carries ring data")
		}
		out.pcg = &PCGSource{state: s.PCGState, mode: s.FloatMode}
	default:
		if len(s.Words) != cmwcLag {
			return bad("cmwc has %d words, want %d", len(s.Words), cmwcLag)
		}
		if s.Index < 0 || s.Index >= cmwcLag {
			return bad("cmwc index %d out of range", s.Index)
		}
		g := &CMWC{cur: s.Index, c: s.Carry, mode: s.FloatMode}
		copy(g.q[:], s.Words)
		out.cmwc = g
	}
	if s.Spare != nil {
		out.spare, out.hasSpare = *s.Spare, true
	}
	*r = out
	return nil
}

func allZero(w []uint32) bool {
	for _, v := range w {
		if v != 0 {
			return false
		}
	}
	return true
}

// MarshalJSON implements json.Marshaler.
func (r *Random) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.State())
}

// UnmarshalJSON implements json.Unmarshaler. On error r is unchanged.
func (r *Random) UnmarshalJSON(data []byte) error {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return xerrors.Errorf("rand: decode state: %v: %w", err, ErrSerialization)
	}
	if err := r.restore(s); err != nil {
		return err
	}
	r.ensureLogger()
	return nil
}

func (r *Random) ensureLogger() {
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
}

// Binary layout, little-endian:
//
//	magic "PGRS" | version u8 | algorithm u8 | float mode u8 | flags u8 |
//	spare f64 | backend
//
// where backend is index u32 + 624 words for MT19937, index u32 + carry
// u32 + 4096 words for CMWC, and the state u64 for PCG. Bit 0 of flags
// marks a cached Gaussian spare.
var binaryMagic = [4]byte{'P', 'G', 'R', 'S'}

const binaryHeaderLen = 4 + 4 + 8

func binaryLen(a Algorithm) int {
	switch a {
	case MersenneTwister:
		return binaryHeaderLen + 4 + 4*mtN
	case PCG:
		return binaryHeaderLen + 8
	default:
		return binaryHeaderLen + 8 + 4*cmwcLag
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r *Random) MarshalBinary() ([]byte, error) {
	s := r.State()
	b := make([]byte, 0, binaryLen(s.Algorithm))
	b = append(b, binaryMagic[:]...)
	var flags byte
	var spare float64
	if s.Spare != nil {
		flags |= 1
		spare = *s.Spare
	}
	b = append(b, StateVersion, byte(s.Algorithm), byte(s.FloatMode), flags)
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(spare))
	switch s.Algorithm {
	case PCG:
		b = binary.LittleEndian.AppendUint64(b, s.PCGState)
	case MersenneTwister:
		b = binary.LittleEndian.AppendUint32(b, uint32(s.Index))
		for _, w := range s.Words {
			b = binary.LittleEndian.AppendUint32(b, w)
		}
	default:
		b = binary.LittleEndian.AppendUint32(b, uint32(s.Index))
		b = binary.LittleEndian.AppendUint32(b, s.Carry)
		for _, w := range s.Words {
			b = binary.LittleEndian.AppendUint32(b, w)
		}
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. On error r is
// unchanged.
func (r *Random) UnmarshalBinary(data []byte) error {
	if len(data) < binaryHeaderLen || [4]byte(data[:4]) != binaryMagic {
		return xerrors.Errorf("rand: decode state: bad header: %w", ErrSerialization)
	}
	s := State{
		Version:   int(data[4]),
		Algorithm: Algorithm(data[5]),
		FloatMode: FloatMode(data[6]),
	}
	flags := data[7]
	if flags&^1 != 0 {
		return xerrors.Errorf("rand: decode state: unknown flags %#x: %w", flags, ErrSerialization)
	}
	if flags&1 != 0 {
		spare := math.Float64frombits(binary.LittleEndian.Uint64(data[8:]))
		s.Spare = &spare
	}
	if s.Version != StateVersion {
		return xerrors.Errorf("rand: decode state: version %d, want %d: %w", s.Version, StateVersion, ErrSerialization)
	}
	if !s.Algorithm.valid() {
		return xerrors.Errorf("rand: decode state: unknown algorithm %v: %w", s.Algorithm, ErrSerialization)
	}
	if want := binaryLen(s.Algorithm); len(data) != want {
		return xerrors.Errorf("rand: decode state: %d bytes, want %d: %w", len(data), want, ErrSerialization)
	}
	body := data[binaryHeaderLen:]
	readWords := func(n int) {
		s.Words = make([]uint32, n)
		for i := range s.Words {
			s.Words[i] = binary.LittleEndian.Uint32(body[4*i:])
		}
	}
	switch s.Algorithm {
	case PCG:
		s.PCGState = binary.LittleEndian.Uint64(body)
	case MersenneTwister:
		s.Index = int(binary.LittleEndian.Uint32(body))
		body = body[4:]
		readWords(mtN)
	default:
		s.Index = int(binary.LittleEndian.Uint32(body))
		s.Carry = binary.LittleEndian.Uint32(body[4:])
		body = body[8:]
		readWords(cmwcLag)
	}
	if err := r.restore(s); err != nil {
		return err
	}
	r.ensureLogger()
	return nil
}
