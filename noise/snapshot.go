// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/ojrac/opensimplex-go"
	"golang.org/x/xerrors"
)

// snapshotVersion is written into every encoded Generator.
const snapshotVersion = 1

type snapshot struct {
	Version    int       `json:"version"`
	Algorithm  Algorithm `json:"algorithm"`
	Dimensions int       `json:"dimensions"`

	Permutation []byte      `json:"permutation,omitempty"`
	Gradients   [][]float32 `json:"gradients,omitempty"`
	Tile        []float32   `json:"tile,omitempty"`
	Seed        *int64      `json:"seed,omitempty"`
}

// MarshalJSON implements json.Marshaler. The encoding holds everything
// needed to rebuild g without the Random it was built from.
func (g *Generator) MarshalJSON() ([]byte, error) {
	s := snapshot{
		Version:    snapshotVersion,
		Algorithm:  g.algo,
		Dimensions: g.dims,
	}
	switch g.algo {
	case Perlin, Simplex:
		s.Permutation = append([]byte(nil), g.table.perm[:]...)
		if g.table.gradDims > 0 {
			s.Gradients = make([][]float32, tableSize)
			for i := range s.Gradients {
				s.Gradients[i] = g.table.Gradient(i)
			}
		}
	case Wavelet:
		s.Tile = append([]float32(nil), g.tile[:]...)
	case OpenSimplex:
		seed := g.seed
		s.Seed = &seed
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler. Corrupt or inconsistent data
// fails with ErrSerialization and leaves g unchanged.
func (g *Generator) UnmarshalJSON(data []byte) error {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return xerrors.Errorf("noise: decode generator: %v: %w", err, ErrSerialization)
	}
	out, err := s.generator()
	if err != nil {
		return xerrors.Errorf("noise: decode generator: %w", err)
	}
	out.logger = g.logger
	if out.logger == nil {
		out.logger = slog.New(slog.DiscardHandler)
	}
	*g = *out
	return nil
}

func (s *snapshot) generator() (*Generator, error) {
	bad := func(format string, args ...any) error {
		return xerrors.Errorf(format+": %w", append(args, ErrSerialization)...)
	}
	switch {
	case s.Version != snapshotVersion:
		return nil, bad("version %d, want %d", s.Version, snapshotVersion)
	case !s.Algorithm.valid():
		return nil, bad("unknown algorithm %v", s.Algorithm)
	case s.Dimensions < 1 || s.Dimensions > MaxDimensions:
		return nil, bad("%d dimensions", s.Dimensions)
	case s.Algorithm == Wavelet && s.Dimensions > waveletMaxDimensions:
		return nil, bad("%d-dimensional wavelet noise", s.Dimensions)
	}
	g := &Generator{algo: s.Algorithm, dims: s.Dimensions}

	usesTable := s.Algorithm == Perlin || s.Algorithm == Simplex
	if !usesTable && (s.Permutation != nil || s.Gradients != nil) {
		return nil, bad("%v generator carries a permutation table", s.Algorithm)
	}
	if s.Algorithm != Wavelet && s.Tile != nil {
		return nil, bad("%v generator carries a wavelet tile", s.Algorithm)
	}
	if s.Algorithm != OpenSimplex && s.Seed != nil {
		return nil, bad("%v generator carries a seed", s.Algorithm)
	}

	switch s.Algorithm {
	case Perlin, Simplex:
		t := &PermutationTable{}
		if len(s.Permutation) != tableSize {
			return nil, bad("permutation has %d entries, want %d", len(s.Permutation), tableSize)
		}
		var seen [tableSize]bool
		for i, v := range s.Permutation {
			if seen[v] {
				return nil, bad("permutation repeats %d", v)
			}
			seen[v] = true
			t.perm[i] = v
		}
		if s.Algorithm == Perlin {
			if len(s.Gradients) != tableSize {
				return nil, bad("%d gradients, want %d", len(s.Gradients), tableSize)
			}
			t.gradDims = s.Dimensions
			for i, grad := range s.Gradients {
				if len(grad) != s.Dimensions {
					return nil, bad("gradient %d has %d components, want %d", i, len(grad), s.Dimensions)
				}
				for j, v := range grad {
					if !finite(v) {
						return nil, bad("gradient %d is not finite", i)
					}
					t.grad[i][j] = v
				}
			}
		} else if s.Gradients != nil {
			return nil, bad("simplex generator carries gradients")
		}
		g.table = t
	case Wavelet:
		if len(s.Tile) != tileVolume {
			return nil, bad("tile has %d samples, want %d", len(s.Tile), tileVolume)
		}
		t := new(waveletTile)
		for i, v := range s.Tile {
			if !finite(v) {
				return nil, bad("tile sample %d is not finite", i)
			}
			t[i] = v
		}
		g.tile = t
	case OpenSimplex:
		if s.Seed == nil {
			return nil, bad("opensimplex generator has no seed")
		}
		g.seed = *s.Seed
		g.osn = opensimplex.New32(g.seed)
	}
	return g, nil
}
