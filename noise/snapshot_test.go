// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/exp/procgen/noise"
)

func sampleAll(t *testing.T, g *noise.Generator, pts [][]float32) []float32 {
	t.Helper()
	out := make([]float32, len(pts))
	for i, p := range pts {
		v, err := g.Get(p)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, c := range configs() {
		t.Run(fmt.Sprintf("%v/%dD", c.algo, c.dims), func(t *testing.T) {
			g := newGenerator(t, c.algo, c.dims, 77)
			data, err := json.Marshal(g)
			require.NoError(t, err)

			var restored noise.Generator
			require.NoError(t, json.Unmarshal(data, &restored))
			assert.Equal(t, c.algo, restored.Algorithm())
			assert.Equal(t, c.dims, restored.Dimensions())

			pts := points(t, c.dims, 500, 60)
			if diff := cmp.Diff(sampleAll(t, g, pts), sampleAll(t, &restored, pts)); diff != "" {
				t.Errorf("restored generator differs (-original, +restored):\n%s", diff)
			}

			again, err := json.Marshal(&restored)
			require.NoError(t, err)
			assert.JSONEq(t, string(data), string(again))
		})
	}
}

func TestSnapshotInvalid(t *testing.T) {
	valid := func(algo noise.Algorithm, dims int) map[string]any {
		data, err := json.Marshal(newGenerator(t, algo, dims, 1))
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}
	perlin := valid(noise.Perlin, 2)
	simplex := valid(noise.Simplex, 2)
	wavelet := valid(noise.Wavelet, 2)
	osn := valid(noise.OpenSimplex, 2)

	with := func(base map[string]any, key string, v any) map[string]any {
		m := make(map[string]any, len(base))
		for k, x := range base {
			m[k] = x
		}
		if v == nil {
			delete(m, key)
		} else {
			m[key] = v
		}
		return m
	}
	short := make([]float32, 10)
	repeated := make([]byte, 256) // all zero

	for _, tc := range []struct {
		name string
		in   map[string]any
	}{
		{"version", with(simplex, "version", 9)},
		{"algorithm", with(simplex, "algorithm", "value")},
		{"dimensions", with(simplex, "dimensions", 0)},
		{"wavelet dimensions", with(wavelet, "dimensions", 4)},
		{"short permutation", with(simplex, "permutation", []byte{1, 2, 3})},
		{"repeated permutation", with(simplex, "permutation", repeated)},
		{"simplex gradients", with(simplex, "gradients", perlin["gradients"])},
		{"perlin without gradients", with(perlin, "gradients", nil)},
		{"perlin gradient length", with(perlin, "gradients", [][]float32{{1, 0, 0}})},
		{"short tile", with(wavelet, "tile", short)},
		{"tile on perlin", with(perlin, "tile", short)},
		{"seed on wavelet", with(wavelet, "seed", 5)},
		{"missing seed", with(osn, "seed", nil)},
		{"table on opensimplex", with(osn, "permutation", simplex["permutation"])},
	} {
		data, err := json.Marshal(tc.in)
		require.NoError(t, err)

		g := newGenerator(t, noise.Perlin, 1, 3)
		before := sampleAll(t, g, [][]float32{{0.3}, {7.9}})
		err = json.Unmarshal(data, g)
		assert.ErrorIs(t, err, noise.ErrSerialization, tc.name)
		assert.Equal(t, before, sampleAll(t, g, [][]float32{{0.3}, {7.9}}), "%s: generator modified", tc.name)
		assert.Equal(t, 1, g.Dimensions())
	}

	var g noise.Generator
	for _, in := range []string{``, `[]`, `{"version":`} {
		err := g.UnmarshalJSON([]byte(in))
		assert.ErrorIs(t, err, noise.ErrSerialization, "%q", in)
	}
}

func TestSnapshotFields(t *testing.T) {
	data, err := json.Marshal(newGenerator(t, noise.OpenSimplex, 4, 1))
	require.NoError(t, err)
	s := string(data)
	for _, want := range []string{`"algorithm":"opensimplex"`, `"dimensions":4`, `"seed":`} {
		assert.True(t, strings.Contains(s, want), "%s missing %s", s, want)
	}
	assert.NotContains(t, s, "permutation")
}
