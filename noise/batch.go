// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package noise

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

// A Sampler maps a point to a value. Generator and Fractal are Samplers.
type Sampler interface {
	Get(p []float32) (float32, error)
}

var (
	_ Sampler = (*Generator)(nil)
	_ Sampler = (*Fractal)(nil)
)

// minChunk is the fewest points one goroutine evaluates.
const minChunk = 256

// SampleAll evaluates s at every point, writing the value for points[i]
// to dst[i]. Points are split across at most GOMAXPROCS goroutines, so s
// must be safe for concurrent use; Generator and Fractal are.
//
// It fails with ErrDimensionMismatch if len(dst) != len(points), returns
// the first error s reports, and stops early with ctx.Err() if ctx is
// canceled. dst is partially written on error.
func SampleAll(ctx context.Context, s Sampler, points [][]float32, dst []float32) error {
	if len(dst) != len(points) {
		return xerrors.Errorf("noise: SampleAll: %d points, %d outputs: %w", len(points), len(dst), ErrDimensionMismatch)
	}
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(points) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(points); lo += chunk {
		hi := min(lo+chunk, len(points))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%minChunk == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				v, err := s.Get(points[i])
				if err != nil {
					return xerrors.Errorf("noise: SampleAll: point %d: %w", i, err)
				}
				dst[i] = v
			}
			return nil
		})
	}
	return g.Wait()
}
