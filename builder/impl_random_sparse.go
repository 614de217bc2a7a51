// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// impl_random_sparse.go: RandomSparse(n, p): Erdős–Rényi G(n,p).
//
// Contract:
//   • n ≥ 1, p ∈ [0,1].
//   • rng is required for 0<p<1; p=0 and p=1 are deterministic without it.
//   • Pairs (i,j), i<j, are visited in lexicographic order; one Float64 draw per pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/canonlab/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for a seeded G(n,p) sample.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addIndexedVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		useWeight := g.Weighted()
		rng := cfg.rng
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				keep := p == probMax
				if rng != nil && p > probMin && p < probMax {
					keep = rng.Float64() <= p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, methodRandomSparse, cfg.idFn(i), cfg.idFn(j), cfg.edgeWeight(useWeight)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
