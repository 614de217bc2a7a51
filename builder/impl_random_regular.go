// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// impl_random_regular.go: RandomRegular(n, d): a random simple d-regular graph
// by stub matching with bounded retries.
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n, n·d even, rng required.
//   • Rejected matchings (loops or repeated pairs) are retried up to
//     maxStubMatchingAttempts times, then ErrConstructFailed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/canonlab/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 64
)

// RandomRegular returns a Constructor for a random d-regular graph on n vertices.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrOptionViolation)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrOptionViolation)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}
		if err := addIndexedVertices(g, cfg, methodRandomRegular, n); err != nil {
			return err
		}

		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		rng := cfg.rng
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simpleMatching(stubs) {
				continue
			}
			useWeight := g.Weighted()
			for i := 0; i < stubCount; i += 2 {
				if err := addEdge(g, methodRandomRegular, cfg.idFn(stubs[i]), cfg.idFn(stubs[i+1]), cfg.edgeWeight(useWeight)); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simpleMatching reports whether consecutive stub pairs form a simple graph.
func simpleMatching(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
