// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// impl_complete.go: Complete(n): the complete graph K_n.
//
// Contract:
//   • n ≥ 1 (K_1 is a single isolated vertex).
//   • Edges emitted for i<j in lexicographic (i,j) order.
//
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/canonlab/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		useWeight := g.Weighted()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, cfg.idFn(i), cfg.idFn(j), cfg.edgeWeight(useWeight)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Empty returns a Constructor for n isolated vertices (n ≥ 0).
func Empty(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 {
			return fmt.Errorf("Empty: n=%d < min=0: %w", n, ErrTooFewVertices)
		}

		return addIndexedVertices(g, cfg, "Empty", n)
	}
}
