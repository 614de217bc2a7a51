// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// impl_bipartite.go: CompleteBipartite(n1, n2): K_{n1,n2}.
//
// Contract:
//   • n1, n2 ≥ 1.
//   • Left IDs leftPrefix+i, right IDs rightPrefix+j (see WithPartitionPrefix).

package builder

import (
	"fmt"

	"github.com/katalvlaran/canonlab/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := SymbolNumberIDFn(cfg.leftPrefix)
		right := SymbolNumberIDFn(cfg.rightPrefix)
		for i := 0; i < n1; i++ {
			if err := g.AddVertex(left(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, left(i), err)
			}
		}
		for j := 0; j < n2; j++ {
			if err := g.AddVertex(right(j)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, right(j), err)
			}
		}
		useWeight := g.Weighted()
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addEdge(g, methodCompleteBipartite, left(i), right(j), cfg.edgeWeight(useWeight)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
