// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// impl_path.go: Path(n): the simple path P_n on n vertices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/canonlab/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for P_n: 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		useWeight := g.Weighted()
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, methodPath, cfg.idFn(i), cfg.idFn(i+1), cfg.edgeWeight(useWeight)); err != nil {
				return err
			}
		}

		return nil
	}
}
