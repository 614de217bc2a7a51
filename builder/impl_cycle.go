// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// impl_cycle.go: Cycle(n): the simple cycle C_n.
//
// Contract:
//   • n ≥ 3.
//   • Edges i-(i+1 mod n) for i ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/canonlab/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		useWeight := g.Weighted()
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n), cfg.edgeWeight(useWeight)); err != nil {
				return err
			}
		}

		return nil
	}
}
