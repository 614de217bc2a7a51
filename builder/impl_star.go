// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// impl_star.go: Star(n): hub "Center" plus n-1 leaves.

package builder

import (
	"fmt"

	"github.com/katalvlaran/canonlab/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodStar, n-1); err != nil {
			return err
		}

		return addSpokes(g, cfg, methodStar, centerVertexID, n-1)
	}
}
