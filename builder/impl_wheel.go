// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// impl_wheel.go: Wheel(n): rim C_{n-1} plus hub "Center".

package builder

import (
	"fmt"

	"github.com/katalvlaran/canonlab/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim must be a cycle (≥ 3)
)

// Wheel returns a Constructor for W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		return addSpokes(g, cfg, methodWheel, centerVertexID, n-1)
	}
}
