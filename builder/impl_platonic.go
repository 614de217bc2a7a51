// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// impl_platonic.go: PlatonicSolid(name, withCenter) and Petersen().
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation.
//   • Shell vertices idFn(0..n-1); shell edges in the pre-sorted dataset order.
//   • withCenter adds hub "Center" joined to every shell vertex.
//
// Complexity: O(V+E) with V ≤ 21, E ≤ 50.

package builder

import (
	"fmt"

	"github.com/katalvlaran/canonlab/core"
)

const (
	methodPlatonicSolid = "PlatonicSolid"
	methodPetersen      = "Petersen"
	petersenVertices    = 10
)

// PlatonicSolid returns a Constructor for the chosen solid's skeleton,
// optionally stellated with a central hub.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		if err := addIndexedVertices(g, cfg, methodPlatonicSolid, n); err != nil {
			return err
		}
		if err := addChords(g, cfg, methodPlatonicSolid, platonicEdgeSets[name]); err != nil {
			return err
		}
		if withCenter {
			return addSpokes(g, cfg, methodPlatonicSolid, centerVertexID, n)
		}

		return nil
	}
}

// Petersen returns a Constructor for the Petersen graph: outer 5-cycle
// 0..4, spokes i-i+5, inner pentagram on 5..9.
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := addIndexedVertices(g, cfg, methodPetersen, petersenVertices); err != nil {
			return err
		}

		return addChords(g, cfg, methodPetersen, petersenEdges)
	}
}
