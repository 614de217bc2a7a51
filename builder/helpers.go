// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// helpers.go: shared vertex/edge emission used by several constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/canonlab/core"
)

// centerVertexID is the fixed hub ID used by Star, Wheel and stellated solids.
const centerVertexID = "Center"

// chord is an unordered index pair {U,V} with U<V in static datasets.
type chord struct {
	U, V int
}

// addIndexedVertices adds idFn(0..n-1) in ascending order.
func addIndexedVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	var (
		i   int
		id  string
		err error
	)
	for i = 0; i < n; i++ {
		id = cfg.idFn(i)
		if err = g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addChords emits every chord as an edge between idFn(U) and idFn(V).
func addChords(g *core.Graph, cfg builderConfig, method string, chords []chord) error {
	useWeight := g.Weighted()
	for _, ch := range chords {
		if err := addEdge(g, method, cfg.idFn(ch.U), cfg.idFn(ch.V), cfg.edgeWeight(useWeight)); err != nil {
			return err
		}
	}

	return nil
}

// addEdge wraps core.AddEdge with the method tag.
func addEdge(g *core.Graph, method, u, v string, w int64) error {
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// addSpokes connects hub to idFn(0..n-1).
func addSpokes(g *core.Graph, cfg builderConfig, method, hub string, n int) error {
	if err := g.AddVertex(hub); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, hub, err)
	}
	useWeight := g.Weighted()
	for i := 0; i < n; i++ {
		if err := addEdge(g, method, hub, cfg.idFn(i), cfg.edgeWeight(useWeight)); err != nil {
			return err
		}
	}

	return nil
}
