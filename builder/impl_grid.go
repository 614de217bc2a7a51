// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// impl_grid.go: Grid(rows, cols): the rows×cols lattice with "r,c" IDs.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/canonlab/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for the rectangular lattice; the ID scheme is
// fixed to "r,c" and ignores WithIDScheme.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(gridVertexID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, gridVertexID(r, c), err)
				}
			}
		}
		useWeight := g.Weighted()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := addEdge(g, methodGrid, u, gridVertexID(r, c+1), cfg.edgeWeight(useWeight)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, u, gridVertexID(r+1, c), cfg.edgeWeight(useWeight)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
