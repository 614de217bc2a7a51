// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// relabel.go: isomorphic copies under a vertex permutation.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/canonlab/core"
)

const methodRelabel = "Relabel"

// Relabel returns a new graph isomorphic to g in which vertex Vertices()[i]
// becomes newIDs[perm[i]] and vertices are inserted in the permuted order.
// Edges are re-added in a permuted order as well, so any structure derived
// from insertion order differs from g. Weights and vertex Metadata carry over.
//
// Errors:
//   - ErrOptionViolation if perm is not a permutation of 0..V-1 or newIDs is too short.
func Relabel(g *core.Graph, perm []int, newIDs IDFn) (*core.Graph, error) {
	ids := g.Vertices()
	if len(perm) != len(ids) {
		return nil, fmt.Errorf("%s: perm has %d entries for %d vertices: %w", methodRelabel, len(perm), len(ids), ErrOptionViolation)
	}
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return nil, fmt.Errorf("%s: not a permutation: %w", methodRelabel, ErrOptionViolation)
		}
		seen[p] = true
	}
	if newIDs == nil {
		newIDs = DefaultIDFn
	}

	var opts []core.GraphOption
	if g.Weighted() {
		opts = append(opts, core.WithWeighted())
	}
	out := core.NewGraph(opts...)
	rename := make(map[string]string, len(ids))
	inv := make([]int, len(perm))
	for i, p := range perm {
		rename[ids[i]] = newIDs(p)
		inv[p] = i
	}
	for p := range inv {
		src := ids[inv[p]]
		if err := out.AddVertex(newIDs(p)); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodRelabel, newIDs(p), err)
		}
		if v, err := g.GetVertex(src); err == nil {
			nv, _ := out.GetVertex(newIDs(p))
			for k, val := range v.Metadata {
				nv.Metadata[k] = val
			}
		}
	}

	edges := g.Edges()
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	// Deterministic shuffle of edge insertion order, keyed by the permutation.
	seed := int64(0)
	for i, p := range perm {
		seed = seed*31 + int64(i^p)
	}
	rand.New(rand.NewSource(seed)).Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	for _, k := range order {
		e := edges[k]
		u, v := rename[e.From], rename[e.To]
		if k%2 == 1 {
			u, v = v, u
		}
		if err := addEdge(out, methodRelabel, u, v, e.Weight); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// RandomPermutation returns a seeded permutation of 0..n-1.
func RandomPermutation(n int, seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}
