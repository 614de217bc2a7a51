// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// api.go: public entry points: Constructor and BuildGraph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/canonlab/core"
)

// Constructor mutates g according to one graph family, reading IDs, weights
// and randomness from cfg. Implementations return errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts once, and applies the
// constructors in order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "BuildGraph:".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
