// Package builder provides deterministic, functional-options-style constructors
// for the graph families used to exercise canonical labeling: complete graphs,
// paths, cycles, stars, wheels, complete bipartite graphs, grids, Platonic
// solids, the Petersen graph, and seeded random graphs. Relabel produces an
// isomorphic copy under a vertex permutation.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID-scheme, weight function, prefixes.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – SymbolNumberIDFn:  prefix + decimal ("C0","C1",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer in [min,max].
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping package sentinels (errors.Is friendly).
//   - Equal inputs (including seed) yield identical graphs.
package builder
