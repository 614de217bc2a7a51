// Package automorphism computes the automorphism group orbits and a canonical
// vertex ordering of an undirected, optionally coloured graph.
//
// The search follows the partition-backtracking scheme popularised by nauty:
//
//   - Preparation copies the input into a compact internal graph over 0..n-1,
//     skipping ignored vertices, and splits the vertices into initial cells
//     by a caller-supplied rank or comparator. Only comparator orderings use
//     degree as a key; otherwise degree enters through refinement.
//   - Refinement makes the ordered partition equitable: every vertex of a
//     cell has the same number of neighbours in every other cell (per edge
//     rank when an EdgeRank is configured).
//   - The driver individualises one vertex of a target cell, refines again,
//     and descends until the partition is discrete (a leaf). The first leaf is
//     the reference; every later leaf is either an automorphism relative to it
//     or, with a canonical comparator, a candidate for the best labelling.
//   - Found automorphisms merge orbits and prune the remaining branches.
//
// The recursion of the classic algorithm is expressed as an explicit frame
// stack, so deep searches never grow the goroutine stack.
//
// Usage:
//
//	s, err := automorphism.New(
//		automorphism.WithEdgeRank(bondOrder),
//		automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(bondOrder)),
//	)
//	if err != nil { ... }
//	if err := s.Process(ctx, g); err != nil { ... }
//	order := s.CanonicalNumbering()
//	orbits := s.Orbits()
//
// A Search is not safe for concurrent use; independent searches share nothing.
// Results stay valid until the next Process call and are cleared when Process
// fails.
//
// Errors:
//
//	ErrGraphNil          - nil graph.
//	ErrConfiguration     - conflicting or invalid options, malformed graph.
//	ErrInternalInvariant - the search reached an impossible state.
//	ErrCancelled         - the context was cancelled; wraps ctx.Err().
package automorphism
