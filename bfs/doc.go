// Package bfs provides breadth-first traversal and connected-component
// decomposition over a core.Graph.
//
// What
//
//   - BFS explores vertices in non-decreasing edge distance from a start vertex
//     and returns a BFSResult (visit Order, Depth, Parent).
//   - Components partitions all vertices into connected components, ordered by
//     their smallest vertex ID; the molecule canonicalizer uses it to tell
//     disconnected fragments apart.
//   - Hooks: OnVisit (may abort with an error) and FilterNeighbor.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Edge weights are ignored: distances count edges.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues neighbors in that
//	order, so the visit sequence is reproducible.
//
// Cancellation
//
//	WithContext(ctx) is polled before each dequeue; a cancelled traversal
//	returns ctx.Err() together with the partial result.
package bfs
