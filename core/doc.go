// Package core provides the thread-safe, in-memory undirected Graph used as the
// default input of the canonical labeling engine.
//
// A Graph G = (V,E) is simple: no self-loops and no parallel edges. Edges may
// carry an integer Weight, which downstream packages interpret as an edge rank
// (for molecules: the bond order).
//
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Constant-time edge lookup via nested maps:
//     adjacencyList[from][to] = edgeID (mirrored for both endpoints)
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices() returns IDs sorted ascending; Edges() returns edges in insertion
//	order (sequence of their IDs); NeighborIDs() is sorted. Anything indexing a
//	Graph by position (for example automorphism.FromCore) relies on this.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error    // O(1)
//	HasEdge(from, to string) bool      // O(1)
//	EdgeBetween(from, to string) (*Edge, error)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d)
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//	Degree(id string) (int, error)           // O(1)
//
//	// Cloning and views
//	Clone() *Graph
//	InducedSubgraph(g, keep) *Graph
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
