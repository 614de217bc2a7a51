// File: view.go
// Role: Non-mutating graph copies.
// Determinism:
//   - Preserves vertex and edge IDs, and edge creation order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// Clone returns a deep copy of the graph topology. Vertex Metadata maps are
// shared with the source.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return copyGraph(g, nil)
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	return copyGraph(g, func(id string) bool { return keep[id] })
}

// copyGraph copies vertices accepted by keep (all when keep is nil) together
// with the edges between them.
func copyGraph(g *Graph, keep func(string) bool) *Graph {
	var opts []GraphOption
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	out := NewGraph(opts...)

	g.muVert.RLock()
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		if keep != nil && !keep(id) {
			continue
		}
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacencyList[id] = make(map[string]string)
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Carry the counter so future AddEdge() calls cannot collide with copied IDs.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if _, ok := out.vertices[e.From]; !ok {
			continue
		}
		if _, ok := out.vertices[e.To]; !ok {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, seq: e.seq}
		out.adjacencyList[e.From][e.To] = eid
		out.adjacencyList[e.To][e.From] = eid
	}
	g.muEdgeAdj.RUnlock()
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
