package bfs

import "github.com/katalvlaran/canonlab/core"

// Components partitions the vertices of g into connected components.
// Components are ordered by their smallest vertex ID and each component lists
// its vertices in BFS order from that vertex. FilterNeighbor and Ctx apply;
// MaxDepth and OnVisit are ignored.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	o.MaxDepth = 0
	o.OnVisit = func(string, int) error { return nil }

	visited := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if visited[id] {
			continue
		}
		w := newWalker(g, o, visited)
		w.enqueue(id, 0, "")
		if err := w.loop(); err != nil {
			return nil, err
		}
		out = append(out, w.res.Order)
	}

	return out, nil
}

// ComponentIndex maps every vertex ID to the index of its component in
// Components(g).
func ComponentIndex(g *core.Graph, opts ...Option) (map[string]int, error) {
	comps, err := Components(g, opts...)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]int, g.VertexCount())
	for i, comp := range comps {
		for _, id := range comp {
			idx[id] = i
		}
	}

	return idx, nil
}
