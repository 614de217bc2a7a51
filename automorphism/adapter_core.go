package automorphism

import (
	"fmt"

	"github.com/katalvlaran/canonlab/core"
)

// CoreGraph is a frozen Graph view of a *core.Graph. Vertex ids follow
// core.Graph.Vertices order, edge ids follow core.Graph.Edges order.
type CoreGraph struct {
	ids     []string
	index   map[string]int
	edges   [][2]int
	weights []int64
	lookup  map[[2]int]int
}

// FromCore snapshots g. Later changes to g are not reflected.
func FromCore(g *core.Graph) (*CoreGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	cg := &CoreGraph{
		ids:   ids,
		index: make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		cg.index[id] = i
	}
	es := g.Edges()
	cg.edges = make([][2]int, 0, len(es))
	cg.weights = make([]int64, 0, len(es))
	cg.lookup = make(map[[2]int]int, len(es))
	for _, e := range es {
		u, ok1 := cg.index[e.From]
		v, ok2 := cg.index[e.To]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: edge %s has unknown endpoint", ErrConfiguration, e.ID)
		}
		cg.lookup[pairKey(u, v)] = len(cg.edges)
		cg.edges = append(cg.edges, [2]int{u, v})
		cg.weights = append(cg.weights, e.Weight)
	}

	return cg, nil
}

func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// Order implements Graph.
func (cg *CoreGraph) Order() int { return len(cg.ids) }

// Size implements Graph.
func (cg *CoreGraph) Size() int { return len(cg.edges) }

// Endpoints implements Graph.
func (cg *CoreGraph) Endpoints(e int) (int, int) { return cg.edges[e][0], cg.edges[e][1] }

// EdgeIndex implements Graph.
func (cg *CoreGraph) EdgeIndex(u, v int) int {
	if e, ok := cg.lookup[pairKey(u, v)]; ok {
		return e
	}

	return -1
}

// VertexID returns the core vertex ID of vertex i.
func (cg *CoreGraph) VertexID(i int) string { return cg.ids[i] }

// Index returns the vertex index of a core vertex ID.
func (cg *CoreGraph) Index(id string) (int, bool) {
	i, ok := cg.index[id]

	return i, ok
}

// Weight returns the weight of edge e.
func (cg *CoreGraph) Weight(e int) int64 { return cg.weights[e] }

// VertexIDs translates vertex indices into core vertex IDs.
func (cg *CoreGraph) VertexIDs(vs []int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = cg.ids[v]
	}

	return out
}

// EdgeWeightRank ranks edges by their core weight. The returned function
// expects the Graph passed to it to be cg.
func (cg *CoreGraph) EdgeWeightRank() EdgeRankFunc {
	return func(_ Graph, e int) int { return int(cg.weights[e]) }
}
