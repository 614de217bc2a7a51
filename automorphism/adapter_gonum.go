package automorphism

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
)

// GonumGraph is a frozen Graph view of a gonum undirected graph. Vertex ids
// follow ascending gonum node IDs; edges are enumerated from the lower id.
type GonumGraph struct {
	ids     []int64
	index   map[int64]int
	edges   [][2]int
	weights []float64
	lookup  map[[2]int]int
}

// FromGonum snapshots g. Edge weights are read from graph.WeightedUndirected
// when g implements it and are 1 otherwise.
func FromGonum(g graph.Undirected) (*GonumGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := make([]int64, 0)
	nodes := g.Nodes()
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	gg := &GonumGraph{ids: ids, index: make(map[int64]int, len(ids)), lookup: make(map[[2]int]int)}
	for i, id := range ids {
		gg.index[id] = i
	}
	wg, weighted := g.(graph.WeightedUndirected)

	for u, uid := range ids {
		adj := g.From(uid)
		var nbrs []int
		for adj.Next() {
			vid := adj.Node().ID()
			v, ok := gg.index[vid]
			if !ok {
				return nil, fmt.Errorf("%w: neighbour %d of %d is not a node", ErrConfiguration, vid, uid)
			}
			if v > u {
				nbrs = append(nbrs, v)
			}
		}
		sort.Ints(nbrs)
		for _, v := range nbrs {
			w := 1.0
			if weighted {
				if x, ok := wg.Weight(uid, ids[v]); ok {
					w = x
				}
			}
			gg.lookup[[2]int{u, v}] = len(gg.edges)
			gg.edges = append(gg.edges, [2]int{u, v})
			gg.weights = append(gg.weights, w)
		}
	}

	return gg, nil
}

// Order implements Graph.
func (gg *GonumGraph) Order() int { return len(gg.ids) }

// Size implements Graph.
func (gg *GonumGraph) Size() int { return len(gg.edges) }

// Endpoints implements Graph.
func (gg *GonumGraph) Endpoints(e int) (int, int) { return gg.edges[e][0], gg.edges[e][1] }

// EdgeIndex implements Graph.
func (gg *GonumGraph) EdgeIndex(u, v int) int {
	if e, ok := gg.lookup[pairKey(u, v)]; ok {
		return e
	}

	return -1
}

// NodeID returns the gonum node ID of vertex i.
func (gg *GonumGraph) NodeID(i int) int64 { return gg.ids[i] }

// Weight returns the weight of edge e.
func (gg *GonumGraph) Weight(e int) float64 { return gg.weights[e] }

// EdgeWeightRank ranks edges by their weight rounded to the nearest integer.
func (gg *GonumGraph) EdgeWeightRank() EdgeRankFunc {
	return func(_ Graph, e int) int { return int(math.Round(gg.weights[e])) }
}
