package automorphism

import (
	"fmt"
	"sort"
)

// Graph is the read-only view the search needs. Vertex ids are
// 0..Order()-1 and edge ids 0..Size()-1; the graph must be simple.
type Graph interface {
	// Order returns the number of vertex ids.
	Order() int
	// Size returns the number of edges.
	Size() int
	// Endpoints returns the two vertex ids of edge e.
	Endpoints(e int) (u, v int)
	// EdgeIndex returns the edge joining u and v, or -1.
	EdgeIndex(u, v int) int
}

// internalGraph is the compact copy built by prepare. Vertices are
// 0..n-1; nbr lists are sorted so edge lookups are binary searches.
type internalGraph struct {
	n       int
	edges   [][2]int // internal endpoints per internal edge
	orig    []int    // original edge id per internal edge
	rank    []int    // dense edge rank per internal edge; nil without EdgeRank
	rawRank []int    // caller's edge rank per internal edge; nil without EdgeRank
	nbr     [][]int  // sorted neighbour lists
	nbrEdge [][]int  // internal edge ids aligned with nbr
	degree  []int
}

func (ig *internalGraph) reset(n int) {
	ig.n = n
	ig.edges = ig.edges[:0]
	ig.orig = ig.orig[:0]
	ig.rank = nil
	ig.rawRank = nil
	ig.nbr = resizeNested(ig.nbr, n)
	ig.nbrEdge = resizeNested(ig.nbrEdge, n)
	ig.degree = resizeInts(ig.degree, n)
}

func (ig *internalGraph) addEdge(u, v, orig int) {
	ig.edges = append(ig.edges, [2]int{u, v})
	ig.orig = append(ig.orig, orig)
}

// index sorts adjacency and rejects parallel edges.
func (ig *internalGraph) index() error {
	for e, uv := range ig.edges {
		u, v := uv[0], uv[1]
		ig.nbr[u] = append(ig.nbr[u], v)
		ig.nbrEdge[u] = append(ig.nbrEdge[u], e)
		ig.nbr[v] = append(ig.nbr[v], u)
		ig.nbrEdge[v] = append(ig.nbrEdge[v], e)
	}
	for u := 0; u < ig.n; u++ {
		sort.Sort(adjacency{ig.nbr[u], ig.nbrEdge[u]})
		for k := 1; k < len(ig.nbr[u]); k++ {
			if ig.nbr[u][k] == ig.nbr[u][k-1] {
				return fmt.Errorf("%w: parallel edges %d and %d", ErrConfiguration,
					ig.orig[ig.nbrEdge[u][k-1]], ig.orig[ig.nbrEdge[u][k]])
			}
		}
		ig.degree[u] = len(ig.nbr[u])
	}

	return nil
}

// edgeIndex returns the internal edge joining u and v, or -1.
func (ig *internalGraph) edgeIndex(u, v int) int {
	ns := ig.nbr[u]
	k := sort.SearchInts(ns, v)
	if k < len(ns) && ns[k] == v {
		return ig.nbrEdge[u][k]
	}

	return -1
}

type adjacency struct {
	nbr, edge []int
}

func (a adjacency) Len() int           { return len(a.nbr) }
func (a adjacency) Less(i, j int) bool { return a.nbr[i] < a.nbr[j] }
func (a adjacency) Swap(i, j int) {
	a.nbr[i], a.nbr[j] = a.nbr[j], a.nbr[i]
	a.edge[i], a.edge[j] = a.edge[j], a.edge[i]
}

func resizeInts(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = 0
	}

	return s
}

func resizeBools(s []bool, n int) []bool {
	if cap(s) < n {
		return make([]bool, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = false
	}

	return s
}

func resizeNested(s [][]int, n int) [][]int {
	if cap(s) < n {
		return make([][]int, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = s[i][:0]
	}

	return s
}
