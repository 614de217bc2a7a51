package automorphism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/canonlab/automorphism"
	"github.com/katalvlaran/canonlab/builder"
)

func TestFromCore(t *testing.T) {
	_, err := automorphism.FromCore(nil)
	assert.ErrorIs(t, err, automorphism.ErrGraphNil)

	cg := fromBuilder(t, builder.Path(3))
	assert.Equal(t, 3, cg.Order())
	assert.Equal(t, 2, cg.Size())
	assert.Equal(t, []string{"0", "1", "2"}, cg.VertexIDs([]int{0, 1, 2}))
	e := cg.EdgeIndex(2, 1)
	require.GreaterOrEqual(t, e, 0)
	u, v := cg.Endpoints(e)
	assert.ElementsMatch(t, []int{1, 2}, []int{u, v})
	assert.Equal(t, -1, cg.EdgeIndex(0, 2))
	assert.Equal(t, int64(0), cg.Weight(e))
}

func TestFromGonum_AgreesWithCore(t *testing.T) {
	_, err := automorphism.FromGonum(nil)
	assert.ErrorIs(t, err, automorphism.ErrGraphNil)

	// Petersen graph: outer 5-cycle, inner pentagram, spokes.
	ug := simple.NewUndirectedGraph()
	for i := 0; i < 5; i++ {
		ug.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node((i + 1) % 5)})
		ug.SetEdge(simple.Edge{F: simple.Node(i + 5), T: simple.Node((i+2)%5 + 5)})
		ug.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(i + 5)})
	}
	gg, err := automorphism.FromGonum(ug)
	require.NoError(t, err)
	assert.Equal(t, 10, gg.Order())
	assert.Equal(t, 15, gg.Size())
	assert.Equal(t, int64(7), gg.NodeID(7))

	canon := automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(nil))
	fromGonum := process(t, gg, canon)
	fromCore := process(t, fromBuilder(t, builder.Petersen()), canon)
	assert.Equal(t, fromCore.OrbitCount(), fromGonum.OrbitCount())

	a, err := fromGonum.CanonicalForm(nil)
	require.NoError(t, err)
	b, err := fromCore.CanonicalForm(nil)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestFromGonum_Weights(t *testing.T) {
	wg := simple.NewWeightedUndirectedGraph(0, 0)
	wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(10), T: simple.Node(20), W: 1})
	wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(20), T: simple.Node(30), W: 1})
	wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(30), T: simple.Node(40), W: 2})

	gg, err := automorphism.FromGonum(wg)
	require.NoError(t, err)
	assert.Equal(t, 2.0, gg.Weight(gg.EdgeIndex(2, 3)))

	plain := process(t, gg)
	assert.Equal(t, 2, plain.OrbitCount())
	ranked := process(t, gg, automorphism.WithEdgeRank(gg.EdgeWeightRank()))
	assert.Equal(t, 4, ranked.OrbitCount())
}
