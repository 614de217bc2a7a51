package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/canonlab/core"
)

func newSquareWithTail(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    int64
	}{{"A", "B", 1}, {"B", "C", 2}, {"C", "D", 1}, {"D", "A", 2}, {"D", "T", 1}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestInducedSubgraph(t *testing.T) {
	g := newSquareWithTail(t)
	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true, "D": true})

	assert.Equal(t, []string{"A", "B", "D"}, sub.Vertices())
	assert.Equal(t, 2, sub.EdgeCount())
	assert.True(t, sub.HasEdge("A", "B"))
	assert.True(t, sub.HasEdge("A", "D"))
	assert.False(t, sub.HasEdge("B", "C"))
	assert.True(t, sub.Weighted())

	// the source is untouched
	assert.Equal(t, 5, g.EdgeCount())
}

func TestClone_IndependentTopology(t *testing.T) {
	g := newSquareWithTail(t)
	c := g.Clone()
	require.NoError(t, c.RemoveVertex("T"))

	assert.True(t, g.HasVertex("T"))
	assert.Equal(t, 4, c.EdgeCount())

	// new edges in the clone continue the ID sequence
	eid, err := c.AddEdge("A", "C", 0)
	require.NoError(t, err)
	assert.Equal(t, "e6", eid)
	ids := make([]string, 0)
	for _, e := range c.Edges() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"e1", "e2", "e3", "e4", "e6"}, ids)
}
