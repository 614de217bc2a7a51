package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/canonlab/bfs"
	"github.com/katalvlaran/canonlab/builder"
	"github.com/katalvlaran/canonlab/core"
)

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_CycleDepths(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(6))
	require.NoError(t, err)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "F", "C", "E", "D"}, res.Order)
	assert.Equal(t, 3, res.Depth["D"])

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Len(t, path, 4)
	assert.Equal(t, "A", path[0])
}

func TestBFS_WeightedGraphTraversed(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("C", "O", 2)
	require.NoError(t, err)

	res, err := bfs.BFS(g, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "O"}, res.Order)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(6))
	require.NoError(t, err)

	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)

	res, err = bfs.BFS(g, "0", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "3" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	stop := errors.New("stop")

	_, err = bfs.BFS(g, "0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "1" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_Cancellation(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = bfs.BFS(g, "0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"a", "b"}, {"b", "c"}, {"x", "y"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("m"))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"m"}, {"x", "y"}}, comps)

	idx, err := bfs.ComponentIndex(g)
	require.NoError(t, err)
	assert.Equal(t, 0, idx["c"])
	assert.Equal(t, 1, idx["m"])
	assert.Equal(t, 2, idx["y"])

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
