package automorphism_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/canonlab/automorphism"
	"github.com/katalvlaran/canonlab/builder"
)

// edgeList is a minimal Graph for malformed and hand-made inputs.
type edgeList struct {
	n     int
	edges [][2]int
}

func (g edgeList) Order() int { return g.n }
func (g edgeList) Size() int  { return len(g.edges) }
func (g edgeList) Endpoints(e int) (int, int) {
	return g.edges[e][0], g.edges[e][1]
}
func (g edgeList) EdgeIndex(u, v int) int {
	for i, e := range g.edges {
		if (e[0] == u && e[1] == v) || (e[0] == v && e[1] == u) {
			return i
		}
	}
	return -1
}

func fromBuilder(t *testing.T, c builder.Constructor, bopts ...builder.BuilderOption) *automorphism.CoreGraph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, c)
	require.NoError(t, err)
	cg, err := automorphism.FromCore(g)
	require.NoError(t, err)

	return cg
}

func process(t *testing.T, g automorphism.Graph, opts ...automorphism.Option) *automorphism.Search {
	t.Helper()
	s, err := automorphism.New(opts...)
	require.NoError(t, err)
	require.NoError(t, s.Process(context.Background(), g))

	return s
}

// groups turns a per-vertex orbit slice into sorted member lists, skipping -1.
func groups(orbits []int) [][]int {
	byRep := make(map[int][]int)
	for v, o := range orbits {
		if o >= 0 {
			byRep[o] = append(byRep[o], v)
		}
	}
	out := make([][]int, 0, len(byRep))
	for _, members := range byRep {
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

func sizes(orbits []int) []int {
	var out []int
	for _, g := range groups(orbits) {
		out = append(out, len(g))
	}
	sort.Ints(out)

	return out
}

func TestSearch_KnownOrbits(t *testing.T) {
	cases := []struct {
		name  string
		c     builder.Constructor
		sizes []int
	}{
		{"K4", builder.Complete(4), []int{4}},
		{"P4", builder.Path(4), []int{2, 2}},
		{"C5", builder.Cycle(5), []int{5}},
		{"Empty4", builder.Empty(4), []int{4}},
		{"Star5", builder.Star(5), []int{1, 4}},
		{"Wheel6", builder.Wheel(6), []int{1, 5}},
		{"K23", builder.CompleteBipartite(2, 3), []int{2, 3}},
		{"Grid2x3", builder.Grid(2, 3), []int{2, 4}},
		{"Grid3x3", builder.Grid(3, 3), []int{1, 4, 4}},
		{"Petersen", builder.Petersen(), []int{10}},
		{"Cube", builder.PlatonicSolid(builder.Cube, false), []int{8}},
		{"Dodecahedron", builder.PlatonicSolid(builder.Dodecahedron, false), []int{20}},
		{"StellatedCube", builder.PlatonicSolid(builder.Cube, true), []int{1, 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := fromBuilder(t, tc.c)
			s := process(t, g)
			orbits := s.Orbits()
			require.Len(t, orbits, g.Order())
			assert.Equal(t, tc.sizes, sizes(orbits))
			assert.Equal(t, len(tc.sizes), s.OrbitCount())
			assert.ElementsMatch(t, identity(g.Order()), s.CanonicalNumbering())
		})
	}
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func TestSearch_OrbitRepresentatives(t *testing.T) {
	s := process(t, fromBuilder(t, builder.Path(4)))
	assert.Equal(t, []int{0, 1, 1, 0}, s.Orbits())
}

func TestSearch_EmptyInput(t *testing.T) {
	s := process(t, edgeList{})
	assert.Empty(t, s.Orbits())
	assert.Empty(t, s.CanonicalNumbering())
	assert.Equal(t, 0, s.OrbitCount())
}

func TestSearch_Deterministic(t *testing.T) {
	g := fromBuilder(t, builder.RandomSparse(16, 0.25), builder.WithSeed(11))
	opts := []automorphism.Option{
		automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(nil)),
	}
	a := process(t, g, opts...)
	b := process(t, g, opts...)
	assert.Equal(t, a.CanonicalNumbering(), b.CanonicalNumbering())
	assert.Equal(t, a.Orbits(), b.Orbits())
	assert.Equal(t, a.Stats(), b.Stats())

	// Reusing one Search gives the same answer.
	require.NoError(t, a.Process(context.Background(), g))
	assert.Equal(t, b.CanonicalNumbering(), a.CanonicalNumbering())
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := automorphism.New()
	require.NoError(t, err)
	err = s.Process(ctx, fromBuilder(t, builder.Complete(4)))
	assert.ErrorIs(t, err, automorphism.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, s.Orbits())
	assert.Nil(t, s.CanonicalNumbering())
	assert.Nil(t, s.CanonicallyOrderedOrbits())
}

func TestSearch_EdgeRankSensitivity(t *testing.T) {
	// Path a-b-c-d where c-d is a different kind of edge.
	g := edgeList{n: 4, edges: [][2]int{{0, 1}, {1, 2}, {2, 3}}}
	rank := func(_ automorphism.Graph, e int) int {
		if e == 2 {
			return 2
		}
		return 1
	}

	plain := process(t, g)
	assert.Equal(t, [][]int{{0, 3}, {1, 2}}, groups(plain.Orbits()))

	for _, extra := range [][]automorphism.Option{
		nil,
		{automorphism.WithSortedNeighbourhoodRefinement()},
		{automorphism.WithReverseDegreeRefinement()},
	} {
		opts := append([]automorphism.Option{automorphism.WithEdgeRank(rank)}, extra...)
		ranked := process(t, g, opts...)
		assert.Equal(t, 4, ranked.OrbitCount())
	}
}

func TestSearch_VertexRanksSplitOrbits(t *testing.T) {
	g := fromBuilder(t, builder.Cycle(6))
	want := [][]int{{0}, {1, 5}, {2, 4}, {3}}

	byRank := process(t, g, automorphism.WithVertexOrdering(automorphism.RankBy(
		func(_ automorphism.Graph, v int) int {
			if v == 0 {
				return 7
			}
			return -3
		})))
	assert.Equal(t, want, groups(byRank.Orbits()))

	byCmp := process(t, g, automorphism.WithVertexOrdering(automorphism.CompareBy(
		func(_ automorphism.Graph, v1, v2 int) int {
			b := func(v int) int {
				if v == 0 {
					return 1
				}
				return 0
			}
			return b(v1) - b(v2)
		})))
	assert.Equal(t, want, groups(byCmp.Orbits()))
	assert.Equal(t, want, groups(byCmp.CanonicallyOrderedOrbits()))
}

func TestSearch_DegreeFirst(t *testing.T) {
	g := fromBuilder(t, builder.Star(5))
	center, ok := g.Index("Center")
	require.True(t, ok)
	leaf := 0
	if leaf == center {
		leaf = 1
	}
	others := make([]int, 0, 3)
	for v := 0; v < g.Order(); v++ {
		if v != center && v != leaf {
			others = append(others, v)
		}
	}

	run := func(degreeFirst bool, key func(v int) int) *automorphism.Search {
		return process(t, g,
			automorphism.WithDegreeFirst(degreeFirst),
			automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(nil)),
			automorphism.WithVertexOrdering(automorphism.CompareBy(
				func(_ automorphism.Graph, v1, v2 int) int { return key(v1) - key(v2) })))
	}

	// The comparator prefers the hub, degree prefers the leaves.
	hubFirst := func(v int) int {
		if v == center {
			return 0
		}
		return 1
	}
	byCmp := run(false, hubFirst)
	byDeg := run(true, hubFirst)
	assert.Equal(t, 0, byCmp.CanonicallyOrderedOrbits()[center])
	assert.Equal(t, 1, byCmp.CanonicallyOrderedOrbits()[leaf])
	assert.Equal(t, 4, byDeg.CanonicallyOrderedOrbits()[center])
	assert.Equal(t, 0, byDeg.CanonicallyOrderedOrbits()[leaf])
	assert.Equal(t, groups(byDeg.Orbits()), groups(byCmp.Orbits()))
	assert.Equal(t, []int{1, 4}, sizes(byCmp.Orbits()))

	// Hub and one leaf tie under the comparator; degree breaks the tie.
	pair := func(v int) int {
		if v == center || v == leaf {
			return 0
		}
		return 1
	}
	byCmp = run(false, pair)
	byDeg = run(true, pair)
	cmpPos, degPos := byCmp.CanonicallyOrderedOrbits(), byDeg.CanonicallyOrderedOrbits()
	assert.Equal(t, 0, cmpPos[leaf])
	assert.Equal(t, 1, cmpPos[center])
	assert.Equal(t, 0, degPos[leaf])
	assert.Equal(t, 4, degPos[center])
	for _, v := range others {
		assert.Equal(t, 2, cmpPos[v], "vertex %d", v)
		assert.Equal(t, 1, degPos[v], "vertex %d", v)
	}
	assert.Equal(t, groups(byDeg.Orbits()), groups(byCmp.Orbits()))
	assert.Equal(t, []int{1, 1, 3}, sizes(byCmp.Orbits()))
}

func TestSearch_IgnoredVertices(t *testing.T) {
	g := fromBuilder(t, builder.Star(5))
	center, ok := g.Index("Center")
	require.True(t, ok)

	ignored := make([]bool, g.Order())
	ignored[center] = true
	s := process(t, g, automorphism.WithIgnoredVertices(ignored))

	orbits := s.Orbits()
	assert.Equal(t, -1, orbits[center])
	assert.Equal(t, []int{4}, sizes(orbits))
	assert.Len(t, s.CanonicalNumbering(), g.Order()-1)
	assert.NotContains(t, s.CanonicalNumbering(), center)
	assert.Equal(t, -1, s.CanonicallyOrderedOrbits()[center])
}

func TestSearch_StrategiesAgree(t *testing.T) {
	graphs := map[string]automorphism.Graph{
		"Petersen":  fromBuilder(t, builder.Petersen()),
		"Icosa":     fromBuilder(t, builder.PlatonicSolid(builder.Icosahedron, false)),
		"Grid3x4":   fromBuilder(t, builder.Grid(3, 4)),
		"K33":       fromBuilder(t, builder.CompleteBipartite(3, 3)),
		"Sparse":    fromBuilder(t, builder.RandomSparse(18, 0.2), builder.WithSeed(5)),
		"Regular":   fromBuilder(t, builder.RandomRegular(12, 3), builder.WithSeed(9)),
		"Edgeless7": fromBuilder(t, builder.Empty(7)),
	}
	variants := [][]automorphism.Option{
		{automorphism.WithSortedNeighbourhoodRefinement()},
		{automorphism.WithReverseDegreeRefinement()},
		{automorphism.WithSortedNeighbourhoodRefinement(), automorphism.WithReverseDegreeRefinement()},
		{automorphism.WithWorksize(1)},
		{automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(nil))},
		{automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(nil)), automorphism.WithWorksize(1)},
	}
	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			want := groups(process(t, g).Orbits())
			for i, v := range variants {
				got := groups(process(t, g, v...).Orbits())
				assert.Equal(t, want, got, "variant %d", i)
			}
		})
	}
}

func TestSearch_OnAutomorphism(t *testing.T) {
	g := fromBuilder(t, builder.PlatonicSolid(builder.Cube, false))
	var perms [][]int
	s := process(t, g, automorphism.WithOnAutomorphism(func(perm []int) {
		perms = append(perms, perm)
	}))
	require.NotEmpty(t, perms)
	assert.Equal(t, len(perms), s.Stats().Automorphisms)
	for _, p := range perms {
		require.Len(t, p, g.Order())
		for e := 0; e < g.Size(); e++ {
			u, v := g.Endpoints(e)
			assert.GreaterOrEqual(t, g.EdgeIndex(p[u], p[v]), 0)
		}
	}
}

func TestSearch_OnAutomorphismCanonical(t *testing.T) {
	g := fromBuilder(t, builder.PlatonicSolid(builder.Cube, false))
	var delivered int
	s := process(t, g,
		automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(nil)),
		automorphism.WithOnAutomorphism(func([]int) { delivered++ }))

	assert.Positive(t, delivered)
	assert.LessOrEqual(t, delivered, s.Stats().Automorphisms)
	assert.Equal(t, 1, s.OrbitCount())
}

func TestSearch_RankIgnoresDegree(t *testing.T) {
	g := fromBuilder(t, builder.Star(5))
	center, ok := g.Index("Center")
	require.True(t, ok)
	hubFirst := automorphism.RankBy(func(_ automorphism.Graph, v int) int {
		if v == center {
			return 0
		}
		return 1
	})

	for _, degreeFirst := range []bool{true, false} {
		s := process(t, g,
			automorphism.WithDegreeFirst(degreeFirst),
			automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(nil)),
			automorphism.WithVertexOrdering(hubFirst))
		assert.Equal(t, 0, s.CanonicallyOrderedOrbits()[center], "degree first %v", degreeFirst)
		assert.Equal(t, center, s.CanonicalNumbering()[0], "degree first %v", degreeFirst)
	}
}

func TestSearch_AutomorphismCheck(t *testing.T) {
	// Rejecting every non-identity map leaves every vertex in its own orbit.
	g := fromBuilder(t, builder.Cycle(5))
	s := process(t, g, automorphism.WithAutomorphismCheck(func(_ automorphism.Graph, perm []int) bool {
		for i, p := range perm {
			if i != p {
				return false
			}
		}
		return true
	}))
	assert.Equal(t, 5, s.OrbitCount())
}

func TestSearch_ConfigurationErrors(t *testing.T) {
	_, err := automorphism.New(automorphism.WithWorksize(0))
	assert.ErrorIs(t, err, automorphism.ErrConfiguration)

	_, err = automorphism.New(automorphism.WithCanonicalForm(nil))
	assert.ErrorIs(t, err, automorphism.ErrConfiguration)

	rank := automorphism.RankBy(func(automorphism.Graph, int) int { return 0 })
	cmp := automorphism.CompareBy(func(automorphism.Graph, int, int) int { return 0 })
	_, err = automorphism.New(automorphism.WithVertexOrdering(rank), automorphism.WithVertexOrdering(cmp))
	assert.ErrorIs(t, err, automorphism.ErrConfiguration)

	_, err = automorphism.New(automorphism.WithVertexOrdering(automorphism.RankBy(nil)))
	assert.ErrorIs(t, err, automorphism.ErrConfiguration)

	s, err := automorphism.New()
	require.NoError(t, err)
	assert.ErrorIs(t, s.Process(context.Background(), nil), automorphism.ErrGraphNil)

	for name, g := range map[string]edgeList{
		"loop":     {n: 2, edges: [][2]int{{0, 0}}},
		"parallel": {n: 2, edges: [][2]int{{0, 1}, {1, 0}}},
		"range":    {n: 2, edges: [][2]int{{0, 2}}},
	} {
		assert.ErrorIs(t, s.Process(context.Background(), g), automorphism.ErrConfiguration, name)
		assert.Nil(t, s.Orbits(), name)
	}

	short, err := automorphism.New(automorphism.WithIgnoredVertices([]bool{true}))
	require.NoError(t, err)
	assert.ErrorIs(t, short.Process(context.Background(), edgeList{n: 3}), automorphism.ErrConfiguration)

	_, err = s.CanonicalForm(nil)
	assert.ErrorIs(t, err, automorphism.ErrConfiguration)
}
