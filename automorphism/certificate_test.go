package automorphism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/canonlab/automorphism"
	"github.com/katalvlaran/canonlab/builder"
	"github.com/katalvlaran/canonlab/core"
)

func certificate(t *testing.T, g *core.Graph, ranked bool) automorphism.Certificate {
	t.Helper()
	cg, err := automorphism.FromCore(g)
	require.NoError(t, err)

	var rank automorphism.EdgeRankFunc
	if ranked {
		rank = cg.EdgeWeightRank()
	}
	s := process(t, cg,
		automorphism.WithEdgeRank(rank),
		automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(rank)),
	)
	c, err := s.CanonicalForm(nil)
	require.NoError(t, err)

	return c
}

func TestCertificate_RelabelInvariance(t *testing.T) {
	cases := []struct {
		name  string
		c     builder.Constructor
		bopts []builder.BuilderOption
	}{
		{"Petersen", builder.Petersen(), nil},
		{"Cube", builder.PlatonicSolid(builder.Cube, false), nil},
		{"Dodecahedron", builder.PlatonicSolid(builder.Dodecahedron, false), nil},
		{"StellatedOcta", builder.PlatonicSolid(builder.Octahedron, true), nil},
		{"Grid3x4", builder.Grid(3, 4), nil},
		{"K34", builder.CompleteBipartite(3, 4), nil},
		{"Sparse", builder.RandomSparse(15, 0.25), []builder.BuilderOption{builder.WithSeed(2)}},
		{"Regular", builder.RandomRegular(14, 3), []builder.BuilderOption{builder.WithSeed(4)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.bopts, tc.c)
			require.NoError(t, err)
			want := certificate(t, g, false)
			assert.Equal(t, g.VertexCount(), want.Order)
			assert.Len(t, want.Edges, g.EdgeCount())

			for seed := int64(1); seed <= 4; seed++ {
				h, err := builder.Relabel(g, builder.RandomPermutation(g.VertexCount(), seed), builder.SymbolNumberIDFn("v"))
				require.NoError(t, err)
				got := certificate(t, h, false)
				assert.True(t, want.Equal(got), "seed %d", seed)
				assert.Equal(t, want.Hash(), got.Hash())
			}
		})
	}
}

func TestCertificate_WeightedRelabelInvariance(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(8), builder.WithUniformWeight(1, 3)},
		builder.PlatonicSolid(builder.Cube, false))
	require.NoError(t, err)

	want := certificate(t, g, true)
	for seed := int64(10); seed < 13; seed++ {
		h, err := builder.Relabel(g, builder.RandomPermutation(g.VertexCount(), seed), nil)
		require.NoError(t, err)
		assert.True(t, want.Equal(certificate(t, h, true)), "seed %d", seed)
	}

	// Edge ranks are part of the certificate.
	plain := certificate(t, g, false)
	assert.False(t, want.Equal(plain))
}

func TestCertificate_DistinguishesNonIsomorphic(t *testing.T) {
	c6, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)

	// Two disjoint triangles: also 2-regular on six vertices.
	triangles := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"x", "y"}, {"y", "z"}, {"z", "x"}} {
		require.NoError(t, triangles.AddVertex(e[0]))
		require.NoError(t, triangles.AddVertex(e[1]))
		_, err := triangles.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	a, b := certificate(t, c6, false), certificate(t, triangles, false)
	assert.Equal(t, a.Order, b.Order)
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestCertificate_Labels(t *testing.T) {
	g := fromBuilder(t, builder.Path(3))
	s := process(t, g, automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(nil)))
	c, err := s.CanonicalForm(g.VertexID)
	require.NoError(t, err)
	require.Len(t, c.Labels, 3)
	assert.ElementsMatch(t, []string{"0", "1", "2"}, c.Labels)
	assert.Contains(t, string(c.Bytes()), "n 3\n")
}
