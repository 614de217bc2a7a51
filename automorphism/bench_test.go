package automorphism_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/canonlab/automorphism"
	"github.com/katalvlaran/canonlab/builder"
)

func benchGraph(b *testing.B, c builder.Constructor, bopts ...builder.BuilderOption) *automorphism.CoreGraph {
	b.Helper()
	g, err := builder.BuildGraph(nil, bopts, c)
	if err != nil {
		b.Fatal(err)
	}
	cg, err := automorphism.FromCore(g)
	if err != nil {
		b.Fatal(err)
	}

	return cg
}

func benchProcess(b *testing.B, g automorphism.Graph, opts ...automorphism.Option) {
	s, err := automorphism.New(opts...)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Process(ctx, g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOrbits_Dodecahedron(b *testing.B) {
	benchProcess(b, benchGraph(b, builder.PlatonicSolid(builder.Dodecahedron, false)))
}

func BenchmarkCanonical_Petersen(b *testing.B) {
	benchProcess(b, benchGraph(b, builder.Petersen()),
		automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(nil)))
}

func BenchmarkCanonical_Grid8x8Sorted(b *testing.B) {
	benchProcess(b, benchGraph(b, builder.Grid(8, 8)),
		automorphism.WithSortedNeighbourhoodRefinement(),
		automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(nil)))
}

func BenchmarkOrbits_RandomSparse(b *testing.B) {
	benchProcess(b, benchGraph(b, builder.RandomSparse(64, 0.05), builder.WithSeed(1)))
}
