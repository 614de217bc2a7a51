package automorphism_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/canonlab/automorphism"
	"github.com/katalvlaran/canonlab/builder"
)

// ExampleSearch_Orbits shows the two orbits of the path on four vertices.
func ExampleSearch_Orbits() {
	g, _ := builder.BuildGraph(nil, nil, builder.Path(4))
	cg, _ := automorphism.FromCore(g)

	s, _ := automorphism.New()
	if err := s.Process(context.Background(), cg); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.OrbitCount(), s.Orbits())
	// Output:
	// 2 [0 1 1 0]
}

// ExampleSearch_CanonicalForm compares a graph with a relabelled copy.
func ExampleSearch_CanonicalForm() {
	cert := func(c builder.Constructor, perm []int) automorphism.Certificate {
		g, _ := builder.BuildGraph(nil, nil, c)
		if perm != nil {
			g, _ = builder.Relabel(g, perm, builder.SymbolNumberIDFn("x"))
		}
		cg, _ := automorphism.FromCore(g)
		s, _ := automorphism.New(automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(nil)))
		_ = s.Process(context.Background(), cg)
		c2, _ := s.CanonicalForm(nil)
		return c2
	}

	a := cert(builder.Petersen(), nil)
	b := cert(builder.Petersen(), builder.RandomPermutation(10, 42))
	fmt.Println(a.Order, len(a.Edges), a.Equal(b))
	// Output:
	// 10 15 true
}
