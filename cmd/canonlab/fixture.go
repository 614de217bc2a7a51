package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/canonlab/builder"
	"github.com/katalvlaran/canonlab/core"
	"github.com/katalvlaran/canonlab/internal/source"
)

// family builds a constructor from positional arguments.
type family struct {
	args  []string
	build func(ints []int, p float64) builder.Constructor
}

var families = map[string]family{
	"path":     {args: []string{"n"}, build: func(v []int, _ float64) builder.Constructor { return builder.Path(v[0]) }},
	"cycle":    {args: []string{"n"}, build: func(v []int, _ float64) builder.Constructor { return builder.Cycle(v[0]) }},
	"complete": {args: []string{"n"}, build: func(v []int, _ float64) builder.Constructor { return builder.Complete(v[0]) }},
	"empty":    {args: []string{"n"}, build: func(v []int, _ float64) builder.Constructor { return builder.Empty(v[0]) }},
	"star":     {args: []string{"n"}, build: func(v []int, _ float64) builder.Constructor { return builder.Star(v[0]) }},
	"wheel":    {args: []string{"n"}, build: func(v []int, _ float64) builder.Constructor { return builder.Wheel(v[0]) }},
	"grid":     {args: []string{"rows", "cols"}, build: func(v []int, _ float64) builder.Constructor { return builder.Grid(v[0], v[1]) }},
	"bipartite": {args: []string{"n1", "n2"}, build: func(v []int, _ float64) builder.Constructor {
		return builder.CompleteBipartite(v[0], v[1])
	}},
	"random-regular": {args: []string{"n", "d"}, build: func(v []int, _ float64) builder.Constructor {
		return builder.RandomRegular(v[0], v[1])
	}},
	"random-sparse": {args: []string{"n", "p"}, build: func(v []int, p float64) builder.Constructor {
		return builder.RandomSparse(v[0], p)
	}},
	"petersen":     {build: func([]int, float64) builder.Constructor { return builder.Petersen() }},
	"tetrahedron":  {build: platonic(builder.Tetrahedron)},
	"cube":         {build: platonic(builder.Cube)},
	"octahedron":   {build: platonic(builder.Octahedron)},
	"dodecahedron": {build: platonic(builder.Dodecahedron)},
	"icosahedron":  {build: platonic(builder.Icosahedron)},
}

func platonic(name builder.PlatonicName) func([]int, float64) builder.Constructor {
	return func([]int, float64) builder.Constructor { return builder.PlatonicSolid(name, false) }
}

func familyNames() []string {
	names := make([]string, 0, len(families))
	for n := range families {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// parseFamilyArgs converts positional arguments; "p" is a probability, the
// rest are integers.
func parseFamilyArgs(f family, args []string) ([]int, float64, error) {
	if len(args) != len(f.args) {
		return nil, 0, fmt.Errorf("want %d argument(s) (%s), got %d", len(f.args), strings.Join(f.args, ", "), len(args))
	}
	var (
		ints []int
		p    float64
	)
	for i, name := range f.args {
		if name == "p" {
			v, err := strconv.ParseFloat(args[i], 64)
			if err != nil {
				return nil, 0, fmt.Errorf("%s: %w", name, err)
			}
			p = v
			continue
		}
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", name, err)
		}
		ints = append(ints, v)
	}

	return ints, p, nil
}

func newFixtureCmd(a *app) *cobra.Command {
	var (
		seed     int64
		weight   int64
		outFile  string
		permSeed int64
	)
	cmd := &cobra.Command{
		Use:   "fixture FAMILY [ARGS...]",
		Short: "Write a generated graph as a graph-yaml document",
		Long:  "Families: " + strings.Join(familyNames(), ", ") + ".",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, ok := families[args[0]]
			if !ok {
				return fmt.Errorf("unknown fixture family %q", args[0])
			}
			ints, p, err := parseFamilyArgs(f, args[1:])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			var gopts []core.GraphOption
			bopts := []builder.BuilderOption{builder.WithSeed(seed)}
			if cmd.Flags().Changed("weight") {
				gopts = append(gopts, core.WithWeighted())
				bopts = append(bopts, builder.WithConstantWeight(weight))
			}
			g, err := builder.BuildGraph(gopts, bopts, f.build(ints, p))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("permute") {
				perm := builder.RandomPermutation(g.VertexCount(), permSeed)
				if g, err = builder.Relabel(g, perm, builder.SymbolNumberIDFn("v")); err != nil {
					return err
				}
			}
			doc := source.DocFromGraph(strings.Join(args, "-"), g)

			var w io.Writer = a.stdout
			if outFile != "" {
				wc, err := source.Create(outFile)
				if err != nil {
					return err
				}
				defer func() {
					if cerr := wc.Close(); err == nil {
						err = cerr
					}
				}()
				w = wc
			}
			a.logger.Debug("fixture generated", slog.String("name", doc.Name),
				slog.Int("vertices", len(doc.Vertices)), slog.Int("edges", len(doc.Edges)))

			return source.WriteGraphs(w, []source.GraphDoc{doc})
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for random families")
	cmd.Flags().Int64Var(&weight, "weight", 1, "constant edge weight; makes the graph weighted")
	cmd.Flags().Int64Var(&permSeed, "permute", 0, "relabel vertices with a random permutation from this seed")
	cmd.Flags().StringVar(&outFile, "file", "", "write to this file (.gz and .zst are compressed) instead of standard output")

	return cmd
}
