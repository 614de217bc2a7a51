package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"

	"github.com/katalvlaran/canonlab/automorphism"
	"github.com/katalvlaran/canonlab/core"
	"github.com/katalvlaran/canonlab/internal/source"
	"github.com/katalvlaran/canonlab/molecule"
)

// structure is one input record: a molecule or a plain graph.
type structure struct {
	name  string
	mol   *molecule.Molecule
	graph *core.Graph
}

// report is the per-structure output of canon and orbits.
type report struct {
	Name       string             `json:"name" yaml:"name"`
	Kind       string             `json:"kind" yaml:"kind"`
	Formula    string             `json:"formula,omitempty" yaml:"formula,omitempty"`
	Hash       string             `json:"hash,omitempty" yaml:"hash,omitempty"`
	Order      []string           `json:"order,omitempty" yaml:"order,omitempty"`
	Vertices   []string           `json:"vertices" yaml:"vertices"`
	Classes    []int              `json:"classes" yaml:"classes"`
	OrbitCount int                `json:"orbit_count" yaml:"orbit_count"`
	Stats      automorphism.Stats `json:"stats" yaml:"stats"`
	cert       automorphism.Certificate
}

// load reads every structure of the named files.
func (a *app) load(paths []string) ([]structure, error) {
	var out []structure
	for _, p := range paths {
		format, err := a.formatFor(p)
		if err != nil {
			return nil, err
		}
		rc, err := source.Open(p)
		if err != nil {
			return nil, err
		}
		items, err := readStructures(rc, format, p)
		cerr := rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if cerr != nil {
			return nil, fmt.Errorf("%s: %w", p, cerr)
		}
		a.logger.Debug("input loaded", slog.String("path", p),
			slog.String("format", format.String()), slog.Int("records", len(items)))
		out = append(out, items...)
	}

	return out, nil
}

func (a *app) formatFor(path string) (source.Format, error) {
	if a.inputFormat != "" {
		return source.ParseFormat(a.inputFormat)
	}
	if path == "-" {
		return source.FormatUnknown, fmt.Errorf("%w: use --format with standard input", source.ErrFormat)
	}

	return source.FormatOf(path)
}

func readStructures(r io.Reader, format source.Format, path string) ([]structure, error) {
	switch format {
	case source.FormatMolfile:
		m, err := molecule.ReadMolfile(r)
		if err != nil {
			return nil, err
		}
		return []structure{molStructure(m, path, 1)}, nil
	case source.FormatSDF:
		mols, err := molecule.ReadSDF(r)
		if err != nil {
			return nil, err
		}
		out := make([]structure, len(mols))
		for i, m := range mols {
			out[i] = molStructure(m, path, i+1)
		}
		return out, nil
	case source.FormatGraphYAML:
		docs, err := source.ReadGraphs(r)
		if err != nil {
			return nil, err
		}
		out := make([]structure, 0, len(docs))
		for i, d := range docs {
			g, err := d.Graph()
			if err != nil {
				return nil, err
			}
			name := d.Name
			if name == "" {
				name = path + "#" + strconv.Itoa(i+1)
			}
			out = append(out, structure{name: name, graph: g})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", source.ErrFormat, format)
	}
}

func molStructure(m *molecule.Molecule, path string, record int) structure {
	name := m.Name
	if name == "" {
		name = path + "#" + strconv.Itoa(record)
	}

	return structure{name: name, mol: m}
}

func atomLabels(m *molecule.Molecule) []string {
	out := make([]string, m.Order())
	for i, at := range m.Atoms {
		out[i] = at.Element + strconv.Itoa(i+1)
	}

	return out
}

func countClasses(classes []int) int {
	seen := make(map[int]struct{}, len(classes))
	for _, c := range classes {
		if c >= 0 {
			seen[c] = struct{}{}
		}
	}

	return len(seen)
}

// canonicalize computes the full report of s.
func (a *app) canonicalize(ctx context.Context, s structure) (report, error) {
	opts := append(a.cfg.SearchOptions(), automorphism.WithLogger(a.logger))
	if s.mol != nil {
		res, err := molecule.Canonicalize(ctx, s.mol, opts...)
		a.observe(res, err)
		if err != nil {
			return report{}, err
		}
		labels := atomLabels(s.mol)
		order := make([]string, len(res.Order))
		for k, v := range res.Order {
			order[k] = labels[v]
		}
		return report{
			Name:       s.name,
			Kind:       "molecule",
			Formula:    s.mol.Formula(),
			Hash:       res.Certificate.Hash(),
			Order:      order,
			Vertices:   labels,
			Classes:    res.SymmetryClasses,
			OrbitCount: countClasses(res.SymmetryClasses),
			Stats:      res.Stats,
			cert:       res.Certificate,
		}, nil
	}

	cg, err := automorphism.FromCore(s.graph)
	if err != nil {
		return report{}, err
	}
	var rank automorphism.EdgeRankFunc
	if s.graph.Weighted() {
		rank = cg.EdgeWeightRank()
		opts = append(opts, automorphism.WithEdgeRank(rank))
	}
	opts = append(opts, automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(rank)))
	search, err := a.process(ctx, cg, opts)
	if err != nil {
		return report{}, err
	}
	cert, err := search.CanonicalForm(nil)
	if err != nil {
		return report{}, err
	}

	return report{
		Name:       s.name,
		Kind:       "graph",
		Hash:       cert.Hash(),
		Order:      cg.VertexIDs(search.CanonicalNumbering()),
		Vertices:   cg.VertexIDs(allVertices(cg.Order())),
		Classes:    search.CanonicallyOrderedOrbits(),
		OrbitCount: search.OrbitCount(),
		Stats:      search.Stats(),
		cert:       cert,
	}, nil
}

// orbits computes symmetry classes only.
func (a *app) orbits(ctx context.Context, s structure) (report, error) {
	opts := append(a.cfg.SearchOptions(), automorphism.WithLogger(a.logger))
	if s.mol != nil {
		classes, err := molecule.SymmetryClasses(ctx, s.mol, opts...)
		n := countClasses(classes)
		a.recorder.Observe(automorphism.Stats{}, n, err)
		if err != nil {
			return report{}, err
		}
		return report{
			Name:       s.name,
			Kind:       "molecule",
			Formula:    s.mol.Formula(),
			Vertices:   atomLabels(s.mol),
			Classes:    classes,
			OrbitCount: n,
		}, nil
	}

	cg, err := automorphism.FromCore(s.graph)
	if err != nil {
		return report{}, err
	}
	if s.graph.Weighted() {
		opts = append(opts, automorphism.WithEdgeRank(cg.EdgeWeightRank()))
	}
	search, err := a.process(ctx, cg, opts)
	if err != nil {
		return report{}, err
	}

	return report{
		Name:       s.name,
		Kind:       "graph",
		Vertices:   cg.VertexIDs(allVertices(cg.Order())),
		Classes:    search.Orbits(),
		OrbitCount: search.OrbitCount(),
		Stats:      search.Stats(),
	}, nil
}

func (a *app) process(ctx context.Context, g automorphism.Graph, opts []automorphism.Option) (*automorphism.Search, error) {
	s, err := automorphism.New(opts...)
	if err != nil {
		return nil, err
	}
	err = s.Process(ctx, g)
	a.recorder.Observe(s.Stats(), s.OrbitCount(), err)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (a *app) observe(res *molecule.Result, err error) {
	if res == nil {
		a.recorder.Observe(automorphism.Stats{}, 0, err)
		return
	}
	a.recorder.Observe(res.Stats, countClasses(res.SymmetryClasses), err)
}

func allVertices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// classGroups lists vertex labels grouped by class, groups ordered by class.
func classGroups(r report) [][]string {
	byClass := make(map[int][]string)
	var keys []int
	for i, c := range r.Classes {
		if c < 0 {
			continue
		}
		if _, ok := byClass[c]; !ok {
			keys = append(keys, c)
		}
		byClass[c] = append(byClass[c], r.Vertices[i])
	}
	sort.Ints(keys)
	out := make([][]string, len(keys))
	for i, k := range keys {
		out[i] = byClass[k]
	}

	return out
}

// forEach applies fn to every structure, stopping at the first error or
// cancellation.
func (a *app) forEach(ctx context.Context, items []structure, fn func(structure) error) error {
	for _, s := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(s); err != nil {
			if errors.Is(err, automorphism.ErrCancelled) {
				return err
			}
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}

	return nil
}
