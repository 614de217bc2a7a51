package automorphism

import (
	"fmt"
	"io"
	"log/slog"
)

// DefaultWorksize is the default capacity of the automorphism history used
// for pruning.
const DefaultWorksize = 100

// RankFunc assigns an initial colour to vertex v; lower ranks sort first.
type RankFunc func(g Graph, v int) int

// CompareFunc orders two vertices for the initial partition; it must be a
// consistent total preorder. A negative result sorts v1 first.
type CompareFunc func(g Graph, v1, v2 int) int

// EdgeRankFunc labels edge e (for example with a bond order). Edges with
// different ranks are never mapped onto each other.
type EdgeRankFunc func(g Graph, e int) int

// AutomorphismCheckFunc confirms a candidate automorphism. perm is indexed by
// original vertex id, with -1 for ignored vertices; it is only valid for the
// duration of the call.
type AutomorphismCheckFunc func(g Graph, perm []int) bool

// CompareMappedFunc compares two labellings of g. a and b list original
// vertex ids in label order. A positive result means a is preferred; the
// preferred leaf becomes the canonical labelling.
type CompareMappedFunc func(g Graph, a, b []int) int

// AutomorphismFunc receives every discovered automorphism; automorphisms
// found against the canonical leaf are delivered only when they merge
// orbits. perm is indexed by original vertex id, with -1 for ignored
// vertices; the slice is owned by the callee.
type AutomorphismFunc func(perm []int)

type orderingKind int

const (
	orderingNone orderingKind = iota
	orderingRank
	orderingCompare
)

// VertexOrdering selects how the initial partition is formed: either a rank
// per vertex or a pairwise comparator, never both.
type VertexOrdering struct {
	kind orderingKind
	rank RankFunc
	cmp  CompareFunc
}

// RankBy orders the initial cells by fn.
func RankBy(fn RankFunc) VertexOrdering {
	return VertexOrdering{kind: orderingRank, rank: fn}
}

// CompareBy orders the initial cells by fn in combination with degree
// (see WithDegreeFirst).
func CompareBy(fn CompareFunc) VertexOrdering {
	return VertexOrdering{kind: orderingCompare, cmp: fn}
}

// Options configures a Search. Use DefaultOptions and Option helpers.
type Options struct {
	// Ordering forms the initial partition; the zero value puts every vertex
	// in one cell.
	Ordering VertexOrdering

	// EdgeRank labels edges; nil treats all edges alike.
	EdgeRank EdgeRankFunc

	// AutomorphismCheck confirms structural automorphism candidates.
	AutomorphismCheck AutomorphismCheckFunc

	// CompareMapped enables canonical labelling when non-nil.
	CompareMapped CompareMappedFunc

	// OnAutomorphism is called for orbit-changing automorphisms.
	OnAutomorphism AutomorphismFunc

	// DegreeFirst makes degree the primary key of CompareBy orderings.
	DegreeFirst bool

	// ReverseDegree splits cells by descending neighbour count.
	ReverseDegree bool

	// SortedNeighbourhood selects the sorted-neighbourhood refinement
	// strategy. Edge ranks do not take part in it.
	SortedNeighbourhood bool

	// Worksize is the capacity of the automorphism history.
	Worksize int

	// IgnoredVertices excludes vertices (and their edges) from the search.
	IgnoredVertices []bool

	// Logger receives one debug record per Process call.
	Logger *slog.Logger

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns orbit-only search settings: single initial cell,
// degree first, original refinement, worksize DefaultWorksize and a logger
// that discards everything.
func DefaultOptions() Options {
	return Options{
		DegreeFirst: true,
		Worksize:    DefaultWorksize,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// violate records the first option error.
func (o *Options) violate(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
	}
}

// Err reports the first option violation recorded while applying options.
func (o *Options) Err() error { return o.err }

// WithVertexOrdering sets the initial partition ordering. Supplying a second
// ordering is a configuration error.
func WithVertexOrdering(vo VertexOrdering) Option {
	return func(o *Options) {
		switch {
		case o.Ordering.kind != orderingNone:
			o.violate("both vertex rank and vertex compare orderings specified")
		case vo.kind == orderingRank && vo.rank == nil:
			o.violate("nil rank function")
		case vo.kind == orderingCompare && vo.cmp == nil:
			o.violate("nil compare function")
		default:
			o.Ordering = vo
		}
	}
}

// WithEdgeRank labels edges with fn.
func WithEdgeRank(fn EdgeRankFunc) Option {
	return func(o *Options) { o.EdgeRank = fn }
}

// WithAutomorphismCheck installs an extra automorphism filter.
func WithAutomorphismCheck(fn AutomorphismCheckFunc) Option {
	return func(o *Options) { o.AutomorphismCheck = fn }
}

// WithCanonicalForm enables canonical labelling using cmp to choose the best
// leaf. A nil comparator is a configuration error.
func WithCanonicalForm(cmp CompareMappedFunc) Option {
	return func(o *Options) {
		if cmp == nil {
			o.violate("canonical form requested without a comparator")
			return
		}
		o.CompareMapped = cmp
	}
}

// WithOnAutomorphism installs the automorphism callback.
func WithOnAutomorphism(fn AutomorphismFunc) Option {
	return func(o *Options) { o.OnAutomorphism = fn }
}

// WithDegreeFirst chooses whether degree precedes the comparator (default true).
func WithDegreeFirst(on bool) Option {
	return func(o *Options) { o.DegreeFirst = on }
}

// WithReverseDegreeRefinement splits cells by descending neighbour count.
func WithReverseDegreeRefinement() Option {
	return func(o *Options) { o.ReverseDegree = true }
}

// WithSortedNeighbourhoodRefinement selects the sorted-neighbourhood strategy.
func WithSortedNeighbourhoodRefinement() Option {
	return func(o *Options) { o.SortedNeighbourhood = true }
}

// WithWorksize sets the automorphism history capacity; n must be ≥ 1.
func WithWorksize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violate("worksize must be ≥ 1, got %d", n)
			return
		}
		o.Worksize = n
	}
}

// WithIgnoredVertices excludes vertices v with ignored[v] == true.
func WithIgnoredVertices(ignored []bool) Option {
	return func(o *Options) { o.IgnoredVertices = ignored }
}

// WithLogger sets the logger (nil is ignored).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
