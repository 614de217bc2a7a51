package molecule

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/canonlab/automorphism"
	"github.com/katalvlaran/canonlab/bfs"
)

// Result is the canonical labelling of a molecule.
type Result struct {
	// Order lists atom indices in canonical order.
	Order []int
	// SymmetryClasses holds, per atom, the smallest canonical position in its
	// orbit. Atoms share a value iff they are symmetry equivalent.
	SymmetryClasses []int
	// Certificate is equal for two molecules iff they are identical up to
	// atom numbering.
	Certificate automorphism.Certificate
	// Stats are the counters of the final search pass.
	Stats automorphism.Stats
}

// atomKeys holds the per-atom comparison keys used by every pass.
type atomKeys struct {
	m         *Molecule
	hydrogens []int
	approx    []int // optional first key
	component []int // optional last key
}

func newAtomKeys(m *Molecule) *atomKeys {
	k := &atomKeys{m: m, hydrogens: make([]int, len(m.Atoms))}
	for i := range m.Atoms {
		k.hydrogens[i] = TotalHydrogens(m, i)
	}

	return k
}

// compare orders atoms by approximation, atomic number, isotope, charge,
// radical, hydrogen count (more first), highlighting and component.
func (k *atomKeys) compare(_ automorphism.Graph, v1, v2 int) int {
	if k.approx != nil && k.approx[v1] != k.approx[v2] {
		return k.approx[v1] - k.approx[v2]
	}
	a, b := k.m.Atoms[v1], k.m.Atoms[v2]
	if a.Number != b.Number {
		return a.Number - b.Number
	}
	if a.Number == 0 && a.Element != b.Element {
		return strings.Compare(a.Element, b.Element)
	}
	if a.Isotope != b.Isotope {
		return a.Isotope - b.Isotope
	}
	if a.Charge != b.Charge {
		return a.Charge - b.Charge
	}
	if a.Radical != b.Radical {
		return a.Radical - b.Radical
	}
	if h := k.hydrogens[v2] - k.hydrogens[v1]; h != 0 {
		return h
	}
	if a.Highlighted != b.Highlighted {
		if a.Highlighted {
			return 1
		}
		return -1
	}
	if k.component != nil {
		return k.component[v1] - k.component[v2]
	}

	return 0
}

// label is the certificate colour of atom v.
func (k *atomKeys) label(v int) string {
	a := k.m.Atoms[v]
	hl := 0
	if a.Highlighted {
		hl = 1
	}

	return strings.Join([]string{
		a.Element,
		strconv.Itoa(a.Charge),
		strconv.Itoa(a.Isotope),
		strconv.Itoa(a.Radical),
		strconv.Itoa(k.hydrogens[v]),
		strconv.Itoa(hl),
	}, ",")
}

// BondRank labels bond e with 2*order plus one when highlighted.
func BondRank(m *Molecule) automorphism.EdgeRankFunc {
	return func(_ automorphism.Graph, e int) int {
		bd := m.Bonds[e]
		r := 2 * bd.Order
		if bd.Highlighted {
			r++
		}
		return r
	}
}

// SameBondOrders accepts permutations that map every bond onto a bond of
// equal order.
func SameBondOrders(m *Molecule) automorphism.AutomorphismCheckFunc {
	return func(_ automorphism.Graph, perm []int) bool {
		for _, bd := range m.Bonds {
			pa, pb := perm[bd.A], perm[bd.B]
			if pa < 0 || pb < 0 {
				continue
			}
			e := m.EdgeIndex(pa, pb)
			if e < 0 || m.Bonds[e].Order != bd.Order {
				return false
			}
		}
		return true
	}
}

func (k *atomKeys) options(canonical bool, extra []automorphism.Option) []automorphism.Option {
	rank := BondRank(k.m)
	opts := []automorphism.Option{
		automorphism.WithVertexOrdering(automorphism.CompareBy(k.compare)),
		automorphism.WithEdgeRank(rank),
		automorphism.WithAutomorphismCheck(SameBondOrders(k.m)),
	}
	if canonical {
		opts = append(opts, automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(rank)))
	}

	return append(opts, extra...)
}

func process(ctx context.Context, m *Molecule, opts []automorphism.Option) (*automorphism.Search, error) {
	s, err := automorphism.New(opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Process(ctx, m); err != nil {
		return nil, err
	}

	return s, nil
}

// Canonicalize computes the canonical atom order, the symmetry classes and
// the certificate of m. A first canonical pass supplies symmetry classes
// that seed the initial partition of the second pass. opts are appended to
// the molecule settings; they must not set another vertex ordering.
func Canonicalize(ctx context.Context, m *Molecule, opts ...automorphism.Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMolecule
	}
	keys := newAtomKeys(m)

	first, err := process(ctx, m, keys.options(true, opts))
	if err != nil {
		return nil, fmt.Errorf("canonicalize %q: first pass: %w", m.Name, err)
	}
	keys.approx = first.CanonicallyOrderedOrbits()

	s, err := process(ctx, m, keys.options(true, opts))
	if err != nil {
		return nil, fmt.Errorf("canonicalize %q: %w", m.Name, err)
	}
	cert, err := s.CanonicalForm(keys.label)
	if err != nil {
		return nil, fmt.Errorf("canonicalize %q: %w", m.Name, err)
	}

	return &Result{
		Order:           s.CanonicalNumbering(),
		SymmetryClasses: s.CanonicallyOrderedOrbits(),
		Certificate:     cert,
		Stats:           s.Stats(),
	}, nil
}

// SymmetryClasses returns, per atom, the orbit representative under the
// molecule's automorphism group. Disconnected fragments are never
// exchanged with each other.
func SymmetryClasses(ctx context.Context, m *Molecule, opts ...automorphism.Option) ([]int, error) {
	if m == nil {
		return nil, ErrNilMolecule
	}
	keys := newAtomKeys(m)
	comp, err := componentIndex(m)
	if err != nil {
		return nil, err
	}
	keys.component = comp

	s, err := process(ctx, m, keys.options(false, opts))
	if err != nil {
		return nil, fmt.Errorf("symmetry classes %q: %w", m.Name, err)
	}

	return s.Orbits(), nil
}

func componentIndex(m *Molecule) ([]int, error) {
	g, err := m.Graph()
	if err != nil {
		return nil, err
	}
	idx, err := bfs.ComponentIndex(g)
	if err != nil {
		return nil, fmt.Errorf("components of %q: %w", m.Name, err)
	}
	out := make([]int, len(m.Atoms))
	for i := range out {
		out[i] = idx[AtomID(i)]
	}

	return out, nil
}
