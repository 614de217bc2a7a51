package molecule

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/canonlab/core"
)

// Bond orders. Aromatic bonds use the V2000 code 4.
const (
	Single   = 1
	Double   = 2
	Triple   = 3
	Aromatic = 4
)

// Radical states as stored by V2000 (M  RAD values).
const (
	NoRadical = 0
	Singlet   = 1
	Doublet   = 2
	Triplet   = 3
)

// Atom is a vertex of a Molecule.
type Atom struct {
	// Element is the element symbol, or the label of a pseudo atom.
	Element string
	// Number is the atomic number; 0 for pseudo atoms.
	Number int
	// Charge is the formal charge.
	Charge int
	// Isotope is the mass number; 0 means natural abundance.
	Isotope int
	// Radical is one of NoRadical, Singlet, Doublet, Triplet.
	Radical int
	// Hydrogens is the implicit hydrogen count when FixedHydrogens is set;
	// otherwise it is estimated from valence.
	Hydrogens      int
	FixedHydrogens bool
	// Highlighted atoms only match highlighted atoms.
	Highlighted bool

	X, Y, Z float64
}

// Bond is an edge of a Molecule.
type Bond struct {
	A, B        int
	Order       int
	Highlighted bool
}

// Molecule is a simple undirected molecular graph. It implements
// automorphism.Graph with atoms as vertices and bonds as edges.
type Molecule struct {
	Name  string
	Atoms []Atom
	Bonds []Bond
	// Properties holds SD data items by name.
	Properties map[string]string

	lookup map[[2]int]int
	nbrs   [][]int
}

// New returns an empty molecule.
func New(name string) *Molecule {
	return &Molecule{Name: name, lookup: make(map[[2]int]int)}
}

// NewAtom returns a neutral atom of the given element symbol.
func NewAtom(symbol string) Atom {
	return Atom{Element: symbol, Number: AtomicNumber(symbol)}
}

// AddAtom appends a and returns its index. A missing atomic number is filled
// in from the element symbol.
func (m *Molecule) AddAtom(a Atom) int {
	if a.Number == 0 {
		a.Number = AtomicNumber(a.Element)
	}
	if a.Element == "" {
		a.Element = Symbol(a.Number)
	}
	m.Atoms = append(m.Atoms, a)
	m.nbrs = append(m.nbrs, nil)

	return len(m.Atoms) - 1
}

// AddBond joins atoms a and b and returns the bond index.
func (m *Molecule) AddBond(a, b, order int) (int, error) {
	return m.addBond(Bond{A: a, B: b, Order: order})
}

func (m *Molecule) addBond(bd Bond) (int, error) {
	n := len(m.Atoms)
	if bd.A < 0 || bd.A >= n || bd.B < 0 || bd.B >= n {
		return -1, fmt.Errorf("bond %d-%d in %d atoms: %w", bd.A, bd.B, n, ErrAtomIndex)
	}
	if bd.A == bd.B {
		return -1, fmt.Errorf("bond on atom %d: %w", bd.A, ErrBond)
	}
	if bd.Order < Single || bd.Order > Aromatic {
		return -1, fmt.Errorf("bond order %d: %w", bd.Order, ErrBond)
	}
	m.index()
	key := bondKey(bd.A, bd.B)
	if _, dup := m.lookup[key]; dup {
		return -1, fmt.Errorf("duplicate bond %d-%d: %w", bd.A, bd.B, ErrBond)
	}
	m.Bonds = append(m.Bonds, bd)
	e := len(m.Bonds) - 1
	m.lookup[key] = e
	m.nbrs[bd.A] = append(m.nbrs[bd.A], bd.B)
	m.nbrs[bd.B] = append(m.nbrs[bd.B], bd.A)

	return e, nil
}

// index rebuilds lookup tables when Atoms or Bonds were edited directly.
func (m *Molecule) index() {
	if m.lookup != nil && len(m.lookup) == len(m.Bonds) && len(m.nbrs) == len(m.Atoms) {
		return
	}
	m.lookup = make(map[[2]int]int, len(m.Bonds))
	m.nbrs = make([][]int, len(m.Atoms))
	for e, bd := range m.Bonds {
		m.lookup[bondKey(bd.A, bd.B)] = e
		m.nbrs[bd.A] = append(m.nbrs[bd.A], bd.B)
		m.nbrs[bd.B] = append(m.nbrs[bd.B], bd.A)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func bondKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

// Order returns the number of atoms.
func (m *Molecule) Order() int { return len(m.Atoms) }

// Size returns the number of bonds.
func (m *Molecule) Size() int { return len(m.Bonds) }

// Endpoints returns the atoms of bond e.
func (m *Molecule) Endpoints(e int) (int, int) { return m.Bonds[e].A, m.Bonds[e].B }

// EdgeIndex returns the bond joining u and v, or -1.
func (m *Molecule) EdgeIndex(u, v int) int {
	m.index()
	if e, ok := m.lookup[bondKey(u, v)]; ok {
		return e
	}

	return -1
}

// Neighbors returns the atoms bonded to i.
func (m *Molecule) Neighbors(i int) []int {
	m.index()

	return m.nbrs[i]
}

// Degree returns the number of bonds of atom i.
func (m *Molecule) Degree(i int) int { return len(m.Neighbors(i)) }

// Renumber returns a copy with atom order[k] moved to position k. Bonds are
// rewritten and sorted by their new endpoints.
func (m *Molecule) Renumber(order []int) (*Molecule, error) {
	if len(order) != len(m.Atoms) {
		return nil, fmt.Errorf("renumber with %d of %d atoms: %w", len(order), len(m.Atoms), ErrAtomIndex)
	}
	pos := make([]int, len(order))
	for i := range pos {
		pos[i] = -1
	}
	for k, old := range order {
		if old < 0 || old >= len(m.Atoms) || pos[old] != -1 {
			return nil, fmt.Errorf("renumber: not a permutation: %w", ErrAtomIndex)
		}
		pos[old] = k
	}

	out := New(m.Name)
	for k, v := range m.Properties {
		if out.Properties == nil {
			out.Properties = make(map[string]string, len(m.Properties))
		}
		out.Properties[k] = v
	}
	for _, old := range order {
		out.AddAtom(m.Atoms[old])
	}
	bonds := make([]Bond, len(m.Bonds))
	for i, bd := range m.Bonds {
		a, b := pos[bd.A], pos[bd.B]
		if a > b {
			a, b = b, a
		}
		bonds[i] = Bond{A: a, B: b, Order: bd.Order, Highlighted: bd.Highlighted}
	}
	sort.Slice(bonds, func(i, j int) bool {
		if bonds[i].A != bonds[j].A {
			return bonds[i].A < bonds[j].A
		}
		return bonds[i].B < bonds[j].B
	})
	for _, bd := range bonds {
		if _, err := out.addBond(bd); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// AtomID is the core vertex ID of atom i in Graph.
func AtomID(i int) string { return strconv.Itoa(i) }

// Graph returns a weighted core.Graph copy: vertices are AtomID(i) with the
// element symbol in Metadata["element"], edge weights are bond orders.
func (m *Molecule) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	for i, a := range m.Atoms {
		if err := g.AddVertex(AtomID(i)); err != nil {
			return nil, err
		}
		v, err := g.GetVertex(AtomID(i))
		if err != nil {
			return nil, err
		}
		v.Metadata["element"] = a.Element
	}
	for _, bd := range m.Bonds {
		if _, err := g.AddEdge(AtomID(bd.A), AtomID(bd.B), int64(bd.Order)); err != nil {
			return nil, fmt.Errorf("bond %d-%d: %w", bd.A, bd.B, err)
		}
	}

	return g, nil
}

// Formula returns the Hill formula including implicit hydrogens, e.g. "C2H6O".
func (m *Molecule) Formula() string {
	counts := make(map[string]int)
	hs := ImplicitHydrogens(m)
	for i, a := range m.Atoms {
		counts[a.Element]++
		counts["H"] += hs[i]
	}

	var syms []string
	for s, c := range counts {
		if c > 0 && s != "C" && s != "H" {
			syms = append(syms, s)
		}
	}
	sort.Strings(syms)
	if counts["C"] > 0 {
		syms = append([]string{"C", "H"}, syms...)
	} else {
		syms = append([]string{"H"}, syms...)
		sort.Strings(syms)
	}

	out := ""
	for _, s := range syms {
		c := counts[s]
		switch {
		case c == 0:
		case c == 1:
			out += s
		default:
			out += s + strconv.Itoa(c)
		}
	}

	return out
}
