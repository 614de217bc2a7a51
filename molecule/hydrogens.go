package molecule

// bondValence is the valence consumed by the bonds of atom i. Aromatic bonds
// count one each plus a single extra unit for the delocalised system.
func bondValence(m *Molecule, i int) int {
	v, aromatic := 0, false
	for _, j := range m.Neighbors(i) {
		bd := m.Bonds[m.EdgeIndex(i, j)]
		if bd.Order == Aromatic {
			aromatic = true
			v++
			continue
		}
		v += bd.Order
	}
	if aromatic {
		v++
	}

	return v
}

// implicitHydrogens estimates the implicit hydrogen count of atom i from the
// smallest allowed valence not below the bond valence.
func implicitHydrogens(m *Molecule, i int) int {
	a := m.Atoms[i]
	if a.FixedHydrogens {
		return a.Hydrogens
	}
	e, ok := byNumber[a.Number]
	if !ok || e.valences == nil {
		return 0
	}

	used := bondValence(m, i)
	switch a.Radical {
	case Doublet:
		used++
	case Singlet, Triplet:
		used += 2
	}

	for _, val := range e.valences {
		switch {
		case e.group >= 15:
			val += a.Charge
		case e.group == 14:
			val -= abs(a.Charge)
		case e.group == 13:
			val -= a.Charge
		case e.group == 1:
			val -= abs(a.Charge)
		}
		if val >= used {
			return val - used
		}
	}

	return 0
}

// ImplicitHydrogens returns the implicit hydrogen count of every atom.
func ImplicitHydrogens(m *Molecule) []int {
	out := make([]int, len(m.Atoms))
	for i := range m.Atoms {
		out[i] = implicitHydrogens(m, i)
	}

	return out
}

// isPlainHydrogen reports an explicit hydrogen atom of natural isotope.
func isPlainHydrogen(a Atom) bool {
	return a.Number == 1 && a.Isotope == 0
}

// TotalHydrogens returns implicit plus explicit (bonded, natural isotope)
// hydrogens of atom i.
func TotalHydrogens(m *Molecule, i int) int {
	h := implicitHydrogens(m, i)
	for _, j := range m.Neighbors(i) {
		if isPlainHydrogen(m.Atoms[j]) {
			h++
		}
	}

	return h
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
