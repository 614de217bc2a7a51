// SPDX-License-Identifier: MIT

// Package molecule models molecular graphs and computes their symmetry
// classes and canonical atom order with the automorphism package.
//
// A Molecule holds atoms (element, charge, isotope, radical, hydrogens,
// highlighting) and bonds (order 1..3 or Aromatic). It implements
// automorphism.Graph directly, so the search sees atoms as vertices and
// bonds as edges.
//
// Atoms are partitioned by atomic number, isotope, charge, radical, total
// hydrogen count and highlighting; bonds are ranked by order and
// highlighting. Canonicalize runs two canonical passes, the first seeding
// the second with symmetry classes, and returns a Certificate that is equal
// for two inputs iff they describe the same molecule up to atom numbering.
// SymmetryClasses runs a single orbit-only pass in which disconnected
// fragments stay apart.
//
// Input and output use the V2000 molfile and SD formats:
//
//	mols, err := molecule.ReadSDF(f)
//	...
//	res, err := molecule.Canonicalize(ctx, mols[0])
//	fmt.Println(res.Certificate.Hash())
package molecule
