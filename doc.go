// Package canonlab computes symmetry classes and canonical numberings of
// graphs and molecules with a partition-backtracking automorphism search.
//
// The module is organized as:
//
//	core/         thread-safe undirected graph with string vertex IDs
//	builder/      deterministic graph constructors and relabelling for fixtures
//	bfs/          breadth-first traversal and connected components
//	automorphism/ the search engine, its adapters and canonical certificates
//	molecule/     atoms, bonds, implicit hydrogens, V2000 molfile/SDF I/O and
//	              molecule-level canonicalization
//	catalog/      badger-backed store of certificates for duplicate detection
//	cmd/canonlab  command-line front end
//
// Quick example: isobutane's three methyl carbons form one symmetry class.
//
//	    C1
//	    │
//	C3──C2──C4
//
//	classes, _ := molecule.SymmetryClasses(ctx, m)
//	// classes[0] == classes[2] == classes[3] != classes[1]
package canonlab
