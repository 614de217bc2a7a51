package molecule

import "errors"

var (
	// ErrNilMolecule indicates a nil molecule.
	ErrNilMolecule = errors.New("molecule: molecule is nil")

	// ErrAtomIndex indicates an atom index outside the molecule.
	ErrAtomIndex = errors.New("molecule: atom index out of range")

	// ErrBond indicates a self-bond, a duplicate bond or an invalid bond order.
	ErrBond = errors.New("molecule: invalid bond")

	// ErrParse indicates malformed molfile input.
	ErrParse = errors.New("molecule: malformed molfile")

	// ErrUnsupported indicates a valid but unsupported input feature (V3000).
	ErrUnsupported = errors.New("molecule: unsupported molfile feature")
)
