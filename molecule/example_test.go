package molecule_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/canonlab/molecule"
)

// ExampleCanonicalize reads isobutane and prints its symmetry classes: the
// three methyl carbons share a class.
func ExampleCanonicalize() {
	const isobutaneMol = `isobutane
  example

  4  3  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
    1.5000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
    2.2500    1.2990    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
    2.2500   -1.2990    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
  1  2  1  0
  2  3  1  0
  2  4  1  0
M  END
`
	m, err := molecule.ReadMolfile(strings.NewReader(isobutaneMol))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := molecule.Canonicalize(context.Background(), m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	c := res.SymmetryClasses
	fmt.Println(m.Formula(), c[0] == c[2] && c[2] == c[3], c[0] == c[1])
	// Output:
	// C4H10 true false
}

// ExampleSymmetryClasses shows that separate fragments stay apart.
func ExampleSymmetryClasses() {
	m := molecule.New("two waters")
	m.AddAtom(molecule.NewAtom("O"))
	m.AddAtom(molecule.NewAtom("O"))

	classes, _ := molecule.SymmetryClasses(context.Background(), m)
	fmt.Println(classes)
	// Output:
	// [0 1]
}
