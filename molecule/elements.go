package molecule

// element is one row of the periodic table subset known to the reader.
type element struct {
	number   int
	symbol   string
	mass     float64 // standard atomic weight
	isotope  int     // mass number of the most abundant isotope
	valences []int   // allowed neutral valences, ascending; nil disables implicit H
	group    int     // IUPAC group, 0 for transition/inner elements
}

// Masses follow the common bio-element table of gochem; the remaining rows
// use IUPAC standard weights.
var elements = []element{
	{1, "H", 1.0, 1, []int{1}, 1},
	{2, "He", 4.003, 4, nil, 18},
	{3, "Li", 6.94, 7, nil, 1},
	{4, "Be", 9.012, 9, nil, 2},
	{5, "B", 10.81, 11, []int{3}, 13},
	{6, "C", 12.01, 12, []int{4}, 14},
	{7, "N", 14.01, 14, []int{3, 5}, 15},
	{8, "O", 16.00, 16, []int{2}, 16},
	{9, "F", 18.998, 19, []int{1}, 17},
	{10, "Ne", 20.18, 20, nil, 18},
	{11, "Na", 22.99, 23, nil, 1},
	{12, "Mg", 24.30, 24, nil, 2},
	{13, "Al", 26.98, 27, nil, 13},
	{14, "Si", 28.08, 28, []int{4}, 14},
	{15, "P", 30.97, 31, []int{3, 5}, 15},
	{16, "S", 32.06, 32, []int{2, 4, 6}, 16},
	{17, "Cl", 35.45, 35, []int{1}, 17},
	{18, "Ar", 39.95, 40, nil, 18},
	{19, "K", 39.1, 39, nil, 1},
	{20, "Ca", 40.08, 40, nil, 2},
	{24, "Cr", 51.996, 52, nil, 0},
	{25, "Mn", 54.94, 55, nil, 0},
	{26, "Fe", 55.84, 56, nil, 0},
	{27, "Co", 58.93, 59, nil, 0},
	{28, "Ni", 58.69, 58, nil, 0},
	{29, "Cu", 63.55, 63, nil, 0},
	{30, "Zn", 65.38, 64, nil, 0},
	{33, "As", 74.92, 75, []int{3, 5}, 15},
	{34, "Se", 78.96, 80, []int{2, 4, 6}, 16},
	{35, "Br", 79.904, 79, []int{1}, 17},
	{36, "Kr", 83.80, 84, nil, 18},
	{47, "Ag", 107.87, 107, nil, 0},
	{50, "Sn", 118.71, 120, nil, 14},
	{53, "I", 126.90, 127, []int{1}, 17},
	{54, "Xe", 131.29, 132, nil, 18},
	{78, "Pt", 195.08, 195, nil, 0},
	{79, "Au", 196.97, 197, nil, 0},
	{80, "Hg", 200.59, 202, nil, 0},
	{82, "Pb", 207.2, 208, nil, 14},
}

var (
	bySymbol = make(map[string]*element, len(elements))
	byNumber = make(map[int]*element, len(elements))
)

func init() {
	for i := range elements {
		e := &elements[i]
		bySymbol[e.symbol] = e
		byNumber[e.number] = e
	}
}

// AtomicNumber returns the atomic number of symbol, or 0 if unknown.
func AtomicNumber(symbol string) int {
	if e, ok := bySymbol[symbol]; ok {
		return e.number
	}

	return 0
}

// Symbol returns the element symbol for an atomic number, or "" if unknown.
func Symbol(number int) string {
	if e, ok := byNumber[number]; ok {
		return e.symbol
	}

	return ""
}

// AtomicMass returns the standard atomic weight of symbol, or 0 if unknown.
func AtomicMass(symbol string) float64 {
	if e, ok := bySymbol[symbol]; ok {
		return e.mass
	}

	return 0
}

// DefaultIsotope returns the mass number of the most abundant isotope of
// the element, or 0 if unknown.
func DefaultIsotope(number int) int {
	if e, ok := byNumber[number]; ok {
		return e.isotope
	}

	return 0
}
