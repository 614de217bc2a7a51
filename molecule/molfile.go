package molecule

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const sdfTerminator = "$$$$"

// ReadMolfile parses one V2000 molfile record from r.
func ReadMolfile(r io.Reader) (*Molecule, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lines, err := recordLines(sc)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		return nil, fmt.Errorf("empty input: %w", ErrParse)
	}

	return parseRecord(lines)
}

// SDFReader reads the records of an SD file one at a time.
type SDFReader struct {
	sc     *bufio.Scanner
	record int
}

// NewSDFReader wraps r.
func NewSDFReader(r io.Reader) *SDFReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	return &SDFReader{sc: sc}
}

// Next returns the next record, or io.EOF after the last one.
func (sr *SDFReader) Next() (*Molecule, error) {
	lines, err := recordLines(sr.sc)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		return nil, io.EOF
	}
	sr.record++
	m, err := parseRecord(lines)
	if err != nil {
		return nil, fmt.Errorf("record %d: %w", sr.record, err)
	}

	return m, nil
}

// ReadSDF parses every record of an SD file.
func ReadSDF(r io.Reader) ([]*Molecule, error) {
	sr := NewSDFReader(r)
	var out []*Molecule
	for {
		m, err := sr.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
}

// recordLines collects lines up to the next "$$$$" or end of input. It
// returns nil lines when nothing but blank lines remain.
func recordLines(sc *bufio.Scanner) ([]string, error) {
	var lines []string
	content := false
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, sdfTerminator) {
			if content {
				return lines, nil
			}
			lines = lines[:0]
			continue
		}
		if strings.TrimSpace(line) != "" {
			content = true
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if !content {
		return nil, nil
	}

	return lines, nil
}

// column returns the trimmed text of line[from:to], clipped to the line.
func column(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}

	return strings.TrimSpace(line[from:to])
}

// intColumn parses a fixed-width integer; blank means 0.
func intColumn(line string, from, to int, what string, lineNo int) (int, error) {
	s := column(line, from, to)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s %q: %w", lineNo+1, what, s, ErrParse)
	}

	return v, nil
}

func floatColumn(line string, from, to int, what string, lineNo int) (float64, error) {
	s := column(line, from, to)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s %q: %w", lineNo+1, what, s, ErrParse)
	}

	return v, nil
}

func parseRecord(lines []string) (*Molecule, error) {
	if len(lines) < 4 {
		return nil, fmt.Errorf("header has %d lines: %w", len(lines), ErrParse)
	}
	counts := lines[3]
	if strings.Contains(counts, "V3000") {
		return nil, fmt.Errorf("V3000 connection table: %w", ErrUnsupported)
	}
	natoms, err := intColumn(counts, 0, 3, "atom count", 3)
	if err != nil {
		return nil, err
	}
	nbonds, err := intColumn(counts, 3, 6, "bond count", 3)
	if err != nil {
		return nil, err
	}
	if natoms < 0 || nbonds < 0 || len(lines) < 4+natoms+nbonds {
		return nil, fmt.Errorf("counts %d atoms %d bonds exceed record: %w", natoms, nbonds, ErrParse)
	}

	m := New(strings.TrimSpace(lines[0]))
	valence := make([]int, natoms)
	ln := 4
	for i := 0; i < natoms; i, ln = i+1, ln+1 {
		a, v, err := parseAtom(lines[ln], ln)
		if err != nil {
			return nil, err
		}
		m.AddAtom(a)
		valence[i] = v
	}
	for i := 0; i < nbonds; i, ln = i+1, ln+1 {
		if err := parseBond(m, lines[ln], ln); err != nil {
			return nil, err
		}
	}

	ln, err = parseProperties(m, lines, ln)
	if err != nil {
		return nil, err
	}
	parseData(m, lines[ln:])

	for i, v := range valence {
		if v == 0 {
			continue
		}
		if v == 15 {
			v = 0
		}
		h := v - bondValence(m, i)
		if h < 0 {
			h = 0
		}
		m.Atoms[i].Hydrogens = h
		m.Atoms[i].FixedHydrogens = true
	}

	return m, nil
}

// parseAtom reads one atom line and returns the atom and its explicit
// valence field.
func parseAtom(line string, ln int) (Atom, int, error) {
	var a Atom
	var err error
	if a.X, err = floatColumn(line, 0, 10, "x", ln); err != nil {
		return a, 0, err
	}
	if a.Y, err = floatColumn(line, 10, 20, "y", ln); err != nil {
		return a, 0, err
	}
	if a.Z, err = floatColumn(line, 20, 30, "z", ln); err != nil {
		return a, 0, err
	}

	label := column(line, 31, 34)
	if label == "" {
		return a, 0, fmt.Errorf("line %d: missing atom symbol: %w", ln+1, ErrParse)
	}
	diff, err := intColumn(line, 34, 36, "mass difference", ln)
	if err != nil {
		return a, 0, err
	}
	code, err := intColumn(line, 36, 39, "charge", ln)
	if err != nil {
		return a, 0, err
	}
	valence, err := intColumn(line, 48, 51, "valence", ln)
	if err != nil {
		return a, 0, err
	}

	switch label {
	case "D":
		a.Element, a.Number, a.Isotope = "H", 1, 2
	case "T":
		a.Element, a.Number, a.Isotope = "H", 1, 3
	default:
		a.Element = label
		a.Number = AtomicNumber(label)
		if diff != 0 {
			if a.Number == 0 {
				return a, 0, fmt.Errorf("line %d: isotope on pseudo atom %q: %w", ln+1, label, ErrParse)
			}
			a.Isotope = DefaultIsotope(a.Number) + diff
		}
	}

	switch code {
	case 0:
	case 4:
		a.Radical = Doublet
	case 1, 2, 3, 5, 6, 7:
		a.Charge = 4 - code
	default:
		return a, 0, fmt.Errorf("line %d: charge code %d: %w", ln+1, code, ErrParse)
	}

	return a, valence, nil
}

func parseBond(m *Molecule, line string, ln int) error {
	a, err := intColumn(line, 0, 3, "first atom", ln)
	if err != nil {
		return err
	}
	b, err := intColumn(line, 3, 6, "second atom", ln)
	if err != nil {
		return err
	}
	order, err := intColumn(line, 6, 9, "bond type", ln)
	if err != nil {
		return err
	}
	if order > Aromatic && order <= 8 {
		return fmt.Errorf("line %d: query bond type %d: %w", ln+1, order, ErrUnsupported)
	}
	if _, err := m.AddBond(a-1, b-1, order); err != nil {
		return fmt.Errorf("line %d: %w: %w", ln+1, ErrParse, err)
	}

	return nil
}

// parseProperties applies "M  " lines and returns the index after "M  END"
// (or the end of the record when it is missing).
func parseProperties(m *Molecule, lines []string, ln int) (int, error) {
	for ; ln < len(lines); ln++ {
		line := lines[ln]
		if strings.HasPrefix(line, "M  END") {
			return ln + 1, nil
		}
		if !strings.HasPrefix(line, "M  ") || len(line) < 6 {
			continue
		}
		prop := line[3:6]
		switch prop {
		case "CHG", "RAD", "ISO":
		default:
			continue
		}

		fields := strings.Fields(line[6:])
		if len(fields) == 0 {
			return ln, fmt.Errorf("line %d: M  %s without count: %w", ln+1, prop, ErrParse)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 || len(fields) < 1+2*n {
			return ln, fmt.Errorf("line %d: M  %s entry count: %w", ln+1, prop, ErrParse)
		}
		for k := 0; k < n; k++ {
			idx, err1 := strconv.Atoi(fields[1+2*k])
			val, err2 := strconv.Atoi(fields[2+2*k])
			if err1 != nil || err2 != nil {
				return ln, fmt.Errorf("line %d: M  %s pair %d: %w", ln+1, prop, k+1, ErrParse)
			}
			if idx < 1 || idx > len(m.Atoms) {
				return ln, fmt.Errorf("line %d: M  %s atom %d: %w", ln+1, prop, idx, ErrAtomIndex)
			}
			a := &m.Atoms[idx-1]
			switch prop {
			case "CHG":
				a.Charge = val
			case "RAD":
				if val < NoRadical || val > Triplet {
					return ln, fmt.Errorf("line %d: radical %d: %w", ln+1, val, ErrParse)
				}
				a.Radical = val
			case "ISO":
				if a.Number == 0 {
					return ln, fmt.Errorf("line %d: isotope on pseudo atom: %w", ln+1, ErrParse)
				}
				a.Isotope = val
			}
		}
	}

	return ln, nil
}

// parseData reads SD data items ("> <NAME>" followed by value lines).
func parseData(m *Molecule, lines []string) {
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !strings.HasPrefix(line, ">") {
			continue
		}
		open := strings.IndexByte(line, '<')
		end := strings.LastIndexByte(line, '>')
		if open < 0 || end <= open {
			continue
		}
		name := line[open+1 : end]
		var val []string
		for i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			i++
			val = append(val, lines[i])
		}
		if m.Properties == nil {
			m.Properties = make(map[string]string)
		}
		m.Properties[name] = strings.Join(val, "\n")
	}
}

// WriteMolfile writes m as a V2000 molfile record without the SD terminator.
// Charges, radicals and isotopes go to property lines.
func WriteMolfile(w io.Writer, m *Molecule) error {
	if m == nil {
		return ErrNilMolecule
	}
	if len(m.Atoms) > 999 || len(m.Bonds) > 999 {
		return fmt.Errorf("%d atoms %d bonds exceed V2000 limits: %w", len(m.Atoms), len(m.Bonds), ErrUnsupported)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n  canonlab\n\n", m.Name)
	fmt.Fprintf(bw, "%3d%3d  0  0  0  0  0  0  0  0999 V2000\n", len(m.Atoms), len(m.Bonds))
	for _, a := range m.Atoms {
		label := a.Element
		if len(label) > 3 {
			label = label[:3]
		}
		fmt.Fprintf(bw, "%10.4f%10.4f%10.4f %-3s 0  0  0  0  0  0  0  0  0  0  0  0\n", a.X, a.Y, a.Z, label)
	}
	for _, bd := range m.Bonds {
		fmt.Fprintf(bw, "%3d%3d%3d  0\n", bd.A+1, bd.B+1, bd.Order)
	}

	writeProperty(bw, "CHG", m, func(a Atom) int { return a.Charge })
	writeProperty(bw, "RAD", m, func(a Atom) int { return a.Radical })
	writeProperty(bw, "ISO", m, func(a Atom) int { return a.Isotope })
	fmt.Fprintln(bw, "M  END")
	for _, k := range sortedKeys(m.Properties) {
		fmt.Fprintf(bw, "> <%s>\n%s\n\n", k, m.Properties[k])
	}

	return bw.Flush()
}

// WriteSDF writes every molecule followed by "$$$$".
func WriteSDF(w io.Writer, mols []*Molecule) error {
	for _, m := range mols {
		if err := WriteMolfile(w, m); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, sdfTerminator); err != nil {
			return err
		}
	}

	return nil
}

// writeProperty emits "M  XXX" lines with up to eight nonzero entries each.
func writeProperty(w io.Writer, prop string, m *Molecule, get func(Atom) int) {
	var idx []int
	for i, a := range m.Atoms {
		if get(a) != 0 {
			idx = append(idx, i)
		}
	}
	for len(idx) > 0 {
		chunk := idx
		if len(chunk) > 8 {
			chunk = chunk[:8]
		}
		idx = idx[len(chunk):]
		fmt.Fprintf(w, "M  %s%3d", prop, len(chunk))
		for _, i := range chunk {
			fmt.Fprintf(w, " %3d %3d", i+1, get(m.Atoms[i]))
		}
		fmt.Fprintln(w)
	}
}
