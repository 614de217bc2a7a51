package automorphism

import "fmt"

// targetCell picks the cell to branch on at level and stores its members in
// tcells[level] with the smallest internal id first. Cells whose first member
// is isolated win; otherwise the largest cell (first on ties) is chosen.
func (s *Search) targetCell(level int) (int, error) {
	n := s.n
	ibest, jbest, bestDeg := -1, -1, -1

	for i := 0; i < n; {
		for ; i < n && s.ptn[i] <= level; i++ {
		}
		if i == n {
			break
		}
		j := i + 1
		for ; s.ptn[j] > level; j++ {
		}

		deg := s.ig.degree[s.lab[i]]
		if ibest == -1 || (deg == 0 && bestDeg != 0) || (bestDeg != 0 && j-i > jbest-ibest) {
			ibest, jbest, bestDeg = i, j, deg
		}
		i = j + 1
	}
	if ibest == -1 {
		return 0, fmt.Errorf("%w: no target cell at level %d", ErrInternalInvariant, level)
	}

	cell := s.tcells[level][:0]
	imin := 0
	for k := ibest; k <= jbest; k++ {
		cell = append(cell, s.lab[k])
		if last := len(cell) - 1; cell[last] < cell[imin] {
			imin = last
		}
	}
	cell[0], cell[imin] = cell[imin], cell[0]
	s.tcells[level] = cell

	return ibest, nil
}
