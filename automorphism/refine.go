package automorphism

// anyRank makes hasEdgeWithRank accept every edge and record its rank.
const anyRank = -1

func (s *Search) refine(level int, numcells *int) {
	if s.opts.SortedNeighbourhood {
		s.refineSorted(level, numcells)
		return
	}
	s.refineOriginal(level, numcells)
}

// refineOriginal takes one active cell at a time as the splitter, preferring
// the hinted position.
func (s *Search) refineOriginal(level int, numcells *int) {
	hint, split1 := 0, -1

	for *numcells < s.n {
		if s.active[hint] {
			split1 = hint
		} else {
			found := false
			for i := 0; i < s.n; i++ {
				split1 = (split1 + 1) % s.n
				if s.active[split1] {
					found = true
					break
				}
			}
			if !found {
				break
			}
		}
		s.active[split1] = false

		split2 := split1
		for s.ptn[split2] > level {
			split2++
		}

		s.rankSeen = s.rankSeen[:0]
		s.refineByCell(split1, split2, level, numcells, &hint, anyRank)
		// The unranked pass already separates the greatest observed rank.
		for r := 0; r < len(s.rankSeen)-1; r++ {
			if s.rankSeen[r] != 0 {
				s.refineByCell(split1, split2, level, numcells, &hint, r)
			}
		}
	}
}

// refineSorted collects every active cell first and then refines the whole
// partition against each of them.
func (s *Search) refineSorted(level int, numcells *int) {
	for {
		s.workCells = s.workCells[:0]
		for i := 0; i < s.n; i++ {
			if !s.active[i] {
				continue
			}
			split2 := i
			for s.ptn[split2] > level {
				split2++
			}
			s.workCells = append(s.workCells, [2]int{i, split2})
			s.active[i] = false
		}
		if len(s.workCells) == 0 {
			return
		}

		for _, c := range s.workCells {
			var hint int
			s.rankSeen = s.rankSeen[:0]
			s.refineByCell(c[0], c[1], level, numcells, &hint, anyRank)
			if *numcells == s.n {
				return
			}
		}
	}
}

// hasEdgeWithRank reports whether the vertices at internal ids from and to
// are joined by an edge of the wanted rank.
func (s *Search) hasEdgeWithRank(from, to, rank int) bool {
	e := s.ig.edgeIndex(from, to)
	if e < 0 {
		return false
	}
	if s.ig.rank == nil {
		return true
	}
	r := s.ig.rank[e]
	if rank == anyRank {
		for len(s.rankSeen) <= r {
			s.rankSeen = append(s.rankSeen, 0)
		}
		s.rankSeen[r]++
		return true
	}

	return r == rank
}

// refineByCell splits every cell by the number of neighbours its members have
// in lab[split1..split2].
func (s *Search) refineByCell(split1, split2, level int, numcells, hint *int, rank int) {
	n := s.n
	lab, ptn, active := s.lab, s.ptn, s.active
	sorted := s.opts.SortedNeighbourhood

	if split1 == split2 {
		pivot := lab[split1]
		var cell2 int
		for cell1 := 0; cell1 < n; cell1 = cell2 + 1 {
			for cell2 = cell1; ptn[cell2] > level; cell2++ {
			}
			if cell1 == cell2 {
				continue
			}

			c1, c2 := cell1, cell2
			for c1 <= c2 {
				if s.hasEdgeWithRank(pivot, lab[c1], rank) {
					c1++
				} else {
					lab[c1], lab[c2] = lab[c2], lab[c1]
					c2--
				}
			}

			if c2 >= cell1 && c1 <= cell2 {
				ptn[c2] = level
				*numcells++
				if active[cell1] || (c2-cell1 >= cell2-c1 && !sorted) {
					active[c1] = true
					if c1 == cell2 {
						*hint = c1
					}
				} else {
					active[cell1] = true
					if c2 == cell1 {
						*hint = cell1
					}
				}
			}
		}

		return
	}

	var cell2 int
	for cell1 := 0; cell1 < n; cell1 = cell2 + 1 {
		for cell2 = cell1; ptn[cell2] > level; cell2++ {
		}
		if cell1 == cell2 {
			continue
		}

		bmin := n
		bucket := s.bucket[:0]
		for i := cell1; i <= cell2; i++ {
			cnt := 0
			for j := split1; j <= split2; j++ {
				if s.hasEdgeWithRank(lab[i], lab[j], rank) {
					cnt++
				}
			}
			for len(bucket) <= cnt {
				bucket = append(bucket, 0)
			}
			bucket[cnt]++
			if cnt < bmin {
				bmin = cnt
			}
			s.count[i] = cnt
		}
		s.bucket = bucket

		if bmin == len(bucket)-1 {
			continue
		}

		if s.opts.ReverseDegree {
			nb := len(bucket)
			for i := cell1; i <= cell2; i++ {
				s.count[i] = nb - s.count[i] - 1
			}
			for i := nb - 1; i >= bmin; i-- {
				if dest := nb - i - 1; dest < i {
					bucket[i], bucket[dest] = bucket[dest], bucket[i]
				}
			}
			bucket = bucket[:nb-bmin]
			bmin = 0
		}

		c1 := cell1
		maxcell, maxpos, lastC1 := -1, -1, -1
		for i := bmin; i < len(bucket); i++ {
			if bucket[i] == 0 {
				continue
			}
			c2 := c1 + bucket[i]
			bucket[i] = c1
			lastC1 = c1
			if c2-c1 > maxcell {
				maxcell = c2 - c1
				maxpos = c1
			}
			if c1 != cell1 {
				active[c1] = true
				if c2-c1 == 1 {
					*hint = c1
				}
				*numcells++
			}
			if c2 <= cell2 {
				ptn[c2-1] = level
			}
			c1 = c2
		}

		for i := cell1; i <= cell2; i++ {
			s.workperm[bucket[s.count[i]]] = lab[i]
			bucket[s.count[i]]++
		}
		copy(lab[cell1:cell2+1], s.workperm[cell1:cell2+1])

		if !active[cell1] {
			active[cell1] = true
			if sorted {
				active[lastC1] = false
			} else {
				active[maxpos] = false
			}
		}
	}
}
