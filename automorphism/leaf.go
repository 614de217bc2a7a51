package automorphism

// processNode handles a node below the first path. Non-leaves return level.
// Leaves are tested against firstlab (automorphism) and, with canonical form,
// against canonlab; the return value is the level to backtrack to.
func (s *Search) processNode(level, numcells int) (int, error) {
	if numcells != s.n {
		return level, nil
	}
	if err := s.checkCancelled(); err != nil {
		return 0, err
	}
	s.stats.Leaves++

	perm := s.workperm
	for i := 0; i < s.n; i++ {
		perm[s.firstlab[i]] = s.lab[i]
	}
	if s.isAutomorphism(perm) {
		s.recordAutomorphism(perm)
		s.orbitsNum = joinOrbits(s.orbits, perm)
		s.handleAutomorphism(perm)

		return s.gcaFirst, nil
	}

	if !s.canonical() {
		return level - 1, nil
	}

	switch c := s.compareCanon(); {
	case c == 0:
		for i := 0; i < s.n; i++ {
			perm[s.canonlab[i]] = s.lab[i]
		}
		// Equal under the comparator is not enough; the map must preserve edges.
		if !s.isAutomorphism(perm) {
			return level - 1, nil
		}
		s.recordAutomorphism(perm)
		norb := s.orbitsNum
		s.orbitsNum = joinOrbits(s.orbits, perm)
		if norb != s.orbitsNum {
			s.handleAutomorphism(perm)
			if s.orbits[s.cosetIndex] < s.cosetIndex {
				return s.gcaFirst, nil
			}
		}
		if s.gcaCanon != s.gcaFirst {
			s.needShortPrune = true
		}

		return s.gcaCanon, nil
	case c > 0:
		copy(s.canonlab, s.lab)
		s.canonLevel, s.gcaCanon = level, level
		s.stats.CanonUpdates++
	}

	return level - 1, nil
}

// isAutomorphism checks that perm (over internal ids) maps every edge onto an
// edge of the same rank and passes the caller's check.
func (s *Search) isAutomorphism(perm []int) bool {
	for e, uv := range s.ig.edges {
		f := s.ig.edgeIndex(perm[uv[0]], perm[uv[1]])
		if f < 0 {
			return false
		}
		if s.ig.rank != nil && s.ig.rank[f] != s.ig.rank[e] {
			return false
		}
	}
	if s.opts.AutomorphismCheck == nil {
		return true
	}
	s.permOrig = s.toOriginal(perm, s.permOrig)

	return s.opts.AutomorphismCheck(s.g, s.permOrig)
}

func (s *Search) recordAutomorphism(perm []int) {
	e := s.history.push(s.n)
	s.seen = resizeBools(s.seen, s.n)
	buildFixMcr(perm, e, s.seen)
	s.stats.Automorphisms++
	s.stats.HistoryEvictions = s.history.evictions
}

// toOriginal translates an internal permutation into dst, indexed by
// original vertex id with -1 for ignored vertices.
func (s *Search) toOriginal(perm, dst []int) []int {
	if cap(dst) < s.order {
		dst = make([]int, s.order)
	}
	dst = dst[:s.order]
	for i := range dst {
		dst[i] = -1
	}
	for i, p := range perm {
		dst[s.mapping[i]] = s.mapping[p]
	}

	return dst
}

func (s *Search) handleAutomorphism(perm []int) {
	if s.opts.OnAutomorphism == nil {
		return
	}
	s.opts.OnAutomorphism(s.toOriginal(perm, nil))
}

// compareCanon compares the current leaf with canonlab in original ids.
func (s *Search) compareCanon() int {
	s.mapA = resizeInts(s.mapA, s.n)
	s.mapB = resizeInts(s.mapB, s.n)
	for i := 0; i < s.n; i++ {
		s.mapA[i] = s.mapping[s.lab[i]]
		s.mapB[i] = s.mapping[s.canonlab[i]]
	}

	return s.opts.CompareMapped(s.g, s.mapA, s.mapB)
}
