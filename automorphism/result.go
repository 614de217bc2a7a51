package automorphism

// CanonicalNumbering returns the original vertex ids in canonical order
// (first-leaf order when canonical form is disabled). Ignored vertices are
// not listed. Nil before a successful Process.
func (s *Search) CanonicalNumbering() []int {
	if !s.valid {
		return nil
	}
	lab := s.firstlab
	if s.canonical() {
		lab = s.canonlab
	}
	out := make([]int, s.n)
	for i := 0; i < s.n; i++ {
		out[i] = s.mapping[lab[i]]
	}

	return out
}

// Orbits returns, per original vertex id, the original id of its orbit
// representative; ignored vertices map to -1.
func (s *Search) Orbits() []int {
	if !s.valid {
		return nil
	}
	out := s.filled(-1)
	for i := 0; i < s.n; i++ {
		out[s.mapping[i]] = s.mapping[s.orbits[i]]
	}

	return out
}

// CanonicallyOrderedOrbits returns, per original vertex id, the smallest
// canonical position among the members of its orbit; ignored vertices map to
// -1. Two vertices share a value iff they share an orbit.
func (s *Search) CanonicallyOrderedOrbits() []int {
	if !s.valid {
		return nil
	}
	lab := s.firstlab
	if s.canonical() {
		lab = s.canonlab
	}
	minPos := make([]int, s.n)
	for i := range minPos {
		minPos[i] = -1
	}
	for pos := 0; pos < s.n; pos++ {
		o := s.orbits[lab[pos]]
		if minPos[o] == -1 || minPos[o] > pos {
			minPos[o] = pos
		}
	}

	out := s.filled(-1)
	for i := 0; i < s.n; i++ {
		out[s.mapping[i]] = minPos[s.orbits[i]]
	}

	return out
}

// OrbitCount returns the number of orbits among non-ignored vertices.
func (s *Search) OrbitCount() int {
	if !s.valid {
		return 0
	}
	if s.n == 0 {
		return 0
	}

	return s.orbitsNum
}

// Stats returns counters of the last Process call.
func (s *Search) Stats() Stats { return s.stats }

func (s *Search) filled(v int) []int {
	out := make([]int, s.order)
	for i := range out {
		out[i] = v
	}

	return out
}
