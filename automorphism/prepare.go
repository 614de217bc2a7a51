package automorphism

import (
	"fmt"
	"sort"
)

// prepare copies g into the internal graph and builds the initial ordered
// partition (lab, ptn) with every cell closed at level 0.
func (s *Search) prepare(g Graph) error {
	order, size := g.Order(), g.Size()
	if order < 0 || size < 0 {
		return fmt.Errorf("%w: negative order %d or size %d", ErrConfiguration, order, size)
	}
	ign := s.opts.IgnoredVertices
	if ign != nil && len(ign) < order {
		return fmt.Errorf("%w: ignored-vertex mask has %d entries for %d vertices",
			ErrConfiguration, len(ign), order)
	}
	ignored := func(v int) bool { return ign != nil && ign[v] }
	s.order = order

	s.origDeg = resizeInts(s.origDeg, order)
	for e := 0; e < size; e++ {
		u, v := g.Endpoints(e)
		if u < 0 || u >= order || v < 0 || v >= order {
			return fmt.Errorf("%w: edge %d endpoint (%d,%d) out of range", ErrConfiguration, e, u, v)
		}
		if u == v {
			return fmt.Errorf("%w: edge %d is a self-loop on %d", ErrConfiguration, e, u)
		}
		if ignored(u) || ignored(v) {
			continue
		}
		s.origDeg[u]++
		s.origDeg[v]++
	}

	s.mapping = s.mapping[:0]
	for v := 0; v < order; v++ {
		if !ignored(v) {
			s.mapping = append(s.mapping, v)
		}
	}
	n := len(s.mapping)
	s.n = n

	ranks := s.scratchRanks(n)
	switch s.opts.Ordering.kind {
	case orderingCompare:
		sort.SliceStable(s.mapping, func(i, j int) bool {
			return s.cmpVertices(s.mapping[i], s.mapping[j]) < 0
		})
		rank := 0
		for i := range s.mapping {
			if i > 0 && s.cmpVertices(s.mapping[i], s.mapping[i-1]) != 0 {
				rank++
			}
			ranks[i] = rank
		}
	case orderingRank:
		for i, v := range s.mapping {
			ranks[i] = s.opts.Ordering.rank(g, v)
		}
		compress(ranks, s.bucket[:0])
	}

	s.inv = resizeInts(s.inv, order)
	for i := range s.inv {
		s.inv[i] = -1
	}
	for i, v := range s.mapping {
		s.inv[v] = i
	}

	s.ig.reset(n)
	for e := 0; e < size; e++ {
		u, v := g.Endpoints(e)
		if ignored(u) || ignored(v) {
			continue
		}
		s.ig.addEdge(s.inv[u], s.inv[v], e)
	}
	if err := s.ig.index(); err != nil {
		return err
	}
	if s.opts.EdgeRank != nil {
		m := len(s.ig.edges)
		s.ig.rawRank = make([]int, m)
		s.ig.rank = make([]int, m)
		for e, oe := range s.ig.orig {
			s.ig.rawRank[e] = s.opts.EdgeRank(g, oe)
		}
		copy(s.ig.rank, s.ig.rawRank)
		compress(s.ig.rank, nil)
	}

	// Cells are runs of equal rank in ascending rank order.
	maxRank := -1
	for _, r := range ranks {
		if r > maxRank {
			maxRank = r
		}
	}
	buckets := resizeInts(s.bucket, maxRank+1)
	for _, r := range ranks {
		buckets[r]++
	}
	s.ptn = resizeInts(s.ptn, n)
	for i := range s.ptn {
		s.ptn[i] = infinity
	}
	start := 0
	for r, c := range buckets {
		if c == 0 {
			continue
		}
		end := start + c
		buckets[r] = start
		s.ptn[end-1] = 0
		start = end
	}
	s.lab = resizeInts(s.lab, n)
	for i, r := range ranks {
		s.lab[buckets[r]] = i
		buckets[r]++
	}
	s.bucket = buckets[:0]

	return nil
}

// cmpVertices orders original vertices for CompareBy orderings.
func (s *Search) cmpVertices(v1, v2 int) int {
	d := s.origDeg[v1] - s.origDeg[v2]
	if s.opts.DegreeFirst && d != 0 {
		return d
	}
	if c := s.opts.Ordering.cmp(s.g, v1, v2); c != 0 {
		return c
	}
	if !s.opts.DegreeFirst {
		return d
	}

	return 0
}

func (s *Search) scratchRanks(n int) []int {
	s.scratch = resizeInts(s.scratch, n)

	return s.scratch
}

// compress replaces every value by its index among the sorted distinct
// values, keeping relative order. buf is reused when large enough.
func compress(vals []int, buf []int) {
	if len(vals) == 0 {
		return
	}
	distinct := append(buf[:0], vals...)
	sort.Ints(distinct)
	k := 0
	for i := 1; i < len(distinct); i++ {
		if distinct[i] != distinct[k] {
			k++
			distinct[k] = distinct[i]
		}
	}
	distinct = distinct[:k+1]
	for i, v := range vals {
		vals[i] = sort.SearchInts(distinct, v)
	}
}
