package automorphism

// historyEntry holds the fixed points and minimal cycle representatives of
// one automorphism.
type historyEntry struct {
	fix []bool
	mcr []bool
}

// history is a ring buffer of recent automorphisms. Once full, each push
// overwrites the oldest entry.
type history struct {
	entries   []historyEntry
	capacity  int
	start     int
	size      int
	evictions int
}

func (h *history) reset() {
	h.start, h.size, h.evictions = 0, 0, 0
}

func (h *history) len() int { return h.size }

// push returns the slot for a new entry with both bitmaps cleared to n bits.
func (h *history) push(n int) *historyEntry {
	var idx int
	if h.size < h.capacity {
		idx = (h.start + h.size) % h.capacity
		if idx >= len(h.entries) {
			h.entries = append(h.entries, historyEntry{})
		}
		h.size++
	} else {
		idx = h.start
		h.start = (h.start + 1) % h.capacity
		h.evictions++
	}
	e := &h.entries[idx]
	e.fix = resizeBools(e.fix, n)
	e.mcr = resizeBools(e.mcr, n)

	return e
}

// at returns the k-th entry, oldest first.
func (h *history) at(k int) *historyEntry {
	return &h.entries[(h.start+k)%h.capacity]
}

// newest returns the most recent entry; the history must not be empty.
func (h *history) newest() *historyEntry {
	return h.at(h.size - 1)
}

// buildFixMcr fills e from perm. seen is scratch of len(perm).
func buildFixMcr(perm []int, e *historyEntry, seen []bool) {
	for i := range seen {
		seen[i] = false
	}
	for i, p := range perm {
		if p == i {
			e.fix[i] = true
			e.mcr[i] = true
			continue
		}
		if seen[i] {
			continue
		}
		for l := i; ; {
			seen[l] = true
			l = perm[l]
			if l == i {
				break
			}
		}
		e.mcr[i] = true
	}
}

// shortPrune keeps the members of cell that are minimal cycle
// representatives and returns the shrunken cell with idx moved back by the
// number of removed members at or before it.
func shortPrune(cell []int, mcr []bool, idx int) ([]int, int) {
	ret, j := idx, 0
	for i, v := range cell {
		if mcr[v] {
			cell[j] = v
			j++
		} else if idx >= i {
			ret--
		}
	}

	return cell[:j], ret
}

// longPrune applies shortPrune for every stored automorphism that fixes all
// of fixed.
func longPrune(cell []int, fixed []bool, idx int, h *history) ([]int, int) {
	for k := 0; k < h.len(); k++ {
		e := h.at(k)
		if !fixesAll(e.fix, fixed) {
			continue
		}
		cell, idx = shortPrune(cell, e.mcr, idx)
	}

	return cell, idx
}

func fixesAll(fix, fixed []bool) bool {
	for j, f := range fixed {
		if f && !fix[j] {
			return false
		}
	}

	return true
}

func (s *Search) shortPruneLevel(level, idx int) int {
	before := len(s.tcells[level])
	cell, k := shortPrune(s.tcells[level], s.history.newest().mcr, idx)
	s.tcells[level] = cell
	s.stats.Pruned += before - len(cell)

	return k
}

func (s *Search) longPruneLevel(level, idx int) int {
	before := len(s.tcells[level])
	cell, k := longPrune(s.tcells[level], s.fixedpts, idx, &s.history)
	s.tcells[level] = cell
	s.stats.Pruned += before - len(cell)

	return k
}
