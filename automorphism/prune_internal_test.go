package automorphism

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFixMcr(t *testing.T) {
	// (0)(1 3)(2 4 5)
	perm := []int{0, 3, 4, 1, 5, 2}
	var h history
	h.capacity = 2
	e := h.push(len(perm))
	buildFixMcr(perm, e, make([]bool, len(perm)))

	assert.Equal(t, []bool{true, false, false, false, false, false}, e.fix)
	assert.Equal(t, []bool{true, true, true, false, false, false}, e.mcr)
}

func TestShortPrune(t *testing.T) {
	mcr := []bool{true, false, true, false, true}
	cell, idx := shortPrune([]int{1, 0, 3, 2, 4}, mcr, 3)
	assert.Equal(t, []int{0, 2, 4}, cell)
	// 1 and 3 were removed at or before position 3.
	assert.Equal(t, 1, idx)

	cell, idx = shortPrune([]int{4, 1}, mcr, 0)
	assert.Equal(t, []int{4}, cell)
	assert.Equal(t, 0, idx)
}

func TestLongPrune_OnlyMatchingEntries(t *testing.T) {
	h := history{capacity: 4}
	a := h.push(4)
	copy(a.fix, []bool{true, false, false, false})
	copy(a.mcr, []bool{true, true, false, false})
	b := h.push(4)
	copy(b.fix, []bool{false, false, false, false})
	copy(b.mcr, []bool{true, false, false, false})

	// Vertex 0 is fixed: only entry a fixes it.
	cell, idx := longPrune([]int{1, 2, 3}, []bool{true, false, false, false}, 0, &h)
	assert.Equal(t, []int{1}, cell)
	assert.Equal(t, 0, idx)
}

func TestHistory_EvictsOldest(t *testing.T) {
	h := history{capacity: 2}
	for i := 0; i < 3; i++ {
		e := h.push(3)
		e.fix[i] = true
	}
	require.Equal(t, 2, h.len())
	assert.Equal(t, 1, h.evictions)
	assert.True(t, h.at(0).fix[1])
	assert.True(t, h.at(1).fix[2])
	assert.True(t, h.newest().fix[2])
	assert.False(t, h.newest().fix[0])

	h.reset()
	assert.Equal(t, 0, h.len())
}

func TestJoinOrbits(t *testing.T) {
	orbits := []int{0, 1, 2, 3, 4}
	assert.Equal(t, 4, joinOrbits(orbits, []int{4, 1, 2, 3, 0}))
	assert.Equal(t, 2, joinOrbits(orbits, []int{0, 2, 3, 1, 4}))
	assert.Equal(t, []int{0, 1, 1, 1, 0}, orbits)
}

func TestCompress(t *testing.T) {
	vals := []int{40, -2, 40, 7}
	compress(vals, nil)
	assert.Equal(t, []int{2, 0, 2, 1}, vals)
}
