package automorphism

// joinOrbits merges the orbits of i and perm[i] for every i. Roots are the
// smallest member; the forest is flattened and the orbit count recomputed.
func joinOrbits(orbits, perm []int) int {
	for i, p := range perm {
		j1 := orbits[i]
		for orbits[j1] != j1 {
			j1 = orbits[j1]
		}
		j2 := orbits[p]
		for orbits[j2] != j2 {
			j2 = orbits[j2]
		}
		if j1 < j2 {
			orbits[j2] = j1
		} else if j1 > j2 {
			orbits[j1] = j2
		}
	}

	count := 0
	for i := range orbits {
		orbits[i] = orbits[orbits[i]]
		if orbits[i] == i {
			count++
		}
	}

	return count
}
