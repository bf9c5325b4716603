package ga

import "math/rand"

// CrossoverMS is the MS two-point crossover. pos1==pos2
// returns (p1, p2) unchanged (as fresh copies, since operators are
// pure). Because MS entries at position p are bounded by the same
// per-position option count for both parents, legality is preserved.
func CrossoverMS(p1, p2 []int, rng *rand.Rand) (o1, o2 []int) {
	n := len(p1)
	pos1 := rng.Intn(n)
	pos2 := rng.Intn(n)
	if pos1 > pos2 {
		pos1, pos2 = pos2, pos1
	}

	o1 = make([]int, n)
	o2 = make([]int, n)
	copy(o1, p1)
	copy(o2, p2)
	if pos1 == pos2 {
		return o1, o2
	}

	copy(o1[pos1:pos2], p2[pos1:pos2])
	copy(o2[pos1:pos2], p1[pos1:pos2])
	return o1, o2
}
