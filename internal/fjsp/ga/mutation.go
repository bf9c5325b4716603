package ga

import (
	"math/rand"

	"fjsslga/internal/fjsp"
)

// neighborhoodRetryBudget bounds the resampling of a distinct-values
// triple before falling back to swapping mutation.
const neighborhoodRetryBudget = 50

// MutateSwapOS picks two positions uniformly and swaps them; equal
// positions are a no-op. Returns a new slice.
func MutateSwapOS(p []int, rng *rand.Rand) []int {
	o := make([]int, len(p))
	copy(o, p)
	if len(o) < 2 {
		return o
	}
	pos1 := rng.Intn(len(o))
	pos2 := rng.Intn(len(o))
	if pos1 == pos2 {
		return o
	}
	o[pos1], o[pos2] = o[pos2], o[pos1]
	return o
}

// permutations6 are the 6 orderings of 3 elements, used to pick a
// uniformly random permutation of the 3 chosen values.
var permutations6 = [6][3]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

// MutateNeighborhoodOS picks three distinct positions with mutually
// distinct values, sorts the positions, and places a uniformly random
// permutation of the three values at those positions. Falls back to
// MutateSwapOS if no such triple is found within a bounded retry budget.
func MutateNeighborhoodOS(p []int, rng *rand.Rand) []int {
	n := len(p)
	if n < 3 {
		return MutateSwapOS(p, rng)
	}

	var pos1, pos2, pos3 int
	found := false
	for attempt := 0; attempt < neighborhoodRetryBudget; attempt++ {
		pos1 = rng.Intn(n)
		pos2 = rng.Intn(n)
		pos3 = rng.Intn(n)
		if p[pos1] != p[pos2] && p[pos1] != p[pos3] && p[pos2] != p[pos3] {
			found = true
			break
		}
	}
	if !found {
		return MutateSwapOS(p, rng)
	}

	if pos1 > pos2 {
		pos1, pos2 = pos2, pos1
	}
	if pos2 > pos3 {
		pos2, pos3 = pos3, pos2
	}
	if pos1 > pos2 {
		pos1, pos2 = pos2, pos1
	}

	e1, e2, e3 := p[pos1], p[pos2], p[pos3]
	perm := permutations6[rng.Intn(6)]
	values := [3]int{e1, e2, e3}

	o := make([]int, n)
	copy(o, p)
	o[pos1] = values[perm[0]]
	o[pos2] = values[perm[1]]
	o[pos3] = values[perm[2]]
	return o
}

// MutateOS dispatches 50/50 between swap and neighborhood mutation.
func MutateOS(p []int, rng *rand.Rand) []int {
	if rng.Float64() < 0.5 {
		return MutateSwapOS(p, rng)
	}
	return MutateNeighborhoodOS(p, rng)
}

// MutateHalfMS selects floor(L/2) random positions and resets each to a
// uniform random option index for its operation. Returns a new slice
// rather than mutating ms in place, since ms may alias a parent still
// referenced elsewhere in the population.
func MutateHalfMS(inst *fjsp.Instance, ms []int, rng *rand.Rand) []int {
	n := len(ms)
	o := make([]int, n)
	copy(o, ms)

	r := n / 2
	positions := rng.Perm(n)[:r]
	chosen := make(map[int]bool, r)
	for _, p := range positions {
		chosen[p] = true
	}

	i := 0
	for j := 0; j < inst.JobsCount(); j++ {
		for k := 0; k < inst.JobLen(j); k++ {
			if chosen[i] {
				nOpts := len(inst.OptionsOf(j, k))
				o[i] = rng.Intn(nOpts)
			}
			i++
		}
	}
	return o
}

// MutateMS always applies half mutation.
func MutateMS(inst *fjsp.Instance, ms []int, rng *rand.Rand) []int {
	return MutateHalfMS(inst, ms, rng)
}

// MutatePopulation mutates each individual (both OS and MS) with
// probability pm; otherwise the individual carries through unchanged.
func MutatePopulation(inst *fjsp.Instance, pop []fjsp.Chromosome, pm float64, rng *rand.Rand) []fjsp.Chromosome {
	out := make([]fjsp.Chromosome, len(pop))
	for i, c := range pop {
		if rng.Float64() < pm {
			out[i] = fjsp.Chromosome{OS: MutateOS(c.OS, rng), MS: MutateMS(inst, c.MS, rng)}
		} else {
			out[i] = c.Clone()
		}
	}
	return out
}
