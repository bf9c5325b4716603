package ga

import (
	"math/rand"

	"fjsslga/internal/fjsp"
)

// CrossoverPopulation applies crossover pairwise across the population
// in its current order: with probability pc produce (POX-or-JBX on OS,
// two-point on MS); otherwise carry both parents through unchanged. An
// odd population carries its last individual through unchanged (spec
// §4.D.5).
func CrossoverPopulation(pop []fjsp.Chromosome, jobsCount int, pc float64, rng *rand.Rand) []fjsp.Chromosome {
	out := make([]fjsp.Chromosome, 0, len(pop))
	i := 0
	for ; i+1 < len(pop); i += 2 {
		p1, p2 := pop[i], pop[i+1]
		if rng.Float64() < pc {
			oOS1, oOS2 := CrossoverOS(p1.OS, p2.OS, jobsCount, rng)
			oMS1, oMS2 := CrossoverMS(p1.MS, p2.MS, rng)
			out = append(out, fjsp.Chromosome{OS: oOS1, MS: oMS1}, fjsp.Chromosome{OS: oOS2, MS: oMS2})
		} else {
			out = append(out, p1.Clone(), p2.Clone())
		}
	}
	if i < len(pop) {
		out = append(out, pop[i].Clone())
	}
	return out
}
