package slga

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"fjsslga/internal/fjsp"
	"fjsslga/internal/fjsp/ga"
	"fjsslga/internal/fjsp/rl"
)

// Driver runs the generational loop: elitist+tournament selection,
// crossover/mutation at the controller's chosen Pc/Pm, and the RL update
// on the observed makespan improvement.
type Driver struct {
	Cfg Config
	Rng *rand.Rand
}

// New validates cfg and returns a Driver using rng for every random draw:
// encoding, operators, and the RL controller all thread the same source
// rather than reaching for a package-level global.
func New(cfg Config, rng *rand.Rand) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("rng must not be nil")
	}
	return &Driver{Cfg: cfg, Rng: rng}, nil
}

// evaluate decodes every chromosome in pop, returning Scored individuals
// and summary stats.
func evaluate(dec *fjsp.Decoder, pop []fjsp.Chromosome) ([]ga.Scored, int, float64) {
	scored := make([]ga.Scored, len(pop))
	sum := 0
	best := 0
	for i, c := range pop {
		ms := dec.MustMakespan(c.OS, c.MS)
		scored[i] = ga.Scored{Chromosome: c, Makespan: ms}
		sum += ms
		if i == 0 || ms < best {
			best = ms
		}
	}
	avg := float64(sum) / float64(len(pop))
	return scored, best, avg
}

func bestOf(scored []ga.Scored) (fjsp.Chromosome, int) {
	best := scored[0]
	for _, s := range scored[1:] {
		if s.Makespan < best.Makespan {
			best = s
		}
	}
	return best.Chromosome, best.Makespan
}

// Run executes the generational loop against inst until gen > MaxGen or
// the no-improvement streak reaches MaxNoImprovementGens. Cancellation
// is checked once per generation boundary.
func (d *Driver) Run(ctx context.Context, inst *fjsp.Instance) (Result, error) {
	start := time.Now()

	if err := d.Cfg.Validate(); err != nil {
		return Result{}, err
	}

	dec, err := fjsp.NewDecoder(inst)
	if err != nil {
		return Result{}, err
	}

	pop := fjsp.InitializePopulation(inst, d.Cfg.PopSize, d.Rng)
	scored, curBest, curAvg := evaluate(dec, pop)
	bestChrom, bestMakespan := bestOf(scored)
	initialBest, initialBestMakespan := bestChrom, bestMakespan

	controller := rl.NewController(d.Cfg.RL, d.Cfg.PopSize, d.Cfg.PhaseSwitchFactor*d.Cfg.PopSize)

	history := make([]HistoryRecord, 0, d.Cfg.MaxGen)

	gen := 1
	previousBest := math.MaxInt
	noImprovement := 0

	for gen <= d.Cfg.MaxGen && noImprovement < d.Cfg.MaxNoImprovementGens {
		if err := ctx.Err(); err != nil {
			return Result{
				InitialBest: initialBest, InitialBestMakespan: initialBestMakespan,
				Best: bestChrom, BestMakespan: bestMakespan,
				Generations: gen - 1, History: history, Duration: time.Since(start),
			}, err
		}

		bestTime, avgTime := curBest, curAvg

		if bestTime == previousBest {
			noImprovement++
		} else {
			noImprovement = 0
		}
		previousBest = bestTime

		pc, pm, state, action := controller.ChooseAction(gen, d.Rng)

		selected := ga.Select(scored, d.Cfg.Pr, d.Rng)
		crossed := ga.CrossoverPopulation(selected, inst.JobsCount(), pc, d.Rng)
		mutated := ga.MutatePopulation(inst, crossed, pm, d.Rng)

		scored, curBest, curAvg = evaluate(dec, mutated)
		newBestChrom, newBestMakespan := bestOf(scored)
		if newBestMakespan < bestMakespan {
			bestMakespan = newBestMakespan
			bestChrom = newBestChrom
		}

		reward := controller.Update(gen, state, action, bestTime, newBestMakespan, d.Rng)

		history = append(history, HistoryRecord{
			Generation: gen, BestTime: bestTime, AverageTime: avgTime,
			Pc: pc, Pm: pm, Reward: reward,
		})
		logGeneration(gen, bestTime, avgTime, pc, pm, reward)

		gen++
	}

	return Result{
		InitialBest: initialBest, InitialBestMakespan: initialBestMakespan,
		Best: bestChrom, BestMakespan: bestMakespan,
		Generations: gen - 1, History: history, Duration: time.Since(start),
	}, nil
}
