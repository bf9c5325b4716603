// Package slga implements the generational loop of the self-learning
// genetic algorithm: selection, reproduction, and the RL-driven
// controller that adapts Pc/Pm online.
package slga

import (
	"fmt"

	"fjsslga/internal/fjsp/rl"
)

// Config holds the tunables of the evolution driver: a small immutable
// configuration record passed explicitly, rather than read from ambient
// globals.
type Config struct {
	PopSize              int
	MaxGen               int
	Pr                   float64
	MaxNoImprovementGens int
	Seed                 int64
	PhaseSwitchFactor    int // phaseSwitchGen = PhaseSwitchFactor * PopSize
	RL                   rl.Config
}

// DefaultConfig returns popSize=300, maxGen=200, pr=0.2,
// maxNoImprovementGens=50, phaseSwitchFactor=10.
func DefaultConfig() Config {
	return Config{
		PopSize:              300,
		MaxGen:               200,
		Pr:                   0.2,
		MaxNoImprovementGens: 50,
		PhaseSwitchFactor:    10,
		RL:                   rl.DefaultConfig(),
	}
}

func (c Config) Validate() error {
	if c.PopSize <= 1 {
		return fmt.Errorf("population size must be > 1 (got %d)", c.PopSize)
	}
	if c.MaxGen <= 0 {
		return fmt.Errorf("max generations must be > 0 (got %d)", c.MaxGen)
	}
	if c.Pr <= 0 || c.Pr > 1 {
		return fmt.Errorf("selection rate pr must be in (0,1] (got %f)", c.Pr)
	}
	if int(c.Pr*float64(c.PopSize)) < 1 {
		return fmt.Errorf("pr*popSize must be >= 1 so elitism guarantees monotone makespan (got %f*%d)", c.Pr, c.PopSize)
	}
	if c.MaxNoImprovementGens <= 0 {
		return fmt.Errorf("max no-improvement generations must be > 0 (got %d)", c.MaxNoImprovementGens)
	}
	if c.PhaseSwitchFactor <= 0 {
		return fmt.Errorf("phase switch factor must be > 0 (got %d)", c.PhaseSwitchFactor)
	}
	return c.RL.Validate()
}
