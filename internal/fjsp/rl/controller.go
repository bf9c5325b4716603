package rl

import "math/rand"

// Controller ties the Q-table, ranges, and SARSA/Q-learning phase switch
// together into the per-generation action-selection and update protocol.
type Controller struct {
	cfg            Config
	q              *QTable
	phaseSwitchGen int // generation after which SARSA switches to Q-learning
}

// NewController builds a controller with an all-zero Q-table sized
// popSize x 2. phaseSwitchGen is the SARSA/Q-learning cutover generation
// (by default 10x the population size).
func NewController(cfg Config, popSize, phaseSwitchGen int) *Controller {
	return &Controller{cfg: cfg, q: NewQTable(popSize), phaseSwitchGen: phaseSwitchGen}
}

// QTable exposes the underlying table (for history/inspection).
func (c *Controller) QTable() *QTable { return c.q }

// state returns generation mod popSize.
func (c *Controller) state(gen int) int {
	return ((gen % c.q.Size()) + c.q.Size()) % c.q.Size()
}

// ChooseAction selects Pc/Pm for generation gen: a baseline uniform draw
// of both, then an ε-greedy action that resamples exactly one of them
// from its range. It returns the chosen Pc, Pm,
// the state, and the action, so the caller can later report back the
// observed improvement via Update.
func (c *Controller) ChooseAction(gen int, rng *rand.Rand) (pc, pm float64, state, action int) {
	state = c.state(gen)
	pc = c.cfg.PcMin + rng.Float64()*(c.cfg.PcMax-c.cfg.PcMin)
	pm = c.cfg.PmMin + rng.Float64()*(c.cfg.PmMax-c.cfg.PmMin)

	action = c.q.SelectAction(state, c.cfg.Epsilon, rng)
	if action == ActionResamplePc {
		pc = c.cfg.PcMin + rng.Float64()*(c.cfg.PcMax-c.cfg.PcMin)
	} else {
		pm = c.cfg.PmMin + rng.Float64()*(c.cfg.PmMax-c.cfg.PmMin)
	}
	return pc, pm, state, action
}

// Update computes the reward from the observed makespan improvement and
// applies the SARSA update while gen is within the SARSA phase, or the
// Q-learning update afterwards. The reward is swallowed to 0 when
// bestBefore is 0 (trivial instance), rather than producing NaN.
func (c *Controller) Update(gen, state, action, bestBefore, bestAfter int, rng *rand.Rand) float64 {
	reward := 0.0
	if bestBefore != 0 {
		reward = float64(bestBefore-bestAfter) / float64(bestBefore)
	}

	nextState := c.state(gen + 1)
	nextAction := c.q.SelectAction(nextState, c.cfg.Epsilon, rng)

	if gen <= c.phaseSwitchGen {
		c.q.UpdateSARSA(state, action, reward, nextState, nextAction, c.cfg.Alpha, c.cfg.Gamma)
	} else {
		c.q.UpdateQLearning(state, action, reward, nextState, c.cfg.Alpha, c.cfg.Gamma)
	}
	return reward
}
