// Package rl implements the ε-greedy action selection and SARSA/Q-learning
// updates that drive the self-learning GA's per-generation Pc/Pm choice.
package rl

import (
	"math"
	"math/rand"
)

// Actions.
const (
	ActionResamplePc = 0
	ActionResamplePm = 1
	numActions       = 2
)

// QTable is a popSize x 2 matrix of action values. Rows are indexed by
// state = generation mod popSize; columns are the two actions.
type QTable struct {
	rows [][numActions]float64
}

// NewQTable returns an all-zero popSize x 2 table.
func NewQTable(popSize int) *QTable {
	return &QTable{rows: make([][numActions]float64, popSize)}
}

// Size returns the number of states (rows) in the table.
func (q *QTable) Size() int { return len(q.rows) }

// Get returns Q[state][action].
func (q *QTable) Get(state, action int) float64 { return q.rows[state][action] }

// Finite reports whether every entry is finite.
func (q *QTable) Finite() bool {
	for _, row := range q.rows {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Argmax returns the action with the highest value at state, ties
// broken to action 0.
func (q *QTable) Argmax(state int) int {
	best := 0
	bestVal := q.rows[state][0]
	for a := 1; a < numActions; a++ {
		if q.rows[state][a] > bestVal {
			bestVal = q.rows[state][a]
			best = a
		}
	}
	return best
}

// SelectAction chooses an action via ε-greedy: with probability epsilon,
// uniformly at random; otherwise the greedy action.
func (q *QTable) SelectAction(state int, epsilon float64, rng *rand.Rand) int {
	if rng.Float64() < epsilon {
		return rng.Intn(numActions)
	}
	return q.Argmax(state)
}

// UpdateSARSA applies the on-policy TD update, used during the SARSA
// phase of training.
func (q *QTable) UpdateSARSA(state, action int, reward float64, nextState, nextAction int, alpha, gamma float64) {
	cur := q.rows[state][action]
	q.rows[state][action] = (1-alpha)*cur + alpha*(reward+gamma*q.rows[nextState][nextAction])
}

// UpdateQLearning applies the off-policy TD update, used once training
// switches to the Q-learning phase.
func (q *QTable) UpdateQLearning(state, action int, reward float64, nextState int, alpha, gamma float64) {
	maxNext := q.rows[nextState][0]
	for a := 1; a < numActions; a++ {
		if q.rows[nextState][a] > maxNext {
			maxNext = q.rows[nextState][a]
		}
	}
	cur := q.rows[state][action]
	q.rows[state][action] = (1-alpha)*cur + alpha*(reward+gamma*maxNext)
}
