package slga

import (
	"time"

	"fjsslga/internal/fjsp"
)

// HistoryRecord is one generation's row of the run's history, exposed
// for the boundary adapters (CSV export, logging).
type HistoryRecord struct {
	Generation  int
	BestTime    int
	AverageTime float64
	Pc          float64
	Pm          float64
	Reward      float64
}

// Result is the outcome of a full evolution run.
type Result struct {
	InitialBest         fjsp.Chromosome
	InitialBestMakespan int

	Best         fjsp.Chromosome
	BestMakespan int
	Generations  int
	History      []HistoryRecord
	Duration     time.Duration
}
