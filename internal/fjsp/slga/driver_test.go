package slga_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"fjsslga/internal/fjsp"
	"fjsslga/internal/fjsp/slga"
)

func trivialInstance(t *testing.T) *fjsp.Instance {
	t.Helper()
	inst, err := fjsp.NewInstance(1, []fjsp.Job{
		{
			{{Machine: 0, ProcTime: 5}},
		},
	})
	require.NoError(t, err)
	return inst
}

func TestDriverTrivialInstanceMonotoneBest(t *testing.T) {
	inst := trivialInstance(t)
	cfg := slga.DefaultConfig()
	cfg.PopSize = 10
	cfg.MaxGen = 20
	cfg.MaxNoImprovementGens = 20

	driver, err := slga.New(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	result, err := driver.Run(context.Background(), inst)
	require.NoError(t, err)

	require.Equal(t, 5, result.BestMakespan) // only legal decode value
	require.Equal(t, 5, result.InitialBestMakespan)

	best := result.History[0].BestTime
	for _, rec := range result.History[1:] {
		require.LessOrEqual(t, rec.BestTime, best)
		best = rec.BestTime
	}
}

// Scenario 6: when the optimum is already found at generation 1 and never
// improves, the driver must stop once the no-improvement streak reaches
// MaxNoImprovementGens rather than running to MaxGen.
func TestDriverStopsEarlyOnNoImprovement(t *testing.T) {
	inst := trivialInstance(t)
	cfg := slga.DefaultConfig()
	cfg.PopSize = 5
	cfg.MaxGen = 200
	cfg.MaxNoImprovementGens = 50

	driver, err := slga.New(cfg, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	result, err := driver.Run(context.Background(), inst)
	require.NoError(t, err)

	require.Equal(t, 51, result.Generations)
	require.Less(t, result.Generations, cfg.MaxGen)
}

func TestDriverRunRespectsContextCancellation(t *testing.T) {
	inst := trivialInstance(t)
	cfg := slga.DefaultConfig()
	cfg.PopSize = 5
	cfg.MaxGen = 200
	cfg.MaxNoImprovementGens = 200

	driver, err := slga.New(cfg, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := driver.Run(ctx, inst)
	require.Error(t, err)
	require.Equal(t, 0, result.Generations)
}

func TestNewRejectsNilRng(t *testing.T) {
	_, err := slga.New(slga.DefaultConfig(), nil)
	require.Error(t, err)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := slga.DefaultConfig()
	cfg.MaxGen = 0
	_, err := slga.New(cfg, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}
