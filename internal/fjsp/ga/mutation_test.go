package ga_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"fjsslga/internal/fjsp"
	"fjsslga/internal/fjsp/ga"
)

func TestMutateSwapOSSinglePositionUnchanged(t *testing.T) {
	p := []int{7}
	rng := rand.New(rand.NewSource(1))
	o := ga.MutateSwapOS(p, rng)
	require.Equal(t, p, o)
	o[0] = -1
	require.Equal(t, 7, p[0])
}

func TestMutateSwapOSPreservesMultiset(t *testing.T) {
	p := []int{0, 0, 1, 2, 2, 2}
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 30; i++ {
		o := ga.MutateSwapOS(p, rng)
		require.ElementsMatch(t, p, o)
	}
}

func TestMutateNeighborhoodOSPreservesMultiset(t *testing.T) {
	p := []int{0, 0, 1, 2, 2, 2}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		o := ga.MutateNeighborhoodOS(p, rng)
		require.ElementsMatch(t, p, o)
	}
}

func TestMutateNeighborhoodOSFallsBackOnShortInput(t *testing.T) {
	p := []int{0, 1}
	rng := rand.New(rand.NewSource(4))
	o := ga.MutateNeighborhoodOS(p, rng)
	require.ElementsMatch(t, p, o)
}

func TestMutateHalfMSIsPure(t *testing.T) {
	inst := sampleMutationInstance(t)
	ms := fjsp.GenerateMS(inst, rand.New(rand.NewSource(5)))
	original := append([]int(nil), ms...)

	rng := rand.New(rand.NewSource(6))
	mutated := ga.MutateHalfMS(inst, ms, rng)

	require.Equal(t, original, ms, "input slice must not be mutated in place")
	require.Len(t, mutated, len(ms))
}

func TestMutateHalfMSOutputIsLegal(t *testing.T) {
	inst := sampleMutationInstance(t)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 30; i++ {
		ms := fjsp.GenerateMS(inst, rng)
		mutated := ga.MutateMS(inst, ms, rng)
		split := fjsp.SplitMS(inst, mutated)
		for j := 0; j < inst.JobsCount(); j++ {
			for k := 0; k < inst.JobLen(j); k++ {
				v := split[j][k]
				require.GreaterOrEqual(t, v, 0)
				require.Less(t, v, len(inst.OptionsOf(j, k)))
			}
		}
	}
}

func TestMutatePopulationSizePreserved(t *testing.T) {
	inst := sampleMutationInstance(t)
	rng := rand.New(rand.NewSource(8))
	pop := fjsp.InitializePopulation(inst, 10, rng)
	mutated := ga.MutatePopulation(inst, pop, 0.5, rng)
	require.Len(t, mutated, len(pop))
	for _, c := range mutated {
		require.NoError(t, fjsp.ValidateChromosome(inst, c))
	}
}

func sampleMutationInstance(t *testing.T) *fjsp.Instance {
	t.Helper()
	inst, err := fjsp.NewInstance(2, []fjsp.Job{
		{
			{{Machine: 0, ProcTime: 3}, {Machine: 1, ProcTime: 2}},
			{{Machine: 1, ProcTime: 5}},
		},
		{
			{{Machine: 0, ProcTime: 1}},
		},
	})
	require.NoError(t, err)
	return inst
}
