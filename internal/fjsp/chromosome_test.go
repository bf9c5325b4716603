package fjsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"fjsslga/internal/fjsp"
)

func sampleInstance(t *testing.T) *fjsp.Instance {
	t.Helper()
	inst, err := fjsp.NewInstance(3, []fjsp.Job{
		{
			{{Machine: 0, ProcTime: 3}, {Machine: 1, ProcTime: 2}},
			{{Machine: 2, ProcTime: 5}},
		},
		{
			{{Machine: 1, ProcTime: 4}},
		},
		{
			{{Machine: 0, ProcTime: 1}, {Machine: 2, ProcTime: 1}},
			{{Machine: 1, ProcTime: 6}},
			{{Machine: 0, ProcTime: 2}},
		},
	})
	require.NoError(t, err)
	return inst
}

func TestGenerateOSIsValidPermutation(t *testing.T) {
	inst := sampleInstance(t)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		os := fjsp.GenerateOS(inst, rng)
		require.Len(t, os, inst.TotalOps())

		counts := make([]int, inst.JobsCount())
		for _, j := range os {
			counts[j]++
		}
		for j := 0; j < inst.JobsCount(); j++ {
			require.Equal(t, inst.JobLen(j), counts[j])
		}
	}
}

func TestGenerateMSInRange(t *testing.T) {
	inst := sampleInstance(t)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		ms := fjsp.GenerateMS(inst, rng)
		split := fjsp.SplitMS(inst, ms)
		for j := 0; j < inst.JobsCount(); j++ {
			for k := 0; k < inst.JobLen(j); k++ {
				v := split[j][k]
				require.GreaterOrEqual(t, v, 0)
				require.Less(t, v, len(inst.OptionsOf(j, k)))
			}
		}
	}
}

func TestInitializePopulationAllLegal(t *testing.T) {
	inst := sampleInstance(t)
	rng := rand.New(rand.NewSource(3))
	pop := fjsp.InitializePopulation(inst, 20, rng)
	require.Len(t, pop, 20)
	for _, c := range pop {
		require.NoError(t, fjsp.ValidateChromosome(inst, c))
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	inst := sampleInstance(t)
	rng := rand.New(rand.NewSource(4))
	c := fjsp.Chromosome{OS: fjsp.GenerateOS(inst, rng), MS: fjsp.GenerateMS(inst, rng)}
	clone := c.Clone()
	clone.OS[0] = -1
	clone.MS[0] = -1
	require.NotEqual(t, c.OS[0], clone.OS[0])
	require.NotEqual(t, c.MS[0], clone.MS[0])
}

func TestValidateChromosomeRejectsWrongLength(t *testing.T) {
	inst := sampleInstance(t)
	err := fjsp.ValidateChromosome(inst, fjsp.Chromosome{OS: []int{0}, MS: []int{0}})
	require.Error(t, err)
}

func TestValidateChromosomeRejectsWrongJobCount(t *testing.T) {
	inst := sampleInstance(t)
	total := inst.TotalOps()
	os := make([]int, total)
	ms := make([]int, total)
	for i := range os {
		os[i] = 0 // every position is job 0: violates per-job occurrence counts
	}
	err := fjsp.ValidateChromosome(inst, fjsp.Chromosome{OS: os, MS: ms})
	require.Error(t, err)
}

func TestValidateChromosomeRejectsOutOfRangeMS(t *testing.T) {
	inst := sampleInstance(t)
	rng := rand.New(rand.NewSource(5))
	os := fjsp.GenerateOS(inst, rng)
	ms := fjsp.GenerateMS(inst, rng)
	ms[0] = 99
	err := fjsp.ValidateChromosome(inst, fjsp.Chromosome{OS: os, MS: ms})
	require.Error(t, err)
}
