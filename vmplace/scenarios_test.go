package vmplace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vmplace-bb/vmplace"
)

// These cases are the six literal end-to-end scenarios.

func TestScenario1_SingleMigrationForced(t *testing.T) {
	problem := vmplace.Problem{
		Dimension: 1,
		VMs: []vmplace.VM{
			{ID: 0, Demand: []int{6}, Initial: 0},
			{ID: 1, Demand: []int{6}, Initial: 0},
		},
		PMs: []vmplace.PM{
			{ID: 0, Capacity: []int{10}},
			{ID: 1, Capacity: []int{10}},
		},
	}
	params := vmplace.DefaultParams()
	params.IntelligentBound = false
	params.SymmetryBreaking = false
	params.BoundThreshold = 1
	params.MaxMigrationsRatio = 1

	alloc, err := vmplace.NewAllocator(problem, params, nil)
	require.NoError(t, err)
	require.NoError(t, alloc.Solve(context.Background()))

	require.Equal(t, 21.0, alloc.BestCost())
	require.Equal(t, 2, alloc.BestActiveHosts())
	require.Equal(t, 1, alloc.BestMigrations())
}

func TestScenario2_PackingInfeasibleKeepsSplit(t *testing.T) {
	problem := vmplace.Problem{
		Dimension: 2,
		VMs: []vmplace.VM{
			{ID: 0, Demand: []int{2, 2}, Initial: 0},
			{ID: 1, Demand: []int{2, 2}, Initial: 0},
			{ID: 2, Demand: []int{2, 2}, Initial: 1},
		},
		PMs: []vmplace.PM{
			{ID: 0, Capacity: []int{5, 5}},
			{ID: 1, Capacity: []int{5, 5}},
		},
	}
	params := vmplace.DefaultParams()

	alloc, err := vmplace.NewAllocator(problem, params, nil)
	require.NoError(t, err)
	require.NoError(t, alloc.Solve(context.Background()))

	require.Equal(t, 20.0, alloc.BestCost())
	require.Equal(t, 2, alloc.BestActiveHosts())
	require.Equal(t, 0, alloc.BestMigrations())
}

func TestScenario3_OneMigrationBeatsEmptyingBoth(t *testing.T) {
	problem := vmplace.Problem{
		Dimension: 1,
		VMs: []vmplace.VM{
			{ID: 0, Demand: []int{4}, Initial: 0},
			{ID: 1, Demand: []int{4}, Initial: 1},
			{ID: 2, Demand: []int{4}, Initial: 2},
		},
		PMs: []vmplace.PM{
			{ID: 0, Capacity: []int{10}},
			{ID: 1, Capacity: []int{10}},
			{ID: 2, Capacity: []int{10}},
		},
	}
	params := vmplace.DefaultParams()
	params.MaxMigrationsRatio = 1 // budget = floor(3/1) = 3, non-binding here

	alloc, err := vmplace.NewAllocator(problem, params, nil)
	require.NoError(t, err)
	require.NoError(t, alloc.Solve(context.Background()))

	require.Equal(t, 21.0, alloc.BestCost())
	require.Equal(t, 2, alloc.BestActiveHosts())
	require.Equal(t, 1, alloc.BestMigrations())
}

func TestScenario4_SymmetryBreakingSkipsIdenticalEmptyPM(t *testing.T) {
	problem := vmplace.Problem{
		Dimension: 1,
		VMs: []vmplace.VM{
			{ID: 0, Demand: []int{3}, Initial: vmplace.NoPM},
		},
		PMs: []vmplace.PM{
			{ID: 0, Capacity: []int{10}},
			{ID: 1, Capacity: []int{10}},
		},
	}
	params := vmplace.DefaultParams()
	params.SymmetryBreaking = true

	alloc, err := vmplace.NewAllocator(problem, params, nil)
	require.NoError(t, err)
	require.NoError(t, alloc.Solve(context.Background()))

	placement, ok := alloc.BestAllocation()
	require.True(t, ok)
	require.Contains(t, []int{0, 1}, placement[0])
	require.Equal(t, 1, alloc.BestActiveHosts())
}

func TestScenario5_RelaxedBoundThresholdStaysWithinFactorTwo(t *testing.T) {
	problem := vmplace.Problem{
		Dimension: 1,
		VMs: []vmplace.VM{
			{ID: 0, Demand: []int{6}, Initial: 0},
			{ID: 1, Demand: []int{6}, Initial: 0},
		},
		PMs: []vmplace.PM{
			{ID: 0, Capacity: []int{10}},
			{ID: 1, Capacity: []int{10}},
		},
	}
	params := vmplace.DefaultParams()
	params.BoundThreshold = 0.5
	params.IntelligentBound = false
	params.SymmetryBreaking = false

	alloc, err := vmplace.NewAllocator(problem, params, nil)
	require.NoError(t, err)
	require.NoError(t, alloc.Solve(context.Background()))

	const trueOptimum = 21.0
	require.LessOrEqual(t, alloc.BestCost(), 2*trueOptimum)
}

func TestScenario6_ZeroTimeoutYieldsNoAllocation(t *testing.T) {
	problem := vmplace.Problem{
		Dimension: 1,
		VMs:       []vmplace.VM{{ID: 0, Demand: []int{6}, Initial: 0}},
		PMs:       []vmplace.PM{{ID: 0, Capacity: []int{10}}},
	}
	params := vmplace.DefaultParams()
	params.Timeout = 0

	alloc, err := vmplace.NewAllocator(problem, params, nil)
	require.NoError(t, err)
	require.NoError(t, alloc.Solve(context.Background()))

	_, ok := alloc.BestAllocation()
	require.False(t, ok)
	require.Equal(t, true, alloc.BestCost() > 1e300)
}
