package vmplace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreprocess_DomainExcludesOversizedPM(t *testing.T) {
	problem := Problem{
		Dimension: 1,
		VMs:       []VM{{ID: 0, Demand: []int{11}, Initial: NoPM}},
		PMs: []PM{
			{ID: 0, Capacity: []int{10}},
			{ID: 1, Capacity: []int{20}},
		},
	}
	alloc, err := NewAllocator(problem, DefaultParams(), nil)
	require.NoError(t, err)

	require.Equal(t, []int{1}, alloc.e.domain[0])
}

func TestSortVMs_Lexicographic(t *testing.T) {
	problem := Problem{
		Dimension: 2,
		VMs: []VM{
			{ID: 0, Demand: []int{3, 1}, Initial: NoPM},
			{ID: 1, Demand: []int{1, 9}, Initial: NoPM},
			{ID: 2, Demand: []int{1, 2}, Initial: NoPM},
		},
		PMs: []PM{{ID: 0, Capacity: []int{20, 20}}},
	}
	params := DefaultParams()
	params.VMSortMethod = SortLexicographic

	alloc, err := NewAllocator(problem, params, nil)
	require.NoError(t, err)

	require.Equal(t, []int{2, 1, 0}, []int{
		alloc.e.problem.VMs[0].ID,
		alloc.e.problem.VMs[1].ID,
		alloc.e.problem.VMs[2].ID,
	})
}

func TestInitializeIntelligentBound_CountsByInitialPM(t *testing.T) {
	problem := Problem{
		Dimension: 1,
		VMs: []VM{
			{ID: 0, Demand: []int{1}, Initial: 0},
			{ID: 1, Demand: []int{1}, Initial: 0},
			{ID: 2, Demand: []int{1}, Initial: NoPM},
		},
		PMs: []PM{
			{ID: 0, Capacity: []int{10}},
			{ID: 1, Capacity: []int{10}},
		},
	}
	params := DefaultParams()
	params.IntelligentBound = true

	alloc, err := NewAllocator(problem, params, nil)
	require.NoError(t, err)
	e := alloc.e

	require.Equal(t, []int{2, 0}, e.initialVMsRemaining)
	require.Equal(t, 1, e.numEmptiablePMs)
	require.Equal(t, 2, e.maxInitialVMsOnOnePM)
}
