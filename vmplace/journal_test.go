package vmplace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJournal_PushPopRoundTrip(t *testing.T) {
	e := &engine{}
	e.pushJournal(0, 2, []int{1, 3})
	e.pushJournal(1, 0, nil)

	entry := e.popJournal(1, 0)
	require.Equal(t, journalEntry{vmIdx: 1, pm: 0, lostDomain: nil}, entry)

	entry = e.popJournal(0, 2)
	require.Equal(t, []int{1, 3}, entry.lostDomain)
	require.Empty(t, e.journal)
}

func TestJournal_PopMismatchPanics(t *testing.T) {
	e := &engine{}
	e.pushJournal(0, 2, nil)

	require.PanicsWithValue(t,
		"vmplace: invariant breach: journal entry does not match deallocated VM/PM",
		func() { e.popJournal(5, 5) },
	)
}

// TestAllocate_LostDomainRecordedAndRestored verifies the journal records
// exactly which sibling VMs lost pm from their domain, and that deallocate
// restores it.
func TestAllocate_LostDomainRecordedAndRestored(t *testing.T) {
	problem := Problem{
		Dimension: 1,
		VMs: []VM{
			{ID: 0, Demand: []int{8}, Initial: NoPM},
			{ID: 1, Demand: []int{5}, Initial: NoPM}, // fits an empty PM0, not after VM0 takes 8 of its 10
		},
		PMs: []PM{{ID: 0, Capacity: []int{10}}},
	}
	alloc, err := NewAllocator(problem, DefaultParams(), nil)
	require.NoError(t, err)
	e := alloc.e

	require.Equal(t, []int{0}, e.domain[1]) // VM1 fits PM0 before any allocation

	e.allocate(0, 0) // leaves 2 free, VM1 (demand 5) no longer fits
	require.Empty(t, e.domain[1])
	require.Len(t, e.journal, 1)
	require.Equal(t, []int{1}, e.journal[0].lostDomain)

	e.deallocate(0)
	require.Equal(t, []int{0}, e.domain[1])
	require.Empty(t, e.journal)
}
