package vmplace

import "fmt"

// checkInvariants re-derives free resources, per-PM host counts, the
// active-PM count, the migration count and the journal depth (one entry per
// allocated VM) from the allocation map and compares them against the
// maintained incremental state, panicking on the first mismatch. VM domains
// and the intelligent-bound counters are not checked. It is called from
// tests, not from the hot search loop itself.
func (e *engine) checkInvariants() {
	free := make([][]int, e.numPMs)
	for pm, p := range e.problem.PMs {
		free[pm] = append([]int(nil), p.Capacity...)
	}
	hostCount := make([]int, e.numPMs)
	migrations := 0
	allocated := 0
	for vmIdx, pm := range e.alloc {
		if pm == NoPM {
			continue
		}
		allocated++
		demand := e.problem.VMs[vmIdx].Demand
		for d := 0; d < e.dim; d++ {
			free[pm][d] -= demand[d]
		}
		hostCount[pm]++
		if initial := e.problem.VMs[vmIdx].Initial; initial != NoPM && pm != initial {
			migrations++
		}
	}

	activePMs := 0
	for pm := 0; pm < e.numPMs; pm++ {
		for d := 0; d < e.dim; d++ {
			if free[pm][d] != e.free[pm][d] {
				panic(fmt.Sprintf("vmplace: invariant breach: free[%d][%d] = %d, want %d", pm, d, e.free[pm][d], free[pm][d]))
			}
		}
		if hostCount[pm] != e.hostCount[pm] {
			panic(fmt.Sprintf("vmplace: invariant breach: hostCount[%d] = %d, want %d", pm, e.hostCount[pm], hostCount[pm]))
		}
		capacity := e.problem.PMs[pm].Capacity
		empty := true
		for d := 0; d < e.dim; d++ {
			if free[pm][d] != capacity[d] {
				empty = false
				break
			}
		}
		if !empty {
			activePMs++
		}
	}
	if activePMs != e.activePMs {
		panic(fmt.Sprintf("vmplace: invariant breach: activePMs = %d, want %d", e.activePMs, activePMs))
	}
	if migrations != e.migrations {
		panic(fmt.Sprintf("vmplace: invariant breach: migrations = %d, want %d", e.migrations, migrations))
	}
	if len(e.journal) != allocated {
		panic(fmt.Sprintf("vmplace: invariant breach: journal depth %d != allocated VM count %d", len(e.journal), allocated))
	}

	for pm := 0; pm < e.numPMs; pm++ {
		for d := 0; d < e.dim; d++ {
			if e.free[pm][d] < 0 {
				panic(fmt.Sprintf("vmplace: invariant breach: free[%d][%d] = %d is negative", pm, d, e.free[pm][d]))
			}
		}
	}
}
