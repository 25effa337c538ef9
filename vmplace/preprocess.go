package vmplace

import "sort"

// preprocess performs the one-time setup described in spec §4.1: optional
// VM reordering, per-VM initial domain construction, and — when
// IntelligentBound is enabled — the initial-VM bookkeeping the lower bound
// relies on. It must run after engine's slices are allocated but before
// any allocate/deallocate call.
func (e *engine) preprocess() error {
	e.sortVMs()

	for i := 0; i < e.numVMs; i++ {
		dom := make([]int, 0, e.numPMs)
		for pm := 0; pm < e.numPMs; pm++ {
			if e.vmFitsInPM(i, pm) {
				dom = append(dom, pm)
			}
		}
		e.domain[i] = dom
	}

	if e.params.IntelligentBound {
		e.initializeIntelligentBound()
	}

	return nil
}

// sortVMs reorders e.problem.VMs once, per Params.VMSortMethod, by the
// VM's demand vector. VM.ID and VM.Initial travel with each VM, so PM
// identity (spec §9) is unaffected.
func (e *engine) sortVMs() {
	vms := e.problem.VMs
	switch e.params.VMSortMethod {
	case SortNone:
		return
	case SortLexicographic:
		sort.SliceStable(vms, func(i, j int) bool {
			return lexicographicLess(vms[i].Demand, vms[j].Demand)
		})
	case SortMaximum:
		sort.SliceStable(vms, func(i, j int) bool {
			return maxComponent(vms[i].Demand) < maxComponent(vms[j].Demand)
		})
	case SortSum:
		sort.SliceStable(vms, func(i, j int) bool {
			return sumComponents(vms[i].Demand) < sumComponents(vms[j].Demand)
		})
	}
}

// initializeIntelligentBound sets each PM's count of resident "initial
// VMs not yet relocated", the emptiable-PM counter, the additionalVMCounts
// histogram, and the maximum initial-VM count on any single PM — the
// inputs computeMinimalExtraCost (spec §4.6) needs at the root and after
// every allocate/deallocate.
func (e *engine) initializeIntelligentBound() {
	e.initialVMsRemaining = make([]int, e.numPMs)
	for _, vm := range e.problem.VMs {
		if vm.Initial != NoPM {
			e.initialVMsRemaining[vm.Initial]++
		}
	}

	e.numEmptiablePMs = 0
	e.maxInitialVMsOnOnePM = 0
	for _, n := range e.initialVMsRemaining {
		if n > 0 {
			e.numEmptiablePMs++
		}
		if n > e.maxInitialVMsOnOnePM {
			e.maxInitialVMsOnOnePM = n
		}
	}

	e.additionalVMCounts = make([]int, e.numVMs+1)
	for _, n := range e.initialVMsRemaining {
		e.additionalVMCounts[n]++
	}
}
