package vmplace

// isEmpty reports whether pm currently has no resources reserved, by
// comparing free resources to capacity component-wise (spec §4.4's
// definition of "identical" PMs, and the original implementation's
// PM::isOn()). allocate/deallocate snapshot this test once, before/after
// the resource change respectively (spec §4.3), to decide whether activePMs
// changes — so a zero-demand VM allocated onto an empty PM still turns it
// "on" for cost purposes (the pre-reservation snapshot was empty), even
// though the PM's free resources are unchanged by the allocation; this
// mirrors the original implementation's own PM::isOn()/m_numPMsOn
// bookkeeping, quirk included.
func (e *engine) isEmpty(pm int) bool {
	capacity := e.problem.PMs[pm].Capacity
	fr := e.free[pm]
	for d := 0; d < e.dim; d++ {
		if fr[d] != capacity[d] {
			return false
		}
	}

	return true
}

// cost returns the current cost, W_HOSTS·activePMs + W_MIG·migrations
// (spec §4.3), for the allocation committed so far along the search path.
func (e *engine) cost() float64 {
	return float64(e.params.WeightHosts)*float64(e.activePMs) + float64(e.params.WeightMigrations)*float64(e.migrations)
}
