package vmplace

// computeMinimalExtraCost computes the admissible lower bound on the
// additional cost still incurred between the current node and any
// completion (spec §4.6). It is pure arithmetic over the maintained
// additionalVMCounts/numEmptiablePMs counters; it has no failure modes.
func (e *engine) computeMinimalExtraCost() float64 {
	remainingMigrations := e.migrationBudget - e.migrations

	extra := e.numEmptiablePMs * e.params.WeightHosts
	migrationsSpent := 0

	for k := 1; k <= e.maxInitialVMsOnOnePM; k++ {
		if k*e.params.WeightMigrations >= e.params.WeightHosts {
			break
		}
		budget := (remainingMigrations - migrationsSpent) / k
		n := e.additionalVMCounts[k]
		if budget < n {
			n = budget
		}
		if n < 0 {
			n = 0
		}
		migrationsSpent += n * k
		extra -= n * (e.params.WeightHosts - k*e.params.WeightMigrations)
	}

	return float64(extra)
}
