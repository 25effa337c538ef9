package vmplace

// journalEntry is one reversible allocation step: vm moved onto pm, and
// lostDomain lists the other still-unallocated VMs that lost pm from their
// domain as a direct result (spec §4.2).
type journalEntry struct {
	vmIdx      int
	pm         int
	lostDomain []int
}

// pushJournal records one reversible allocation step: which VM moved onto
// which PM, and which other still-unallocated VMs lost that PM from their
// domain as a result (spec §4.2). The journal is slice-backed (push =
// append, pop = truncate) rather than a container/stack wrapper, the same
// way the engine manages its path stack.
func (e *engine) pushJournal(vmIdx, pm int, lostDomain []int) {
	e.journal = append(e.journal, journalEntry{vmIdx: vmIdx, pm: pm, lostDomain: lostDomain})
}

// popJournal removes and returns the most recent journal entry. It panics
// (an invariant breach, spec §7) if it does not match the VM/PM being
// deallocated — the journal holds one entry per allocated VM, in allocation
// order, so deallocations must come in exact reverse order.
func (e *engine) popJournal(vmIdx, pm int) journalEntry {
	n := len(e.journal) - 1
	entry := e.journal[n]
	e.journal = e.journal[:n]
	if entry.vmIdx != vmIdx || entry.pm != pm {
		panic("vmplace: invariant breach: journal entry does not match deallocated VM/PM")
	}

	return entry
}
