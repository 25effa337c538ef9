package vmplace

import "sort"

// nextVariable selects the next unallocated VM to branch on (spec §4.4).
// FailFirst picks the unallocated VM with the smallest current domain,
// ties broken by VM index; otherwise the smallest-index unallocated VM
// ("natural" ordering) is returned.
func (e *engine) nextVariable() int {
	if e.params.FailFirst {
		best := -1
		bestSize := -1
		for i := 0; i < e.numVMs; i++ {
			if e.alloc[i] != NoPM {
				continue
			}
			if best == -1 || len(e.domain[i]) < bestSize {
				best = i
				bestSize = len(e.domain[i])
			}
		}

		return best
	}

	for i := 0; i < e.numVMs; i++ {
		if e.alloc[i] == NoPM {
			return i
		}
	}

	return -1
}

// resetCandidates (re-)orders vmIdx's domain per PMSortMethod, optionally
// moves its initial PM to the front, and resets its cursor to the start
// (spec §4.4). If symmetry-breaking is enabled and PMSortMethod is
// SortNone, the domain is still sorted lexicographically, because
// symmetry-breaking requires a total order to detect adjacent duplicates.
func (e *engine) resetCandidates(vmIdx int) {
	if vmIdx < 0 {
		return
	}
	dom := e.domain[vmIdx]
	method := e.params.PMSortMethod
	if method == SortNone && e.params.SymmetryBreaking {
		method = SortLexicographic
	}
	e.sortPMDomain(dom, method)

	if e.params.InitialPMFirst {
		initial := e.problem.VMs[vmIdx].Initial
		if idx := indexOf(dom, initial); idx > 0 {
			pm := dom[idx]
			copy(dom[1:idx+1], dom[0:idx])
			dom[0] = pm
		}
	}

	e.cursor[vmIdx] = 0
}

// sortPMDomain orders a VM's domain (PM ids) by the chosen key, computed
// from each candidate PM's current free resources — the original
// implementation sorts on live free resources, not static capacity, so
// that value ordering reacts to the state already committed along the
// path (spec text names "capacity" loosely; original_source/PM.cpp
// resolves the ambiguity in favor of resourcesFree).
func (e *engine) sortPMDomain(dom []int, method SortMethod) {
	switch method {
	case SortNone:
		return
	case SortLexicographic:
		sort.Slice(dom, func(i, j int) bool {
			return lexicographicLess(e.free[dom[i]], e.free[dom[j]])
		})
	case SortMaximum:
		sort.Slice(dom, func(i, j int) bool {
			return maxComponent(e.free[dom[i]]) < maxComponent(e.free[dom[j]])
		})
	case SortSum:
		sort.Slice(dom, func(i, j int) bool {
			return sumComponents(e.free[dom[i]]) < sumComponents(e.free[dom[j]])
		})
	}
}

// nextPMCandidate returns the PM at vmIdx's cursor and advances the cursor
// for the next call, applying the symmetry-breaking skip rule (spec §4.4):
// a PM identical to the one just returned (same capacity, both currently
// empty) is skipped, unless it is the VM's initial PM.
func (e *engine) nextPMCandidate(vmIdx int) int {
	dom := e.domain[vmIdx]
	pm := dom[e.cursor[vmIdx]]
	e.advanceCursor(vmIdx)

	return pm
}

func (e *engine) advanceCursor(vmIdx int) {
	dom := e.domain[vmIdx]
	if !e.params.SymmetryBreaking {
		e.cursor[vmIdx]++

		return
	}

	initial := e.problem.VMs[vmIdx].Initial
	for {
		prev := dom[e.cursor[vmIdx]]
		e.cursor[vmIdx]++
		if e.cursor[vmIdx] >= len(dom) {
			return
		}
		curr := dom[e.cursor[vmIdx]]
		if curr == initial || !e.pmsIdentical(prev, curr) {
			return
		}
	}
}

// pmsIdentical reports whether pm1 and pm2 must be treated as
// interchangeable for symmetry-breaking: same capacity vector and both
// currently empty. Two PMs already hosting VMs are never identical, even
// if their capacities match.
func (e *engine) pmsIdentical(pm1, pm2 int) bool {
	if !e.isEmpty(pm1) || !e.isEmpty(pm2) {
		return false
	}
	c1, c2 := e.problem.PMs[pm1].Capacity, e.problem.PMs[pm2].Capacity
	for d := 0; d < e.dim; d++ {
		if c1[d] != c2[d] {
			return false
		}
	}

	return true
}

func lexicographicLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

func maxComponent(v []int) int {
	m := 0
	for _, x := range v {
		if x > m {
			m = x
		}
	}

	return m
}

func sumComponents(v []int) int {
	s := 0
	for _, x := range v {
		s += x
	}

	return s
}
