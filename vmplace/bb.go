package vmplace

import (
	"context"
	"fmt"
	"math"
	"time"
)

// engine holds all mutable search state for one Solve call. It is the
// dense, index-addressed analogue of bbEngine in this module's
// Branch-and-Bound lineage: explicit slices keyed by VM position / PM id
// instead of pointer-chasing structs, because allocate/deallocate is the
// hot path, not traversal of a general graph.
type engine struct {
	problem Problem // preprocessed copy: VMs possibly reordered, domains populated
	params  Params

	dim    int
	numVMs int
	numPMs int

	free   [][]int // free[pm][d]: free resources, indexed by PM id
	domain [][]int // domain[vmIdx]: ordered PM ids the VM currently fits
	cursor []int   // cursor[vmIdx]: next index into domain[vmIdx] to try
	alloc  []int   // alloc[vmIdx]: PM id, or NoPM if unallocated

	pathStack []int // VM indices allocated along the current root-to-frontier path
	journal   []journalEntry

	activePMs  int
	migrations int
	hostCount  []int // hostCount[pm]: number of VMs currently allocated to pm

	// Intelligent-bound auxiliary state (spec §3, §4.6).
	initialVMsRemaining  []int // initialVMsRemaining[pm]: initial VMs on pm not yet migrated away
	additionalVMCounts   []int // additionalVMCounts[k]: # of currently-empty PMs with initialVMsRemaining==k
	numEmptiablePMs      int
	maxInitialVMsOnOnePM int

	migrationBudget int

	bestCost       float64
	bestAlloc      []int
	bestActivePMs  int
	bestMigrations int
	found          bool

	log         LogSink
	hasDeadline bool
	deadline    time.Time
}

// vmFitsInPM reports whether vm's demand fits within pm's current free resources.
func (e *engine) vmFitsInPM(vmIdx, pm int) bool {
	demand := e.problem.VMs[vmIdx].Demand
	fr := e.free[pm]
	for d := 0; d < e.dim; d++ {
		if fr[d] < demand[d] {
			return false
		}
	}

	return true
}

func (e *engine) logf(format string, args ...any) {
	if e.log != nil {
		e.log.Printf(format, args...)
	}
}

// allocate assigns vm to pm, updating free resources, cost counters, the
// intelligent-bound auxiliary state, and every other unallocated VM's
// domain, recording a journal entry so the step can be undone exactly.
func (e *engine) allocate(vmIdx, pm int) {
	if e.alloc[vmIdx] != NoPM {
		panic("vmplace: invariant breach: allocate called on an already-allocated VM")
	}

	wasEmpty := e.isEmpty(pm)
	if wasEmpty {
		e.activePMs++
		if e.params.IntelligentBound {
			e.additionalVMCounts[e.initialVMsRemaining[pm]]--
			if e.initialVMsRemaining[pm] > 0 {
				e.numEmptiablePMs--
			}
		}
	}

	e.alloc[vmIdx] = pm
	e.hostCount[pm]++
	demand := e.problem.VMs[vmIdx].Demand
	for d := 0; d < e.dim; d++ {
		e.free[pm][d] -= demand[d]
	}

	if e.params.IntelligentBound {
		// initialVMsRemaining[pm] is meaningful only while pm is empty: it
		// is excluded from additionalVMCounts the instant pm turns on (see
		// the wasEmpty branch above) and is never touched again until pm
		// empties out, so this update is conditioned on the *current*
		// (post-reservation) emptiness of the VM's initial PM — which
		// correctly skips the update when a VM returns to its own initial
		// PM, since that PM has just turned on in this very call.
		initialPM := e.problem.VMs[vmIdx].Initial
		if initialPM != NoPM && e.isEmpty(initialPM) {
			n := e.initialVMsRemaining[initialPM]
			e.additionalVMCounts[n]--
			e.additionalVMCounts[n-1]++
			if n == 1 {
				e.numEmptiablePMs--
			}
			e.initialVMsRemaining[initialPM]--
		}
	}

	initial := e.problem.VMs[vmIdx].Initial
	if initial != NoPM && pm != initial {
		e.migrations++
	}

	var lost []int
	for i := 0; i < e.numVMs; i++ {
		if e.alloc[i] != NoPM || i == vmIdx {
			continue
		}
		if idx := indexOf(e.domain[i], pm); idx >= 0 && !e.vmFitsInPM(i, pm) {
			e.domain[i] = removeAt(e.domain[i], idx)
			lost = append(lost, i)
		}
	}
	e.pushJournal(vmIdx, pm, lost)
}

// deallocate undoes the most recent allocation of vm, restoring free
// resources, cost counters, intelligent-bound state, and every VM domain
// entry the journal recorded as lost.
func (e *engine) deallocate(vmIdx int) {
	pm := e.alloc[vmIdx]
	if pm == NoPM {
		panic("vmplace: invariant breach: deallocate called on an unallocated VM")
	}

	if e.params.IntelligentBound {
		// Mirror image of the allocate() update: only touch
		// initialVMsRemaining while the VM's initial PM is currently
		// empty (evaluated before this deallocate's own resource change,
		// matching allocate()'s post-reservation evaluation when pm is
		// the VM's own initial PM about to become empty again below).
		initialPM := e.problem.VMs[vmIdx].Initial
		if initialPM != NoPM && e.isEmpty(initialPM) {
			n := e.initialVMsRemaining[initialPM]
			e.additionalVMCounts[n]--
			e.additionalVMCounts[n+1]++
			if n == 0 {
				e.numEmptiablePMs++
			}
			e.initialVMsRemaining[initialPM]++
		}
	}

	demand := e.problem.VMs[vmIdx].Demand
	for d := 0; d < e.dim; d++ {
		e.free[pm][d] += demand[d]
	}
	e.alloc[vmIdx] = NoPM
	e.hostCount[pm]--

	if e.isEmpty(pm) {
		e.activePMs--
		if e.params.IntelligentBound {
			e.additionalVMCounts[e.initialVMsRemaining[pm]]++
			if e.initialVMsRemaining[pm] > 0 {
				e.numEmptiablePMs++
			}
		}
	}

	initial := e.problem.VMs[vmIdx].Initial
	if initial != NoPM && pm != initial {
		e.migrations--
	}

	entry := e.popJournal(vmIdx, pm)
	for _, i := range entry.lostDomain {
		if indexOf(e.domain[i], pm) >= 0 {
			panic("vmplace: invariant breach: duplicate reinsertion into VM domain")
		}
		e.domain[i] = append(e.domain[i], pm)
	}
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

func removeAt(s []int, i int) []int {
	s[i] = s[len(s)-1]

	return s[:len(s)-1]
}

func (e *engine) allVMsAllocated() bool {
	return len(e.pathStack) == e.numVMs-1
}

// run executes the iterative Branch-and-Bound loop described in spec §4.5.
// It returns when the tree is exhausted, the deadline elapses, or ctx is
// cancelled.
func (e *engine) run(ctx context.Context) {
	vmIdx := e.nextVariable()
	e.resetCandidates(vmIdx)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if e.hasDeadline && time.Now().After(e.deadline) {
			return
		}

		if e.cursor[vmIdx] >= len(e.domain[vmIdx]) {
			if len(e.pathStack) == 0 {
				return // all possibilities exhausted
			}
			vmIdx = e.pathStack[len(e.pathStack)-1]
			e.pathStack = e.pathStack[:len(e.pathStack)-1]
			e.deallocate(vmIdx)

			continue
		}

		pm := e.nextPMCandidate(vmIdx)
		e.allocate(vmIdx, pm)

		if e.migrations > e.migrationBudget {
			e.deallocate(vmIdx)

			continue
		}

		cost := e.cost()
		projectedMin := cost
		if e.params.IntelligentBound {
			projectedMin += e.computeMinimalExtraCost()
		}

		if projectedMin >= e.bestCost*e.params.BoundThreshold {
			e.deallocate(vmIdx)

			continue
		}

		if e.allVMsAllocated() {
			e.recordIncumbent(cost)
			e.deallocate(vmIdx)

			continue
		}

		e.pathStack = append(e.pathStack, vmIdx)
		vmIdx = e.nextVariable()
		e.resetCandidates(vmIdx)
	}
}

func (e *engine) recordIncumbent(cost float64) {
	e.bestCost = cost
	e.bestActivePMs = e.activePMs
	e.bestMigrations = e.migrations
	e.found = true
	copy(e.bestAlloc, e.alloc)
	e.logf("incumbent: cost=%.4f activePMs=%d migrations=%d", cost, e.activePMs, e.migrations)
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Public API.
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Allocator is the constructed, ready-to-solve search engine for one
// (Problem, Params) pair.
type Allocator struct {
	e *engine
}

// NewAllocator validates problem and params, preprocesses the problem
// (spec §4.1), and returns a ready-to-solve Allocator. log may be nil to
// disable logging.
func NewAllocator(problem Problem, params Params, log LogSink) (*Allocator, error) {
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	e := &engine{
		problem: Problem{Dimension: problem.Dimension, VMs: append([]VM(nil), problem.VMs...), PMs: problem.PMs},
		params:  params,
		dim:     problem.Dimension,
		numVMs:  len(problem.VMs),
		numPMs:  len(problem.PMs),
		log:     log,
	}
	e.bestCost = math.Inf(1)
	e.bestActivePMs = -1
	e.bestMigrations = -1
	e.bestAlloc = make([]int, e.numVMs)
	e.alloc = make([]int, e.numVMs)
	e.hostCount = make([]int, e.numPMs)
	e.cursor = make([]int, e.numVMs)
	e.domain = make([][]int, e.numVMs)
	for i := range e.alloc {
		e.alloc[i] = NoPM
		e.bestAlloc[i] = NoPM
	}

	e.free = make([][]int, e.numPMs)
	for pm, p := range e.problem.PMs {
		e.free[pm] = append([]int(nil), p.Capacity...)
	}

	e.migrationBudget = e.numPMs / params.MaxMigrationsRatio

	if err := e.preprocess(); err != nil {
		return nil, err
	}

	return &Allocator{e: e}, nil
}

// Solve runs the search to completion, to the configured timeout, or until
// ctx is cancelled, whichever comes first. It never returns an error for
// timeout or infeasibility (spec §7); those surface through the Best*
// query methods. A non-nil error indicates a detected invariant breach
// recovered from a panic raised by the engine.
func (a *Allocator) Solve(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("vmplace: %v", r)
		}
	}()

	if a.e.numVMs == 0 {
		a.e.bestCost = 0
		a.e.bestActivePMs = 0
		a.e.bestMigrations = 0
		a.e.found = true

		return nil
	}

	if a.e.params.Timeout >= 0 {
		a.e.hasDeadline = true
		a.e.deadline = time.Now().Add(a.e.params.Timeout) // Timeout == 0: deadline is already past
	}

	a.e.run(ctx)

	return nil
}

// BestCost returns the best cost found, or +Inf (math.Inf(1)) if no
// feasible complete assignment was found within the time/context budget.
func (a *Allocator) BestCost() float64 {
	if !a.e.found {
		return math.Inf(1)
	}

	return a.e.bestCost
}

// BestAllocation returns the best complete VM→PM mapping found (keyed by
// VM.ID) and true, or (nil, false) if no feasible assignment was found.
func (a *Allocator) BestAllocation() (Allocation, bool) {
	if !a.e.found {
		return nil, false
	}
	out := make(Allocation, a.e.numVMs)
	for i, pm := range a.e.bestAlloc {
		if pm != NoPM {
			out[a.e.problem.VMs[i].ID] = pm
		}
	}

	return out, true
}

// BestActiveHosts returns the active-PM count of the best assignment found,
// or -1 if none was found.
func (a *Allocator) BestActiveHosts() int { return a.e.bestActivePMs }

// BestMigrations returns the migration count of the best assignment found,
// or -1 if none was found.
func (a *Allocator) BestMigrations() int { return a.e.bestMigrations }

// InitialLowerBound returns the value of the intelligent lower bound
// (spec §4.6) for the engine's current search state. Before Solve, and
// after a Solve that exhausted the search tree, that state is the root
// (no VM allocated); after a Solve stopped by the timeout or by ctx, the
// state is the partial path where the search stopped, and the value is
// the bound at that node, not at the root. If IntelligentBound is
// disabled, it returns 0 (no bound beyond feasibility).
func (a *Allocator) InitialLowerBound() float64 {
	if !a.e.params.IntelligentBound {
		return 0
	}

	return a.e.computeMinimalExtraCost()
}
