// Package vmplace implements an exact Branch-and-Bound (B&B) search that
// remaps virtual machines (VMs) onto physical machines (PMs) so as to
// minimize a weighted sum of active-host count and migration count,
// subject to multi-dimensional capacity constraints and a migration
// budget.
//
// # Overview
//
// Given an initial VM→PM assignment, Allocator searches for an assignment
// that dominates it under:
//
//	cost = WeightHosts·activePMs + WeightMigrations·migrations
//
// subject to per-PM, per-dimension capacity and a cap on the number of
// VMs allowed to move away from their initial PM. The search is a
// depth-first traversal of the VM→PM assignment tree with reversible
// incremental bookkeeping (allocate/deallocate), configurable variable
// and value ordering, optional symmetry-breaking over interchangeable
// empty PMs, and an optional admissible lower bound used to prune.
//
// # Usage
//
//	problem := vmplace.Problem{ /* ... */ }
//	params := vmplace.DefaultParams()
//	alloc, err := vmplace.NewAllocator(problem, params, nil)
//	if err != nil {
//		// parameter or input-shape error
//	}
//	if err := alloc.Solve(context.Background()); err != nil {
//		// invariant breach (programmer error); never a normal outcome
//	}
//	cost := alloc.BestCost() // math.Inf(1) if no feasible assignment was found
//
// # Thread safety
//
// An Allocator is NOT safe for concurrent use: the search loop mutates a
// single reversible state (free resources, per-VM domains, the change
// journal) on every step of a recursion-free hot loop, and no legitimate
// caller observes or mutates that state from outside one Solve call.
// Running several configurations concurrently means constructing one
// Allocator per goroutine, not sharing one.
package vmplace
