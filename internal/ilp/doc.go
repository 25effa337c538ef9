// Package ilp builds the linear-programming relaxation of the VM-placement
// assignment problem and solves it with gonum's simplex implementation, to
// produce an independent lower-bound figure that a report can set next to
// the branch-and-bound result (original_source/branch/VMAllocation/
// IlpAllocator.cpp generated the same variables and constraints as LP text
// for an external MILP solver; this package keeps the variable/constraint
// structure but solves the continuous relaxation in-process instead of
// shelling out).
//
// The relaxation drops the integrality constraints on Alloc/Active/Migr, so
// its optimum is a valid lower bound on the true optimum but is not itself a
// feasible placement.
package ilp
