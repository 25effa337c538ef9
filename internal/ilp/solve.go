package ilp

import (
	"fmt"

	"gonum.org/v1/gonum/optimize/convex/lp"
)

// simplexTolerance is the feasibility/optimality tolerance passed to
// lp.Simplex; the relaxation's coefficients are all small integers, so this
// is generous without risking spurious infeasibility reports.
const simplexTolerance = 1e-8

// LowerBound solves the LP relaxation and returns its optimum, a valid
// lower bound on any integral (feasible) placement's cost. A non-nil error
// means the relaxation itself is infeasible or unbounded, which only
// happens when Problem/Params themselves admit no placement at all (e.g. no
// PM can hold a VM even alone).
func (m *Model) LowerBound() (float64, error) {
	z, _, err := lp.Simplex(m.C, m.A, m.B, simplexTolerance, nil)
	if err != nil {
		return 0, fmt.Errorf("ilp: relaxation solve: %w", err)
	}

	return z, nil
}
