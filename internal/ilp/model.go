package ilp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vmplace-bb/vmplace"
)

// Model is the standard-form (equality-constrained, non-negative variables)
// LP relaxation of one Problem/Params pair: minimize c^T x subject to
// A x = b, x >= 0. Columns are, in order: Alloc_j_i (numVMs*numPMs),
// Active_i (numPMs), Migr_j (one per VM with an initial PM), then the slack
// variables the <= constraints below were converted with.
type Model struct {
	C []float64
	A *mat.Dense
	B []float64

	numVMs, numPMs, dim int
	migVMs              []int // VM indices that have an initial PM, in column order
}

// NewModel builds the relaxation described in this package's doc comment
// from problem and params. It runs vmplace.Problem.Validate first and
// returns its error if problem is malformed.
func NewModel(problem vmplace.Problem, params vmplace.Params) (*Model, error) {
	if err := problem.Validate(); err != nil {
		return nil, err
	}

	numVMs, numPMs, dim := len(problem.VMs), len(problem.PMs), problem.Dimension

	var migVMs []int
	for j, vm := range problem.VMs {
		if vm.Initial != vmplace.NoPM {
			migVMs = append(migVMs, j)
		}
	}
	migCol := make(map[int]int, len(migVMs)) // VM index -> column offset within the Migr block
	for k, j := range migVMs {
		migCol[j] = k
	}

	nAlloc := numVMs * numPMs
	allocCol := func(j, i int) int { return j*numPMs + i }
	activeCol := func(i int) int { return nAlloc + i }
	migrColBase := nAlloc + numPMs
	migrCol := func(j int) int { return migrColBase + migCol[j] }

	base2 := migrColBase + len(migVMs) // Alloc_j_i - Active_i + s = 0 slacks
	base3 := base2 + nAlloc            // capacity slacks
	base4 := base3 + dim*numPMs        // migration-budget slack (single column)
	base5 := base4 + 1                 // Alloc upper-bound slacks
	base6 := base5 + nAlloc            // Active upper-bound slacks
	numCols := base6 + numPMs

	numRows := numVMs /* R1 */ + nAlloc /* R2 */ + dim*numPMs /* R3 */ +
		len(migVMs) /* R4 */ + 1 /* R5 */ + nAlloc /* R6 */ + numPMs /* R7 */

	a := mat.NewDense(numRows, numCols, nil)
	b := make([]float64, numRows)
	row := 0

	// R1: each VM allocated to exactly one PM.
	for j := 0; j < numVMs; j++ {
		for i := 0; i < numPMs; i++ {
			a.Set(row, allocCol(j, i), 1)
		}
		b[row] = 1
		row++
	}

	// R2: a hosted VM implies its PM is active.
	for j := 0; j < numVMs; j++ {
		for i := 0; i < numPMs; i++ {
			a.Set(row, allocCol(j, i), 1)
			a.Set(row, activeCol(i), -1)
			a.Set(row, base2+allocCol(j, i), 1)
			row++
		}
	}

	// R3: per-dimension capacity.
	for d := 0; d < dim; d++ {
		for i := 0; i < numPMs; i++ {
			for j := 0; j < numVMs; j++ {
				a.Set(row, allocCol(j, i), float64(problem.VMs[j].Demand[d]))
			}
			a.Set(row, base3+d*numPMs+i, 1)
			b[row] = float64(problem.PMs[i].Capacity[d])
			row++
		}
	}

	// R4: a VM counts as migrated unless it stays on its initial PM.
	for _, j := range migVMs {
		a.Set(row, allocCol(j, problem.VMs[j].Initial), 1)
		a.Set(row, migrCol(j), 1)
		b[row] = 1
		row++
	}

	// R5: migration budget, floor(numPMs / MaxMigrationsRatio) (spec §4.1).
	for _, j := range migVMs {
		a.Set(row, migrCol(j), 1)
	}
	a.Set(row, base4, 1)
	b[row] = float64(numPMs / params.MaxMigrationsRatio)
	row++

	// R6/R7: Alloc and Active are relaxed to [0,1], not just [0,inf).
	for j := 0; j < numVMs; j++ {
		for i := 0; i < numPMs; i++ {
			a.Set(row, allocCol(j, i), 1)
			a.Set(row, base5+allocCol(j, i), 1)
			b[row] = 1
			row++
		}
	}
	for i := 0; i < numPMs; i++ {
		a.Set(row, activeCol(i), 1)
		a.Set(row, base6+i, 1)
		b[row] = 1
		row++
	}

	if row != numRows {
		return nil, fmt.Errorf("ilp: internal row-count mismatch: built %d, expected %d", row, numRows)
	}

	c := make([]float64, numCols)
	for i := 0; i < numPMs; i++ {
		c[activeCol(i)] = float64(params.WeightHosts)
	}
	for _, j := range migVMs {
		c[migrCol(j)] = float64(params.WeightMigrations)
	}

	return &Model{C: c, A: a, B: b, numVMs: numVMs, numPMs: numPMs, dim: dim, migVMs: migVMs}, nil
}
