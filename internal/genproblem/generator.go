package genproblem

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/vmplace-bb/vmplace"
)

// Config mirrors the constructor arguments of the original generator:
// resource dimensionality, fleet size, and the [min,max] ranges demand and
// capacity components are drawn from.
type Config struct {
	Dimension int
	NumVMs    int
	NumPMs    int

	MinDemand int
	MaxDemand int

	MinCapacity int
	MaxCapacity int

	// NumPMTypes is the number of distinct capacity vectors drawn before
	// PMs are assigned one each; 0 means NumPMs (no type sharing).
	NumPMTypes int
}

// Validate reports a configuration error before Generate panics on it.
func (c Config) Validate() error {
	if c.Dimension <= 0 || c.NumVMs <= 0 || c.NumPMs <= 0 {
		return fmt.Errorf("genproblem: Dimension, NumVMs and NumPMs must be positive")
	}
	if c.MinDemand > c.MaxDemand || c.MinCapacity > c.MaxCapacity {
		return fmt.Errorf("genproblem: min must not exceed max for demand/capacity ranges")
	}
	if c.NumPMTypes < 0 || c.NumPMTypes > c.NumPMs {
		return fmt.Errorf("genproblem: NumPMTypes must be between 0 and NumPMs")
	}

	return nil
}

// Generate builds a random Problem per cfg, using rng for every draw so
// callers can reproduce a run by seeding rng identically.
func Generate(cfg Config, rng *rand.Rand) (vmplace.Problem, error) {
	if err := cfg.Validate(); err != nil {
		return vmplace.Problem{}, err
	}
	numTypes := cfg.NumPMTypes
	if numTypes == 0 {
		numTypes = cfg.NumPMs
	}

	types := make([][]int, numTypes)
	for t := range types {
		types[t] = randomVector(rng, cfg.Dimension, cfg.MinCapacity, cfg.MaxCapacity)
	}

	pms := make([]vmplace.PM, cfg.NumPMs)
	for i := range pms {
		typ := types[i]
		if cfg.NumPMTypes > 0 {
			typ = types[rng.IntN(numTypes)]
		}
		pms[i] = vmplace.PM{ID: i, Capacity: append([]int(nil), typ...)}
	}

	vms := make([]vmplace.VM, cfg.NumVMs)
	for j := range vms {
		vms[j] = vmplace.VM{
			ID:      j,
			Demand:  randomVector(rng, cfg.Dimension, cfg.MinDemand, cfg.MaxDemand),
			Initial: rng.IntN(cfg.NumPMs),
		}
	}

	return vmplace.Problem{Dimension: cfg.Dimension, VMs: vms, PMs: pms}, nil
}

func randomVector(rng *rand.Rand, dim, min, max int) []int {
	v := make([]int, dim)
	for d := range v {
		v[d] = min + rng.IntN(max-min+1)
	}

	return v
}
