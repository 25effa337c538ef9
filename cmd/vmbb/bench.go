package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vmplace-bb/internal/genproblem"
	"github.com/katalvlaran/vmplace-bb/internal/report"
	"github.com/katalvlaran/vmplace-bb/vmplace"
)

var (
	benchSizes int
	benchSeed  uint64
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve a sweep of randomly generated problems of increasing size against every profile",
		RunE:  runBench,
	}
	cmd.Flags().IntVar(&benchSizes, "sizes", 5, "number of problem sizes to sweep, doubling VM/PM counts each step")
	cmd.Flags().Uint64Var(&benchSeed, "seed", 1, "PRNG seed, for a reproducible sweep")

	return cmd
}

func runBench(cmd *cobra.Command, args []string) error {
	run, _, err := loadRun()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(benchSeed, benchSeed^0x9e3779b97f4a7c15))
	var rows []report.Row

	numVMs, numPMs := 10, 5
	for step := 0; step < benchSizes; step++ {
		cfg := genproblem.Config{Dimension: 2, NumVMs: numVMs, NumPMs: numPMs, MinDemand: 1, MaxDemand: 10, MinCapacity: 10, MaxCapacity: 20}
		problem, err := genproblem.Generate(cfg, rng)
		if err != nil {
			return err
		}
		problemName := fmt.Sprintf("vms=%d_pms=%d", numVMs, numPMs)

		for _, params := range run.Params() {
			row, err := solveOneNamed(problem, params, problemName)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", problemName, params.Name, err)
			}
			rows = append(rows, row)
		}

		numVMs *= 2
		numPMs *= 2
	}

	return report.WriteCSV(cmd.OutOrStdout(), rows)
}

func solveOneNamed(problem vmplace.Problem, params vmplace.Params, name string) (report.Row, error) {
	row, err := solveOne(problem, params)
	if err != nil {
		return report.Row{}, err
	}
	row.ProblemName = name

	return row, nil
}
