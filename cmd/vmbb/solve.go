package main

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vmplace-bb/internal/config"
	"github.com/katalvlaran/vmplace-bb/internal/genproblem"
	"github.com/katalvlaran/vmplace-bb/internal/ilp"
	"github.com/katalvlaran/vmplace-bb/internal/report"
	"github.com/katalvlaran/vmplace-bb/vmplace"
)

var solveWithBound bool

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one problem against every profile in the run configuration",
		RunE:  runSolve,
	}
	cmd.Flags().BoolVar(&solveWithBound, "with-lower-bound", false, "also compute the LP-relaxation lower bound for comparison")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	run, problem, err := loadRun()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	zlog.Infow("starting run", "run_id", runID, "num_vms", len(problem.VMs), "num_pms", len(problem.PMs))

	var rows []report.Row
	for _, params := range run.Params() {
		row, err := solveOne(problem, params)
		if err != nil {
			return fmt.Errorf("profile %q: %w", params.Name, err)
		}
		rows = append(rows, row)
	}

	return report.WriteCSV(cmd.OutOrStdout(), rows)
}

func solveOne(problem vmplace.Problem, params vmplace.Params) (report.Row, error) {
	sink := newOptionalSink()
	start := time.Now()
	alloc, err := vmplace.NewAllocator(problem, params, sink)
	if err != nil {
		return report.Row{}, err
	}
	if err := alloc.Solve(context.Background()); err != nil {
		return report.Row{}, err
	}

	_, feasible := alloc.BestAllocation()
	row := report.Row{
		ProfileName: params.Name,
		Feasible:    feasible,
		Cost:        alloc.BestCost(),
		ActiveHosts: alloc.BestActiveHosts(),
		Migrations:  alloc.BestMigrations(),
		LowerBound:  math.NaN(),
		ElapsedSecs: time.Since(start).Seconds(),
	}

	if solveWithBound {
		model, err := ilp.NewModel(problem, params)
		if err == nil {
			if lb, err := model.LowerBound(); err == nil {
				row.LowerBound = lb
			}
		}
	}
	zlog.Infow("profile solved", "profile", params.Name, "cost", row.Cost, "active_hosts", row.ActiveHosts, "migrations", row.Migrations)

	return row, nil
}

func loadRun() (config.Run, vmplace.Problem, error) {
	if configPath != "" {
		run, err := config.Load(configPath)
		if err != nil {
			return config.Run{}, vmplace.Problem{}, err
		}
		problem, err := genproblem.Generate(run.Problem, rand.New(rand.NewPCG(1, 2)))
		if err != nil {
			return config.Run{}, vmplace.Problem{}, err
		}

		return run, problem, nil
	}

	cfg := genproblem.Config{Dimension: 2, NumVMs: 20, NumPMs: 10, MinDemand: 1, MaxDemand: 10, MinCapacity: 10, MaxCapacity: 20}
	problem, err := genproblem.Generate(cfg, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		return config.Run{}, vmplace.Problem{}, err
	}

	return config.Run{Profiles: []config.ProfileSpec{{Name: "default"}}}, problem, nil
}

func newOptionalSink() vmplace.LogSink {
	if !verbose {
		return nil
	}

	return sugaredSink{}
}

// sugaredSink routes engine trace logging through the package-level zap
// logger; defined here rather than in internal/report because it binds to
// the CLI's shared zlog, not a caller-supplied logger.
type sugaredSink struct{}

func (sugaredSink) Printf(format string, args ...any) {
	zlog.Debugf(format, args...)
}
