package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool
	zlog       *zap.SugaredLogger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vmbb",
		Short: "Branch-and-Bound VM-to-PM placement solver",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var base *zap.Logger
			var err error
			if verbose {
				base, err = zap.NewDevelopment()
			} else {
				base, err = zap.NewProduction()
			}
			if err != nil {
				return err
			}
			zlog = base.Sugar()

			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a run configuration YAML file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging, including per-incumbent engine trace")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBenchCmd())

	return root
}
