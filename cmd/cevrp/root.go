package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andromedak2/cevrp/internal/logging"
	"github.com/andromedak2/cevrp/internal/mmas"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "cevrp",
	Short:         "Capacitated Electric Vehicle Routing Problem solver",
	Long:          "cevrp solves the Capacitated Electric Vehicle Routing Problem with a two-phase MMAS+ALNS hybrid metaheuristic.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable development-mode (human readable) logging")
	rootCmd.AddCommand(solveCmd, instancesCmd, batchCmd)
}

// Execute runs the root command and returns a process exit code: 0 on
// success, 1 on any error, and 2 specifically when the solver ran but
// found no feasible solution (spec.md §6 "Exit code... non-zero if no
// feasible solution exists").
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, mmas.ErrNoSolutionFound) {
			fmt.Fprintln(os.Stderr, "cevrp: no feasible solution found")
			return 2
		}
		fmt.Fprintln(os.Stderr, "cevrp:", err)
		return 1
	}
	return 0
}

func newLogger() (*zap.Logger, error) {
	return logging.New(verbose)
}
