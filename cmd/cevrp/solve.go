package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andromedak2/cevrp/internal/experiment"
	"github.com/andromedak2/cevrp/internal/instance"
	"github.com/andromedak2/cevrp/internal/logging"
	"github.com/andromedak2/cevrp/internal/metrics"
	"github.com/andromedak2/cevrp/internal/model"
	"github.com/andromedak2/cevrp/internal/report"
	"github.com/andromedak2/cevrp/internal/solve"
)

var (
	profileName string
	configPath  string
	seed        int64
	timeoutStr  string
	outDir      string
	metricsAddr string
)

var solveCmd = &cobra.Command{
	Use:   "solve <instance-index-or-path>",
	Short: "Run a single MMAS+ALNS solve against one instance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		path, err := resolveInstancePath(instancesDir, args[0])
		if err != nil {
			return err
		}

		exp, err := loadExperiment()
		if err != nil {
			return err
		}
		if seed != 0 {
			exp.MMAS.Seed = seed
			exp.ALNS.Seed = seed
		}

		inst, err := instance.Load(path)
		if err != nil {
			return fmt.Errorf("loading instance %q: %w", path, err)
		}
		logger.Info("loaded instance", zap.String("path", path), zap.Int("nodes", inst.NumNodes()))

		g := model.NewGraph(inst, 1.0)

		var deadline time.Time
		if timeoutStr != "" {
			d, err := time.ParseDuration(timeoutStr)
			if err != nil {
				return fmt.Errorf("parsing --timeout: %w", err)
			}
			deadline = time.Now().Add(d)
		}

		reg := prometheus.NewRegistry()
		coll := metrics.New()
		coll.MustRegister(reg)

		if metricsAddr != "" {
			srv := &http.Server{Addr: metricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Warn("metrics server stopped", zap.Error(err))
				}
			}()
			defer srv.Close()
			logger.Info("serving prometheus metrics", zap.String("addr", metricsAddr))
		}

		res, err := solve.Run(g, solve.Options{MMAS: exp.MMAS, ALNS: exp.ALNS, StopTime: deadline}, coll)
		if err != nil {
			return err
		}

		logger.Info("solve complete",
			logging.Phase("alns"),
			zap.Float64("construction_cost", res.ConstructionCost),
			zap.Float64("final_cost", res.Final.Objective()),
			zap.Int("alns_iterations", res.FinalIterations),
			zap.Bool("complete", res.Final.IsComplete()),
		)

		dir, err := report.NewRunDir(exp.DirectoryPath, time.Now())
		if err != nil {
			return fmt.Errorf("creating run directory: %w", err)
		}
		if err := writeRunLog(dir, res); err != nil {
			return fmt.Errorf("writing run log: %w", err)
		}
		fmt.Printf("run written to %s\n", dir)
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&profileName, "profile", "baseline", "experiment profile: baseline, optimized, or custom")
	solveCmd.Flags().StringVar(&configPath, "config", "", "YAML file with Experiment overrides (used with --profile=custom)")
	solveCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 uses the experiment profile's default)")
	solveCmd.Flags().StringVar(&timeoutStr, "timeout", "", "wall-clock deadline for the whole solve, e.g. 30s, 5m")
	solveCmd.Flags().StringVar(&instancesDir, "instances-dir", "instances", "directory to resolve an instance index against")
	solveCmd.Flags().StringVar(&outDir, "out", "", "override the experiment profile's output directory")
	solveCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics at this address (e.g. :9090) for the duration of the solve")
}

func loadExperiment() (experiment.Experiment, error) {
	var e experiment.Experiment
	switch profileName {
	case "baseline", "":
		e = experiment.Baseline()
	case "optimized":
		e = experiment.Optimized()
	case "custom":
		if configPath == "" {
			e = experiment.Custom()
		} else {
			var err error
			e, err = experiment.LoadFile(configPath)
			if err != nil {
				return experiment.Experiment{}, fmt.Errorf("loading --config: %w", err)
			}
		}
	default:
		return experiment.Experiment{}, fmt.Errorf("unknown --profile %q (want baseline, optimized, or custom)", profileName)
	}
	if outDir != "" {
		e.DirectoryPath = outDir
	}
	return e, nil
}

func writeRunLog(dir string, res *solve.Result) error {
	f, err := createLogFile(dir)
	if err != nil {
		return err
	}
	defer f.Close()

	var finalRoutes [][]string
	for _, r := range res.Final.Routes {
		finalRoutes = append(finalRoutes, r.Nodes)
	}

	l := report.Log{
		ACODuration:  res.ConstructionDuration,
		ACOCost:      res.ConstructionCost,
		ALNSDuration: res.RepairDuration,
		ALNSCost:     res.Final.Objective(),
		ALNSRoutes:   finalRoutes,
	}
	return l.Write(f)
}
