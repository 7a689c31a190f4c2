// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routematrix/config"
	"github.com/katalvlaran/routematrix/evaluator"
	"github.com/katalvlaran/routematrix/geo"
	"github.com/katalvlaran/routematrix/logging"
	"github.com/katalvlaran/routematrix/matrix"
	"github.com/katalvlaran/routematrix/matrixio"
	"github.com/katalvlaran/routematrix/metrics"
)

// errIncomplete marks a run whose output was written with unresolved pairs.
var errIncomplete = errors.New("evaluation incomplete, output written with sentinel cells")

// newRootCmd builds the command. Logs, errors and the usage text go to stderr.
func newRootCmd(stderr io.Writer) *cobra.Command {
	f := &cliFlags{}
	cmd := &cobra.Command{
		Use:   "routematrix coordFile outputFile symmetricFlag [workerCount]",
		Short: "Compute travel distance and time matrices for a coordinate file",
		Long: `Compute the pairwise travel distance (km) and travel time (minutes)
matrices of a coordinate file ("index;lat;lon" lines after one header line),
repair both so that they satisfy the triangle inequality, and write them to
outputFile.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f, args)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			return runMatrix(cmd.Context(), cfg, args[0], args[1], stderr)
		},
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	f.registerPersistent(cmd)
	f.registerRun(cmd)
	cmd.AddCommand(newFixCmd(f, stderr))

	return cmd
}

// loadConfig merges defaults, the config file, the environment, positional
// arguments and flags, then validates the result.
func loadConfig(cmd *cobra.Command, f *cliFlags, args []string) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	if len(args) >= 3 {
		if err = applyArgs(args, &cfg); err != nil {
			return cfg, err
		}
	}
	f.apply(cmd, &cfg)
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) (zerolog.Logger, error) {
	log, err := logging.New(w, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return log, err
	}

	return log.With().Str("run_id", uuid.NewString()).Logger(), nil
}

func closureOptions(cfg config.Config) ([]matrix.Option, error) {
	mode, err := matrix.ParseClosureMode(cfg.Closure.Mode)
	if err != nil {
		return nil, err
	}

	return []matrix.Option{
		matrix.WithMode(mode),
		matrix.WithMaxPasses(cfg.Closure.MaxPasses),
		matrix.WithEpsilon(cfg.Closure.Epsilon),
	}, nil
}

// runMatrix is the whole pipeline: read, evaluate, close, write. The output
// file is written even when the evaluation stopped early.
func runMatrix(parent context.Context, cfg config.Config, coordFile, outFile string, logOut io.Writer) error {
	start := time.Now()
	log, err := newLogger(cfg, logOut)
	if err != nil {
		return err
	}
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	if cfg.Metrics.Addr != "" {
		srvCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := metrics.Serve(srvCtx, cfg.Metrics.Addr, reg, log); err != nil {
				log.Error().Err(err).Msg("Metrics endpoint failed")
			}
		}()
		defer func() {
			cancel()
			<-done
		}()
	}

	log.Info().Msgf("Evaluation of distances and travel times using coordinates file %s", coordFile)
	log.Info().Msg("Reading coordinates")
	table, err := geo.LoadTable(coordFile)
	if err != nil {
		return err
	}
	log.Info().Int("size", table.Size()).Int("distinct", table.DistinctLocations()).
		Msg("Coordinates successfully read")

	prov, err := buildProvider(cfg, m)
	if err != nil {
		return err
	}
	closure, err := closureOptions(cfg)
	if err != nil {
		return err
	}
	policy, err := evaluator.ParseFailurePolicy(cfg.FailurePolicy)
	if err != nil {
		return err
	}

	ev, err := evaluator.New(table, prov,
		evaluator.WithWorkers(cfg.Workers),
		evaluator.WithSymmetric(cfg.Symmetric),
		evaluator.WithFailurePolicy(policy),
		evaluator.WithClosureOptions(closure...),
		evaluator.WithLogger(log),
		evaluator.WithMetrics(m),
	)
	if err != nil {
		return err
	}
	out, err := ev.Run(ctx)
	if err != nil {
		return err
	}

	doc := matrixio.Document{
		Size:      out.Size,
		Symmetric: out.Symmetric,
		Distances: out.Distances,
		Times:     out.Times,
	}
	if err = matrixio.WriteFile(outFile, doc); err != nil {
		return err
	}

	log.Info().
		Int("queried", out.Queried).
		Int("skipped", out.Skipped).
		Int("failures", out.Failures).
		Int("unresolved", out.Unresolved).
		Int("distance_relaxed", out.DistanceClosure.Relaxed).
		Int("time_relaxed", out.TimeClosure.Relaxed).
		Str("output", outFile).
		Msgf("Finished - Total time: %s", time.Since(start).Round(time.Millisecond))

	if out.Err != nil {
		return fmt.Errorf("%w: %v", errIncomplete, out.Err)
	}

	return nil
}
