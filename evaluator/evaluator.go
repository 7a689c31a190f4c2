// SPDX-License-Identifier: MIT

package evaluator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/routematrix/geo"
	"github.com/katalvlaran/routematrix/matrix"
	"github.com/katalvlaran/routematrix/metrics"
	"github.com/katalvlaran/routematrix/provider"
)

// Outcome is the result of one run.
type Outcome struct {
	Distances *matrix.Dense
	Times     *matrix.Dense
	Symmetric bool
	Size      int

	PairsTotal int // pairs in the target space
	PairsDone  int // pairs finished: queried, skipped or failed and skipped
	Queried    int // successful provider calls
	Skipped    int // pairs covered by their canonical pair
	Failures   int // pairs whose provider call or store failed

	// Unresolved counts target pairs without an answer after the pool,
	// same-location pairs excluded.
	Unresolved int

	DistanceClosure matrix.ClosureStats
	TimeClosure     matrix.ClosureStats

	Elapsed time.Duration

	// Err is the provider failure that stopped the pool (StopOnError), the
	// joined pair failures (SkipFailedPairs), the context error, or a
	// closure error. Nil on a clean run.
	Err error
}

// Evaluator runs the worker pool over a coordinate table.
type Evaluator struct {
	table    *geo.Table
	provider provider.Provider
	o        options
}

// New validates the configuration.
func New(table *geo.Table, p provider.Provider, opts ...Option) (*Evaluator, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	if p == nil {
		return nil, ErrNilProvider
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		return nil, fmt.Errorf("New: %d workers: %w", o.workers, ErrInvalidWorkers)
	}
	if o.policy != StopOnError && o.policy != SkipFailedPairs {
		return nil, fmt.Errorf("New: %v: %w", o.policy, ErrUnknownPolicy)
	}

	return &Evaluator{table: table, provider: p, o: o}, nil
}

// run holds the shared state of one Run. mu guards cursor, results and
// progress together.
type run struct {
	mu       sync.Mutex
	cursor   *Cursor
	results  *Results
	progress *Progress

	queried  atomic.Int64
	skipped  atomic.Int64
	failures atomic.Int64

	failMu sync.Mutex
	failed []error
}

// Run evaluates every pair, then closes both matrices under the triangle
// inequality. Provider failures are reported in Outcome.Err; the returned
// error is non-nil only when the matrices cannot be allocated.
func (e *Evaluator) Run(ctx context.Context) (*Outcome, error) {
	start := time.Now()
	log := e.o.log

	r := &run{}
	r.cursor = NewCursor(e.table.Size(), e.o.symmetric, &r.mu)
	results, err := NewResults(e.table, e.o.symmetric, &r.mu)
	if err != nil {
		return nil, err
	}
	r.results = results
	r.progress = NewProgress(r.cursor.Total(), &r.mu, func(percent int) {
		log.Info().Int("percent", percent).Msgf("%d%%...", percent)
	})

	log.Info().
		Int("size", e.table.Size()).
		Int("distinct", e.table.DistinctLocations()).
		Int("pairs", r.cursor.Total()).
		Int("workers", e.o.workers).
		Bool("symmetric", e.o.symmetric).
		Msg("Evaluating pairs")

	poolErr := e.evaluate(ctx, r)
	if poolErr != nil {
		log.Error().Err(poolErr).Msg("Pair evaluation stopped")
	}

	out := &Outcome{
		Distances:  results.Distances(),
		Times:      results.Times(),
		Symmetric:  e.o.symmetric,
		Size:       e.table.Size(),
		PairsTotal: r.cursor.Total(),
		PairsDone:  r.progress.Completed(),
		Queried:    int(r.queried.Load()),
		Skipped:    int(r.skipped.Load()),
		Failures:   int(r.failures.Load()),
		Unresolved: results.Uncomputed(),
	}
	errs := []error{poolErr}
	if e.o.policy == SkipFailedPairs && len(r.failed) > 0 {
		errs = append(errs, r.failed...)
	}

	e.o.metrics.SetUnresolved(out.Unresolved)
	if out.Unresolved > 0 {
		log.Warn().Int("unresolved", out.Unresolved).
			Msg("Pairs without a routing result keep the 0 sentinel")
	}

	log.Info().Msg("Checking that the distance matrix satisfies the triangular inequality")
	out.DistanceClosure, err = e.close(metrics.MatrixDistance, out.Distances)
	errs = append(errs, err)

	log.Info().Msg("Checking that the time matrix satisfies the triangular inequality")
	out.TimeClosure, err = e.close(metrics.MatrixTime, out.Times)
	errs = append(errs, err)

	out.Err = errors.Join(errs...)
	out.Elapsed = time.Since(start)

	return out, nil
}

// evaluate runs the pool and blocks until every worker has returned.
func (e *Evaluator) evaluate(ctx context.Context, r *run) error {
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < e.o.workers; w++ {
		w := w
		g.Go(func() error {
			return e.work(gctx, w, r)
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	return err
}

// work is one worker's loop: Next, provider, Save, Done.
func (e *Evaluator) work(ctx context.Context, id int, r *run) error {
	log := e.o.log.With().Int("worker", id).Logger()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, ok := r.cursor.Next()
		if !ok {
			return nil
		}

		if e.table.Canonical(p.I) == p.I && e.table.Canonical(p.J) == p.J {
			err := e.evaluatePair(ctx, r, p)
			switch {
			case err != nil && ctx.Err() != nil:
				// cancelled by another worker or by the caller
				return ctx.Err()
			case err != nil && e.o.policy == StopOnError:
				r.failures.Add(1)
				return err
			case err != nil:
				r.failures.Add(1)
				log.Warn().Err(err).Int("i", p.I).Int("j", p.J).Msg("Pair skipped")
				r.failMu.Lock()
				r.failed = append(r.failed, err)
				r.failMu.Unlock()
			default:
				r.queried.Add(1)
			}
		} else {
			r.skipped.Add(1)
		}

		e.o.metrics.PairDone(r.progress.Done())
	}
}

func (e *Evaluator) evaluatePair(ctx context.Context, r *run, p Pair) error {
	from, to := e.table.At(p.I), e.table.At(p.J)
	route, err := e.provider.Route(ctx, from, to)
	if err == nil {
		err = r.results.Save(p.I, p.J, route.DistanceKm, route.TimeMinutes)
	}
	if err != nil {
		return &PairError{Pair: p, From: from, To: to, Err: err}
	}

	return nil
}

func (e *Evaluator) close(name string, m *matrix.Dense) (matrix.ClosureStats, error) {
	stats, err := matrix.Close(m, e.o.closure...)
	e.o.metrics.ObserveClosure(name, stats.Passes, stats.Relaxed)
	e.o.log.Debug().Str("matrix", name).Int("passes", stats.Passes).
		Int("relaxed", stats.Relaxed).Msg("Closure done")
	if err != nil {
		e.o.log.Error().Err(err).Str("matrix", name).Msg("Closure failed")
		return stats, fmt.Errorf("close %s matrix: %w", name, err)
	}

	return stats, nil
}
