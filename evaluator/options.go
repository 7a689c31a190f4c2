// SPDX-License-Identifier: MIT

package evaluator

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/routematrix/matrix"
	"github.com/katalvlaran/routematrix/metrics"
)

// FailurePolicy selects what the pool does when a pair fails.
type FailurePolicy int

const (
	// StopOnError cancels the pool at the first failure. Closure and output
	// still run over the cells filled so far.
	StopOnError FailurePolicy = iota

	// SkipFailedPairs logs the failing pair, leaves it at the sentinel and
	// keeps going.
	SkipFailedPairs
)

// String returns "stop" or "skip".
func (p FailurePolicy) String() string {
	switch p {
	case StopOnError:
		return "stop"
	case SkipFailedPairs:
		return "skip"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}

// ParseFailurePolicy accepts "stop" (or "") and "skip".
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stop":
		return StopOnError, nil
	case "skip":
		return SkipFailedPairs, nil
	default:
		return StopOnError, fmt.Errorf("ParseFailurePolicy(%q): %w", s, ErrUnknownPolicy)
	}
}

// Defaults.
const (
	DefaultWorkers       = 1
	DefaultSymmetric     = false
	DefaultFailurePolicy = StopOnError
)

// Option configures an Evaluator.
type Option func(*options)

type options struct {
	workers   int
	symmetric bool
	policy    FailurePolicy
	closure   []matrix.Option
	log       zerolog.Logger
	metrics   *metrics.Collectors
}

func defaultOptions() options {
	return options{
		workers:   DefaultWorkers,
		symmetric: DefaultSymmetric,
		policy:    DefaultFailurePolicy,
		log:       zerolog.Nop(),
	}
}

// WithWorkers sets the pool size. New rejects values below 1.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithSymmetric selects symmetric mode: only the upper triangle is queried
// and every answer is also stored transposed.
func WithSymmetric(symmetric bool) Option {
	return func(o *options) { o.symmetric = symmetric }
}

// WithFailurePolicy sets the failure policy.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithClosureOptions forwards options to matrix.Close for both matrices.
func WithClosureOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.closure = append(o.closure, opts...) }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics sets the collectors updated during a run. nil disables them.
func WithMetrics(m *metrics.Collectors) Option {
	return func(o *options) { o.metrics = m }
}
