// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the closure engine and the
// numeric policy. This file defines:
//   - Option / functional options with internal state,
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Fill.
	DefaultValidateNaNInf = true

	// DefaultClosureEpsilon is the minimum improvement the closure engine
	// acts on. Zero reproduces exact strict-improvement relaxation.
	DefaultClosureEpsilon = 0.0

	// DefaultMaxPasses bounds RelaxUntilStable; 0 means unlimited (the
	// algorithm terminates on its own for non-negative input).
	DefaultMaxPasses = 0

	// DefaultClosureMode is the reference relaxation schedule.
	DefaultClosureMode = RelaxUntilStable
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxPassesInvalid = "matrix: WithMaxPasses: n must be >= 0"
	panicModeInvalid      = "matrix: WithMode: unknown closure mode"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	eps       float64     // >= 0; DefaultClosureEpsilon
	maxPasses int         // >= 0; DefaultMaxPasses
	mode      ClosureMode // DefaultClosureMode
}

// WithEpsilon sets the minimum improvement the closure engine acts on:
// M[i,j] is relaxed only when M[i,k]+M[k,j] < M[i,j]-eps.
//
// Panics when eps is negative or not finite.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithMaxPasses caps the number of relaxation passes. 0 means unlimited.
// When the cap is hit before a clean pass, Close returns ErrClosureNotConverged.
func WithMaxPasses(n int) Option {
	if n < 0 {
		panic(panicMaxPassesInvalid)
	}

	return func(o *options) { o.maxPasses = n }
}

// WithMode selects the relaxation schedule.
func WithMode(mode ClosureMode) Option {
	if mode != RelaxUntilStable && mode != FloydWarshall {
		panic(panicModeInvalid)
	}

	return func(o *options) { o.mode = mode }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		eps:       DefaultClosureEpsilon,
		maxPasses: DefaultMaxPasses,
		mode:      DefaultClosureMode,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
