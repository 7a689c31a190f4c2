// SPDX-License-Identifier: MIT

package evaluator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/routematrix/geo"
)

// Configuration errors returned by New and ParseFailurePolicy.
var (
	// ErrNilTable indicates a nil coordinate table.
	ErrNilTable = errors.New("evaluator: nil coordinate table")

	// ErrNilProvider indicates a nil routing provider.
	ErrNilProvider = errors.New("evaluator: nil provider")

	// ErrInvalidWorkers indicates a worker count below 1.
	ErrInvalidWorkers = errors.New("evaluator: worker count must be >= 1")

	// ErrUnknownPolicy indicates an unrecognised failure policy name.
	ErrUnknownPolicy = errors.New("evaluator: unknown failure policy")

	// ErrTooLarge indicates a table whose cell count does not fit the
	// computed-cell index.
	ErrTooLarge = errors.New("evaluator: too many nodes")
)

// PairError reports a provider or store failure for one pair.
type PairError struct {
	Pair     Pair
	From, To geo.Coordinate
	Err      error
}

// Error implements error.
func (e *PairError) Error() string {
	return fmt.Sprintf("evaluator: pair (%d,%d) %s -> %s: %v", e.Pair.I, e.Pair.J, e.From, e.To, e.Err)
}

// Unwrap exposes the provider error.
func (e *PairError) Unwrap() error { return e.Err }
