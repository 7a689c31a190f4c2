// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the detection site with
// fmt.Errorf("ctx: %w", ErrX); callers match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// or a data buffer whose length does not match the matrix shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, Fill, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeEntry signals a negative cell in a distance/time matrix.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrTriangleInequality signals M[i,k]+M[k,j] < M[i,j] for some triple.
	ErrTriangleInequality = errors.New("matrix: triangle inequality violated")

	// ErrClosureNotConverged is returned when the closure engine hits its
	// configured pass limit before a clean pass.
	ErrClosureNotConverged = errors.New("matrix: closure did not converge")

	// ErrUnknownMode is returned by ParseClosureMode for unrecognized names.
	ErrUnknownMode = errors.New("matrix: unknown closure mode")
)

// TriangleViolation describes the first triple found breaking the triangle
// inequality. It wraps ErrTriangleInequality.
type TriangleViolation struct {
	I, J, K int
	Direct  float64 // M[i,j]
	Detour  float64 // M[i,k] + M[k,j]
}

// Error implements error.
func (v *TriangleViolation) Error() string {
	return fmt.Sprintf("%v: M[%d,%d]=%g > M[%d,%d]+M[%d,%d]=%g",
		ErrTriangleInequality, v.I, v.J, v.Direct, v.I, v.K, v.K, v.J, v.Detour)
}

// Unwrap lets errors.Is match ErrTriangleInequality.
func (v *TriangleViolation) Unwrap() error { return ErrTriangleInequality }

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
