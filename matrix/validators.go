// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry/metric checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only; the triangle
//    inequality check is O(n³) and stops at the first violation.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on bad
// tol, ErrAsymmetry on violation.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // upper triangle only
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateNonNegative checks every cell is finite and ≥ 0, the domain on which
// the closure engine is guaranteed to terminate.
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if isNonFinite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative(%d,%d)", i, j), ErrNaNInf)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative(%d,%d)", i, j), ErrNegativeEntry)
			}
		}
	}

	return nil
}

// ValidateTriangleInequality checks M[i,j] ≤ M[i,k] + M[k,j] + tol for every
// ordered triple. The first violation is returned as a *TriangleViolation
// (errors.Is(err, ErrTriangleInequality) holds).
//
// Complexity: O(n³) time, O(1) space.
func ValidateTriangleInequality(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateTriangleInequality", err)
	}
	if isNonFinite(tol) || tol < 0 {
		return validatorErrorf("ValidateTriangleInequality", ErrNaNInf)
	}

	if d, ok := m.(*Dense); ok {
		return firstViolation(d.data, d.r, tol)
	}

	n := m.Rows()
	var (
		i, j, k       int
		dij, dik, dkj float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			dij, _ = m.At(i, j)
			for k = 0; k < n; k++ {
				dik, _ = m.At(i, k)
				dkj, _ = m.At(k, j)
				if dik+dkj+tol < dij {
					return &TriangleViolation{I: i, J: j, K: k, Direct: dij, Detour: dik + dkj}
				}
			}
		}
	}

	return nil
}

// firstViolation scans a flat n×n buffer for the first broken triple.
func firstViolation(data []float64, n int, tol float64) error {
	var (
		i, j, k int
		dij     float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			dij = data[i*n+j]
			for k = 0; k < n; k++ {
				if data[i*n+k]+data[k*n+j]+tol < dij {
					return &TriangleViolation{I: i, J: j, K: k, Direct: dij, Detour: data[i*n+k] + data[k*n+j]}
				}
			}
		}
	}

	return nil
}
