// SPDX-License-Identifier: MIT

package matrixio

import "errors"

// Parse errors, wrapped with the 1-based line number.
var (
	// ErrBadHeader indicates a first line that is not "<size>;<bool>".
	ErrBadHeader = errors.New("matrixio: bad header")

	// ErrBadSection indicates a missing or misplaced section title.
	ErrBadSection = errors.New("matrixio: bad section")

	// ErrBadRow indicates a row with a wrong index, a wrong field count or a
	// value that is not a non-negative number.
	ErrBadRow = errors.New("matrixio: bad row")

	// ErrShape indicates a document whose matrices do not match its size.
	ErrShape = errors.New("matrixio: matrix shape does not match size")
)
