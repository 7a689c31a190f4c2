// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense store, validators and the
// closure engine.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// ClosureMode selects the relaxation schedule used by Close.
type ClosureMode int

const (
	// RelaxUntilStable repeats full i→j→k relaxation passes until one pass
	// changes nothing. Worst case O(n) passes of O(n³).
	RelaxUntilStable ClosureMode = iota

	// FloydWarshall runs one k→i→j pass (O(n³)) and then a verification
	// relaxation pass. Same fixpoint as RelaxUntilStable for non-negative input.
	FloydWarshall
)

// String returns the mode name used in configuration files and flags.
func (m ClosureMode) String() string {
	switch m {
	case RelaxUntilStable:
		return "relax"
	case FloydWarshall:
		return "floyd-warshall"
	default:
		return "unknown"
	}
}

// ParseClosureMode maps a mode name back to a ClosureMode.
func ParseClosureMode(s string) (ClosureMode, error) {
	switch s {
	case "", "relax":
		return RelaxUntilStable, nil
	case "floyd-warshall", "fw":
		return FloydWarshall, nil
	default:
		return RelaxUntilStable, matrixErrorf("ParseClosureMode("+s+")", ErrUnknownMode)
	}
}

// ClosureStats summarizes one Close call.
type ClosureStats struct {
	Passes  int // full passes executed, including the final clean pass
	Relaxed int // number of cell updates
}
