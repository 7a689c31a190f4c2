// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Triangle-inequality closure of measured distance/time matrices.
//   - After Close returns nil, M[i,j] <= M[i,k] + M[k,j] holds for every
//     ordered triple (i, j, k) and a second Close changes nothing.
//
// Contract:
//   - Square matrix with finite, non-negative cells. Zero cells are treated
//     like any other value: an uncomputed (sentinel) cell can pull its
//     neighbours down to zero.
//   - Termination: every update strictly decreases a cell that is bounded
//     below by 0, so some pass is eventually clean. Worst case O(n) passes of
//     O(n³) work.

package matrix

// Operation name constants for unified error wrapping.
const opClose = "Close"

// Close repairs m in place until it satisfies the triangle inequality.
//
// Implementation:
//   - Stage 1: validate square, finite, non-negative.
//   - Stage 2: optional Floyd–Warshall pass (mode FloydWarshall).
//   - Stage 3: repeat full i→j→k relaxation passes until a clean pass.
//
// Returns:
//   - ClosureStats: passes executed (the last one is clean on success) and
//     the number of cell updates.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNegativeEntry on bad input.
//   - ErrClosureNotConverged when WithMaxPasses relaxation passes all changed
//     a cell; m keeps the partially relaxed values. The Floyd–Warshall sweep
//     does not count against the cap.
//
// Complexity:
//   - RelaxUntilStable: O(p·n³) with p ≤ n+1 passes in practice.
//   - FloydWarshall: O(n³) plus one O(n³) verification pass.
func Close(m Matrix, opts ...Option) (ClosureStats, error) {
	var stats ClosureStats

	if err := ValidateSquare(m); err != nil {
		return stats, matrixErrorf(opClose, err)
	}
	if err := ValidateNonNegative(m); err != nil {
		return stats, matrixErrorf(opClose, err)
	}
	o := gatherOptions(opts...)

	// Fast path operates on the flat buffer directly.
	if d, ok := m.(*Dense); ok {
		return closeDense(d, o)
	}

	// Generic fallback: stage into a Dense, close it, write back changed cells.
	n := m.Rows()
	staged, err := NewSquare(n)
	if err != nil {
		return stats, matrixErrorf(opClose, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j)
			staged.data[i*n+j] = v
		}
	}
	stats, cerr := closeDense(staged, o)
	var cur float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cur, _ = m.At(i, j)
			if cur != staged.data[i*n+j] {
				if err = m.Set(i, j, staged.data[i*n+j]); err != nil {
					return stats, matrixErrorf(opClose, err)
				}
			}
		}
	}

	return stats, cerr
}

// closeDense runs the configured schedule on a validated square *Dense.
func closeDense(d *Dense, o options) (ClosureStats, error) {
	var stats ClosureStats

	if o.mode == FloydWarshall {
		stats.Relaxed += floydWarshallInPlace(d, o.eps)
		stats.Passes++
	}

	// maxPasses bounds relaxation passes only; the sweep above is not counted.
	var changed, relaxPasses int
	for {
		if o.maxPasses > 0 && relaxPasses >= o.maxPasses {
			return stats, matrixErrorf(opClose, ErrClosureNotConverged)
		}
		changed = relaxPass(d.data, d.r, o.eps)
		relaxPasses++
		stats.Passes++
		stats.Relaxed += changed
		if changed == 0 {
			return stats, nil
		}
	}
}

// relaxPass performs one full i→j→k relaxation sweep over a flat n×n buffer
// and returns the number of updated cells. M[i,j] is re-read for every k so
// that several improvements within one sweep compound.
func relaxPass(data []float64, n int, eps float64) int {
	var (
		i, j, k      int
		baseI, baseK int
		ij           int     // offset of (i,j)
		cand         float64 // candidate M[i,k] + M[k,j]
		changed      int
	)
	for i = 0; i < n; i++ {
		baseI = i * n
		for j = 0; j < n; j++ {
			ij = baseI + j
			for k = 0; k < n; k++ {
				baseK = k * n
				cand = data[baseI+k] + data[baseK+j]
				if cand < data[ij]-eps { // strict improvement only
					data[ij] = cand
					changed++
				}
			}
		}
	}

	return changed
}

// floydWarshallInPlace runs one APSP sweep on a square *Dense in place and
// returns the number of updated cells.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Dense, eps float64) int {
	n := d.r

	var (
		k, i, j      int
		baseK, baseI int
		ik, cand     float64
		changed      int
	)

	data := d.data

	for k = 0; k < n; k++ { // outer: pick intermediate vertex k
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source vertex i
			ik = data[i*n+k]
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination vertex j
				cand = ik + data[baseK+j]
				if cand < data[baseI+j]-eps {
					data[baseI+j] = cand
					changed++
				}
			}
		}
	}

	return changed
}
