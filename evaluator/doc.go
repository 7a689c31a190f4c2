// SPDX-License-Identifier: MIT

// Package evaluator is the parallel pair-evaluation coordinator.
//
// A run builds three pieces that share one lock:
//
//   - Cursor hands out every (i, j) pair of the target space exactly once,
//     the upper triangle in symmetric mode and the full grid without the
//     diagonal otherwise.
//   - Results holds the distance and time matrices. Save replicates one
//     routing answer to every pair of location duplicates.
//   - Progress counts finished pairs and emits 0%, 10%, ... 100% once each.
//
// Evaluator.Run launches the worker pool, waits for it, then repairs both
// matrices with matrix.Close so that they satisfy the triangle inequality.
//
// Only pairs whose two endpoints are canonical nodes reach the provider. Any
// other pair is covered by the Save of its canonical pair and only counts
// towards progress. Same-location pairs are never queried and keep the zero
// sentinel.
//
// Provider failures never abort the run: depending on FailurePolicy the pool
// either stops at the first failure or skips the failing pair, and in both
// cases closure still runs over whatever cells were filled. Cells still at
// the sentinel are reported in Outcome.Unresolved.
package evaluator
