// Package matrix offers the dense square matrices that hold pairwise travel
// distances and travel times, plus the closure engine that repairs them.
//
// The matrix package provides:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set. A fresh
//     matrix is zero-filled; zero doubles as the "not yet computed" sentinel.
//   - Validators: square, symmetric, non-negative and triangle-inequality
//     checks returning package sentinels (match with errors.Is).
//   - Close: in-place triangle-inequality closure. The reference schedule
//     repeats full i→j→k relaxation passes until one pass changes nothing;
//     a Floyd–Warshall schedule reaches the same fixpoint in one sweep plus a
//     verification pass.
//
// Matrices are best for modest node counts where O(n²) memory and O(n³) per
// closure pass are acceptable.
package matrix
