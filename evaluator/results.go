// SPDX-License-Identifier: MIT

package evaluator

import (
	"fmt"
	"math"
	"sync"

	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/routematrix/geo"
	"github.com/katalvlaran/routematrix/matrix"
)

// Results is the pair of result matrices written by the workers.
//
// Both matrices start at 0, the "not yet computed" sentinel. A roaring bitmap
// tracks which cells received a routing answer, so IsComputed tells a real
// zero from the sentinel.
type Results struct {
	mu        sync.Locker
	table     *geo.Table
	symmetric bool

	dist     *matrix.Dense
	time     *matrix.Dense
	computed *roaring.Bitmap
}

// NewResults allocates zero-filled matrices for table. lock may be shared
// with the cursor and the progress reporter; nil allocates a private mutex.
func NewResults(table *geo.Table, symmetric bool, lock sync.Locker) (*Results, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	n := table.Size()
	if uint64(n)*uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("NewResults: %d nodes: %w", n, ErrTooLarge)
	}
	if lock == nil {
		lock = &sync.Mutex{}
	}

	dist, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("NewResults: %w", err)
	}
	tm, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("NewResults: %w", err)
	}

	return &Results{
		mu:        lock,
		table:     table,
		symmetric: symmetric,
		dist:      dist,
		time:      tm,
		computed:  roaring.New(),
	}, nil
}

func (r *Results) cell(i, j int) uint32 {
	return uint32(i*r.table.Size() + j)
}

// IsComputed reports whether (i, j) holds a routing answer.
func (r *Results) IsComputed(i, j int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.computed.Contains(r.cell(i, j))
}

// Save stores one routing answer for (i, j) and replicates it to every
// (ii, jj) with ii >= i, Canonical(ii) == i, jj >= j and Canonical(jj) == j.
// In symmetric mode each written cell also writes its transpose.
//
// Returns matrix.ErrOutOfRange for bad indices and matrix.ErrNegativeEntry
// or matrix.ErrNaNInf for values that cannot be stored. Nothing is written
// on error.
func (r *Results) Save(i, j int, dist, time float64) error {
	n := r.table.Size()
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("Results.Save(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	if math.IsNaN(dist) || math.IsInf(dist, 0) || math.IsNaN(time) || math.IsInf(time, 0) {
		return fmt.Errorf("Results.Save(%d,%d): %w", i, j, matrix.ErrNaNInf)
	}
	if dist < 0 || time < 0 {
		return fmt.Errorf("Results.Save(%d,%d): %w", i, j, matrix.ErrNegativeEntry)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store(i, j, dist, time)
	for ii := i; ii < n; ii++ {
		if r.table.Canonical(ii) != i {
			continue
		}
		for jj := j; jj < n; jj++ {
			if r.table.Canonical(jj) == j {
				r.store(ii, jj, dist, time)
			}
		}
	}

	return nil
}

// store writes one cell (and its transpose). Indices and values are
// validated by Save, so Set cannot fail here.
func (r *Results) store(i, j int, dist, time float64) {
	_ = r.dist.Set(i, j, dist)
	_ = r.time.Set(i, j, time)
	r.computed.Add(r.cell(i, j))
	if r.symmetric {
		_ = r.dist.Set(j, i, dist)
		_ = r.time.Set(j, i, time)
		r.computed.Add(r.cell(j, i))
	}
}

// Uncomputed counts the pairs of the target space without a routing answer,
// ignoring same-location pairs whose 0 is the correct value.
func (r *Results) Uncomputed() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.table.Size()
	missing := 0
	for i := 0; i < n; i++ {
		j0 := 0
		if r.symmetric {
			j0 = i + 1
		}
		for j := j0; j < n; j++ {
			if i == j || r.table.IsSameLocation(i, j) {
				continue
			}
			if !r.computed.Contains(r.cell(i, j)) {
				missing++
			}
		}
	}

	return missing
}

// Distances returns the distance matrix. Not safe while workers run.
func (r *Results) Distances() *matrix.Dense { return r.dist }

// Times returns the time matrix. Not safe while workers run.
func (r *Results) Times() *matrix.Dense { return r.time }
