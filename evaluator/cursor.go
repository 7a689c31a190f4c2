// SPDX-License-Identifier: MIT

package evaluator

import "sync"

// Pair is one (i, j) node pair, i != j. In symmetric mode i < j.
type Pair struct {
	I, J int
}

// Cursor is the shared work cursor: a lock-protected iterator over the pair
// space. Each call to Next is one critical section, so concurrent callers
// never observe the same state and every pair is returned exactly once.
//
// Enumeration: i ascending; for each i, j ascending skipping j == i. In
// symmetric mode j starts at i+1 and i stops at size-2.
type Cursor struct {
	mu        sync.Locker
	size      int
	symmetric bool

	// next pair to hand out; i < 0 once exhausted.
	i, j int
}

// NewCursor returns a cursor over size nodes. lock may be shared with the
// other run state; nil allocates a private mutex.
func NewCursor(size int, symmetric bool, lock sync.Locker) *Cursor {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	c := &Cursor{mu: lock, size: size, symmetric: symmetric, i: 0, j: 1}
	if size < 2 {
		c.i, c.j = -1, -1
	}

	return c
}

// Total returns the number of pairs the cursor yields over its lifetime:
// size*(size-1)/2 in symmetric mode, size*size-size otherwise.
func (c *Cursor) Total() int {
	return PairCount(c.size, c.symmetric)
}

// PairCount returns the size of the pair space.
func PairCount(size int, symmetric bool) int {
	if size < 2 {
		return 0
	}
	if symmetric {
		return size * (size - 1) / 2
	}

	return size*size - size
}

// Next returns the next unassigned pair, or false once the space is
// exhausted.
func (c *Cursor) Next() (Pair, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.i < 0 {
		return Pair{}, false
	}
	p := Pair{I: c.i, J: c.j}

	c.j++
	if c.j == c.i {
		c.j++
	}
	if c.j >= c.size {
		c.i++
		last := c.size
		if c.symmetric {
			last = c.size - 1
		}
		switch {
		case c.i >= last:
			c.i, c.j = -1, -1
		case c.symmetric:
			c.j = c.i + 1
		default:
			c.j = 0
		}
	}

	return p, true
}
