// SPDX-License-Identifier: MIT

package evaluator_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routematrix/evaluator"
)

func drain(c *evaluator.Cursor) []evaluator.Pair {
	var out []evaluator.Pair
	for {
		p, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

func TestCursor_Order(t *testing.T) {
	t.Parallel()

	sym := drain(evaluator.NewCursor(3, true, nil))
	require.Equal(t, []evaluator.Pair{{0, 1}, {0, 2}, {1, 2}}, sym)

	asym := drain(evaluator.NewCursor(3, false, nil))
	require.Equal(t, []evaluator.Pair{
		{0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1},
	}, asym)
}

func TestCursor_Degenerate(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, 1} {
		for _, symmetric := range []bool{true, false} {
			c := evaluator.NewCursor(size, symmetric, nil)
			require.Zero(t, c.Total())
			_, ok := c.Next()
			require.False(t, ok)
		}
	}

	two := drain(evaluator.NewCursor(2, false, nil))
	require.Equal(t, []evaluator.Pair{{0, 1}, {1, 0}}, two)
}

func TestCursor_StaysExhausted(t *testing.T) {
	t.Parallel()

	c := evaluator.NewCursor(4, true, nil)
	require.Len(t, drain(c), 6)
	for i := 0; i < 3; i++ {
		_, ok := c.Next()
		require.False(t, ok)
	}
}

// Concurrent callers must see every pair of the space exactly once.
func TestCursor_ConcurrentDrainExactlyOnce(t *testing.T) {
	t.Parallel()

	for _, size := range []int{2, 3, 7, 25} {
		for _, symmetric := range []bool{true, false} {
			size, symmetric := size, symmetric
			t.Run(fmt.Sprintf("n=%d/sym=%v", size, symmetric), func(t *testing.T) {
				t.Parallel()

				c := evaluator.NewCursor(size, symmetric, &sync.Mutex{})
				var (
					mu   sync.Mutex
					seen = map[evaluator.Pair]int{}
					wg   sync.WaitGroup
				)
				for w := 0; w < 8; w++ {
					wg.Add(1)
					go func() {
						defer wg.Done()
						for {
							p, ok := c.Next()
							if !ok {
								return
							}
							mu.Lock()
							seen[p]++
							mu.Unlock()
						}
					}()
				}
				wg.Wait()

				require.Len(t, seen, c.Total())
				require.Equal(t, evaluator.PairCount(size, symmetric), c.Total())
				for p, n := range seen {
					require.Equal(t, 1, n, "pair %v", p)
					require.NotEqual(t, p.I, p.J)
					require.True(t, p.I >= 0 && p.I < size && p.J >= 0 && p.J < size)
					if symmetric {
						require.Less(t, p.I, p.J)
					}
				}
			})
		}
	}
}

func TestPairCount(t *testing.T) {
	t.Parallel()

	require.Equal(t, 45, evaluator.PairCount(10, true))
	require.Equal(t, 90, evaluator.PairCount(10, false))
	require.Zero(t, evaluator.PairCount(1, false))
}
