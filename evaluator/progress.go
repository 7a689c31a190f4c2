// SPDX-License-Identifier: MIT

package evaluator

import "sync"

// ProgressStep is the percentage between two notifications.
const ProgressStep = 10

// Progress counts finished pairs and emits every crossed multiple of
// ProgressStep exactly once, in ascending order. Threshold p is crossed when
// done*100 >= p*total, so 0% fires with the first completion and 100% with
// the last one.
type Progress struct {
	mu    sync.Locker
	total int
	done  int
	next  int
	sink  func(percent int)
}

// NewProgress returns a reporter for total pairs. sink is called under the
// lock and must not call back into the run state; nil discards notifications.
func NewProgress(total int, lock sync.Locker, sink func(percent int)) *Progress {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	if sink == nil {
		sink = func(int) {}
	}

	return &Progress{mu: lock, total: total, sink: sink}
}

// Done records one finished pair and returns the completed ratio in [0,1].
func (p *Progress) Done() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done++
	for p.next <= 100 && p.done*100 >= p.next*p.total {
		p.sink(p.next)
		p.next += ProgressStep
	}
	if p.total == 0 {
		return 1
	}

	return float64(p.done) / float64(p.total)
}

// Completed returns the number of finished pairs.
func (p *Progress) Completed() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.done
}
