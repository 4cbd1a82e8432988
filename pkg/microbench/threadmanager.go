package microbench

import (
	"sync"

	"github.com/benchforge/microbench/pkg/util/syncutil"
)

// barrier is a reusable, generation-counted rendezvous point for exactly n
// participants. Unlike sync.WaitGroup, which is consumed by a single Wait,
// a barrier can be waited on repeatedly: each cohort of n Wait calls
// releases together and the barrier resets for the next cohort.
type barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	n          int
	count      int
	generation int
}

func newBarrier(n int) *barrier {
	b := &barrier{n: n}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// wait blocks until n participants (across all calls since the barrier was
// constructed or last released) have called wait, then releases all of
// them together.
func (b *barrier) wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	gen := b.generation
	b.count++
	if b.count == b.n {
		b.count = 0
		b.generation++
		b.cond.Broadcast()
		return
	}
	for gen == b.generation {
		b.cond.Wait()
	}
}

// ThreadManager owns the shared Result for one RunOne invocation plus the
// two-phase start/stop barrier that keeps all T participating threads
// inside the timed region together. A fresh ThreadManager is constructed
// per RunOne (including the memory-measurement re-run) so that barrier
// state never needs to be reset mid-flight.
type ThreadManager struct {
	numThreads int

	mu     syncutil.Mutex
	result *Result

	startStop *barrier

	doneMu      sync.Mutex
	doneCond    *sync.Cond
	outstanding int
}

// NewThreadManager constructs a ThreadManager for numThreads participants.
func NewThreadManager(numThreads int) *ThreadManager {
	m := &ThreadManager{
		numThreads:  numThreads,
		result:      newResult(),
		startStop:   newBarrier(numThreads),
		outstanding: numThreads,
	}
	m.doneCond = sync.NewCond(&m.doneMu)
	return m
}

// Lock acquires the mutex protecting the shared Result.
func (m *ThreadManager) Lock() { m.mu.Lock() }

// Unlock releases the mutex protecting the shared Result.
func (m *ThreadManager) Unlock() { m.mu.Unlock() }

// Result returns the shared Result. The caller must hold the mutex (via
// Lock/Unlock) when mutating it from multiple threads.
func (m *ThreadManager) Result() *Result { return m.result }

// StartStopBarrier blocks until all numThreads participants have called it,
// then releases them together. It is invoked twice per benchmark body: once
// at the start of the timed region, once at the end.
func (m *ThreadManager) StartStopBarrier() {
	m.startStop.wait()
}

// NotifyThreadComplete decrements the outstanding-thread counter and wakes
// WaitForAllThreads once it reaches zero.
func (m *ThreadManager) NotifyThreadComplete() {
	m.doneMu.Lock()
	defer m.doneMu.Unlock()
	m.outstanding--
	if m.outstanding == 0 {
		m.doneCond.Broadcast()
	}
}

// WaitForAllThreads blocks until every participant has called
// NotifyThreadComplete.
func (m *ThreadManager) WaitForAllThreads() {
	m.doneMu.Lock()
	defer m.doneMu.Unlock()
	for m.outstanding > 0 {
		m.doneCond.Wait()
	}
}
