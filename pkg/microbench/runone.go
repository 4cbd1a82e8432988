package microbench

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// runOne executes a single measured run of inst.Fn with the given iteration
// count across inst.Threads threads, returning the merged Result. Thread 0
// runs on the calling goroutine; threads 1..T-1 are spawned and joined via
// errgroup, which also gives us a natural channel for propagating the
// "benchmark body returned before exhausting KeepRunning" fatal check as a
// real Go error instead of a bare panic from inside a spawned goroutine.
func runOne(inst *Instance, iters uint64) *Result {
	t := inst.Threads
	if t < 1 {
		t = 1
	}

	manager := NewThreadManager(t)
	g := new(errgroup.Group)

	for i := 1; i < t; i++ {
		i := i
		g.Go(func() error {
			return runWorker(inst, iters, i, t, manager)
		})
	}

	mainErr := runWorker(inst, iters, 0, t, manager)

	manager.WaitForAllThreads()
	if err := g.Wait(); err != nil {
		panic(err)
	}
	if mainErr != nil {
		panic(mainErr)
	}

	result := manager.Result()
	result.RealTimeUsed /= float64(t)
	result.ManualTimeUsed /= float64(t)
	return result
}

// runWorker runs the benchmark body on one thread, pinning the goroutine to
// its OS thread for the duration so the CPU-time accounting in
// pkg/util/grunning reflects only this thread's work, then merges its
// contribution into the shared Result.
func runWorker(inst *Instance, iters uint64, threadIndex, threads int, manager *ThreadManager) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	timer := &ThreadTimer{}
	s := NewState(iters, inst.Args, threadIndex, threads, timer, manager)

	inst.Fn(s)

	if !s.finished {
		// The benchmark body returned without exhausting KeepRunning: a
		// programmer contract violation in the body, not a runtime
		// condition. Other threads are still blocked on the barrier, so
		// this thread must still take part in both rendezvous before
		// reporting the violation, or the whole run deadlocks. A body
		// that never called KeepRunning at all still owes the start-side
		// rendezvous.
		if !s.started {
			manager.StartStopBarrier()
		}
		if s.timer.Running() {
			s.timer.Stop()
		}
		manager.StartStopBarrier()
		manager.NotifyThreadComplete()
		return errors.AssertionFailedf(
			"benchmark %q: body returned before exhausting KeepRunning (thread %d)", inst.Name, threadIndex)
	}

	// Only threads that ran to completion without error contribute their
	// iteration count to the Result; a thread that called SkipWithError
	// stopped short and is excluded from the iterations sum.
	iterContribution := s.maxIterations
	if s.errorOccurred {
		iterContribution = 0
	}

	manager.Lock()
	manager.Result().mergeThreadLocal(iterContribution, timer, s)
	manager.Unlock()
	manager.NotifyThreadComplete()
	return nil
}
