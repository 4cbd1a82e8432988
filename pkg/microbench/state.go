package microbench

import "github.com/cockroachdb/errors"

// State is the per-thread loop handle passed to a benchmark body. Exactly
// one State exists per thread per RunOne invocation; it is never shared
// across threads (each thread's Result contribution is merged into the
// shared ThreadManager.Result only in the epilogue, under lock).
//
// totalIterations is declared first and, together with the started flag a
// few bytes after it, is all KeepRunning's hot path touches; keeping both
// at the head of the struct keeps the decrement-
// and-branch sequence benchmark bodies execute billions of times within a
// single cache line, with every cold transition (start/stop, errors,
// labels) factored into separate methods that touch the rest of the
// struct.
type State struct {
	totalIterations uint64

	maxIterations uint64
	batchLeftover uint64

	started  bool
	finished bool

	errorOccurred bool
	errorMessage  string
	reportLabel   string

	args        []int
	threadIndex int
	threads     int

	bytesProcessed int64
	itemsProcessed int64
	complexityN    float64
	counters       map[string]Counter

	timer   *ThreadTimer
	manager *ThreadManager
}

// NewState constructs a State for one thread's participation in a RunOne
// invocation. maxIterations must be at least 1; violating that is a fatal
// check, since it can only happen from a harness bug (the convergence loop
// never requests zero iterations).
func NewState(maxIterations uint64, args []int, threadIndex, threads int, timer *ThreadTimer, manager *ThreadManager) *State {
	if maxIterations == 0 {
		panic(errors.AssertionFailedf("State: max_iterations must be >= 1"))
	}
	return &State{
		maxIterations: maxIterations,
		args:          args,
		threadIndex:   threadIndex,
		threads:       threads,
		counters:      make(map[string]Counter),
		timer:         timer,
		manager:       manager,
	}
}

// KeepRunning returns true exactly MaxIterations times, then false. The
// first call transitions the State from not-started to running: it waits
// on the shared start/stop barrier so all participating threads enter the
// timed region together, then starts the timer. The call immediately after
// the final true-returning call transitions running to finished: it stops
// the timer (unless SkipWithError already stopped it) and waits on the
// barrier again so all threads leave the timed region together.
func (s *State) KeepRunning() bool {
	if !s.started {
		s.startKeepRunning()
	}
	result := s.totalIterations != 0
	if result {
		s.totalIterations--
		return true
	}
	if !s.finished {
		s.finishKeepRunning()
	}
	return false
}

func (s *State) startKeepRunning() {
	s.started = true
	if s.errorOccurred {
		// SkipWithError ran before the first KeepRunning call; the
		// iteration budget stays zeroed and the timer never starts.
		s.totalIterations = 0
	} else {
		s.totalIterations = s.maxIterations
	}
	s.manager.StartStopBarrier()
	if !s.errorOccurred {
		s.timer.Start()
	}
}

func (s *State) finishKeepRunning() {
	if s.timer.Running() {
		s.timer.Stop()
	}
	s.manager.StartStopBarrier()
	s.finished = true
}

// PauseTiming stops the timer without affecting the iteration countdown.
// After an error has already been reported via SkipWithError this is a
// no-op: the timer was already stopped by SkipWithError and pausing an
// already-finished measurement has nothing left to do.
func (s *State) PauseTiming() {
	if s.errorOccurred {
		return
	}
	s.assertTimingAllowed("PauseTiming")
	s.timer.Stop()
}

// ResumeTiming restarts the timer without affecting the iteration
// countdown. Calling it after an error has been reported is a fatal check:
// unlike PauseTiming, resuming would silently resurrect measurement for a
// thread that has already been excused from the timed region.
func (s *State) ResumeTiming() {
	if s.errorOccurred {
		panic(errors.AssertionFailedf("State.ResumeTiming called after SkipWithError"))
	}
	s.assertTimingAllowed("ResumeTiming")
	s.timer.Start()
}

func (s *State) assertTimingAllowed(op string) {
	if !s.started || s.finished {
		panic(errors.AssertionFailedf("State.%s requires started && !finished", op))
	}
}

// SetIterationTime adds s to the timer's manual-time accumulator,
// independent of whether the timer is currently running.
func (s *State) SetIterationTime(seconds float64) {
	s.timer.SetIterationTime(seconds)
}

// SkipWithError atomically publishes msg as the Result's error (first
// writer wins across all threads), zeroes this thread's remaining
// iteration budget so the next KeepRunning call returns false, and stops
// the timer if it is running. Afterwards PauseTiming is a no-op on this
// thread and ResumeTiming is a fatal check.
func (s *State) SkipWithError(msg string) {
	s.manager.Lock()
	if !s.manager.Result().HasError {
		s.manager.Result().HasError = true
		s.manager.Result().ErrorMessage = msg
	}
	s.manager.Unlock()

	s.errorOccurred = true
	s.errorMessage = msg
	s.totalIterations = 0
	if s.timer.Running() {
		s.timer.Stop()
	}
}

// SetLabel takes the shared lock and overwrites the Result's report label;
// the last thread to call SetLabel wins.
func (s *State) SetLabel(msg string) {
	s.manager.Lock()
	s.manager.Result().ReportLabel = msg
	s.manager.Unlock()
	s.reportLabel = msg
}

// SetBytesProcessed records the total bytes this thread processed, summed
// into the shared Result in the RunOne epilogue.
func (s *State) SetBytesProcessed(n int64) { s.bytesProcessed = n }

// SetItemsProcessed records the total items this thread processed, summed
// into the shared Result in the RunOne epilogue.
func (s *State) SetItemsProcessed(n int64) { s.itemsProcessed = n }

// SetComplexityN records this thread's complexity-fit input size, summed
// across threads into the shared Result in the RunOne epilogue. Run records
// and the BigO fit take ComplexityN from the Instance (its first argument),
// not from this value.
func (s *State) SetComplexityN(n float64) { s.complexityN = n }

// SetCounter records or overwrites a thread-local named counter; counters
// are merged element-wise (additively) into the shared Result in the
// RunOne epilogue.
func (s *State) SetCounter(name string, c Counter) {
	s.counters[name] = c
}

// ThreadIndex returns this thread's index in [0, Threads()).
func (s *State) ThreadIndex() int { return s.threadIndex }

// Threads returns the total thread count T for this benchmark instance.
func (s *State) Threads() int { return s.threads }

// Args returns a copy of the benchmark instance's argument vector.
func (s *State) Args() []int {
	out := make([]int, len(s.args))
	copy(out, s.args)
	return out
}

// MaxIterations returns the fixed iteration count this thread was
// constructed with.
func (s *State) MaxIterations() uint64 { return s.maxIterations }

// ErrorOccurred reports whether SkipWithError has been called on this
// thread.
func (s *State) ErrorOccurred() bool { return s.errorOccurred }
