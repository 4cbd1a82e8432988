package microbench

// Result is the shared accumulator a ThreadManager owns for one RunOne
// invocation. It is zero-initialized at the start of RunOne, mutated under
// ThreadManager's mutex by each thread's epilogue, and copied out (not
// shared) once all threads have completed.
type Result struct {
	Iterations uint64

	// RealTimeUsed and ManualTimeUsed are summed by the epilogues and then
	// divided by the thread count by RunOne once all threads have joined;
	// CPUTimeUsed is left as a sum (CPU is a cross-thread resource).
	RealTimeUsed   float64
	CPUTimeUsed    float64
	ManualTimeUsed float64

	BytesProcessed int64
	ItemsProcessed int64
	ComplexityN    float64

	Counters map[string]Counter

	HasError     bool
	ErrorMessage string

	ReportLabel string
}

// newResult returns a freshly zero-initialized Result ready for a RunOne
// invocation.
func newResult() *Result {
	return &Result{Counters: make(map[string]Counter)}
}

// mergeThreadLocal sums one thread's epilogue contribution into r. The
// caller must hold the ThreadManager's mutex.
func (r *Result) mergeThreadLocal(iterations uint64, timer *ThreadTimer, s *State) {
	r.Iterations += iterations
	r.RealTimeUsed += timer.RealSeconds()
	r.CPUTimeUsed += timer.CPUSeconds()
	r.ManualTimeUsed += timer.ManualSeconds()
	r.BytesProcessed += s.bytesProcessed
	r.ItemsProcessed += s.itemsProcessed
	r.ComplexityN += s.complexityN
	mergeCounters(r.Counters, s.counters)

	// SkipWithError already published the first error directly into this
	// Result under lock; this is just a defensive fallback in case a
	// thread set errorOccurred through some other path.
	if s.errorOccurred && !r.HasError {
		r.HasError = true
		r.ErrorMessage = s.errorMessage
	}
}
