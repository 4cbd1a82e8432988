package main

import (
	"time"

	"github.com/benchforge/microbench/pkg/microbench"
)

// registerExampleBenchmarks registers a small demo suite so that running
// this binary without a separate benchmark package still exercises every
// corner of the engine: a trivial counter loop, a multi-threaded counter
// sum, a manual-time sleep loop, and an O(N) complexity family.
func registerExampleBenchmarks(r *microbench.Registry) {
	r.Register("BenchmarkNoop", func(s *microbench.State) {
		items := int64(0)
		for s.KeepRunning() {
			items++
		}
		s.SetItemsProcessed(items)
	})

	r.Register("BenchmarkCounterSum", func(s *microbench.State) {
		for s.KeepRunning() {
		}
		s.SetBytesProcessed(int64(s.MaxIterations()) * 7)
		s.SetItemsProcessed(int64(s.MaxIterations()) * 3)
	}).Threads(1, 2, 4)

	r.Register("BenchmarkManualSleep", func(s *microbench.State) {
		for s.KeepRunning() {
			start := time.Now()
			time.Sleep(time.Millisecond)
			s.SetIterationTime(time.Since(start).Seconds())
		}
	}).UseManualTime().MinTime(0.5)

	sumTo := r.Register("BenchmarkSumToN", func(s *microbench.State) {
		n := 0
		if args := s.Args(); len(args) > 0 {
			n = args[0]
		}
		for s.KeepRunning() {
			total := 0
			for i := 0; i < n; i++ {
				total += i
			}
			s.SetComplexityN(float64(n))
			_ = total
		}
	})
	sumTo.ReportComplexity(microbench.ComplexityON)
	sumTo.Arg(1).Arg(10).Arg(100).Arg(1000)
}
