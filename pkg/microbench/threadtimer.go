package microbench

import (
	"time"

	"github.com/benchforge/microbench/pkg/util/grunning"
	"github.com/benchforge/microbench/pkg/util/timeutil"
	"github.com/cockroachdb/errors"
)

// ThreadTimer accumulates the real (wall-clock), CPU, and manually-reported
// time for a single thread's participation in one timed region. It is not
// safe for concurrent use; each worker thread in RunOne owns exactly one.
type ThreadTimer struct {
	running bool

	realStart time.Time
	cpuStart  time.Duration

	realS   float64
	cpuS    float64
	manualS float64
}

// Start records the current wall-clock and per-thread CPU time and marks the
// timer as running. Calling Start while already running is a fatal check:
// it indicates the harness itself has a bug, not a benchmark body bug, so it
// panics rather than returning an error.
func (t *ThreadTimer) Start() {
	if t.running {
		panic(errors.AssertionFailedf("ThreadTimer.Start called while already running"))
	}
	t.running = true
	t.realStart = timeutil.Now()
	t.cpuStart = grunning.Time()
}

// Stop adds the elapsed real and CPU time since Start into the accumulators
// and clears the running flag. Calling Stop while not running is a fatal
// check.
func (t *ThreadTimer) Stop() {
	if !t.running {
		panic(errors.AssertionFailedf("ThreadTimer.Stop called while not running"))
	}
	t.realS += timeutil.Since(t.realStart).Seconds()
	t.cpuS += grunning.Difference(t.cpuStart, grunning.Time()).Seconds()
	t.running = false
}

// SetIterationTime adds s directly to the manual-time accumulator,
// independent of whether the timer is currently running. This is how a
// benchmark body reports externally-measured durations via
// State.SetIterationTime.
func (t *ThreadTimer) SetIterationTime(s float64) {
	t.manualS += s
}

// Running reports whether the timer is currently between a Start and a
// matching Stop.
func (t *ThreadTimer) Running() bool {
	return t.running
}

// RealSeconds returns the accumulated wall-clock time.
func (t *ThreadTimer) RealSeconds() float64 { return t.realS }

// CPUSeconds returns the accumulated per-thread CPU time.
func (t *ThreadTimer) CPUSeconds() float64 { return t.cpuS }

// ManualSeconds returns the accumulated manually-reported time.
func (t *ThreadTimer) ManualSeconds() float64 { return t.manualS }
