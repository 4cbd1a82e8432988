package microbench

import "github.com/cockroachdb/errors"

// CounterFlag describes how a Counter's raw accumulated value should be
// transformed into its final reported value once a run's totals (iteration
// count, elapsed seconds, thread count) are known.
type CounterFlag uint8

const (
	// CounterFlagDefault reports the raw accumulated value unchanged.
	CounterFlagDefault CounterFlag = 0
	// CounterFlagRate divides the value by the run's elapsed seconds,
	// turning an accumulated count into a per-second rate.
	CounterFlagRate CounterFlag = 1 << iota
	// CounterFlagAvgThreads divides the value by the thread count, turning
	// a summed per-thread value into a per-thread average.
	CounterFlagAvgThreads
	// CounterFlagInvert reports the reciprocal of the value (after any
	// rate/average transform has already been applied).
	CounterFlagInvert
	// CounterFlagIs1024 hints to reporters that this counter's magnitude
	// should be rendered with 1024-based (Ki/Mi/Gi) unit prefixes instead
	// of the default 1000-based ones. It does not affect the stored value.
	CounterFlagIs1024
)

// Counter is a single named, flag-modified accumulator attached to a Run.
// The zero value is a counter with value 0 and CounterFlagDefault.
type Counter struct {
	Value    float64
	Flags    CounterFlag
	finished bool
}

// Is1024 reports whether this counter should be rendered with 1024-based
// magnitude prefixes.
func (c Counter) Is1024() bool {
	return c.Flags&CounterFlagIs1024 != 0
}

// FinishCounters applies each counter's flag-implied transform exactly once,
// given the run totals that were not known while counters were accumulating.
// Calling it a second time on the same map is a programmer error: the
// transform (e.g. dividing by seconds) is not invertible, so a second
// application would silently corrupt the value.
func FinishCounters(counters map[string]Counter, iters uint64, seconds float64, threads int) error {
	for name, c := range counters {
		if c.finished {
			return errors.AssertionFailedf("counter %q: Finish called twice", name)
		}
		if c.Flags&CounterFlagAvgThreads != 0 && threads > 0 {
			c.Value /= float64(threads)
		}
		if c.Flags&CounterFlagRate != 0 {
			if seconds > 0 {
				c.Value /= seconds
			} else {
				c.Value = 0
			}
		}
		if c.Flags&CounterFlagInvert != 0 {
			if c.Value != 0 {
				c.Value = 1.0 / c.Value
			}
		}
		c.finished = true
		counters[name] = c
	}
	return nil
}

// mergeCounters adds src into dst element-wise, keyed by name. Flags are
// taken from whichever side first defines a given name; the two sides are
// expected to agree (each thread runs the same benchmark body).
func mergeCounters(dst map[string]Counter, src map[string]Counter) {
	for name, c := range src {
		existing, ok := dst[name]
		if !ok {
			dst[name] = Counter{Value: c.Value, Flags: c.Flags}
			continue
		}
		existing.Value += c.Value
		dst[name] = existing
	}
}
