// Package grunning reports CPU time consumed by the calling OS thread.
//
// The measurement is only meaningful for a goroutine that has called
// runtime.LockOSThread and stayed locked to the same OS thread for the
// entire interval being measured; callers are responsible for that locking,
// this package only reads the counter.
package grunning

import "time"

// Time returns the cumulative user+system CPU time consumed so far by the
// calling OS thread. It is monotonic for the lifetime of the thread.
func Time() time.Duration {
	return time.Duration(nanos())
}

// Difference returns end-start, saturating at zero. It exists so callers
// don't need to special-case a clock that is unsupported on the current
// platform (both ends report zero, so the difference is zero too).
func Difference(start, end time.Duration) time.Duration {
	if end < start {
		return 0
	}
	return end - start
}

// Supported reports whether per-thread CPU time is actually available on
// this platform. When false, Time always returns zero and callers should
// fall back to a coarser clock.
func Supported() bool {
	return supported()
}
