//go:build !linux

package grunning

// nanos is unimplemented outside Linux: getrusage's RUSAGE_THREAD scope is a
// Linux-specific extension. On other platforms Time always reports zero, so
// ThreadTimer's CPU accumulator stays at zero and only wall-clock and
// manual time are measured.
func nanos() int64 { return 0 }

func supported() bool { return false }
