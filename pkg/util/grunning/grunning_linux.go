//go:build linux

package grunning

import "syscall"

// nanos reads CLOCK_THREAD_CPUTIME-equivalent accounting for the calling OS
// thread via getrusage(RUSAGE_THREAD). The caller must have already pinned
// the calling goroutine to its OS thread with runtime.LockOSThread, or the
// value silently describes whichever thread happens to be running this
// goroutine at the moment of the call.
func nanos() int64 {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_THREAD, &ru); err != nil {
		return 0
	}
	return ru.Utime.Nano() + ru.Stime.Nano()
}

func supported() bool { return true }
