// Package timeutil wraps the standard time package behind an indirection
// that the rest of the repository is expected to use instead of calling
// time.Now/time.Since directly, so the notion of "now" stays swappable at a
// single seam.
package timeutil

import "time"

// Now returns the current local time, wrapping time.Now.
func Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t, wrapping time.Since.
func Since(t time.Time) time.Duration {
	return Now().Sub(t)
}
