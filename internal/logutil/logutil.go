// Package logutil provides ctx-first logging for diagnostics that are not
// fatal and not benchmark errors: a reporter refusing ReportContext, a
// skipped benchmark, CLI-level warnings.
package logutil

import (
	"context"
	"fmt"
	"log"
	"os"
)

var std = log.New(os.Stderr, "", log.LstdFlags)

// Infof logs an informational message. ctx is accepted for future trace-id
// propagation; it is not read yet.
func Infof(ctx context.Context, format string, args ...interface{}) {
	_ = ctx
	std.Output(2, "INFO  "+fmt.Sprintf(format, args...))
}

// Errorf logs an error-level message.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	_ = ctx
	std.Output(2, "ERROR "+fmt.Sprintf(format, args...))
}

// Fatalf logs an error-level message and terminates the process with exit
// code 1. Reserved for configuration errors; benchmark errors travel
// through Run records instead.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	_ = ctx
	std.Output(2, "FATAL "+fmt.Sprintf(format, args...))
	os.Exit(1)
}
