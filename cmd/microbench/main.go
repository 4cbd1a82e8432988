// Command microbench runs a registry of benchmark functions through the
// microbench execution engine and reports the results: a cobra root command
// wiring a pflag surface, with SilenceUsage/SilenceErrors so errors are
// reported once through our own diagnostic path instead of cobra's default
// usage dump.
package main

import (
	"context"
	"os"

	"github.com/benchforge/microbench/internal/logutil"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logutil.Errorf(context.Background(), "%v", err)
		os.Exit(1)
	}
}
