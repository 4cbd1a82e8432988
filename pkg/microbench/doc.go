// Package microbench implements a microbenchmark execution engine: given a
// registry of benchmark functions parameterized by arguments and a thread
// count, it converges on an iteration count that produces a statistically
// meaningful measurement, runs that measurement across one or more
// coordinated worker threads, repeats it to compute summary statistics and
// complexity fits, and hands the resulting records to pluggable reporters.
package microbench
