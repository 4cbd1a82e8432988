package microbench

import (
	"regexp"
	"sort"

	"github.com/cockroachdb/errors"
)

// Registry holds registered benchmark functions and expands them into
// concrete Instances for the orchestrator to iterate over.
type Registry struct {
	builders []*Builder
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a benchmark function under name and returns a Builder for
// configuring its argument/thread matrix and flags.
func (r *Registry) Register(name string, fn func(*State)) *Builder {
	b := &Builder{
		name:     name,
		fn:       fn,
		threads:  []int{1},
		timeUnit: TimeUnitNanosecond,
	}
	r.builders = append(r.builders, b)
	return b
}

// Instances expands every registered Builder into its (args × threads)
// matrix of Instances, filtered by the filter regexp (matched against each
// Instance's display name). Builders are visited in registration order;
// each builder's instances are ordered by first argument, ascending.
func (r *Registry) Instances(filter string) ([]Instance, error) {
	if filter == "" || filter == "all" {
		filter = "."
	}
	re, err := regexp.Compile(filter)
	if err != nil {
		return nil, errors.Wrapf(err, "benchmark_filter: invalid regexp %q", filter)
	}

	var out []Instance
	for _, b := range r.builders {
		family := b.expand()
		for i := range family {
			if re.MatchString(family[i].DisplayName()) {
				out = append(out, family[i])
			}
		}
	}
	return out, nil
}

// Builder configures one registered benchmark function's argument/thread
// matrix before Registry.Instances expands it. Calls are chainable.
type Builder struct {
	name string
	fn   func(*State)

	argSets [][]int
	threads []int

	iterations  uint64
	repetitions int
	minTime     float64

	useManualTime bool
	useRealTime   bool

	timeUnit TimeUnit

	complexity       ComplexityKind
	complexityLambda func(float64) float64

	userStats []UserStat

	aggregationReportMode AggregationReportMode
}

// Arg adds one point (a single-argument tuple) to the argument matrix.
func (b *Builder) Arg(n int) *Builder {
	b.argSets = append(b.argSets, []int{n})
	return b
}

// ArgPairs adds one (x, y) tuple to the argument matrix.
func (b *Builder) ArgPairs(x, y int) *Builder {
	b.argSets = append(b.argSets, []int{x, y})
	return b
}

// Threads sets the thread counts this benchmark should be measured at; the
// Builder expands one Instance per (arg, thread) combination.
func (b *Builder) Threads(t ...int) *Builder {
	b.threads = append([]int(nil), t...)
	return b
}

// Iterations fixes the iteration count, bypassing the convergence loop.
func (b *Builder) Iterations(n uint64) *Builder {
	b.iterations = n
	return b
}

// Repetitions overrides Config.Repetitions for this benchmark.
func (b *Builder) Repetitions(n int) *Builder {
	b.repetitions = n
	return b
}

// MinTime overrides Config.MinTime for this benchmark.
func (b *Builder) MinTime(seconds float64) *Builder {
	b.minTime = seconds
	return b
}

// UseManualTime selects manual time as the authoritative measurement.
func (b *Builder) UseManualTime() *Builder {
	b.useManualTime = true
	return b
}

// UseRealTime selects wall-clock time as the authoritative measurement
// (instead of CPU time).
func (b *Builder) UseRealTime() *Builder {
	b.useRealTime = true
	return b
}

// Unit sets the time unit Run records should be rendered in.
func (b *Builder) Unit(u TimeUnit) *Builder {
	b.timeUnit = u
	return b
}

// ReportComplexity marks this benchmark as part of a complexity family
// fitted against kind once the family's last instance runs.
func (b *Builder) ReportComplexity(kind ComplexityKind) *Builder {
	b.complexity = kind
	return b
}

// ComplexityLambda supplies the curve function for ComplexityLambda kind.
func (b *Builder) ComplexityLambda(f func(n float64) float64) *Builder {
	b.complexity = ComplexityLambda
	b.complexityLambda = f
	return b
}

// ReportStatistics registers an additional user-defined aggregate
// statistic, computed the same way as the built-in mean/stddev.
func (b *Builder) ReportStatistics(name string, reduce func([]float64) float64) *Builder {
	b.userStats = append(b.userStats, UserStat{Name: name, Reduce: reduce})
	return b
}

// SetAggregationReportMode overrides Config's aggregation suppression
// flags for this benchmark only.
func (b *Builder) SetAggregationReportMode(mode AggregationReportMode) *Builder {
	b.aggregationReportMode = mode
	return b
}

// expand produces one Instance per (arg, thread) combination, with
// LastBenchmarkInstance set on the final instance when this builder
// reports complexity (each Builder is its own family: a family is one
// registered benchmark function measured across growing arg sizes).
func (b *Builder) expand() []Instance {
	argSets := b.argSets
	if len(argSets) == 0 {
		argSets = [][]int{nil}
	}
	threads := b.threads
	if len(threads) == 0 {
		threads = []int{1}
	}

	// Complexity families are ordered by ComplexityN, which defaults to
	// the first argument; sort ascending so LastBenchmarkInstance lands on
	// the largest N regardless of registration order.
	sorted := append([][]int(nil), argSets...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return complexityNOf(sorted[i]) < complexityNOf(sorted[j])
	})

	var out []Instance
	for ai, args := range sorted {
		for _, t := range threads {
			out = append(out, Instance{
				Name:                  b.name,
				Fn:                    b.fn,
				Args:                  args,
				Threads:               t,
				Iterations:            b.iterations,
				Repetitions:           b.repetitions,
				MinTime:               b.minTime,
				UseManualTime:         b.useManualTime,
				UseRealTime:           b.useRealTime,
				TimeUnit:              b.timeUnit,
				Complexity:            b.complexity,
				ComplexityN:           complexityNOf(args),
				ComplexityLambda:      b.complexityLambda,
				UserStats:             b.userStats,
				AggregationReportMode: b.aggregationReportMode,
				LastBenchmarkInstance: b.complexity != ComplexityNone && ai == len(sorted)-1 && t == threads[len(threads)-1],
			})
		}
	}
	return out
}

func complexityNOf(args []int) float64 {
	if len(args) == 0 {
		return 0
	}
	return float64(args[0])
}
