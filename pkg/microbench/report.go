package microbench

import "github.com/cockroachdb/errors"

// Run is the immutable result record handed to reporters: one per
// convergence-loop report (non-aggregate), plus zero or more aggregate
// records produced by ComputeStats/ComputeBigO.
type Run struct {
	BenchmarkName string
	ErrorOccurred bool
	ErrorMessage  string
	ReportLabel   string

	Iterations uint64
	TimeUnit   TimeUnit

	RealAccumulatedTime float64
	CPUAccumulatedTime  float64

	BytesPerSecond float64
	ItemsPerSecond float64

	ComplexityN      float64
	Complexity       ComplexityKind
	ComplexityLambda func(n float64) float64

	// Statistics names the aggregate statistic this Run represents, e.g.
	// "mean" or "stddev"; empty for a non-aggregate Run.
	Statistics string
	Counters   map[string]Counter

	HasMemoryResult bool
	AllocsPerIter   float64
	MaxBytesUsed    int64

	// Aggregate marks a Run produced by ComputeStats/ComputeBigO rather
	// than directly by the convergence loop.
	Aggregate bool
}

// createRunReport builds the non-aggregate Run record for one converged
// measurement. RealAccumulatedTime carries manual time when the instance
// declared it authoritative, else wall-clock time; both arrive already
// averaged across threads, while CPUAccumulatedTime stays a cross-thread
// sum.
func createRunReport(inst *Instance, result *Result, memResult *MemoryResult) Run {
	run := Run{
		BenchmarkName:      inst.DisplayName(),
		ErrorOccurred:      result.HasError,
		ErrorMessage:       result.ErrorMessage,
		ReportLabel:        result.ReportLabel,
		Iterations:         result.Iterations,
		TimeUnit:           inst.TimeUnit,
		CPUAccumulatedTime: result.CPUTimeUsed,
		ComplexityN:        inst.ComplexityN,
		Complexity:         inst.Complexity,
		ComplexityLambda:   inst.ComplexityLambda,
		Counters:           result.Counters,
	}

	if inst.UseManualTime {
		run.RealAccumulatedTime = result.ManualTimeUsed
	} else {
		run.RealAccumulatedTime = result.RealTimeUsed
	}

	seconds := authoritativeSeconds(inst, result)
	if result.BytesProcessed > 0 && seconds > 0 {
		run.BytesPerSecond = float64(result.BytesProcessed) / seconds
	}
	if result.ItemsProcessed > 0 && seconds > 0 {
		run.ItemsPerSecond = float64(result.ItemsProcessed) / seconds
	}

	if !result.HasError {
		// The Result is fresh per measurement, so its counters cannot have
		// been finished already; a second Finish here means the harness
		// itself reused a Result.
		if err := FinishCounters(run.Counters, result.Iterations, authoritativeSeconds(inst, result), inst.Threads); err != nil {
			panic(errors.Wrap(err, "finishing counters"))
		}
	}

	if memResult != nil {
		run.HasMemoryResult = true
		if memResult.iterations > 0 {
			run.AllocsPerIter = float64(memResult.NumAllocs) / float64(memResult.iterations)
		}
		run.MaxBytesUsed = memResult.MaxBytesUsed
	}

	return run
}

// authoritativeSeconds returns the measurement the instance declared
// authoritative, the same selection the convergence loop uses to judge
// significance.
func authoritativeSeconds(inst *Instance, result *Result) float64 {
	switch {
	case inst.UseManualTime:
		return result.ManualTimeUsed
	case inst.UseRealTime:
		return result.RealTimeUsed
	default:
		return result.CPUTimeUsed
	}
}
