package microbench

// runRepetitions drives the convergence loop R times for one benchmark
// instance (R = inst.Repetitions if set, else cfg.Repetitions), collecting
// one non-aggregate Run per repetition plus the aggregate Runs computed
// over them. familyReports accumulates complexity-fit inputs across all
// instances of a complexity family (same name, growing ComplexityN); it is
// cleared once inst.LastBenchmarkInstance triggers the family's BigO fit.
func runRepetitions(inst *Instance, cfg Config, familyReports *[]Run) (nonAggregates, aggregates []Run) {
	reps := inst.Repetitions
	if reps == 0 {
		reps = cfg.Repetitions
	}
	if reps <= 0 {
		reps = 1
	}

	var iters uint64
	nonAggregates = make([]Run, 0, reps)
	for rep := 0; rep < reps; rep++ {
		result, nextIters := runConvergence(inst, cfg, iters, rep == 0)
		iters = nextIters

		memResult := runMemoryMeasurement(inst, iters)
		run := createRunReport(inst, result, memResult)
		nonAggregates = append(nonAggregates, run)

		if !result.HasError && inst.Complexity != ComplexityNone {
			*familyReports = append(*familyReports, run)
		}
	}

	aggregates = computeStats(inst, nonAggregates)
	if inst.Complexity != ComplexityNone && inst.LastBenchmarkInstance {
		aggregates = append(aggregates, computeBigO(inst.Name, inst.TimeUnit, *familyReports, inst.Complexity, inst.ComplexityLambda)...)
		*familyReports = nil
	}

	return nonAggregates, aggregates
}
