package microbench

import "math"

// iMax is the iteration ceiling the convergence loop never exceeds,
// regardless of how far the measured duration falls short of MinTime.
const iMax = 1_000_000_000

// machineEpsilon is used by isZero to classify a float as indistinguishable
// from zero.
const machineEpsilon = 2.220446049250313e-16

// isZero reports whether x is within machine epsilon of zero.
func isZero(x float64) bool {
	return math.Abs(x) < machineEpsilon
}

// runConvergence repeats runOne with a growing iteration count until the
// measured duration is judged significant relative to minTime, capped at
// iMax iterations. The growth arithmetic deliberately keeps two
// overlapping tie-breaks — the multiplier<=1 floor and the
// max(multiplier*iters, iters+1) clause — because both are needed to
// reproduce the same converged count for every input. When
// inst.Iterations != 0 the break condition fires on the very first run,
// before any multiplier is computed. Fixed-iteration benchmarks are
// therefore never re-run, even on error.
//
// iters carries the previously-converged iteration count from repetition to
// repetition of the same instance: only the first repetition searches for a
// good iteration count, and subsequent repetitions reuse it and report
// immediately, on the grounds that repetitions of the same instance cost
// about the same. isFirstRepetition selects that behavior; runConvergence
// returns the Result plus the (possibly grown) iters for the caller to pass
// into the next repetition.
func runConvergence(inst *Instance, cfg Config, iters uint64, isFirstRepetition bool) (*Result, uint64) {
	if inst.Iterations != 0 {
		iters = inst.Iterations
	} else if iters == 0 {
		iters = 1
	}

	for {
		result := runOne(inst, iters)

		seconds := authoritativeSeconds(inst, result)

		minTime := inst.MinTime
		if isZero(minTime) {
			minTime = cfg.MinTime
		}

		shouldReport := !isFirstRepetition ||
			inst.Iterations != 0 ||
			result.HasError ||
			iters >= iMax ||
			seconds >= minTime ||
			(result.RealTimeUsed >= 5*minTime && !inst.UseManualTime)

		if shouldReport {
			return result, iters
		}

		multiplier := minTime * 1.4 / math.Max(seconds, 1e-9)
		if seconds/minTime <= 0.1 {
			multiplier = math.Min(10, multiplier)
		}
		if multiplier <= 1 {
			multiplier = 2
		}
		next := math.Max(multiplier*float64(iters), float64(iters+1))
		iters = uint64(math.Min(math.Round(next), iMax))
	}
}
