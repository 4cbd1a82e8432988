package microbench

import "github.com/montanaflynn/stats"

// computeStats reduces the non-aggregate Runs of one repetition driver
// invocation into one aggregate Run per statistic: built-in
// mean/median/stddev plus the instance's user-defined reducers. Errored
// repetitions carry no usable timing and are excluded from the samples.
func computeStats(inst *Instance, runs []Run) []Run {
	if len(runs) == 0 {
		return nil
	}

	realPerIter := make([]float64, 0, len(runs))
	cpuPerIter := make([]float64, 0, len(runs))
	bytesPerSec := make([]float64, 0, len(runs))
	itemsPerSec := make([]float64, 0, len(runs))
	for _, r := range runs {
		if r.ErrorOccurred || r.Iterations == 0 {
			continue
		}
		realPerIter = append(realPerIter, r.RealAccumulatedTime/float64(r.Iterations))
		cpuPerIter = append(cpuPerIter, r.CPUAccumulatedTime/float64(r.Iterations))
		bytesPerSec = append(bytesPerSec, r.BytesPerSecond)
		itemsPerSec = append(itemsPerSec, r.ItemsPerSecond)
	}
	if len(realPerIter) == 0 {
		return nil
	}

	type namedReducer struct {
		name   string
		reduce func([]float64) float64
	}
	reducers := []namedReducer{
		{"mean", reduceMean},
		{"median", reduceMedian},
		{"stddev", reduceStdDev},
	}
	for _, us := range inst.UserStats {
		reducers = append(reducers, namedReducer{us.Name, us.Reduce})
	}

	template := runs[len(runs)-1]
	aggregates := make([]Run, 0, len(reducers))
	for _, red := range reducers {
		iters := template.Iterations
		real := red.reduce(realPerIter) * float64(iters)
		cpu := red.reduce(cpuPerIter) * float64(iters)
		aggregates = append(aggregates, Run{
			BenchmarkName:       inst.DisplayName() + "_" + red.name,
			Iterations:          iters,
			TimeUnit:            inst.TimeUnit,
			RealAccumulatedTime: real,
			CPUAccumulatedTime:  cpu,
			BytesPerSecond:      red.reduce(bytesPerSec),
			ItemsPerSecond:      red.reduce(itemsPerSec),
			Statistics:          red.name,
			Aggregate:           true,
		})
	}
	return aggregates
}

func reduceMean(xs []float64) float64 {
	v, err := stats.Mean(stats.Float64Data(xs))
	if err != nil {
		return 0
	}
	return v
}

func reduceMedian(xs []float64) float64 {
	v, err := stats.Median(stats.Float64Data(xs))
	if err != nil {
		return 0
	}
	return v
}

func reduceStdDev(xs []float64) float64 {
	v, err := stats.StandardDeviationPopulation(stats.Float64Data(xs))
	if err != nil {
		return 0
	}
	return v
}
