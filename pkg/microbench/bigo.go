package microbench

import (
	"math"

	"github.com/guptarohit/asciigraph"
)

// complexityCurve returns the shape function f(n) for a named complexity
// kind, used as the basis ComputeBigO scales by a single fitted
// coefficient.
func complexityCurve(kind ComplexityKind, lambda func(float64) float64) func(float64) float64 {
	switch kind {
	case ComplexityO1:
		return func(float64) float64 { return 1 }
	case ComplexityOLogN:
		return math.Log2
	case ComplexityON:
		return func(n float64) float64 { return n }
	case ComplexityONLogN:
		return func(n float64) float64 { return n * math.Log2(n) }
	case ComplexityON2:
		return func(n float64) float64 { return n * n }
	case ComplexityON3:
		return func(n float64) float64 { return n * n * n }
	case ComplexityO2N:
		return func(n float64) float64 { return math.Exp2(n) }
	case ComplexityONFactorial:
		return func(n float64) float64 {
			f := 1.0
			for i := 2.0; i <= n; i++ {
				f *= i
			}
			return f
		}
	case ComplexityLambda:
		return lambda
	default:
		return func(n float64) float64 { return n }
	}
}

// computeBigO least-squares-fits the declared complexity curve (or the
// family's user-supplied lambda) against the family's
// (complexity_n, real_time_per_iteration) pairs, returning two aggregate
// Runs: the fitted coefficient ("_BigO") and the residual root-mean-square
// error as a fraction of the mean ("_RMS").
func computeBigO(familyName string, timeUnit TimeUnit, reports []Run, kind ComplexityKind, lambda func(float64) float64) []Run {
	n := len(reports)
	if n == 0 {
		return nil
	}

	f := complexityCurve(kind, lambda)

	ns := make([]float64, n)
	ts := make([]float64, n)
	for i, r := range reports {
		ns[i] = r.ComplexityN
		if r.Iterations > 0 {
			ts[i] = r.RealAccumulatedTime / float64(r.Iterations)
		}
	}

	var num, den float64
	for i := range ns {
		fn := f(ns[i])
		num += ts[i] * fn
		den += fn * fn
	}
	coefficient := 0.0
	if den != 0 {
		coefficient = num / den
	}

	var sumSq, sumT float64
	for i := range ns {
		predicted := coefficient * f(ns[i])
		diff := ts[i] - predicted
		sumSq += diff * diff
		sumT += ts[i]
	}
	rms := math.Sqrt(sumSq / float64(n))
	meanT := sumT / float64(n)
	rmsFraction := 0.0
	if meanT != 0 {
		rmsFraction = rms / meanT
	}

	return []Run{
		{
			BenchmarkName:       familyName + "_BigO",
			TimeUnit:            timeUnit,
			RealAccumulatedTime: coefficient,
			CPUAccumulatedTime:  coefficient,
			Complexity:          kind,
			ComplexityLambda:    lambda,
			Statistics:          "BigO",
			ReportLabel:         plotComplexity(ts),
			Aggregate:           true,
		},
		{
			BenchmarkName:       familyName + "_RMS",
			TimeUnit:            timeUnit,
			RealAccumulatedTime: rmsFraction,
			CPUAccumulatedTime:  rmsFraction,
			Complexity:          kind,
			Statistics:          "RMS",
			Aggregate:           true,
		},
	}
}

// plotComplexity renders a small ASCII sparkline of the family's measured
// per-iteration times across growing complexity_n, so the console reporter
// can show the fitted curve's shape alongside the coefficient without a
// graphical plotting dependency.
func plotComplexity(perIterTimes []float64) string {
	if len(perIterTimes) < 2 {
		return ""
	}
	return asciigraph.Plot(perIterTimes, asciigraph.Height(6), asciigraph.Width(40))
}
