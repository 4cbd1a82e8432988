package microbench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeBigOFitsLinearFamily(t *testing.T) {
	// Perfectly linear: time_per_iter = 2 * n.
	reports := []Run{
		{ComplexityN: 1, RealAccumulatedTime: 2, Iterations: 1},
		{ComplexityN: 10, RealAccumulatedTime: 20, Iterations: 1},
		{ComplexityN: 100, RealAccumulatedTime: 200, Iterations: 1},
	}

	runs := computeBigO("Fam", TimeUnitNanosecond, reports, ComplexityON, nil)
	require.Len(t, runs, 2)
	require.Equal(t, "Fam_BigO", runs[0].BenchmarkName)
	require.InDelta(t, 2.0, runs[0].RealAccumulatedTime, 1e-6)
	require.Equal(t, "Fam_RMS", runs[1].BenchmarkName)
	require.InDelta(t, 0.0, runs[1].RealAccumulatedTime, 1e-6)
}

func TestComputeBigOEmptyFamilyReturnsNil(t *testing.T) {
	require.Nil(t, computeBigO("Fam", TimeUnitNanosecond, nil, ComplexityON, nil))
}

func TestComputeBigOUserLambda(t *testing.T) {
	reports := []Run{
		{ComplexityN: 2, RealAccumulatedTime: 8, Iterations: 1},
		{ComplexityN: 4, RealAccumulatedTime: 64, Iterations: 1},
	}
	lambda := func(n float64) float64 { return n * n * n }
	runs := computeBigO("Fam", TimeUnitNanosecond, reports, ComplexityLambda, lambda)
	require.Len(t, runs, 2)
	require.InDelta(t, 1.0, runs[0].RealAccumulatedTime, 1e-6)
}

func TestComplexityCurveShapes(t *testing.T) {
	require.Equal(t, 1.0, complexityCurve(ComplexityO1, nil)(50))
	require.Equal(t, 4.0, complexityCurve(ComplexityON2, nil)(2))
	require.Equal(t, 8.0, complexityCurve(ComplexityON3, nil)(2))
	require.Equal(t, 6.0, complexityCurve(ComplexityONFactorial, nil)(3))
}
