package microbench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateRunReportUsesManualTimeWhenRequested(t *testing.T) {
	inst := &Instance{Name: "B", UseManualTime: true, TimeUnit: TimeUnitMillisecond}
	result := &Result{RealTimeUsed: 1, ManualTimeUsed: 2, CPUTimeUsed: 3, Iterations: 10}

	run := createRunReport(inst, result, nil)
	require.Equal(t, 2.0, run.RealAccumulatedTime)
	require.Equal(t, 3.0, run.CPUAccumulatedTime)
	require.False(t, run.HasMemoryResult)
}

func TestCreateRunReportComputesRatesWhenPositive(t *testing.T) {
	inst := &Instance{Name: "B"}
	result := &Result{RealTimeUsed: 4, CPUTimeUsed: 2, BytesProcessed: 100, ItemsProcessed: 50, Iterations: 1}

	// Rates divide by the authoritative measurement (CPU time for a
	// default benchmark), not wall time.
	run := createRunReport(inst, result, nil)
	require.Equal(t, 50.0, run.BytesPerSecond)
	require.Equal(t, 25.0, run.ItemsPerSecond)
}

func TestCreateRunReportRatesAreZeroWhenSecondsNonPositive(t *testing.T) {
	inst := &Instance{Name: "B"}
	result := &Result{RealTimeUsed: 0, BytesProcessed: 100, ItemsProcessed: 50, Iterations: 1}

	run := createRunReport(inst, result, nil)
	require.Zero(t, run.BytesPerSecond)
	require.Zero(t, run.ItemsPerSecond)
}

func TestCreateRunReportIncludesMemoryResult(t *testing.T) {
	inst := &Instance{Name: "B"}
	result := &Result{RealTimeUsed: 1, Iterations: 100}
	mem := &MemoryResult{NumAllocs: 8, MaxBytesUsed: 1024, iterations: 4}

	run := createRunReport(inst, result, mem)
	require.True(t, run.HasMemoryResult)
	// Allocations are normalized by the memory re-run's own iteration
	// count, not the converged measurement's.
	require.Equal(t, 2.0, run.AllocsPerIter)
	require.Equal(t, int64(1024), run.MaxBytesUsed)
}

func TestCreateRunReportCarriesErrorState(t *testing.T) {
	inst := &Instance{Name: "B"}
	result := &Result{HasError: true, ErrorMessage: "boom"}

	run := createRunReport(inst, result, nil)
	require.True(t, run.ErrorOccurred)
	require.Equal(t, "boom", run.ErrorMessage)
}
