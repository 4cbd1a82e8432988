package microbench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeThreadLocalSumsAccumulators(t *testing.T) {
	r := newResult()
	timer := &ThreadTimer{}
	timer.realS, timer.cpuS, timer.manualS = 1, 2, 3

	s := &State{
		bytesProcessed: 10,
		itemsProcessed: 20,
		complexityN:    5,
		counters:       map[string]Counter{"ops": {Value: 1}},
	}
	r.mergeThreadLocal(7, timer, s)

	timer2 := &ThreadTimer{}
	timer2.realS, timer2.cpuS, timer2.manualS = 1, 2, 3
	s2 := &State{
		bytesProcessed: 10,
		itemsProcessed: 20,
		complexityN:    5,
		counters:       map[string]Counter{"ops": {Value: 1}},
	}
	r.mergeThreadLocal(7, timer2, s2)

	require.Equal(t, uint64(14), r.Iterations)
	require.Equal(t, 2.0, r.RealTimeUsed)
	require.Equal(t, 4.0, r.CPUTimeUsed)
	require.Equal(t, 6.0, r.ManualTimeUsed)
	require.Equal(t, int64(20), r.BytesProcessed)
	require.Equal(t, int64(40), r.ItemsProcessed)
	require.Equal(t, 10.0, r.ComplexityN)
	require.Equal(t, 2.0, r.Counters["ops"].Value)
}

func TestMergeThreadLocalExcludesErroredIterationsWhenCalledWithZero(t *testing.T) {
	r := newResult()
	timer := &ThreadTimer{}
	s := &State{errorOccurred: true, errorMessage: "bad"}
	r.mergeThreadLocal(0, timer, s)

	require.Zero(t, r.Iterations)
	require.True(t, r.HasError)
	require.Equal(t, "bad", r.ErrorMessage)
}

func TestNewResultStartsWithEmptyCounters(t *testing.T) {
	r := newResult()
	require.NotNil(t, r.Counters)
	require.Empty(t, r.Counters)
}
