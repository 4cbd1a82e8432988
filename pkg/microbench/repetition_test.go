package microbench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// R repetitions must produce exactly R non-aggregate Run records, with the
// aggregates classified separately.
func TestRunRepetitionsProducesExactlyRNonAggregates(t *testing.T) {
	inst := &Instance{
		Name:        "Repeated",
		Threads:     1,
		Iterations:  10,
		Repetitions: 4,
		Fn: func(s *State) {
			for s.KeepRunning() {
			}
		},
	}

	var family []Run
	nonAggregates, aggregates := runRepetitions(inst, DefaultConfig(), &family)
	require.Len(t, nonAggregates, 4)
	require.NotEmpty(t, aggregates) // mean/median/stddev rows
	for _, r := range nonAggregates {
		require.False(t, r.Aggregate)
	}
	for _, r := range aggregates {
		require.True(t, r.Aggregate)
	}
}

func TestRunRepetitionsDefaultsToOneWhenUnset(t *testing.T) {
	inst := &Instance{
		Name:       "Default",
		Threads:    1,
		Iterations: 5,
		Fn: func(s *State) {
			for s.KeepRunning() {
			}
		},
	}
	var family []Run
	nonAggregates, _ := runRepetitions(inst, DefaultConfig(), &family)
	require.Len(t, nonAggregates, 1)
}

// The family buffer accumulates across instances and the last instance's
// call appends exactly one BigO/RMS pair, then clears it.
func TestRunRepetitionsComplexityFamilyFiresOnLastInstance(t *testing.T) {
	mk := func(n int, last bool) *Instance {
		return &Instance{
			Name:                  "Family",
			Threads:               1,
			Iterations:            10,
			Repetitions:           1,
			Complexity:            ComplexityON,
			ComplexityN:           float64(n),
			LastBenchmarkInstance: last,
			Fn: func(s *State) {
				for s.KeepRunning() {
				}
			},
		}
	}

	var family []Run
	sizes := []int{1, 10, 100, 1000}
	var lastAggregates []Run
	for i, n := range sizes {
		last := i == len(sizes)-1
		_, aggregates := runRepetitions(mk(n, last), DefaultConfig(), &family)
		if !last {
			require.Empty(t, family2AggregateNames(aggregates))
		} else {
			lastAggregates = aggregates
		}
	}

	names := family2AggregateNames(lastAggregates)
	require.Contains(t, names, "Family_BigO")
	require.Contains(t, names, "Family_RMS")
	require.Empty(t, family) // cleared after firing
}

func family2AggregateNames(runs []Run) []string {
	var out []string
	for _, r := range runs {
		if r.Statistics == "BigO" || r.Statistics == "RMS" {
			out = append(out, r.BenchmarkName)
		}
	}
	return out
}
