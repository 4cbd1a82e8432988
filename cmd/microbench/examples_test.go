package main

import (
	"testing"

	"github.com/benchforge/microbench/pkg/microbench"
	"github.com/stretchr/testify/require"
)

func TestRegisterExampleBenchmarksExpandsToInstances(t *testing.T) {
	r := microbench.NewRegistry()
	registerExampleBenchmarks(r)

	instances, err := r.Instances("")
	require.NoError(t, err)
	require.NotEmpty(t, instances)

	names := map[string]bool{}
	for _, inst := range instances {
		names[inst.Name] = true
	}
	require.True(t, names["BenchmarkNoop"])
	require.True(t, names["BenchmarkCounterSum"])
	require.True(t, names["BenchmarkManualSleep"])
	require.True(t, names["BenchmarkSumToN"])
}

func TestRegisterExampleBenchmarksFilterNarrowsSelection(t *testing.T) {
	r := microbench.NewRegistry()
	registerExampleBenchmarks(r)

	instances, err := r.Instances("^BenchmarkNoop$")
	require.NoError(t, err)
	require.Len(t, instances, 1)
}
