package microbench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryExpandsArgsAndThreadsMatrix(t *testing.T) {
	r := NewRegistry()
	r.Register("Bench", func(*State) {}).Arg(1).Arg(2).Threads(1, 2)

	instances, err := r.Instances("")
	require.NoError(t, err)
	require.Len(t, instances, 4)
}

func TestRegistryFilterMatchesDisplayName(t *testing.T) {
	r := NewRegistry()
	r.Register("Alpha", func(*State) {}).Arg(1)
	r.Register("Beta", func(*State) {}).Arg(1)

	instances, err := r.Instances("Alpha")
	require.NoError(t, err)
	require.Len(t, instances, 1)
	require.Equal(t, "Alpha/1", instances[0].DisplayName())
}

func TestRegistryInvalidFilterReturnsError(t *testing.T) {
	r := NewRegistry()
	r.Register("Alpha", func(*State) {})
	_, err := r.Instances("[")
	require.Error(t, err)
}

func TestRegistryLastBenchmarkInstanceOnLargestComplexityN(t *testing.T) {
	r := NewRegistry()
	r.Register("Fam", func(*State) {}).
		Arg(100).Arg(1).Arg(10).
		ReportComplexity(ComplexityON)

	instances, err := r.Instances("")
	require.NoError(t, err)
	require.Len(t, instances, 3)

	// Sorted ascending by ComplexityN regardless of registration order.
	require.Equal(t, 1.0, instances[0].ComplexityN)
	require.Equal(t, 10.0, instances[1].ComplexityN)
	require.Equal(t, 100.0, instances[2].ComplexityN)

	require.False(t, instances[0].LastBenchmarkInstance)
	require.False(t, instances[1].LastBenchmarkInstance)
	require.True(t, instances[2].LastBenchmarkInstance)
}

func TestRegistryNoComplexityNeverSetsLastBenchmarkInstance(t *testing.T) {
	r := NewRegistry()
	r.Register("Plain", func(*State) {}).Arg(1).Arg(2)

	instances, err := r.Instances("")
	require.NoError(t, err)
	for _, inst := range instances {
		require.False(t, inst.LastBenchmarkInstance)
	}
}

func TestDisplayNameIncludesThreadsWhenGreaterThanOne(t *testing.T) {
	inst := Instance{Name: "B", Args: []int{5}, Threads: 4}
	require.Equal(t, "B/5/threads:4", inst.DisplayName())

	single := Instance{Name: "B", Args: []int{5}, Threads: 1}
	require.Equal(t, "B/5", single.DisplayName())
}
