package microbench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState(maxIters uint64, threads int, idx int) (*State, *ThreadManager) {
	m := NewThreadManager(threads)
	timer := &ThreadTimer{}
	s := NewState(maxIters, []int{7}, idx, threads, timer, m)
	return s, m
}

func TestKeepRunningCountsDownExactly(t *testing.T) {
	s, _ := newTestState(5, 1, 0)

	count := 0
	for s.KeepRunning() {
		count++
	}
	require.Equal(t, 5, count)
	require.True(t, s.finished)
	require.True(t, s.started)
}

func TestNewStateRejectsZeroMaxIterations(t *testing.T) {
	require.Panics(t, func() {
		NewState(0, nil, 0, 1, &ThreadTimer{}, NewThreadManager(1))
	})
}

func TestPauseResumeTiming(t *testing.T) {
	s, _ := newTestState(3, 1, 0)
	require.True(t, s.KeepRunning())
	s.PauseTiming()
	require.False(t, s.timer.Running())
	s.ResumeTiming()
	require.True(t, s.timer.Running())
	for s.KeepRunning() {
	}
}

func TestResumeTimingAfterErrorPanics(t *testing.T) {
	s, _ := newTestState(3, 1, 0)
	require.True(t, s.KeepRunning())
	s.SkipWithError("boom")
	require.Panics(t, func() { s.ResumeTiming() })
}

func TestPauseTimingAfterErrorIsNoop(t *testing.T) {
	s, _ := newTestState(3, 1, 0)
	require.True(t, s.KeepRunning())
	s.SkipWithError("boom")
	require.NotPanics(t, func() { s.PauseTiming() })
}

func TestSkipWithErrorZeroesRemainingIterations(t *testing.T) {
	s, m := newTestState(10, 1, 0)
	require.True(t, s.KeepRunning())
	require.True(t, s.KeepRunning())
	s.SkipWithError("bad thing")
	require.False(t, s.KeepRunning())
	require.True(t, s.errorOccurred)

	require.True(t, m.Result().HasError)
	require.Equal(t, "bad thing", m.Result().ErrorMessage)
}

func TestSkipWithErrorFirstWriterWins(t *testing.T) {
	m := NewThreadManager(2)
	s1 := NewState(5, nil, 0, 2, &ThreadTimer{}, m)
	s2 := NewState(5, nil, 1, 2, &ThreadTimer{}, m)

	s1.SkipWithError("first")
	s2.SkipWithError("second")

	require.Equal(t, "first", m.Result().ErrorMessage)
}

func TestSetLabelLastWriterWins(t *testing.T) {
	s, m := newTestState(2, 1, 0)
	s.SetLabel("one")
	s.SetLabel("two")
	require.Equal(t, "two", m.Result().ReportLabel)
	require.Equal(t, "two", s.reportLabel)
}

func TestArgsReturnsCopy(t *testing.T) {
	s, _ := newTestState(1, 1, 0)
	args := s.Args()
	args[0] = 999
	require.Equal(t, []int{7}, s.Args())
}

func TestSkipWithErrorBeforeFirstKeepRunning(t *testing.T) {
	s, m := newTestState(10, 1, 0)
	s.SkipWithError("early")

	// The first KeepRunning call still performs the start transition, but
	// the iteration budget stays zeroed and the timer never starts.
	require.False(t, s.KeepRunning())
	require.True(t, s.finished)
	require.False(t, s.timer.Running())
	require.True(t, m.Result().HasError)
	require.Equal(t, "early", m.Result().ErrorMessage)
}
