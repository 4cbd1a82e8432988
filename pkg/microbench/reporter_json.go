package microbench

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"
)

// JSONReporter writes one newline-delimited JSON object per Run, wrapped
// with a run-correlation id emitted once from ReportContext so a consumer
// can associate every record in the stream with a single invocation.
type JSONReporter struct {
	out io.Writer
	err io.Writer
	enc *json.Encoder

	runID string
}

// NewJSONReporter constructs a JSONReporter writing to out/errw.
func NewJSONReporter(out, errw io.Writer) *JSONReporter {
	return &JSONReporter{out: out, err: errw, enc: json.NewEncoder(out)}
}

type jsonContext struct {
	RunID  string `json:"run_id"`
	NumCPU int    `json:"num_cpu"`
}

type jsonCounter struct {
	Value float64 `json:"value"`
}

type jsonRun struct {
	Name                string                 `json:"name"`
	ErrorOccurred       bool                   `json:"error_occurred,omitempty"`
	ErrorMessage        string                 `json:"error_message,omitempty"`
	Label               string                 `json:"label,omitempty"`
	Iterations          uint64                 `json:"iterations"`
	TimeUnit            string                 `json:"time_unit"`
	RealAccumulatedTime float64                `json:"real_accumulated_time"`
	CPUAccumulatedTime  float64                `json:"cpu_accumulated_time"`
	BytesPerSecond      float64                `json:"bytes_per_second,omitempty"`
	ItemsPerSecond      float64                `json:"items_per_second,omitempty"`
	ComplexityN         float64                `json:"complexity_n,omitempty"`
	Complexity          string                 `json:"complexity,omitempty"`
	Statistics          string                 `json:"statistics,omitempty"`
	Counters            map[string]jsonCounter `json:"counters,omitempty"`
	HasMemoryResult     bool                   `json:"has_memory_result,omitempty"`
	AllocsPerIter       float64                `json:"allocs_per_iter,omitempty"`
	MaxBytesUsed        int64                  `json:"max_bytes_used,omitempty"`
	Aggregate           bool                   `json:"aggregate,omitempty"`
	RunID               string                 `json:"run_id"`
}

func (j *JSONReporter) ReportContext(ctx ReportContext) bool {
	j.runID = uuid.NewString()
	return j.enc.Encode(jsonContext{RunID: j.runID, NumCPU: ctx.NumCPU}) == nil
}

func (j *JSONReporter) ReportRuns(runs []Run) {
	for _, r := range runs {
		counters := make(map[string]jsonCounter, len(r.Counters))
		for name, c := range r.Counters {
			counters[name] = jsonCounter{Value: c.Value}
		}
		_ = j.enc.Encode(jsonRun{
			Name:                r.BenchmarkName,
			ErrorOccurred:       r.ErrorOccurred,
			ErrorMessage:        r.ErrorMessage,
			Label:               r.ReportLabel,
			Iterations:          r.Iterations,
			TimeUnit:            r.TimeUnit.String(),
			RealAccumulatedTime: r.RealAccumulatedTime,
			CPUAccumulatedTime:  r.CPUAccumulatedTime,
			BytesPerSecond:      r.BytesPerSecond,
			ItemsPerSecond:      r.ItemsPerSecond,
			ComplexityN:         r.ComplexityN,
			Complexity:          r.Complexity.String(),
			Statistics:          r.Statistics,
			Counters:            counters,
			HasMemoryResult:     r.HasMemoryResult,
			AllocsPerIter:       r.AllocsPerIter,
			MaxBytesUsed:        r.MaxBytesUsed,
			Aggregate:           r.Aggregate,
			RunID:               j.runID,
		})
	}
}

func (j *JSONReporter) Finalize() {}

func (j *JSONReporter) Out() io.Writer { return j.out }
func (j *JSONReporter) Err() io.Writer { return j.err }
