package microbench

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVReporter writes a header row on the first ReportRuns call, then one
// row per Run thereafter.
type CSVReporter struct {
	out io.Writer
	err io.Writer
	w   *csv.Writer

	wroteHeader bool
}

// NewCSVReporter constructs a CSVReporter writing to out/errw.
func NewCSVReporter(out, errw io.Writer) *CSVReporter {
	return &CSVReporter{out: out, err: errw, w: csv.NewWriter(out)}
}

var csvHeader = []string{
	"name", "error_occurred", "error_message", "label", "iterations",
	"time_unit", "real_time", "cpu_time", "bytes_per_second",
	"items_per_second", "complexity_n", "complexity", "statistics",
}

func (c *CSVReporter) ReportContext(ReportContext) bool {
	return true
}

func (c *CSVReporter) ReportRuns(runs []Run) {
	if !c.wroteHeader {
		_ = c.w.Write(csvHeader)
		c.wroteHeader = true
	}
	for _, r := range runs {
		_ = c.w.Write([]string{
			r.BenchmarkName,
			strconv.FormatBool(r.ErrorOccurred),
			r.ErrorMessage,
			r.ReportLabel,
			strconv.FormatUint(r.Iterations, 10),
			r.TimeUnit.String(),
			strconv.FormatFloat(r.RealAccumulatedTime, 'g', -1, 64),
			strconv.FormatFloat(r.CPUAccumulatedTime, 'g', -1, 64),
			strconv.FormatFloat(r.BytesPerSecond, 'g', -1, 64),
			strconv.FormatFloat(r.ItemsPerSecond, 'g', -1, 64),
			strconv.FormatFloat(r.ComplexityN, 'g', -1, 64),
			r.Complexity.String(),
			r.Statistics,
		})
	}
	c.w.Flush()
}

func (c *CSVReporter) Finalize() {
	c.w.Flush()
}

func (c *CSVReporter) Out() io.Writer { return c.out }
func (c *CSVReporter) Err() io.Writer { return c.err }
