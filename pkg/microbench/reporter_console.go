package microbench

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
)

// ConsoleReporter renders Run records as a human-readable table. Color is
// resolved once at construction: explicit on/off wins, auto falls back to a
// TTY check on the output stream.
type ConsoleReporter struct {
	NameWidth int

	out io.Writer
	err io.Writer

	color           bool
	countersTabular bool
}

// NewConsoleReporter constructs a ConsoleReporter writing to out/errw.
// nameWidth should come from DisplayNameFieldWidth. countersTabular selects
// a separate counter table per run instead of inline name=value pairs.
func NewConsoleReporter(out, errw io.Writer, nameWidth int, mode ColorMode, countersTabular bool) *ConsoleReporter {
	return &ConsoleReporter{
		NameWidth:       nameWidth,
		out:             out,
		err:             errw,
		color:           resolveColor(mode, out),
		countersTabular: countersTabular,
	}
}

func resolveColor(mode ColorMode, out io.Writer) bool {
	switch mode {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		if f, ok := out.(*os.File); ok {
			return isatty.IsTerminal(f.Fd())
		}
		return false
	}
}

func (c *ConsoleReporter) ReportContext(ctx ReportContext) bool {
	fmt.Fprintf(c.out, "Running on %d CPUs\n", ctx.NumCPU)
	return true
}

func (c *ConsoleReporter) ReportRuns(runs []Run) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Benchmark", "Time", "CPU", "Iterations", "Label"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColMinWidth(0, c.NameWidth)

	for _, r := range runs {
		label := c.formatErrorOrLabel(r)
		if !c.countersTabular && len(r.Counters) > 0 {
			label = strings.TrimSpace(label + " " + inlineCounters(r))
		}
		table.Append([]string{
			r.BenchmarkName,
			formatTime(r.RealAccumulatedTime, r.Iterations, r.TimeUnit),
			formatTime(r.CPUAccumulatedTime, r.Iterations, r.TimeUnit),
			fmt.Sprintf("%d", r.Iterations),
			label,
		})
	}
	table.Render()

	if c.countersTabular {
		for _, r := range runs {
			if len(r.Counters) > 0 {
				c.printCounters(r)
			}
		}
	}
}

// ansiRed/ansiReset wrap error text in red when the reporter has detected a
// color-capable terminal.
const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

func (c *ConsoleReporter) formatErrorOrLabel(r Run) string {
	if !r.ErrorOccurred {
		return r.ReportLabel
	}
	msg := "ERROR: " + r.ErrorMessage
	if c.color {
		return ansiRed + msg + ansiReset
	}
	return msg
}

func sortedCounterNames(counters map[string]Counter) []string {
	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func inlineCounters(r Run) string {
	parts := make([]string, 0, len(r.Counters))
	for _, name := range sortedCounterNames(r.Counters) {
		parts = append(parts, fmt.Sprintf("%s=%g", name, r.Counters[name].Value))
	}
	return strings.Join(parts, " ")
}

func (c *ConsoleReporter) printCounters(r Run) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"counter", "value"})
	table.SetBorder(false)
	for _, name := range sortedCounterNames(r.Counters) {
		table.Append([]string{name, fmt.Sprintf("%g", r.Counters[name].Value)})
	}
	table.Render()
}

func (c *ConsoleReporter) Finalize() {}

func (c *ConsoleReporter) Out() io.Writer { return c.out }
func (c *ConsoleReporter) Err() io.Writer { return c.err }

func formatTime(seconds float64, iterations uint64, unit TimeUnit) string {
	if iterations == 0 {
		return "0 " + unit.String() + "/op"
	}
	perOp := seconds / float64(iterations) / unit.Divisor()
	return fmt.Sprintf("%.2f %s/op", perOp, unit.String())
}
