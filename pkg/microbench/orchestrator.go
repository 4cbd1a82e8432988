package microbench

import "runtime"

// Orchestrator drives a filtered list of benchmark instances through the
// repetition driver and funnels the resulting Run records to a display
// reporter and an optional file reporter.
type Orchestrator struct {
	Config  Config
	Display Reporter
	File    Reporter
}

// Run executes every instance in instances, in order, reporting
// non-aggregate and aggregate Runs to Display and (if non-nil) File. It
// returns false if either reporter's ReportContext refused the run (the
// caller should treat that as a configuration error), in which case both
// reporters still receive Finalize.
func (o *Orchestrator) Run(instances []Instance) bool {
	ctx := ReportContext{Config: o.Config, NumCPU: runtime.NumCPU()}

	if !o.Display.ReportContext(ctx) {
		o.Display.Finalize()
		if o.File != nil {
			o.File.Finalize()
		}
		return false
	}
	if o.File != nil && !o.File.ReportContext(ctx) {
		o.Display.Finalize()
		o.File.Finalize()
		return false
	}

	var familyReports []Run
	for _, inst := range instances {
		inst := inst
		nonAggregates, aggregates := runRepetitions(&inst, o.Config, &familyReports)

		o.dispatch(inst, nonAggregates, aggregates)
	}

	o.Display.Finalize()
	flush(o.Display.Out())
	flush(o.Display.Err())
	if o.File != nil {
		o.File.Finalize()
		flush(o.File.Out())
		flush(o.File.Err())
	}
	return true
}

type reporterDispatch struct {
	r          Reporter
	suppressed bool
}

func (o *Orchestrator) dispatch(inst Instance, nonAggregates, aggregates []Run) {
	reporters := []reporterDispatch{
		{o.Display, o.displayAggregatesOnly(inst)},
	}
	if o.File != nil {
		reporters = append(reporters, reporterDispatch{o.File, o.fileAggregatesOnly(inst)})
	}

	for _, rep := range reporters {
		if !rep.suppressed && len(nonAggregates) > 0 {
			rep.r.ReportRuns(nonAggregates)
			flush(rep.r.Out())
			flush(rep.r.Err())
		}
		if len(aggregates) > 0 {
			rep.r.ReportRuns(aggregates)
			flush(rep.r.Out())
			flush(rep.r.Err())
		}
	}
}

func (o *Orchestrator) displayAggregatesOnly(inst Instance) bool {
	if inst.AggregationReportMode&AggregationDisplayAggregatesOnly != 0 {
		return true
	}
	if inst.AggregationReportMode != AggregationReportDefault {
		return false
	}
	return o.Config.ReportAggregatesOnly || o.Config.DisplayAggregatesOnly
}

func (o *Orchestrator) fileAggregatesOnly(inst Instance) bool {
	if inst.AggregationReportMode&AggregationFileAggregatesOnly != 0 {
		return true
	}
	if inst.AggregationReportMode != AggregationReportDefault {
		return false
	}
	return o.Config.ReportAggregatesOnly
}

// DisplayNameFieldWidth computes the console reporter's name column width:
// max(10, longest display name), plus room for the longest statistic-name
// suffix when any instance repeats more than once.
func DisplayNameFieldWidth(instances []Instance, cfg Config) int {
	width := 10
	longestStat := 0
	hasRepeats := false
	for _, inst := range instances {
		if n := len(inst.DisplayName()); n > width {
			width = n
		}
		reps := inst.Repetitions
		if reps == 0 {
			reps = cfg.Repetitions
		}
		if reps > 1 {
			hasRepeats = true
		}
		for _, us := range inst.UserStats {
			if n := len(us.Name); n > longestStat {
				longestStat = n
			}
		}
	}
	if n := len("stddev"); n > longestStat {
		longestStat = n
	}
	if hasRepeats {
		width += 1 + longestStat
	}
	return width
}
