package main

import (
	"fmt"
	"os"

	"github.com/benchforge/microbench/pkg/microbench"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// newRootCommand builds the cobra command tree: a single root command with a
// flat pflag surface rather than nested subcommands, since there is only one
// real operation (run the registry).
func newRootCommand() *cobra.Command {
	cfg := microbench.DefaultConfig()
	var outFormatStr, formatStr, colorStr string

	cmd := &cobra.Command{
		Use:           "microbench",
		Short:         "run registered microbenchmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Format = microbench.OutputFormat(formatStr)
			cfg.OutFormat = microbench.OutputFormat(outFormatStr)
			cfg.Color = microbench.ColorMode(colorStr)
			return runMain(cfg)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&cfg.ListTests, "benchmark_list_tests", cfg.ListTests, "print matching benchmark names and exit")
	flags.StringVar(&cfg.Filter, "benchmark_filter", cfg.Filter, "regexp selecting which benchmarks to run")
	flags.Float64Var(&cfg.MinTime, "benchmark_min_time", cfg.MinTime, "minimum measurement duration in seconds")
	flags.IntVar(&cfg.Repetitions, "benchmark_repetitions", cfg.Repetitions, "number of repetitions per benchmark")
	flags.BoolVar(&cfg.ReportAggregatesOnly, "benchmark_report_aggregates_only", cfg.ReportAggregatesOnly, "suppress non-aggregate records everywhere")
	flags.BoolVar(&cfg.DisplayAggregatesOnly, "benchmark_display_aggregates_only", cfg.DisplayAggregatesOnly, "suppress non-aggregate records on display only")
	flags.StringVar(&formatStr, "benchmark_format", string(cfg.Format), "display reporter: console, json, or csv")
	flags.StringVar(&outFormatStr, "benchmark_out_format", string(cfg.OutFormat), "file reporter: console, json, or csv")
	flags.StringVar(&cfg.Out, "benchmark_out", cfg.Out, "file path for the file reporter")
	flags.StringVar(&colorStr, "benchmark_color", string(cfg.Color), "TTY coloring: auto, yes, or no")
	flags.BoolVar(&cfg.CountersTabular, "benchmark_counters_tabular", cfg.CountersTabular, "render user counters in a table instead of inline")
	flags.IntVarP(&cfg.Verbosity, "verbosity", "v", cfg.Verbosity, "log verbosity")

	return cmd
}

func runMain(cfg microbench.Config) error {
	registry := microbench.NewRegistry()
	registerExampleBenchmarks(registry)

	instances, err := registry.Instances(cfg.Filter)
	if err != nil {
		return errors.Wrapf(err, "benchmark_filter")
	}

	if cfg.ListTests {
		for _, inst := range instances {
			fmt.Println(inst.DisplayName())
		}
		return nil
	}

	nameWidth := microbench.DisplayNameFieldWidth(instances, cfg)

	display, err := newReporter(cfg.Format, os.Stdout, os.Stderr, nameWidth, cfg)
	if err != nil {
		return errors.Wrapf(err, "benchmark_format")
	}

	var file microbench.Reporter
	if cfg.Out != "" {
		f, err := os.Create(cfg.Out)
		if err != nil {
			return errors.Wrapf(err, "benchmark_out: opening %q", cfg.Out)
		}
		defer f.Close()
		file, err = newReporter(cfg.OutFormat, f, os.Stderr, nameWidth, cfg)
		if err != nil {
			return errors.Wrapf(err, "benchmark_out_format")
		}
	}

	orch := &microbench.Orchestrator{Config: cfg, Display: display, File: file}
	if !orch.Run(instances) {
		return errors.New("a reporter refused ReportContext")
	}
	return nil
}

func newReporter(format microbench.OutputFormat, out, errw *os.File, nameWidth int, cfg microbench.Config) (microbench.Reporter, error) {
	switch format {
	case microbench.FormatConsole, "":
		return microbench.NewConsoleReporter(out, errw, nameWidth, cfg.Color, cfg.CountersTabular), nil
	case microbench.FormatJSON:
		return microbench.NewJSONReporter(out, errw), nil
	case microbench.FormatCSV:
		return microbench.NewCSVReporter(out, errw), nil
	default:
		return nil, errors.Newf("unrecognized reporter format %q", format)
	}
}
