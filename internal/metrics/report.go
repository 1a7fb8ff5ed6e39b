// internal/metrics/report.go
package metrics

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/k0kubun/pp"
)

// Result kinds accepted by Report.
const (
	KindSpeed   = "speed"
	KindQuality = "quality"
	KindAll     = "all"
)

// ReportOptions selects which result files to aggregate.
type ReportOptions struct {
	// ResultsDir is scanned for the latest file of each kind.
	ResultsDir string
	// File, when set, names one result file explicitly; its kind is inferred
	// from the file name.
	File string
	// Kind filters the report to speed or quality files; empty means all.
	Kind string
	// Debug dumps the computed aggregates.
	Debug bool
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	passText  = color.New(color.FgGreen).SprintFunc()
	failText  = color.New(color.FgRed).SprintFunc()
	mixedText = color.New(color.FgYellow).SprintFunc()
)

// Report aggregates result files per ReportOptions and renders the tables to
// out. With no explicit file, the latest file of each requested kind is used;
// kinds with no files yet produce a notice rather than an error.
func Report(opts ReportOptions, out io.Writer) error {
	kind := opts.Kind
	if kind == "" {
		kind = KindAll
	}
	if kind != KindSpeed && kind != KindQuality && kind != KindAll {
		return fmt.Errorf("unknown result kind %q (expected speed, quality, or all)", kind)
	}

	if opts.File != "" {
		inferred := inferKind(opts.File)
		if inferred == "" {
			return fmt.Errorf("cannot infer result kind from file name %s; pass --kind speed or --kind quality", opts.File)
		}
		if kind != KindAll && kind != inferred {
			return fmt.Errorf("file %s holds %s results, not %s", opts.File, inferred, kind)
		}
		return reportOne(inferred, opts.File, opts.Debug, out)
	}

	kinds := []string{KindSpeed, KindQuality}
	if kind != KindAll {
		kinds = []string{kind}
	}

	reported := 0
	for _, k := range kinds {
		path, err := LatestResultFile(opts.ResultsDir, k)
		if err != nil {
			fmt.Fprintf(out, "No %s results found in %s\n", k, opts.ResultsDir)
			continue
		}
		if reported > 0 {
			fmt.Fprintln(out)
		}
		if err := reportOne(k, path, opts.Debug, out); err != nil {
			return err
		}
		reported++
	}
	return nil
}

// inferKind derives the result kind from a file's name prefix.
func inferKind(path string) string {
	base := filepath.Base(path)
	switch {
	case strings.HasPrefix(base, "speed_"):
		return KindSpeed
	case strings.HasPrefix(base, "quality_"):
		return KindQuality
	default:
		return ""
	}
}

func reportOne(kind, path string, debug bool, out io.Writer) error {
	switch kind {
	case KindSpeed:
		records, err := ReadSpeedResults(path)
		if err != nil {
			return err
		}
		renderSpeed(out, path, AggregateSpeed(records), debug)
	case KindQuality:
		records, err := ReadQualityResults(path)
		if err != nil {
			return err
		}
		renderQuality(out, path, AggregateQuality(records), debug)
	}
	return nil
}

func renderSpeed(out io.Writer, path string, aggregates []SpeedAggregate, debug bool) {
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Speed results: %s", path)))
	if len(aggregates) == 0 {
		fmt.Fprintln(out, "No rows to aggregate.")
		return
	}
	if debug {
		pp.Println(aggregates)
	}

	width := len("MODEL")
	for _, agg := range aggregates {
		if len(agg.Model) > width {
			width = len(agg.Model)
		}
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-*s  %5s  %8s  %8s  %8s  %8s",
		width, "MODEL", "RUNS", "MIN(s)", "AVG(s)", "MAX(s)", "TIMEOUTS")))
	for _, agg := range aggregates {
		timeouts := passText(fmt.Sprintf("%8d", agg.Timeouts))
		if agg.Timeouts > 0 {
			timeouts = failText(fmt.Sprintf("%8d", agg.Timeouts))
		}
		fmt.Fprintf(out, "%-*s  %5d  %8.3f  %8.3f  %8.3f  %s\n",
			width, agg.Model, agg.Runs, agg.MinSeconds, agg.AvgSeconds, agg.MaxSeconds, timeouts)
	}
}

func renderQuality(out io.Writer, path string, aggregates []QualityAggregate, debug bool) {
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Quality results: %s", path)))
	if len(aggregates) == 0 {
		fmt.Fprintln(out, "No rows to aggregate.")
		return
	}
	if debug {
		pp.Println(aggregates)
	}

	width := len("MODEL")
	for _, agg := range aggregates {
		if len(agg.Model) > width {
			width = len(agg.Model)
		}
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-*s  %5s  %6s  %10s  %9s  %9s",
		width, "MODEL", "RUNS", "SOLVED", "NEEDS_FULL", "AVG_SCORE", "PASS_RATE")))
	for _, agg := range aggregates {
		rate := fmt.Sprintf("%8.1f%%", agg.PassRate*100)
		switch {
		case agg.Solved == agg.Runs:
			rate = passText(rate)
		case agg.Solved == 0:
			rate = failText(rate)
		default:
			rate = mixedText(rate)
		}
		fmt.Fprintf(out, "%-*s  %5d  %6d  %10d  %9.3f  %s\n",
			width, agg.Model, agg.Runs, agg.Solved, agg.NeedsFull, agg.AvgScore, rate)
	}
}
