// internal/results/results.go
// Package results persists one CSV row per evaluated scenario. Each run gets
// its own timestamped file; rows are appended and never rewritten.
package results

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwiater/cgbench/internal/util"
)

const (
	// QualityHeader and SpeedHeader are the fixed column layouts of the two
	// result-file kinds.
	QualityHeader = "model,config_file,challenge,can_solve,needs_full_output,quality_score,exit_code,summary"
	SpeedHeader   = "model,config_file,size_factor,execution_time,summary_length,exit_code,summary"

	timestampLayout = "20060102_150405"
	summaryLimit    = 500
)

// nowFn allows tests to pin the run timestamp.
var nowFn = time.Now

// File is an append-only result file for one run.
type File struct {
	Path string
}

// NewQualityFile creates a quality result file under dir, writing the header
// row. The directory is created on demand.
func NewQualityFile(dir string) (*File, error) {
	return newResultFile(dir, "quality", QualityHeader)
}

// NewSpeedFile creates a speed result file under dir, writing the header row.
func NewSpeedFile(dir string) (*File, error) {
	return newResultFile(dir, "speed", SpeedHeader)
}

func newResultFile(dir, prefix, header string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating results directory: %w", err)
	}
	name := fmt.Sprintf("%s_%s.csv", prefix, nowFn().Format(timestampLayout))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(header+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("error creating result file: %w", err)
	}
	return &File{Path: path}, nil
}

// QualityRow is one persisted quality-sweep record.
type QualityRow struct {
	Model           string
	ConfigFile      string
	Challenge       string
	CanSolve        bool
	NeedsFullOutput bool
	QualityScore    float64
	ExitCode        int
	Summary         string
}

// AppendQuality writes one quality row. The score is printed to three
// decimals and booleans as true/false.
func (f *File) AppendQuality(row QualityRow) error {
	line := fmt.Sprintf("%s,%s,%s,%t,%t,%.3f,%d,%s",
		row.Model, row.ConfigFile, row.Challenge,
		row.CanSolve, row.NeedsFullOutput, row.QualityScore, row.ExitCode,
		SanitizeSummary(row.Summary))
	return f.appendLine(line)
}

// SpeedRow is one persisted speed-sweep record.
type SpeedRow struct {
	Model         string
	ConfigFile    string
	SizeFactor    float64
	ExecutionTime time.Duration
	SummaryLength int
	ExitCode      int
	Summary       string
}

// AppendSpeed writes one speed row. The execution time is printed in seconds
// to three decimals.
func (f *File) AppendSpeed(row SpeedRow) error {
	line := fmt.Sprintf("%s,%s,%s,%s,%d,%d,%s",
		row.Model, row.ConfigFile,
		util.FormatFactor(row.SizeFactor), util.FormatSeconds(row.ExecutionTime),
		row.SummaryLength, row.ExitCode,
		SanitizeSummary(row.Summary))
	return f.appendLine(line)
}

// appendLine opens, appends, and closes per row; sweeps are sequential so no
// writer ever races another.
func (f *File) appendLine(line string) error {
	file, err := os.OpenFile(f.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("error opening result file: %w", err)
	}
	defer file.Close()
	if _, err := file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("error appending result row: %w", err)
	}
	return nil
}

// SanitizeSummary flattens summary text for CSV embedding: newlines become
// spaces, commas become semicolons, and the result is capped at 500
// characters.
func SanitizeSummary(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, ",", ";")
	runes := []rune(s)
	if len(runes) > summaryLimit {
		return string(runes[:summaryLimit])
	}
	return s
}
