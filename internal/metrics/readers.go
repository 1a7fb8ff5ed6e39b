// internal/metrics/readers.go
// Package metrics reads previously written result files and renders
// per-model aggregates to the terminal.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mwiater/cgbench/internal/results"
)

// SpeedRecord is one parsed speed result row.
type SpeedRecord struct {
	Model         string
	ConfigFile    string
	SizeFactor    float64
	ExecutionTime float64
	SummaryLength int
	ExitCode      int
	Summary       string
}

// QualityRecord is one parsed quality result row.
type QualityRecord struct {
	Model           string
	ConfigFile      string
	Challenge       string
	CanSolve        bool
	NeedsFullOutput bool
	QualityScore    float64
	ExitCode        int
	Summary         string
}

// ReadSpeedResults parses a speed result file. Fields are sanitized at write
// time; splitting with a field-count cap keeps the summary column intact as
// the final field.
func ReadSpeedResults(path string) ([]SpeedRecord, error) {
	lines, err := readResultLines(path)
	if err != nil {
		return nil, err
	}

	records := make([]SpeedRecord, 0, len(lines))
	for i, line := range lines {
		fields := strings.SplitN(line, ",", 7)
		if len(fields) != 7 {
			return nil, fmt.Errorf("%s: row %d has %d fields, want 7", path, i+2, len(fields))
		}
		record := SpeedRecord{
			Model:      fields[0],
			ConfigFile: fields[1],
			Summary:    fields[6],
		}
		if record.SizeFactor, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, fmt.Errorf("%s: row %d size_factor: %w", path, i+2, err)
		}
		if record.ExecutionTime, err = strconv.ParseFloat(fields[3], 64); err != nil {
			return nil, fmt.Errorf("%s: row %d execution_time: %w", path, i+2, err)
		}
		if record.SummaryLength, err = strconv.Atoi(fields[4]); err != nil {
			return nil, fmt.Errorf("%s: row %d summary_length: %w", path, i+2, err)
		}
		if record.ExitCode, err = strconv.Atoi(fields[5]); err != nil {
			return nil, fmt.Errorf("%s: row %d exit_code: %w", path, i+2, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// ReadQualityResults parses a quality result file.
func ReadQualityResults(path string) ([]QualityRecord, error) {
	lines, err := readResultLines(path)
	if err != nil {
		return nil, err
	}

	records := make([]QualityRecord, 0, len(lines))
	for i, line := range lines {
		fields := strings.SplitN(line, ",", 8)
		if len(fields) != 8 {
			return nil, fmt.Errorf("%s: row %d has %d fields, want 8", path, i+2, len(fields))
		}
		record := QualityRecord{
			Model:      fields[0],
			ConfigFile: fields[1],
			Challenge:  fields[2],
			Summary:    fields[7],
		}
		if record.CanSolve, err = strconv.ParseBool(fields[3]); err != nil {
			return nil, fmt.Errorf("%s: row %d can_solve: %w", path, i+2, err)
		}
		if record.NeedsFullOutput, err = strconv.ParseBool(fields[4]); err != nil {
			return nil, fmt.Errorf("%s: row %d needs_full_output: %w", path, i+2, err)
		}
		if record.QualityScore, err = strconv.ParseFloat(fields[5], 64); err != nil {
			return nil, fmt.Errorf("%s: row %d quality_score: %w", path, i+2, err)
		}
		if record.ExitCode, err = strconv.Atoi(fields[6]); err != nil {
			return nil, fmt.Errorf("%s: row %d exit_code: %w", path, i+2, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// readResultLines returns a result file's data rows, dropping the header.
func readResultLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading result file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) > 0 && (lines[0] == results.SpeedHeader || lines[0] == results.QualityHeader) {
		lines = lines[1:]
	}
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	return lines, nil
}

// LatestResultFile returns the newest result file of the given prefix under
// dir. Timestamped names sort lexically, so the last match is the latest.
func LatestResultFile(dir, prefix string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"_*.csv"))
	if err != nil {
		return "", fmt.Errorf("error listing result files: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no %s result files found in %s", prefix, dir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}
