// internal/tui/table.go
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/cgbench/internal/subject"
	"github.com/mwiater/cgbench/internal/sweep"
)

// tableStyles returns the scenario table styles. The dashboard has no row
// selection, so the selected style is cleared.
func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252")).Bold(true)
	styles.Selected = lipgloss.NewStyle()
	return styles
}

// defaultColumns returns the column layout used before the first window
// size message arrives.
func defaultColumns() []table.Column {
	return columnsForWidth(100)
}

// columnsForWidth sizes the config column from the terminal width; the
// remaining columns stay fixed.
func columnsForWidth(width int) []table.Column {
	config := width - 85
	if config < 18 {
		config = 18
	}
	return []table.Column{
		{Title: "Model", Width: 22},
		{Title: "Config", Width: config},
		{Title: "Scenario", Width: 18},
		{Title: "Result", Width: 9},
		{Title: "Detail", Width: 14},
		{Title: "Status", Width: 10},
	}
}

// rowsForHistory converts finished scenarios into table rows.
func rowsForHistory(history []row, kind sweep.Kind) []table.Row {
	rows := make([]table.Row, 0, len(history))
	for _, r := range history {
		rows = append(rows, tableRow(r, kind))
	}
	return rows
}

// tableRow renders one finished scenario as table cells. Cells are plain
// text because the table truncates overlong values by rune width.
func tableRow(r row, kind sweep.Kind) table.Row {
	var result, detail, status string
	switch {
	case r.outcome.Skipped:
		status = "skipped"
	case r.outcome.Err != "":
		status = "error"
		detail = r.outcome.Err
	case kind == sweep.Quality:
		result = fmt.Sprintf("%.2f", r.outcome.Score)
		detail = "exit " + strconv.Itoa(r.outcome.ExitCode)
		if r.outcome.CanSolve {
			status = "pass"
		} else {
			status = "fail"
		}
	default:
		result = fmt.Sprintf("%.3fs", r.outcome.Duration.Seconds())
		detail = fmt.Sprintf("%d runes", r.outcome.SummaryLength)
		if r.outcome.ExitCode == subject.TimeoutExitCode {
			status = "timeout"
		} else {
			status = "ok"
		}
	}
	return table.Row{r.scenario.Model, r.scenario.ConfigFile, r.scenario.Label, result, detail, status}
}
