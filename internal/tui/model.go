// internal/tui/model.go
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/cgbench/internal/sweep"
)

// maxRows bounds the finished-scenario history kept on screen.
const maxRows = 10

type eventKind int

const (
	eventSweepStarted eventKind = iota
	eventScenarioStarted
	eventScenarioFinished
	eventSweepFinished
)

// event is one sweep lifecycle notification delivered to the UI.
type event struct {
	kind       eventKind
	sweepKind  sweep.Kind
	resultPath string
	total      int
	scenario   sweep.Scenario
	outcome    sweep.Outcome
}

// eventMsg wraps an event for the Bubble Tea update loop.
type eventMsg event

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// row is one finished scenario kept for the on-screen history.
type row struct {
	scenario sweep.Scenario
	outcome  sweep.Outcome
}

// model is the Bubble Tea model for the sweep dashboard.
type model struct {
	events <-chan event

	spinner    spinner.Model
	table      table.Model
	sweepKind  sweep.Kind
	resultPath string
	total      int
	finishedN  int
	failed     int
	skipped    int

	active      sweep.Scenario
	hasActive   bool
	activeStart time.Time

	rows     []row
	complete bool

	width  int
	height int
}

// newModel creates the dashboard model reading from the given event channel.
func newModel(events <-chan event) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(maxRows+1),
	)
	t.SetStyles(tableStyles())
	return &model{events: events, spinner: s, table: t}
}

// waitForEvent returns a command that delivers the next sweep event, or
// quits the program once the channel has been closed and drained.
func waitForEvent(events <-chan event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return tea.Quit()
		}
		return eventMsg(ev)
	}
}

// Init starts the spinner animation and the event pump.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEvent(m.events))
}

// Update is the central update function for the dashboard.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(columnsForWidth(msg.Width))
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(msg.Height-8, 3))

	case eventMsg:
		m.apply(event(msg))
		return m, waitForEvent(m.events)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// apply folds one sweep event into the dashboard state.
func (m *model) apply(ev event) {
	switch ev.kind {
	case eventSweepStarted:
		m.sweepKind = ev.sweepKind
		m.resultPath = ev.resultPath
		m.total = ev.total

	case eventScenarioStarted:
		m.active = ev.scenario
		m.hasActive = true
		m.activeStart = time.Now()

	case eventScenarioFinished:
		m.hasActive = false
		m.finishedN++
		switch {
		case ev.outcome.Skipped:
			m.skipped++
		case ev.outcome.Err != "":
			m.failed++
		}
		m.rows = append(m.rows, row{scenario: ev.scenario, outcome: ev.outcome})
		if len(m.rows) > maxRows {
			m.rows = m.rows[len(m.rows)-maxRows:]
		}

	case eventSweepFinished:
		m.complete = true
	}
	m.table.SetRows(rowsForHistory(m.rows, m.sweepKind))
}

// View renders the dashboard.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title()))
	b.WriteString("\n")
	if m.resultPath != "" {
		b.WriteString(pathStyle.Render("Results: " + m.resultPath))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.hasActive {
		elapsed := time.Since(m.activeStart).Seconds()
		b.WriteString(fmt.Sprintf("%s %s  %.1fs", m.spinner.View(), scenarioLabel(m.active), elapsed))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m *model) title() string {
	switch m.sweepKind {
	case sweep.Speed:
		return "cgbench: speed evaluation"
	case sweep.Quality:
		return "cgbench: quality evaluation"
	default:
		return "cgbench"
	}
}

func (m *model) footer() string {
	parts := []string{fmt.Sprintf("%d/%d scenarios", m.finishedN, m.total)}
	if m.failed > 0 {
		parts = append(parts, badStyle.Render(fmt.Sprintf("%d failed", m.failed)))
	}
	if m.skipped > 0 {
		parts = append(parts, warnStyle.Render(fmt.Sprintf("%d skipped", m.skipped)))
	}
	line := strings.Join(parts, "  ")
	if m.complete {
		return line + "\n" + okStyle.Render("Evaluation complete.")
	}
	return line + "\n" + dimStyle.Render("q to quit")
}

// scenarioLabel renders the scenario axis as "model config label".
func scenarioLabel(s sweep.Scenario) string {
	fields := make([]string, 0, 3)
	if s.Model != "" {
		fields = append(fields, s.Model)
	}
	if s.ConfigFile != "" {
		fields = append(fields, dimStyle.Render(s.ConfigFile))
	}
	if s.Label != "" {
		fields = append(fields, s.Label)
	}
	return strings.Join(fields, " ")
}
