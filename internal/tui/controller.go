// internal/tui/controller.go
// Package tui renders a live dashboard for an evaluation sweep. Scenario
// events are forwarded over a buffered channel into a Bubble Tea program
// that repaints progress until the sweep finishes.
package tui

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/cgbench/internal/sweep"
)

// Controller owns the live UI program and implements sweep.Observer. Events
// are enqueued without blocking so a slow repaint can never distort the
// latencies the sweep is measuring.
type Controller struct {
	events    chan event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches the live UI writing to the given terminal writer. A nil
// writer defaults to stdout.
func Start(stdout io.Writer) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan event, 256)
	program := tea.NewProgram(newModel(events), tea.WithOutput(stdout), tea.WithAltScreen())
	c := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(c.done)
	}()
	return c
}

// Close signals the UI to drain remaining events and exit. Safe to call
// more than once.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI program has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// SweepStarted implements sweep.Observer.
func (c *Controller) SweepStarted(kind sweep.Kind, resultPath string, total int) {
	c.send(event{kind: eventSweepStarted, sweepKind: kind, resultPath: resultPath, total: total})
}

// ScenarioStarted implements sweep.Observer.
func (c *Controller) ScenarioStarted(s sweep.Scenario) {
	c.send(event{kind: eventScenarioStarted, scenario: s})
}

// ScenarioFinished implements sweep.Observer.
func (c *Controller) ScenarioFinished(s sweep.Scenario, o sweep.Outcome) {
	c.send(event{kind: eventScenarioFinished, scenario: s, outcome: o})
}

// SweepFinished implements sweep.Observer. The close lets the UI drain the
// queue, render the final state, and quit.
func (c *Controller) SweepFinished() {
	c.send(event{kind: eventSweepFinished})
	c.Close()
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(ev event) {
	if c == nil {
		return
	}
	select {
	case c.events <- ev:
	default:
	}
}
