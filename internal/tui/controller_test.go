// internal/tui/controller_test.go
package tui

import (
	"testing"

	"github.com/mwiater/cgbench/internal/sweep"
)

// newTestController builds a controller without starting a program so the
// observer-to-event mapping can be exercised directly.
func newTestController(buffer int) *Controller {
	return &Controller{events: make(chan event, buffer), done: make(chan struct{})}
}

func TestControllerForwardsObserverEvents(t *testing.T) {
	c := newTestController(8)
	c.SweepStarted(sweep.Quality, "evals/results/quality_x.csv", 6)
	c.ScenarioStarted(sweep.Scenario{Model: "qwen3", ConfigFile: "qwen3.toml", Label: "cargo_failure"})
	c.ScenarioFinished(sweep.Scenario{Model: "qwen3"}, sweep.Outcome{Score: 0.9, CanSolve: true})
	c.SweepFinished()

	var kinds []eventKind
	for ev := range c.events {
		kinds = append(kinds, ev.kind)
	}
	want := []eventKind{eventSweepStarted, eventScenarioStarted, eventScenarioFinished, eventSweepFinished}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(kinds), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("event %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestControllerSweepFinishedClosesChannel(t *testing.T) {
	c := newTestController(8)
	c.SweepFinished()
	// Drain the final event, then the closed channel must report !ok.
	if ev, ok := <-c.events; !ok || ev.kind != eventSweepFinished {
		t.Fatalf("expected final event, got %+v ok=%v", ev, ok)
	}
	if _, ok := <-c.events; ok {
		t.Fatal("expected events channel to be closed")
	}
}

func TestControllerSendNeverBlocks(t *testing.T) {
	c := newTestController(1)
	c.ScenarioStarted(sweep.Scenario{Model: "a"})
	// With the buffer full, further sends must drop rather than block.
	c.ScenarioStarted(sweep.Scenario{Model: "b"})
	c.ScenarioStarted(sweep.Scenario{Model: "c"})
	if got := len(c.events); got != 1 {
		t.Fatalf("expected 1 buffered event, got %d", got)
	}
}

func TestControllerCloseIsIdempotent(t *testing.T) {
	c := newTestController(1)
	c.Close()
	c.Close()
	if _, ok := <-c.events; ok {
		t.Fatal("expected events channel to be closed")
	}

	var nilController *Controller
	nilController.Close()
	nilController.Wait()
	nilController.send(event{})
}
