// internal/sweep/sweep.go
// Package sweep defines the progress events an evaluation sweep emits and the
// observer contract consumed by progress renderers.
package sweep

import "time"

// Kind identifies which evaluation produced a sweep.
type Kind string

const (
	// Speed marks a latency sweep across synthetic payload sizes.
	Speed Kind = "speed"
	// Quality marks a scoring sweep across challenge definitions.
	Quality Kind = "quality"
)

// Scenario identifies one subject-CLI invocation within a sweep.
type Scenario struct {
	Model      string
	ConfigFile string
	// Label is the scenario-specific axis: a challenge name for quality
	// sweeps, a formatted size factor for speed sweeps.
	Label string
}

// Outcome summarizes a finished scenario.
type Outcome struct {
	ExitCode int
	Duration time.Duration
	// Score and CanSolve carry quality verdicts.
	Score    float64
	CanSolve bool
	// SummaryLength carries the speed sweep's response size in runes.
	SummaryLength int
	// Skipped is set when the scenario was not invoked at all.
	Skipped bool
	// Err holds a per-scenario failure message, empty on success.
	Err string
}

// Observer receives sweep lifecycle events. Implementations must not block:
// the sweep runs strictly sequentially and an observer stall would distort
// measured latencies.
type Observer interface {
	SweepStarted(kind Kind, resultPath string, total int)
	ScenarioStarted(s Scenario)
	ScenarioFinished(s Scenario, o Outcome)
	SweepFinished()
}

// Nop is an Observer that ignores every event.
type Nop struct{}

// SweepStarted implements Observer.
func (Nop) SweepStarted(Kind, string, int) {}

// ScenarioStarted implements Observer.
func (Nop) ScenarioStarted(Scenario) {}

// ScenarioFinished implements Observer.
func (Nop) ScenarioFinished(Scenario, Outcome) {}

// SweepFinished implements Observer.
func (Nop) SweepFinished() {}
