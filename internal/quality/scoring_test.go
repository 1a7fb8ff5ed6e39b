// internal/quality/scoring_test.go
package quality

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreEmptyChallengeIsPerfect(t *testing.T) {
	t.Parallel()
	eval := Score("any text at all", Challenge{})
	if !almostEqual(eval.QualityScore, 1.0) {
		t.Fatalf("QualityScore = %v, want 1.0", eval.QualityScore)
	}
	if !eval.CanSolve {
		t.Fatal("expected CanSolve to be true")
	}
	if !eval.IssueFound || !eval.SolutionFound {
		t.Fatal("empty expectations should count as found")
	}
	if !almostEqual(eval.PhraseCoverage, 1.0) {
		t.Fatalf("PhraseCoverage = %v, want 1.0", eval.PhraseCoverage)
	}
}

func TestScoreFullMatch(t *testing.T) {
	t.Parallel()
	challenge := Challenge{
		ExpectedIssue:    "build failed",
		ExpectedSolution: "missing dependency",
		KeyPhrases:       []string{"npm install", "ENOENT"},
	}
	summary := "The Build Failed due to a Missing Dependency; run npm install to fix the enoent error."

	eval := Score(summary, challenge)
	if !almostEqual(eval.QualityScore, 1.0) {
		t.Fatalf("QualityScore = %v, want 1.0", eval.QualityScore)
	}
	if !eval.CanSolve {
		t.Fatal("expected CanSolve to be true")
	}
	if eval.PhrasesFound != 2 || eval.TotalPhrases != 2 {
		t.Fatalf("phrases = %d/%d, want 2/2", eval.PhrasesFound, eval.TotalPhrases)
	}
}

func TestScoreIssueOnly(t *testing.T) {
	t.Parallel()
	challenge := Challenge{
		ExpectedIssue:    "build failed",
		ExpectedSolution: "missing dependency",
		KeyPhrases:       []string{"npm install", "ENOENT"},
	}

	eval := Score("the build failed", challenge)
	if !almostEqual(eval.QualityScore, 0.4) {
		t.Fatalf("QualityScore = %v, want 0.4", eval.QualityScore)
	}
	if eval.CanSolve {
		t.Fatal("expected CanSolve to be false")
	}
	if !eval.IssueFound || eval.SolutionFound {
		t.Fatalf("found flags = issue %v solution %v", eval.IssueFound, eval.SolutionFound)
	}
	if eval.PhrasesFound != 0 {
		t.Fatalf("PhrasesFound = %d, want 0", eval.PhrasesFound)
	}
}

func TestScorePartialPhraseCoverage(t *testing.T) {
	t.Parallel()
	challenge := Challenge{
		ExpectedIssue:    "build failed",
		ExpectedSolution: "missing dependency",
		KeyPhrases:       []string{"npm install", "ENOENT", "package.json", "node_modules"},
	}
	summary := "build failed: missing dependency, run npm install and check package.json"

	eval := Score(summary, challenge)
	if !almostEqual(eval.PhraseCoverage, 0.5) {
		t.Fatalf("PhraseCoverage = %v, want 0.5", eval.PhraseCoverage)
	}
	if !almostEqual(eval.QualityScore, 0.9) {
		t.Fatalf("QualityScore = %v, want 0.9", eval.QualityScore)
	}
	if !eval.CanSolve {
		t.Fatal("expected CanSolve to be true")
	}
}

func TestScoreStaysBounded(t *testing.T) {
	t.Parallel()
	challenges := []Challenge{
		{},
		{ExpectedIssue: "x"},
		{ExpectedIssue: "x", ExpectedSolution: "y", KeyPhrases: []string{"a", "b", "c"}},
	}
	summaries := []string{"", "x", "x y a b c", "completely unrelated"}
	for _, challenge := range challenges {
		for _, summary := range summaries {
			eval := Score(summary, challenge)
			if eval.QualityScore < 0.0 || eval.QualityScore > 1.0+1e-9 {
				t.Fatalf("QualityScore %v out of bounds for challenge %+v summary %q",
					eval.QualityScore, challenge, summary)
			}
		}
	}
}

func TestZeroedPreservesPhraseTotal(t *testing.T) {
	t.Parallel()
	challenge := Challenge{
		ExpectedIssue:    "build failed",
		ExpectedSolution: "missing dependency",
		KeyPhrases:       []string{"npm install", "ENOENT"},
	}

	eval := Zeroed(challenge)
	if eval.QualityScore != 0.0 || eval.CanSolve {
		t.Fatalf("expected zero score and CanSolve false, got %+v", eval)
	}
	if eval.IssueFound || eval.SolutionFound {
		t.Fatal("expected found flags to be false")
	}
	if eval.PhraseCoverage != 0.0 || eval.PhrasesFound != 0 {
		t.Fatalf("expected zero coverage, got %+v", eval)
	}
	if eval.TotalPhrases != 2 {
		t.Fatalf("TotalPhrases = %d, want 2", eval.TotalPhrases)
	}
}

func TestNeedsFullOutput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		score   float64
		usedRaw bool
		want    bool
	}{
		{"raw passthrough always needs full output", 1.0, true, true},
		{"low score", 0.4, false, true},
		{"at threshold", 0.5, false, false},
		{"high score", 0.9, false, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := NeedsFullOutput(Evaluation{QualityScore: tc.score}, tc.usedRaw)
			if got != tc.want {
				t.Fatalf("NeedsFullOutput(score=%v, raw=%v) = %v, want %v", tc.score, tc.usedRaw, got, tc.want)
			}
		})
	}
}
