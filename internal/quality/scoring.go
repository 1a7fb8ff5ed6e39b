// internal/quality/scoring.go
package quality

import "strings"

// Scoring policy constants. The weights and the two thresholds are
// independent policy parameters, not derived from each other.
const (
	issueWeight    = 0.4
	solutionWeight = 0.4
	phraseWeight   = 0.2
	// canSolveThreshold is the minimum score at which a summary alone is
	// judged sufficient to resolve the challenge.
	canSolveThreshold = 0.7
	// fullOutputThreshold is the score below which the full-output artifact
	// is judged necessary.
	fullOutputThreshold = 0.5
)

// Evaluation is the scored verdict on one (challenge, summary) pair.
type Evaluation struct {
	CanSolve       bool
	QualityScore   float64
	IssueFound     bool
	SolutionFound  bool
	PhraseCoverage float64
	PhrasesFound   int
	TotalPhrases   int
}

// Score evaluates whether the summary surfaces the challenge's expected
// content. All matching is case-insensitive substring containment. An empty
// expectation counts as found; a challenge with no key phrases has full
// coverage. The score is bounded in [0, 1] by construction.
func Score(summary string, challenge Challenge) Evaluation {
	summaryLower := strings.ToLower(summary)

	issueFound := true
	if issue := strings.ToLower(challenge.ExpectedIssue); issue != "" {
		issueFound = strings.Contains(summaryLower, issue)
	}

	solutionFound := true
	if solution := strings.ToLower(challenge.ExpectedSolution); solution != "" {
		solutionFound = strings.Contains(summaryLower, solution)
	}

	phrasesFound := 0
	for _, phrase := range challenge.KeyPhrases {
		if strings.Contains(summaryLower, strings.ToLower(phrase)) {
			phrasesFound++
		}
	}
	phraseCoverage := 1.0
	if len(challenge.KeyPhrases) > 0 {
		phraseCoverage = float64(phrasesFound) / float64(len(challenge.KeyPhrases))
	}

	score := 0.0
	if issueFound {
		score += issueWeight
	}
	if solutionFound {
		score += solutionWeight
	}
	score += phraseCoverage * phraseWeight

	return Evaluation{
		CanSolve:       score >= canSolveThreshold,
		QualityScore:   score,
		IssueFound:     issueFound,
		SolutionFound:  solutionFound,
		PhraseCoverage: phraseCoverage,
		PhrasesFound:   phrasesFound,
		TotalPhrases:   len(challenge.KeyPhrases),
	}
}

// Zeroed returns the evaluation substituted when the subject returned raw
// output instead of a summary: a passthrough is always a quality failure, no
// matter how much of the expected content the raw text happens to contain.
// Only the phrase total is preserved.
func Zeroed(challenge Challenge) Evaluation {
	return Evaluation{TotalPhrases: len(challenge.KeyPhrases)}
}

// NeedsFullOutput reports whether the summary alone was judged insufficient
// and the full-output artifact would be required.
func NeedsFullOutput(eval Evaluation, usedRawOutput bool) bool {
	if usedRawOutput {
		return true
	}
	return eval.QualityScore < fullOutputThreshold
}
