// internal/quality/challenge.go
package quality

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Challenge defines one quality scenario: a command whose output the subject
// CLI summarizes, and the content the summary is expected to surface.
type Challenge struct {
	// Name is the challenge file's base name without extension.
	Name             string   `json:"-"`
	Command          string   `json:"command"`
	ExpectedIssue    string   `json:"expected_issue"`
	ExpectedSolution string   `json:"expected_solution"`
	KeyPhrases       []string `json:"key_phrases"`
}

// challengeSchema enforces field types; a missing command is tolerated here
// and skipped with a warning by the sweep.
var challengeSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"command":           map[string]any{"type": "string"},
		"expected_issue":    map[string]any{"type": "string"},
		"expected_solution": map[string]any{"type": "string"},
		"key_phrases": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
}

// LoadChallenge reads and validates a single challenge definition.
func LoadChallenge(path string) (Challenge, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Challenge{}, fmt.Errorf("error reading challenge: %w", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(challengeSchema), gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return Challenge{}, fmt.Errorf("challenge %s: schema validation error: %w", path, err)
	}
	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return Challenge{}, fmt.Errorf("challenge %s failed validation: %s", path, strings.Join(details, "; "))
	}

	var challenge Challenge
	if err := json.Unmarshal(raw, &challenge); err != nil {
		return Challenge{}, fmt.Errorf("error parsing challenge %s: %w", path, err)
	}
	challenge.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return challenge, nil
}

// LoadChallenges reads every *.json challenge under dir, sorted by file name.
// A missing or empty directory yields an empty slice, not an error; the
// sweep reports it as a warning.
func LoadChallenges(dir string) ([]Challenge, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("error listing challenges: %w", err)
	}

	challenges := make([]Challenge, 0, len(paths))
	for _, path := range paths {
		challenge, err := LoadChallenge(path)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, challenge)
	}
	return challenges, nil
}
