// internal/evalconfig/evalconfig.go
// Package evalconfig loads the sweep matrix: which models to evaluate, the
// subject-CLI config files belonging to each, and the input size factors for
// speed runs.
package evalconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultContextTokens is assumed for models that do not declare a context
// window.
const DefaultContextTokens = 131072

// defaultSizeFactors drive speed runs when the document declares none.
var defaultSizeFactors = []float64{0.1, 0.2, 0.5, 1.0}

// ExampleDocument is printed when the eval config is missing so operators can
// create one.
const ExampleDocument = `{
  "models": {
    "openai/gpt-oss-20b": {
      "max_tokens": 131072,
      "config_files": ["openai-gpt-oss-20b.toml"]
    }
  },
  "size_factors": [0.1, 0.2, 0.5, 1.0]
}`

// Model describes one model entry of the sweep matrix.
type Model struct {
	MaxTokens   int      `json:"max_tokens"`
	ConfigFiles []string `json:"config_files"`
}

// ContextTokens returns the model's declared context window, falling back to
// DefaultContextTokens.
func (m Model) ContextTokens() int {
	if m.MaxTokens > 0 {
		return m.MaxTokens
	}
	return DefaultContextTokens
}

// Config is the decoded eval configuration document.
type Config struct {
	Models      map[string]Model `json:"models"`
	SizeFactors []float64        `json:"size_factors"`
}

// Factors returns the configured size factors, falling back to the defaults.
func (c Config) Factors() []float64 {
	if len(c.SizeFactors) > 0 {
		return c.SizeFactors
	}
	return defaultSizeFactors
}

// ModelNames returns the model names in sorted order so sweeps iterate
// deterministically.
func (c Config) ModelNames() []string {
	names := make([]string, 0, len(c.Models))
	for name := range c.Models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// configSchema validates the document shape before decoding.
var configSchema = map[string]any{
	"type":     "object",
	"required": []string{"models"},
	"properties": map[string]any{
		"models": map[string]any{
			"type":          "object",
			"minProperties": 1,
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"max_tokens": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
					"config_files": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
		},
		"size_factors": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":             "number",
				"minimum":          0,
				"exclusiveMinimum": true,
			},
		},
	},
}

// Load reads and validates the eval configuration at path. A missing file is
// fatal to a run; the returned error includes the expected structure so the
// operator can create the document.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("eval config not found at %s; expected structure:\n%s", path, ExampleDocument)
		}
		return Config{}, fmt.Errorf("error reading eval config: %w", err)
	}

	if err := validateDocument(raw); err != nil {
		return Config{}, fmt.Errorf("eval config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing eval config: %w", err)
	}
	return cfg, nil
}

func validateDocument(raw []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(configSchema), gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("failed validation: %s", strings.Join(details, "; "))
}
