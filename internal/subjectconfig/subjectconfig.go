// internal/subjectconfig/subjectconfig.go
// Package subjectconfig renders, validates, and lists the per-model TOML
// configuration files consumed by the subject CLI. The harness only templates
// these files; it never interprets their settings.
package subjectconfig

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Manifest defaults applied when a model entry omits a field.
const (
	DefaultProviderType = "lmstudio"
	DefaultProviderURL  = "http://127.0.0.1:1234"
	DefaultSummaryWords = 100
)

// ExampleManifest is printed when the models manifest is missing so operators
// can create one.
const ExampleManifest = `{
  "model-name": {
    "provider_type": "lmstudio",
    "provider_url": "http://127.0.0.1:1234",
    "summary_words": 100
  }
}`

// ModelSpec is one models-manifest entry. OutputLengthThreshold is a pointer
// so an absent value can default to the summary word budget while an explicit
// zero is honored.
type ModelSpec struct {
	ProviderType          string `json:"provider_type"`
	ProviderURL           string `json:"provider_url"`
	SummaryWords          int    `json:"summary_words"`
	OutputLengthThreshold *int   `json:"output_length_threshold"`
}

// Provider returns the provider type, falling back to the default.
func (m ModelSpec) Provider() string {
	if p := strings.TrimSpace(m.ProviderType); p != "" {
		return p
	}
	return DefaultProviderType
}

// URL returns the provider URL, falling back to the default.
func (m ModelSpec) URL() string {
	if u := strings.TrimSpace(m.ProviderURL); u != "" {
		return u
	}
	return DefaultProviderURL
}

// Words returns the summary word budget, falling back to the default.
func (m ModelSpec) Words() int {
	if m.SummaryWords > 0 {
		return m.SummaryWords
	}
	return DefaultSummaryWords
}

// Threshold returns the output length below which the subject passes raw
// output through, defaulting to the summary word budget.
func (m ModelSpec) Threshold() int {
	if m.OutputLengthThreshold != nil {
		return *m.OutputLengthThreshold
	}
	return m.Words()
}

// Manifest maps model names to their config-generation settings.
type Manifest map[string]ModelSpec

// Names returns the model names in sorted order.
func (m Manifest) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// manifestSchema enforces field types per model entry.
var manifestSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"provider_type":           map[string]any{"type": "string"},
			"provider_url":            map[string]any{"type": "string"},
			"summary_words":           map[string]any{"type": "integer", "minimum": 1},
			"output_length_threshold": map[string]any{"type": "integer", "minimum": 0},
		},
	},
}

// LoadManifest reads and validates the models manifest. A missing file is
// fatal to config generation; the returned error includes the expected
// structure.
func LoadManifest(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("models manifest not found at %s; expected structure:\n%s", path, ExampleManifest)
		}
		return nil, fmt.Errorf("error reading models manifest: %w", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(manifestSchema), gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("models manifest %s: schema validation error: %w", path, err)
	}
	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, fmt.Errorf("models manifest %s failed validation: %s", path, strings.Join(details, "; "))
	}

	var manifest Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("error parsing models manifest: %w", err)
	}
	return manifest, nil
}

// FileName derives a config file name from a model name: path separators
// become dashes so every model maps to a flat file.
func FileName(model string) string {
	return strings.ReplaceAll(model, "/", "-") + ".toml"
}

// templateData feeds one render of the config template.
type templateData struct {
	ProviderType          string
	ProviderURL           string
	ModelName             string
	SummaryWords          int
	OutputLengthThreshold int
}

// Generate renders the subject-CLI config for one model and writes it to
// outputPath, creating parent directories as needed.
func Generate(outputPath, modelName string, spec ModelSpec) error {
	data := templateData{
		ProviderType:          spec.Provider(),
		ProviderURL:           spec.URL(),
		ModelName:             modelName,
		SummaryWords:          spec.Words(),
		OutputLengthThreshold: spec.Threshold(),
	}

	var rendered strings.Builder
	if err := configTemplate.Execute(&rendered, data); err != nil {
		return fmt.Errorf("error rendering config for %s: %w", modelName, err)
	}

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating configs directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(rendered.String()), 0o644); err != nil {
		return fmt.Errorf("error writing config for %s: %w", modelName, err)
	}
	return nil
}

// GenerateAll renders one config per manifest entry into outputDir, in
// sorted model order, announcing each generated file on out.
func GenerateAll(out io.Writer, manifestPath, outputDir string) error {
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	for _, name := range manifest.Names() {
		outputPath := filepath.Join(outputDir, FileName(name))
		if err := Generate(outputPath, name, manifest[name]); err != nil {
			return err
		}
		fmt.Fprintf(out, "Generated config file: %s\n", outputPath)
	}
	return nil
}

// Validate asserts that a subject config exists and carries the [provider]
// section the subject CLI requires.
func Validate(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("config file does not exist: %s", path)
		}
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if !strings.Contains(string(raw), "[provider]") {
		return fmt.Errorf("config file missing [provider] section: %s", path)
	}
	return nil
}

// ListConfigs writes the *.toml files under dir to out, sorted by name.
func ListConfigs(out io.Writer, dir string) error {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(out, "Configs directory does not exist: %s\n", dir)
			return nil
		}
		return fmt.Errorf("error reading configs directory: %w", err)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return fmt.Errorf("error listing configs: %w", err)
	}
	if len(paths) == 0 {
		fmt.Fprintf(out, "No config files found in %s\n", dir)
		return nil
	}

	sort.Strings(paths)
	fmt.Fprintf(out, "Found %d config file(s):\n", len(paths))
	for _, path := range paths {
		fmt.Fprintf(out, "  - %s\n", filepath.Base(path))
	}
	return nil
}
