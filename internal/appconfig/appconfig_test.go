// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAccessorDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config
	if got := cfg.SubjectCommand(); got != "cg" {
		t.Fatalf("SubjectCommand default: got %q want cg", got)
	}
	if got := cfg.InvocationTimeout(); got != 300*time.Second {
		t.Fatalf("InvocationTimeout default: got %s want 300s", got)
	}
	if got := cfg.WorkDirPath(); got != "." {
		t.Fatalf("WorkDirPath default: got %q want .", got)
	}
	if got := cfg.EvalConfigPath(); got != "evals/config.json" {
		t.Fatalf("EvalConfigPath default: got %q", got)
	}
	if got := cfg.ModelsFilePath(); got != "evals/models.json" {
		t.Fatalf("ModelsFilePath default: got %q", got)
	}
	if got := cfg.ConfigsDirPath(); got != "evals/configs" {
		t.Fatalf("ConfigsDirPath default: got %q", got)
	}
	if got := cfg.ChallengesDirPath(); got != "evals/quality/challenges" {
		t.Fatalf("ChallengesDirPath default: got %q", got)
	}
	if got := cfg.ResultsDirPath(); got != "evals/results" {
		t.Fatalf("ResultsDirPath default: got %q", got)
	}
	if got := cfg.LogFilePath(); got != "cgbench.log" {
		t.Fatalf("LogFilePath default: got %q", got)
	}
}

func TestAccessorOverrides(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Subject:        "  cg-nightly ",
		TimeoutSeconds: 42,
		WorkDir:        "/srv/eval",
		LogFile:        "run.log",
	}
	if got := cfg.SubjectCommand(); got != "cg-nightly" {
		t.Fatalf("SubjectCommand override: got %q", got)
	}
	if got := cfg.InvocationTimeout(); got != 42*time.Second {
		t.Fatalf("InvocationTimeout override: got %s", got)
	}
	if got := cfg.WorkDirPath(); got != "/srv/eval" {
		t.Fatalf("WorkDirPath override: got %q", got)
	}
	if got := cfg.LogFilePath(); got != "run.log" {
		t.Fatalf("LogFilePath override: got %q", got)
	}
}

func TestLoadReadsFileAndSetsPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"subject":"cg-dev","timeout":60,"resultsDir":"out/results"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("expected ConfigPath %q, got %q", path, cfg.ConfigPath)
	}
	if cfg.Subject != "cg-dev" {
		t.Fatalf("expected subject cg-dev, got %q", cfg.Subject)
	}
	if cfg.TimeoutSeconds != 60 {
		t.Fatalf("expected timeout 60, got %d", cfg.TimeoutSeconds)
	}
	if cfg.ResultsDirPath() != "out/results" {
		t.Fatalf("expected results dir out/results, got %q", cfg.ResultsDirPath())
	}
}

func TestLoadAppliesTimeoutDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.TimeoutSeconds != 300 {
		t.Fatalf("expected default timeout 300, got %d", cfg.TimeoutSeconds)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "no configuration file found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestShowConfigOutput(t *testing.T) {
	t.Parallel()

	cfg := Config{Debug: true, Subject: "cg", TimeoutSeconds: 300}
	var buf bytes.Buffer
	ShowConfig(&buf, "config/config.json", &cfg, Config{})

	out := buf.String()
	if !strings.Contains(out, "Config file: config/config.json") {
		t.Fatalf("expected config file line, got %s", out)
	}
	if !strings.Contains(out, "Debug:          true") {
		t.Fatalf("expected debug line, got %s", out)
	}
	if !strings.Contains(out, "Subject CLI:    cg") {
		t.Fatalf("expected subject line, got %s", out)
	}
}

func TestShowConfigFallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ShowConfig(&buf, "", nil, Config{Live: true})

	out := buf.String()
	if !strings.Contains(out, "No config file loaded (using defaults).") {
		t.Fatalf("expected defaults notice, got %s", out)
	}
	if !strings.Contains(out, "Live View:      true") {
		t.Fatalf("expected fallback live value, got %s", out)
	}
}
