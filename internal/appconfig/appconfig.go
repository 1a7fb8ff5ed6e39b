// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting the harness configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the harness configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// DefaultSubject is the subject CLI executable evaluated when none is configured.
	DefaultSubject = "cg"
	// defaultInvocationTimeout bounds a single subject-CLI invocation.
	defaultInvocationTimeout = 300 * time.Second
	// defaultEvalConfigPath locates the sweep matrix definition.
	defaultEvalConfigPath = "evals/config.json"
	// defaultModelsFilePath locates the models manifest for config generation.
	defaultModelsFilePath = "evals/models.json"
	// defaultConfigsDir holds the generated per-model subject configs.
	defaultConfigsDir = "evals/configs"
	// defaultChallengesDir holds the quality challenge definitions.
	defaultChallengesDir = "evals/quality/challenges"
	// defaultResultsDir receives the timestamped result CSV files.
	defaultResultsDir = "evals/results"
)

// Config represents the top-level harness configuration.
type Config struct {
	Debug          bool   `json:"debug"`
	Live           bool   `json:"live"`
	Subject        string `json:"subject,omitempty"`
	TimeoutSeconds int    `json:"timeout,omitempty" mapstructure:"timeout"`
	WorkDir        string `json:"workDir,omitempty"`
	EvalConfig     string `json:"evalConfig,omitempty"`
	ModelsFile     string `json:"modelsFile,omitempty"`
	ConfigsDir     string `json:"configsDir,omitempty"`
	ChallengesDir  string `json:"challengesDir,omitempty"`
	ResultsDir     string `json:"resultsDir,omitempty"`
	LogFile        string `json:"logFile,omitempty"`
	ConfigPath     string `json:"-"`
}

// SubjectCommand returns the subject CLI executable, falling back to the default.
func (c Config) SubjectCommand() string {
	if s := strings.TrimSpace(c.Subject); s != "" {
		return s
	}
	return DefaultSubject
}

// InvocationTimeout returns the per-invocation timeout, falling back to the default.
func (c Config) InvocationTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultInvocationTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// WorkDirPath returns the working directory subject invocations run in.
func (c Config) WorkDirPath() string {
	if d := strings.TrimSpace(c.WorkDir); d != "" {
		return d
	}
	return "."
}

// EvalConfigPath returns the path of the sweep matrix definition.
func (c Config) EvalConfigPath() string {
	if p := strings.TrimSpace(c.EvalConfig); p != "" {
		return p
	}
	return defaultEvalConfigPath
}

// ModelsFilePath returns the path of the models manifest.
func (c Config) ModelsFilePath() string {
	if p := strings.TrimSpace(c.ModelsFile); p != "" {
		return p
	}
	return defaultModelsFilePath
}

// ConfigsDirPath returns the directory holding generated subject configs.
func (c Config) ConfigsDirPath() string {
	if d := strings.TrimSpace(c.ConfigsDir); d != "" {
		return d
	}
	return defaultConfigsDir
}

// ChallengesDirPath returns the directory holding challenge definitions.
func (c Config) ChallengesDirPath() string {
	if d := strings.TrimSpace(c.ChallengesDir); d != "" {
		return d
	}
	return defaultChallengesDir
}

// ResultsDirPath returns the directory result files are written to.
func (c Config) ResultsDirPath() string {
	if d := strings.TrimSpace(c.ResultsDir); d != "" {
		return d
	}
	return defaultResultsDir
}

// LogFilePath returns the path to the harness log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "cgbench.log"
}

// Load reads the harness configuration from the specified path, with fallback
// to a legacy path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, fmt.Errorf("no configuration file found (searched %q and %q)", DefaultConfigPath, legacyConfigPath)
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = int(defaultInvocationTimeout.Seconds())
	}

	return config, nil
}
