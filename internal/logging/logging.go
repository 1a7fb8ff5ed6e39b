// internal/logging/logging.go
// Package logging mirrors run events to stdout and an append-only log file.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes the standard logger to stdout plus the given file, creating
// parent directories as needed. An empty path logs to stdout only.
func Init(logPath string) error {
	return initLogger(logPath, os.Stdout)
}

// InitQuiet routes the standard logger to the log file only, keeping the
// terminal free for the live UI. An empty path discards log output.
func InitQuiet(logPath string) error {
	return initLogger(logPath, nil)
}

func initLogger(logPath string, mirror io.Writer) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if mirror != nil {
		writers = append(writers, mirror)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close detaches the log file and restores the default logger output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent records a formatted run event.
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogInvocation records one subject-CLI invocation as a single k=v line.
// The scenario is the sweep axis (challenge name or size factor) and the
// payload is the command line or captured output being logged.
func LogInvocation(model, configFile, scenario string, payload any) {
	msg := buildInvocationMessage(model, configFile, scenario, payload)
	log.Println(msg)
}

func buildInvocationMessage(model, configFile, scenario string, payload any) string {
	modelValue := strings.TrimSpace(model)
	if modelValue == "" {
		modelValue = "unknown"
	}
	configValue := strings.TrimSpace(configFile)
	if configValue == "" {
		configValue = "unknown"
	}
	parts := []string{"[INVOKE]"}
	parts = append(parts, fmt.Sprintf("model=%s", modelValue))
	parts = append(parts, fmt.Sprintf("config=%s", configValue))
	if scenario = strings.TrimSpace(scenario); scenario != "" {
		parts = append(parts, fmt.Sprintf("scenario=%s", scenario))
	}
	parts = append(parts, fmt.Sprintf("payload=%s", formatPayload(payload)))
	return strings.Join(parts, " ")
}

func formatPayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case []byte:
		if len(v) == 0 {
			return "[]"
		}
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
