// internal/speed/speed.go
// Package speed runs the latency sweep: for every (model, config file, size
// factor) combination a synthetic input file is generated, fed through the
// subject CLI, and the wall-clock execution time recorded as one CSV row.
package speed

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwiater/cgbench/internal/appconfig"
	"github.com/mwiater/cgbench/internal/evalconfig"
	"github.com/mwiater/cgbench/internal/logging"
	"github.com/mwiater/cgbench/internal/results"
	"github.com/mwiater/cgbench/internal/subject"
	"github.com/mwiater/cgbench/internal/sweep"
	"github.com/mwiater/cgbench/internal/util"
)

// Run executes the full speed sweep described by the harness and eval
// configurations, writing progress to out. Missing configuration is fatal;
// per-scenario failures are logged and the sweep continues.
func Run(cfg *appconfig.Config, out io.Writer, obs sweep.Observer) error {
	evalCfg, err := evalconfig.Load(cfg.EvalConfigPath())
	if err != nil {
		return err
	}

	file, err := results.NewSpeedFile(cfg.ResultsDirPath())
	if err != nil {
		return err
	}

	runner := subject.NewRunner(cfg.SubjectCommand())
	runner.Notices = out
	modelNames := evalCfg.ModelNames()
	factors := evalCfg.Factors()

	total := 0
	for _, name := range modelNames {
		total += len(evalCfg.Models[name].ConfigFiles) * len(factors)
	}
	obs.SweepStarted(sweep.Speed, file.Path, total)
	defer obs.SweepFinished()

	fmt.Fprintln(out, "Starting speed evaluation...")
	fmt.Fprintf(out, "Results will be written to: %s\n", file.Path)
	fmt.Fprintf(out, "Models: %v\n", modelNames)
	fmt.Fprintf(out, "Size factors: %v\n", factors)
	fmt.Fprintln(out)
	log.Printf("Speed evaluation started: %d models, %d size factors, results in %s",
		len(modelNames), len(factors), file.Path)

	for _, modelName := range modelNames {
		model := evalCfg.Models[modelName]
		if len(model.ConfigFiles) == 0 {
			fmt.Fprintf(out, "Warning: No config files specified for model %s, skipping.\n", modelName)
			continue
		}

		for _, configFile := range model.ConfigFiles {
			configPath := filepath.Join(cfg.ConfigsDirPath(), configFile)
			if _, err := os.Stat(configPath); err != nil {
				fmt.Fprintf(out, "Warning: Config file %s does not exist, skipping.\n", configPath)
				continue
			}

			fmt.Fprintf(out, "Evaluating %s with config %s...\n", modelName, configFile)

			for _, factor := range factors {
				scenario := sweep.Scenario{Model: modelName, ConfigFile: configFile, Label: util.FormatFactor(factor)}
				obs.ScenarioStarted(scenario)
				outcome := runScenario(runner, cfg, out, configPath, modelName, configFile, factor, model.ContextTokens(), file)
				if outcome.Err != "" {
					fmt.Fprintf(out, "ERROR: %s\n", outcome.Err)
					log.Printf("Speed scenario failed: model=%s config=%s factor=%s: %s",
						modelName, configFile, util.FormatFactor(factor), outcome.Err)
				}
				obs.ScenarioFinished(scenario, outcome)
			}
		}
	}

	fmt.Fprintf(out, "\nEvaluation complete. Results saved to: %s\n", file.Path)
	log.Printf("Speed evaluation complete: results in %s", file.Path)
	return nil
}

// runScenario measures one invocation over a synthetic input file. The input
// file is removed on every exit path, including invocation errors and
// timeouts. The measured time spans the whole negotiated run, so a fallback
// retry counts toward it.
func runScenario(runner *subject.Runner, cfg *appconfig.Config, out io.Writer, configPath, modelName, configFile string, factor float64, maxTokens int, file *results.File) sweep.Outcome {
	testFile, size, err := writeTestFile(maxTokens, factor)
	if err != nil {
		return sweep.Outcome{Err: fmt.Sprintf("error creating test input: %v", err)}
	}
	defer os.Remove(testFile)

	fmt.Fprintf(out, "  Size factor %s (%d bytes)... ", util.FormatFactor(factor), size)
	logging.LogInvocation(modelName, configFile, util.FormatFactor(factor), "cat "+testFile)

	start := time.Now()
	result, err := runner.Run(subject.Request{
		ConfigFile:   configPath,
		Command:      "cat " + testFile,
		WorkDir:      cfg.WorkDirPath(),
		Timeout:      cfg.InvocationTimeout(),
		ForceSummary: true,
	})
	executionTime := time.Since(start)
	if err != nil {
		return sweep.Outcome{Err: err.Error()}
	}

	summary := result.Stdout
	if result.TimedOut {
		summary = fmt.Sprintf("Command timed out after %ds. stdout: %s stderr: %s",
			int(cfg.InvocationTimeout().Seconds()), result.Stdout, result.Stderr)
	}

	fmt.Fprintf(out, "%ss\n", util.FormatSeconds(executionTime))

	row := results.SpeedRow{
		Model:         modelName,
		ConfigFile:    configFile,
		SizeFactor:    factor,
		ExecutionTime: executionTime,
		SummaryLength: len([]rune(summary)),
		ExitCode:      result.ExitCode,
		Summary:       summary,
	}
	if err := file.AppendSpeed(row); err != nil {
		return sweep.Outcome{Err: err.Error()}
	}

	return sweep.Outcome{
		ExitCode:      result.ExitCode,
		Duration:      executionTime,
		SummaryLength: row.SummaryLength,
	}
}

// writeTestFile creates a temp file of exactly int(factor*maxTokens)
// repeated "a" characters and returns its path and size.
func writeTestFile(maxTokens int, factor float64) (string, int, error) {
	size := int(factor * float64(maxTokens))
	f, err := os.CreateTemp("", "cgbench-input-*.txt")
	if err != nil {
		return "", 0, err
	}
	if _, err := f.WriteString(strings.Repeat("a", size)); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", 0, err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", 0, err
	}
	return f.Name(), size, nil
}
