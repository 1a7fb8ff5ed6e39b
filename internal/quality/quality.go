// internal/quality/quality.go
// Package quality runs the quality evaluation sweep: every challenge is
// executed through the subject CLI for every (model, config file) pair, the
// summary is classified and scored, and one CSV row is appended per scenario.
package quality

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwiater/cgbench/internal/appconfig"
	"github.com/mwiater/cgbench/internal/evalconfig"
	"github.com/mwiater/cgbench/internal/logging"
	"github.com/mwiater/cgbench/internal/results"
	"github.com/mwiater/cgbench/internal/subject"
	"github.com/mwiater/cgbench/internal/sweep"
)

// Run executes the full quality sweep described by the harness and eval
// configurations, writing progress to out. Missing configuration is fatal;
// per-scenario failures are logged and the sweep continues.
func Run(cfg *appconfig.Config, out io.Writer, obs sweep.Observer) error {
	evalCfg, err := evalconfig.Load(cfg.EvalConfigPath())
	if err != nil {
		return err
	}

	challenges, err := LoadChallenges(cfg.ChallengesDirPath())
	if err != nil {
		return err
	}
	if len(challenges) == 0 {
		fmt.Fprintf(out, "Warning: no challenge files found in %s\n", cfg.ChallengesDirPath())
		return nil
	}

	file, err := results.NewQualityFile(cfg.ResultsDirPath())
	if err != nil {
		return err
	}

	runner := subject.NewRunner(cfg.SubjectCommand())
	runner.Notices = out
	modelNames := evalCfg.ModelNames()
	challengeNames := make([]string, 0, len(challenges))
	for _, challenge := range challenges {
		challengeNames = append(challengeNames, challenge.Name)
	}

	total := 0
	for _, name := range modelNames {
		total += len(evalCfg.Models[name].ConfigFiles) * len(challenges)
	}
	obs.SweepStarted(sweep.Quality, file.Path, total)
	defer obs.SweepFinished()

	fmt.Fprintln(out, "Starting quality evaluation...")
	fmt.Fprintf(out, "Results will be written to: %s\n", file.Path)
	fmt.Fprintf(out, "Models: %v\n", modelNames)
	fmt.Fprintf(out, "Challenges: %v\n", challengeNames)
	fmt.Fprintln(out)
	log.Printf("Quality evaluation started: %d models, %d challenges, results in %s",
		len(modelNames), len(challenges), file.Path)

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

			for _, challenge := range challenges {
				scenario := sweep.Scenario{Model: modelName, ConfigFile: configFile, Label: challenge.Name}
				if strings.TrimSpace(challenge.Command) == "" {
					fmt.Fprintf(out, "  Warning: Challenge %s has no command, skipping.\n", challenge.Name)
					obs.ScenarioFinished(scenario, sweep.Outcome{Skipped: true})
					continue
				}

				obs.ScenarioStarted(scenario)
				fmt.Fprintf(out, "  Challenge: %s... ", challenge.Name)
				outcome := runChallenge(runner, cfg, out, configPath, modelName, configFile, challenge, file)
				if outcome.Err != "" {
					fmt.Fprintf(out, "ERROR: %s\n", outcome.Err)
					log.Printf("Quality scenario failed: model=%s config=%s challenge=%s: %s",
						modelName, configFile, challenge.Name, outcome.Err)
				}
				obs.ScenarioFinished(scenario, outcome)
			}
		}
	}

	fmt.Fprintf(out, "\nEvaluation complete. Results saved to: %s\n", file.Path)
	log.Printf("Quality evaluation complete: results in %s", file.Path)
	return nil
}

// runChallenge invokes the subject CLI for one challenge, scores the
// response, and appends the result row. Failures are reported through the
// Outcome rather than an error so the sweep can continue.
func runChallenge(runner *subject.Runner, cfg *appconfig.Config, out io.Writer, configPath, modelName, configFile string, challenge Challenge, file *results.File) sweep.Outcome {
	logging.LogInvocation(modelName, configFile, challenge.Name, challenge.Command)

	result, err := runner.Run(subject.Request{
		ConfigFile:   configPath,
		Command:      challenge.Command,
		WorkDir:      cfg.WorkDirPath(),
		Timeout:      cfg.InvocationTimeout(),
		ForceSummary: true,
	})
	if err != nil {
		return sweep.Outcome{Err: err.Error()}
	}

	summary := result.Stdout
	if result.TimedOut {
		summary = result.Stdout + "\n" + result.Stderr
	}

	classification := subject.Classify(summary)
	if classification.OutputFile != "" {
		log.Printf("Full output artifact: %s", classification.OutputFile)
	}

	var evaluation Evaluation
	if classification.UsedRawOutput {
		evaluation = Zeroed(challenge)
	} else {
		evaluation = Score(summary, challenge)
	}
	needsFullOutput := NeedsFullOutput(evaluation, classification.UsedRawOutput)

	fmt.Fprintf(out, "Quality: %.2f, Can solve: %v\n", evaluation.QualityScore, evaluation.CanSolve)

	row := results.QualityRow{
		Model:           modelName,
		ConfigFile:      configFile,
		Challenge:       challenge.Name,
		CanSolve:        evaluation.CanSolve,
		NeedsFullOutput: needsFullOutput,
		QualityScore:    evaluation.QualityScore,
		ExitCode:        result.ExitCode,
		Summary:         summary,
	}
	if err := file.AppendQuality(row); err != nil {
		return sweep.Outcome{Err: err.Error()}
	}

	return sweep.Outcome{
		ExitCode: result.ExitCode,
		Duration: result.Duration,
		Score:    evaluation.QualityScore,
		CanSolve: evaluation.CanSolve,
	}
}
