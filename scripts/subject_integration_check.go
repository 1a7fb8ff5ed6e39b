// scripts/subject_integration_check.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwiater/cgbench/internal/appconfig"
	"github.com/mwiater/cgbench/internal/subject"
)

func main() {
	configPath := flag.String("config", appconfig.DefaultConfigPath, "Path to harness config JSON")
	subjectOverride := flag.String("subject", "", "Override subject CLI executable")
	subjectConfig := flag.String("subjectConfig", "", "Subject config TOML for the live summarize probe")
	timeout := flag.Duration("timeout", 30*time.Second, "Per-probe timeout")
	flag.Parse()

	subjectCmd, err := resolveSubject(*configPath, *subjectOverride)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Target subject: %s\n\n", subjectCmd)

	if err := checkExecutable(subjectCmd); err != nil {
		fmt.Fprintf(os.Stderr, "executable check failed: %v\n", err)
	}

	if err := probeHelp(subjectCmd, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "help probe failed: %v\n", err)
	}

	if *subjectConfig != "" {
		if err := probeSummarize(subjectCmd, *subjectConfig, *timeout); err != nil {
			fmt.Fprintf(os.Stderr, "summarize probe failed: %v\n", err)
		}
	}
}

func resolveSubject(configPath, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	cfg, err := appconfig.Load(configPath)
	if err != nil {
		return "", err
	}
	return cfg.SubjectCommand(), nil
}

func checkExecutable(subjectCmd string) error {
	fmt.Println("== executable ==")
	name := subjectCmd
	if fields := strings.Fields(subjectCmd); len(fields) > 0 {
		name = fields[0]
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return err
	}
	fmt.Printf("Resolved: %s\n\n", path)
	return nil
}

func probeHelp(subjectCmd string, timeout time.Duration) error {
	fmt.Println("== --help probe ==")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "sh", "-c", subjectCmd+" --help").CombinedOutput()
	if err != nil && len(out) == 0 {
		return err
	}

	text := string(out)
	fmt.Printf("Advertises -c/--config: %v\n", strings.Contains(text, "-c"))
	fmt.Printf("Advertises --force-summary: %v\n", strings.Contains(text, "--force-summary"))
	preview := strings.TrimSpace(text)
	if len(preview) > 300 {
		preview = preview[:300] + "..."
	}
	fmt.Println("Help preview:")
	fmt.Println(preview)
	fmt.Println()
	return nil
}

func probeSummarize(subjectCmd, configFile string, timeout time.Duration) error {
	fmt.Println("== summarize probe ==")
	dir, err := os.MkdirTemp("", "cgbench-probe-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "probe.txt")
	payload := strings.Repeat("integration probe line for the summarize pipeline\n", 40)
	if err := os.WriteFile(input, []byte(payload), 0o644); err != nil {
		return err
	}

	runner := subject.NewRunner(subjectCmd)
	result, err := runner.Run(subject.Request{
		ConfigFile:   configFile,
		Command:      "cat " + input,
		Timeout:      timeout,
		ForceSummary: true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Exit code: %d\n", result.ExitCode)
	fmt.Printf("Duration: %.3fs\n", result.Duration.Seconds())
	fmt.Printf("Timed out: %v\n", result.TimedOut)

	class := subject.Classify(result.Stdout)
	fmt.Printf("Raw passthrough: %v\n", class.UsedRawOutput)
	if class.OutputFile != "" {
		fmt.Printf("Output file: %s\n", class.OutputFile)
	}

	preview := strings.TrimSpace(result.Stdout)
	if len(preview) > 300 {
		preview = preview[:300] + "..."
	}
	fmt.Println("Stdout preview:")
	fmt.Println(preview)
	fmt.Println()
	return nil
}
