// internal/subject/subject.go
// Package subject drives the summarization CLI under evaluation: it builds
// shell invocations, enforces timeouts, recovers when the installed build
// rejects the force-summary flag, and classifies the captured output.
package subject

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// TimeoutExitCode is the reserved exit code recorded when an invocation
// exceeds its timeout, matching the shell convention for timed-out commands.
const TimeoutExitCode = 124

// defaultTimeout bounds invocations whose request does not set one.
const defaultTimeout = 300 * time.Second

// Request describes a single subject-CLI invocation. A request is immutable
// per attempt; the fallback retry derives a second request with ForceSummary
// cleared.
type Request struct {
	ConfigFile   string
	Command      string
	WorkDir      string
	Timeout      time.Duration
	ForceSummary bool
}

// Result captures one process execution. Stdout and Stderr hold whatever was
// captured, including partial output from a timed-out child.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
	TimedOut bool
}

// Combined returns stdout and stderr joined with a newline, the text the
// fallback diagnostics are matched against.
func (r Result) Combined() string {
	return r.Stdout + "\n" + r.Stderr
}

// Runner invokes the subject CLI.
type Runner struct {
	// Subject is the executable name or path of the CLI under evaluation.
	Subject string
	// Notices receives operator-facing notices such as the fallback retry
	// message. Nil falls back to stdout.
	Notices io.Writer
}

// NewRunner returns a Runner for the given subject executable.
func NewRunner(subject string) *Runner {
	return &Runner{Subject: subject}
}

func (r *Runner) notices() io.Writer {
	if r.Notices != nil {
		return r.Notices
	}
	return os.Stdout
}

// function aliases allow tests to spy attempts and notices.
var (
	// invokeFn proxies Invoke so tests can count attempts.
	invokeFn = (*Runner).Invoke
	// noticeFn prints operator-facing notices.
	noticeFn = func(w io.Writer, format string, args ...any) { fmt.Fprintf(w, format, args...) }
)

// Invoke executes one subject-CLI invocation through the shell and returns
// its Result. A non-zero child exit is not an error; the returned error
// covers spawn failures only. A timed-out child yields TimeoutExitCode with
// whatever partial output was captured. Exactly one OS process is spawned
// per call; retry policy lives in Run.
func (r *Runner) Invoke(req Request) (Result, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", CommandLine(r.Subject, req))
	if req.WorkDir != "" {
		cmd.Dir = req.WorkDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if ctx.Err() == context.DeadlineExceeded {
		result.ExitCode = TimeoutExitCode
		result.TimedOut = true
		return result, nil
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, fmt.Errorf("invoking %s: %w", r.Subject, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	return result, nil
}

// Run executes the request with the fallback policy applied: when a
// non-timeout failure indicates the installed subject rejects
// --force-summary, the invocation is retried exactly once without the flag.
// The terminal Result is the retry's when a retry happened; a failing retry
// is final. A timed-out first attempt is never retried.
func (r *Runner) Run(req Request) (Result, error) {
	result, err := invokeFn(r, req)
	if err != nil {
		return result, err
	}
	if result.TimedOut || result.ExitCode == 0 || !req.ForceSummary {
		return result, nil
	}
	if !forceFlagRejected(result.Combined()) {
		return result, nil
	}

	noticeFn(r.notices(), "  Info: --force-summary not supported by %s, retrying without it.\n", r.Subject)
	retry := req
	retry.ForceSummary = false
	return invokeFn(r, retry)
}

// CommandLine assembles the shell command for a request. The subject and
// config path are quoted as single tokens; the user command is appended
// verbatim so shell constructs inside it keep working.
func CommandLine(subject string, req Request) string {
	parts := []string{shellQuote(subject), "-c", shellQuote(req.ConfigFile)}
	if req.ForceSummary {
		parts = append(parts, "--force-summary")
	}
	if req.Command != "" {
		parts = append(parts, req.Command)
	}
	return strings.Join(parts, " ")
}

// shellSafe matches strings that need no quoting inside a shell command.
var shellSafe = regexp.MustCompile(`^[A-Za-z0-9@%+=:,./_-]+$`)

// shellQuote renders s as a single shell token, single-quoting it when it
// contains metacharacters.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if shellSafe.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
