// internal/commands/eval_test.go
package cgbench

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/mwiater/cgbench/internal/appconfig"
	"github.com/mwiater/cgbench/internal/sweep"
	"github.com/spf13/cobra"
)

func TestSweepOutputsPlainByDefault(t *testing.T) {
	prevConfig := currentConfig
	currentConfig = &appconfig.Config{}
	t.Cleanup(func() { currentConfig = prevConfig })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	out, obs, cleanup := sweepOutputs(cmd)
	defer cleanup()

	if _, ok := obs.(sweep.Nop); !ok {
		t.Fatalf("expected Nop observer in plain mode, got %T", obs)
	}
	if out == io.Discard {
		t.Fatal("plain mode must keep progress output")
	}
}

func TestSweepOutputsLiveFallsBackWithoutTerminal(t *testing.T) {
	prevTerminal := isTerminal
	isTerminal = func(io.Writer) bool { return false }
	t.Cleanup(func() { isTerminal = prevTerminal })

	prevConfig := currentConfig
	currentConfig = &appconfig.Config{Live: true}
	t.Cleanup(func() { currentConfig = prevConfig })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	_, obs, cleanup := sweepOutputs(cmd)
	defer cleanup()

	if _, ok := obs.(sweep.Nop); !ok {
		t.Fatalf("expected plain fallback observer, got %T", obs)
	}
	if !strings.Contains(buf.String(), "falling back to plain output") {
		t.Fatalf("expected fallback warning, got %q", buf.String())
	}
}
