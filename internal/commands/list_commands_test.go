// internal/commands/list_commands_test.go
package cgbench

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestListCommandsTwoColumnLayout(t *testing.T) {
	var buf bytes.Buffer
	ListCommands(&buf, []CommandInfo{
		{Path: "cgbench", Description: "root"},
		{Path: "  cgbench eval", Description: "sweeps"},
	})

	out := buf.String()
	if !strings.HasPrefix(out, "Commands and Subcommands:\n") {
		t.Fatalf("expected header, got %q", out)
	}
	if !strings.Contains(out, "  cgbench") || !strings.Contains(out, "sweeps") {
		t.Fatalf("expected both columns, got %q", out)
	}
}

func TestCollectCommandDataWalksTree(t *testing.T) {
	data := collectCommandData(rootCmd, "", "")
	paths := make([]string, 0, len(data))
	for _, d := range data {
		paths = append(paths, strings.TrimLeft(d.Path, " "))
	}
	joined := strings.Join(paths, "\n")

	for _, want := range []string{
		"cgbench",
		"cgbench eval",
		"cgbench eval speed",
		"cgbench eval quality",
		"cgbench configs generate",
		"cgbench configs validate",
		"cgbench configs list",
		"cgbench report",
		"cgbench show config",
		"cgbench list commands",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected command path %q in tree:\n%s", want, joined)
		}
	}
}

func TestListCommandsCommandOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "cgbench.log")
	configPath := writeTempConfig(t, "{}")
	useConfig(t, configPath)
	resetAllFlags()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--logFile", logPath, "list", "commands"})
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })
	if _, err := rootCmd.ExecuteC(); err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "cgbench eval speed") {
		t.Fatalf("expected eval speed in listing, got %s", out)
	}
	if strings.Contains(out, "completion") {
		t.Fatalf("expected completion commands filtered, got %s", out)
	}
}
