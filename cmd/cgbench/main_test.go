// cmd/cgbench/main_test.go
package main

import "testing"

func TestMainWiring(t *testing.T) {
	origSetVersion := setVersionInfo
	origExecute := executeCmd
	t.Cleanup(func() {
		setVersionInfo = origSetVersion
		executeCmd = origExecute
	})

	calls := struct {
		version bool
		exec    bool
	}{}

	setVersionInfo = func(v, c, d string) {
		calls.version = true
		if v == "" || c == "" || d == "" {
			t.Fatalf("expected version info to be set")
		}
	}
	executeCmd = func() {
		calls.exec = true
	}

	main()

	if !calls.version || !calls.exec {
		t.Fatalf("expected all wiring calls, got %+v", calls)
	}
}
