// internal/subject/markers_test.go
package subject

import "testing"

func TestClassifyExtractsOutputFile(t *testing.T) {
	t.Parallel()
	text := "Summary: the build failed with two errors.\n" +
		"The complete output is available at /tmp/x.out\n" +
		"Exit code: 1\n"
	c := Classify(text)
	if c.OutputFile != "/tmp/x.out" {
		t.Fatalf("OutputFile = %q, want %q", c.OutputFile, "/tmp/x.out")
	}
	if c.UsedRawOutput {
		t.Fatal("expected UsedRawOutput to be false")
	}
}

func TestClassifyFirstMarkerLineWins(t *testing.T) {
	t.Parallel()
	text := "The complete output is available at /tmp/first.out\n" +
		"The complete output is available at /tmp/second.out\n"
	if c := Classify(text); c.OutputFile != "/tmp/first.out" {
		t.Fatalf("OutputFile = %q, want first path", c.OutputFile)
	}
}

func TestClassifyTrimsPath(t *testing.T) {
	t.Parallel()
	text := "The complete output is available at   /tmp/padded.out  \n"
	if c := Classify(text); c.OutputFile != "/tmp/padded.out" {
		t.Fatalf("OutputFile = %q, want trimmed path", c.OutputFile)
	}
}

func TestClassifyNoOutputFile(t *testing.T) {
	t.Parallel()
	if c := Classify("Summary: everything passed.\n"); c.OutputFile != "" {
		t.Fatalf("OutputFile = %q, want empty", c.OutputFile)
	}
}

func TestClassifyRawPassthrough(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "both markers",
			text: "Output shorter than 200 tokens, returning raw output:\nhello\n",
			want: true,
		},
		{
			name: "mixed case",
			text: "OUTPUT SHORTER THAN threshold. Returning Raw Output.\n",
			want: true,
		},
		{
			name: "threshold marker alone",
			text: "output shorter than expected\n",
			want: false,
		},
		{
			name: "passthrough marker alone",
			text: "returning raw output\n",
			want: false,
		},
		{
			name: "neither",
			text: "Summary: fine.\n",
			want: false,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tc.text).UsedRawOutput; got != tc.want {
				t.Fatalf("UsedRawOutput = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestForceFlagRejected(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		combined string
		want     bool
	}{
		{
			name:     "parser diagnostic",
			combined: "\nerror: unexpected argument '--force-summary' found",
			want:     true,
		},
		{
			name:     "bare flag mention",
			combined: "unknown option --force-summary",
			want:     true,
		},
		{
			name:     "uppercase diagnostic",
			combined: "ERROR: Unexpected Argument '--FORCE-SUMMARY' Found",
			want:     true,
		},
		{
			name:     "unrelated failure",
			combined: "error: connection refused",
			want:     false,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := forceFlagRejected(tc.combined); got != tc.want {
				t.Fatalf("forceFlagRejected(%q) = %v, want %v", tc.combined, got, tc.want)
			}
		})
	}
}
