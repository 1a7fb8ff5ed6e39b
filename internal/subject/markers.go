// internal/subject/markers.go
// The subject CLI reports its decisions in free text; all marker matching
// against that text lives here.
package subject

import "strings"

const (
	// outputFileMarker appears on the line naming the full-output artifact.
	outputFileMarker = "complete output is available at"
	// outputFileDelimiter precedes the artifact path on that line.
	outputFileDelimiter = "available at "
	// rawThresholdMarker and rawPassthroughMarker must both appear, in any
	// casing, for a response to count as an unsummarized passthrough.
	rawThresholdMarker   = "output shorter than"
	rawPassthroughMarker = "returning raw output"
	// unsupportedFlagDiagnostic is the parser error older subject builds
	// print when handed --force-summary.
	unsupportedFlagDiagnostic = "unexpected argument '--force-summary'"
	forceSummaryFlag          = "--force-summary"
)

// Classification is the structured signal extracted from a terminal Result's
// stdout.
type Classification struct {
	// OutputFile is the artifact path holding the complete command output,
	// empty when the response named none.
	OutputFile string
	// UsedRawOutput reports that the subject skipped summarization and
	// returned the captured output unchanged.
	UsedRawOutput bool
}

// Classify derives a Classification from response text. Scanning stops at
// the first line naming an artifact path; everything after the delimiter on
// that line, trimmed of surrounding whitespace, is the path.
func Classify(text string) Classification {
	var c Classification
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, outputFileMarker) {
			parts := strings.Split(line, outputFileDelimiter)
			if len(parts) > 1 {
				c.OutputFile = strings.TrimSpace(parts[1])
			}
			break
		}
	}
	lowered := strings.ToLower(text)
	c.UsedRawOutput = strings.Contains(lowered, rawThresholdMarker) &&
		strings.Contains(lowered, rawPassthroughMarker)
	return c
}

// forceFlagRejected reports whether combined output indicates the installed
// subject build does not recognize --force-summary.
func forceFlagRejected(combined string) bool {
	lowered := strings.ToLower(combined)
	return strings.Contains(lowered, unsupportedFlagDiagnostic) ||
		strings.Contains(lowered, forceSummaryFlag)
}
