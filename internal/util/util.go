// internal/util/util.go
package util

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}

// TruncateToWidth truncates each line of a string to a specified width in runes.
func TruncateToWidth(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if utf8.RuneCountInString(line) > width {
			lines[i] = TruncateRunes(line, width)
		}
	}
	return strings.Join(lines, "\n")
}

// FormatSeconds renders a duration as seconds with millisecond precision,
// the format used for execution times in result rows and progress output.
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}

// FormatFactor renders a size factor without trailing zeros.
func FormatFactor(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// BoolToInt converts a boolean to an integer (1 for true, 0 for false).
func BoolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
