package compress

import (
	"fmt"
	"strings"
)

// Truncate caps total lines and per-line length using the default limits.
func Truncate(raw string) string {
	return DefaultLimits().Truncate(raw)
}

// TruncateWith truncates with explicit limits.
func TruncateWith(raw string, maxLines, maxLineLen int) string {
	return Limits{MaxLines: maxLines, MaxLineLen: maxLineLen}.Truncate(raw)
}

// Truncate caps the number of lines at l.MaxLines and each line's rune
// length at l.MaxLineLen. Shortened lines get a trailing " …"; when the
// line cap is exceeded a summary marker is appended. Lines are never
// reordered, only the tail past the cap is dropped.
func (l Limits) Truncate(raw string) string {
	l = l.orDefault()

	lines := splitLines(raw)
	total := len(lines)

	n := total
	if n > l.MaxLines {
		n = l.MaxLines
	}
	out := make([]string, 0, n+1)

	for _, line := range lines[:n] {
		out = append(out, capLine(line, l.MaxLineLen))
	}

	if total > l.MaxLines {
		out = append(out, fmt.Sprintf("\n[cx] … %d lines total, showing first %d", total, l.MaxLines))
	}
	return strings.Join(out, "\n")
}

// FilterAndTruncate keeps only lines matching keep, preserving order,
// then truncates. Nothing matching yields the empty string.
func (l Limits) FilterAndTruncate(raw string, keep func(string) bool) string {
	var filtered []string
	for _, line := range splitLines(raw) {
		if keep(line) {
			filtered = append(filtered, line)
		}
	}
	return l.Truncate(strings.Join(filtered, "\n"))
}

// DedupLines collapses runs of identical consecutive lines into a single
// annotated line. Non-consecutive duplicates are left alone. The result
// is truncated. Empty input stays empty.
func (l Limits) DedupLines(raw string) string {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return ""
	}

	var out []string
	current := lines[0]
	count := 1

	flush := func() {
		if count > 1 {
			out = append(out, fmt.Sprintf("%s  (×%d)", current, count))
		} else {
			out = append(out, current)
		}
	}

	for _, line := range lines[1:] {
		if line == current {
			count++
			continue
		}
		flush()
		current = line
		count = 1
	}
	flush()

	return l.Truncate(strings.Join(out, "\n"))
}

// splitLines splits on newlines the way a line iterator would: no
// trailing empty element for input ending in "\n", and empty input
// yields no lines at all.
func splitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	raw = strings.TrimSuffix(raw, "\n")
	return strings.Split(raw, "\n")
}

// capLine bounds a single line to maxLen runes, marking the cut.
func capLine(line string, maxLen int) string {
	runes := []rune(line)
	if len(runes) <= maxLen {
		return line
	}
	return string(runes[:maxLen]) + " …"
}
