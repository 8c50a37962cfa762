package compress

import (
	"fmt"
	"strings"
)

// Grep compresses grep/ripgrep output by grouping matches per file. The
// sub-command hint is ignored; there is only one algorithm.
type Grep struct {
	limits Limits
}

// NewGrep creates a grep compressor with the given limits.
func NewGrep(limits Limits) *Grep {
	return &Grep{limits: limits.orDefault()}
}

// Compress implements Compressor.
func (g *Grep) Compress(raw, _ string) string {
	if strings.TrimSpace(raw) == "" {
		return "[grep] no matches"
	}

	type fileGroup struct {
		file    string
		matches []string
	}
	var files []fileGroup
	totalMatches := 0

	for _, line := range splitLines(raw) {
		totalMatches++
		colon := strings.Index(line, ":")
		if colon < 0 {
			// counted but not grouped: no file prefix to key on
			continue
		}
		file := line[:colon]
		rest := line[colon+1:]

		if len(files) > 0 && files[len(files)-1].file == file {
			last := &files[len(files)-1]
			last.matches = append(last.matches, rest)
			continue
		}
		files = append(files, fileGroup{file: file, matches: []string{rest}})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[grep] %d matches in %d files\n", totalMatches, len(files))
	for _, fg := range files {
		fmt.Fprintf(&b, "\n── %s (%d hits)\n", fg.file, len(fg.matches))
		n := len(fg.matches)
		if n > 10 {
			n = 10
		}
		for _, m := range fg.matches[:n] {
			display := m
			if len(display) > 200 {
				display = display[:200]
			}
			fmt.Fprintf(&b, "  %s\n", display)
		}
		if len(fg.matches) > 10 {
			fmt.Fprintf(&b, "  … +%d more\n", len(fg.matches)-10)
		}
	}
	return b.String()
}
