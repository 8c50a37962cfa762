package compress

import (
	"fmt"
	"strings"
)

// Python compresses Python-ecosystem output: pytest, ruff, mypy, pip and
// the uv dependency resolver.
type Python struct {
	limits Limits
	subs   map[string]subFunc
}

// NewPython creates a python compressor with the given limits.
func NewPython(limits Limits) *Python {
	p := &Python{limits: limits.orDefault()}
	p.subs = map[string]subFunc{
		"pytest":    p.pytest,
		"test":      p.pytest,
		"ruff":      p.ruff,
		"mypy":      p.mypy,
		"pip":       p.pipInstall,
		"install":   p.pipInstall,
		"uninstall": p.pipInstall,
		"list":      p.pipList,
		"freeze":    p.pipList,
		"outdated":  p.pipOutdated,
		"sync":      p.uvSync,
		"lock":      p.uvLock,
		"add":       p.uvDep("add"),
		"remove":    p.uvDep("remove"),
		"run":       p.limits.Truncate,
	}
	return p
}

// Compress implements Compressor.
func (p *Python) Compress(raw, sub string) string {
	if fn, ok := p.subs[sub]; ok {
		return fn(raw)
	}
	return p.limits.Truncate(raw)
}

// pytest keeps failure blocks (capped at 20 lines each) and the `===`
// summary lines, dropping the per-test dots. A failure block is closed by
// a `=`-prefixed section line or a blank line after a couple of content
// lines — a heuristic that can mis-close on blank lines inside a
// failure's own diagnostics, accepted as-is.
func (p *Python) pytest(raw string) string {
	var out []string
	inFailure := false
	failureLines := 0

	for _, line := range splitLines(raw) {
		// Session summary lines, always kept
		if strings.HasPrefix(line, "=") &&
			(strings.Contains(line, "passed") || strings.Contains(line, "failed") || strings.Contains(line, "error")) {
			out = append(out, line)
			continue
		}
		// FAILURES banner
		if strings.Contains(line, "FAILURES") && strings.HasPrefix(line, "=") {
			inFailure = true
			out = append(out, line)
			continue
		}
		// Individual failure header
		if strings.HasPrefix(line, "___") && strings.HasSuffix(line, "___") {
			inFailure = true
			failureLines = 0
			out = append(out, line)
			continue
		}
		if inFailure {
			failureLines++
			if failureLines <= 20 {
				out = append(out, line)
			}
			if strings.HasPrefix(line, "=") || (line == "" && failureLines > 2) {
				inFailure = false
			}
			continue
		}
		// Short test summary entries
		if strings.HasPrefix(line, "FAILED ") || strings.HasPrefix(line, "ERROR ") {
			out = append(out, line)
		}
	}

	if len(out) == 0 {
		return p.limits.Truncate(raw)
	}
	return "[pytest]\n" + strings.Join(out, "\n")
}

// ruff groups lint diagnostics under the tool's own summary line when it
// printed one, with a counted fallback otherwise.
func (p *Python) ruff(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "[ruff] clean"
	}

	var diagnostics []string
	summary := ""

	for _, line := range splitLines(raw) {
		t := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(t, "Found ") ||
			strings.HasPrefix(t, "All checks") ||
			strings.HasPrefix(t, "Would reformat") ||
			strings.HasPrefix(t, "reformatted"):
			summary = t
		case t != "" && (strings.Contains(t, ".py:") || strings.Contains(t, ".pyi:")):
			diagnostics = append(diagnostics, t)
		}
	}

	var b strings.Builder
	if summary != "" {
		fmt.Fprintf(&b, "[ruff] %s\n", summary)
	} else {
		fmt.Fprintf(&b, "[ruff] %d issues\n", len(diagnostics))
	}
	listCapped(&b, diagnostics, 30, "more")
	return b.String()
}

// mypy collects errors and notes, keeping the checker's summary line.
func (p *Python) mypy(raw string) string {
	var errors []string
	summary := ""

	for _, line := range splitLines(raw) {
		t := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(t, "Found ") || strings.HasPrefix(t, "Success"):
			summary = t
		case strings.Contains(t, ": error:") || strings.Contains(t, ": note:"):
			errors = append(errors, t)
		}
	}

	if len(errors) == 0 {
		if summary != "" {
			return fmt.Sprintf("[mypy] %s", summary)
		}
		return p.limits.Truncate(raw)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[mypy] %d errors\n", len(errors))
	listCapped(&b, errors, 30, "more")
	if summary != "" {
		fmt.Fprintf(&b, "%s\n", summary)
	}
	return b.String()
}

// pipInstall keeps the installed summary and counts already-satisfied noise.
func (p *Python) pipInstall(raw string) string {
	var installed []string
	already := 0
	summary := ""

	for _, line := range splitLines(raw) {
		t := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(t, "Successfully installed"):
			summary = t
		case strings.Contains(t, "already satisfied") || strings.Contains(t, "Already installed"):
			already++
		case strings.HasPrefix(t, "Installing") || strings.HasPrefix(t, "Installed"):
			installed = append(installed, t)
		}
	}

	var b strings.Builder
	if summary != "" {
		fmt.Fprintf(&b, "[pip] %s\n", summary)
	} else if len(installed) > 0 {
		fmt.Fprintf(&b, "[pip] installed %d\n", len(installed))
		n := len(installed)
		if n > 20 {
			n = 20
		}
		for _, pkg := range installed[:n] {
			fmt.Fprintf(&b, "  %s\n", pkg)
		}
	}
	if already > 0 {
		fmt.Fprintf(&b, "[pip] %d already satisfied\n", already)
	}

	if b.Len() == 0 {
		return p.limits.Truncate(raw)
	}
	return b.String()
}

// pipList counts installed packages, skipping the table header.
func (p *Python) pipList(raw string) string {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return "[pip list] empty"
	}

	var packages []string
	for _, line := range lines {
		if strings.HasPrefix(line, "Package") || strings.HasPrefix(line, "---") || strings.TrimSpace(line) == "" {
			continue
		}
		packages = append(packages, line)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[packages: %d]\n", len(packages))
	listCapped(&b, packages, 50, "more")
	return b.String()
}

// pipOutdated lists packages with newer versions available.
func (p *Python) pipOutdated(raw string) string {
	var packages []string
	for _, line := range splitLines(raw) {
		if strings.HasPrefix(line, "Package") || strings.HasPrefix(line, "---") || strings.TrimSpace(line) == "" {
			continue
		}
		packages = append(packages, line)
	}

	if len(packages) == 0 {
		return "[pip] all up to date"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[outdated: %d]\n", len(packages))
	listCapped(&b, packages, 30, "more")
	return b.String()
}

// uvSync reduces a sync to resolve summary plus +/- change counts. When
// the raw output is long enough to be interesting it is appended in
// deduplicated form.
func (p *Python) uvSync(raw string) string {
	installed, uninstalled := 0, 0
	resolved := ""

	for _, line := range splitLines(raw) {
		t := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(t, "Resolved") || strings.HasPrefix(t, "Audited"):
			resolved = t
		case strings.HasPrefix(t, "+") || strings.HasPrefix(t, "Installed"):
			installed++
		case strings.HasPrefix(t, "-") || strings.HasPrefix(t, "Uninstalled"):
			uninstalled++
		}
	}

	var b strings.Builder
	b.WriteString("[uv sync] ")
	if resolved != "" {
		fmt.Fprintf(&b, "%s | ", resolved)
	}
	fmt.Fprintf(&b, "+%d -%d\n", installed, uninstalled)

	if len(splitLines(raw)) > 10 {
		b.WriteString(p.limits.DedupLines(raw))
	}
	return b.String()
}

// uvLock echoes the resolver's package count line.
func (p *Python) uvLock(raw string) string {
	for _, line := range splitLines(raw) {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "Resolved") {
			return fmt.Sprintf("[uv lock] %s", t)
		}
	}
	return p.limits.Truncate(raw)
}

// uvDep summarizes `uv add`/`uv remove`: resolve line plus the +/- and
// Updated change lines.
func (p *Python) uvDep(sub string) subFunc {
	return func(raw string) string {
		var changes []string
		resolved := ""

		for _, line := range splitLines(raw) {
			t := strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(t, "Resolved") || strings.HasPrefix(t, "Audited"):
				resolved = t
			case strings.HasPrefix(t, "+") || strings.HasPrefix(t, "-") || strings.HasPrefix(t, "Updated"):
				changes = append(changes, t)
			}
		}

		var b strings.Builder
		fmt.Fprintf(&b, "[uv %s] ", sub)
		if resolved != "" {
			fmt.Fprintf(&b, "%s\n", resolved)
		} else {
			b.WriteByte('\n')
		}
		listCapped(&b, changes, 20, "more")
		return b.String()
	}
}
