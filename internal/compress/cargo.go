package compress

import (
	"fmt"
	"strings"
)

// Cargo compresses cargo command output, dispatching on the sub-command.
type Cargo struct {
	limits Limits
	subs   map[string]subFunc
}

// NewCargo creates a cargo compressor with the given limits.
func NewCargo(limits Limits) *Cargo {
	c := &Cargo{limits: limits.orDefault()}
	c.subs = map[string]subFunc{
		"test":    c.test,
		"nextest": c.test,
		"build":   c.build,
		"check":   c.build,
		"clippy":  c.clippy,
		"fmt":     c.fmt,
		"run":     c.run,
		"bench":   c.bench,
		"doc":     c.doc,
		"add":     c.depChange("add"),
		"remove":  c.depChange("remove"),
		"update":  c.update,
		"install": c.install,
		"publish": c.publish,
	}
	return c
}

// Compress implements Compressor.
func (c *Cargo) Compress(raw, sub string) string {
	if fn, ok := c.subs[sub]; ok {
		return fn(raw)
	}
	return c.limits.Truncate(raw)
}

// test keeps failure blocks verbatim and the summary-class lines, and
// drops the per-test ok noise. A failure block opens on a `---- name ----`
// delimiter and closes on the next blank line.
func (c *Cargo) test(raw string) string {
	var out []string
	seen := make(map[string]bool)
	inFailure := false

	push := func(line string) {
		out = append(out, line)
		seen[line] = true
	}

	for _, line := range splitLines(raw) {
		if strings.HasPrefix(line, "---- ") && strings.HasSuffix(line, " ----") {
			inFailure = true
		}
		if inFailure {
			push(line)
			if line == "" {
				inFailure = false
			}
		}
		if (strings.HasPrefix(line, "test result:") ||
			strings.HasPrefix(line, "failures:") ||
			strings.Contains(line, "FAILED") ||
			strings.HasPrefix(line, "running ")) && !seen[line] {
			push(line)
		}
	}

	if len(out) == 0 {
		return c.limits.Truncate(raw)
	}
	return "[cargo test]\n" + strings.Join(out, "\n")
}

// build buckets lines into errors, warnings and build summary. The noisy
// `warning: unused` class is dropped entirely.
func (c *Cargo) build(raw string) string {
	var errors, warnings, summary []string

	for _, line := range splitLines(raw) {
		switch {
		case strings.HasPrefix(line, "error"):
			errors = append(errors, line)
		case strings.HasPrefix(line, "warning") && !strings.HasPrefix(line, "warning: unused"):
			warnings = append(warnings, line)
		case strings.Contains(line, "Finished") ||
			strings.Contains(line, "could not compile") ||
			(strings.Contains(line, "Compiling") && strings.Contains(line, "v")):
			summary = append(summary, line)
		}
	}

	var b strings.Builder
	for _, s := range summary {
		fmt.Fprintf(&b, "%s\n", strings.TrimSpace(s))
	}
	if len(errors) > 0 {
		fmt.Fprintf(&b, "[errors: %d]\n", len(errors))
		for _, e := range errors {
			fmt.Fprintf(&b, "  %s\n", e)
		}
	}
	if len(warnings) > 0 {
		fmt.Fprintf(&b, "[warnings: %d]\n", len(warnings))
		listCapped(&b, warnings, 10, "more")
	}

	if b.Len() == 0 {
		return c.limits.Truncate(raw)
	}
	return b.String()
}

// clippy collects diagnostic lines and caps the listing.
func (c *Cargo) clippy(raw string) string {
	var lints []string
	for _, line := range splitLines(raw) {
		if strings.HasPrefix(line, "warning:") || strings.HasPrefix(line, "error:") {
			lints = append(lints, line)
		}
	}
	if len(lints) == 0 {
		return c.limits.Truncate(raw)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[clippy: %d diagnostics]\n", len(lints))
	listCapped(&b, lints, 30, "more")
	return b.String()
}

// fmt reports files needing reformatting, or confirms a clean tree.
func (c *Cargo) fmt(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "[cargo fmt] clean"
	}

	var diffs []string
	for _, line := range splitLines(raw) {
		if strings.HasPrefix(line, "Diff in") || strings.HasPrefix(line, "Would reformat") {
			diffs = append(diffs, line)
		}
	}
	if len(diffs) > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "[cargo fmt] %d files need formatting\n", len(diffs))
		n := len(diffs)
		if n > 20 {
			n = 20
		}
		for _, d := range diffs[:n] {
			fmt.Fprintf(&b, "  %s\n", d)
		}
		return b.String()
	}

	return c.limits.Truncate(raw)
}

// run keeps the program's own output and strips the build-phase banners.
func (c *Cargo) run(raw string) string {
	var out []string
	for _, line := range splitLines(raw) {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "Compiling") ||
			strings.HasPrefix(t, "Downloading") ||
			strings.HasPrefix(t, "Fresh") ||
			strings.HasPrefix(t, "Finished") ||
			strings.HasPrefix(t, "Running") {
			continue
		}
		out = append(out, line)
	}

	if len(out) == 0 {
		return "[cargo run] ok"
	}
	return c.limits.Truncate(strings.Join(out, "\n"))
}

// bench keeps benchmark result lines plus the trailing summary.
func (c *Cargo) bench(raw string) string {
	var results []string
	summary := ""

	for _, line := range splitLines(raw) {
		if strings.HasPrefix(line, "test ") && strings.Contains(line, "bench:") {
			results = append(results, line)
		} else if strings.HasPrefix(line, "test result:") {
			summary = line
		}
	}

	if len(results) == 0 {
		return c.limits.Truncate(raw)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[cargo bench] %d benchmarks\n", len(results))
	listCapped(&b, results, 30, "more")
	if summary != "" {
		fmt.Fprintf(&b, "%s\n", summary)
	}
	return b.String()
}

// doc counts documented crates and warnings, keeping the finished line.
func (c *Cargo) doc(raw string) string {
	documenting := 0
	finished := ""
	warnings := 0

	for _, line := range splitLines(raw) {
		t := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(t, "Documenting"):
			documenting++
		case strings.HasPrefix(t, "Finished"):
			finished = t
		case strings.HasPrefix(t, "warning:"):
			warnings++
		}
	}

	var b strings.Builder
	if documenting > 0 {
		fmt.Fprintf(&b, "[cargo doc] %d crates\n", documenting)
	}
	if warnings > 0 {
		fmt.Fprintf(&b, "[warnings: %d]\n", warnings)
	}
	if finished != "" {
		fmt.Fprintf(&b, "%s\n", finished)
	}

	if b.Len() == 0 {
		return c.limits.Truncate(raw)
	}
	return b.String()
}

// depChange shows what `cargo add`/`cargo remove` actually changed.
func (c *Cargo) depChange(sub string) subFunc {
	return func(raw string) string {
		var meaningful []string
		for _, line := range splitLines(raw) {
			t := strings.TrimSpace(line)
			if t == "" ||
				strings.HasPrefix(t, "Updating") ||
				strings.HasPrefix(t, "Downloading") ||
				strings.HasPrefix(t, "Downloaded") {
				continue
			}
			meaningful = append(meaningful, t)
		}

		if len(meaningful) == 0 {
			return fmt.Sprintf("[cargo %s] ok", sub)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "[cargo %s]\n", sub)
		n := len(meaningful)
		if n > 10 {
			n = 10
		}
		for _, line := range meaningful[:n] {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		return b.String()
	}
}

// update lists dependency-graph changes.
func (c *Cargo) update(raw string) string {
	var updates []string
	for _, line := range splitLines(raw) {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "Updating") ||
			strings.HasPrefix(t, "Adding") ||
			strings.HasPrefix(t, "Removing") ||
			strings.HasPrefix(t, "Locking") {
			updates = append(updates, t)
		}
	}

	if len(updates) == 0 {
		if strings.TrimSpace(raw) == "" {
			return "[cargo update] already up to date"
		}
		return c.limits.Truncate(raw)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[cargo update] %d changes\n", len(updates))
	listCapped(&b, updates, 30, "more")
	return b.String()
}

// install keeps the install confirmation and finished summary.
func (c *Cargo) install(raw string) string {
	installed := ""
	summary := ""

	for _, line := range splitLines(raw) {
		t := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(t, "Installing") ||
			strings.HasPrefix(t, "Installed") ||
			strings.HasPrefix(t, "Replacing"):
			installed = t
		case strings.HasPrefix(t, "Finished"):
			summary = t
		}
	}

	var b strings.Builder
	b.WriteString("[cargo install] ")
	if installed != "" {
		fmt.Fprintf(&b, "%s\n", installed)
	} else {
		b.WriteString("ok\n")
	}
	if summary != "" {
		fmt.Fprintf(&b, "%s\n", summary)
	}
	return b.String()
}

// publish keeps upload confirmations plus anything error or warning shaped.
func (c *Cargo) publish(raw string) string {
	var meaningful []string
	for _, line := range splitLines(raw) {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "Uploading") ||
			strings.HasPrefix(t, "Uploaded") ||
			strings.HasPrefix(t, "Publishing") ||
			strings.HasPrefix(t, "Published") ||
			strings.Contains(t, "error") ||
			strings.Contains(t, "warning") {
			meaningful = append(meaningful, t)
		}
	}

	if len(meaningful) == 0 {
		return c.limits.Truncate(raw)
	}

	var b strings.Builder
	b.WriteString("[cargo publish]\n")
	for _, line := range meaningful {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	return b.String()
}
