package compress

import (
	"fmt"
	"strings"
)

// Git compresses git command output, dispatching on the sub-command.
type Git struct {
	limits Limits
	subs   map[string]subFunc
}

// NewGit creates a git compressor with the given limits.
func NewGit(limits Limits) *Git {
	g := &Git{limits: limits.orDefault()}
	g.subs = map[string]subFunc{
		"status":      g.status,
		"diff":        g.diff,
		"log":         g.limits.Truncate,
		"show":        g.limits.Truncate,
		"push":        g.transfer("push"),
		"pull":        g.transfer("pull"),
		"fetch":       g.transfer("fetch"),
		"clone":       g.transfer("clone"),
		"add":         g.writeOp("add"),
		"commit":      g.writeOp("commit"),
		"reset":       g.writeOp("reset"),
		"restore":     g.writeOp("restore"),
		"rm":          g.writeOp("rm"),
		"mv":          g.writeOp("mv"),
		"init":        g.writeOp("init"),
		"branch":      g.branch,
		"tag":         g.tag,
		"stash":       g.stash,
		"merge":       g.mergeLike("merge"),
		"rebase":      g.mergeLike("rebase"),
		"cherry-pick": g.mergeLike("cherry-pick"),
		"checkout":    g.checkout("checkout"),
		"switch":      g.checkout("switch"),
		"remote":      g.remote,
		"blame":       g.blame,
		"clean":       g.clean,
	}
	return g
}

// Compress implements Compressor.
func (g *Git) Compress(raw, sub string) string {
	if fn, ok := g.subs[sub]; ok {
		return fn(raw)
	}
	return g.limits.Truncate(raw)
}

// status condenses `git status` into branch, ahead/behind and per-section
// file lists. Sections are tracked with a small state machine toggled by
// the header lines git prints.
func (g *Git) status(raw string) string {
	branch := "(detached)"
	aheadBehind := ""
	for _, line := range splitLines(raw) {
		if strings.HasPrefix(line, "On branch ") {
			branch = strings.TrimPrefix(line, "On branch ")
			break
		}
	}
	for _, line := range splitLines(raw) {
		if strings.HasPrefix(line, "Your branch") {
			aheadBehind = line
			break
		}
	}

	type section int
	const (
		secNone section = iota
		secStaged
		secUnstaged
		secUntracked
	)

	var staged, unstaged, untracked []string
	sec := secNone

	for _, line := range splitLines(raw) {
		switch {
		case strings.HasPrefix(line, "Changes to be committed"):
			sec = secStaged
		case strings.HasPrefix(line, "Changes not staged"):
			sec = secUnstaged
		case strings.HasPrefix(line, "Untracked files"):
			sec = secUntracked
		case strings.HasPrefix(strings.TrimSpace(line), "(") || line == "":
			// hint lines and blanks carry no file names
		case strings.HasPrefix(line, "\t") || strings.HasPrefix(line, "  "):
			trimmed := strings.TrimSpace(line)
			switch sec {
			case secStaged:
				staged = append(staged, trimmed)
			case secUnstaged:
				unstaged = append(unstaged, trimmed)
			case secUntracked:
				untracked = append(untracked, trimmed)
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[branch] %s", branch)
	if aheadBehind != "" && !strings.Contains(aheadBehind, "up to date") {
		fmt.Fprintf(&b, " | %s", strings.TrimSpace(aheadBehind))
	}
	b.WriteByte('\n')

	if len(staged) > 0 {
		fmt.Fprintf(&b, "[staged %d] %s\n", len(staged), strings.Join(staged, ", "))
	}
	if len(unstaged) > 0 {
		fmt.Fprintf(&b, "[modified %d] %s\n", len(unstaged), strings.Join(unstaged, ", "))
	}
	if len(untracked) > 0 {
		fmt.Fprintf(&b, "[untracked %d] %s\n", len(untracked), strings.Join(untracked, ", "))
	}
	if len(staged) == 0 && len(unstaged) == 0 && len(untracked) == 0 {
		b.WriteString("[clean]\n")
	}
	return b.String()
}

// diff keeps --stat summary lines when present; otherwise it walks the
// patch, counting added/removed lines per file.
func (g *Git) diff(raw string) string {
	var statLines []string
	var diffFiles []string
	currentFile := ""
	haveFile := false
	adds, dels := 0, 0

	flush := func() {
		if haveFile {
			diffFiles = append(diffFiles, fmt.Sprintf("  %s: +%d -%d", currentFile, adds, dels))
		}
	}

	for _, line := range splitLines(raw) {
		// Stat rows from --stat output
		if strings.Contains(line, "|") &&
			(strings.Contains(line, "+") || strings.Contains(line, "-")) &&
			len(line) < 120 {
			statLines = append(statLines, line)
			continue
		}
		switch {
		case strings.HasPrefix(line, "diff --git"):
			flush()
			fields := strings.Split(line, " ")
			currentFile = strings.TrimPrefix(fields[len(fields)-1], "b/")
			haveFile = true
			adds, dels = 0, 0
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			adds++
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			dels++
		}
	}
	flush()

	var b strings.Builder
	b.WriteString("[diff]\n")
	switch {
	case len(statLines) > 0:
		for _, s := range statLines {
			fmt.Fprintf(&b, "  %s\n", strings.TrimSpace(s))
		}
	case len(diffFiles) > 0:
		for _, f := range diffFiles {
			fmt.Fprintf(&b, "%s\n", f)
		}
	default:
		b.WriteString("  (no changes)\n")
	}
	return b.String()
}

// transfer strips pack/progress chatter from push/pull/fetch/clone and
// joins whatever remains into one line.
func (g *Git) transfer(sub string) subFunc {
	return func(raw string) string {
		var meaningful []string
		for _, line := range splitLines(raw) {
			t := strings.TrimSpace(line)
			if t == "" ||
				strings.HasPrefix(t, "Enumerating") ||
				strings.HasPrefix(t, "Counting") ||
				strings.HasPrefix(t, "Compressing") ||
				strings.HasPrefix(t, "Writing") ||
				strings.HasPrefix(t, "Total") ||
				strings.HasPrefix(t, "Delta") ||
				strings.HasPrefix(t, "remote:") ||
				strings.Contains(t, "100%") {
				continue
			}
			meaningful = append(meaningful, line)
		}

		if len(meaningful) == 0 {
			return fmt.Sprintf("[git %s] ok", sub)
		}
		return fmt.Sprintf("[git %s] %s", sub, strings.Join(meaningful, " | "))
	}
}

// writeOp confirms add/commit/reset style operations: a bracketed commit
// marker when present, otherwise the first nonempty line.
func (g *Git) writeOp(sub string) subFunc {
	return func(raw string) string {
		for _, line := range splitLines(raw) {
			if strings.Contains(line, "[") && strings.Contains(line, "]") {
				return fmt.Sprintf("[git %s] %s", sub, strings.TrimSpace(line))
			}
		}
		if strings.TrimSpace(raw) == "" {
			return fmt.Sprintf("[git %s] ok", sub)
		}
		first := firstNonEmptyLine(raw)
		if first == "" {
			first = "ok"
		}
		return fmt.Sprintf("[git %s] %s", sub, first)
	}
}

// branch lists branches compactly, calling out the current one.
func (g *Git) branch(raw string) string {
	var branches []string
	for _, line := range splitLines(raw) {
		if strings.TrimSpace(line) != "" {
			branches = append(branches, line)
		}
	}
	if len(branches) == 0 {
		return "[branches] none"
	}

	current := "(none)"
	var others []string
	for _, line := range branches {
		if strings.HasPrefix(line, "*") {
			if current == "(none)" {
				current = strings.TrimSpace(strings.TrimPrefix(line, "* "))
			}
			continue
		}
		others = append(others, strings.TrimSpace(line))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[branches: %d] current: %s\n", len(branches), current)
	listCapped(&b, others, 30, "more")
	return b.String()
}

// tag lists tags compactly.
func (g *Git) tag(raw string) string {
	var tags []string
	for _, line := range splitLines(raw) {
		if strings.TrimSpace(line) != "" {
			tags = append(tags, line)
		}
	}
	if len(tags) == 0 {
		return "[tags] none"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[tags: %d]\n", len(tags))
	listCapped(&b, tags, 30, "more")
	return b.String()
}

// stash distinguishes `stash list` output from push/pop confirmations.
func (g *Git) stash(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "[stash] ok"
	}

	lines := splitLines(raw)
	isList := false
	for _, line := range lines {
		if strings.HasPrefix(line, "stash@{") {
			isList = true
			break
		}
	}

	if isList {
		var b strings.Builder
		fmt.Fprintf(&b, "[stash: %d entries]\n", len(lines))
		listCapped(&b, lines, 20, "more")
		return b.String()
	}

	return fmt.Sprintf("[stash] %s", strings.TrimSpace(lines[0]))
}

// mergeLike reports conflicts first — all of them, uncapped, since they
// are rare and high-signal — and otherwise squeezes the remainder into a
// short summary.
func (g *Git) mergeLike(sub string) subFunc {
	return func(raw string) string {
		if strings.TrimSpace(raw) == "" {
			return fmt.Sprintf("[git %s] ok", sub)
		}

		var conflicts []string
		for _, line := range splitLines(raw) {
			if strings.Contains(line, "CONFLICT") || strings.Contains(line, "conflict") {
				conflicts = append(conflicts, line)
			}
		}
		if len(conflicts) > 0 {
			var b strings.Builder
			fmt.Fprintf(&b, "[git %s] CONFLICTS (%d)\n", sub, len(conflicts))
			for _, c := range conflicts {
				fmt.Fprintf(&b, "  %s\n", strings.TrimSpace(c))
			}
			return b.String()
		}

		var meaningful []string
		for _, line := range splitLines(raw) {
			t := strings.TrimSpace(line)
			if t == "" || strings.HasPrefix(t, "Auto-merging") || strings.HasPrefix(t, "Applying:") {
				continue
			}
			meaningful = append(meaningful, line)
		}
		if len(meaningful) == 0 {
			return fmt.Sprintf("[git %s] ok", sub)
		}
		if len(meaningful) > 5 {
			meaningful = meaningful[:5]
		}
		return fmt.Sprintf("[git %s] %s", sub, strings.Join(meaningful, " | "))
	}
}

// checkout echoes the first nonempty line.
func (g *Git) checkout(sub string) subFunc {
	return func(raw string) string {
		if strings.TrimSpace(raw) == "" {
			return fmt.Sprintf("[git %s] ok", sub)
		}
		first := firstNonEmptyLine(raw)
		if first == "" {
			first = "ok"
		}
		return fmt.Sprintf("[git %s] %s", sub, first)
	}
}

// remote keeps one row per remote (the fetch rows of `git remote -v`).
func (g *Git) remote(raw string) string {
	var remotes []string
	for _, line := range splitLines(raw) {
		if strings.Contains(line, "(fetch)") {
			remotes = append(remotes, line)
		}
	}
	if len(remotes) == 0 {
		if strings.TrimSpace(raw) == "" {
			return "[remotes] none"
		}
		return g.limits.Truncate(raw)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[remotes: %d]\n", len(remotes))
	for _, r := range remotes {
		fmt.Fprintf(&b, "  %s\n", r)
	}
	return b.String()
}

// blame keeps line attributions but caps both list length and the width
// of individual lines.
func (g *Git) blame(raw string) string {
	lines := splitLines(raw)
	total := len(lines)
	if total == 0 {
		return "[blame] empty"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[blame: %d lines]\n", total)
	n := total
	if n > 80 {
		n = 80
	}
	for _, line := range lines[:n] {
		fmt.Fprintf(&b, "%s\n", capLine(line, 120))
	}
	if total > 80 {
		fmt.Fprintf(&b, "  … +%d more lines\n", total-80)
	}
	return b.String()
}

// clean summarizes removed (or would-be-removed) paths.
func (g *Git) clean(raw string) string {
	var removed []string
	for _, line := range splitLines(raw) {
		if strings.HasPrefix(line, "Removing") || strings.HasPrefix(line, "Would remove") {
			removed = append(removed, line)
		}
	}
	if len(removed) == 0 {
		if strings.TrimSpace(raw) == "" {
			return "[git clean] nothing to clean"
		}
		return g.limits.Truncate(raw)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[git clean] %d items\n", len(removed))
	listCapped(&b, removed, 30, "more")
	return b.String()
}

// firstNonEmptyLine returns the first line with visible content, trimmed.
func firstNonEmptyLine(raw string) string {
	for _, line := range splitLines(raw) {
		if strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

// listCapped writes up to max indented items plus an overflow marker.
func listCapped(b *strings.Builder, items []string, max int, noun string) {
	n := len(items)
	if n > max {
		n = max
	}
	for _, it := range items[:n] {
		fmt.Fprintf(b, "  %s\n", it)
	}
	if len(items) > max {
		fmt.Fprintf(b, "  … +%d %s\n", len(items)-max, noun)
	}
}
