package tools

import (
	"context"
	"strings"

	"github.com/cxproxy/cx/internal/compress"
)

// Git runs a git sub-command with defaults injected and compresses
// the output.
func (p *Proxy) Git(ctx context.Context, args []string) string {
	sub, built := gitArgs(args)
	return p.execute(ctx, "git", "git", built, compress.NewGit(p.limits), sub)
}

// gitArgs injects per-sub-command defaults. Empty args default to
// `git status`.
func gitArgs(args []string) (sub string, out []string) {
	if len(args) == 0 {
		return "status", []string{"status"}
	}

	sub = args[0]
	rest := args[1:]
	out = []string{sub}

	switch sub {
	case "log":
		if !anyPrefix(rest, "--format", "--pretty") {
			out = append(out, "--oneline")
		}
		if !anyPrefix(rest, "-n", "--max-count") {
			out = append(out, "-n30")
		}
	case "diff":
		if !anyEqual(rest, "--stat", "--name-only", "--cached") {
			out = append(out, "--stat")
		}
	case "branch":
		if len(rest) == 0 {
			out = append(out, "-a")
		}
	case "stash":
		if len(rest) == 0 {
			out = append(out, "list")
		}
	case "remote":
		if len(rest) == 0 {
			out = append(out, "-v")
		}
	case "tag":
		if len(rest) == 0 {
			out = append(out, "-l")
		}
	case "clean":
		// Dry-run unless force was asked for explicitly.
		if !anyEqual(rest, "-f", "--force") {
			out = append(out, "-n")
		}
	}

	return sub, append(out, rest...)
}

func anyPrefix(args []string, prefixes ...string) bool {
	for _, a := range args {
		for _, p := range prefixes {
			if strings.HasPrefix(a, p) {
				return true
			}
		}
	}
	return false
}

func anyEqual(args []string, wanted ...string) bool {
	for _, a := range args {
		for _, w := range wanted {
			if a == w {
				return true
			}
		}
	}
	return false
}
