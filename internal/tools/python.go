package tools

import (
	"context"

	"github.com/cxproxy/cx/internal/compress"
)

// Python routes python-ecosystem sub-commands: pytest, ruff and mypy
// run directly; package operations go through uv. The returned
// compress key may differ from the program sub-command.
func (p *Proxy) Python(ctx context.Context, args []string) string {
	program, built, key := pythonCommand(args)
	return p.execute(ctx, "python", program, built, compress.NewPython(p.limits), key)
}

func pythonCommand(args []string) (program string, out []string, compressKey string) {
	if len(args) == 0 {
		return "python", []string{"--version"}, "run"
	}

	sub := args[0]
	rest := args[1:]

	switch sub {
	case "pytest", "test":
		built := []string{"-x", "-q"}
		// Respect explicit verbosity.
		if anyEqual(rest, "-v", "--verbose", "-q") {
			built = nil
		}
		return "pytest", append(built, rest...), "pytest"
	case "ruff":
		if len(rest) == 0 {
			return "ruff", []string{"check"}, "ruff"
		}
		return "ruff", rest, "ruff"
	case "mypy":
		return "mypy", rest, "mypy"
	case "pip":
		if len(rest) == 0 {
			return "uv", []string{"pip", "list"}, "list"
		}
		key := "pip"
		switch rest[0] {
		case "list", "freeze":
			key = "list"
		case "outdated":
			key = "outdated"
		}
		return "uv", append([]string{"pip"}, rest...), key
	case "sync", "lock", "add", "remove":
		return "uv", args, sub
	case "run", "init", "venv":
		return "uv", args, "run"
	default:
		// Unknown sub-commands pass through to uv untouched.
		return "uv", args, "run"
	}
}
