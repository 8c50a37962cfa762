package tools

import (
	"context"

	"github.com/cxproxy/cx/internal/compress"
)

// Cargo runs a cargo sub-command with defaults injected and compresses
// the output. Empty args default to `cargo check`.
func (p *Proxy) Cargo(ctx context.Context, args []string) string {
	sub, built := cargoArgs(args)
	return p.execute(ctx, "cargo", "cargo", built, compress.NewCargo(p.limits), sub)
}

func cargoArgs(args []string) (sub string, out []string) {
	if len(args) == 0 {
		return "check", []string{"check"}
	}

	sub = args[0]
	rest := args[1:]
	out = []string{sub}

	switch sub {
	case "fmt":
		// Check only; never rewrite files unless asked.
		if len(rest) == 0 {
			out = append(out, "--check")
		}
	case "clippy":
		if !anyPrefix(rest, "--message-format") {
			out = append(out, "--message-format=short")
		}
	case "doc":
		if !anyEqual(rest, "--no-deps") {
			out = append(out, "--no-deps")
		}
	}

	return sub, append(out, rest...)
}
