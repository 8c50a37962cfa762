package tools

import (
	"context"

	"github.com/cxproxy/cx/internal/compress"
)

// Grep searches with grep or ripgrep and groups matches per file.
func (p *Proxy) Grep(ctx context.Context, pattern, path string, useRg bool) string {
	program, args := grepArgs(pattern, path, useRg)
	return p.execute(ctx, "grep", program, args, compress.NewGrep(p.limits), "")
}

func grepArgs(pattern, path string, useRg bool) (string, []string) {
	if useRg {
		return "rg", []string{"--no-heading", "-n", pattern, path}
	}
	return "grep", []string{"-rn", pattern, path}
}
