package tools

import (
	"context"

	"github.com/cxproxy/cx/internal/compress"
)

// Run executes an arbitrary command and truncates its output.
func (p *Proxy) Run(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return "[run] error: no command provided"
	}
	return p.execute(ctx, "run", args[0], args[1:], compress.NewGeneric(p.limits), "")
}
