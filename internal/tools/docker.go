package tools

import (
	"context"

	"github.com/cxproxy/cx/internal/compress"
)

// Docker runs a docker sub-command and compresses the output.
func (p *Proxy) Docker(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return "[docker] error: needs a subcommand (ps, images, logs, …)"
	}
	return p.execute(ctx, "docker", "docker", args, compress.NewDocker(p.limits), args[0])
}
