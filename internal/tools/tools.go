// Package tools runs the wrapped commands and applies compression.
//
// DESIGN: Each proxy method (1) builds the command line with sensible
// defaults injected per sub-command, (2) executes it capturing stdout
// and stderr, (3) compresses the combined output, (4) appends the
// status footer. Spawn failures surface as `[<label>] error: …`
// strings; the compression core itself never errors.
//
// FILES:
//   - runner.go: process execution, RunResult
//   - git.go, cargo.go, python.go, docker.go, grep.go, generic.go:
//     per-tool argument building
//   - fs.go: native tree listing for `cx ls`
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/cxproxy/cx/internal/compress"
	"github.com/cxproxy/cx/internal/config"
	"github.com/cxproxy/cx/internal/history"
	"github.com/cxproxy/cx/internal/tokens"
)

// Proxy wires configuration, compression and history recording for
// all wrapped tools.
type Proxy struct {
	cfg    config.Config
	limits compress.Limits
	hist   *history.Store // nil when history is disabled
}

// New creates a Proxy. hist may be nil.
func New(cfg config.Config, hist *history.Store) *Proxy {
	return &Proxy{
		cfg:    cfg,
		limits: compress.Limits{MaxLines: cfg.MaxLines, MaxLineLen: cfg.MaxLineLen},
		hist:   hist,
	}
}

// Footer formats the one-line status summary. The shape is a stable
// contract consumers may parse.
func Footer(label string, r RunResult) string {
	status := "ok"
	if !r.Success() {
		status = "FAIL"
	}
	return fmt.Sprintf("[%s] %s (%dms, exit %d)", label, status, r.ElapsedMS, r.ExitCode)
}

// execute runs program with args, compresses the combined output under
// sub and appends the footer when enabled.
func (p *Proxy) execute(ctx context.Context, label, program string, args []string, c compress.Compressor, sub string) string {
	result, err := Exec(ctx, program, args)
	if err != nil {
		return fmt.Sprintf("[%s] error: %v", label, err)
	}

	raw := result.Combined()
	compact := c.Compress(raw, sub)
	p.record(label, sub, result, raw, compact)

	if !p.cfg.ShowFooter {
		return compact
	}
	return joinFooter(compact, Footer(label, result))
}

// joinFooter appends the footer on its own line.
func joinFooter(compact, footer string) string {
	if compact == "" {
		return footer
	}
	if !strings.HasSuffix(compact, "\n") {
		compact += "\n"
	}
	return compact + footer
}

// record logs savings and appends to history. Best effort only: a
// broken history db must never fail the wrapped command.
func (p *Proxy) record(label, sub string, result RunResult, raw, compact string) {
	rawTokens := tokens.Count(raw)
	compactTokens := tokens.Count(compact)

	log.Debug().
		Str("tool", label).
		Str("sub", sub).
		Int("exit", result.ExitCode).
		Int64("elapsed_ms", result.ElapsedMS).
		Int("raw_bytes", len(raw)).
		Int("compact_bytes", len(compact)).
		Int("tokens_saved", tokens.Saved(raw, compact)).
		Msg("compressed")

	if p.hist == nil {
		return
	}
	err := p.hist.Append(history.Record{
		Tool:          label,
		Sub:           sub,
		ExitCode:      result.ExitCode,
		ElapsedMS:     result.ElapsedMS,
		RawBytes:      len(raw),
		CompactBytes:  len(compact),
		RawTokens:     rawTokens,
		CompactTokens: compactTokens,
	})
	if err != nil {
		log.Debug().Err(err).Msg("history append failed")
	}
}
