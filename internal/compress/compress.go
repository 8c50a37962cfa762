// Package compress turns raw command output into compact summaries.
//
// DESIGN: Every compressor is a pure function over text — no I/O, no
// shared state, deterministic. Input that doesn't match a compressor's
// expected shape silently degrades to plain truncation; compression
// never fails.
//
// FILES:
//   - compress.go: Compressor interface, Limits
//   - truncate.go: shared size-bounding primitives
//   - git.go, cargo.go, python.go, docker.go, grep.go, generic.go:
//     per-tool compressors dispatching on the sub-command name
package compress

// Default size limits applied when the caller doesn't override them.
const (
	DefaultMaxLines   = 150
	DefaultMaxLineLen = 300
)

// Limits bounds the size of compressed output.
type Limits struct {
	MaxLines   int // Maximum lines before the trailing overflow marker
	MaxLineLen int // Maximum runes per line before the ellipsis
}

// DefaultLimits returns the stock 150-line / 300-char limits.
func DefaultLimits() Limits {
	return Limits{MaxLines: DefaultMaxLines, MaxLineLen: DefaultMaxLineLen}
}

// orDefault fills in zero fields so a zero Limits behaves like DefaultLimits.
func (l Limits) orDefault() Limits {
	if l.MaxLines <= 0 {
		l.MaxLines = DefaultMaxLines
	}
	if l.MaxLineLen <= 0 {
		l.MaxLineLen = DefaultMaxLineLen
	}
	return l
}

// Compressor transforms raw command output into a compact form.
// The sub-command name selects a specialized algorithm; an empty or
// unrecognized sub falls back to truncation. String in, string out.
type Compressor interface {
	Compress(raw string, sub string) string
}

// subFunc is a specialized compression algorithm for one sub-command.
type subFunc func(raw string) string
