// Package tokens estimates token counts for compression savings.
//
// DESIGN: Uses tiktoken (cl100k_base) when the encoding loads; falls
// back to a bytes/4 heuristic otherwise. Counts are estimates shown in
// logs and history, never used for control flow.
package tokens

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	once sync.Once
	enc  *tiktoken.Tiktoken
)

func encoding() *tiktoken.Tiktoken {
	once.Do(func() {
		// Error ignored: enc stays nil and Count falls back.
		enc, _ = tiktoken.GetEncoding("cl100k_base")
	})
	return enc
}

// Count estimates the token count of s.
func Count(s string) int {
	if s == "" {
		return 0
	}
	if e := encoding(); e != nil {
		return len(e.Encode(s, nil, nil))
	}
	return (len(s) + 3) / 4
}

// Saved reports tokens saved by compressing raw to compact, floored at
// zero: a compressor never claims negative savings.
func Saved(raw, compact string) int {
	saved := Count(raw) - Count(compact)
	if saved < 0 {
		return 0
	}
	return saved
}
