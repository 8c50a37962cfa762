package compress

// Generic is the fallback compressor: truncation only, sub-command ignored.
type Generic struct {
	limits Limits
}

// NewGeneric creates a generic compressor with the given limits.
func NewGeneric(limits Limits) *Generic {
	return &Generic{limits: limits.orDefault()}
}

// Compress implements Compressor.
func (g *Generic) Compress(raw, _ string) string {
	return g.limits.Truncate(raw)
}
