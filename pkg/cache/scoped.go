package cache

// ScopedKeyer wraps a Keyer with a prefix so independent runs can share one
// backend without colliding.
//
// Example usage:
//
//	// Keys for one experiment in a shared Redis
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "exp:tails:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GrowthKey generates a prefixed key for growth lineages.
func (k *ScopedKeyer) GrowthKey(genomeHash string, opts GrowthKeyOpts) string {
	return k.prefix + k.inner.GrowthKey(genomeHash, opts)
}

// ArtifactKey generates a prefixed key for rendered artifacts.
func (k *ScopedKeyer) ArtifactKey(genomeHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(genomeHash, opts)
}
