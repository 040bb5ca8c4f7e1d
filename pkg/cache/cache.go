// Package cache stores pipeline results so repeated runs skip recomputation.
//
// # Overview
//
// Body generation is deterministic in (genome, config, seed), and growth is
// deterministic in (genome, generations, seed). That makes both safe to key
// by content hash and reuse across runs. The CLI keeps entries on disk; a
// shared Redis instance lets several machines reuse each other's meshes.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry below a directory, with expiry
//   - [RedisCache]: entries in Redis using native key expiry
//   - [NullCache]: stores nothing, used when caching is disabled
//
// # Keys
//
// A [Keyer] derives keys from a genome hash plus the options that affect the
// result. [ScopedKeyer] prefixes every key, which keeps experiments that share
// one Redis instance apart:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "lab:")
//	key := keyer.ArtifactKey(cache.Hash(genomeJSON), cache.ArtifactKeyOpts{Format: "obj"})
package cache

import (
	"context"
	"time"
)

// TTLs for each kind of cached entry.
const (
	TTLGrowth   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// GrowthKeyOpts are the options that determine a growth lineage.
type GrowthKeyOpts struct {
	Generations int    `json:"generations"`
	Seed        uint64 `json:"seed"`
}

// ArtifactKeyOpts are the options that determine a rendered artifact.
// ConfigHash is the [Hash] of the encoded body configuration.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	ConfigHash string `json:"config_hash,omitempty"`
	Seed       uint64 `json:"seed"`
	Name       string `json:"name,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// GrowthKey returns the key for the lineage grown from a genome.
	GrowthKey(genomeHash string, opts GrowthKeyOpts) string

	// ArtifactKey returns the key for one rendered output of a genome.
	ArtifactKey(genomeHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the genome hash together with the key options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GrowthKey implements [Keyer].
func (DefaultKeyer) GrowthKey(genomeHash string, opts GrowthKeyOpts) string {
	return hashKey("growth", genomeHash, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(genomeHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, genomeHash, opts)
}
