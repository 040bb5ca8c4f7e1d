package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/sprout/pkg/body"
	"github.com/matzehuels/sprout/pkg/cache"
	"github.com/matzehuels/sprout/pkg/genome"
	"github.com/matzehuels/sprout/pkg/genome/rewrite"
	"github.com/matzehuels/sprout/pkg/observability"
)

// Cache key types reported to [observability.CacheHooks].
const (
	keyTypeGrowth   = "growth"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete grow → generate → render pipeline with caching.
//
// A genome too small to grow a body is not an error: the result carries a
// Diagnostic and only the diagram formats are rendered.
func (r *Runner) Execute(ctx context.Context, g *genome.Graph, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString()}
	logger := opts.Logger.With("run", result.RunID[:8])

	// Stage 1: Grow
	growStart := time.Now()
	lineage, growHit, err := r.GrowWithCacheInfo(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("grow: %w", err)
	}
	result.Lineage = lineage
	result.Genome = lineage[len(lineage)-1]
	result.GenomeHash = GenomeHash(result.Genome)
	result.Stats.GrowTime = time.Since(growStart)
	result.Stats.NodeCount = result.Genome.NodeCount()
	result.Stats.EdgeCount = result.Genome.EdgeCount()
	result.CacheInfo.GrowHit = growHit

	logger.Info("grew genome",
		"generations", len(lineage)-1,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.GrowTime)

	// Artifacts are fully determined by genome, config and seed, so a
	// complete cache hit skips body generation.
	if !opts.Refresh {
		if artifacts, ok := r.cachedArtifacts(ctx, result.GenomeHash, opts); ok {
			result.Artifacts = artifacts
			result.CacheInfo.RenderHit = true
			logger.Info("artifacts cached", "formats", opts.Formats)
			return result, nil
		}
	}

	// Stage 2: Generate
	if opts.NeedsBody() {
		genStart := time.Now()
		opts.Logger = logger
		b, err := r.GenerateBody(ctx, result.Genome, opts)
		if err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
		result.Body = b
		result.Diagnostic = b.Diagnostic
		result.Stats.GenerateTime = time.Since(genStart)
		result.Stats.Vertices = b.Mesh.VertexCount()
		result.Stats.Triangles = b.Mesh.TriangleCount()

		logger.Info("generated body",
			"vertices", result.Stats.Vertices,
			"triangles", result.Stats.Triangles,
			"scale", b.Scale,
			"duration", result.Stats.GenerateTime)
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, result.Genome, result.Body, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	if result.Diagnostic == nil {
		for format, data := range artifacts {
			key := r.Keyer.ArtifactKey(result.GenomeHash, opts.ArtifactKeyOpts(format))
			r.cacheSet(ctx, keyTypeArtifact, key, data, cache.TTLArtifact)
		}
	}

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GrowWithCacheInfo grows g for opts.Generations generations and returns
// the lineage (g first) together with cache hit info. Growth stops early
// when a genome has no match.
func (r *Runner) GrowWithCacheInfo(ctx context.Context, g *genome.Graph, opts Options) ([]*genome.Graph, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGrow(); err != nil {
		return nil, false, err
	}
	if opts.Generations == 0 {
		return []*genome.Graph{g}, false, nil
	}

	cacheKey := r.Keyer.GrowthKey(GenomeHash(g), opts.GrowthKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if lineage, err := unmarshalLineage(data); err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeGrowth)
				return lineage, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeGrowth)
	}

	hooks := observability.Pipeline()
	hooks.OnMutateStart(ctx, g.NodeCount())
	start := time.Now()

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	lineage := rewrite.Grow(g, opts.Generations, rng)
	hooks.OnMutateComplete(ctx, len(lineage)-1, time.Since(start), nil)

	if len(lineage)-1 < opts.Generations {
		opts.Logger.Debug("growth stopped early",
			"requested", opts.Generations,
			"grown", len(lineage)-1)
	}

	if data, err := marshalLineage(lineage); err == nil {
		r.cacheSet(ctx, keyTypeGrowth, cacheKey, data, cache.TTLGrowth)
	}
	return lineage, false, nil
}

// Grow is a convenience wrapper that calls GrowWithCacheInfo and discards the cache hit info.
func (r *Runner) Grow(ctx context.Context, g *genome.Graph, opts Options) ([]*genome.Graph, error) {
	lineage, _, err := r.GrowWithCacheInfo(ctx, g, opts)
	return lineage, err
}

// Descendants returns every one-step descendant of g in match order.
func (r *Runner) Descendants(ctx context.Context, g *genome.Graph) []rewrite.Descendant {
	hooks := observability.Pipeline()
	hooks.OnMutateStart(ctx, g.NodeCount())
	start := time.Now()
	ds := rewrite.Expand(g)
	hooks.OnMutateComplete(ctx, len(ds), time.Since(start), nil)
	r.Logger.Debug("expanded genome", "matches", len(ds))
	return ds
}

// GenerateBody synthesizes the body of g. Degenerate genomes yield a result
// with a Diagnostic and a nil error.
func (r *Runner) GenerateBody(ctx context.Context, g *genome.Graph, opts Options) (*body.Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, g.NodeCount(), g.EdgeCount())
	start := time.Now()

	b, err := body.Generate(g, body.Options{
		Config: opts.Config,
		Seed:   opts.Seed,
		Logger: opts.Logger,
	})
	if err != nil {
		hooks.OnGenerateComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnGenerateComplete(ctx, b.Mesh.VertexCount(), b.Mesh.TriangleCount(), time.Since(start), nil)
	return b, nil
}

// cachedArtifacts returns every requested format from the cache, or false
// if any one is missing.
func (r *Runner) cachedArtifacts(ctx context.Context, genomeHash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(genomeHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
			return nil, false
		}
		observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
		artifacts[format] = data
	}
	return artifacts, true
}

func (r *Runner) cacheSet(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "key_type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func marshalLineage(lineage []*genome.Graph) ([]byte, error) {
	pairs := make([][][2]int, len(lineage))
	for i, g := range lineage {
		pairs[i] = g.Pairs()
	}
	return json.Marshal(pairs)
}

func unmarshalLineage(data []byte) ([]*genome.Graph, error) {
	var pairs [][][2]int
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("empty lineage")
	}
	lineage := make([]*genome.Graph, len(pairs))
	for i, p := range pairs {
		g, err := genome.FromPairs(p)
		if err != nil {
			return nil, err
		}
		lineage[i] = g
	}
	return lineage, nil
}
