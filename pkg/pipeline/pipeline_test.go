package pipeline

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/sprout/pkg/body"
	"github.com/matzehuels/sprout/pkg/errors"
	"github.com/matzehuels/sprout/pkg/genome"
	"github.com/matzehuels/sprout/pkg/observability"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"obj", false},
		{"ply", false},
		{"json", false},
		{"svg", false},
		{"dot", false},
		{"png", true},
		{"OBJ", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"obj", "svg"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"obj", "stl"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateGenerations(t *testing.T) {
	for _, n := range []int{0, 1, MaxGenerations} {
		if err := ValidateGenerations(n); err != nil {
			t.Errorf("ValidateGenerations(%d) error: %v", n, err)
		}
	}
	for _, n := range []int{-1, MaxGenerations + 1} {
		if err := ValidateGenerations(n); err == nil {
			t.Errorf("ValidateGenerations(%d) should fail", n)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero options should validate: %v", err)
	}
	if opts.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", opts.Seed, DefaultSeed)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatOBJ {
		t.Errorf("Formats = %v, want [obj]", opts.Formats)
	}
	if opts.Config != body.DefaultConfig() {
		t.Error("Config should default to body.DefaultConfig()")
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}

	// Idempotent
	before := opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Seed != before.Seed || opts.Config != before.Config {
		t.Error("second ValidateAndSetDefaults changed options")
	}
}

func TestOptionsInvalidConfig(t *testing.T) {
	cfg := body.DefaultConfig()
	cfg.Samples = 2
	opts := Options{Config: cfg}
	if err := opts.ValidateForGenerate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("ValidateForGenerate() error = %v, want INVALID_CONFIG", err)
	}
}

func TestNeedsBody(t *testing.T) {
	if (&Options{Formats: []string{"svg", "dot"}}).NeedsBody() {
		t.Error("diagram formats do not need a body")
	}
	if !(&Options{Formats: []string{"svg", "ply"}}).NeedsBody() {
		t.Error("ply needs a body")
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Config: body.DefaultConfig(), Seed: 9}
	mesh := opts.ArtifactKeyOpts(FormatOBJ)
	if mesh.ConfigHash == "" || mesh.Seed != 9 {
		t.Errorf("mesh key opts = %+v", mesh)
	}
	if diagram := opts.ArtifactKeyOpts(FormatSVG); diagram.ConfigHash != "" {
		t.Error("diagram keys should not depend on the body config")
	}

	other := opts
	other.Config.Twist = 2
	if opts.ArtifactKeyOpts(FormatOBJ) == other.ArtifactKeyOpts(FormatOBJ) {
		t.Error("config change should change the mesh key")
	}
}

func TestGenomeHash(t *testing.T) {
	a := genome.MustNew(genome.E(1, 2), genome.E(2, 3))
	b := genome.MustNew(genome.E(3, 2), genome.E(2, 1), genome.E(1, 2))
	if GenomeHash(a) != GenomeHash(b) {
		t.Error("equal edge sets should hash equally")
	}
	if GenomeHash(a) == GenomeHash(genome.MustNew(genome.E(1, 2))) {
		t.Error("different genomes should hash differently")
	}
}

// memCache is an in-memory cache.Cache for tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func chain() *genome.Graph {
	return genome.MustNew(genome.E(1, 2), genome.E(2, 3), genome.E(3, 4))
}

func TestRunnerGrow(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, nil)
	opts := Options{Generations: 4, Seed: 11}

	lineage, hit, err := r.GrowWithCacheInfo(ctx, chain(), opts)
	if err != nil {
		t.Fatalf("Grow() error: %v", err)
	}
	if hit {
		t.Error("first grow should miss")
	}
	if len(lineage) != 5 {
		t.Fatalf("len(lineage) = %d, want 5", len(lineage))
	}
	if !lineage[0].Equal(chain()) {
		t.Error("lineage should start with the input genome")
	}
	for i := 1; i < len(lineage); i++ {
		if lineage[i].EdgeCount() != lineage[i-1].EdgeCount()+2 {
			t.Errorf("generation %d: %d edges after %d", i, lineage[i].EdgeCount(), lineage[i-1].EdgeCount())
		}
	}

	again, hit, err := r.GrowWithCacheInfo(ctx, chain(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Error("second grow should hit the cache")
	}
	for i := range lineage {
		if !again[i].Equal(lineage[i]) {
			t.Errorf("cached generation %d = %v, want %v", i, again[i], lineage[i])
		}
	}

	// Same seed without a cache reproduces the lineage.
	fresh, err := NewRunner(nil, nil, nil).Grow(ctx, chain(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !fresh[4].Equal(lineage[4]) {
		t.Error("growth is not deterministic for a fixed seed")
	}
}

func TestRunnerGrowZeroGenerations(t *testing.T) {
	lineage, err := NewRunner(nil, nil, nil).Grow(context.Background(), chain(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(lineage) != 1 || !lineage[0].Equal(chain()) {
		t.Errorf("lineage = %v, want just the input", lineage)
	}
}

func TestRunnerDescendants(t *testing.T) {
	ds := NewRunner(nil, nil, nil).Descendants(context.Background(), genome.MustNew(genome.E(1, 2), genome.E(1, 3)))
	if len(ds) != 1 {
		t.Fatalf("len(Descendants()) = %d, want 1", len(ds))
	}
	if ds[0].Fresh != 4 {
		t.Errorf("fresh id = %d, want 4", ds[0].Fresh)
	}
}

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, nil)
	opts := Options{Generations: 1, Formats: []string{FormatOBJ, FormatPLY, FormatJSON, FormatDOT}}

	res, err := r.Execute(ctx, chain(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.RunID == "" {
		t.Error("RunID should be set")
	}
	if res.Diagnostic != nil {
		t.Fatalf("unexpected diagnostic: %v", res.Diagnostic)
	}
	if res.Body == nil || res.Stats.Triangles == 0 {
		t.Fatal("body was not generated")
	}
	for _, f := range opts.Formats {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("artifact %s missing", f)
		}
	}
	if !strings.HasPrefix(string(res.Artifacts[FormatPLY]), "ply\n") {
		t.Error("ply artifact has no header")
	}
	if !strings.Contains(string(res.Artifacts[FormatDOT]), "graph G {") {
		t.Error("dot artifact is not a DOT graph")
	}

	again, err := r.Execute(ctx, chain(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !again.CacheInfo.GrowHit || !again.CacheInfo.RenderHit {
		t.Errorf("second run cache info = %+v, want hits", again.CacheInfo)
	}
	if again.Body != nil {
		t.Error("a full cache hit should skip body generation")
	}
	if string(again.Artifacts[FormatOBJ]) != string(res.Artifacts[FormatOBJ]) {
		t.Error("cached obj differs")
	}
	if again.RunID == res.RunID {
		t.Error("runs should get distinct ids")
	}

	refreshed := opts
	refreshed.Refresh = true
	fresh, err := r.Execute(ctx, chain(), refreshed)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.CacheInfo.RenderHit || fresh.Body == nil {
		t.Error("Refresh should bypass cached artifacts")
	}
}

func TestRunnerExecuteDegenerate(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, nil)
	res, err := r.Execute(context.Background(), genome.MustNew(), Options{Formats: []string{FormatOBJ, FormatDOT}})
	if err != nil {
		t.Fatalf("degenerate genome should not be an error: %v", err)
	}
	if res.Diagnostic == nil || res.Diagnostic.Code != errors.ErrCodeDegenerateGraph {
		t.Fatalf("Diagnostic = %v, want DEGENERATE_GRAPH", res.Diagnostic)
	}
	if _, ok := res.Artifacts[FormatOBJ]; ok {
		t.Error("obj should be skipped for a degenerate genome")
	}
	if _, ok := res.Artifacts[FormatDOT]; !ok {
		t.Error("dot should still be rendered")
	}
	if c.sets != 0 {
		t.Errorf("degenerate results should not be cached, got %d writes", c.sets)
	}
}

func TestRunnerExecuteInvalidOptions(t *testing.T) {
	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), chain(), Options{Formats: []string{"stl"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Execute() error = %v, want INVALID_FORMAT", err)
	}
}

type countingHooks struct {
	observability.NoopPipelineHooks
	mu        sync.Mutex
	mutates   int
	generates int
	renders   int
}

func (h *countingHooks) OnMutateComplete(context.Context, int, time.Duration, error) {
	h.mu.Lock()
	h.mutates++
	h.mu.Unlock()
}

func (h *countingHooks) OnGenerateComplete(context.Context, int, int, time.Duration, error) {
	h.mu.Lock()
	h.generates++
	h.mu.Unlock()
}

func (h *countingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.mu.Lock()
	h.renders++
	h.mu.Unlock()
}

func TestRunnerHooks(t *testing.T) {
	h := &countingHooks{}
	observability.SetPipelineHooks(h)
	defer observability.Reset()

	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), chain(),
		Options{Generations: 2, Formats: []string{FormatOBJ}})
	if err != nil {
		t.Fatal(err)
	}
	if h.mutates != 1 || h.generates != 1 || h.renders != 1 {
		t.Errorf("hooks = mutate %d, generate %d, render %d, want 1 each", h.mutates, h.generates, h.renders)
	}
}
