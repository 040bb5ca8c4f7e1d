// Package pipeline provides the grow → generate → render pipeline for sprout.
//
// This package strings the library packages together the way every entry
// point needs them: grow a genome for a number of generations, synthesize
// its body, and write the body and a genome diagram in the requested
// formats. Results are cached by content hash, stages report to
// [observability] hooks, and every run gets a unique id.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Grow: apply the production rule to random matches for N generations
//  2. Generate: synthesize the body mesh of the final genome
//  3. Render: encode the mesh (OBJ, PLY, JSON) and the genome (SVG, DOT)
//
// Each stage can be run on its own through the [Runner].
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Generations: 5,
//	    Seed:        7,
//	    Formats:     []string{"obj", "svg"},
//	}
//	result, err := runner.Execute(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Diagnostic != nil {
//	    // genome too small for a body; only diagram formats were rendered
//	}
//	obj := result.Artifacts["obj"]
//
// Run individual stages:
//
//	lineage, err := runner.Grow(ctx, g, opts)
//	b, err := runner.GenerateBody(ctx, g, opts)
//	artifacts, err := runner.Render(ctx, g, b, opts)
//
// # Determinism
//
// Growth and layout both derive their random streams from Options.Seed, so
// a run is fully reproducible from (genome, generations, seed, config).
// This is what makes the artifact cache safe.
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sprout/pkg/body"
	"github.com/matzehuels/sprout/pkg/cache"
	"github.com/matzehuels/sprout/pkg/errors"
	"github.com/matzehuels/sprout/pkg/genome"
	pkgio "github.com/matzehuels/sprout/pkg/io"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// MaxGenerations bounds a single grow request. Every generation adds a
	// node and two edges, and body generation is quadratic in vertex count
	// during welding.
	MaxGenerations = 256
)

// Format constants for output formats.
const (
	FormatOBJ  = "obj"
	FormatPLY  = "ply"
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatOBJ:  true,
	FormatPLY:  true,
	FormatJSON: true,
	FormatSVG:  true,
	FormatDOT:  true,
}

// MeshFormats are the formats that need a generated body.
var MeshFormats = map[string]bool{
	FormatOBJ:  true,
	FormatPLY:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Grow options
	Generations int    `json:"generations,omitempty"`
	Seed        uint64 `json:"seed,omitempty"`
	Refresh     bool   `json:"refresh,omitempty"` // Skip cache reads

	// Generate options
	Config body.Config `json:"config"` // Zero value means body.DefaultConfig()

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Name     string   `json:"name,omitempty"`     // Object name in mesh outputs
	Detailed bool     `json:"detailed,omitempty"` // Degree labels in diagrams

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs and metrics.
	RunID string

	// Lineage holds the input genome followed by one genome per generation.
	Lineage []*genome.Graph

	// Genome is the last genome of the lineage, the one the body grew from.
	Genome *genome.Graph

	// GenomeHash is the content hash of Genome.
	GenomeHash string

	// Body is the generated body. It is nil when every artifact came from
	// the cache.
	Body *body.Result

	// Diagnostic is set when the genome was too small to grow a body. Mesh
	// formats are then missing from Artifacts.
	Diagnostic *errors.Error

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	Vertices     int
	Triangles    int
	GrowTime     time.Duration
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GrowHit   bool // Whether the lineage came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: obj, ply, json, svg, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateGenerations checks a generation count.
func ValidateGenerations(n int) error {
	if n < 0 || n > MaxGenerations {
		return errors.New(errors.ErrCodeInvalidInput,
			"generations must be between 0 and %d, got %d", MaxGenerations, n)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGrow(); err != nil {
		return err
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGrow validates and sets defaults for growing.
func (o *Options) ValidateForGrow() error {
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	o.setLogger()
	return ValidateGenerations(o.Generations)
}

// ValidateForGenerate validates and sets defaults for body generation.
func (o *Options) ValidateForGenerate() error {
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Config == (body.Config{}) {
		o.Config = body.DefaultConfig()
	}
	o.setLogger()
	return o.Config.Validate()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatOBJ}
	}
	o.setLogger()
	return ValidateFormats(o.Formats)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// NeedsBody reports whether any requested format needs a generated body.
func (o *Options) NeedsBody() bool {
	for _, f := range o.Formats {
		if MeshFormats[f] {
			return true
		}
	}
	return false
}

// GrowthKeyOpts returns cache key options for growing.
func (o *Options) GrowthKeyOpts() cache.GrowthKeyOpts {
	return cache.GrowthKeyOpts{
		Generations: o.Generations,
		Seed:        o.Seed,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format: format,
		Seed:   o.Seed,
		Name:   o.Name,
	}
	if MeshFormats[format] {
		opts.ConfigHash = ConfigHash(o.Config)
	} else if o.Detailed {
		opts.Name += "#detailed"
	}
	return opts
}

// ConfigHash returns the content hash of cfg's TOML encoding.
func ConfigHash(cfg body.Config) string {
	var buf bytes.Buffer
	if err := pkgio.EncodeConfig(&buf, cfg); err != nil {
		return cache.Hash([]byte(fmt.Sprintf("%+v", cfg)))
	}
	return cache.Hash(buf.Bytes())
}

// GenomeHash returns the content hash of g. Genomes with the same edge set
// hash equally regardless of how they were written.
func GenomeHash(g *genome.Graph) string {
	return cache.Hash([]byte(g.String()))
}
