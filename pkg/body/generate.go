package body

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sprout/pkg/errors"
	"github.com/matzehuels/sprout/pkg/genome"
	"github.com/matzehuels/sprout/pkg/layout"
	"github.com/matzehuels/sprout/pkg/mesh"
)

// Options configures [Generate].
type Options struct {
	Config Config      // Zero value means DefaultConfig()
	Seed   uint64      // Layout seed
	Logger *log.Logger // Optional; defaults to a discarding logger
}

// Result is a generated body together with the intermediate fields that
// produced it. Frames are expressed in the same local frame as the mesh.
type Result struct {
	Mesh   *mesh.Mesh
	Frames []Frame
	Bias   []float32
	Spine  []genome.NodeID
	Layout layout.Positions
	Scale  float32
	Weld   mesh.WeldStats

	// Diagnostic is set, with code [errors.ErrCodeDegenerateGraph], when
	// the genome was too small to grow a body. Mesh is empty in that case.
	Diagnostic *errors.Error
}

// Degenerate reports whether generation was skipped.
func (r *Result) Degenerate() bool { return r.Diagnostic != nil }

// Samples returns the number of spine samples.
func (r *Result) Samples() int { return len(r.Frames) }

// Generate synthesizes the body mesh of g.
//
// It returns an [errors.ErrCodeInvalidConfig] error for invalid
// configuration. Degenerate genomes (fewer than two nodes or a spine shorter
// than two nodes) are not errors: the result carries an empty mesh and a
// Diagnostic, and a warning is logged.
func Generate(g *genome.Graph, opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	nodes := g.NodeCount()
	spine := genome.Spine(g)
	if nodes < 2 || len(spine) < 2 {
		logger.Warn("degenerate genome, skipping body", "nodes", nodes, "spine", len(spine))
		return &Result{
			Mesh:       &mesh.Mesh{},
			Spine:      spine,
			Diagnostic: errors.New(errors.ErrCodeDegenerateGraph, "genome has %d nodes and a spine of %d", nodes, len(spine)),
		}, nil
	}

	scale := ComplexityScale(nodes, g.EdgeCount(), cfg)
	pos := layout.Force(g, layout.Options{
		Iterations: cfg.LayoutIterations,
		Area:       cfg.LayoutArea,
		Length:     cfg.BodyLength,
		Seed:       opts.Seed,
	})
	pl := NewPolyline(spine, pos)
	logger.Debug("layout", "nodes", nodes, "spine", len(spine), "spine_length", pl.Length(), "scale", scale)

	frames := Frames(Centerline(pl.Points, cfg.Samples, cfg.Camber, cfg.BodyLength))
	bias := Asymmetry(g, spine, pl, pos, cfg.Samples, cfg)
	prof := NewProfile(bias, scale, cfg)

	m := Sweep(frames, prof, cfg)
	if cfg.Accessories {
		anchors := make(map[genome.NodeID]station, nodes)
		for id, p := range pos {
			anchors[id] = stationAt(frames, prof, bias, pl.Project(p).S)
		}
		m.Append(Tubes(g, spine, anchors, cfg.TubeRadius*scale, cfg.TubeSides))
	}
	if cfg.Fins {
		m.Append(Fins(frames, prof, bias, cfg.FinSize*scale, cfg.Twist))
	}

	welded, stats := mesh.Weld(m, cfg.WeldTolerance)
	logger.Debug("welded", "before", stats.VerticesBefore, "after", stats.VerticesAfter, "dropped", stats.DroppedTriangles)
	Orient(welded, frames)

	return &Result{
		Mesh:   welded,
		Frames: frames,
		Bias:   bias,
		Spine:  spine,
		Layout: pos,
		Scale:  scale,
		Weld:   stats,
	}, nil
}
