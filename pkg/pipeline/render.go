package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/sprout/pkg/body"
	"github.com/matzehuels/sprout/pkg/genome"
	pkgio "github.com/matzehuels/sprout/pkg/io"
	"github.com/matzehuels/sprout/pkg/mesh/sink"
	"github.com/matzehuels/sprout/pkg/observability"
	"github.com/matzehuels/sprout/pkg/render/nodelink"
)

// Render encodes b and g in every requested format.
//
// Mesh formats need a body; they are skipped when b is nil or degenerate.
// Diagram formats highlight b's spine, or the spine of g when b is nil.
func (r *Runner) Render(ctx context.Context, g *genome.Graph, b *body.Result, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := RenderArtifacts(ctx, g, b, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	for _, format := range opts.Formats {
		if _, ok := artifacts[format]; !ok {
			opts.Logger.Warn("skipped format without a body", "format", format)
		}
	}
	return artifacts, nil
}

// RenderArtifacts encodes b and g without caching or hooks.
func RenderArtifacts(ctx context.Context, g *genome.Graph, b *body.Result, opts Options) (map[string][]byte, error) {
	hasBody := b != nil && !b.Degenerate()
	spine := genome.Spine(g)
	if b != nil {
		spine = b.Spine
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if MeshFormats[format] && !hasBody {
			continue
		}

		var data []byte
		var err error

		switch format {
		case FormatOBJ:
			data, err = sink.RenderOBJ(b.Mesh,
				sink.WithOBJName(objectName(opts)),
				sink.WithOBJComment("genome "+g.String()))
		case FormatPLY:
			data, err = sink.RenderPLY(b.Mesh,
				sink.WithPLYComment("genome "+g.String()))
		case FormatJSON:
			data, err = sink.RenderJSON(b.Mesh,
				sink.WithJSONBody(b),
				sink.WithJSONSeed(opts.Seed),
				sink.WithJSONGenome(pkgio.FormatExpr(g)))
		case FormatDOT:
			data = []byte(nodelink.ToDOT(g, diagramOptions(spine, opts)))
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(g, diagramOptions(spine, opts)))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func diagramOptions(spine []genome.NodeID, opts Options) nodelink.Options {
	return nodelink.Options{Spine: spine, Detailed: opts.Detailed}
}

func objectName(opts Options) string {
	if opts.Name != "" {
		return opts.Name
	}
	return "sprout"
}
