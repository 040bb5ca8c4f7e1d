// Package pkg provides the core libraries for sprout.
//
// # Overview
//
// Sprout grows small undirected graphs ("genomes") with a single production
// rule and turns any genome into a continuous, organic 3D body. The longest
// shortest path of the genome becomes the spine, side branches bend and
// bulge the body, and the remaining edges become tubes. The pkg directory is
// organized into four areas:
//
//  1. [genome] - Genome graphs and the rewrite rule
//  2. [body] - Body synthesis (layout, spine, frames, sweep, accessories)
//  3. [mesh] - Mesh buffers, welding and file sinks
//  4. [pipeline] - Orchestration (grow → generate → render) with caching
//
// # Architecture
//
// The typical data flow through sprout:
//
//	Genome expression or JSON file
//	         ↓
//	    [genome/rewrite] package (grow N generations)
//	         ↓
//	    [layout] package (force-directed 2D layout)
//	         ↓
//	    [body] package (spine, frames, asymmetry, sweep, fins, tubes)
//	         ↓
//	    [mesh] package (weld) → [mesh/sink] (OBJ, PLY, JSON)
//
// # Quick Start
//
// Grow a genome and generate its body:
//
//	import (
//	    "math/rand/v2"
//	    "github.com/matzehuels/sprout/pkg/body"
//	    "github.com/matzehuels/sprout/pkg/genome/rewrite"
//	    sprio "github.com/matzehuels/sprout/pkg/io"
//	    "github.com/matzehuels/sprout/pkg/mesh/sink"
//	)
//
//	// 1. Parse a genome
//	g, _ := sprio.ParseExpr("1-2-3, 2-4")
//
//	// 2. Grow it
//	rng := rand.New(rand.NewPCG(7, 7^0xdeadbeef))
//	lineage := rewrite.Grow(g, 10, rng)
//
//	// 3. Generate the body
//	res, _ := body.Generate(lineage[len(lineage)-1], body.Options{Seed: 7, Config: body.DefaultConfig()})
//
//	// 4. Write it as OBJ
//	obj, _ := sink.RenderOBJ(res.Mesh)
//
// # Main Packages
//
// [genome] - Immutable graphs over non-negative node ids with canonical,
// deduplicated edges, a dense adjacency index and spine extraction.
//
// [genome/rewrite] - The production rule x(y,z): match enumeration, single
// application, all descendants, and seeded random growth.
//
// [layout] - Fruchterman–Reingold layout from an explicit seed.
//
// [body] - Deterministic body synthesis. A genome too small to have a spine
// yields an empty mesh and a DEGENERATE_GRAPH diagnostic, not an error.
//
// [mesh] - Vertex and index buffers with per-vertex aux data, validation and
// welding. [mesh/sink] writes them as Wavefront OBJ, ASCII PLY or JSON.
//
// [render/nodelink] - Genome diagrams in DOT and SVG via Graphviz.
//
// [io] - Genome JSON files, genome expressions and TOML body configuration.
//
// ## Infrastructure
//
// [pipeline] - The grow → generate → render pipeline used by the CLI.
//
// [cache] - Result caching with file, Redis and null backends.
//
// [observability] - Pipeline and cache hooks with an OpenTelemetry
// implementation.
//
// [errors] - Structured errors with machine-readable codes.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/genome/...    # Specific package
//	go test -run Example ./...  # Examples only
//
// [genome]: https://pkg.go.dev/github.com/matzehuels/sprout/pkg/genome
// [genome/rewrite]: https://pkg.go.dev/github.com/matzehuels/sprout/pkg/genome/rewrite
// [layout]: https://pkg.go.dev/github.com/matzehuels/sprout/pkg/layout
// [body]: https://pkg.go.dev/github.com/matzehuels/sprout/pkg/body
// [mesh]: https://pkg.go.dev/github.com/matzehuels/sprout/pkg/mesh
// [mesh/sink]: https://pkg.go.dev/github.com/matzehuels/sprout/pkg/mesh/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/sprout/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/sprout/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sprout/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/sprout/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/sprout/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/sprout/pkg/errors
package pkg
