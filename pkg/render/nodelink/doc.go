// Package nodelink renders genomes as node-link diagrams.
//
// # Overview
//
// A body mesh hides the graph it was grown from. This package draws the
// genome itself with Graphviz so a lineage can be inspected next to the
// meshes it produced. The skeleton path chosen by [genome.Spine] is
// highlighted; every other edge is one that body generation turns into a
// tube.
//
// # Usage
//
// Convert a genome to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Spine: genome.Spine(g)})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Spine: node ids of the skeleton path to highlight
//   - Detailed: when true, node labels include the node degree
//
// # DOT Format
//
// The [ToDOT] function produces an undirected DOT graph laid out left to
// right (rankdir=LR), matching the head-to-tail axis of the generated body.
// The output can be rendered via [RenderSVG] or saved and processed with
// external Graphviz tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. No system Graphviz install is needed.
package nodelink
