// Package render groups the diagram renderers for genomes.
//
// Body meshes are written by [mesh/sink]; this tree holds the views of the
// genome graph itself. The [nodelink] subpackage renders undirected
// node-link diagrams using Graphviz with the body spine highlighted.
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Spine: genome.Spine(g)})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [mesh/sink]: github.com/matzehuels/sprout/pkg/mesh/sink
// [nodelink]: github.com/matzehuels/sprout/pkg/render/nodelink
package render
