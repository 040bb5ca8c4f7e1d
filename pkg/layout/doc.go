// Package layout computes 2D positions for genome nodes.
//
// # Force-Directed Placement
//
// [Force] runs the Fruchterman-Reingold algorithm over every node of a
// genome. All node pairs repel with force k²/d and every edge attracts its
// endpoints with force d²/k, where k = sqrt(area/n) is the ideal edge length
// for n nodes in the given area. Each iteration moves a node by its net
// displacement clamped to a step budget ("temperature") that starts at one
// tenth of the area's side length and decays by a factor of 0.96.
//
// Initial positions are drawn uniformly from the area using a PCG source
// seeded with [Options.Seed], so a layout is a pure function of the graph and
// its options.
//
// After the last iteration the layout is re-centered on the origin and
// rescaled so its largest extent equals [Options.Length]. The body generator
// uses that extent as the body-length scale of the organism.
//
// # Usage
//
//	pos := layout.Force(g, layout.Options{Seed: 42})
//	p, ok := pos[genome.NodeID(3)]
//
// Zero-valued options are replaced by [DefaultOptions] field by field.
package layout
