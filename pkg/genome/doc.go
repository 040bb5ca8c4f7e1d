// Package genome provides the undirected graph model that sprout grows and
// renders as an organic body.
//
// # Overview
//
// A genome is a small abstract graph: an unordered set of undirected edges
// over non-negative integer node identifiers. Genomes are grown by the
// production rule in [github.com/matzehuels/sprout/pkg/genome/rewrite] and
// turned into a 3D surface by [github.com/matzehuels/sprout/pkg/body].
//
// Edges are stored in canonical form (the smaller endpoint first) and are
// deduplicated when a [Graph] is built, so (1,2) and (2,1) denote the same
// edge. Self-loops carry no meaning for the rewrite model and are dropped on
// construction. Node identifiers need not be contiguous.
//
// # Basic Usage
//
// Build a graph from edges with [New] (which rejects negative identifiers) or
// [MustNew] in tests and examples:
//
//	g := genome.MustNew(genome.E(1, 2), genome.E(1, 3))
//	g.Degree(1)    // 2
//	g.Neighbors(1) // [2 3]
//	g.MaxID()      // 3
//
// Graphs are immutable once produced. To derive a new graph, copy its edges
// into an [EdgeSet], edit the set and call [EdgeSet.Graph].
//
// # Adjacency Index
//
// Adjacency queries are served by an [Index]: nodes are re-indexed densely in
// ascending identifier order and their neighbor lists are stored contiguously
// (compressed sparse rows). The index is built lazily on first use and shared
// by all queries on the same graph. Original identifiers are restored on
// output, so callers never see dense indices unless they ask for them.
//
// # Spine Extraction
//
// [Spine] picks the body axis of a genome with the classic double
// breadth-first search: search from the smallest node to the farthest node a,
// then from a to the farthest node b, and return the path a..b. Neighbors are
// always visited in ascending order, so the result is deterministic.
//
// # Concurrency
//
// A [Graph] is safe for concurrent reads. [EdgeSet] is not safe for
// concurrent use without external synchronization.
package genome
