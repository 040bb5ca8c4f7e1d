// Package rewrite grows genomes by applying a fixed graph production rule.
//
// # Overview
//
// The rule looks for an apex node x with two distinct neighbors y < z and
// splits the x-y connection through a freshly minted node w:
//
//	Before: y - x - z
//	After:  y - w - x - z, plus w - z
//
// Concretely, one application removes (x,y) and (x,z), re-adds (x,z) and adds
// (x,w), (y,w) and (z,w). The graph gains exactly one node. Edge insertion is
// idempotent, so re-adding (x,z) leaves the final edge set with two more edges
// than the input.
//
// # Matching
//
// [Matches] enumerates every applicable pattern: for each node x in ascending
// identifier order with at least two neighbors, every unordered neighbor pair
// y < z in ascending order. Enumeration costs O(deg²) per node and never
// yields duplicates.
//
// # Mutation
//
// [Mutate] produces one descendant per match, in match order, each built from
// an independent copy of the input. The fresh identifier for match i is
// max+1+i, so descendants never share identifiers by accident:
//
//	g := genome.MustNew(genome.E(1, 2), genome.E(1, 3))
//	kids := rewrite.Mutate(g) // one descendant: 1-3, 1-4, 2-4, 3-4
//
// [MutateOne] applies a single uniformly random match drawn from an explicit
// random source, using max+1 as the fresh identifier. Growing a genome over
// several generations is a loop over MutateOne.
//
// # Totality
//
// Every function in this package is total. Empty graphs and graphs without a
// match are not errors: Mutate returns an empty slice and MutateOne returns
// the (deduplicated) input unchanged. The caller's graph is never modified.
package rewrite
