// Package io reads and writes genomes and body configurations.
//
// # Overview
//
// The generation core owns no file format. This package provides the formats
// the command-line tool uses to exchange genomes and settings:
//
//   - JSON edge lists for genomes, suitable for other tools
//   - A compact expression syntax for genomes typed on the command line
//   - TOML files for [body.Config]
//
// # JSON Format
//
// A genome is an object with an "edges" array of node id pairs and an
// optional name:
//
//	{
//	  "name": "minnow",
//	  "edges": [[1, 2], [2, 3], [2, 4]]
//	}
//
// Pairs are unordered and duplicates are ignored. Negative ids are rejected
// with an INVALID_GRAPH error.
//
// # Expressions
//
// [ParseExpr] reads comma separated runs of dash-joined node ids. A run
// a-b-c denotes the edges a-b and b-c:
//
//	1-2-3, 2-4     // edges 1-2, 2-3, 2-4
//
// [FormatExpr] writes a genome back in the same syntax, chaining edges into
// runs where it can. Parsing the output yields an equal genome.
//
// # Configuration
//
// [LoadConfig] decodes a TOML file on top of [body.DefaultConfig], so a file
// only needs the keys it changes:
//
//	samples = 64
//	twist = 1.2
//	fins = false
//
// Unknown keys are reported as INVALID_CONFIG errors rather than silently
// ignored. [EncodeConfig] writes a complete configuration.
//
// [body.Config]: github.com/matzehuels/sprout/pkg/body.Config
// [body.DefaultConfig]: github.com/matzehuels/sprout/pkg/body.DefaultConfig
package io
