package io

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/matzehuels/sprout/pkg/errors"
	"github.com/matzehuels/sprout/pkg/genome"
)

type genomeExpr struct {
	Runs []*edgeRun `parser:"(@@ (\",\" @@)*)?"`
}

type edgeRun struct {
	Start int   `parser:"@Int"`
	Next  []int `parser:"(\"-\" @Int)*"`
}

var exprParser = participle.MustBuild[genomeExpr]()

// ParseExpr parses a genome expression such as "1-2-3, 2-4".
// A run with a single id contributes no edge.
func ParseExpr(s string) (*genome.Graph, error) {
	expr, err := exprParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse genome %q", s)
	}
	var edges []genome.Edge
	for _, run := range expr.Runs {
		prev := run.Start
		for _, next := range run.Next {
			if err := errors.ValidateEdge(prev, next); err != nil {
				return nil, err
			}
			edges = append(edges, genome.E(genome.NodeID(prev), genome.NodeID(next)))
			prev = next
		}
	}
	return genome.New(edges...)
}

// FormatExpr renders g as a genome expression, greedily chaining each run
// through the smallest unused neighbor.
func FormatExpr(g *genome.Graph) string {
	used := make(map[genome.Edge]bool, g.EdgeCount())
	var runs []string
	for _, e := range g.Edges() {
		if used[e] {
			continue
		}
		used[e] = true
		run := []string{strconv.Itoa(int(e.A)), strconv.Itoa(int(e.B))}
		cur := e.B
		for {
			next, ok := genome.NodeID(0), false
			for _, n := range g.Neighbors(cur) {
				if !used[genome.E(cur, n)] {
					next, ok = n, true
					break
				}
			}
			if !ok {
				break
			}
			used[genome.E(cur, next)] = true
			run = append(run, strconv.Itoa(int(next)))
			cur = next
		}
		runs = append(runs, strings.Join(run, "-"))
	}
	return strings.Join(runs, ", ")
}
