package rewrite

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/sprout/pkg/genome"
)

// Match is one occurrence of the rule's pattern: apex X with neighbors Y < Z.
type Match struct {
	X genome.NodeID
	Y genome.NodeID
	Z genome.NodeID
}

// String formats the match as "x(y,z)".
func (m Match) String() string {
	return fmt.Sprintf("%d(%d,%d)", m.X, m.Y, m.Z)
}

// Descendant is a graph produced by one rule application together with the
// match and fresh identifier that produced it.
type Descendant struct {
	Graph *genome.Graph
	Match Match
	Fresh genome.NodeID
}

// Matches returns every match of the rule in g.
//
// Apexes are visited in ascending identifier order and, for each apex, the
// neighbor pairs (y, z) with y < z in ascending lexicographic order.
func Matches(g *genome.Graph) []Match {
	ix := g.Index()
	var out []Match
	for i := range ix.Len() {
		adj := ix.Adjacent(i)
		if len(adj) < 2 {
			continue
		}
		x := ix.ID(i)
		for a := 0; a < len(adj)-1; a++ {
			for b := a + 1; b < len(adj); b++ {
				out = append(out, Match{X: x, Y: ix.ID(adj[a]), Z: ix.ID(adj[b])})
			}
		}
	}
	return out
}

// Apply returns a copy of g with match m rewritten using fresh as the new
// node. fresh should be greater than g.MaxID(); Apply does not check.
func Apply(g *genome.Graph, m Match, fresh genome.NodeID) *genome.Graph {
	set := g.EdgeSet()
	set.Remove(m.X, m.Y)
	set.Remove(m.X, m.Z)
	set.Add(m.X, m.Z)
	set.Add(m.X, fresh)
	set.Add(m.Y, fresh)
	set.Add(m.Z, fresh)
	return set.Graph()
}

// Expand applies every match of g independently and returns the descendants
// in match order. Match i uses fresh identifier g.MaxID()+1+i.
func Expand(g *genome.Graph) []Descendant {
	matches := Matches(g)
	if len(matches) == 0 {
		return nil
	}
	base := g.MaxID() + 1
	out := make([]Descendant, len(matches))
	for i, m := range matches {
		fresh := base + genome.NodeID(i)
		out[i] = Descendant{Graph: Apply(g, m, fresh), Match: m, Fresh: fresh}
	}
	return out
}

// Mutate returns one descendant graph per match of g, in match order.
// It returns an empty slice when g has no match.
func Mutate(g *genome.Graph) []*genome.Graph {
	ds := Expand(g)
	out := make([]*genome.Graph, len(ds))
	for i, d := range ds {
		out[i] = d.Graph
	}
	return out
}

// MutateOne applies one uniformly random match of g, drawn from rng, using
// g.MaxID()+1 as the fresh node. If g has no match the input graph is
// returned unchanged.
func MutateOne(g *genome.Graph, rng *rand.Rand) *genome.Graph {
	d, ok := Step(g, rng)
	if !ok {
		return g
	}
	return d.Graph
}

// Step is like [MutateOne] but also reports which match was applied. ok is
// false when g has no match.
func Step(g *genome.Graph, rng *rand.Rand) (d Descendant, ok bool) {
	matches := Matches(g)
	if len(matches) == 0 {
		return Descendant{Graph: g}, false
	}
	m := matches[rng.IntN(len(matches))]
	fresh := g.MaxID() + 1
	return Descendant{Graph: Apply(g, m, fresh), Match: m, Fresh: fresh}, true
}

// Grow applies [MutateOne] for the given number of generations and returns
// every intermediate genome, starting with g itself. Growth stops early once
// a generation has no match.
func Grow(g *genome.Graph, generations int, rng *rand.Rand) []*genome.Graph {
	out := []*genome.Graph{g}
	for range generations {
		next, ok := Step(out[len(out)-1], rng)
		if !ok {
			break
		}
		out = append(out, next.Graph)
	}
	return out
}
