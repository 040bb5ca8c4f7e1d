package genome

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"sync"
)

var (
	// ErrNegativeNodeID is returned by [New] when an edge references a
	// negative node identifier. Identifiers minted by the rewrite engine are
	// always non-negative.
	ErrNegativeNodeID = errors.New("node ID must not be negative")
)

// NodeID identifies a genome node. Identifiers are non-negative and need not
// be contiguous.
type NodeID int

// Edge is an undirected edge in canonical form (A <= B).
// Use [E] to build an Edge from endpoints in any order.
type Edge struct {
	A NodeID
	B NodeID
}

// E returns the canonical edge between a and b.
func E(a, b NodeID) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// IsLoop reports whether both endpoints are the same node.
func (e Edge) IsLoop() bool { return e.A == e.B }

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id NodeID) NodeID {
	if e.A == id {
		return e.B
	}
	return e.A
}

// String formats the edge as "a-b".
func (e Edge) String() string {
	return strconv.Itoa(int(e.A)) + "-" + strconv.Itoa(int(e.B))
}

func compareEdges(x, y Edge) int {
	if x.A != y.A {
		if x.A < y.A {
			return -1
		}
		return 1
	}
	switch {
	case x.B < y.B:
		return -1
	case x.B > y.B:
		return 1
	}
	return 0
}

// Graph is an immutable undirected genome graph.
//
// Edges are canonical, deduplicated and sorted. Self-loops never appear. The
// zero value is an empty graph and is ready to use.
type Graph struct {
	edges []Edge

	once  sync.Once
	index *Index
}

// New builds a graph from the given edges.
//
// Endpoints are canonicalized, duplicates (including reverse duplicates) are
// removed and self-loops are dropped. New returns [ErrNegativeNodeID] if any
// endpoint is negative. An empty edge list yields an empty graph.
func New(edges ...Edge) (*Graph, error) {
	for _, e := range edges {
		if e.A < 0 || e.B < 0 {
			return nil, ErrNegativeNodeID
		}
	}
	return fromCanonical(normalize(edges)), nil
}

// MustNew is like [New] but panics on error. It is intended for tests,
// examples and literal genomes.
func MustNew(edges ...Edge) *Graph {
	g, err := New(edges...)
	if err != nil {
		panic(err)
	}
	return g
}

// FromPairs builds a graph from integer endpoint pairs, the shape used by the
// JSON genome format.
func FromPairs(pairs [][2]int) (*Graph, error) {
	edges := make([]Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = E(NodeID(p[0]), NodeID(p[1]))
	}
	return New(edges...)
}

func normalize(edges []Edge) []Edge {
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		e = E(e.A, e.B)
		if e.IsLoop() {
			continue
		}
		out = append(out, e)
	}
	slices.SortFunc(out, compareEdges)
	return slices.Compact(out)
}

func fromCanonical(edges []Edge) *Graph {
	return &Graph{edges: edges}
}

// Edges returns a copy of the graph's canonical edges in ascending order.
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}
	return slices.Clone(g.edges)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	return len(g.edges)
}

// NodeCount returns the number of distinct nodes touched by an edge.
func (g *Graph) NodeCount() int { return g.Index().Len() }

// HasEdge reports whether the graph contains the undirected edge a-b.
func (g *Graph) HasEdge(a, b NodeID) bool {
	if g == nil {
		return false
	}
	_, ok := slices.BinarySearchFunc(g.edges, E(a, b), compareEdges)
	return ok
}

// Index returns the graph's adjacency index, building it on first use.
func (g *Graph) Index() *Index {
	if g == nil {
		return NewIndex(nil)
	}
	g.once.Do(func() { g.index = NewIndex(g.edges) })
	return g.index
}

// Nodes returns all node identifiers in ascending order.
func (g *Graph) Nodes() []NodeID { return g.Index().Nodes() }

// Neighbors returns the neighbors of id in ascending order, or nil if id is
// not in the graph.
func (g *Graph) Neighbors(id NodeID) []NodeID { return g.Index().Neighbors(id) }

// Degree returns the number of edges incident to id (0 if absent).
func (g *Graph) Degree(id NodeID) int { return g.Index().Degree(id) }

// MaxID returns the largest node identifier, or -1 for an empty graph.
func (g *Graph) MaxID() NodeID { return g.Index().MaxID() }

// EdgeSet returns a mutable copy of the graph's edges.
func (g *Graph) EdgeSet() *EdgeSet {
	return NewEdgeSet(g.Edges()...)
}

// Equal reports whether two graphs have the same edge set.
func (g *Graph) Equal(other *Graph) bool {
	return slices.Equal(g.Edges(), other.Edges())
}

// String renders the graph as a comma separated edge list in canonical
// order, for example "1-2, 1-3". The empty graph renders as "".
func (g *Graph) String() string {
	var sb strings.Builder
	for i, e := range g.Edges() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}

// Pairs returns the edges as integer endpoint pairs.
func (g *Graph) Pairs() [][2]int {
	edges := g.Edges()
	out := make([][2]int, len(edges))
	for i, e := range edges {
		out[i] = [2]int{int(e.A), int(e.B)}
	}
	return out
}
