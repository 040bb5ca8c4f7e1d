package genome

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// EdgeSet is a mutable, ordered set of canonical undirected edges.
//
// Insertion is idempotent: adding an edge that is already present (in either
// orientation) leaves the set unchanged. Self-loops are ignored. Iteration
// order is always ascending by (A, B).
//
// EdgeSet is the scratch space used to derive new graphs; call [EdgeSet.Graph]
// to freeze the current contents.
type EdgeSet struct {
	set *treeset.Set
}

func edgeComparator(a, b interface{}) int {
	return compareEdges(a.(Edge), b.(Edge))
}

// NewEdgeSet creates a set holding the given edges.
func NewEdgeSet(edges ...Edge) *EdgeSet {
	s := &EdgeSet{set: treeset.NewWith(edgeComparator)}
	for _, e := range edges {
		s.Add(e.A, e.B)
	}
	return s
}

// Add inserts the edge a-b. It reports whether the set changed.
func (s *EdgeSet) Add(a, b NodeID) bool {
	e := E(a, b)
	if e.IsLoop() || s.set.Contains(e) {
		return false
	}
	s.set.Add(e)
	return true
}

// Remove deletes the edge a-b if present. It reports whether the set changed.
func (s *EdgeSet) Remove(a, b NodeID) bool {
	e := E(a, b)
	if !s.set.Contains(e) {
		return false
	}
	s.set.Remove(e)
	return true
}

// Contains reports whether the edge a-b is in the set.
func (s *EdgeSet) Contains(a, b NodeID) bool {
	return s.set.Contains(E(a, b))
}

// Len returns the number of edges.
func (s *EdgeSet) Len() int { return s.set.Size() }

// Edges returns the edges in ascending order.
func (s *EdgeSet) Edges() []Edge {
	out := make([]Edge, 0, s.set.Size())
	it := s.set.Iterator()
	for it.Next() {
		out = append(out, it.Value().(Edge))
	}
	return out
}

// Graph freezes the current contents into an immutable [Graph].
func (s *EdgeSet) Graph() *Graph {
	return fromCanonical(s.Edges())
}
