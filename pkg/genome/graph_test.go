package genome

import (
	"errors"
	"slices"
	"testing"
)

func TestNewCanonicalizes(t *testing.T) {
	g := MustNew(E(2, 1), E(1, 2), E(3, 1), E(4, 4), E(1, 3))

	want := []Edge{{1, 2}, {1, 3}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if g.HasEdge(4, 4) {
		t.Error("self-loop should be dropped")
	}
	if !g.HasEdge(3, 1) {
		t.Error("HasEdge(3, 1) = false, want true")
	}
}

func TestNewRejectsNegative(t *testing.T) {
	if _, err := New(E(1, -2)); !errors.Is(err, ErrNegativeNodeID) {
		t.Errorf("New() error = %v, want ErrNegativeNodeID", err)
	}
}

func TestEmptyGraph(t *testing.T) {
	g := MustNew()
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("empty graph has %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
	if g.MaxID() != -1 {
		t.Errorf("MaxID() = %d, want -1", g.MaxID())
	}
	if g.String() != "" {
		t.Errorf("String() = %q, want empty", g.String())
	}

	var zero Graph
	if zero.NodeCount() != 0 {
		t.Errorf("zero Graph NodeCount() = %d", zero.NodeCount())
	}
}

func TestGraphQueries(t *testing.T) {
	g := MustNew(E(10, 2), E(2, 7), E(7, 10), E(7, 3))

	if got, want := g.Nodes(), []NodeID{2, 3, 7, 10}; !slices.Equal(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
	if got, want := g.Neighbors(7), []NodeID{2, 3, 10}; !slices.Equal(got, want) {
		t.Errorf("Neighbors(7) = %v, want %v", got, want)
	}
	if g.Neighbors(99) != nil {
		t.Error("Neighbors of missing node should be nil")
	}

	tests := []struct {
		id   NodeID
		want int
	}{
		{2, 2}, {3, 1}, {7, 3}, {10, 2}, {5, 0},
	}
	for _, tt := range tests {
		if got := g.Degree(tt.id); got != tt.want {
			t.Errorf("Degree(%d) = %d, want %d", tt.id, got, tt.want)
		}
	}
	if g.MaxID() != 10 {
		t.Errorf("MaxID() = %d, want 10", g.MaxID())
	}
}

func TestIndexDense(t *testing.T) {
	ix := MustNew(E(5, 9), E(9, 1)).Index()
	if ix.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ix.Len())
	}
	for i, want := range []NodeID{1, 5, 9} {
		if ix.ID(i) != want {
			t.Errorf("ID(%d) = %d, want %d", i, ix.ID(i), want)
		}
		if d, ok := ix.Dense(want); !ok || d != i {
			t.Errorf("Dense(%d) = %d,%v, want %d", want, d, ok, i)
		}
	}
	if got := ix.Adjacent(2); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("Adjacent(2) = %v, want [0 1]", got)
	}
}

func TestEdgeSetIdempotent(t *testing.T) {
	s := NewEdgeSet(E(1, 2))
	if s.Add(2, 1) {
		t.Error("re-adding reverse duplicate should not change the set")
	}
	if s.Add(3, 3) {
		t.Error("self-loop should be ignored")
	}
	if !s.Add(3, 1) {
		t.Error("new edge should change the set")
	}
	if !s.Remove(1, 2) || s.Remove(1, 2) {
		t.Error("Remove should succeed once")
	}
	if got, want := s.Edges(), []Edge{{1, 3}}; !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestEdgeSetDoesNotAliasGraph(t *testing.T) {
	g := MustNew(E(1, 2), E(2, 3))
	s := g.EdgeSet()
	s.Remove(1, 2)
	s.Add(3, 4)
	if !g.HasEdge(1, 2) || g.HasEdge(3, 4) {
		t.Error("editing an EdgeSet must not modify the source graph")
	}
	if !s.Graph().Equal(MustNew(E(2, 3), E(3, 4))) {
		t.Errorf("Graph() = %v", s.Graph())
	}
}

func TestFromPairs(t *testing.T) {
	g, err := FromPairs([][2]int{{3, 1}, {1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Pairs(); !slices.Equal(got, [][2]int{{1, 2}, {1, 3}}) {
		t.Errorf("Pairs() = %v", got)
	}
}
