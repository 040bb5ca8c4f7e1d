package rewrite

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/matzehuels/sprout/pkg/genome"
)

func e(a, b genome.NodeID) genome.Edge { return genome.E(a, b) }

func TestMatchesOrder(t *testing.T) {
	g := genome.MustNew(e(1, 2), e(2, 3), e(2, 4), e(3, 4))
	want := []Match{
		{X: 2, Y: 1, Z: 3},
		{X: 2, Y: 1, Z: 4},
		{X: 2, Y: 3, Z: 4},
		{X: 3, Y: 2, Z: 4},
		{X: 4, Y: 2, Z: 3},
	}
	if got := Matches(g); !slices.Equal(got, want) {
		t.Errorf("Matches() = %v, want %v", got, want)
	}
}

func TestMatchesCount(t *testing.T) {
	tests := []struct {
		name string
		g    *genome.Graph
		want int
	}{
		{"empty", genome.MustNew(), 0},
		{"single edge", genome.MustNew(e(1, 2)), 0},
		{"path of three", genome.MustNew(e(1, 2), e(2, 3)), 1},
		{"star of four", genome.MustNew(e(0, 1), e(0, 2), e(0, 3), e(0, 4)), 6},
		{"triangle", genome.MustNew(e(1, 2), e(2, 3), e(1, 3)), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Matches(tt.g)); got != tt.want {
				t.Errorf("len(Matches()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestApplySingleMatch(t *testing.T) {
	g := genome.MustNew(e(1, 2), e(1, 3))
	out := Apply(g, Match{X: 1, Y: 2, Z: 3}, 4)

	want := genome.MustNew(e(1, 3), e(1, 4), e(2, 4), e(3, 4))
	if !out.Equal(want) {
		t.Errorf("Apply() = %v, want %v", out, want)
	}
	if out.HasEdge(1, 2) {
		t.Error("(1,2) should be removed")
	}
	if !g.Equal(genome.MustNew(e(1, 2), e(1, 3))) {
		t.Error("input graph was modified")
	}
}

func TestMutateDescendants(t *testing.T) {
	g := genome.MustNew(e(1, 2), e(2, 3), e(2, 4), e(3, 4))
	ds := Expand(g)
	if len(ds) != 5 {
		t.Fatalf("len(Expand()) = %d, want 5", len(ds))
	}
	for i, d := range ds {
		wantFresh := genome.NodeID(5 + i)
		if d.Fresh != wantFresh {
			t.Errorf("descendant %d fresh = %d, want %d", i, d.Fresh, wantFresh)
		}
		if d.Graph.MaxID() != wantFresh {
			t.Errorf("descendant %d MaxID = %d, want %d", i, d.Graph.MaxID(), wantFresh)
		}
		if got := d.Graph.NodeCount(); got != g.NodeCount()+1 {
			t.Errorf("descendant %d has %d nodes, want %d", i, got, g.NodeCount()+1)
		}
		if got := d.Graph.EdgeCount(); got != g.EdgeCount()+2 {
			t.Errorf("descendant %d has %d edges, want %d", i, got, g.EdgeCount()+2)
		}
		// exactly the fresh node is new; no other descendant's fresh id leaks in
		for j, other := range ds {
			if j != i && d.Graph.Degree(other.Fresh) != 0 {
				t.Errorf("descendant %d contains fresh node %d of descendant %d", i, other.Fresh, j)
			}
		}
	}
	for i := 0; i < 3; i++ {
		if ds[i].Match.X != 2 {
			t.Errorf("descendant %d apex = %d, want 2", i, ds[i].Match.X)
		}
	}
	if !g.Equal(genome.MustNew(e(1, 2), e(2, 3), e(2, 4), e(3, 4))) {
		t.Error("input graph was modified")
	}
}

func TestMutateInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7^0xdeadbeef))
	g := genome.MustNew(e(1, 2), e(2, 3))
	for range 25 {
		g = MutateOne(g, rng)
	}
	for i, d := range Expand(g) {
		m := d.Match
		if !g.HasEdge(m.X, m.Y) || !g.HasEdge(m.X, m.Z) || m.Y >= m.Z {
			t.Fatalf("match %d %v is not a valid pattern", i, m)
		}
		out := d.Graph
		if out.HasEdge(m.X, m.Y) {
			t.Errorf("match %v: (x,y) survived", m)
		}
		for _, want := range []genome.Edge{e(m.X, m.Z), e(m.X, d.Fresh), e(m.Y, d.Fresh), e(m.Z, d.Fresh)} {
			if !out.HasEdge(want.A, want.B) {
				t.Errorf("match %v: missing edge %v", m, want)
			}
		}
		if out.NodeCount() != g.NodeCount()+1 {
			t.Errorf("match %v: node count %d, want %d", m, out.NodeCount(), g.NodeCount()+1)
		}
	}
}

func TestMutateEmpty(t *testing.T) {
	if got := Mutate(genome.MustNew()); len(got) != 0 {
		t.Errorf("Mutate(empty) = %v, want empty", got)
	}
	if got := Mutate(genome.MustNew(e(1, 2))); len(got) != 0 {
		t.Errorf("Mutate(edge) = %v, want empty", got)
	}
}

func TestMutateOneNoMatch(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1^0xdeadbeef))
	g := genome.MustNew(e(1, 2))
	if got := MutateOne(g, rng); !got.Equal(g) {
		t.Errorf("MutateOne() = %v, want unchanged %v", got, g)
	}
	if _, ok := Step(genome.MustNew(), rng); ok {
		t.Error("Step(empty) reported a match")
	}
}

func TestMutateOneDeterministic(t *testing.T) {
	grow := func(seed uint64) string {
		rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
		gens := Grow(genome.MustNew(e(1, 2), e(2, 3)), 10, rng)
		return gens[len(gens)-1].String()
	}
	if grow(42) != grow(42) {
		t.Error("same seed produced different genomes")
	}
}

func TestMutateOneFreshID(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3^0xdeadbeef))
	g := genome.MustNew(e(0, 5), e(5, 9))
	out := MutateOne(g, rng)
	if out.MaxID() != 10 {
		t.Errorf("MaxID() = %d, want 10", out.MaxID())
	}
}

func TestGrow(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42^0xdeadbeef))
	gens := Grow(genome.MustNew(e(1, 2), e(1, 3)), 6, rng)
	if len(gens) != 7 {
		t.Fatalf("len(Grow()) = %d, want 7", len(gens))
	}
	for i := 1; i < len(gens); i++ {
		if gens[i].NodeCount() != gens[i-1].NodeCount()+1 {
			t.Errorf("generation %d did not gain exactly one node", i)
		}
	}

	stuck := Grow(genome.MustNew(e(1, 2)), 5, rng)
	if len(stuck) != 1 {
		t.Errorf("Grow without matches = %d generations, want 1", len(stuck))
	}
}

func TestMutateIgnoresDuplicateInput(t *testing.T) {
	dup, err := genome.FromPairs([][2]int{{1, 2}, {2, 1}, {1, 2}, {2, 3}, {3, 3}, {3, 2}})
	if err != nil {
		t.Fatal(err)
	}
	clean := genome.MustNew(e(1, 2), e(2, 3))

	got, want := Mutate(dup), Mutate(clean)
	if len(got) != len(want) {
		t.Fatalf("len(Mutate()) = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !got[i].Equal(want[i]) {
			t.Errorf("descendant %d = %v, want %v", i, got[i], want[i])
		}
	}
}
