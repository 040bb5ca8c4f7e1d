package genome

import (
	"slices"
	"testing"
)

func TestSpine(t *testing.T) {
	tests := []struct {
		name string
		g    *Graph
		want []NodeID
	}{
		{
			name: "empty",
			g:    MustNew(),
			want: nil,
		},
		{
			name: "single edge",
			g:    MustNew(E(1, 2)),
			want: []NodeID{2, 1},
		},
		{
			name: "path",
			g:    MustNew(E(1, 2), E(2, 3), E(3, 4)),
			want: []NodeID{4, 3, 2, 1},
		},
		{
			name: "path from middle",
			g:    MustNew(E(3, 1), E(1, 2), E(2, 4)),
			want: []NodeID{4, 2, 1, 3},
		},
		{
			name: "star picks first leaves",
			g:    MustNew(E(1, 2), E(1, 3), E(1, 4)),
			want: []NodeID{2, 1, 3},
		},
		{
			name: "tree with long arm",
			g:    MustNew(E(1, 2), E(2, 3), E(3, 4), E(2, 5)),
			want: []NodeID{4, 3, 2, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Spine(tt.g); !slices.Equal(got, tt.want) {
				t.Errorf("Spine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpineIsPath(t *testing.T) {
	g := MustNew(E(1, 2), E(2, 3), E(3, 4), E(4, 1), E(4, 5), E(5, 6), E(2, 7))
	spine := Spine(g)
	if len(spine) < 2 {
		t.Fatalf("spine too short: %v", spine)
	}
	seen := map[NodeID]bool{}
	for i, id := range spine {
		if seen[id] {
			t.Fatalf("spine revisits node %d: %v", id, spine)
		}
		seen[id] = true
		if i > 0 && !g.HasEdge(spine[i-1], id) {
			t.Fatalf("spine step %d-%d is not an edge", spine[i-1], id)
		}
	}
	if len(PathEdges(spine)) != len(spine)-1 {
		t.Errorf("PathEdges() size = %d, want %d", len(PathEdges(spine)), len(spine)-1)
	}
}
