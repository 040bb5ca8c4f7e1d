package genome

import "slices"

// Index is a read-only adjacency structure over a deduplicated edge list.
//
// Nodes are assigned dense indices 0..n-1 in ascending identifier order and
// neighbor lists are stored back to back in one slice (compressed sparse
// rows), sorted ascending. Queries take and return original identifiers; the
// dense accessors exist for algorithms that want array-backed bookkeeping.
type Index struct {
	ids     []NodeID
	pos     map[NodeID]int
	offsets []int
	adj     []int
}

// NewIndex builds an index from canonical, deduplicated edges.
func NewIndex(edges []Edge) *Index {
	seen := make(map[NodeID]struct{}, len(edges)*2)
	for _, e := range edges {
		seen[e.A] = struct{}{}
		seen[e.B] = struct{}{}
	}
	ids := make([]NodeID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	pos := make(map[NodeID]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	counts := make([]int, len(ids)+1)
	for _, e := range edges {
		counts[pos[e.A]+1]++
		counts[pos[e.B]+1]++
	}
	for i := 1; i < len(counts); i++ {
		counts[i] += counts[i-1]
	}
	offsets := slices.Clone(counts)
	adj := make([]int, counts[len(counts)-1])
	fill := counts[:len(ids)]
	for _, e := range edges {
		a, b := pos[e.A], pos[e.B]
		adj[fill[a]] = b
		fill[a]++
		adj[fill[b]] = a
		fill[b]++
	}
	for i := range ids {
		slices.Sort(adj[offsets[i]:offsets[i+1]])
	}

	return &Index{ids: ids, pos: pos, offsets: offsets, adj: adj}
}

// Len returns the number of nodes.
func (ix *Index) Len() int { return len(ix.ids) }

// Nodes returns all identifiers in ascending order.
func (ix *Index) Nodes() []NodeID { return slices.Clone(ix.ids) }

// MaxID returns the largest identifier, or -1 when the index is empty.
func (ix *Index) MaxID() NodeID {
	if len(ix.ids) == 0 {
		return -1
	}
	return ix.ids[len(ix.ids)-1]
}

// Has reports whether id is a node of the index.
func (ix *Index) Has(id NodeID) bool {
	_, ok := ix.pos[id]
	return ok
}

// Dense returns the dense index of id.
func (ix *Index) Dense(id NodeID) (int, bool) {
	i, ok := ix.pos[id]
	return i, ok
}

// ID returns the identifier at dense index i.
func (ix *Index) ID(i int) NodeID { return ix.ids[i] }

// Adjacent returns the dense neighbor indices of dense node i. The returned
// slice aliases the index and must not be modified.
func (ix *Index) Adjacent(i int) []int {
	return ix.adj[ix.offsets[i]:ix.offsets[i+1]]
}

// Neighbors returns the neighbors of id in ascending order.
func (ix *Index) Neighbors(id NodeID) []NodeID {
	i, ok := ix.pos[id]
	if !ok {
		return nil
	}
	dense := ix.Adjacent(i)
	out := make([]NodeID, len(dense))
	for k, j := range dense {
		out[k] = ix.ids[j]
	}
	return out
}

// Degree returns the number of neighbors of id.
func (ix *Index) Degree(id NodeID) int {
	i, ok := ix.pos[id]
	if !ok {
		return 0
	}
	return ix.offsets[i+1] - ix.offsets[i]
}
