package genome

// Spine returns the body axis of g: an approximate longest shortest path.
//
// It runs a breadth-first search from the smallest node to find the farthest
// node a, a second search from a to find the farthest node b, and returns the
// shortest path from a to b. Neighbors are visited in ascending order and the
// first node reached at the maximum distance wins ties, so the result is
// deterministic. Only the component containing the smallest node is
// considered.
//
// Graphs with no edges yield nil. Callers treat paths shorter than two nodes
// as degenerate.
func Spine(g *Graph) []NodeID {
	ix := g.Index()
	if ix.Len() == 0 {
		return nil
	}
	a, _ := farthest(ix, 0)
	b, parent := farthest(ix, a)

	var path []NodeID
	for v := b; v != -1; v = parent[v] {
		path = append(path, ix.ID(v))
	}
	// parent pointers lead from b back to a
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func farthest(ix *Index, src int) (int, []int) {
	dist := make([]int, ix.Len())
	parent := make([]int, ix.Len())
	for i := range dist {
		dist[i] = -1
		parent[i] = -1
	}
	dist[src] = 0
	queue := []int{src}
	best := src
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if dist[v] > dist[best] {
			best = v
		}
		for _, w := range ix.Adjacent(v) {
			if dist[w] >= 0 {
				continue
			}
			dist[w] = dist[v] + 1
			parent[w] = v
			queue = append(queue, w)
		}
	}
	return best, parent
}

// PathEdges returns the set of edges traversed by a node path.
func PathEdges(path []NodeID) map[Edge]bool {
	out := make(map[Edge]bool, len(path))
	for i := 1; i < len(path); i++ {
		out[E(path[i-1], path[i])] = true
	}
	return out
}
