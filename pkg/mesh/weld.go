package mesh

import "cogentcore.org/core/math32"

// DefaultWeldTolerance is the distance under which vertices are merged.
const DefaultWeldTolerance = 1e-4

// WeldStats reports what [Weld] changed.
type WeldStats struct {
	MergedVertices   int
	DroppedTriangles int
	VerticesBefore   int
	TrianglesBefore  int
	VerticesAfter    int
	TrianglesAfter   int
}

// Weld returns a copy of m with coincident vertices merged.
//
// Two vertices merge when their positions are within tol, whatever their
// other attributes. The first vertex of each group keeps its attributes, so
// no two vertices of the result lie within tol of each other. Triangles that
// reference the same vertex twice after remapping are dropped. A non-positive
// tol uses [DefaultWeldTolerance].
func Weld(m *Mesh, tol float32) (*Mesh, WeldStats) {
	if tol <= 0 {
		tol = DefaultWeldTolerance
	}
	n := len(m.Positions)
	stats := WeldStats{VerticesBefore: n, TrianglesBefore: m.TriangleCount()}

	const unset = ^uint32(0)
	remap := make([]uint32, n)
	for i := range remap {
		remap[i] = unset
	}

	out := &Mesh{}
	tol2 := tol * tol
	for i := 0; i < n; i++ {
		if remap[i] != unset {
			continue
		}
		remap[i] = out.AddVertex(m.Positions[i], m.Normals[i], m.UVs[i], m.Aux[i])
		for j := i + 1; j < n; j++ {
			if remap[j] != unset {
				continue
			}
			d := m.Positions[j].Sub(m.Positions[i])
			if d.Dot(d) <= tol2 {
				remap[j] = remap[i]
				stats.MergedVertices++
			}
		}
	}

	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Triangle(t)
		ra, rb, rc := remap[a], remap[b], remap[c]
		if ra == rb || rb == rc || ra == rc {
			stats.DroppedTriangles++
			continue
		}
		out.AddTriangle(ra, rb, rc)
	}

	stats.VerticesAfter = out.VertexCount()
	stats.TrianglesAfter = out.TriangleCount()
	return out, stats
}

// MinVertexDistance returns the smallest distance between any two vertices,
// or +Inf if m has fewer than two. It is the quantity [Weld] drives above its
// tolerance.
func MinVertexDistance(m *Mesh) float32 {
	best := math32.Inf(1)
	for i := range m.Positions {
		for j := i + 1; j < len(m.Positions); j++ {
			best = min(best, m.Positions[i].Sub(m.Positions[j]).Length())
		}
	}
	return best
}
