package mesh

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

var (
	// ErrAttributeMismatch is returned by [Mesh.Validate] when the vertex
	// attribute arrays have different lengths.
	ErrAttributeMismatch = errors.New("vertex attribute arrays differ in length")

	// ErrIncompleteTriangle is returned by [Mesh.Validate] when the index
	// count is not a multiple of three.
	ErrIncompleteTriangle = errors.New("index count is not a multiple of 3")

	// ErrIndexOutOfRange is returned by [Mesh.Validate] when a triangle
	// references a vertex that does not exist.
	ErrIndexOutOfRange = errors.New("triangle index out of range")
)

// Mesh is an indexed triangle mesh with per-vertex attributes.
// The zero value is an empty mesh ready for use.
type Mesh struct {
	Positions []math32.Vector3
	Normals   []math32.Vector3
	UVs       []math32.Vector2
	Aux       []math32.Vector4
	Indices   []uint32
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(pos, normal math32.Vector3, uv math32.Vector2, aux math32.Vector4) uint32 {
	m.Positions = append(m.Positions, pos)
	m.Normals = append(m.Normals, normal)
	m.UVs = append(m.UVs, uv)
	m.Aux = append(m.Aux, aux)
	return uint32(len(m.Positions) - 1)
}

// AddTriangle appends the triangle (a, b, c).
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool { return len(m.Indices) == 0 }

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c uint32) {
	return m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
}

// Append copies all vertices and triangles of other into m, rebasing the
// appended indices.
func (m *Mesh) Append(other *Mesh) {
	if other == nil {
		return
	}
	base := uint32(len(m.Positions))
	m.Positions = append(m.Positions, other.Positions...)
	m.Normals = append(m.Normals, other.Normals...)
	m.UVs = append(m.UVs, other.UVs...)
	m.Aux = append(m.Aux, other.Aux...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, idx+base)
	}
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{}
	out.Append(m)
	return out
}

// Bounds returns the axis-aligned bounding box of all vertex positions.
func (m *Mesh) Bounds() math32.Box3 {
	b := math32.B3Empty()
	for _, p := range m.Positions {
		b.ExpandByPoint(p)
	}
	return b
}

// Centroid returns the mean vertex position, or the origin for an empty mesh.
func (m *Mesh) Centroid() math32.Vector3 {
	var sum math32.Vector3
	if len(m.Positions) == 0 {
		return sum
	}
	for _, p := range m.Positions {
		sum = sum.Add(p)
	}
	return sum.DivScalar(float32(len(m.Positions)))
}

// Translate moves every vertex by offset.
func (m *Mesh) Translate(offset math32.Vector3) {
	for i := range m.Positions {
		m.Positions[i] = m.Positions[i].Add(offset)
	}
}

// Rotate rotates positions about pivot and rotates normals and the xyz part
// of the auxiliary attribute by q.
func (m *Mesh) Rotate(q math32.Quat, pivot math32.Vector3) {
	for i := range m.Positions {
		m.Positions[i] = m.Positions[i].Sub(pivot).MulQuat(q).Add(pivot)
	}
	for i := range m.Normals {
		m.Normals[i] = m.Normals[i].MulQuat(q)
	}
	for i, a := range m.Aux {
		v := math32.Vec3(a.X, a.Y, a.Z).MulQuat(q)
		m.Aux[i] = math32.Vec4(v.X, v.Y, v.Z, a.W)
	}
}

// Validate checks that the attribute arrays have equal length, the index
// list holds complete triangles and every index is in range.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != n || len(m.UVs) != n || len(m.Aux) != n {
		return fmt.Errorf("%w: %d positions, %d normals, %d uvs, %d aux",
			ErrAttributeMismatch, n, len(m.Normals), len(m.UVs), len(m.Aux))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrIncompleteTriangle, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at %d, %d vertices", ErrIndexOutOfRange, idx, i, n)
		}
	}
	return nil
}
