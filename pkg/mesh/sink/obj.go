package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/sprout/pkg/mesh"
)

// OBJOption configures OBJ rendering via [RenderOBJ].
type OBJOption func(*objRenderer)

type objRenderer struct {
	name     string
	comments []string
}

// WithOBJName sets the object name written as an "o" record.
func WithOBJName(name string) OBJOption { return func(r *objRenderer) { r.name = name } }

// WithOBJComment adds a "#" comment line to the file header.
func WithOBJComment(c string) OBJOption {
	return func(r *objRenderer) { r.comments = append(r.comments, c) }
}

// RenderOBJ encodes m as Wavefront OBJ. Every face references the same index
// for position, texture coordinate and normal.
func RenderOBJ(m *mesh.Mesh, opts ...OBJOption) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	r := objRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	for _, c := range r.comments {
		fmt.Fprintf(&buf, "# %s\n", c)
	}
	fmt.Fprintf(&buf, "# %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	if r.name != "" {
		fmt.Fprintf(&buf, "o %s\n", r.name)
	}
	for _, p := range m.Positions {
		fmt.Fprintf(&buf, "v %s %s %s\n", ff(p.X), ff(p.Y), ff(p.Z))
	}
	for _, uv := range m.UVs {
		fmt.Fprintf(&buf, "vt %s %s\n", ff(uv.X), ff(uv.Y))
	}
	for _, n := range m.Normals {
		fmt.Fprintf(&buf, "vn %s %s %s\n", ff(n.X), ff(n.Y), ff(n.Z))
	}
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Triangle(t)
		fmt.Fprintf(&buf, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a+1, a+1, a+1, b+1, b+1, b+1, c+1, c+1, c+1)
	}
	return buf.Bytes(), nil
}
