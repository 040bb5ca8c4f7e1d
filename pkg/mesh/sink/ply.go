package sink

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/sprout/pkg/mesh"
)

// PLYOption configures PLY rendering via [RenderPLY].
type PLYOption func(*plyRenderer)

type plyRenderer struct {
	comments []string
	noAux    bool
}

// WithPLYComment adds a "comment" line to the PLY header.
func WithPLYComment(c string) PLYOption {
	return func(r *plyRenderer) { r.comments = append(r.comments, c) }
}

// WithoutPLYAux omits the binormal and arc properties for tools that reject
// unknown vertex properties.
func WithoutPLYAux() PLYOption { return func(r *plyRenderer) { r.noAux = true } }

// RenderPLY encodes m as an ASCII PLY file.
func RenderPLY(m *mesh.Mesh, opts ...PLYOption) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	r := plyRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	buf.WriteString("ply\nformat ascii 1.0\n")
	for _, c := range r.comments {
		fmt.Fprintf(&buf, "comment %s\n", c)
	}
	fmt.Fprintf(&buf, "element vertex %d\n", m.VertexCount())
	props := []string{"x", "y", "z", "nx", "ny", "nz", "s", "t"}
	if !r.noAux {
		props = append(props, "bx", "by", "bz", "arc")
	}
	for _, p := range props {
		fmt.Fprintf(&buf, "property float %s\n", p)
	}
	fmt.Fprintf(&buf, "element face %d\n", m.TriangleCount())
	buf.WriteString("property list uchar uint vertex_indices\nend_header\n")

	for i, p := range m.Positions {
		n, uv := m.Normals[i], m.UVs[i]
		fmt.Fprintf(&buf, "%s %s %s %s %s %s %s %s",
			ff(p.X), ff(p.Y), ff(p.Z), ff(n.X), ff(n.Y), ff(n.Z), ff(uv.X), ff(uv.Y))
		if !r.noAux {
			a := m.Aux[i]
			fmt.Fprintf(&buf, " %s %s %s %s", ff(a.X), ff(a.Y), ff(a.Z), ff(a.W))
		}
		buf.WriteByte('\n')
	}
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Triangle(t)
		fmt.Fprintf(&buf, "3 %d %d %d\n", a, b, c)
	}
	return buf.Bytes(), nil
}

func ff(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
