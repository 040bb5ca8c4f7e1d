package body

import (
	"cogentcore.org/core/math32"

	"github.com/matzehuels/sprout/pkg/mesh"
)

// finShape is a flat outline in (u, v) fin space, fanned from root.
type finShape struct {
	outline []math32.Vector2
	root    math32.Vector2
}

var (
	dorsalFin = finShape{
		outline: []math32.Vector2{{X: -0.5, Y: 0}, {X: -0.25, Y: 0.6}, {X: 0.2, Y: 1}, {X: 0.45, Y: 0.55}, {X: 0.5, Y: 0}},
		root:    math32.Vector2{X: 0, Y: 0.35},
	}
	pectoralFin = finShape{
		outline: []math32.Vector2{{X: -0.3, Y: 0}, {X: 0.1, Y: 0.5}, {X: 0.6, Y: 0.7}, {X: 0.5, Y: 0.2}, {X: 0.3, Y: 0}},
		root:    math32.Vector2{X: 0.2, Y: 0.3},
	}
	tailFin = finShape{
		outline: []math32.Vector2{{X: 0, Y: 0.15}, {X: 0.9, Y: 0.8}, {X: 0.45, Y: 0}, {X: 0.9, Y: -0.8}, {X: 0, Y: -0.15}},
		root:    math32.Vector2{X: 0.15, Y: 0},
	}
)

const (
	dorsalAt   = 0.4
	pectoralAt = 0.25
	// pectoral fins point down and out
	pectoralDroop = 0.3
	pectoralScale = 0.7
	// distance between the two faces of a fin, as a fraction of its size
	finThickness = 0.02
)

// Fins emits the dorsal fin, the mirrored pectoral pair and the forked tail
// fin. Each fin is a thin, double-sided triangle fan sized by size; its two
// faces are finThickness·size apart so they survive welding as separate
// vertices.
func Fins(frames []Frame, prof Profile, bias []float32, size, twist float32) *mesh.Mesh {
	m := &mesh.Mesh{}
	if len(frames) < 2 {
		return m
	}

	d := stationAt(frames, prof, bias, dorsalAt)
	dn, _ := twisted(d.Frame, twist)
	fin(m, dorsalFin, d.Position.Add(dn.MulScalar(d.a)), d.Tangent, dn, size, d.S)

	p := stationAt(frames, prof, bias, pectoralAt)
	pn, pb := twisted(p.Frame, twist)
	for _, side := range []float32{1, -1} {
		out := pb.MulScalar(side)
		up := out.Sub(pn.MulScalar(pectoralDroop)).Normal()
		fin(m, pectoralFin, p.Position.Add(out.MulScalar(p.b)), p.Tangent, up, size*pectoralScale, p.S)
	}

	t := frames[len(frames)-1]
	tn, _ := twisted(t, twist)
	fin(m, tailFin, t.Position, t.Tangent, tn, size, t.S)
	return m
}

func fin(m *mesh.Mesh, shape finShape, origin, uAxis, vAxis math32.Vector3, size, s float32) {
	at := func(p math32.Vector2) math32.Vector3 {
		return origin.Add(uAxis.MulScalar(p.X * size)).Add(vAxis.MulScalar(p.Y * size))
	}
	root := at(shape.root)
	pts := make([]math32.Vector3, len(shape.outline))
	for i, p := range shape.outline {
		pts[i] = at(p)
	}
	front := pts[0].Sub(root).Cross(pts[1].Sub(root)).Normal()
	side := uAxis.Cross(front)
	aux := math32.Vec4(side.X, side.Y, side.Z, s)
	uv := func(p math32.Vector2) math32.Vector2 { return math32.Vec2(p.X+0.5, p.Y) }

	half := 0.5 * finThickness * size
	for pass, nrm := range []math32.Vector3{front, front.Negate()} {
		off := nrm.MulScalar(half)
		c := m.AddVertex(root.Add(off), nrm, uv(shape.root), aux)
		first := uint32(m.VertexCount())
		for i, p := range pts {
			m.AddVertex(p.Add(off), nrm, uv(shape.outline[i]), aux)
		}
		k := uint32(len(pts))
		for i := range k {
			a, b := first+i, first+(i+1)%k
			if pass == 0 {
				m.AddTriangle(c, a, b)
			} else {
				m.AddTriangle(c, b, a)
			}
		}
	}
}
