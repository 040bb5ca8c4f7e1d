package body

import (
	"cogentcore.org/core/math32"

	"github.com/matzehuels/sprout/pkg/genome"
	"github.com/matzehuels/sprout/pkg/mesh"
)

// station is a frame, profile and bias interpolated at an arbitrary arc
// position.
type station struct {
	Frame
	a, b, bias float32
}

func stationAt(frames []Frame, prof Profile, bias []float32, s float32) station {
	n := len(frames)
	x := min(max(s, 0), 1) * float32(n-1)
	i := min(int(x), n-2)
	t := x - float32(i)
	f0, f1 := frames[i], frames[i+1]
	lerp := func(a, b float32) float32 { return a + (b-a)*t }
	mix := func(a, b math32.Vector3) math32.Vector3 { return a.Add(b.Sub(a).MulScalar(t)) }

	tan := mix(f0.Tangent, f1.Tangent).Normal()
	nrm := orthonormal(mix(f0.Normal, f1.Normal), tan)
	return station{
		Frame: Frame{
			Position: mix(f0.Position, f1.Position),
			Tangent:  tan,
			Normal:   nrm,
			Binormal: tan.Cross(nrm),
			S:        lerp(f0.S, f1.S),
		},
		a:    lerp(prof.A[i], prof.A[i+1]),
		b:    lerp(prof.B[i], prof.B[i+1]),
		bias: lerp(bias[i], bias[i+1]),
	}
}

// anchor returns the attachment point of a node: its projected spine
// position pushed along the local binormal by bias·b.
func anchor(st station) math32.Vector3 {
	return st.Position.Add(st.Binormal.MulScalar(st.bias * st.b))
}

// Tubes emits a capped cylinder for every edge that is not on the spine path,
// running between the anchors of its endpoints. Edges whose anchors coincide
// are skipped.
func Tubes(g *genome.Graph, spine []genome.NodeID, anchors map[genome.NodeID]station, radius float32, sides int) *mesh.Mesh {
	m := &mesh.Mesh{}
	onPath := genome.PathEdges(spine)
	for _, e := range g.Edges() {
		if onPath[e] {
			continue
		}
		a, okA := anchors[e.A]
		b, okB := anchors[e.B]
		if !okA || !okB {
			continue
		}
		tube(m, anchor(a), anchor(b), a.S, b.S, radius, sides)
	}
	return m
}

func tube(m *mesh.Mesh, p, q math32.Vector3, sp, sq, radius float32, sides int) {
	axis := q.Sub(p)
	if axis.Length() < eps {
		return
	}
	d := axis.Normal()
	u := seedNormal(d)
	v := d.Cross(u)
	aux := func(s float32) math32.Vector4 { return math32.Vec4(v.X, v.Y, v.Z, s) }

	radial := func(j int) math32.Vector3 {
		sin, cos := math32.Sincos(2 * math32.Pi * float32(j) / float32(sides))
		return u.MulScalar(cos).Add(v.MulScalar(sin))
	}

	base := uint32(m.VertexCount())
	for k, c := range []math32.Vector3{p, q} {
		s := sp
		if k == 1 {
			s = sq
		}
		for j := range sides {
			r := radial(j)
			m.AddVertex(c.Add(r.MulScalar(radius)), r, math32.Vec2(float32(j)/float32(sides), float32(k)), aux(s))
		}
	}
	at := func(k, j int) uint32 { return base + uint32(k*sides+j%sides) }
	for j := range sides {
		a, b, c, e := at(0, j), at(0, j+1), at(1, j+1), at(1, j)
		m.AddTriangle(a, b, e)
		m.AddTriangle(b, c, e)
	}

	// caps fan from an axial center onto the wall rims
	for k, c := range []math32.Vector3{p, q} {
		s, nrm := sp, d.Negate()
		if k == 1 {
			s, nrm = sq, d
		}
		center := m.AddVertex(c, nrm, math32.Vec2(0.5, 0.5), aux(s))
		for j := range sides {
			a, b := at(k, j), at(k, j+1)
			if k == 0 {
				m.AddTriangle(center, b, a)
			} else {
				m.AddTriangle(center, a, b)
			}
		}
	}
}
