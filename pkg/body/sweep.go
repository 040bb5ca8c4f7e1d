package body

import (
	"cogentcore.org/core/math32"

	"github.com/matzehuels/sprout/pkg/mesh"
)

// Profile holds the cross-section semi-axes at every spine sample: A along
// the (twisted) normal, B along the (twisted) binormal.
type Profile struct {
	A []float32
	B []float32
}

// NewProfile evaluates the taper, bulge and asymmetry laws:
//
//	bulge = BulgeAmp · exp(-(s-BulgeCenter)² / 2·BulgeSigma²)
//	a(s)  = RadiusA · (1-s)^TaperA · (1+bulge)
//	b(s)  = RadiusB · (1-s)^TaperB · (1+bulge) · (1+AsymAmp·bias(s))
//
// Both are multiplied by scale and floored at MinRadius·scale.
func NewProfile(bias []float32, scale float32, cfg Config) Profile {
	n := len(bias)
	p := Profile{A: make([]float32, n), B: make([]float32, n)}
	floor := cfg.MinRadius * scale
	for i := range n {
		s := float32(i) / float32(n-1)
		d := s - cfg.BulgeCenter
		bulge := cfg.BulgeAmp * math32.Exp(-d*d/(2*cfg.BulgeSigma*cfg.BulgeSigma))
		rest := 1 - s
		a := cfg.RadiusA * math32.Pow(rest, cfg.TaperA) * (1 + bulge)
		b := cfg.RadiusB * math32.Pow(rest, cfg.TaperB) * (1 + bulge) * (1 + cfg.AsymAmp*bias[i])
		p.A[i] = max(a*scale, floor)
		p.B[i] = max(b*scale, floor)
	}
	return p
}

// twisted returns the frame's normal and binormal rotated about the tangent
// by twist·S.
func twisted(f Frame, twist float32) (n, b math32.Vector3) {
	sin, cos := math32.Sincos(twist * f.S)
	n = f.Normal.MulScalar(cos).Add(f.Binormal.MulScalar(sin))
	b = f.Binormal.MulScalar(cos).Sub(f.Normal.MulScalar(sin))
	return n, b
}

// Sweep builds the closed body tube: one elliptical ring of cfg.Sides vertices
// per frame, consecutive rings stitched with two triangles per quad, and an
// apex vertex fanned to each end ring. Vertex normals come from the ellipse
// gradient. The head apex sits HeadCap·max(a, b) ahead of the first ring and
// the tail apex TailCap·max(a, b) behind the last. UVs are (ring angle
// fraction, S) and the aux attribute is the twisted binormal with S in w.
//
// The result has len(frames)·Sides+2 vertices and
// Sides·2·(len(frames)-1) + 2·Sides triangles.
func Sweep(frames []Frame, prof Profile, cfg Config) *mesh.Mesh {
	m := &mesh.Mesh{}
	sides := cfg.Sides
	if len(frames) < 2 {
		return m
	}

	for i, f := range frames {
		n, b := twisted(f, cfg.Twist)
		ra, rb := prof.A[i], prof.B[i]
		aux := math32.Vec4(b.X, b.Y, b.Z, f.S)
		for j := range sides {
			phi := 2 * math32.Pi * float32(j) / float32(sides)
			sin, cos := math32.Sincos(phi)
			pos := f.Position.Add(n.MulScalar(ra * cos)).Add(b.MulScalar(rb * sin))
			nrm := n.MulScalar(cos / ra).Add(b.MulScalar(sin / rb)).Normal()
			m.AddVertex(pos, nrm, math32.Vec2(float32(j)/float32(sides), f.S), aux)
		}
	}

	ring := func(i, j int) uint32 { return uint32(i*sides + (j % sides)) }
	for i := 0; i < len(frames)-1; i++ {
		for j := range sides {
			a, b, c, d := ring(i, j), ring(i, j+1), ring(i+1, j+1), ring(i+1, j)
			m.AddTriangle(a, b, d)
			m.AddTriangle(b, c, d)
		}
	}

	head, tail := frames[0], frames[len(frames)-1]
	last := len(frames) - 1

	_, hb := twisted(head, cfg.Twist)
	hcap := cfg.HeadCap * max(prof.A[0], prof.B[0])
	h := m.AddVertex(head.Position.Sub(head.Tangent.MulScalar(hcap)), head.Tangent.Negate(),
		math32.Vec2(0.5, 0), math32.Vec4(hb.X, hb.Y, hb.Z, 0))
	for j := range sides {
		m.AddTriangle(h, ring(0, j+1), ring(0, j))
	}

	_, tb := twisted(tail, cfg.Twist)
	tcap := cfg.TailCap * max(prof.A[last], prof.B[last])
	t := m.AddVertex(tail.Position.Add(tail.Tangent.MulScalar(tcap)), tail.Tangent,
		math32.Vec2(0.5, 1), math32.Vec4(tb.X, tb.Y, tb.Z, 1))
	for j := range sides {
		m.AddTriangle(t, ring(last, j), ring(last, j+1))
	}
	return m
}
