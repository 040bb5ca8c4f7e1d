package body

import (
	"cogentcore.org/core/math32"

	"github.com/matzehuels/sprout/pkg/genome"
	"github.com/matzehuels/sprout/pkg/layout"
)

// asymFloor is the largest accumulated magnitude still treated as zero.
const asymFloor = 1e-5

// Projection locates a 2D point relative to the spine polyline.
type Projection struct {
	S     float32        // Normalized arc position on the smoothed spine curve, in [0, 1]
	Side  float32        // +1 on the binormal side, -1 on the other, 0 on the line
	Point math32.Vector2 // Nearest point on the polyline
}

// Polyline is the spine's 2D layout with precomputed arc lengths.
type Polyline struct {
	Points []math32.Vector2
	cum    []float32
	total  float32
	curve  []float32 // arc fraction of each point along the smoothed curve
}

// NewPolyline builds a polyline through the layout positions of the spine.
func NewPolyline(spine []genome.NodeID, pos layout.Positions) Polyline {
	pts := make([]math32.Vector2, len(spine))
	for i, id := range spine {
		pts[i] = pos[id]
	}
	cum, total := cumulative(pts)
	return Polyline{Points: pts, cum: cum, total: total, curve: knotFractions(pts)}
}

// Length returns the polyline's arc length.
func (pl Polyline) Length() float32 { return pl.total }

// Project returns the nearest point of the polyline to p, clamped per
// segment, with its side sign. S is measured along the smoothed curve that
// [Centerline] builds through the same points, so it indexes the body's
// frames: it is exact at the control points and linear in between.
func (pl Polyline) Project(p math32.Vector2) Projection {
	if len(pl.Points) == 0 {
		return Projection{Point: p}
	}
	best := Projection{Point: pl.Points[0]}
	bestD := math32.Inf(1)
	for i := 0; i+1 < len(pl.Points); i++ {
		a, b := pl.Points[i], pl.Points[i+1]
		seg := b.Sub(a)
		l2 := seg.Dot(seg)
		t := float32(0)
		if l2 > eps*eps {
			t = min(max(p.Sub(a).Dot(seg)/l2, 0), 1)
		}
		q := a.Add(seg.MulScalar(t))
		d := p.Sub(q)
		if dist := d.Dot(d); dist < bestD {
			bestD = dist
			s := float32(0)
			switch {
			case pl.curve != nil:
				s = pl.curve[i] + t*(pl.curve[i+1]-pl.curve[i])
			case pl.total > eps:
				s = (pl.cum[i] + t*math32.Sqrt(l2)) / pl.total
			}
			best = Projection{S: s, Side: sign(d.X*seg.Y - d.Y*seg.X), Point: q}
		}
	}
	return best
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Asymmetry computes the signed left/right bias of the body at each of the
// given number of samples.
//
// Every node off the spine projects onto the spine polyline and contributes a
// Gaussian bump of width cfg.AsymSigma at its arc position, signed by its side
// and weighted by max(1, degree)^cfg.DegreeBias. The sum is divided by its
// largest magnitude, so the result lies in [-1, 1]; a field that cancels out
// is all zeros.
func Asymmetry(g *genome.Graph, spine []genome.NodeID, pl Polyline, pos layout.Positions, samples int, cfg Config) []float32 {
	field := make([]float32, samples)
	onSpine := make(map[genome.NodeID]bool, len(spine))
	for _, id := range spine {
		onSpine[id] = true
	}

	twoSigma2 := 2 * cfg.AsymSigma * cfg.AsymSigma
	for _, id := range g.Nodes() {
		if onSpine[id] {
			continue
		}
		p, ok := pos[id]
		if !ok {
			continue
		}
		proj := pl.Project(p)
		if proj.Side == 0 {
			continue
		}
		w := proj.Side * math32.Pow(float32(max(1, g.Degree(id))), cfg.DegreeBias)
		for i := range field {
			s := float32(i) / float32(samples-1)
			d := s - proj.S
			field[i] += w * math32.Exp(-d*d/twoSigma2)
		}
	}

	var peak float32
	for _, v := range field {
		peak = max(peak, math32.Abs(v))
	}
	if peak < asymFloor {
		clear(field)
		return field
	}
	for i := range field {
		field[i] /= peak
	}
	return field
}
