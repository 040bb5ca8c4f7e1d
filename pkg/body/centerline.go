package body

import (
	"cogentcore.org/core/math32"
)

const (
	eps = 1e-6

	// Catmull-Rom points evaluated per control segment before resampling.
	curveSubdivisions = 16
)

// Centerline turns the 2D layout of the spine nodes into a smooth 3D curve.
//
// A uniform Catmull-Rom spline is passed through the points (endpoints are
// duplicated so the curve starts and ends on them), evaluated densely and
// resampled at samples points evenly spaced by arc length. The third axis
// gets a half-sine camber of amplitude camber·length, zero at both ends.
//
// When the polyline has (near) zero length the curve is replaced by a straight
// segment of the given fallback length along +X centered on the origin.
func Centerline(points []math32.Vector2, samples int, camber, fallback float32) []math32.Vector3 {
	dense := catmullRom(points)
	cum, total := cumulative(dense)
	if total < eps {
		dense = []math32.Vector2{math32.Vec2(-fallback/2, 0), math32.Vec2(fallback/2, 0)}
		cum, total = cumulative(dense)
	}

	out := make([]math32.Vector3, samples)
	j := 0
	for i := range out {
		s := float32(i) / float32(samples-1)
		u := s * total
		for j < len(dense)-2 && cum[j+1] < u {
			j++
		}
		seg := cum[j+1] - cum[j]
		t := float32(0)
		if seg > eps {
			t = min(max((u-cum[j])/seg, 0), 1)
		}
		p := dense[j].Add(dense[j+1].Sub(dense[j]).MulScalar(t))
		z := float32(0)
		if i > 0 && i < samples-1 {
			z = camber * total * math32.Sin(math32.Pi*s)
		}
		out[i] = math32.Vec3(p.X, p.Y, z)
	}
	return out
}

func catmullRom(points []math32.Vector2) []math32.Vector2 {
	n := len(points)
	if n < 3 {
		return append([]math32.Vector2{}, points...)
	}
	at := func(i int) math32.Vector2 { return points[min(max(i, 0), n-1)] }

	dense := make([]math32.Vector2, 0, (n-1)*curveSubdivisions+1)
	dense = append(dense, points[0])
	for i := 0; i < n-1; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		for k := 1; k <= curveSubdivisions; k++ {
			t := float32(k) / curveSubdivisions
			t2, t3 := t*t, t*t*t
			c0 := p1.MulScalar(2)
			c1 := p2.Sub(p0).MulScalar(t)
			c2 := p0.MulScalar(2).Sub(p1.MulScalar(5)).Add(p2.MulScalar(4)).Sub(p3).MulScalar(t2)
			c3 := p1.MulScalar(3).Sub(p0).Sub(p2.MulScalar(3)).Add(p3).MulScalar(t3)
			dense = append(dense, c0.Add(c1).Add(c2).Add(c3).MulScalar(0.5))
		}
	}
	return dense
}

// knotFractions returns the normalized arc position at which the curve
// built by [Centerline] passes through each control point, or nil when the
// curve has (near) zero length.
func knotFractions(points []math32.Vector2) []float32 {
	dense := catmullRom(points)
	cum, total := cumulative(dense)
	if total < eps {
		return nil
	}
	step := 1
	if len(points) >= 3 {
		step = curveSubdivisions
	}
	out := make([]float32, len(points))
	for k := range out {
		out[k] = cum[k*step] / total
	}
	return out
}

// cumulative returns the running arc length at each point and the total.
func cumulative(poly []math32.Vector2) ([]float32, float32) {
	cum := make([]float32, len(poly))
	for i := 1; i < len(poly); i++ {
		cum[i] = cum[i-1] + poly[i].Sub(poly[i-1]).Length()
	}
	if len(cum) == 0 {
		return cum, 0
	}
	return cum, cum[len(cum)-1]
}
