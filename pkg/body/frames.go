package body

import (
	"cogentcore.org/core/math32"
)

// refSwapCos is cos(18°): a reference axis closer than this to the first
// tangent is swapped for another one.
const refSwapCos = 0.951

// Frame is an orthonormal, right-handed basis attached to a spine sample
// (Binormal = Tangent × Normal). S is the normalized arc position in [0, 1].
type Frame struct {
	Position math32.Vector3
	Tangent  math32.Vector3
	Normal   math32.Vector3
	Binormal math32.Vector3
	S        float32
}

// Frames transports an orthonormal frame along the sampled curve.
//
// Tangents use forward differences (backward at the last sample). The first
// normal is +Z made orthogonal to the tangent (+Y when the tangent is within
// about 18° of Z). Every later frame is the previous one rotated by the
// shortest-arc rotation between consecutive tangents and then
// re-orthonormalized, which keeps the frame from twisting on straight runs.
func Frames(points []math32.Vector3) []Frame {
	n := len(points)
	if n == 0 {
		return nil
	}
	tangents := tangentsOf(points)

	frames := make([]Frame, n)
	nrm := seedNormal(tangents[0])
	for i := range frames {
		t := tangents[i]
		if i > 0 {
			var q math32.Quat
			q.SetFromUnitVectors(tangents[i-1], t)
			nrm = orthonormal(nrm.MulQuat(q), t)
		}
		s := float32(0)
		if n > 1 {
			s = float32(i) / float32(n-1)
		}
		frames[i] = Frame{
			Position: points[i],
			Tangent:  t,
			Normal:   nrm,
			Binormal: t.Cross(nrm),
			S:        s,
		}
	}
	return frames
}

func tangentsOf(points []math32.Vector3) []math32.Vector3 {
	n := len(points)
	out := make([]math32.Vector3, n)
	prev := math32.Vec3(1, 0, 0)
	found := false
	for i := range out {
		var d math32.Vector3
		if i < n-1 {
			d = points[i+1].Sub(points[i])
		} else if n > 1 {
			d = points[i].Sub(points[i-1])
		}
		if d.Length() > eps {
			prev = d.Normal()
			if !found {
				// repeated leading points inherit the first real direction
				for k := 0; k < i; k++ {
					out[k] = prev
				}
				found = true
			}
		}
		out[i] = prev
	}
	return out
}

func seedNormal(t math32.Vector3) math32.Vector3 {
	ref := math32.Vec3(0, 0, 1)
	if math32.Abs(t.Dot(ref)) > refSwapCos {
		ref = math32.Vec3(0, 1, 0)
	}
	return ref.Sub(t.MulScalar(t.Dot(ref))).Normal()
}

// orthonormal removes the component of n along unit t and normalizes it,
// reseeding when n collapses.
func orthonormal(n, t math32.Vector3) math32.Vector3 {
	n = n.Sub(t.MulScalar(t.Dot(n)))
	if n.Length() < eps {
		return seedNormal(t)
	}
	return n.Normal()
}
