package body

import (
	"cogentcore.org/core/math32"

	"github.com/matzehuels/sprout/pkg/mesh"
)

// Orient rotates the mesh and frames about the mesh centroid so that the
// vector from the first to the last spine sample points along +X, then moves
// the centroid to the origin. The applied rotation and the original centroid
// are returned. Frames are updated in place.
func Orient(m *mesh.Mesh, frames []Frame) (math32.Quat, math32.Vector3) {
	q := math32.NewQuat(0, 0, 0, 1)
	centroid := m.Centroid()
	if len(frames) >= 2 {
		axis := frames[len(frames)-1].Position.Sub(frames[0].Position)
		if axis.Length() > eps {
			q.SetFromUnitVectors(axis.Normal(), math32.Vec3(1, 0, 0))
		}
	}

	m.Rotate(q, centroid)
	m.Translate(centroid.Negate())
	for i, f := range frames {
		frames[i].Position = f.Position.Sub(centroid).MulQuat(q)
		frames[i].Tangent = f.Tangent.MulQuat(q)
		frames[i].Normal = f.Normal.MulQuat(q)
		frames[i].Binormal = f.Binormal.MulQuat(q)
	}
	return q, centroid
}
