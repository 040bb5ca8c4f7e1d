package mesh

import (
	"testing"

	"cogentcore.org/core/math32"
)

func TestWeldMergesCoincident(t *testing.T) {
	var m Mesh
	quad(&m, 0)
	// second quad shares the edge x=1 with the first
	a := m.AddVertex(math32.Vec3(1, 0, 0), up, math32.Vector2{}, math32.Vector4{})
	b := m.AddVertex(math32.Vec3(2, 0, 0), up, math32.Vector2{}, math32.Vector4{})
	c := m.AddVertex(math32.Vec3(2, 1, 0), up, math32.Vector2{}, math32.Vector4{})
	d := m.AddVertex(math32.Vec3(1, 1.00001, 0), up, math32.Vector2{}, math32.Vector4{})
	m.AddTriangle(a, b, c)
	m.AddTriangle(a, c, d)

	out, stats := Weld(&m, 1e-4)
	if out.VertexCount() != 6 {
		t.Errorf("VertexCount() = %d, want 6", out.VertexCount())
	}
	if stats.MergedVertices != 2 || stats.DroppedTriangles != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if out.TriangleCount() != 4 {
		t.Errorf("TriangleCount() = %d, want 4", out.TriangleCount())
	}
	if err := out.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if d := MinVertexDistance(out); d <= 1e-4 {
		t.Errorf("MinVertexDistance() = %v, want > tolerance", d)
	}
	if m.VertexCount() != 8 {
		t.Error("Weld modified its input")
	}
}

func TestWeldMergesOpposingFaces(t *testing.T) {
	var m Mesh
	quad(&m, 0)
	back := &Mesh{}
	quad(back, 0)
	for i := range back.Normals {
		back.Normals[i] = up.Negate()
	}
	m.Append(back)

	out, stats := Weld(&m, 1e-4)
	if out.VertexCount() != 4 || stats.MergedVertices != 4 {
		t.Errorf("coincident opposing vertices kept: %d vertices, %+v", out.VertexCount(), stats)
	}
	for _, n := range out.Normals {
		if n != up {
			t.Errorf("normal = %v, want the first vertex's %v", n, up)
		}
	}
	if d := MinVertexDistance(&m); d != 0 {
		t.Errorf("MinVertexDistance(input) = %v, want 0", d)
	}
	if d := MinVertexDistance(out); d <= 1e-4 {
		t.Errorf("MinVertexDistance() = %v, want > tolerance", d)
	}
}

func TestWeldDropsCollapsed(t *testing.T) {
	var m Mesh
	a := m.AddVertex(math32.Vec3(0, 0, 0), up, math32.Vector2{}, math32.Vector4{})
	b := m.AddVertex(math32.Vec3(0, 0, 0.00001), up, math32.Vector2{}, math32.Vector4{})
	c := m.AddVertex(math32.Vec3(1, 0, 0), up, math32.Vector2{}, math32.Vector4{})
	m.AddTriangle(a, b, c)

	out, stats := Weld(&m, 0)
	if out.TriangleCount() != 0 || stats.DroppedTriangles != 1 {
		t.Errorf("collapsed triangle kept: %+v", stats)
	}
	if out.VertexCount() > m.VertexCount() {
		t.Error("weld increased vertex count")
	}
}

func TestWeldEmpty(t *testing.T) {
	out, stats := Weld(&Mesh{}, 1e-4)
	if !out.IsEmpty() || stats.VerticesAfter != 0 {
		t.Errorf("Weld(empty) = %+v", stats)
	}
}
