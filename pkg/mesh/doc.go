// Package mesh provides indexed triangle mesh buffers and topology cleanup.
//
// # Buffers
//
// A [Mesh] stores parallel per-vertex arrays (position, unit normal, UV and a
// four-component auxiliary attribute) plus a flat triangle index list with
// counter-clockwise, outward-facing winding. Generators append vertices with
// [Mesh.AddVertex] and stitch them with [Mesh.AddTriangle]; independent parts
// are merged with [Mesh.Append], which rebases the appended indices.
//
// The auxiliary attribute is free-form. Body meshes store the local binormal
// in xyz and the normalized arc position along the spine in w, so shaders can
// animate along the body without reconstructing the skeleton.
//
// # Welding
//
// [Weld] merges vertices whose positions lie within a tolerance and whose
// normals agree (positive dot product), rewrites the index list through a
// remap table and drops triangles that collapse. The normal guard keeps the
// two faces of double-sided geometry apart even though they share positions.
// Welding compares every vertex pair, which is fine for the few thousand
// vertices a body has.
//
// # Validation
//
// [Mesh.Validate] checks the structural invariants every mesh must satisfy:
// equal-length attribute arrays, complete triangles and in-range indices.
package mesh
