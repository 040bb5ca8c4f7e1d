// Package sink provides output format renderers for body meshes.
//
// # Overview
//
// A "sink" transforms a generated [mesh.Mesh] into bytes in an interchange
// format. This package provides renderers for:
//
//   - OBJ: Wavefront OBJ with positions, normals and texture coordinates
//   - PLY: ASCII PLY including the auxiliary attribute as custom properties
//   - JSON: Parallel attribute arrays for web viewers and tests
//
// All renderers are pure: they do not modify the mesh and are safe to call
// concurrently.
//
// # OBJ Output
//
// [RenderOBJ] writes "v", "vt", "vn" and "f" records with 1-based indices.
// OBJ has no slot for per-vertex auxiliary data, so the binormal and arc
// position are dropped.
//
//	data, err := sink.RenderOBJ(m, sink.WithOBJName("fish"))
//
// # PLY Output
//
// [RenderPLY] writes an ASCII PLY file. Besides position, normal and UV each
// vertex carries bx, by, bz (the local binormal) and arc (the normalized
// position along the spine).
//
// # JSON Output
//
// [RenderJSON] exports flat attribute arrays ready to upload to a GPU buffer.
// [WithJSONBody] adds the spine frames, asymmetry samples and complexity
// scale of a generated body so viewers can draw the skeleton too.
package sink
