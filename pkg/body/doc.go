// Package body synthesizes an organic 3D body mesh from a genome.
//
// # Overview
//
// [Generate] runs the complete pipeline for one genome:
//
//  1. Spine: [genome.Spine] picks the longest path through the graph
//  2. Layout: [layout.Force] places every node in 2D
//  3. Centerline: [Centerline] smooths the spine's layout into a 3D curve
//     sampled evenly by arc length, lifted by a half-sine camber
//  4. Frames: [Frames] transports an orthonormal basis along the curve
//  5. Asymmetry: [Asymmetry] turns the nodes hanging off the spine into a
//     signed left/right bias per sample
//  6. Sweep: [NewProfile] and [Sweep] extrude a tapered, bulging, twisted
//     ellipse along the frames into a closed tube
//  7. Accessories: [Tubes] for edges off the spine and [Fins] for the dorsal,
//     pectoral and tail fins
//  8. Cleanup: [mesh.Weld] merges coincident vertices and [Orient] aligns the
//     spine with +X around the centroid
//
// Generation is a pure function of the genome, the [Config] and the layout
// seed. Nothing is shared between calls, so independent genomes can be
// generated concurrently.
//
// # Frames
//
// Frames are rotation-minimizing rather than Frenet frames: each frame is the
// previous one rotated by the shortest arc between consecutive tangents. This
// keeps the cross-section from spinning on near-straight segments, where the
// Frenet normal is undefined. Frames are right-handed with
// Binormal = Tangent × Normal, and positive asymmetry means the binormal side.
//
// # Complexity Scale
//
// [ComplexityScale] links genome size to body size. Every radius, tube and
// fin is multiplied by clamp(sqrt((nodes + 2·edges)/BaseComplexity),
// MinScale, MaxScale), so each rewrite step visibly grows the creature. The
// spine length stays at BodyLength.
//
// # Degenerate Genomes
//
// Genomes with fewer than two nodes, or whose spine is shorter than two
// nodes, cannot grow a body. Generate reports them through
// [Result.Diagnostic] with code DEGENERATE_GRAPH and an empty mesh instead of
// an error, leaving the caller to decide whether to surface it.
//
// # Mesh Layout
//
// The body tube has Samples·Sides+2 vertices before welding and
// Sides·2·(Samples-1) + 2·Sides triangles. UVs wrap around the ring in u and
// run head to tail in v. The auxiliary attribute carries the local binormal
// and the arc position for displacement passes downstream.
package body
