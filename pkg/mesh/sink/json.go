package sink

import (
	"encoding/json"

	"github.com/matzehuels/sprout/pkg/body"
	"github.com/matzehuels/sprout/pkg/mesh"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	body   *body.Result
	seed   uint64
	genome string
}

// WithJSONBody attaches the skeleton of a generated body: spine node ids,
// frames, asymmetry samples and complexity scale.
func WithJSONBody(r *body.Result) JSONOption { return func(j *jsonRenderer) { j.body = r } }

// WithJSONSeed records the layout seed in the JSON output, enabling
// reproducible regeneration.
func WithJSONSeed(seed uint64) JSONOption { return func(j *jsonRenderer) { j.seed = seed } }

// WithJSONGenome records the source genome in expression form.
func WithJSONGenome(expr string) JSONOption { return func(j *jsonRenderer) { j.genome = expr } }

type jsonOutput struct {
	Genome    string        `json:"genome,omitempty"`
	Seed      uint64        `json:"seed,omitempty"`
	Vertices  int           `json:"vertices"`
	Triangles int           `json:"triangles"`
	Positions []float32     `json:"positions"`
	Normals   []float32     `json:"normals"`
	UVs       []float32     `json:"uvs"`
	Aux       []float32     `json:"aux"`
	Indices   []uint32      `json:"indices"`
	Skeleton  *jsonSkeleton `json:"skeleton,omitempty"`
}

type jsonSkeleton struct {
	Spine  []int       `json:"spine"`
	Scale  float32     `json:"scale"`
	Bias   []float32   `json:"bias"`
	Frames []jsonFrame `json:"frames"`
}

type jsonFrame struct {
	S        float32    `json:"s"`
	Position [3]float32 `json:"position"`
	Tangent  [3]float32 `json:"tangent"`
	Normal   [3]float32 `json:"normal"`
	Binormal [3]float32 `json:"binormal"`
}

// RenderJSON exports m as pretty-printed JSON with flat attribute arrays
// (three floats per position and normal, two per UV, four per aux).
func RenderJSON(m *mesh.Mesh, opts ...JSONOption) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Genome:    r.genome,
		Seed:      r.seed,
		Vertices:  m.VertexCount(),
		Triangles: m.TriangleCount(),
		Positions: make([]float32, 0, 3*m.VertexCount()),
		Normals:   make([]float32, 0, 3*m.VertexCount()),
		UVs:       make([]float32, 0, 2*m.VertexCount()),
		Aux:       make([]float32, 0, 4*m.VertexCount()),
		Indices:   append([]uint32{}, m.Indices...),
	}
	for i, p := range m.Positions {
		n, uv, a := m.Normals[i], m.UVs[i], m.Aux[i]
		out.Positions = append(out.Positions, p.X, p.Y, p.Z)
		out.Normals = append(out.Normals, n.X, n.Y, n.Z)
		out.UVs = append(out.UVs, uv.X, uv.Y)
		out.Aux = append(out.Aux, a.X, a.Y, a.Z, a.W)
	}
	if r.body != nil {
		out.Skeleton = buildSkeleton(r.body)
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildSkeleton(b *body.Result) *jsonSkeleton {
	s := &jsonSkeleton{
		Spine:  make([]int, len(b.Spine)),
		Scale:  b.Scale,
		Bias:   append([]float32{}, b.Bias...),
		Frames: make([]jsonFrame, len(b.Frames)),
	}
	for i, id := range b.Spine {
		s.Spine[i] = int(id)
	}
	for i, f := range b.Frames {
		s.Frames[i] = jsonFrame{
			S:        f.S,
			Position: [3]float32{f.Position.X, f.Position.Y, f.Position.Z},
			Tangent:  [3]float32{f.Tangent.X, f.Tangent.Y, f.Tangent.Z},
			Normal:   [3]float32{f.Normal.X, f.Normal.Y, f.Normal.Z},
			Binormal: [3]float32{f.Binormal.X, f.Binormal.Y, f.Binormal.Z},
		}
	}
	return s
}
