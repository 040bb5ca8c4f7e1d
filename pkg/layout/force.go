package layout

import (
	"math/rand/v2"

	"cogentcore.org/core/math32"

	"github.com/matzehuels/sprout/pkg/genome"
)

const (
	// DefaultIterations is the number of force simulation steps.
	DefaultIterations = 120
	// DefaultArea is the side-squared area initial positions are drawn from.
	DefaultArea = 1
	// DefaultLength is the largest extent of the final layout.
	DefaultLength = 4

	cooling = 0.96
	minDist = 1e-4
)

// Options configures [Force].
type Options struct {
	Iterations int     // Simulation steps (default 120)
	Area       float32 // Layout area; k = sqrt(Area/n) (default 1)
	Length     float32 // Largest extent after rescaling (default 4)
	Seed       uint64  // Seed for initial positions
}

// DefaultOptions returns the default layout options with the given seed.
func DefaultOptions(seed uint64) Options {
	return Options{
		Iterations: DefaultIterations,
		Area:       DefaultArea,
		Length:     DefaultLength,
		Seed:       seed,
	}
}

func (o Options) withDefaults() Options {
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	if o.Area <= 0 {
		o.Area = DefaultArea
	}
	if o.Length <= 0 {
		o.Length = DefaultLength
	}
	return o
}

// Positions maps each genome node to its 2D layout position.
type Positions map[genome.NodeID]math32.Vector2

// Bounds returns the axis-aligned bounding box of all positions.
func (p Positions) Bounds() math32.Box2 {
	b := math32.B2Empty()
	for _, v := range p {
		b.ExpandByPoint(v)
	}
	return b
}

// Extent returns the larger side of the bounding box.
func (p Positions) Extent() float32 {
	if len(p) == 0 {
		return 0
	}
	size := p.Bounds().Size()
	return max(size.X, size.Y)
}

// Force lays out g with the Fruchterman-Reingold algorithm.
// Graphs without nodes yield an empty map.
func Force(g *genome.Graph, opts Options) Positions {
	opts = opts.withDefaults()
	ix := g.Index()
	n := ix.Len()
	if n == 0 {
		return Positions{}
	}

	side := math32.Sqrt(opts.Area)
	k := math32.Sqrt(opts.Area / float32(n))
	temp := side / 10

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	pos := make([]math32.Vector2, n)
	for i := range pos {
		pos[i] = math32.Vec2(
			rng.Float32()*side-side/2,
			rng.Float32()*side-side/2,
		)
	}

	edges := g.Edges()
	disp := make([]math32.Vector2, n)
	for range opts.Iterations {
		clear(disp)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dir, d := separation(pos[i], pos[j])
				f := dir.MulScalar(k * k / d)
				disp[i] = disp[i].Add(f)
				disp[j] = disp[j].Sub(f)
			}
		}

		for _, e := range edges {
			a, _ := ix.Dense(e.A)
			b, _ := ix.Dense(e.B)
			dir, d := separation(pos[a], pos[b])
			f := dir.MulScalar(d * d / k)
			disp[a] = disp[a].Sub(f)
			disp[b] = disp[b].Add(f)
		}

		for i := range pos {
			l := disp[i].Length()
			if l < minDist {
				continue
			}
			pos[i] = pos[i].Add(disp[i].MulScalar(min(l, temp) / l))
		}
		temp *= cooling
	}

	normalize(pos, opts.Length)

	out := make(Positions, n)
	for i, p := range pos {
		out[ix.ID(i)] = p
	}
	return out
}

// separation returns the unit direction from q to p and their distance.
// Coincident points are pushed apart along +X.
func separation(p, q math32.Vector2) (math32.Vector2, float32) {
	delta := p.Sub(q)
	d := delta.Length()
	if d < minDist {
		return math32.Vec2(1, 0), minDist
	}
	return delta.DivScalar(d), d
}

func normalize(pos []math32.Vector2, length float32) {
	b := math32.B2Empty()
	for _, p := range pos {
		b.ExpandByPoint(p)
	}
	center := b.Center()
	size := b.Size()
	extent := max(size.X, size.Y)
	scale := float32(1)
	if extent > minDist {
		scale = length / extent
	}
	for i := range pos {
		pos[i] = pos[i].Sub(center).MulScalar(scale)
	}
}
