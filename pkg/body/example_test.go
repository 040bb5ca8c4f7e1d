package body_test

import (
	"fmt"

	"github.com/matzehuels/sprout/pkg/body"
	"github.com/matzehuels/sprout/pkg/genome"
)

func ExampleGenerate() {
	g := genome.MustNew(genome.E(1, 2), genome.E(2, 3), genome.E(3, 4))

	cfg := body.DefaultConfig()
	cfg.Accessories = false
	cfg.Fins = false

	res, err := body.Generate(g, body.Options{Config: cfg, Seed: 42})
	if err != nil {
		panic(err)
	}
	fmt.Println("Spine:", res.Spine)
	fmt.Println("Samples:", res.Samples())
	fmt.Println("Vertices:", res.Mesh.VertexCount())
	fmt.Println("Triangles:", res.Mesh.TriangleCount())
	// Output:
	// Spine: [4 3 2 1]
	// Samples: 48
	// Vertices: 770
	// Triangles: 1536
}

func ExampleComplexityScale() {
	cfg := body.DefaultConfig()
	fmt.Println(body.ComplexityScale(4, 4, cfg))
	fmt.Println(body.ComplexityScale(40, 80, cfg))
	// Output:
	// 1
	// 2
}
