package genome_test

import (
	"fmt"

	"github.com/matzehuels/sprout/pkg/genome"
)

func Example() {
	g := genome.MustNew(genome.E(2, 1), genome.E(1, 3), genome.E(1, 2))

	fmt.Println("Edges:", g)
	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("Degree of 1:", g.Degree(1))
	fmt.Println("Max ID:", g.MaxID())
	// Output:
	// Edges: 1-2, 1-3
	// Nodes: [1 2 3]
	// Degree of 1: 2
	// Max ID: 3
}

func ExampleSpine() {
	g := genome.MustNew(
		genome.E(1, 2), genome.E(2, 3), genome.E(3, 4),
		genome.E(2, 5),
	)
	fmt.Println(genome.Spine(g))
	// Output:
	// [4 3 2 1]
}
