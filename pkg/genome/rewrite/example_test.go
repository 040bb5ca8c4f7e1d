package rewrite_test

import (
	"fmt"

	"github.com/matzehuels/sprout/pkg/genome"
	"github.com/matzehuels/sprout/pkg/genome/rewrite"
)

func ExampleMutate() {
	g := genome.MustNew(genome.E(1, 2), genome.E(1, 3))

	for _, kid := range rewrite.Mutate(g) {
		fmt.Println(kid)
	}
	// Output:
	// 1-3, 1-4, 2-4, 3-4
}

func ExampleExpand() {
	g := genome.MustNew(
		genome.E(1, 2), genome.E(2, 3),
		genome.E(2, 4), genome.E(3, 4),
	)

	for _, d := range rewrite.Expand(g) {
		fmt.Printf("%v fresh=%d: %v\n", d.Match, d.Fresh, d.Graph)
	}
	// Output:
	// 2(1,3) fresh=5: 1-5, 2-3, 2-4, 2-5, 3-4, 3-5
	// 2(1,4) fresh=6: 1-6, 2-3, 2-4, 2-6, 3-4, 4-6
	// 2(3,4) fresh=7: 1-2, 2-4, 2-7, 3-4, 3-7, 4-7
	// 3(2,4) fresh=8: 1-2, 2-4, 2-8, 3-4, 3-8, 4-8
	// 4(2,3) fresh=9: 1-2, 2-3, 2-9, 3-4, 3-9, 4-9
}

func ExampleMatches() {
	g := genome.MustNew(genome.E(1, 2), genome.E(2, 3))
	fmt.Println(rewrite.Matches(g))
	// Output:
	// [2(1,3)]
}
