package io_test

import (
	"fmt"

	"github.com/matzehuels/sprout/pkg/io"
)

func ExampleParseExpr() {
	g, err := io.ParseExpr("1-2-3, 2-4")
	if err != nil {
		panic(err)
	}
	fmt.Println(g)
	fmt.Println(io.FormatExpr(g))
	// Output:
	// 1-2, 2-3, 2-4
	// 1-2-3, 2-4
}
