package pmc_test

import (
	"fmt"

	"github.com/katalvlaran/twexact/builder"
	"github.com/katalvlaran/twexact/pmc"
)

func ExampleDecide() {
	g := builder.MustBuild(nil, builder.Cycle(4))
	for k := 1; k <= 2; k++ {
		d, _ := pmc.Decide(g, k)
		if d == nil {
			fmt.Printf("k=%d: infeasible\n", k)
			continue
		}
		fmt.Printf("k=%d: width %d, %d bags\n", k, d.Width, len(d.Bags))
		for _, b := range d.Bags {
			fmt.Println(" ", b)
		}
	}
	// Output:
	// k=1: infeasible
	// k=2: width 2, 3 bags
	//   {1 3}
	//   {0 1 3}
	//   {1 2 3}
}
