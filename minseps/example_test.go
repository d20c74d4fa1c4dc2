package minseps_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/twexact/builder"
	"github.com/katalvlaran/twexact/minseps"
)

func ExampleEnumerate() {
	g := builder.MustBuild(nil, builder.Cycle(5))
	seps, _ := minseps.Enumerate(g, 2)
	sort.Slice(seps, func(i, j int) bool { return seps[i].Compare(seps[j]) < 0 })
	for _, s := range seps {
		fmt.Println(s)
	}
	// Output:
	// {0 2}
	// {0 3}
	// {1 3}
	// {1 4}
	// {2 4}
}
