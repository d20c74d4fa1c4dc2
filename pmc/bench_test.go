package pmc_test

import (
	"testing"

	"github.com/katalvlaran/twexact/builder"
	"github.com/katalvlaran/twexact/pmc"
)

func BenchmarkDecide_Grid5x5(b *testing.B) {
	g := builder.MustBuild(nil, builder.Grid(5, 5))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pmc.Decide(g, 5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsFeasible_KTree(b *testing.B) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(3)}, builder.KTree(40, 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pmc.IsFeasible(g, 4); err != nil {
			b.Fatal(err)
		}
	}
}
