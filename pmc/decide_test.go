package pmc_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twexact/builder"
	"github.com/katalvlaran/twexact/graph"
	"github.com/katalvlaran/twexact/minseps"
	"github.com/katalvlaran/twexact/pmc"
	"github.com/katalvlaran/twexact/td"
	"github.com/katalvlaran/twexact/vset"
)

// bruteTreewidth evaluates TW(S) = min_{v∈S} max(TW(S−v), |Q(S−v, v)|) over
// all vertex subsets, where Q(S, v) is the set of vertices outside S ∪ {v}
// reachable from v through S. Feasible for n ≤ 12.
func bruteTreewidth(g *graph.Graph) int {
	n := g.N()
	adj := make([]int, n)
	for v := 0; v < n; v++ {
		nb := g.Neighbors(v)
		for w := nb.Next(0); w >= 0; w = nb.Next(w + 1) {
			adj[v] |= 1 << w
		}
	}
	q := func(s, v int) int {
		reached := 1 << v
		frontier := reached
		for frontier != 0 {
			next := 0
			for u := 0; u < n; u++ {
				if frontier&(1<<u) != 0 {
					next |= adj[u] & s
				}
			}
			next &^= reached
			reached |= next
			frontier = next
		}
		out := 0
		for u := 0; u < n; u++ {
			if reached&(1<<u) != 0 {
				out |= adj[u]
			}
		}
		out &^= reached | s

		c := 0
		for ; out != 0; out &= out - 1 {
			c++
		}
		return c
	}
	tw := make([]int, 1<<n)
	tw[0] = -1
	for s := 1; s < 1<<n; s++ {
		best := n
		for v := 0; v < n; v++ {
			if s&(1<<v) == 0 {
				continue
			}
			rest := s &^ (1 << v)
			w := max(tw[rest], q(rest, v))
			best = min(best, w)
		}
		tw[s] = best
	}

	return tw[1<<n-1]
}

func randomGraph(n int, p float64, seed int64) *graph.Graph {
	g := graph.New(n)
	r := rand.New(rand.NewSource(seed))
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < p {
				_ = g.AddEdge(u, v)
			}
		}
	}

	return g
}

func bagStrings(d *td.Decomposition) []string {
	out := make([]string, len(d.Bags))
	for i, b := range d.Bags {
		out[i] = b.String()
	}

	return out
}

func TestDecide_Path(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(4))

	d, err := pmc.Decide(g, 1)
	require.NoError(t, err)
	require.NotNil(t, d)
	require.NoError(t, d.Validate(g))
	assert.Equal(t, 1, d.Width)
	assert.ElementsMatch(t, []string{"{0 1}", "{1 2}", "{2 3}"}, bagStrings(d))

	d, err = pmc.Decide(g, 0)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDecide_Cycle4(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(4))

	d, err := pmc.Decide(g, 1)
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = pmc.Decide(g, 2)
	require.NoError(t, err)
	require.NotNil(t, d)
	require.NoError(t, d.Validate(g))
	assert.Equal(t, 2, d.Width)
}

func TestDecide_Complete(t *testing.T) {
	g := builder.MustBuild(nil, builder.Complete(5))

	d, err := pmc.Decide(g, 4)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, []string{"{0 1 2 3 4}"}, bagStrings(d))
	assert.Empty(t, d.Edges)

	d, err = pmc.Decide(g, 3)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDecide_DisjointTriangles(t *testing.T) {
	g := builder.MustBuild(nil, builder.Complete(3), builder.Complete(3))

	d, err := pmc.Decide(g, 2)
	require.NoError(t, err)
	require.NotNil(t, d)
	require.NoError(t, d.Validate(g))
	assert.Equal(t, 2, d.Width)
	assert.ElementsMatch(t, []string{"{0 1 2}", "{3 4 5}"}, bagStrings(d))
	assert.Equal(t, [][2]int{{0, 1}}, d.Edges)

	d, err = pmc.Decide(g, 1)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDecide_Errors(t *testing.T) {
	_, err := pmc.Decide(nil, 1)
	assert.ErrorIs(t, err, pmc.ErrNilGraph)

	g := builder.MustBuild(nil, builder.Path(3))
	_, err = pmc.Decide(g, -1)
	assert.ErrorIs(t, err, pmc.ErrNegativeWidth)

	_, err = pmc.IsFeasible(g, -2)
	assert.ErrorIs(t, err, pmc.ErrNegativeWidth)

	_, err = pmc.SafeSeparators(nil, 1)
	assert.ErrorIs(t, err, pmc.ErrNilGraph)
}

func TestDecide_TrivialAndEmpty(t *testing.T) {
	d, err := pmc.Decide(graph.New(0), 0)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, -1, d.Width)

	g := graph.New(3)
	d, err = pmc.Decide(g, 0)
	require.NoError(t, err)
	require.NotNil(t, d)
	require.NoError(t, d.Validate(g))
	assert.Equal(t, 0, d.Width)
	assert.Len(t, d.Bags, 3)
}

// Decide and IsFeasible agree, feasibility is monotone in k, returned
// decompositions are valid, and the least feasible k is the treewidth.
func TestDecide_AgainstBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		n := 3 + int(seed%6)
		p := []float64{0.2, 0.35, 0.5, 0.7}[seed%4]
		g := randomGraph(n, p, seed)
		want := bruteTreewidth(g)

		got := -1
		prev := false
		for k := 0; k < n; k++ {
			d, err := pmc.Decide(g, k)
			require.NoError(t, err)
			ok, err := pmc.IsFeasible(g, k)
			require.NoError(t, err)

			require.Equal(t, d != nil, ok, "seed=%d k=%d", seed, k)
			if prev {
				require.True(t, ok, "seed=%d: feasible at %d but not at %d", seed, k-1, k)
			}
			if ok {
				require.NoError(t, d.Validate(g), "seed=%d k=%d", seed, k)
				require.LessOrEqual(t, d.Width, k)
				if got < 0 {
					got = k
				}
			}
			prev = ok
		}
		assert.Equal(t, want, got, "seed=%d n=%d edges=%v", seed, n, g.Edges())
	}
}

func TestDecide_KnownFamilies(t *testing.T) {
	cases := []struct {
		name string
		g    *graph.Graph
		tw   int
	}{
		{"grid 3x3", builder.MustBuild(nil, builder.Grid(3, 3)), 3},
		{"grid 3x5", builder.MustBuild(nil, builder.Grid(3, 5)), 3},
		{"wheel 7", builder.MustBuild(nil, builder.Wheel(7)), 3},
		{"K3,4", builder.MustBuild(nil, builder.CompleteBipartite(3, 4)), 3},
		{"2-tree", builder.MustBuild([]builder.BuilderOption{builder.WithSeed(5)}, builder.KTree(14, 2)), 2},
		{"3-tree", builder.MustBuild([]builder.BuilderOption{builder.WithSeed(9)}, builder.KTree(14, 3)), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := pmc.Decide(tc.g, tc.tw-1)
			require.NoError(t, err)
			assert.Nil(t, d)

			d, err = pmc.Decide(tc.g, tc.tw)
			require.NoError(t, err)
			require.NotNil(t, d)
			require.NoError(t, d.Validate(tc.g))
			assert.Equal(t, tc.tw, d.Width)
		})
	}
}

func TestDecide_Deterministic(t *testing.T) {
	g := builder.MustBuild(nil, builder.Grid(3, 4))
	a, err := pmc.Decide(g, 3)
	require.NoError(t, err)
	b, err := pmc.Decide(g, 3)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, bagStrings(a), bagStrings(b))
	assert.Equal(t, a.Edges, b.Edges)
}

func TestDecide_SuppliedSeparators(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(6))
	seps, err := minseps.Enumerate(g, 2)
	require.NoError(t, err)

	d, err := pmc.Decide(g, 2, pmc.WithMinSeps(seps))
	require.NoError(t, err)
	require.NotNil(t, d)
	require.NoError(t, d.Validate(g))

	// without separators only the forced-set fallback remains, which cannot
	// close a long cycle
	d, err = pmc.Decide(g, 2, pmc.WithMinSeps([]vset.Set{}))
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDecide_PMCOnly(t *testing.T) {
	for _, g := range []*graph.Graph{
		builder.MustBuild(nil, builder.Path(5)),
		builder.MustBuild(nil, builder.Cycle(4)),
	} {
		want := bruteTreewidth(g)
		d, err := pmc.Decide(g, want, pmc.WithPMCOnly(true))
		require.NoError(t, err)
		require.NotNil(t, d)
		require.NoError(t, d.Validate(g))
	}
	for seed := int64(1); seed <= 10; seed++ {
		g := randomGraph(7, 0.4, seed)
		for k := 0; k < 7; k++ {
			d, err := pmc.Decide(g, k, pmc.WithPMCOnly(true))
			require.NoError(t, err)
			if d != nil {
				require.NoError(t, d.Validate(g))
				require.LessOrEqual(t, d.Width, k)
			}
		}
	}
}

func TestDecide_SterilityPassThrough(t *testing.T) {
	g := builder.MustBuild(nil, builder.Grid(3, 4))
	d, err := pmc.Decide(g, 3, pmc.WithSeparatorOptions(minseps.WithSterilityPruning(true)))
	require.NoError(t, err)
	require.NotNil(t, d)
	require.NoError(t, d.Validate(g))
	assert.Equal(t, 3, d.Width)

	ok, err := pmc.IsFeasible(g, 2, pmc.WithSeparatorOptions(minseps.WithSterilityPruning(true)))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSafeSeparators(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(6))
	safe, err := pmc.SafeSeparators(g, 2)
	require.NoError(t, err)
	assert.Len(t, safe, 9)

	safe, err = pmc.SafeSeparators(g, 5)
	require.NoError(t, err)
	assert.Empty(t, safe)

	// a star's center separates every leaf, and leaves are trivially solved
	star := builder.MustBuild(nil, builder.Star(5))
	safe, err = pmc.SafeSeparators(star, 1)
	require.NoError(t, err)
	require.Len(t, safe, 1)
	assert.Equal(t, "{0}", safe[0].String())
}
