package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twexact/graph"
	"github.com/katalvlaran/twexact/vset"
)

// path4 is 0–1–2–3.
func path4(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	return g
}

func TestFromEdges_Errors(t *testing.T) {
	_, err := graph.FromEdges(-1, nil)
	assert.ErrorIs(t, err, graph.ErrNegativeSize)

	_, err = graph.FromEdges(3, [][2]int{{0, 3}})
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	_, err = graph.FromEdges(3, [][2]int{{1, 1}})
	assert.ErrorIs(t, err, graph.ErrLoopNotAllowed)
}

func TestFromAdjacency_Errors(t *testing.T) {
	_, err := graph.FromAdjacency([][]int{{1}, {}})
	assert.ErrorIs(t, err, graph.ErrAsymmetric)

	_, err = graph.FromAdjacency([][]int{{0}})
	assert.ErrorIs(t, err, graph.ErrLoopNotAllowed)

	_, err = graph.FromAdjacency([][]int{{5}})
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	g, err := graph.FromAdjacency([][]int{{1, 2}, {0}, {0}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraph_BasicQueries(t *testing.T) {
	g := path4(t)
	require.NoError(t, g.AddEdge(1, 0)) // duplicate collapses
	assert.Equal(t, 4, g.N())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 1, g.MinDegree())
	assert.Equal(t, 2, g.Degree(1))
	assert.True(t, g.AreAdjacent(2, 1))
	assert.False(t, g.AreAdjacent(0, 2))
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, g.Edges())
	assert.NoError(t, g.Validate())

	h := g.Clone()
	require.NoError(t, h.AddEdge(0, 3))
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 4, h.EdgeCount())
}

func TestGraph_NeighborSets(t *testing.T) {
	g := path4(t)
	s := g.SetOf(1, 2)
	assert.Equal(t, []int{0, 3}, g.NeighborSet(s).Members())
	assert.Equal(t, []int{0, 1, 2, 3}, g.ClosedNeighborSet(s).Members())
	assert.Equal(t, []int{1, 2}, s.Members(), "input untouched")
}

func TestGraph_Components(t *testing.T) {
	// two triangles {0,1,2} and {3,4,5} plus isolated 6
	g, err := graph.FromEdges(7, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}})
	require.NoError(t, err)

	comps := g.ComponentsOf(g.All())
	require.Len(t, comps, 3)
	assert.Equal(t, []int{0, 1, 2}, comps[0].Members())
	assert.Equal(t, []int{3, 4, 5}, comps[1].Members())
	assert.Equal(t, []int{6}, comps[2].Members())
	assert.False(t, g.IsConnected(g.All()))
	assert.True(t, g.IsConnected(g.SetOf(3, 4)))
	assert.True(t, g.IsConnected(g.Empty()))
	assert.Equal(t, []int{3, 4, 5}, g.ComponentOf(5, g.All()).Members())
	assert.True(t, g.ComponentOf(5, g.SetOf(0)).IsEmpty())
}

func TestGraph_FullComponents(t *testing.T) {
	g := path4(t)
	sep := g.SetOf(1)
	fulls := g.FullComponents(sep)
	require.Len(t, fulls, 2)
	assert.Equal(t, []int{0}, fulls[0].Members())
	assert.Equal(t, []int{2, 3}, fulls[1].Members())
	assert.True(t, g.IsMinimalSeparator(sep))
	assert.True(t, g.IsFullComponent(g.SetOf(2, 3), sep))
	assert.False(t, g.IsFullComponent(g.SetOf(2), sep))

	// {1,3}: components {0} (full? N={1} no) and {2} (N={1,3} yes)
	sep2 := g.SetOf(1, 3)
	f, nf := g.ListComponents(g.All(), sep2)
	require.Len(t, f, 1)
	require.Len(t, nf, 1)
	assert.Equal(t, []int{2}, f[0].Members())
	assert.Equal(t, []int{0}, nf[0].Members())
	assert.False(t, g.IsMinimalSeparator(sep2))
	assert.Len(t, g.SeparatedComponents(sep2), 2)
}

func TestGraph_Cliques(t *testing.T) {
	// 4-cycle 0-1-2-3-0
	g, err := graph.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)
	assert.True(t, g.IsClique(g.SetOf(0, 1)))
	assert.True(t, g.IsClique(g.SetOf(2)))
	assert.True(t, g.IsClique(g.Empty()))
	assert.False(t, g.IsClique(g.SetOf(0, 1, 2)))

	// {0,1,2} is cliquish: the missing pair 0,2 is filled by component {3}
	assert.True(t, g.IsCliquish(g.SetOf(0, 1, 2)))
	assert.True(t, g.IsPMC(g.SetOf(0, 1, 2)))
	// {0,2} has two full components; not a PMC
	assert.False(t, g.IsPMC(g.SetOf(0, 2)))
	// {0,1,2,3}: pair 0,2 has no component to fill it
	assert.False(t, g.IsCliquish(g.All()))
}

func TestGraph_Induce(t *testing.T) {
	g := path4(t)
	h, inv := g.Induce(g.SetOf(1, 2, 3))
	assert.Equal(t, []int{1, 2, 3}, inv)
	assert.Equal(t, 3, h.N())
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, h.Edges())

	back := h.SetOf(0, 2).Convert(inv, g.N())
	assert.Equal(t, []int{1, 3}, back.Members())

	conv := g.Conversion(g.SetOf(1, 3))
	assert.Equal(t, []int{-1, 0, -1, 1}, conv)
	assert.Equal(t, []int{1}, vset.Of(4, 3).Convert(conv, 2).Members())
}
