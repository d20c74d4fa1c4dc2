package graph

import "github.com/katalvlaran/twexact/vset"

// Induce returns the subgraph H = G[vs] with its vertices renumbered
// 0..|vs|-1 in ascending order of their ids in G, together with inv, where
// inv[i] is the G-vertex that became vertex i of H.
//
// Use Conversion(n, vs) for the forward map G → H, and
// set.Convert(inv, g.N()) to map sets of H back to G.
func (g *Graph) Induce(vs vset.Set) (*Graph, []int) {
	inv := vs.Members()
	conv := g.Conversion(vs)
	h := New(len(inv))
	for i, u := range inv {
		h.adj[i] = g.adj[u].Intersect(vs).Convert(conv, h.n)
	}
	h.recount()

	return h, inv
}

// Conversion returns conv with conv[v] = rank of v in vs for members of vs
// and -1 for every other vertex of g.
func (g *Graph) Conversion(vs vset.Set) []int {
	conv := make([]int, g.n)
	i := 0
	for v := 0; v < g.n; v++ {
		if vs.Contains(v) {
			conv[v] = i
			i++
		} else {
			conv[v] = -1
		}
	}

	return conv
}
