package graph

import (
	"fmt"

	"github.com/katalvlaran/twexact/vset"
)

// Graph is an undirected simple graph over the vertices 0..n-1.
type Graph struct {
	n   int
	m   int        // number of undirected edges
	adj []vset.Set // adj[v] = N(v)
	all vset.Set   // {0..n-1}
}

// New creates an edgeless Graph on n vertices.
// Panics if n is negative; use FromEdges for checked construction.
// Complexity: O(n²/64) words.
func New(n int) *Graph {
	if n < 0 {
		panic(ErrNegativeSize.Error())
	}
	g := &Graph{n: n, adj: make([]vset.Set, n), all: vset.Full(n)}
	for v := range g.adj {
		g.adj[v] = vset.New(n)
	}

	return g
}

// FromEdges builds a Graph on n vertices from an edge list.
// Duplicate edges are collapsed.
//
// Errors:
//   - ErrNegativeSize if n < 0.
//   - ErrVertexOutOfRange if an endpoint is outside 0..n-1.
//   - ErrLoopNotAllowed if an edge has equal endpoints.
func FromEdges(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	g := New(n)
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// FromAdjacency builds a Graph from per-vertex neighbor lists, rejecting
// lists that are not symmetric or contain self-loops.
func FromAdjacency(adj [][]int) (*Graph, error) {
	g := New(len(adj))
	for u, row := range adj {
		for _, v := range row {
			if v < 0 || v >= g.n {
				return nil, fmt.Errorf("adjacency of %d lists %d: %w", u, v, ErrVertexOutOfRange)
			}
			if u == v {
				return nil, fmt.Errorf("adjacency of %d: %w", u, ErrLoopNotAllowed)
			}
			g.adj[u].Add(v)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	g.recount()

	return g, nil
}

// AddEdge inserts the undirected edge u–v. Adding an existing edge is a no-op.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("edge %d–%d with n=%d: %w", u, v, g.n, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("edge %d–%d: %w", u, v, ErrLoopNotAllowed)
	}
	if g.adj[u].Contains(v) {
		return nil
	}
	g.adj[u].Add(v)
	g.adj[v].Add(u)
	g.m++

	return nil
}

// Validate checks the structural preconditions every engine relies on:
// no self-loops and symmetric adjacency.
func (g *Graph) Validate() error {
	for u := 0; u < g.n; u++ {
		if g.adj[u].Contains(u) {
			return fmt.Errorf("vertex %d: %w", u, ErrLoopNotAllowed)
		}
		nb := g.adj[u]
		for v := nb.Next(0); v >= 0; v = nb.Next(v + 1) {
			if v >= g.n {
				return fmt.Errorf("vertex %d lists %d: %w", u, v, ErrVertexOutOfRange)
			}
			if !g.adj[v].Contains(u) {
				return fmt.Errorf("%d lists %d but not vice versa: %w", u, v, ErrAsymmetric)
			}
		}
	}

	return nil
}

func (g *Graph) recount() {
	d := 0
	for _, nb := range g.adj {
		d += nb.Len()
	}
	g.m = d / 2
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.m }

// All returns a fresh copy of the vertex set {0..n-1}.
func (g *Graph) All() vset.Set { return g.all.Clone() }

// Empty returns a fresh empty set over this graph's universe.
func (g *Graph) Empty() vset.Set { return vset.New(g.n) }

// SetOf returns a fresh set over this graph's universe holding vs.
func (g *Graph) SetOf(vs ...int) vset.Set { return vset.Of(g.n, vs...) }

// Neighbors returns N(v). The returned Set is shared with the Graph and
// must not be mutated; Clone it first.
func (g *Graph) Neighbors(v int) vset.Set { return g.adj[v] }

// Degree returns |N(v)|.
func (g *Graph) Degree(v int) int { return g.adj[v].Len() }

// AreAdjacent reports whether u–v is an edge.
func (g *Graph) AreAdjacent(u, v int) bool { return g.adj[u].Contains(v) }

// MinDegree returns the smallest vertex degree, or 0 for the empty graph.
// It is a lower bound on treewidth for every graph with at least one edge.
func (g *Graph) MinDegree() int {
	if g.n == 0 {
		return 0
	}
	best := g.adj[0].Len()
	for v := 1; v < g.n; v++ {
		if d := g.adj[v].Len(); d < best {
			best = d
		}
	}

	return best
}

// Edges lists every edge once as {u,v} with u < v, in lexicographic order.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.m)
	for u := 0; u < g.n; u++ {
		nb := g.adj[u]
		for v := nb.Next(u + 1); v >= 0; v = nb.Next(v + 1) {
			out = append(out, [2]int{u, v})
		}
	}

	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	h := &Graph{n: g.n, m: g.m, adj: make([]vset.Set, g.n), all: g.all.Clone()}
	for v, nb := range g.adj {
		h.adj[v] = nb.Clone()
	}

	return h
}
