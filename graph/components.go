package graph

import "github.com/katalvlaran/twexact/vset"

// NeighborSet returns N(S) = (∪_{v∈S} N(v)) \ S.
// Complexity: O(|S|·n/64).
func (g *Graph) NeighborSet(s vset.Set) vset.Set {
	r := vset.New(g.n)
	for v := s.Next(0); v >= 0; v = s.Next(v + 1) {
		r.Or(g.adj[v])
	}
	r.AndNot(s)

	return r
}

// ClosedNeighborSet returns N[S] = S ∪ N(S).
func (g *Graph) ClosedNeighborSet(s vset.Set) vset.Set {
	r := s.Clone()
	for v := s.Next(0); v >= 0; v = s.Next(v + 1) {
		r.Or(g.adj[v])
	}

	return r
}

// grow expands {v} to its connected component inside allowed, scanning one
// frontier layer at a time with word-parallel unions. v must be in allowed.
func (g *Graph) grow(v int, allowed vset.Set) vset.Set {
	c := vset.New(g.n)
	c.Add(v)
	frontier := c.Clone()
	for !frontier.IsEmpty() {
		reach := vset.New(g.n)
		for w := frontier.Next(0); w >= 0; w = frontier.Next(w + 1) {
			reach.Or(g.adj[w])
		}
		reach.And(allowed)
		reach.AndNot(c)
		c.Or(reach)
		frontier = reach
	}

	return c
}

// ComponentOf returns the connected component of G[vs] containing v,
// or an empty set when v ∉ vs.
func (g *Graph) ComponentOf(v int, vs vset.Set) vset.Set {
	if !vs.Contains(v) {
		return vset.New(g.n)
	}

	return g.grow(v, vs)
}

// ComponentsOf returns the connected components of the induced subgraph
// G[vs], ordered by ascending smallest vertex.
// Complexity: O(|vs|·n/64).
func (g *Graph) ComponentsOf(vs vset.Set) []vset.Set {
	rest := vs.Clone()
	var out []vset.Set
	for v := rest.Next(0); v >= 0; v = rest.Next(v + 1) {
		c := g.grow(v, rest)
		out = append(out, c)
		rest.AndNot(c)
	}

	return out
}

// SeparatedComponents returns the connected components of G − sep.
func (g *Graph) SeparatedComponents(sep vset.Set) []vset.Set {
	return g.ComponentsOf(g.all.Minus(sep))
}

// FullComponents returns the components C of G − sep with N(C) = sep.
func (g *Graph) FullComponents(sep vset.Set) []vset.Set {
	fulls, _ := g.ListComponents(g.all, sep)

	return fulls
}

// ListComponents partitions the components of G[scope \ sep] into full ones
// (every vertex of sep has a neighbor in the component) and the rest.
// Callers pass a scope that is a union of components of G − sep, in which
// case these are exactly the components of G − sep inside scope.
// Both slices are ordered by ascending smallest vertex.
func (g *Graph) ListComponents(scope, sep vset.Set) (fulls, nonFulls []vset.Set) {
	rest := scope.Minus(sep)
	for v := rest.Next(0); v >= 0; v = rest.Next(v + 1) {
		c := g.grow(v, rest)
		rest.AndNot(c)
		if g.isFullFor(c, sep) {
			fulls = append(fulls, c)
		} else {
			nonFulls = append(nonFulls, c)
		}
	}

	return fulls, nonFulls
}

// isFullFor reports sep ⊆ N(c) without materializing N(c) when possible.
func (g *Graph) isFullFor(c, sep vset.Set) bool {
	for s := sep.Next(0); s >= 0; s = sep.Next(s + 1) {
		if !g.adj[s].Intersects(c) {
			return false
		}
	}

	return true
}

// IsFullComponent reports whether c is a connected component of G − sep with
// N(c) = sep.
func (g *Graph) IsFullComponent(c, sep vset.Set) bool {
	v := c.Min()
	if v < 0 || c.Intersects(sep) {
		return false
	}
	if !g.grow(v, g.all.Minus(sep)).Equal(c) {
		return false
	}

	return g.NeighborSet(c).Equal(sep)
}

// IsConnected reports whether G[vs] is connected. The empty set is connected.
func (g *Graph) IsConnected(vs vset.Set) bool {
	v := vs.Min()
	if v < 0 {
		return true
	}

	return g.grow(v, vs).Equal(vs)
}
