package graph

import "github.com/katalvlaran/twexact/vset"

// IsClique reports whether every two distinct vertices of vs are adjacent.
func (g *Graph) IsClique(vs vset.Set) bool {
	for v := vs.Next(0); v >= 0; v = vs.Next(v + 1) {
		// v itself is the only member of vs outside N(v)
		if vs.MinusLen(g.adj[v]) != 1 {
			return false
		}
	}

	return true
}

// IsCliquish reports whether vs becomes a clique once the neighborhood of
// every component of G − vs is filled in: each non-adjacent pair u,w ∈ vs
// must share some component C with u,w ∈ N(C).
func (g *Graph) IsCliquish(vs vset.Set) bool {
	return g.isCliquishWith(vs, g.SeparatedComponents(vs))
}

func (g *Graph) isCliquishWith(vs vset.Set, components []vset.Set) bool {
	hoods := make([]vset.Set, len(components))
	for i, c := range components {
		hoods[i] = g.NeighborSet(c)
	}
	for v := vs.Next(0); v >= 0; v = vs.Next(v + 1) {
		missing := vs.Minus(g.adj[v])
		missing.Remove(v)
		for w := missing.Next(0); w >= 0; w = missing.Next(w + 1) {
			covered := false
			for _, nb := range hoods {
				if nb.Contains(v) && nb.Contains(w) {
					covered = true
					break
				}
			}
			if !covered {
				return false
			}
		}
	}

	return true
}

// IsMinimalSeparator reports whether sep has at least two full components.
func (g *Graph) IsMinimalSeparator(sep vset.Set) bool {
	return len(g.FullComponents(sep)) >= 2
}

// IsPMC reports whether vs is a potential maximal clique: G − vs has no full
// component and vs is cliquish.
func (g *Graph) IsPMC(vs vset.Set) bool {
	comps := g.SeparatedComponents(vs)
	for _, c := range comps {
		if g.isFullFor(c, vs) {
			return false
		}
	}

	return g.isCliquishWith(vs, comps)
}
