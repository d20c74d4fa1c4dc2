package pmc

import (
	"sort"

	"github.com/katalvlaran/twexact/vset"
)

// findRoot returns the root bag of a decomposition of the whole graph, or
// false when none of width ≤ k exists.
func (s *state) findRoot() (vset.Set, bool) {
	for _, cand := range s.solved {
		candSep := s.g.NeighborSet(cand)
		if s.allFeasible(candSep) {
			s.logRoot("separator of solved block", candSep)
			return candSep, true
		}
	}

	// rarely covered vertices first
	count := make([]int, s.n)
	for _, f := range s.solved {
		for v := f.Next(0); v >= 0; v = f.Next(v + 1) {
			count[v]++
		}
	}
	ord := make([]int, s.n)
	for i := range ord {
		ord[i] = i
	}
	sort.SliceStable(ord, func(i, j int) bool {
		if count[ord[i]] != count[ord[j]] {
			return count[ord[i]] < count[ord[j]]
		}
		return ord[i] < ord[j]
	})
	rank := make([]int, s.n)
	for i, v := range ord {
		rank[v] = i
	}
	lowest := func(c vset.Set) int {
		best := -1
		for v := c.Next(0); v >= 0; v = c.Next(v + 1) {
			if best < 0 || rank[v] < rank[best] {
				best = v
			}
		}
		return best
	}

	rv := newView(s.n, s.k+1, true, lowest)
	for _, f := range s.solved {
		rv.add(f, s.g.NeighborSet(f))
	}

	forced := s.g.Empty()
	empty := s.g.Empty()
	for i := 0; i <= s.k && i < s.n; i++ {
		v0 := ord[i]
		for _, cand := range rv.get(v0, s.all, empty) {
			candSep := s.g.NeighborSet(cand)
			if forced.IsSubset(candSep) {
				if bag, ok := s.rootAround(rv, cand, candSep); ok {
					s.logRoot("extended large side", bag)
					return bag, true
				}
				continue
			}
			union := forced.Union(candSep)
			if union.Len() > s.k+1 {
				continue
			}
			rest := s.all.Minus(union)
			rest.AndNot(cand)
			if bag, ok := s.tryUnion(rv, rest, union); ok {
				s.logRoot("forced union", bag)
				return bag, true
			}
		}
		forced.Add(v0)
		if i == s.k &&
			len(s.g.FullComponents(forced)) == 0 &&
			s.g.IsCliquish(forced) &&
			s.allFeasible(forced) {
			s.logRoot("forced set", forced)
			return forced, true
		}
	}

	return vset.Set{}, false
}

// rootAround extends the largest full component left by candSep, provided
// everything else around candSep is solved.
func (s *state) rootAround(rv *view, cand, candSep vset.Set) (vset.Set, bool) {
	scope := s.all.Minus(cand)
	scope.AndNot(candSep)
	fulls, nonFulls := s.g.ListComponents(scope, candSep)
	if len(fulls) == 0 {
		return vset.Set{}, false
	}
	largest := 0
	for i, f := range fulls {
		if f.Len() > fulls[largest].Len() {
			largest = i
		}
	}
	for i, f := range fulls {
		if i != largest && !s.feasible(f) {
			return vset.Set{}, false
		}
	}
	for _, c := range nonFulls {
		if !s.feasible(c) {
			return vset.Set{}, false
		}
	}

	return s.findCap(rv, fulls[largest], candSep)
}

func (s *state) logRoot(how string, bag vset.Set) {
	if s.opts.Logger != nil {
		s.opts.Logger.Debug("root found", "k", s.k, "via", how, "bag", bag.String())
	}
}
