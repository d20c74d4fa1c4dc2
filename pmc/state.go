// Package: twexact/pmc
//
// state.go — block DP over full components and the cap search behind it.
//
// Design contract:
//   • memo maps a full component C (by Key) to its cap: a bag Ω ⊇ N(C) with
//     |Ω| ≤ k+1 under which C ∪ N(C) has a decomposition of width ≤ k.
//   • Blocks are solved by ascending |C|, ties by vset.Compare; the first
//     cap found for a component is kept.
//   • A solved block is stored in the view's index under its lowest vertex,
//     which later cap searches query for feasible sub-blocks.
//
// Complexity:
//   • Exponential in k in the worst case; one index query per candidate.
//
// Determinism:
//   • solved keeps insertion order, so fill and root search never depend on
//     map iteration.

package pmc

import (
	"sort"

	"github.com/katalvlaran/twexact/blockindex"
	"github.com/katalvlaran/twexact/graph"
	"github.com/katalvlaran/twexact/internal/assert"
	"github.com/katalvlaran/twexact/vset"
)

// state is the memo of one (g, k) run.
type state struct {
	g    *graph.Graph
	n, k int
	opts Options
	all  vset.Set

	memo   map[string]vset.Set // component key → cap
	solved []vset.Set          // memo keys in the order they were solved
}

func newState(g *graph.Graph, k int, o Options) *state {
	return &state{
		g:    g,
		n:    g.N(),
		k:    k,
		opts: o,
		all:  g.All(),
		memo: make(map[string]vset.Set),
	}
}

func (s *state) feasible(c vset.Set) bool {
	_, ok := s.memo[c.Key()]

	return ok
}

// allFeasible reports whether every component of G − sep is solved.
func (s *state) allFeasible(sep vset.Set) bool {
	for _, c := range s.g.SeparatedComponents(sep) {
		if !s.feasible(c) {
			return false
		}
	}

	return true
}

// isSmall reports 2|C| ≤ n − |N(C)|.
func (s *state) isSmall(c vset.Set) bool {
	return 2*c.Len() <= s.n-s.g.NeighborSet(c).Len()
}

// view fixes the vertex order and the index a search consults. The block
// program uses natural order; the root search uses its own order and has no
// superset shortcut.
type view struct {
	root   bool
	lowest func(vset.Set) int
	index  []*blockindex.Index // by lowest vertex, created on first Add
	width  int
	n      int
}

func newView(n, width int, root bool, lowest func(vset.Set) int) *view {
	return &view{root: root, lowest: lowest, index: make([]*blockindex.Index, n), width: width, n: n}
}

func (v *view) add(c, sep vset.Set) {
	at := v.lowest(c)
	if v.index[at] == nil {
		v.index[at] = blockindex.MustNew(v.n, v.width)
	}
	v.index[at].Add(c, sep)
}

func (v *view) get(at int, scope, nb vset.Set) []vset.Set {
	if v.index[at] == nil {
		return nil
	}

	return v.index[at].Get(scope, nb)
}

// dp solves blocks in ascending size. With smallOnly, only full components
// on the small side of their separator are considered.
func (s *state) dp(seps []vset.Set, smallOnly bool) {
	var blocks []vset.Set
	for _, sep := range seps {
		for _, full := range s.g.FullComponents(sep) {
			if !smallOnly || s.isSmall(full) {
				blocks = append(blocks, full)
			}
		}
	}
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].Compare(blocks[j]) < 0 })

	bv := newView(s.n, s.k+1, false, vset.Set.Min)
	for _, c := range blocks {
		if s.feasible(c) {
			continue
		}
		sep := s.g.NeighborSet(c)
		if bag, ok := s.findCap(bv, c, sep); ok {
			if assert.Enabled {
				assert.That(bag.Len() <= s.k+1, "cap %v exceeds k+1=%d", bag, s.k+1)
				assert.That(sep.IsSubset(bag), "cap %v misses separator %v", bag, sep)
			}
			s.memo[c.Key()] = bag
			s.solved = append(s.solved, c)
			bv.add(c, sep)
		}
	}

	if s.opts.Logger != nil {
		s.opts.Logger.Debug("block program done", "k", s.k, "separators", len(seps), "blocks", len(blocks), "feasible", len(s.solved))
	}
}

// findCap looks for a cap of the block (c, sep).
func (s *state) findCap(v *view, c, sep vset.Set) (vset.Set, bool) {
	if c.Len()+sep.Len() <= s.k+1 && s.g.IsClique(c) {
		return c.Union(sep), true
	}
	v0 := v.lowest(c)

	for _, cand := range v.get(v0, c, sep) {
		candSep := s.g.NeighborSet(cand)
		if !v.root && sep.IsSubset(candSep) {
			if s.restFeasible(c, cand, candSep) {
				return candSep, true
			}
			continue
		}
		union := sep.Union(candSep)
		if assert.Enabled {
			assert.That(union.Len() <= s.k+1, "union %v exceeds k+1=%d", union, s.k+1)
		}
		scope := c.Minus(cand)
		scope.AndNot(union)
		if bag, ok := s.tryUnion(v, scope, union); ok {
			return bag, true
		}
	}

	return s.tryUnion(v, c.Without(v0), sep.With(v0))
}

// restFeasible reports whether every component of c \ (cand ∪ candSep) is
// solved, so candSep can serve as the cap of c.
func (s *state) restFeasible(c, cand, candSep vset.Set) bool {
	rest := c.Minus(cand)
	rest.AndNot(candSep)
	fulls, nonFulls := s.g.ListComponents(rest, candSep)
	for _, f := range fulls {
		if !s.feasible(f) {
			return false
		}
	}
	for _, f := range nonFulls {
		if !s.feasible(f) {
			return false
		}
	}

	return true
}

// tryUnion settles scope around the bag-in-progress union: every component
// that union does not fully border must be solved already; a single full
// component is extended recursively.
func (s *state) tryUnion(v *view, scope, union vset.Set) (vset.Set, bool) {
	fulls, nonFulls := s.g.ListComponents(scope, union)
	for _, c := range nonFulls {
		if !s.feasible(c) {
			return vset.Set{}, false
		}
	}
	if len(fulls) == 0 {
		if !s.opts.PMCOnly || s.g.IsCliquish(union) {
			return union, true
		}
		return vset.Set{}, false
	}

	var extend vset.Set
	if len(fulls) == 1 {
		extend = fulls[0]
	} else {
		found := false
		for _, f := range fulls {
			if s.feasible(f) {
				continue
			}
			// the block program only solves small sides; the root search may
			// still extend the one large side
			if !v.root || s.isSmall(f) {
				return vset.Set{}, false
			}
			extend, found = f, true
		}
		if !found {
			return union, true
		}
	}
	if union.Len() == s.k+1 {
		return vset.Set{}, false
	}

	return s.findCap(v, extend, union)
}
