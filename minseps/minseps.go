// Package: twexact/minseps
//
// minseps.go — branching enumerator of minimal separators of size ≤ k.
//
// Design contract:
//   • Pivots are taken by descending degree; a pivot a grows its side
//     A ∋ a one separator vertex at a time, or fixes that vertex in S.
//   • Separators reachable from an earlier pivot are skipped through
//     aExcluded, so each separator is found under exactly one pivot.
//   • Branches whose side A can no longer stay within half of V \ S are cut.
//
// Complexity:
//   • Polynomial delay per separator, O(n²/64) words of work per branch.
//
// Determinism:
//   • Output order depends only on g and k; duplicates are dropped by Key.

package minseps

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/twexact/graph"
	"github.com/katalvlaran/twexact/internal/assert"
	"github.com/katalvlaran/twexact/vset"
)

// enumerator holds the state shared by one Enumerate call.
type enumerator struct {
	g    *graph.Graph
	n, k int
	opts Options

	aExcluded vset.Set // pivots already processed

	seen map[string]struct{}
	out  []vset.Set
}

// Enumerate returns all minimal separators of g with at most k vertices,
// each exactly once, in discovery order. The returned sets are owned by the
// caller.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrNegativeWidth if k < 0.
//   - graph.ErrLoopNotAllowed / graph.ErrAsymmetric for malformed graphs.
func Enumerate(g *graph.Graph, k int, opts ...Option) ([]vset.Set, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 0 {
		return nil, fmt.Errorf("k=%d: %w", k, ErrNegativeWidth)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("minseps: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &enumerator{
		g:         g,
		n:         g.N(),
		k:         k,
		opts:      o,
		aExcluded: g.Empty(),
		seen:      make(map[string]struct{}),
	}
	e.run()

	if o.Logger != nil {
		o.Logger.Debug("minimal separators enumerated", "n", e.n, "k", k, "count", len(e.out))
	}

	return e.out, nil
}

// pivotOrder lists vertices by descending degree, ties by ascending id.
func pivotOrder(g *graph.Graph) []int {
	order := make([]int, g.N())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		di, dj := g.Degree(order[i]), g.Degree(order[j])
		if di != dj {
			return di > dj
		}

		return order[i] < order[j]
	})

	return order
}

func (e *enumerator) run() {
	all := e.g.All()
	for _, a := range pivotOrder(e.g) {
		na := e.g.Neighbors(a)
		aSide := e.g.SetOf(a)
		bSide := all.Minus(na).Without(a)
		sFixed := na.Intersect(e.aExcluded)
		if sFixed.Len() > e.k {
			continue
		}
		before := len(e.out)
		e.generateFrom(a, aSide, bSide, na, sFixed)
		e.aExcluded = e.aExcluded.With(a)

		if e.opts.Logger != nil {
			e.opts.Logger.Debug("pivot done", "pivot", a, "found", len(e.out)-before)
		}
	}
}

func (e *enumerator) emit(sep vset.Set) {
	key := sep.Key()
	if _, dup := e.seen[key]; dup {
		return
	}
	e.seen[key] = struct{}{}
	// sep may alias an adjacency set of g
	e.out = append(e.out, sep.Clone())
}

// generateFrom opens branches for the components of rest around separator.
// separator must equal N(aSide).
func (e *enumerator) generateFrom(a int, aSide, rest, separator, sFixed vset.Set) {
	if assert.Enabled {
		assert.That(e.g.NeighborSet(aSide).Equal(separator), "separator %v is not N(%v)", separator, aSide)
	}
	fulls, nonFulls := e.g.ListComponents(rest, separator)

	for _, full := range fulls {
		e.branch(a, aSide, full, separator, sFixed)
	}

	for _, bCompo := range nonFulls {
		sep := e.g.NeighborSet(bCompo)
		if !sFixed.IsSubset(sep) {
			continue
		}
		rest1 := e.g.All()
		rest1.AndNot(bCompo)
		rest1.AndNot(sep)
		if !rest1.Contains(a) {
			continue
		}
		c := e.g.ComponentOf(a, rest1)
		if !c.Intersects(e.aExcluded) {
			e.branch(a, c, bCompo, sep, sFixed)
		}
	}
}

// balanced reports whether a completion of this branch can still keep the
// pivot's side within half of the non-separator vertices.
func (e *enumerator) balanced(nA, nS int) bool {
	if nS <= e.k {
		return nA <= (e.n-nS)/2
	}

	return nA+(nS-e.k) <= (e.n-e.k)/2
}

func (e *enumerator) branch(a int, aSide, bSide, separator, sFixed vset.Set) {
	nS := separator.Len()
	if !e.balanced(aSide.Len(), nS) {
		return
	}
	if assert.Enabled {
		assert.That(sFixed.IsSubset(separator), "sFixed %v not in separator %v", sFixed, separator)
		assert.That(sFixed.Len() <= e.k, "sFixed %v exceeds k=%d", sFixed, e.k)
		assert.That(e.g.NeighborSet(bSide).Equal(separator), "N(bSide) != separator %v", separator)
	}

	if nS <= e.k {
		if assert.Enabled {
			assert.That(e.g.IsMinimalSeparator(separator), "%v is not a minimal separator", separator)
		}
		e.emit(separator)
	}

	if sFixed.Len() == e.k {
		return
	}

	toDecide := separator.Minus(sFixed)
	if toDecide.IsEmpty() {
		return
	}
	if e.opts.SterilityPruning && e.sterile(aSide, bSide, separator, sFixed) {
		return
	}

	v := e.mostConnected(toDecide, bSide)

	// absorb v into a's side
	nv := e.g.Neighbors(v)
	rest := bSide.Minus(nv)
	nb := nv.Minus(separator)
	nb.AndNot(aSide)
	separator1 := separator.Without(v)
	separator1.Or(nb)
	sFixed1 := sFixed.Union(nb.Intersect(e.aExcluded))
	if sFixed1.Len() <= e.k {
		e.generateFrom(a, aSide.With(v), rest, separator1, sFixed1)
	}

	// or keep v in the separator for good
	if sFixed.Len() < e.k {
		e.branch(a, aSide, bSide, separator, sFixed.With(v))
	}
}

// mostConnected picks the vertex of toDecide with the most neighbors in
// bSide; the smallest id wins ties.
func (e *enumerator) mostConnected(toDecide, bSide vset.Set) int {
	best := toDecide.Min()
	bestN := e.g.Neighbors(best).IntersectLen(bSide)
	for v := toDecide.Next(best + 1); v >= 0; v = toDecide.Next(v + 1) {
		if c := e.g.Neighbors(v).IntersectLen(bSide); c > bestN {
			best, bestN = v, c
		}
	}

	return best
}

// sterile reports whether every completion of the branch must grow a's side
// past the balance target. Only separators larger than k can be sterile.
//
// It grows one tree per undecided separator vertex into bSide, one vertex
// per tree per layer, counting vertices taken. Only k−|sFixed| of those trees
// can be cut by the remaining separator slots; the rest must end up on a's
// side, which bounds how many vertices a's side gains.
func (e *enumerator) sterile(aSide, bSide, separator, sFixed vset.Set) bool {
	n, k := e.n, e.k
	nA, nB, nS, nF := aSide.Len(), bSide.Len(), separator.Len(), sFixed.Len()
	if nS <= k {
		return false
	}
	if nA+(nS-k) > (n-k)/2 {
		return true
	}
	want := (n-k)/2 - nA - nS + k + 1
	if want*(nS-nF) > nB*(nS-k) {
		return false
	}

	slots := k - nF
	rest := bSide.Clone()
	toDecide := separator.Minus(sFixed)
	trees := make([]vset.Set, 0, nS-nF)
	for v := toDecide.Next(0); v >= 0; v = toDecide.Next(v + 1) {
		trees = append(trees, e.g.Neighbors(v).Intersect(rest))
	}
	taken, surviving, depth := 0, len(trees), 0
	for {
		for i := 0; i < surviving; i++ {
			trees[i].And(rest)
		}
		live := trees[:surviving]
		sort.SliceStable(live, func(i, j int) bool { return live[i].Len() < live[j].Len() })
		if taken-depth*slots+trees[surviving-slots-1].Len() >= want {
			return true
		}
		j := 0
		for i := 0; i < surviving; i++ {
			trees[i].And(rest)
			if trees[i].IsEmpty() {
				continue
			}
			w := trees[i].Min()
			trees[i].Remove(w)
			taken++
			trees[i].Or(e.g.Neighbors(w).Intersect(rest))
			rest.Remove(w)
			trees[j] = trees[i]
			j++
		}
		surviving = j
		depth++

		if surviving < slots {
			break
		}
		if taken-slots*depth >= want {
			return true
		}
		if surviving == slots {
			break
		}
	}

	return false
}
