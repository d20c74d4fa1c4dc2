package blockindex_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twexact/blockindex"
	"github.com/katalvlaran/twexact/vset"
)

type entry struct{ comp, sep vset.Set }

// admissible is the linear-scan reference for Get.
func admissible(e entry, scope, nb vset.Set, width int) bool {
	closure := e.comp.Union(e.sep)
	ns := e.sep.Len()

	return e.comp.IsSubset(scope) &&
		closure.IsSubset(scope.Union(nb)) &&
		ns >= 1 &&
		ns+nb.MinusLen(closure) <= width
}

func randomSet(r *rand.Rand, n int, p float64) vset.Set {
	s := vset.New(n)
	for v := 0; v < n; v++ {
		if r.Float64() < p {
			s.Add(v)
		}
	}

	return s
}

func sortedStrings(ss []vset.Set) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.String()
	}
	sort.Strings(out)

	return out
}

func TestNew_Errors(t *testing.T) {
	_, err := blockindex.New(10, -1)
	assert.ErrorIs(t, err, blockindex.ErrNegativeWidth)
	_, err = blockindex.New(-1, 3)
	assert.ErrorIs(t, err, blockindex.ErrNegativeSize)
}

func TestMustNew(t *testing.T) {
	x := blockindex.MustNew(70, 2)
	assert.Equal(t, 2, x.Width())
	assert.Zero(t, x.Len())
	assert.Panics(t, func() { blockindex.MustNew(10, -1) })
	assert.Panics(t, func() { blockindex.MustNew(-1, 0) })
}

func TestIndex_Basic(t *testing.T) {
	x, err := blockindex.New(8, 3)
	require.NoError(t, err)

	x.Add(vset.Of(8, 0), vset.Of(8, 1))       // leaf of a path
	x.Add(vset.Of(8, 0, 1), vset.Of(8, 2, 3)) // |S| = 2
	x.Add(vset.Of(8, 5), vset.New(8))         // empty separator, dropped
	x.Add(vset.Of(8, 6), vset.Of(8, 0, 1, 2, 3))
	assert.Equal(t, 2, x.Len())
	assert.Equal(t, 3, x.Width())

	got := x.Get(vset.Of(8, 0, 1, 2), vset.Of(8, 3))
	assert.Equal(t, []string{"{0 1}", "{0}"}, sortedStrings(got))

	// {0} alone is outside the scope's closure when 1 is missing
	got = x.Get(vset.Of(8, 0), vset.Of(8, 4))
	assert.Empty(t, got)

	// budget: |S|=1 plus neighbors {3,4,5} it misses exceeds 3
	got = x.Get(vset.Of(8, 0, 1), vset.Of(8, 3, 4, 5))
	assert.Empty(t, got)
}

func TestIndex_Dedup(t *testing.T) {
	x, err := blockindex.New(4, 2)
	require.NoError(t, err)
	x.Add(vset.Of(4, 0), vset.Of(4, 1))
	x.Add(vset.Of(4, 0), vset.Of(4, 1))
	assert.Equal(t, 1, x.Len())
}

func TestIndex_MatchesLinearScan(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, n := range []int{5, 20, 64, 65, 130} {
		for _, width := range []int{1, 3, 6} {
			x, err := blockindex.New(n, width)
			require.NoError(t, err)
			var entries []entry
			seen := map[string]bool{}
			for i := 0; i < 60; i++ {
				comp := randomSet(r, n, 0.2)
				if comp.IsEmpty() {
					continue
				}
				sep := randomSet(r, n, float64(width)/float64(n)).Minus(comp)
				key := comp.Key() + "|" + sep.Key()
				if seen[key] {
					continue
				}
				seen[key] = true
				x.Add(comp, sep)
				entries = append(entries, entry{comp, sep})
			}
			for q := 0; q < 80; q++ {
				scope := randomSet(r, n, 0.5)
				nb := randomSet(r, n, float64(width)/float64(n)).Minus(scope)
				var want []vset.Set
				for _, e := range entries {
					if admissible(e, scope, nb, width) {
						want = append(want, e.comp)
					}
				}
				got := x.Get(scope, nb)
				assert.Equal(t, sortedStrings(want), sortedStrings(got), "n=%d width=%d q=%d", n, width, q)
			}
		}
	}
}

func TestIndex_DeterministicOrder(t *testing.T) {
	build := func() *blockindex.Index {
		x, _ := blockindex.New(70, 4)
		x.Add(vset.Of(70, 66), vset.Of(70, 1, 2))
		x.Add(vset.Of(70, 3), vset.Of(70, 1))
		x.Add(vset.Of(70, 0), vset.Of(70, 1))
		return x
	}
	a := build().Get(vset.Full(70), vset.New(70))
	b := build().Get(vset.Full(70), vset.New(70))
	require.Len(t, a, 3)
	assert.Equal(t, a, b)
	// size-1 bucket first, then label order within it
	assert.Equal(t, "{0}", a[0].String())
	assert.Equal(t, "{3}", a[1].String())
	assert.Equal(t, "{66}", a[2].String())
}
