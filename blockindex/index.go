// Package: twexact/blockindex
//
// index.go — bounded subset index over (component, separator) blocks.
//
// Design contract:
//   • One trie per separator size 1..width; trie level d is keyed by word d
//     of C ∪ S, labels kept sorted.
//   • Get descends only into labels that stay inside scope ∪ nb and whose
//     running count |S| + |nb \ (C ∪ S)| stays within width.
//
// Complexity:
//   • Add: O(n/64 · log fanout). Get: O(1) word operations per visited node.
//
// Determinism:
//   • Get returns entries in (separator size, label order, insertion) order.

package blockindex

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/twexact/vset"
)

// Sentinel errors for New.
var (
	// ErrNegativeWidth is returned when the width budget is negative.
	ErrNegativeWidth = errors.New("blockindex: negative width")

	// ErrNegativeSize is returned when the universe size is negative.
	ErrNegativeSize = errors.New("blockindex: negative universe size")
)

// Index is a bounded subset index over blocks of an n-vertex graph.
type Index struct {
	n     int
	width int
	depth int     // words per closure
	roots []*node // roots[s] holds entries with |separator| = s
	size  int
}

type node struct {
	labels   []uint64 // sorted ascending
	children []*node
	comps    []vset.Set // leaf payload, in insertion order
}

// New returns an empty Index for vertex sets over 0..n-1 with the given
// width budget.
func New(n, width int) (*Index, error) {
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrNegativeSize)
	}
	if width < 0 {
		return nil, fmt.Errorf("width=%d: %w", width, ErrNegativeWidth)
	}

	return &Index{
		n:     n,
		width: width,
		depth: (n + 63) / 64,
		roots: make([]*node, width+1),
	}, nil
}

// MustNew is like New but panics on a negative n or width.
func MustNew(n, width int) *Index {
	x, err := New(n, width)
	if err != nil {
		panic(err)
	}

	return x
}

// Width returns the budget fixed at construction.
func (x *Index) Width() int { return x.width }

// Len returns the number of stored entries.
func (x *Index) Len() int { return x.size }

// Add stores the block (component, separator). Entries with an empty
// separator or one larger than the width can never be returned and are
// dropped. Adding the same component twice under the same closure is a no-op.
// The index keeps references to component; callers must not mutate it later.
func (x *Index) Add(component, separator vset.Set) {
	ns := separator.Len()
	if ns == 0 || ns > x.width {
		return
	}
	closure := component.Union(separator)
	if x.roots[ns] == nil {
		x.roots[ns] = &node{}
	}
	nd := x.roots[ns]
	for d := 0; d < x.depth; d++ {
		nd = nd.child(closure.Word(d))
	}
	for _, c := range nd.comps {
		if c.Equal(component) {
			return
		}
	}
	nd.comps = append(nd.comps, component)
	x.size++
}

// child returns the child labeled w, creating it in sorted position.
func (nd *node) child(w uint64) *node {
	i := sort.Search(len(nd.labels), func(i int) bool { return nd.labels[i] >= w })
	if i < len(nd.labels) && nd.labels[i] == w {
		return nd.children[i]
	}
	c := &node{}
	nd.labels = append(nd.labels, 0)
	copy(nd.labels[i+1:], nd.labels[i:])
	nd.labels[i] = w
	nd.children = append(nd.children, nil)
	copy(nd.children[i+1:], nd.children[i:])
	nd.children[i] = c

	return c
}

// Get returns the stored components admissible for (scope, neighbors), by
// ascending separator size, then by trie order. The returned sets are the
// ones passed to Add and must be treated as read-only.
func (x *Index) Get(scope, neighbors vset.Set) []vset.Set {
	q := query{
		scope: scope,
		cl:    scope.Union(neighbors),
		nb:    neighbors,
		width: x.width,
		depth: x.depth,
	}
	for ns := 1; ns <= x.width; ns++ {
		if x.roots[ns] != nil {
			q.walk(x.roots[ns], 0, ns)
		}
	}

	return q.out
}

type query struct {
	scope, cl, nb vset.Set
	width, depth  int
	out           []vset.Set
}

func (q *query) walk(nd *node, d, count int) {
	if d == q.depth {
		for _, c := range nd.comps {
			if c.IsSubset(q.scope) {
				q.out = append(q.out, c)
			}
		}
		return
	}
	cl, nb := q.cl.Word(d), q.nb.Word(d)
	for i, label := range nd.labels {
		if label&^cl != 0 {
			continue
		}
		next := count + bits.OnesCount64(nb&^label)
		if next <= q.width {
			q.walk(nd.children[i], d+1, next)
		}
	}
}
