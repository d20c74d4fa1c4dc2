package td

import (
	"github.com/katalvlaran/twexact/vset"
)

// Decomposition is a tree decomposition of a graph on N vertices.
// Edges join bag indices (0-based).
type Decomposition struct {
	N     int
	Bags  []vset.Set
	Edges [][2]int
	Width int
}

// New returns an empty Decomposition for a graph on n vertices.
// Its width is −1 until a bag is added.
func New(n int) *Decomposition {
	return &Decomposition{N: n, Width: -1}
}

// Single returns the one-bag decomposition whose bag is every vertex.
func Single(n int) *Decomposition {
	d := New(n)
	d.AddBag(vset.Full(n))

	return d
}

// AddBag appends a bag and returns its index. The bag is stored as given.
func (d *Decomposition) AddBag(bag vset.Set) int {
	d.Bags = append(d.Bags, bag)
	if w := bag.Len() - 1; w > d.Width {
		d.Width = w
	}

	return len(d.Bags) - 1
}

// AddEdge joins bags a and b.
func (d *Decomposition) AddEdge(a, b int) {
	d.Edges = append(d.Edges, [2]int{a, b})
}

// Len returns the number of bags.
func (d *Decomposition) Len() int { return len(d.Bags) }

// Append copies every bag of sub into d, renumbering vertices through inv
// (vertex i of sub becomes inv[i]) and shifting sub's edges. It returns the
// index in d of sub's first bag, or −1 when sub has no bags.
func (d *Decomposition) Append(sub *Decomposition, inv []int) int {
	if len(sub.Bags) == 0 {
		return -1
	}
	base := len(d.Bags)
	for _, b := range sub.Bags {
		d.AddBag(b.Convert(inv, d.N))
	}
	for _, e := range sub.Edges {
		d.AddEdge(e[0]+base, e[1]+base)
	}

	return base
}
