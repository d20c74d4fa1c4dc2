package td

import (
	"fmt"

	"github.com/katalvlaran/twexact/graph"
	"github.com/katalvlaran/twexact/vset"
)

// Validate reports whether d is a tree decomposition of g.
// The bag graph is checked first, then coverage, then running intersection.
//
// Complexity: O(b·n/64 + m·b + n·(b + e)) for b bags and e tree edges.
func (d *Decomposition) Validate(g *graph.Graph) error {
	if d == nil {
		return ErrNilDecomposition
	}
	n, nb := g.N(), len(d.Bags)
	for i, b := range d.Bags {
		if last := lastMember(b); last >= n {
			return fmt.Errorf("bag %d holds vertex %d (n=%d): %w", i, last, n, ErrBagOutOfRange)
		}
	}
	adj := make([][]int, nb)
	for _, e := range d.Edges {
		a, b := e[0], e[1]
		if a < 0 || a >= nb || b < 0 || b >= nb {
			return fmt.Errorf("edge %d–%d with %d bags: %w", a, b, nb, ErrBagOutOfRange)
		}
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	if err := checkTree(adj, len(d.Edges)); err != nil {
		return err
	}

	for v := 0; v < n; v++ {
		if d.holderCount(v) == 0 {
			return fmt.Errorf("vertex %d: %w", v, ErrVertexUncovered)
		}
	}
	for _, e := range g.Edges() {
		if !d.coversEdge(e[0], e[1]) {
			return fmt.Errorf("edge %d–%d: %w", e[0], e[1], ErrEdgeUncovered)
		}
	}
	for v := 0; v < n; v++ {
		if !d.holdersConnected(v, adj) {
			return fmt.Errorf("vertex %d: %w", v, ErrNotConnectedSubtree)
		}
	}

	return nil
}

func lastMember(b vset.Set) int {
	ms := b.Members()
	if len(ms) == 0 {
		return -1
	}

	return ms[len(ms)-1]
}

// checkTree requires edges == nodes−1 and connectivity. Zero bags is a tree.
func checkTree(adj [][]int, edges int) error {
	nb := len(adj)
	if nb == 0 {
		if edges != 0 {
			return fmt.Errorf("%d edges and no bags: %w", edges, ErrNotTree)
		}
		return nil
	}
	if edges != nb-1 {
		return fmt.Errorf("%d bags but %d edges: %w", nb, edges, ErrNotTree)
	}
	seen := make([]bool, nb)
	stack := []int{0}
	seen[0] = true
	reached := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range adj[u] {
			if !seen[w] {
				seen[w] = true
				reached++
				stack = append(stack, w)
			}
		}
	}
	if reached != nb {
		return fmt.Errorf("%d of %d bags reachable: %w", reached, nb, ErrNotTree)
	}

	return nil
}

func (d *Decomposition) holderCount(v int) int {
	c := 0
	for _, b := range d.Bags {
		if b.Contains(v) {
			c++
		}
	}

	return c
}

func (d *Decomposition) coversEdge(u, v int) bool {
	for _, b := range d.Bags {
		if b.Contains(u) && b.Contains(v) {
			return true
		}
	}

	return false
}

// holdersConnected walks tree edges restricted to bags holding v.
func (d *Decomposition) holdersConnected(v int, adj [][]int) bool {
	start := -1
	total := 0
	for i, b := range d.Bags {
		if b.Contains(v) {
			total++
			if start < 0 {
				start = i
			}
		}
	}
	if total == 0 {
		return true
	}
	seen := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range adj[u] {
			if !seen[w] && d.Bags[w].Contains(v) {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}

	return len(seen) == total
}
