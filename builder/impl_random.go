// SPDX-License-Identifier: MIT
// Package: twexact/builder
//
// impl_random.go — stochastic constructors: RandomSparse(n, p) and KTree(n, k).
//
// Contract:
//   • Both require cfg.rng (WithSeed/WithRand), else ErrNeedRandSource.
//   • RandomSparse: n ≥ 1, p ∈ [0,1]; each pair i<j kept with probability p,
//     pairs visited in lexicographic order so the RNG stream is stable.
//   • KTree: k ≥ 0, n ≥ k+1. Starts from K_{k+1} on the first k+1 vertices;
//     each later vertex is joined to a uniformly chosen existing k-clique.
//     The result has treewidth exactly k (for n > k) and is chordal.
//
// Determinism: same seed ⇒ same graph.

package builder

import "fmt"

// RandomSparse returns a Constructor for the Erdős–Rényi graph G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		base := s.reserve(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					s.edge(base+i, base+j)
				}
			}
		}

		return nil
	}
}

// KTree returns a Constructor for a random k-tree on n vertices.
func KTree(n, k int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if k < 0 || n < k+1 {
			return fmt.Errorf("%s: n=%d k=%d (need n ≥ k+1 ≥ 1): %w", methodKTree, n, k, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodKTree, ErrNeedRandSource)
		}
		base := s.reserve(n)
		root := make([]int, k+1)
		for i := range root {
			root[i] = base + i
			for j := 0; j < i; j++ {
				s.edge(root[j], root[i])
			}
		}
		if k == 0 {
			return nil
		}

		// every (k+1)-clique created so far; any k of its vertices form a k-clique
		cliques := [][]int{root}
		for v := base + k + 1; v < base+n; v++ {
			host := cliques[cfg.rng.Intn(len(cliques))]
			drop := cfg.rng.Intn(k + 1)
			next := make([]int, 0, k+1)
			for i, u := range host {
				if i == drop {
					continue
				}
				s.edge(u, v)
				next = append(next, u)
			}
			cliques = append(cliques, append(next, v))
		}

		return nil
	}
}
