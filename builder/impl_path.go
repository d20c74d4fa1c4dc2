// SPDX-License-Identifier: MIT
// Package: twexact/builder
//
// impl_path.go — Path(n) and Cycle(n).
//
// Contract:
//   • Path: n ≥ 1, vertices base..base+n-1, edges i–(i+1).
//   • Cycle: n ≥ 3, the path plus the closing edge (n-1)–0.
//
// Complexity: O(n) edges.

package builder

import "fmt"

// Path returns a Constructor for the path Pₙ (treewidth 1 for n ≥ 2).
func Path(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := s.reserve(n)
		for i := 0; i+1 < n; i++ {
			s.edge(base+i, base+i+1)
		}

		return nil
	}
}

// Cycle returns a Constructor for the cycle Cₙ (treewidth 2).
func Cycle(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := s.reserve(n)
		for i := 0; i < n; i++ {
			s.edge(base+i, base+(i+1)%n)
		}

		return nil
	}
}
