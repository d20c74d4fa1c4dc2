// SPDX-License-Identifier: MIT
// Package: twexact/builder
//
// impl_complete.go — Complete(n) and CompleteBipartite(a, b).
//
// Contract:
//   • Complete: n ≥ 1, every pair i<j joined.
//   • CompleteBipartite: a, b ≥ 1; left side first (a vertices), then right.
//
// Complexity: O(n²) and O(a·b) edges.

package builder

import "fmt"

// Complete returns a Constructor for Kₙ (treewidth n-1).
func Complete(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewVertices)
		}
		base := s.reserve(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.edge(base+i, base+j)
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{a,b} (treewidth min(a,b)).
func CompleteBipartite(a, b int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if a < 1 || b < 1 {
			return fmt.Errorf("%s: a=%d b=%d < min=1: %w", methodCompleteBipartite, a, b, ErrTooFewVertices)
		}
		left := s.reserve(a)
		right := s.reserve(b)
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				s.edge(left+i, right+j)
			}
		}

		return nil
	}
}
