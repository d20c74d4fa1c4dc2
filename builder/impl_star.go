// SPDX-License-Identifier: MIT
// Package: twexact/builder
//
// impl_star.go — Star(n) and Wheel(n).
//
// Contract:
//   • Star: n ≥ 2; center is the block's first vertex, leaves follow.
//   • Wheel: n ≥ 4; outer ring Cₙ₋₁ on the first n-1 vertices, hub last.
//     Spokes are emitted in increasing ring index.

package builder

import "fmt"

// Star returns a Constructor for K₁,ₙ₋₁ (treewidth 1).
func Star(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := s.reserve(n)
		for i := 1; i < n; i++ {
			s.edge(center, center+i)
		}

		return nil
	}
}

// Wheel returns a Constructor for Wₙ = Cₙ₋₁ + hub (treewidth 3).
func Wheel(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ring := s.n
		if err := Cycle(n-1)(s, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := s.reserve(1)
		for i := 0; i < n-1; i++ {
			s.edge(hub, ring+i)
		}

		return nil
	}
}
