// SPDX-License-Identifier: MIT
// Package: twexact/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) has id base + r*cols + c (row-major).
//   • 4-neighborhood: right and down edges emitted in row-major order.
//
// Complexity: O(rows·cols) vertices and edges.

package builder

import "fmt"

// Grid returns a Constructor for the rows×cols grid (treewidth min(rows,cols)
// when both are at least 2).
func Grid(rows, cols int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := s.reserve(rows * cols)
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					s.edge(at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					s.edge(at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}
