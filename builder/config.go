// SPDX-License-Identifier: MIT
// Package: twexact/builder
//
// config.go — internal configuration and the edge sketch constructors write to.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness available.
	rng *rand.Rand
}

// newBuilderConfig applies options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// sketch accumulates vertices and edges before the graph is frozen.
// Constructors reserve a contiguous block of vertices and then emit edges
// between block-local indices shifted by the block's base.
type sketch struct {
	n     int
	edges [][2]int
}

// reserve appends k fresh vertices and returns the id of the first one.
func (s *sketch) reserve(k int) int {
	base := s.n
	s.n += k

	return base
}

// edge records u–v.
func (s *sketch) edge(u, v int) {
	s.edges = append(s.edges, [2]int{u, v})
}
