// SPDX-License-Identifier: MIT
// Package: twexact/builder
//
// api.go — thin public entry point for the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(opts, cons...). Resolves cfg, runs cons in
//     order against one sketch, then freezes the sketch into a graph.Graph.
//   • Constructors are implemented in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twexact/graph"
)

// Constructor appends one vertex block and its edges to the sketch.
// Constructors validate parameters first and return sentinel errors; they
// never panic.
type Constructor func(s *sketch, cfg builderConfig) error

// BuildGraph resolves the builder configuration from opts, applies all
// constructors in order and returns the resulting graph. Constructor errors
// are wrapped as "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor plus O(n²/64) to allocate the graph.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(opts...)
	s := &sketch{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	g, err := graph.FromEdges(s.n, s.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures known to be valid; it panics on error.
func MustBuild(opts []BuilderOption, cons ...Constructor) *graph.Graph {
	g, err := BuildGraph(opts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
