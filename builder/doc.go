// SPDX-License-Identifier: MIT
// Package builder provides deterministic graph families for tests, examples
// and benchmark instances of the treewidth engines.
//
// Every family has a known treewidth, which makes them the natural fixtures
// for an exact solver:
//
//	Path(n)                 tw = 1 (n ≥ 2)
//	Cycle(n)                tw = 2
//	Star(n)                 tw = 1, center is vertex 0
//	Wheel(n)                tw = 3, hub is the last vertex
//	Complete(n)             tw = n−1
//	CompleteBipartite(a,b)  tw = min(a,b)
//	Grid(r,c)               tw = min(r,c)
//	KTree(n,k)              tw = k (n > k), random, needs WithSeed/WithRand
//	RandomSparse(n,p)       unknown; Erdős–Rényi, needs WithSeed/WithRand
//
// Composition: BuildGraph(opts, c1, c2, ...) lays the constructors' vertex
// blocks side by side, so composing constructors yields a disjoint union
// (e.g. two disjoint triangles = BuildGraph(nil, Complete(3), Complete(3))).
// Within a block, vertices are numbered from the block's offset in the
// order documented by each constructor.
//
// Guarantees:
//   - Determinism: same options, seed and constructor order ⇒ identical graph.
//   - No panics at build time; invalid parameters surface as sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource) wrapped
//     with the constructor name.
//   - Option constructors (WithRand(nil)) panic on meaningless input.
package builder
