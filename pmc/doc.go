// Package pmc decides whether a graph has treewidth at most k and, when it
// does, builds a tree decomposition of width at most k.
//
// The engine is a bottom-up dynamic program over blocks. A block is a full
// component C of a minimal separator S = N(C) (see package minseps). For
// each block the program looks for a cap: a bag B with S ⊆ B ⊆ C ∪ S and
// |B| ≤ k+1 such that every component of C \ B is itself a solved block.
//
//  1. dp: the small full components (2|C| ≤ n − |N(C)|) of every minimal
//     separator of size ≤ k are solved in ascending order of size. A solved
//     block is recorded in a memo (component → cap) and in a subset index
//     (package blockindex) bucketed by the block's smallest vertex, so later
//     blocks can look up solved sub-blocks that fit inside them.
//  2. findRoot: the root bag is looked for among separators of solved blocks
//     first, then by growing a forced set in order of how rarely each vertex
//     appears in solved blocks, using a second index keyed by that order.
//  3. fill: starting from the root bag, each component of the remainder is
//     expanded through its memoized cap into a subtree.
//
// The first cap found is accepted; the program never looks for a smaller one.
// Exploration order is fixed, so output is deterministic.
//
// Disconnected graphs are split into connected components, solved one by
// one and spliced with a single tree edge per extra component.
//
// "No decomposition of width k" is a normal outcome: Decide returns
// (nil, nil) and IsFeasible returns (false, nil). Errors are reserved for
// invalid input.
//
// Memo and indexes live for one call; nothing is shared between calls.
//
// Cap sizes and separator containment in the block program are asserted
// through internal/assert, which compiles to nothing without the debug tag:
//
//	go test -tags debug ./...
package pmc
