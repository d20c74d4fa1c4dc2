// Package blockindex stores solved blocks (component, separator) and answers
// "which stored components fit inside this scope within this width budget".
//
// A stored entry (C, S) with closure C ∪ S is returned by Get(scope, nb) iff
//
//	C ⊆ scope,
//	C ∪ S ⊆ scope ∪ nb,
//	1 ≤ |S|, and
//	|S| + |nb \ (C ∪ S)| ≤ width.
//
// The last condition bounds the bag that results from joining the stored
// separator with the query's neighbors: when C is disjoint from nb it is
// exactly |S ∪ nb| ≤ width.
//
// Layout: one trie per separator size 1..width. A trie is keyed by the
// successive 64-bit words of the closure; node labels are kept sorted so the
// traversal order, and therefore the order of Get's result, is deterministic.
// During a query each level checks label ⊆ (scope ∪ nb) for its word and adds
// the number of query neighbors the label misses to a running count, pruning
// as soon as the count exceeds width.
//
// An Index is not safe for concurrent mutation.
package blockindex
