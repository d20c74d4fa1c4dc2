// Package vset provides Set, a fixed-universe bit-vector over the vertex
// ids 0..n-1 of a graph.
//
// Every treewidth engine in this module speaks in vertex sets: components,
// separators, caps and bags are all Sets. The type is tuned for the access
// patterns of those engines:
//
//   - Word-parallel algebra: Union, Intersect, Minus, IsSubset and Intersects
//     touch one uint64 per 64 vertices.
//   - Cardinality by popcount (math/bits.OnesCount64).
//   - Ascending iteration via Next / Min / Members.
//   - Stable map keys via Key, so a Set can index a memo table.
//   - Renumbering via Convert under a permutation or partial injective map.
//
// Ownership rule (clone-before-mutate):
//
// Value-style methods (Union, With, Without, Minus, ...) never touch the
// receiver; they allocate a fresh Set. The in-place methods (Add, Remove,
// Or, AndNot, And) mutate the receiver and must only be called on a Set the
// caller owns, typically one just returned by Clone or New. Sets handed to
// an engine are never mutated by it.
//
// Example:
//
//	s := vset.Of(8, 1, 3, 5)
//	t := s.With(6)              // s is unchanged
//	fmt.Println(t, t.Len())     // {1 3 5 6} 4
package vset
