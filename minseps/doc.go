// Package minseps enumerates the minimal separators of a graph up to a size
// bound.
//
// Enumerate(g, k) returns every vertex set S with |S| ≤ k that has at least
// two full components in G − S, each exactly once. These are the separators
// the pmc dynamic program builds its blocks from.
//
// Algorithm (two-sided branch-and-bound):
//
//  1. Pivots a are taken in descending degree order (ties by id). Pivots
//     already processed are "excluded": they may sit in a separator or on the
//     far side, but never on a's side. Every separator is therefore reported
//     from a single canonical pivot.
//  2. For pivot a the search keeps a connected aSide ∋ a, its neighborhood
//     separator = N(aSide), and sFixed ⊆ separator, the vertices committed to
//     stay in the separator.
//  3. Each full component of the separator opens a branch; each non-full
//     component whose neighborhood still contains sFixed is grown from the
//     opposite side.
//  4. A branch picks the undecided separator vertex with the most neighbors
//     on the far side and forks: absorb it into aSide, or fix it in the
//     separator. The current separator is reported whenever |separator| ≤ k.
//
// Pruning:
//
//   - Balance: with nA = |aSide| and nS = |separator|, a branch dies when
//     nS ≤ k and nA > (n−nS)/2, or when nS > k and nA+(nS−k) > (n−k)/2.
//     Some full component of every minimal separator has at most (n−|S|)/2
//     vertices, so this loses nothing.
//   - Sterility (optional, WithSterilityPruning): a layered count of
//     vertex-disjoint paths from the undecided separator vertices into the
//     far side bounds how far aSide must still grow; branches that provably
//     overshoot the balance target are cut.
//
// Complexity: output-sensitive; exponential in k in the worst case.
// Memory: O(n·depth) sets along the recursion.
//
// Returned separators never alias the graph's adjacency sets.
//
// The enumerator's internal invariants (every emitted set is a minimal
// separator, N(bSide) = separator, |sFixed| ≤ k) are checked only when built
// with the debug tag; run the tests as
//
//	go test -tags debug ./minseps/ ./pmc/
package minseps
