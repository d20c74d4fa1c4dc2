// Package graph provides the dense, undirected, simple Graph consumed by the
// treewidth engines in this module.
//
// Vertices are the integers 0..n-1, fixed at construction. Adjacency is held
// as one vset.Set per vertex, so neighborhood and component queries reduce to
// word-parallel set algebra rather than pointer chasing.
//
// The Graph G = (V,E) guarantees:
//
//   - Symmetric adjacency: v ∈ N(u) ⇔ u ∈ N(v).
//   - No self-loops and no parallel edges (AddEdge is idempotent).
//   - Deterministic iteration: every query that returns several components
//     lists them by ascending smallest vertex.
//
// Core Methods:
//
//	// Construction
//	New(n int) *Graph
//	FromEdges(n int, edges [][2]int) (*Graph, error)
//	FromAdjacency(adj [][]int) (*Graph, error)
//	AddEdge(u, v int) error
//
//	// Queries
//	Neighbors(v int) vset.Set          // read-only
//	NeighborSet(s vset.Set) vset.Set   // N(S) = ∪N(v) \ S
//	ComponentsOf(vs vset.Set) []vset.Set
//	SeparatedComponents(sep vset.Set) []vset.Set
//	FullComponents(sep vset.Set) []vset.Set
//	ListComponents(scope, sep vset.Set) (fulls, nonFulls []vset.Set)
//	IsClique / IsCliquish / IsMinimalSeparator / IsConnected
//
//	// Derivation
//	Induce(vs vset.Set) (*Graph, []int)
//
// A full component of a separator S is a connected component C of G−S with
// N(C) = S. A minimal separator is a set with at least two full components.
//
// Concurrency: a Graph is not guarded by locks. Build it on one goroutine;
// once built, all query methods are read-only and safe for concurrent use.
package graph
