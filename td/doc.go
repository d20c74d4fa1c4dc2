// Package td holds tree decompositions: a list of bags (vertex sets) joined
// by tree edges, plus the width max|bag| − 1.
//
// A Decomposition of a graph G is valid when
//
//   - every vertex of G lies in some bag (vertex coverage),
//   - both endpoints of every edge of G share some bag (edge coverage),
//   - for each vertex, the bags holding it induce a connected subtree
//     (running intersection), and
//   - the bag graph is a tree: connected with exactly len(Bags)−1 edges.
//
// Validate checks all four and reports the first violation as a wrapped
// sentinel error. ToDOT and RenderSVG draw the bag tree.
package td
