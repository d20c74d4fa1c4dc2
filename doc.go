// Package twexact computes exact treewidth and optimal tree decompositions
// of undirected graphs.
//
// The module is organized as a set of small engines, each usable on its own:
//
//	vset/        — fixed-universe bitsets, the vertex-set type every engine shares
//	graph/       — bitset-adjacency Graph, components, cliques, induced subgraphs
//	minseps/     — enumeration of minimal separators of size ≤ k
//	blockindex/  — bounded subset index over (component, separator) blocks
//	pmc/         — the potential-maximal-clique decision engine (Decide, IsFeasible)
//	td/          — tree decompositions: construction, validation, DOT/SVG export
//	solver/      — treewidth search driving pmc.Decide over increasing k
//	pace/        — PACE .gr / .td readers and writers
//	builder/     — graph families with known treewidth for tests and benchmarks
//
// The twexact command (cmd/twexact) wraps these behind a cobra CLI:
//
//	twexact solve instance.gr -o instance.td --svg td.svg
//	twexact decide instance.gr -k 4
//	twexact minseps instance.gr -k 3
//	twexact validate instance.gr instance.td
//	twexact gen grid 5 5 > grid.gr
//
// Quick start:
//
//	g := builder.MustBuild(nil, builder.Grid(4, 4))
//	res, err := solver.Solve(ctx, g)
//	// res.Treewidth == 4, res.Decomposition.Validate(g) == nil
//
// All engines are deterministic: the same graph and options always yield
// the same decomposition.
package twexact
