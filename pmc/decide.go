package pmc

import (
	"fmt"

	"github.com/katalvlaran/twexact/graph"
	"github.com/katalvlaran/twexact/minseps"
	"github.com/katalvlaran/twexact/td"
	"github.com/katalvlaran/twexact/vset"
)

// Decide returns a tree decomposition of g of width at most k, or nil when
// none exists.
//
// Errors:
//   - ErrNilGraph, ErrNegativeWidth for invalid arguments.
//   - graph.ErrLoopNotAllowed, graph.ErrAsymmetric for malformed graphs.
//   - ErrInconsistent if the memo cannot be expanded (a bug).
func Decide(g *graph.Graph, k int, opts ...Option) (*td.Decomposition, error) {
	if err := checkArgs(g, k); err != nil {
		return nil, err
	}

	return decide(g, k, resolve(opts))
}

// IsFeasible reports whether g has treewidth at most k. It runs the same
// search as Decide without building the decomposition.
func IsFeasible(g *graph.Graph, k int, opts ...Option) (bool, error) {
	if err := checkArgs(g, k); err != nil {
		return false, err
	}

	return check(g, k, resolve(opts))
}

// SafeSeparators runs the block program over every full component of every
// minimal separator of size ≤ k, not only the small ones, and returns the
// separators S for which every component of G − S is a solved block.
// It returns nil when k ≥ n−1.
func SafeSeparators(g *graph.Graph, k int, opts ...Option) ([]vset.Set, error) {
	if err := checkArgs(g, k); err != nil {
		return nil, err
	}
	o := resolve(opts)
	if k >= g.N()-1 {
		return nil, nil
	}
	seps, err := separators(g, k, o)
	if err != nil {
		return nil, err
	}
	s := newState(g, k, o)
	s.dp(seps, false)

	var safe []vset.Set
	for _, sep := range seps {
		if s.allFeasible(sep) {
			safe = append(safe, sep)
		}
	}
	if o.Logger != nil {
		o.Logger.Debug("safe separators", "k", k, "separators", len(seps), "safe", len(safe))
	}

	return safe, nil
}

func checkArgs(g *graph.Graph, k int) error {
	if g == nil {
		return ErrNilGraph
	}
	if k < 0 {
		return fmt.Errorf("k=%d: %w", k, ErrNegativeWidth)
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("pmc: %w", err)
	}

	return nil
}

func separators(g *graph.Graph, k int, o Options) ([]vset.Set, error) {
	if o.MinSeps != nil {
		return o.MinSeps, nil
	}
	sopts := o.SeparatorOptions
	if o.Logger != nil {
		sopts = append(sopts[:len(sopts):len(sopts)], minseps.WithLogger(o.Logger))
	}

	return minseps.Enumerate(g, k, sopts...)
}

// perComponent strips precomputed separators, which name vertices of the
// whole graph and mean nothing inside an induced component.
func perComponent(o Options) Options {
	o.MinSeps = nil

	return o
}

func decide(g *graph.Graph, k int, o Options) (*td.Decomposition, error) {
	n := g.N()
	if k >= n-1 {
		return td.Single(n), nil
	}

	all := g.All()
	if !g.IsConnected(all) {
		d := td.New(n)
		for _, comp := range g.ComponentsOf(all) {
			h, inv := g.Induce(comp)
			sub, err := decide(h, k, perComponent(o))
			if err != nil || sub == nil {
				return nil, err
			}
			if base := d.Append(sub, inv); base > 0 {
				d.AddEdge(0, base)
			}
		}
		if o.Logger != nil {
			o.Logger.Debug("components spliced", "k", k, "bags", d.Len(), "width", d.Width)
		}

		return d, nil
	}

	seps, err := separators(g, k, o)
	if err != nil {
		return nil, err
	}
	s := newState(g, k, o)
	s.dp(seps, true)
	root, ok := s.findRoot()
	if !ok {
		return nil, nil
	}

	d := td.New(n)
	if _, err := s.fill(d, root, all); err != nil {
		return nil, err
	}

	return d, nil
}

func check(g *graph.Graph, k int, o Options) (bool, error) {
	n := g.N()
	if k >= n-1 {
		return true, nil
	}

	all := g.All()
	if !g.IsConnected(all) {
		for _, comp := range g.ComponentsOf(all) {
			h, _ := g.Induce(comp)
			ok, err := check(h, k, perComponent(o))
			if err != nil || !ok {
				return false, err
			}
		}

		return true, nil
	}

	seps, err := separators(g, k, o)
	if err != nil {
		return false, err
	}
	s := newState(g, k, o)
	s.dp(seps, true)
	_, ok := s.findRoot()

	return ok, nil
}
