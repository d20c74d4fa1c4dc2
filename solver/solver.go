// Package solver computes the exact treewidth of a graph by asking pmc.Decide
// for k = lower bound, lower bound + 1, ... until a decomposition appears.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/twexact/graph"
	"github.com/katalvlaran/twexact/minseps"
	"github.com/katalvlaran/twexact/pmc"
	"github.com/katalvlaran/twexact/td"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrBoundExceeded is returned when no decomposition of width ≤
	// Options.UpperBound exists.
	ErrBoundExceeded = errors.New("solver: treewidth exceeds upper bound")
)

// Options configures Solve.
type Options struct {
	// LowerBound raises the first k tried above the minimum degree.
	LowerBound int

	// UpperBound stops the search after this k; negative means n−1.
	UpperBound int

	// PMCOnly is forwarded to pmc.WithPMCOnly.
	PMCOnly bool

	// SterilityPruning is forwarded to the separator enumerator.
	SterilityPruning bool

	// Logger receives one Debug line per k. Nil is silent.
	Logger *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions searches from the minimum degree to n−1.
func DefaultOptions() Options {
	return Options{UpperBound: -1}
}

// WithLowerBound sets a known lower bound.
func WithLowerBound(lb int) Option { return func(o *Options) { o.LowerBound = lb } }

// WithUpperBound caps the search.
func WithUpperBound(ub int) Option { return func(o *Options) { o.UpperBound = ub } }

// WithPMCOnly restricts leaf bags to potential maximal cliques.
func WithPMCOnly(on bool) Option { return func(o *Options) { o.PMCOnly = on } }

// WithSterilityPruning enables the enumerator's sterility bound.
func WithSterilityPruning(on bool) Option { return func(o *Options) { o.SterilityPruning = on } }

// WithLogger routes progress to l.
func WithLogger(l *log.Logger) Option { return func(o *Options) { o.Logger = l } }

// Result is an optimal decomposition and how it was found.
type Result struct {
	Treewidth     int
	Decomposition *td.Decomposition
	Tried         int // number of k values tried
	Elapsed       time.Duration
}

// Solve returns a minimum-width tree decomposition of g. ctx is checked
// before each value of k; a single Decide call is not interrupted.
func Solve(ctx context.Context, g *graph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.N()
	lb := max(g.MinDegree(), o.LowerBound, 0)
	ub := max(n-1, 0)
	if o.UpperBound >= 0 && o.UpperBound < ub {
		ub = o.UpperBound
	}
	popts := []pmc.Option{
		pmc.WithPMCOnly(o.PMCOnly),
		pmc.WithLogger(o.Logger),
		pmc.WithSeparatorOptions(minseps.WithSterilityPruning(o.SterilityPruning)),
	}

	start := time.Now()
	res := &Result{}
	for k := lb; k <= ub; k++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("solver: stopped before k=%d: %w", k, err)
		}
		res.Tried++
		t := time.Now()
		d, err := pmc.Decide(g, k, popts...)
		if err != nil {
			return nil, fmt.Errorf("solver: k=%d: %w", k, err)
		}
		if o.Logger != nil {
			o.Logger.Debug("width tried", "k", k, "feasible", d != nil, "took", time.Since(t))
		}
		if d != nil {
			res.Treewidth = d.Width
			res.Decomposition = d
			res.Elapsed = time.Since(start)
			return res, nil
		}
	}

	return nil, fmt.Errorf("no decomposition of width ≤ %d: %w", ub, ErrBoundExceeded)
}
