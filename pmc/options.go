package pmc

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/twexact/minseps"
	"github.com/katalvlaran/twexact/vset"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("pmc: graph is nil")

	// ErrNegativeWidth is returned when k < 0.
	ErrNegativeWidth = errors.New("pmc: negative width")

	// ErrInconsistent reports an internal contradiction while materializing
	// a decomposition (a component with no memoized cap). It indicates a bug.
	ErrInconsistent = errors.New("pmc: inconsistent block memo")
)

// Options configures Decide, IsFeasible and SafeSeparators.
type Options struct {
	// MinSeps, when non-nil, replaces the enumeration of minimal separators
	// of size ≤ k. It is used only for connected inputs.
	MinSeps []vset.Set

	// PMCOnly accepts a leaf bag only when it is cliquish, so every bag is a
	// potential maximal clique.
	PMCOnly bool

	// SeparatorOptions are passed to minseps.Enumerate.
	SeparatorOptions []minseps.Option

	// Logger receives Debug-level progress. Nil is silent.
	Logger *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the plain configuration: enumerate separators,
// accept any leaf bag, no logging.
func DefaultOptions() Options {
	return Options{}
}

// WithMinSeps supplies precomputed minimal separators.
func WithMinSeps(seps []vset.Set) Option {
	return func(o *Options) { o.MinSeps = seps }
}

// WithPMCOnly restricts leaf bags to potential maximal cliques.
func WithPMCOnly(on bool) Option {
	return func(o *Options) { o.PMCOnly = on }
}

// WithSeparatorOptions forwards options to the separator enumerator.
func WithSeparatorOptions(opts ...minseps.Option) Option {
	return func(o *Options) { o.SeparatorOptions = append(o.SeparatorOptions, opts...) }
}

// WithLogger routes progress to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
