package minseps

import (
	"errors"

	"github.com/charmbracelet/log"
)

// Sentinel errors for Enumerate.
var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("minseps: graph is nil")

	// ErrNegativeWidth is returned when the size bound k is negative.
	ErrNegativeWidth = errors.New("minseps: negative size bound")
)

// Options tunes the enumerator.
type Options struct {
	// SterilityPruning enables the disjoint-path bound in addition to the
	// balance bound. Off by default.
	SterilityPruning bool

	// Logger receives Debug-level progress, one line per pivot. Nil is silent.
	Logger *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns balance pruning only, no logging.
func DefaultOptions() Options {
	return Options{}
}

// WithSterilityPruning toggles the disjoint-path sterility bound.
func WithSterilityPruning(on bool) Option {
	return func(o *Options) { o.SterilityPruning = on }
}

// WithLogger routes progress to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
