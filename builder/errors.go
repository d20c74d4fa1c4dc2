// SPDX-License-Identifier: MIT
// Package: twexact/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w ("Cycle: n=2 < min=3: ...").

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, k) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG;
// supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failure assembling the
// final graph.
var ErrConstructFailed = errors.New("builder: construction failed")
