package graph

import "errors"

// Sentinel errors for graph construction and validation.
var (
	// ErrNegativeSize indicates a negative vertex count.
	ErrNegativeSize = errors.New("graph: negative vertex count")

	// ErrVertexOutOfRange indicates a vertex id outside 0..n-1.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop u–u.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrAsymmetric indicates an adjacency list where u lists v but v does not list u.
	ErrAsymmetric = errors.New("graph: asymmetric adjacency")
)
