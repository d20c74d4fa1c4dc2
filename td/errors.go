package td

import "errors"

// Sentinel errors returned (wrapped) by Validate.
var (
	ErrNilDecomposition    = errors.New("td: decomposition is nil")
	ErrBagOutOfRange       = errors.New("td: bag or edge endpoint out of range")
	ErrVertexUncovered     = errors.New("td: vertex not covered by any bag")
	ErrEdgeUncovered       = errors.New("td: edge not covered by any bag")
	ErrNotConnectedSubtree = errors.New("td: bags of a vertex do not form a subtree")
	ErrNotTree             = errors.New("td: bag graph is not a tree")
)
