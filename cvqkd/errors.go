package cvqkd

import "errors"

// Sentinel errors for the boundary validation PlanMaxCapacity performs
// before constructing a trajectory cache or running the solver. These are
// the "fatal at boundary" failure modes this module reports alongside
// node.ErrInvalidWindow, node.ErrEmptyNodeSet, and node.ErrDuplicateNodeID.
var (
	// ErrUnknownNode indicates the source or destination id is not present
	// in the supplied node set.
	ErrUnknownNode = errors.New("cvqkd: source or destination node id not found")

	// ErrSameEndpoint indicates the source and destination ids are equal.
	ErrSameEndpoint = errors.New("cvqkd: source and destination must differ")
)
