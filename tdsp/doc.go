// Package tdsp implements the modified time-dependent Dijkstra solver: the
// earliest-arrival path for a fixed data volume D through a constellation
// whose edge weights are themselves functions of departure time.
//
// The solver never computes a rate or touches a trajectory itself; it
// treats the transfer-time oracle (package oracle, bound per-pair by the
// caller into an Oracle closure) as an opaque edge-weight function and
// drives it with pqueue's lazy-deletion min-heap frontier, mapping node
// IDs (which may be negative) to the dense integer indices the frontier
// actually needs.
package tdsp
