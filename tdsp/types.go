package tdsp

import (
	"github.com/kimmseo/cvqkd-routing/node"
)

// Oracle is the edge-weight contract the solver drives: given a departure
// node id, an arrival node id, a data volume in bits, and a departure UTC
// time, it returns the earliest UTC instant the volume can finish crossing
// that edge, or +Inf if it cannot finish within the planning window. The
// caller (typically package cvqkd) binds this closure to a
// trajectory.Cache and an skrmodel.Adapter per (src, dst) pair before
// handing it to Solve; tdsp itself never imports either package.
type Oracle func(srcID, dstID int, dataBits, departAt float64) float64

// State is one node's mutable scratch during a single Solve invocation:
// its current best-known arrival time, and the node it was most recently
// relaxed from. HasPredecessor is false for the source node and for any
// node that has not been relaxed.
type State struct {
	NodeID         int
	Kind           node.Kind
	Tentative      float64
	Predecessor    int
	HasPredecessor bool
}

// Path is the ordered result of a successful Solve call: one PathHop per
// node visited, starting with the source at the window's start time and
// ending with the destination at its earliest arrival.
type Path []node.PathHop
