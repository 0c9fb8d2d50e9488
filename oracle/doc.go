// Package oracle implements the transfer-time integrator: given a fixed
// data volume D and a start time t, the earliest UTC instant at which D
// bits have moved between two nodes, integrating the instantaneous rate
// sampled at the trajectory cache's grid points.
//
// TransferTime is the numerically hardest piece of the engine: it
// accumulates a trapezoidal partial for the interval before the first
// grid point, a parity-aware composite Simpson's rule across full grid
// cells, and a closed-form quadratic for the partial interval after the
// last committed grid point. It is grounded on
// original_source/src/max-capacity-path/transfer-time.c's
// get_transfer_time/accum_pre_start/accum_post_end, reimplemented as a
// single pure function over a RateFunc instead of C arrays and a
// GHashTable lookup.
package oracle
