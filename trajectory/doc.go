// Package trajectory builds and owns the per-node sampled-state series used
// by the oracle (package oracle): for every node, one Trajectory of N
// SampledStates evaluated at the window's grid points. Build is the only
// write; once it returns, a Cache is read-only and safe to share across
// goroutines.
package trajectory
