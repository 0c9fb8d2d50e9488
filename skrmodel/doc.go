// Package skrmodel declares the two external collaborators this module
// consumes — orbital propagation and the physical secret-key-rate model —
// and the adapter that dispatches between them by node kind.
//
// Both Propagator and Model/Topocentric are interfaces: SGP4/SDP4
// propagation, topocentric conversion, and the CV-QKD finite-size key-rate
// formulas are all out of scope for this module. Adapter.Rate
// is a pure function of its inputs; it performs no I/O and holds no state
// beyond the Model/Topocentric it was constructed with.
package skrmodel
