// Package cvqkd is the public façade of the time-dependent max-capacity
// routing engine: one entry point, PlanMaxCapacity, that validates its
// inputs, builds a trajectory cache, binds the transfer-time oracle to it,
// and drives the capacity optimizer.
//
// Data flow: PlanMaxCapacity calls trajectory.Build once, wraps
// oracle.TransferTime in a tdsp.Oracle closure bound to that cache and an
// skrmodel.Adapter, and hands both to capacity.Optimize, which drives
// tdsp.Solve with pqueue.Queue as its frontier.
// oracle and tdsp are implementation details wired together only inside
// this package; callers configure the search through capacity.Option
// values passed straight through to capacity.Optimize.
package cvqkd
