// Package cvqkdrouting is a time-dependent max-capacity routing engine for
// a satellite-and-ground-station CV-QKD constellation.
//
// What it does:
//
//	Given a constellation of satellites and ground stations, a planning
//	window, and a model of the instantaneous secret-key rate each pair of
//	endpoints can sustain, it finds the largest volume of key material a
//	path from one endpoint to another can deliver inside the window, and
//	the time-stamped path that delivers it.
//
// Under the hood, the work is organized into one package per stage of the
// pipeline:
//
//	geometry/   — vector math and Earth-occlusion line-of-sight tests
//	skrmodel/   — the pluggable secret-key-rate model and its dispatch
//	trajectory/ — concurrent per-node position/velocity sampling over a window
//	oracle/     — Simpson's-rule transfer-time integration against a sampled rate
//	pqueue/     — a lazy-deletion min-heap frontier
//	tdsp/       — the time-dependent shortest-path solver built on it
//	capacity/   — the binary-search maximum-volume optimizer
//	cvqkd/      — the public façade wiring all of the above together
//	cmd/maxcap/ — a runnable CLI over a synthetic constellation
//
// The one entry point most callers need is cvqkd.PlanMaxCapacity.
package cvqkdrouting
