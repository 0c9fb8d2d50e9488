package skrmodel

import (
	"github.com/kimmseo/cvqkd-routing/geometry"
	"github.com/kimmseo/cvqkd-routing/node"
)

// GroundSite is an alias for node.GroundSite: the geodetic location of a
// ground-station node, as seen by the SKR model and the topocentric
// helper. Kept as a named type here so skrmodel's public API reads
// independently of the node package's internal layout.
type GroundSite = node.GroundSite

// Propagator turns a Node's opaque descriptor into a state vector at a
// given UTC time. It is provided by the host application; this module
// never implements orbital mechanics itself.
//
// Propagate must be a pure, re-entrant function of its inputs: the same
// (descriptor, utcJulianDay) pair always yields the same state, and
// concurrent calls across goroutines (see package trajectory) are safe.
type Propagator interface {
	Propagate(descriptor any, utcJulianDay float64) (position, velocity geometry.Vector, err error)
}

// Topocentric computes the elevation angle and slant range from a ground
// site to a satellite position, at a given UTC time. It is provided by the
// host application alongside Propagator.
type Topocentric interface {
	ElevationAndRange(site GroundSite, satPosition geometry.Vector, utcJulianDay float64) (elevationDeg, slantRangeKM float64)
}

// Model exposes the four pure secret-key-rate formulas Adapter dispatches
// between, keyed by the kind pair of the two endpoints.
// Every method returns bits/s and must be non-negative.
type Model interface {
	// SatSat is the free-space inter-satellite link rate, given the two
	// satellites' positions. The adapter has already checked line of
	// sight before calling this.
	SatSat(posA, posB geometry.Vector) float64

	// Uplink is the ground-to-satellite link rate.
	Uplink(site GroundSite, elevationDeg, slantRangeKM float64) float64

	// Downlink is the satellite-to-ground link rate; geometrically
	// symmetric to Uplink but may use a different optical model.
	Downlink(site GroundSite, elevationDeg, slantRangeKM float64) float64

	// Fiber is the ground-to-ground link rate, given the two sites.
	Fiber(siteA, siteB GroundSite) float64
}
