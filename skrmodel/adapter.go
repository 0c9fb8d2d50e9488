package skrmodel

import (
	"github.com/kimmseo/cvqkd-routing/geometry"
	"github.com/kimmseo/cvqkd-routing/node"
)

// Adapter wraps a Model and Topocentric helper and dispatches Rate calls to
// the correct formula by kind pair. It holds no mutable
// state; constructing one is just pairing the two collaborators.
type Adapter struct {
	Model Model
	Topo  Topocentric
}

// NewAdapter constructs an Adapter from its two collaborators.
func NewAdapter(model Model, topo Topocentric) Adapter {
	return Adapter{Model: model, Topo: topo}
}

// Rate returns the instantaneous secret-key rate, in bits/s, between a
// source and destination endpoint at one sampled instant. srcState and
// dstState carry position (and, for satellites, velocity); srcSite and
// dstSite are non-nil exactly when the corresponding Kind is
// node.GroundStation. utcJulianDay is the sample's UTC time, used only for
// the ground-to-satellite elevation/range lookup.
//
// Dispatch:
//
//	Satellite  -> Satellite      free-space inter-satellite, requires LOS
//	GroundStation -> Satellite   uplink, requires elevation above horizon
//	Satellite  -> GroundStation  downlink, symmetric geometry to uplink
//	GroundStation -> GroundStation  fiber, great-circle distance
//
// Rate never performs I/O and is a pure function of its arguments; it
// returns 0 (never negative) whenever the link has no feasible geometry.
func (a Adapter) Rate(
	srcKind, dstKind node.Kind,
	srcState, dstState node.SampledState,
	srcSite, dstSite *GroundSite,
	utcJulianDay float64,
) float64 {
	switch {
	case srcKind == node.Satellite && dstKind == node.Satellite:
		return a.satSat(srcState.Position, dstState.Position)

	case srcKind == node.GroundStation && dstKind == node.Satellite:
		return a.uplink(*srcSite, dstState.Position, utcJulianDay)

	case srcKind == node.Satellite && dstKind == node.GroundStation:
		return a.downlink(*dstSite, srcState.Position, utcJulianDay)

	default: // GroundStation -> GroundStation
		return a.Model.Fiber(*srcSite, *dstSite)
	}
}

// satSat returns the free-space inter-satellite rate, or 0 if Earth
// occludes the line of sight between the two positions.
func (a Adapter) satSat(posA, posB geometry.Vector) float64 {
	if !geometry.LOSClear(posA, posB) {
		return 0
	}

	return nonNegative(a.Model.SatSat(posA, posB))
}

// uplink returns the ground-to-satellite rate, or 0 if the satellite is
// below the site's horizon.
func (a Adapter) uplink(site GroundSite, satPos geometry.Vector, utc float64) float64 {
	elevationDeg, slantRangeKM := a.Topo.ElevationAndRange(site, satPos, utc)
	if elevationDeg < 0 {
		return 0
	}

	return nonNegative(a.Model.Uplink(site, elevationDeg, slantRangeKM))
}

// downlink returns the satellite-to-ground rate, or 0 if the satellite is
// below the site's horizon. Geometry is symmetric to uplink: the same
// elevation/range pair is looked up from the ground site's perspective.
func (a Adapter) downlink(site GroundSite, satPos geometry.Vector, utc float64) float64 {
	elevationDeg, slantRangeKM := a.Topo.ElevationAndRange(site, satPos, utc)
	if elevationDeg < 0 {
		return 0
	}

	return nonNegative(a.Model.Downlink(site, elevationDeg, slantRangeKM))
}

// nonNegative clamps a Model result to 0 so the adapter's output is never
// negative regardless of what a caller's Model implementation returns.
func nonNegative(rate float64) float64 {
	if rate < 0 {
		return 0
	}

	return rate
}
