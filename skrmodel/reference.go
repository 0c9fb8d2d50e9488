package skrmodel

import (
	"math"

	"github.com/kimmseo/cvqkd-routing/geometry"
)

// AtmosphereThicknessKM is the effective vertical atmospheric thickness
// used by the secant-law path-length approximation below, matching the
// constant named in original_source/src/skr-utils.c.
const AtmosphereThicknessKM = 20.0

// ReferenceModel is a simplified, closed-form stand-in for the CV-QKD
// secret-key-rate physics: a pure-geometry attenuation model
// that is monotone decreasing in distance and in atmospheric path length,
// used by this module's own tests and by cmd/maxcap's default run. It is
// deliberately not a port of the finite-size Gaussian-modulated CV-QKD key
// rate formulas (original_source/src/skr-utils.c's key_rate_finite and its
// transmittance_* helpers) — that physics is out of scope,
// and a production caller is expected to supply its own Model wrapping the
// real channel/scintillation/finite-size computation.
//
// Rate constants are named after the quantities skr-utils.c's header
// comment cites (peak rate, attenuation length) without reproducing its
// coefficients.
type ReferenceModel struct {
	// InterSatPeakBitsPerSec is the rate at zero inter-satellite range.
	InterSatPeakBitsPerSec float64
	// InterSatAttenuationKM is the e-folding distance for inter-satellite
	// free-space attenuation, also used for the slant-range term of
	// ground links.
	InterSatAttenuationKM float64

	// GroundLinkPeakBitsPerSec is the uplink/downlink rate before the
	// slant-range and atmospheric attenuation factors are applied.
	GroundLinkPeakBitsPerSec float64
	// AtmosphereAttenuationKM is the e-folding atmospheric path length.
	AtmosphereAttenuationKM float64

	// FiberPeakBitsPerSec is the rate at zero fiber distance.
	FiberPeakBitsPerSec float64
	// FiberAttenuationKM is the e-folding fiber-loss distance.
	FiberAttenuationKM float64
}

// NewReferenceModel returns a ReferenceModel with representative
// free-space-optical and fiber CV-QKD defaults: tens of Mbit/s peak rates,
// attenuation lengths on the order of a thousand kilometers for free space
// and tens of kilometers for fiber (fiber attenuates far faster than
// vacuum propagation).
func NewReferenceModel() ReferenceModel {
	return ReferenceModel{
		InterSatPeakBitsPerSec:   50e6,
		InterSatAttenuationKM:    4000,
		GroundLinkPeakBitsPerSec: 20e6,
		AtmosphereAttenuationKM:  30,
		FiberPeakBitsPerSec:      10e6,
		FiberAttenuationKM:       40,
	}
}

// SatSat implements Model.
func (m ReferenceModel) SatSat(posA, posB geometry.Vector) float64 {
	dist := geometry.Distance(posA, posB)

	return m.InterSatPeakBitsPerSec * math.Exp(-dist/m.InterSatAttenuationKM)
}

// Uplink implements Model. Rate falls off both with slant range and with
// the secant-law atmospheric path length implied by a low elevation angle.
func (m ReferenceModel) Uplink(_ GroundSite, elevationDeg, slantRangeKM float64) float64 {
	return m.groundLinkRate(elevationDeg, slantRangeKM)
}

// Downlink implements Model; symmetric geometry to Uplink.
func (m ReferenceModel) Downlink(_ GroundSite, elevationDeg, slantRangeKM float64) float64 {
	return m.groundLinkRate(elevationDeg, slantRangeKM)
}

func (m ReferenceModel) groundLinkRate(elevationDeg, slantRangeKM float64) float64 {
	if elevationDeg <= 0 {
		return 0
	}

	elevationRad := elevationDeg * math.Pi / 180.0
	atmospherePathKM := AtmosphereThicknessKM / math.Sin(elevationRad)

	return m.GroundLinkPeakBitsPerSec *
		math.Exp(-slantRangeKM/m.InterSatAttenuationKM) *
		math.Exp(-atmospherePathKM/m.AtmosphereAttenuationKM)
}

// Fiber implements Model: exponential attenuation over great-circle
// distance between the two sites.
func (m ReferenceModel) Fiber(siteA, siteB GroundSite) float64 {
	dist := haversineKM(siteA, siteB)

	return m.FiberPeakBitsPerSec * math.Exp(-dist/m.FiberAttenuationKM)
}

// haversineKM returns the great-circle distance between two ground sites,
// grounded on original_source/src/skr-utils.c's haversine_dist_calc.
func haversineKM(a, b GroundSite) float64 {
	lat1 := a.LatDeg * math.Pi / 180.0
	lat2 := b.LatDeg * math.Pi / 180.0
	dLat := (b.LatDeg - a.LatDeg) * math.Pi / 180.0
	dLon := (b.LonDeg - a.LonDeg) * math.Pi / 180.0

	sinHalfLat := math.Sin(dLat / 2)
	sinHalfLon := math.Sin(dLon / 2)
	h := sinHalfLat*sinHalfLat + math.Cos(lat1)*math.Cos(lat2)*sinHalfLon*sinHalfLon
	c := 2 * math.Asin(math.Sqrt(h))

	return geometry.EarthRadiusKM * c
}

// ReferenceTopocentric is a spherical-Earth elevation/range approximation
// sufficient for tests and the CLI default: it places the ground site at
// its lat/lon/alt on a sphere of radius geometry.EarthRadiusKM and computes
// elevation from the local zenith direction.
//
// A production caller supplies the real topocentric conversion; this
// type exists only so the package is runnable standalone.
type ReferenceTopocentric struct{}

// ElevationAndRange implements Topocentric.
func (ReferenceTopocentric) ElevationAndRange(site GroundSite, satPosition geometry.Vector, _ float64) (elevationDeg, slantRangeKM float64) {
	sitePos := siteECEF(site)
	toSat := satPosition.Sub(sitePos)

	slantRangeKM = toSat.Magnitude()
	if slantRangeKM == 0 {
		return 90, 0
	}

	zenith := normalize(sitePos)
	cosZenithAngle := clamp(toSat.Dot(zenith)/slantRangeKM, -1, 1)
	zenithAngleRad := math.Acos(cosZenithAngle)
	elevationDeg = 90.0 - zenithAngleRad*180.0/math.Pi

	return elevationDeg, slantRangeKM
}

// siteECEF places a GroundSite on a sphere of radius
// geometry.EarthRadiusKM+AltKM, matching the construction in
// original_source/src/calc-dist-two-sat.c's sat_qth_distance.
func siteECEF(site GroundSite) geometry.Vector {
	latRad := site.LatDeg * math.Pi / 180.0
	lonRad := site.LonDeg * math.Pi / 180.0
	r := geometry.EarthRadiusKM + site.AltKM

	return geometry.Vector{
		X: r * math.Cos(latRad) * math.Cos(lonRad),
		Y: r * math.Cos(latRad) * math.Sin(lonRad),
		Z: r * math.Sin(latRad),
	}
}

func normalize(v geometry.Vector) geometry.Vector {
	mag := v.Magnitude()
	if mag == 0 {
		return v
	}

	return geometry.Vector{X: v.X / mag, Y: v.Y / mag, Z: v.Z / mag}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
