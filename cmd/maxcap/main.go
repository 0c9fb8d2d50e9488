// Command maxcap runs the time-dependent max-capacity planner over a small
// synthetic constellation and logs its binary-search trace, mirroring the
// trace original_source/src/max-capacity-path/link-capacity-path.c's
// get_max_link_path prints for each trial data volume.
//
// Scenario:
//
//	Three satellites orbit in the same plane at a fixed radius, at phases
//	0, 90 and 180 degrees, so pairs of them drift in and out of line of
//	sight across the window. One ground station sits below the ascending node. The command
//	searches [src] -> [dst] over a one-day window and reports the largest
//	data volume (bits) that a time-dependent path can deliver.
//
//	   sat(src) ---- sat(relay) ---- sat(dst)
//	        \                        /
//	         \______ ground ________/
//
// No real ephemeris or SKR provider is wired in: positions come from a
// circular-orbit stand-in and rates from skrmodel.ReferenceModel, so the
// engine is runnable end to end without a host application.
//
// Logging follows the pack's own flag-driven CLI precedent
// (bramburn-gnssgo's cmd/ntrip-server): a logrus.Logger constructed from a
// -log-level flag, rather than the teacher's bare fmt.Println (lvlath is a
// library with no CLI of its own to set a precedent either way).
package main

import (
	"context"
	"flag"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/kimmseo/cvqkd-routing/capacity"
	"github.com/kimmseo/cvqkd-routing/cvqkd"
	"github.com/kimmseo/cvqkd-routing/geometry"
	"github.com/kimmseo/cvqkd-routing/node"
	"github.com/kimmseo/cvqkd-routing/skrmodel"
)

func main() {
	src := flag.Int("src", 1, "source node id")
	dst := flag.Int("dst", -1, "destination node id")
	windowDays := flag.Float64("window-days", 1.0, "planning window length, in days")
	stepMinutes := flag.Float64("step-minutes", 5.0, "sample step, in minutes")
	epsilon := flag.Float64("epsilon", 1e3, "binary-search resolution, in bits")
	upperBound := flag.Float64("upper-bound", 1e9, "initial binary-search upper bound, in bits")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatalf("maxcap: invalid log level: %v", err)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	stepDays := *stepMinutes / 1440.0
	window, err := node.NewTimeWindow(0, *windowDays, stepDays)
	if err != nil {
		logger.Fatalf("maxcap: %v", err)
	}

	nodes := constellation()

	model := skrmodel.NewReferenceModel()
	topo := skrmodel.ReferenceTopocentric{}

	logger.WithFields(logrus.Fields{
		"src": *src, "dst": *dst, "window_days": *windowDays, "step_minutes": *stepMinutes,
	}).Info("planning max-capacity route")

	result, err := cvqkd.PlanMaxCapacity(
		context.Background(), nodes, *src, *dst, window,
		circularOrbitPropagator{}, model, topo,
		capacity.WithEpsilon(*epsilon),
		capacity.WithUpperBound(*upperBound),
		capacity.WithOnProbe(func(dataBits float64, feasible bool) {
			logger.WithFields(logrus.Fields{"trial_bits": dataBits, "feasible": feasible}).Debug("binary search trial")
		}),
	)
	if err != nil {
		logger.Fatalf("maxcap: %v", err)
	}

	if !result.Feasible {
		logger.Warn("infeasible: no path delivers any positive volume within the window")
		return
	}

	logger.WithField("max_volume_bits", result.MaxVolumeBits).Info("found maximum deliverable volume")
	for _, hop := range result.Path {
		elapsedMinutes := (hop.Arrival - window.Start) * 1440.0
		logger.WithFields(logrus.Fields{
			"node_id": hop.NodeID, "kind": hop.Kind.String(), "elapsed_min": elapsedMinutes,
		}).Info("path hop")
	}
}

// constellation builds a fixed three-satellite, one-ground-station universe:
// satellite ids 1-3 co-orbiting at phases 0, 180 and 90 degrees, and ground
// station id -1 below the ascending node.
func constellation() []node.Node {
	return []node.Node{
		{ID: 1, Kind: node.Satellite, Descriptor: satDescriptor{radiusKM: geometry.EarthRadiusKM + 780, angularRateRadPerDay: 2 * math.Pi * 14, phase0: 0}},
		{ID: 2, Kind: node.Satellite, Descriptor: satDescriptor{radiusKM: geometry.EarthRadiusKM + 780, angularRateRadPerDay: 2 * math.Pi * 14, phase0: math.Pi}},
		{ID: 3, Kind: node.Satellite, Descriptor: satDescriptor{radiusKM: geometry.EarthRadiusKM + 780, angularRateRadPerDay: 2 * math.Pi * 14, phase0: math.Pi / 2}},
		{ID: -1, Kind: node.GroundStation, Site: &node.GroundSite{LatDeg: 0, LonDeg: 0, AltKM: 0}, Descriptor: groundDescriptor{site: node.GroundSite{LatDeg: 0, LonDeg: 0, AltKM: 0}}},
	}
}

// satDescriptor places a satellite on a circular orbit in the equatorial
// plane: a stand-in for a real ephemeris, sufficient to exercise line of
// sight and range over a planning window.
type satDescriptor struct {
	radiusKM             float64
	angularRateRadPerDay float64
	phase0               float64
}

// groundDescriptor carries a fixed geodetic site.
type groundDescriptor struct {
	site node.GroundSite
}

// circularOrbitPropagator implements skrmodel.Propagator over the two
// descriptor kinds constellation builds, duplicating the same
// sphere-of-radius ECEF placement skrmodel.ReferenceTopocentric uses
// internally for ground sites since that helper is unexported.
type circularOrbitPropagator struct{}

func (circularOrbitPropagator) Propagate(descriptor any, utcJulianDay float64) (geometry.Vector, geometry.Vector, error) {
	switch d := descriptor.(type) {
	case satDescriptor:
		angle := d.phase0 + d.angularRateRadPerDay*utcJulianDay
		pos := geometry.Vector{X: d.radiusKM * math.Cos(angle), Y: d.radiusKM * math.Sin(angle), Z: 0}
		vel := geometry.Vector{
			X: -d.radiusKM * d.angularRateRadPerDay * math.Sin(angle),
			Y: d.radiusKM * d.angularRateRadPerDay * math.Cos(angle),
		}

		return pos, vel, nil

	case groundDescriptor:
		return siteECEF(d.site), geometry.Vector{}, nil

	default:
		return geometry.Vector{}, geometry.Vector{}, fmt.Errorf("maxcap: unknown descriptor type %T", descriptor)
	}
}

func siteECEF(site node.GroundSite) geometry.Vector {
	latRad := site.LatDeg * math.Pi / 180.0
	lonRad := site.LonDeg * math.Pi / 180.0
	r := geometry.EarthRadiusKM + site.AltKM

	return geometry.Vector{
		X: r * math.Cos(latRad) * math.Cos(lonRad),
		Y: r * math.Cos(latRad) * math.Sin(lonRad),
		Z: r * math.Sin(latRad),
	}
}
