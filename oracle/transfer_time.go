package oracle

import (
	"math"

	"github.com/kimmseo/cvqkd-routing/node"
)

// rateDeltaTolerance is the threshold below which the post-end interval's
// rate is treated as constant, avoiding division by a near-zero slope in
// the closed-form quadratic solve.
const rateDeltaTolerance = 1e-15

// RateFunc returns the instantaneous link rate, in bits per second, between
// a fixed (src, dst) pair at trajectory sample index i. Callers bind i to
// the pair's precomputed rate (typically via skrmodel.Adapter.Rate over a
// trajectory.Cache) before handing the closure to TransferTime, which never
// imports skrmodel or trajectory itself.
type RateFunc func(i int) float64

// TransferTime returns the earliest UTC instant at which dataBits bits have
// moved across the link, given departure time t and the per-sample rate
// function rate over window. It returns +Inf if the transfer cannot
// complete within the window, if t falls outside [window.Start,
// window.End), or if fewer than two samples remain ahead of t.
//
// The integration proceeds in three phases:
//
//   - pre-start: a trapezoid from t to the first grid sample at or after it,
//     linearly interpolating the rate at t from the two bracketing samples;
//   - mid-window: composite Simpson's rule accumulated one grid cell at a
//     time, with parity-aware coefficients so each interior sample's weight
//     resolves correctly regardless of where the window happens to end;
//   - post-end: once the running total first reaches or exceeds dataBits
//     within a cell, a closed-form quadratic solves for the exact instant
//     inside that cell, treating the rate as linear between its two
//     endpoints.
func TransferTime(window node.TimeWindow, rate RateFunc, dataBits, t float64) float64 {
	n := window.SampleCount()
	if t < window.Start || t >= window.End {
		return math.Inf(1)
	}

	startI := window.IndexAtOrAfter(t)
	if startI < 0 || startI >= n-1 {
		return math.Inf(1)
	}

	accum := accumPreStart(t, startI, window, rate)
	if accum >= dataBits {
		return window.TimeAt(startI)
	}

	prevRate := 0.0
	i := startI
	r := rate(i)

	nextI := startI + 1
	nextRate := rate(nextI)

	dt := window.Step
	checkTerm := accum + (dt/3)*r + (dt/3)*nextRate

	for checkTerm < dataBits {
		if nextI >= n-1 {
			return math.Inf(1)
		}

		switch {
		case i == startI+1:
			accum += (dt / 3.0) * prevRate
		case (i-startI)%2 == 0:
			accum += (dt * 4.0 / 3.0) * prevRate
		default:
			accum += (dt * 2.0 / 3.0) * prevRate
		}

		prevRate = r
		i = nextI
		r = nextRate

		nextI++
		nextRate = rate(nextI)

		switch {
		case i-startI == 1:
			checkTerm = accum + (dt/3.0)*prevRate + (dt*4.0/3.0)*r + (dt/3.0)*nextRate
		case (nextI-startI)%2 == 0:
			checkTerm = accum + (dt*2.0/3.0)*prevRate + (dt*4.0/3.0)*r + (dt/3.0)*nextRate
		default:
			checkTerm = accum + (dt*4.0/3.0)*prevRate + (dt/3.0)*r + 0.5*dt*(r+nextRate)
		}
	}

	if i == startI {
		dataLeft := dataBits - accum

		return accumPostEnd(dataLeft, i, window, rate)
	}

	if (i-startI)%2 == 0 {
		accum += (dt * 4.0 / 3.0) * prevRate
		accum += (dt / 3.0) * r
	} else {
		if i-startI > 1 {
			accum += (dt / 3.0) * prevRate
		}
		accum += 0.5 * dt * (r + prevRate)
	}

	dataLeft := dataBits - accum

	return accumPostEnd(dataLeft, i, window, rate)
}

// accumPreStart returns the data transferred between xIMid (the actual
// departure time) and the first sample at or after it, by linearly
// interpolating the rate at xIMid from the bracketing samples startI-1 and
// startI and applying the trapezoid rule. It returns 0 when startI is the
// window's first sample, since there is no preceding sample to interpolate
// from.
func accumPreStart(xIMid float64, startI int, window node.TimeWindow, rate RateFunc) float64 {
	if startI <= 0 {
		return 0
	}

	xI := window.TimeAt(startI)
	yI := rate(startI)
	xIPrev := xI - window.Step
	yIPrev := rate(startI - 1)

	yStart := yIPrev + (xIMid-xIPrev)*((yIPrev-yI)/(xIPrev-xI))

	return 0.5 * (xI - xIMid) * (yStart + yI)
}

// accumPostEnd returns the UTC instant within the cell [startI, startI+1]
// at which dataSize additional bits have been transferred, modeling the
// rate as linear between the cell's two endpoints and solving the
// resulting quadratic for elapsed time. It returns +Inf if that instant
// falls beyond window.End.
func accumPostEnd(dataSize float64, startI int, window node.TimeWindow, rate RateFunc) float64 {
	xI := window.TimeAt(startI)
	yI := rate(startI)
	yINext := rate(startI + 1)

	a := (yINext - yI) / window.Step
	b := 2 * yI
	c := -2 * dataSize

	var answer float64
	if math.Abs(a) < rateDeltaTolerance {
		answer = xI + dataSize/yI
	} else {
		xMid := (-b + math.Sqrt(b*b-4*a*c)) / (2 * a)
		answer = xI + xMid
	}

	if answer > window.End {
		return math.Inf(1)
	}

	return answer
}
