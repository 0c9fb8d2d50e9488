package capacity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimmseo/cvqkd-routing/capacity"
	"github.com/kimmseo/cvqkd-routing/node"
	"github.com/kimmseo/cvqkd-routing/oracle"
	"github.com/kimmseo/cvqkd-routing/tdsp"
)

const minuteInDays = 1.0 / 1440.0

// twoNodeConstantRateFactory builds an OracleFactory over a single A->B
// edge with a constant rate, using the real oracle.TransferTime
// integrator so the optimizer is exercised against the same Simpson core
// the rest of the module uses.
func twoNodeConstantRateFactory(window node.TimeWindow, rate float64) capacity.OracleFactory {
	rateFn := oracle.RateFunc(func(int) float64 { return rate })

	return func(dataBits float64) tdsp.Oracle {
		return func(srcID, dstID int, d, t float64) float64 {
			if srcID != 0 || dstID != 1 {
				return math.Inf(1)
			}

			return oracle.TransferTime(window, rateFn, dataBits, t)
		}
	}
}

func TestOptimize_FindsWindowCapacity(t *testing.T) {
	dt := minuteInDays
	w, err := node.NewTimeWindow(0, 8*dt, dt) // 9 samples, 8 segments total
	require.NoError(t, err)

	const rate = 1000.0
	nodes := []node.Node{
		{ID: 0, Kind: node.Satellite},
		{ID: 1, Kind: node.Satellite},
	}

	factory := twoNodeConstantRateFactory(w, rate)
	wantCapacity := 8 * rate * dt

	dMax, path, ok := capacity.Optimize(nodes, 0, 1, w, factory,
		capacity.WithUpperBound(100),
		capacity.WithEpsilon(1e-4),
	)

	require.True(t, ok)
	assert.InDelta(t, wantCapacity, dMax, 1e-3)
	require.Len(t, path, 2)
	assert.Equal(t, 0, path[0].NodeID)
	assert.Equal(t, 1, path[1].NodeID)
}

// TestOptimize_Idempotent checks that running the optimizer
// twice on identical inputs yields identical (D_max, Path).
func TestOptimize_Idempotent(t *testing.T) {
	dt := minuteInDays
	w, err := node.NewTimeWindow(0, 8*dt, dt)
	require.NoError(t, err)

	nodes := []node.Node{
		{ID: 0, Kind: node.Satellite},
		{ID: 1, Kind: node.Satellite},
	}

	factory := twoNodeConstantRateFactory(w, 1000.0)

	d1, p1, ok1 := capacity.Optimize(nodes, 0, 1, w, factory, capacity.WithUpperBound(100), capacity.WithEpsilon(1e-4))
	d2, p2, ok2 := capacity.Optimize(nodes, 0, 1, w, factory, capacity.WithUpperBound(100), capacity.WithEpsilon(1e-4))

	require.Equal(t, ok1, ok2)
	assert.Equal(t, d1, d2)
	assert.Equal(t, p1, p2)
}

func TestOptimize_InfeasibleWhenNoEdgeExists(t *testing.T) {
	dt := minuteInDays
	w, err := node.NewTimeWindow(0, 8*dt, dt)
	require.NoError(t, err)

	nodes := []node.Node{
		{ID: 0, Kind: node.Satellite},
		{ID: 1, Kind: node.Satellite},
	}

	factory := func(float64) tdsp.Oracle {
		return func(int, int, float64, float64) float64 { return math.Inf(1) }
	}

	_, _, ok := capacity.Optimize(nodes, 0, 1, w, factory, capacity.WithUpperBound(100), capacity.WithEpsilon(1e-4))
	assert.False(t, ok)
}

func TestOptimize_AutoDoubleUpperBoundExpandsPastInitialCap(t *testing.T) {
	dt := minuteInDays
	w, err := node.NewTimeWindow(0, 80*dt, dt) // 81 samples, 80 segments
	require.NoError(t, err)

	const rate = 1000.0
	nodes := []node.Node{
		{ID: 0, Kind: node.Satellite},
		{ID: 1, Kind: node.Satellite},
	}

	factory := twoNodeConstantRateFactory(w, rate)
	wantCapacity := 80 * rate * dt

	// UpperBound deliberately undershoots the window's true capacity so
	// the warm-up pass must double past it.
	dMax, _, ok := capacity.Optimize(nodes, 0, 1, w, factory,
		capacity.WithUpperBound(wantCapacity/4),
		capacity.WithEpsilon(1e-3),
	)

	require.True(t, ok)
	assert.InDelta(t, wantCapacity, dMax, 1e-2)
}
