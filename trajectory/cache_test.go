package trajectory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimmseo/cvqkd-routing/geometry"
	"github.com/kimmseo/cvqkd-routing/node"
	"github.com/kimmseo/cvqkd-routing/trajectory"
)

// linearPropagator moves a satellite at a constant velocity of 1 km/day
// along X, starting from an offset keyed by descriptor; a descriptor that
// is not a float64 stays fixed at the origin.
type linearPropagator struct{}

func (linearPropagator) Propagate(descriptor any, utcJulianDay float64) (geometry.Vector, geometry.Vector, error) {
	offset, ok := descriptor.(float64)
	if !ok {
		return geometry.Vector{X: 0, Y: 0, Z: 0}, geometry.Vector{}, nil
	}

	return geometry.Vector{X: offset + utcJulianDay, Y: 0, Z: 0}, geometry.Vector{X: 1, Y: 0, Z: 0}, nil
}

type failingPropagator struct{}

func (failingPropagator) Propagate(_ any, _ float64) (geometry.Vector, geometry.Vector, error) {
	return geometry.Vector{}, geometry.Vector{}, errors.New("boom")
}

func TestBuild_SampleCountAndTimes(t *testing.T) {
	window, err := node.NewTimeWindow(0, 1, 0.25)
	require.NoError(t, err)

	nodes := []node.Node{
		{ID: 1, Kind: node.Satellite, Descriptor: 10.0},
		{ID: -1, Kind: node.GroundStation, Descriptor: 0.0},
	}

	cache, err := trajectory.Build(context.Background(), nodes, window, linearPropagator{})
	require.NoError(t, err)
	require.Equal(t, 2, cache.Len())

	sat, ok := cache.Get(1)
	require.True(t, ok)
	require.Equal(t, window.SampleCount(), sat.Len())

	for i := 0; i < sat.Len(); i++ {
		s := sat.At(i)
		wantTime := window.TimeAt(i)
		assert.InDelta(t, wantTime, s.UTC, 1e-12, "trajectory[i].time == t_start + i*dt")
		assert.InDelta(t, 10.0+wantTime, s.Position.X, 1e-9)
	}

	ground, ok := cache.Get(-1)
	require.True(t, ok)
	for i := 0; i < ground.Len(); i++ {
		assert.Equal(t, 0.0, ground.At(i).Position.X, "ground station position is constant across samples")
	}
}

func TestBuild_UnknownNodeNotInCache(t *testing.T) {
	window, err := node.NewTimeWindow(0, 1, 0.5)
	require.NoError(t, err)

	cache, err := trajectory.Build(context.Background(), []node.Node{{ID: 1, Kind: node.Satellite, Descriptor: 0.0}}, window, linearPropagator{})
	require.NoError(t, err)

	_, ok := cache.Get(999)
	assert.False(t, ok)
}

func TestBuild_PropagatorErrorPropagates(t *testing.T) {
	window, err := node.NewTimeWindow(0, 1, 0.5)
	require.NoError(t, err)

	_, err = trajectory.Build(context.Background(), []node.Node{{ID: 1, Kind: node.Satellite}}, window, failingPropagator{})
	assert.Error(t, err)
}

func TestBuild_RejectsInvalidWindow(t *testing.T) {
	bad := node.TimeWindow{Start: 1, End: 0, Step: 1}
	_, err := trajectory.Build(context.Background(), []node.Node{{ID: 1}}, bad, linearPropagator{})
	assert.ErrorIs(t, err, node.ErrInvalidWindow)
}

func TestBuild_RejectsEmptyNodeSet(t *testing.T) {
	window, err := node.NewTimeWindow(0, 1, 0.5)
	require.NoError(t, err)

	_, err = trajectory.Build(context.Background(), nil, window, linearPropagator{})
	assert.ErrorIs(t, err, node.ErrEmptyNodeSet)
}
