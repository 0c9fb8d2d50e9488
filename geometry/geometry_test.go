package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimmseo/cvqkd-routing/geometry"
)

func TestVector_DotCrossMagnitude(t *testing.T) {
	a := geometry.Vector{X: 1, Y: 0, Z: 0}
	b := geometry.Vector{X: 0, Y: 1, Z: 0}

	assert.Equal(t, 0.0, a.Dot(b))
	assert.Equal(t, geometry.Vector{X: 0, Y: 0, Z: 1}, a.Cross(b))
	assert.Equal(t, 1.0, a.Magnitude())
	assert.Equal(t, 5.0, geometry.Vector{X: 3, Y: 4, Z: 0}.Magnitude())
}

func TestDistance(t *testing.T) {
	a := geometry.Vector{X: 0, Y: 0, Z: 0}
	b := geometry.Vector{X: 3, Y: 4, Z: 0}

	require.Equal(t, 5.0, geometry.Distance(a, b))
}

// TestLOSClear_Symmetric checks that line-of-sight clearance is symmetric:
// los_clear(a, b) == los_clear(b, a).
func TestLOSClear_Symmetric(t *testing.T) {
	cases := []struct {
		name string
		a, b geometry.Vector
	}{
		{
			name: "far side, clear",
			a:    geometry.Vector{X: 10000, Y: 0, Z: 0},
			b:    geometry.Vector{X: 0, Y: 10000, Z: 0},
		},
		{
			name: "opposite sides, blocked by Earth",
			a:    geometry.Vector{X: 10000, Y: 0, Z: 0},
			b:    geometry.Vector{X: -10000, Y: 0, Z: 0},
		},
		{
			name: "grazing within atmosphere margin, blocked",
			a:    geometry.Vector{X: geometry.EarthRadiusKM + 1, Y: -10000, Z: 0},
			b:    geometry.Vector{X: geometry.EarthRadiusKM + 1, Y: 10000, Z: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			forward := geometry.LOSClear(tc.a, tc.b)
			backward := geometry.LOSClear(tc.b, tc.a)
			assert.Equal(t, forward, backward, "LOSClear must be symmetric")
		})
	}
}

func TestLOSClear_DirectOverhead(t *testing.T) {
	// Two points stacked directly above the same point on Earth: the
	// segment between them never dips toward the occlusion sphere.
	a := geometry.Vector{X: 0, Y: 0, Z: geometry.EarthRadiusKM + 500}
	b := geometry.Vector{X: 0, Y: 0, Z: geometry.EarthRadiusKM + 1000}

	assert.True(t, geometry.LOSClear(a, b))
}

func TestLOSClear_BlockedThroughCenter(t *testing.T) {
	a := geometry.Vector{X: geometry.EarthRadiusKM + 500, Y: 0, Z: 0}
	b := geometry.Vector{X: -(geometry.EarthRadiusKM + 500), Y: 0, Z: 0}

	assert.False(t, geometry.LOSClear(a, b))
}
