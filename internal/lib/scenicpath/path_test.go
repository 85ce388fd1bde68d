package scenicpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrcbeta/scenicloop/internal/lib/geo"
)

// A straight west-to-east test path. Progress along it is easy to reason
// about because no segment loops back near another.
func straightPath(t *testing.T) *Path {
	t.Helper()
	p, err := New([]Waypoint{
		{geo.Point{Latitude: 0, Longitude: 0}, "start"},
		{geo.Point{Latitude: 0, Longitude: 1}, "first third"},
		{geo.Point{Latitude: 0, Longitude: 2}, "second third"},
		{geo.Point{Latitude: 0, Longitude: 3}, "end"},
	})
	require.NoError(t, err)
	return p
}

func TestNew_RequiresTwoWaypoints(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New([]Waypoint{{geo.Point{Latitude: 1, Longitude: 1}, "only"}})
	assert.Error(t, err)

	p, err := New([]Waypoint{
		{geo.Point{Latitude: 0, Longitude: 0}, "a"},
		{geo.Point{Latitude: 0, Longitude: 1}, "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Segments())
}

func TestProject_ExactWaypoints(t *testing.T) {
	path := straightPath(t)
	segments := float64(path.Segments())

	for i, wp := range path.Waypoints() {
		proj := path.Project(wp.Point)
		assert.InDelta(t, float64(i)/segments, proj.Position, 1e-9, "waypoint %d", i)
		assert.InDelta(t, 0, proj.DistanceMiles, 1e-6, "waypoint %d", i)
	}
}

func TestProject_SegmentMidpoint(t *testing.T) {
	path := straightPath(t)

	// Midpoint of segment 1 runs from lon 1 to lon 2.
	proj := path.Project(geo.Point{Latitude: 0, Longitude: 1.5})
	assert.InDelta(t, (1+0.5)/3.0, proj.Position, 1e-9)
	assert.InDelta(t, 0, proj.DistanceMiles, 1e-6)
}

func TestProject_MonotonicAlongSegment(t *testing.T) {
	path := straightPath(t)

	points := []geo.Point{
		{Latitude: 0.01, Longitude: 0.2},
		{Latitude: 0.01, Longitude: 0.5},
		{Latitude: 0.01, Longitude: 0.8},
	}

	prev := -1.0
	for _, pt := range points {
		proj := path.Project(pt)
		assert.GreaterOrEqual(t, proj.Position, prev)
		prev = proj.Position
	}
}

func TestProject_ZeroLengthSegment(t *testing.T) {
	// Two consecutive identical waypoints must not cause a division by
	// zero during projection.
	p, err := New([]Waypoint{
		{geo.Point{Latitude: 0, Longitude: 0}, "a"},
		{geo.Point{Latitude: 0, Longitude: 1}, "b"},
		{geo.Point{Latitude: 0, Longitude: 1}, "b again"},
		{geo.Point{Latitude: 0, Longitude: 2}, "c"},
	})
	require.NoError(t, err)

	proj := p.Project(geo.Point{Latitude: 0.1, Longitude: 1})
	assert.GreaterOrEqual(t, proj.Position, 0.0)
	assert.LessOrEqual(t, proj.Position, 1.0)
	assert.Greater(t, proj.DistanceMiles, 0.0)
}

func TestProject_SingleSegmentPath(t *testing.T) {
	p, err := New([]Waypoint{
		{geo.Point{Latitude: 0, Longitude: 0}, "a"},
		{geo.Point{Latitude: 0, Longitude: 1}, "b"},
	})
	require.NoError(t, err)

	proj := p.Project(geo.Point{Latitude: 0, Longitude: 0.75})
	assert.InDelta(t, 0.75, proj.Position, 1e-9)
}

func TestProject_AlwaysInUnitRange(t *testing.T) {
	path := straightPath(t)

	// Far off either end of the path.
	for _, pt := range []geo.Point{
		{Latitude: 20, Longitude: -40},
		{Latitude: -30, Longitude: 50},
	} {
		proj := path.Project(pt)
		assert.GreaterOrEqual(t, proj.Position, 0.0)
		assert.LessOrEqual(t, proj.Position, 1.0)
		assert.Greater(t, proj.DistanceMiles, 0.0)
	}
}

func TestProject_EquidistantPrefersEarlierSegment(t *testing.T) {
	// A horseshoe path whose last segment doubles back parallel to the
	// first. The query point sits exactly between the start of segment 0
	// and the end of segment 2, so both segments report the same
	// distance; iteration order makes the earlier one win and the
	// position lands at 0 rather than 1.
	p, err := New([]Waypoint{
		{geo.Point{Latitude: 0, Longitude: 0}, "out"},
		{geo.Point{Latitude: 0, Longitude: 1}, "turn one"},
		{geo.Point{Latitude: 1, Longitude: 1}, "turn two"},
		{geo.Point{Latitude: 1, Longitude: 0}, "back"},
	})
	require.NoError(t, err)

	proj := p.Project(geo.Point{Latitude: 0.5, Longitude: 0})
	assert.InDelta(t, 0, proj.Position, 1e-9)
}

func TestRedRocksScenicLoop(t *testing.T) {
	wps := RedRocksScenicLoop()
	require.Len(t, wps, 12)

	path, err := New(wps)
	require.NoError(t, err)
	assert.Equal(t, 11, path.Segments())
	assert.Greater(t, path.LengthMiles(), 0.0)

	// The drive returns to its start.
	assert.Equal(t, wps[0].Point, wps[len(wps)-1].Point)
}
