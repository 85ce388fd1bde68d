package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrcbeta/scenicloop/internal/clients/mountainproject"
	"github.com/rrcbeta/scenicloop/internal/lib/geo"
	"github.com/rrcbeta/scenicloop/internal/lib/scenicpath"
	"github.com/rrcbeta/scenicloop/internal/services"
)

func fixturePath(t *testing.T) *scenicpath.Path {
	t.Helper()
	p, err := scenicpath.New([]scenicpath.Waypoint{
		{Point: geo.Point{Latitude: 36.1588, Longitude: -115.4264}, Label: "Visitor Center"},
		{Point: geo.Point{Latitude: 36.1300, Longitude: -115.4600}, Label: "Calico Hills"},
		{Point: geo.Point{Latitude: 36.1100, Longitude: -115.5000}, Label: "Pine Creek"},
	})
	require.NoError(t, err)
	return p
}

func fixtureAggregates() []services.AreaAggregate {
	return []services.AreaAggregate{
		{
			Area: "Calico Basin", Canyon: "First Pullout",
			RouteCount:        2,
			AvgLatitude:       36.1480,
			AvgLongitude:      -115.4280,
			AvgPathPosition:   0.12,
			AvgDistanceToRoad: 0.45,
			Routes: []mountainproject.Route{
				{Name: "Zipper"},
				{Name: "Abbey Road"},
			},
		},
		{
			Area: "Pine Creek", Canyon: "Main",
			RouteCount:        1,
			AvgLatitude:       36.1100,
			AvgLongitude:      -115.5000,
			AvgPathPosition:   0.61,
			AvgDistanceToRoad: 0.10,
			Routes: []mountainproject.Route{
				{Name: "Cat in the Hat"},
			},
		},
	}
}

func TestWriteEnrichedCSV(t *testing.T) {
	routes := []mountainproject.Route{
		{
			Name: "Caustic", Area: "Calico Basin", Canyon: "First Pullout",
			Latitude: 36.1480, Longitude: -115.4280,
			Rating: "5.11b", RouteType: "Sport", Pitches: 1, AvgStars: 2.9,
			PathPosition: 0.2727, DistanceToRoad: 0.31, ScenicLoopOrder: 1,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEnrichedCSV(&buf, routes))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Path_Position")
	assert.Contains(t, lines[0], "Distance_to_Road")
	assert.Contains(t, lines[0], "Scenic_Loop_Order")
	assert.Contains(t, lines[1], "Caustic")
}

func TestWriteAreaSummaryCSV(t *testing.T) {
	summaries := []services.AreaSummary{
		{
			Area: "Calico Basin", Canyon: "First Pullout",
			NumRoutes: 2, TotalScore: 13, FirstScenicOrder: 1,
			Grade59to510: 2, NumSport: 2, ScorePerRoute: 6.5, ScoreRank: 1,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAreaSummaryCSV(&buf, summaries))

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	for _, col := range []string{
		"num_routes", "total_score", "avg_path_position", "first_scenic_order",
		"avg_stars", "num_trad", "num_sport",
		"5.0-5.6", "5.7-5.8", "5.9-5.10", "5.11", "5.12+", "unknown",
		"score_per_route", "score_rank",
	} {
		assert.Contains(t, header, col)
	}
}

func TestWriteDetailedReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDetailedReport(&buf, fixturePath(t), fixtureAggregates()))

	out := buf.String()
	assert.Contains(t, out, "WAYPOINTS USED:")
	assert.Contains(t, out, "Visitor Center")
	assert.Contains(t, out, "Calico Basin (First Pullout)")
	assert.Contains(t, out, "- Abbey Road")

	// Routes within an area are listed alphabetically.
	assert.Less(t, strings.Index(out, "Abbey Road"), strings.Index(out, "Zipper"))
}

func TestWriteEncounterListing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEncounterListing(&buf, fixtureAggregates()))

	out := buf.String()
	assert.Contains(t, out, "  1. Calico Basin (First Pullout)")
	assert.Contains(t, out, "  2. Pine Creek (Main)")
	assert.Contains(t, out, "Example routes: Zipper, Abbey Road")
}

func TestWriteTopScored(t *testing.T) {
	summaries := []services.AreaSummary{
		{Area: "Low", Canyon: "C", TotalScore: 3.5, ScoreRank: 2, FirstScenicOrder: 1, NumRoutes: 1},
		{Area: "High", Canyon: "C", TotalScore: 9.0, ScoreRank: 1, FirstScenicOrder: 2, NumRoutes: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTopScored(&buf, summaries, 1))

	out := buf.String()
	assert.Contains(t, out, "High")
	assert.NotContains(t, out, "Low (")
}

func TestWriteKML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteKML(&buf, fixturePath(t), fixtureAggregates()))

	out := buf.String()
	assert.Contains(t, out, "<kml")
	assert.Contains(t, out, "Scenic Loop Drive")
	assert.Contains(t, out, "Calico Basin (First Pullout)")
	assert.Contains(t, out, "<LineString>")
}

func TestWriteGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGeoJSON(&buf, fixturePath(t), fixtureAggregates()))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)

	// One LineString for the drive plus one Point per area.
	require.Len(t, fc.Features, 3)
	assert.Equal(t, "Scenic Loop Drive", fc.Features[0].Properties["name"])
	assert.Equal(t, "LineString", fc.Features[0].Geometry.GeoJSONType())
	assert.Equal(t, "Point", fc.Features[1].Geometry.GeoJSONType())
}
