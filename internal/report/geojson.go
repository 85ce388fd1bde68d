package report

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/rrcbeta/scenicloop/internal/lib/scenicpath"
	"github.com/rrcbeta/scenicloop/internal/services"
)

// WriteGeoJSON writes a FeatureCollection holding the scenic drive as a
// LineString and each climbing area centroid as a Point.
func WriteGeoJSON(w io.Writer, path *scenicpath.Path, aggregates []services.AreaAggregate) error {
	fc := geojson.NewFeatureCollection()

	line := make(orb.LineString, 0, len(path.Waypoints()))
	for _, wp := range path.Waypoints() {
		line = append(line, orb.Point{wp.Point.Longitude, wp.Point.Latitude})
	}
	road := geojson.NewFeature(line)
	road.Properties["name"] = "Scenic Loop Drive"
	road.Properties["length_miles"] = path.LengthMiles()
	fc.Append(road)

	for i, area := range aggregates {
		f := geojson.NewFeature(orb.Point{area.AvgLongitude, area.AvgLatitude})
		f.Properties["name"] = area.Name()
		f.Properties["area"] = area.Area
		f.Properties["canyon"] = area.Canyon
		f.Properties["num_routes"] = area.RouteCount
		f.Properties["encounter_order"] = i + 1
		f.Properties["avg_path_position"] = area.AvgPathPosition
		f.Properties["avg_distance_to_road"] = area.AvgDistanceToRoad
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write GeoJSON: %w", err)
	}
	return nil
}
