package report

import (
	"fmt"
	"io"

	"github.com/twpayne/go-kml/v2"

	"github.com/rrcbeta/scenicloop/internal/lib/scenicpath"
	"github.com/rrcbeta/scenicloop/internal/services"
)

// WriteKML writes a map overlay with the scenic drive polyline, its
// waypoints, and one placemark per climbing area centroid.
func WriteKML(w io.Writer, path *scenicpath.Path, aggregates []services.AreaAggregate) error {
	waypoints := path.Waypoints()

	roadCoords := make([]kml.Coordinate, len(waypoints))
	for i, wp := range waypoints {
		roadCoords[i] = kml.Coordinate{Lon: wp.Point.Longitude, Lat: wp.Point.Latitude}
	}

	children := []kml.Element{
		kml.Name("Scenic Loop Drive"),
		kml.Placemark(
			kml.Name("Scenic Loop Drive"),
			kml.Description(fmt.Sprintf("%.1f mile one-way drive", path.LengthMiles())),
			kml.LineString(
				kml.Tessellate(true),
				kml.Coordinates(roadCoords...),
			),
		),
	}

	for i, wp := range waypoints {
		children = append(children, kml.Placemark(
			kml.Name(fmt.Sprintf("%d. %s", i+1, wp.Label)),
			kml.Point(
				kml.Coordinates(kml.Coordinate{Lon: wp.Point.Longitude, Lat: wp.Point.Latitude}),
			),
		))
	}

	for _, area := range aggregates {
		children = append(children, kml.Placemark(
			kml.Name(area.Name()),
			kml.Description(fmt.Sprintf("%d routes, path position %.4f, %.2f miles from road",
				area.RouteCount, area.AvgPathPosition, area.AvgDistanceToRoad)),
			kml.Point(
				kml.Coordinates(kml.Coordinate{Lon: area.AvgLongitude, Lat: area.AvgLatitude}),
			),
		))
	}

	doc := kml.KML(kml.Document(children...))
	if err := doc.WriteIndent(w, "", "  "); err != nil {
		return fmt.Errorf("failed to write KML overlay: %w", err)
	}
	return nil
}
