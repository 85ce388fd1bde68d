// Package mountainproject loads climbing route data from Mountain Project
// style CSV exports.
package mountainproject

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jszwec/csvutil"
)

// csvRow mirrors the raw CSV columns. Numeric fields stay strings so a
// malformed value degrades to a zero contribution instead of aborting the
// whole import.
type csvRow struct {
	Route         string `csv:"Route"`
	Location      string `csv:"Location"`
	Area          string `csv:"Area"`
	Canyon        string `csv:"Canyon"`
	Latitude      string `csv:"Latitude"`
	Longitude     string `csv:"Longitude"`
	AreaLatitude  string `csv:"Area Latitude"`
	AreaLongitude string `csv:"Area Longitude"`
	Rating        string `csv:"Rating"`
	RouteType     string `csv:"Route Type"`
	Pitches       string `csv:"Pitches"`
	AvgStars      string `csv:"Avg Stars"`
}

// LoadRoutes reads and parses the routes CSV at the given path.
func LoadRoutes(path string) ([]Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open routes CSV: %w", err)
	}
	defer f.Close()

	routes, err := ParseRoutes(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return routes, nil
}

// ParseRoutes decodes route records from CSV data. The header row is
// required and validated; rows with missing or exactly-zero coordinates
// (the export's sentinel for an unknown location) are dropped. A Location
// column, when present, is split on " > " into Area and Canyon.
func ParseRoutes(r io.Reader) ([]Route, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if err := validateHeader(header); err != nil {
		return nil, err
	}

	decoder, err := csvutil.NewDecoder(cr, header...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	var routes []Route
	for {
		var row csvRow
		if err := decoder.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to decode CSV row: %w", err)
		}

		route, ok := normalizeRow(row)
		if !ok {
			continue
		}
		routes = append(routes, route)
	}

	return routes, nil
}

func validateHeader(header []string) error {
	has := func(name string) bool {
		for _, h := range header {
			if h == name {
				return true
			}
		}
		return false
	}

	for _, required := range []string{"Route", "Rating", "Route Type", "Pitches", "Avg Stars"} {
		if !has(required) {
			return fmt.Errorf("routes CSV is missing required column %q", required)
		}
	}
	if !has("Location") && !has("Area") {
		return fmt.Errorf("routes CSV needs a %q or %q column", "Location", "Area")
	}
	if !has("Latitude") && !has("Area Latitude") {
		return fmt.Errorf("routes CSV needs a %q or %q column", "Latitude", "Area Latitude")
	}
	if !has("Longitude") && !has("Area Longitude") {
		return fmt.Errorf("routes CSV needs a %q or %q column", "Longitude", "Area Longitude")
	}
	return nil
}

// normalizeRow converts a raw row into a Route. The second return value is
// false when the row has no usable coordinate and must be excluded before
// path projection.
func normalizeRow(row csvRow) (Route, bool) {
	area := row.Area
	canyon := row.Canyon
	if row.Location != "" {
		parts := strings.Split(row.Location, " > ")
		area = parts[0]
		if len(parts) > 1 {
			canyon = parts[1]
		}
	}

	lat := parseCoordinate(row.Latitude, row.AreaLatitude)
	lon := parseCoordinate(row.Longitude, row.AreaLongitude)
	if math.IsNaN(lat) || math.IsNaN(lon) || lat == 0 || lon == 0 {
		return Route{}, false
	}

	return Route{
		Name:      row.Route,
		Area:      area,
		Canyon:    canyon,
		Latitude:  lat,
		Longitude: lon,
		Rating:    row.Rating,
		RouteType: row.RouteType,
		Pitches:   parseIntField(row.Pitches),
		AvgStars:  parseFloatField(row.AvgStars),
	}, true
}

// parseCoordinate prefers the route-level value and falls back to the
// area-level one. NaN marks a value that could not be parsed at all.
func parseCoordinate(primary, fallback string) float64 {
	for _, s := range []string{primary, fallback} {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		return v
	}
	return math.NaN()
}

func parseIntField(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func parseFloatField(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
