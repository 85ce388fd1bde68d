package geo

import "math"

// EarthRadiusMiles is the spherical-earth radius used for all distance math.
const EarthRadiusMiles = 3959.0

// Distance calculates the great-circle distance between two points in miles
// using the Haversine formula. It is symmetric, non-negative, and zero for
// identical coordinates. NaN inputs propagate to the result.
func Distance(p1, p2 Point) float64 {
	lat1 := toRadians(p1.Latitude)
	lat2 := toRadians(p2.Latitude)
	dLat := toRadians(p2.Latitude - p1.Latitude)
	dLon := toRadians(p2.Longitude - p1.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// Floating rounding can push the intermediate term slightly outside
	// [0, 1], which would take Sqrt outside its domain. Clamp before
	// taking roots.
	if a > 1 {
		a = 1
	} else if a < 0 {
		a = 0
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMiles * c
}

// ProjectOntoSegment projects a point onto the line segment from segStart to
// segEnd and returns the great-circle distance in miles to the closest point
// on the segment, plus the fractional position t in [0, 1] of that closest
// point along the segment.
//
// Latitude/longitude differences are treated as a flat 2-D plane when
// computing t. That is an approximation boundary carried over deliberately:
// at the scale of a short scenic road it tracks the true projection closely
// enough for nearest-segment selection.
func ProjectOntoSegment(point, segStart, segEnd Point) (distance, t float64) {
	dLat := segEnd.Latitude - segStart.Latitude
	dLon := segEnd.Longitude - segStart.Longitude

	// Zero-length segment: closest point is the start, by definition.
	if dLat == 0 && dLon == 0 {
		return Distance(point, segStart), 0
	}

	t = ((point.Latitude-segStart.Latitude)*dLat +
		(point.Longitude-segStart.Longitude)*dLon) /
		(dLat*dLat + dLon*dLon)

	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := Point{
		Latitude:  segStart.Latitude + t*dLat,
		Longitude: segStart.Longitude + t*dLon,
	}
	return Distance(point, closest), t
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
