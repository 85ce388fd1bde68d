// Package scenicpath maps geographic points to a normalized position along a
// piecewise-linear reference path, such as the one-way Scenic Loop Drive.
package scenicpath

import (
	"errors"

	"github.com/rrcbeta/scenicloop/internal/lib/geo"
)

// Waypoint is one fixed reference coordinate of the path, with a
// human-readable label.
type Waypoint struct {
	Point geo.Point
	Label string
}

// Projection is the result of projecting a point onto the path.
type Projection struct {
	// Position is the normalized progress along the path, 0 at the first
	// waypoint and 1 at the last.
	Position float64
	// DistanceMiles is the great-circle distance from the point to the
	// closest point on the path.
	DistanceMiles float64
}

// Path is an immutable ordered sequence of waypoints defining consecutive
// straight segments. The real-world drive is a loop, but the model treats
// the sequence as an open polyline; the first and last waypoints need not
// coincide.
type Path struct {
	waypoints []Waypoint
}

// New builds a Path from an ordered waypoint sequence. At least two
// waypoints are required to define a segment.
func New(waypoints []Waypoint) (*Path, error) {
	if len(waypoints) < 2 {
		return nil, errors.New("path must have at least 2 waypoints")
	}
	wps := make([]Waypoint, len(waypoints))
	copy(wps, waypoints)
	return &Path{waypoints: wps}, nil
}

// Waypoints returns a copy of the path's waypoint sequence.
func (p *Path) Waypoints() []Waypoint {
	wps := make([]Waypoint, len(p.waypoints))
	copy(wps, p.waypoints)
	return wps
}

// Segments returns the number of straight segments in the path.
func (p *Path) Segments() int {
	return len(p.waypoints) - 1
}

// LengthMiles returns the total great-circle length of the path.
func (p *Path) LengthMiles() float64 {
	total := 0.0
	for i := 0; i < len(p.waypoints)-1; i++ {
		total += geo.Distance(p.waypoints[i].Point, p.waypoints[i+1].Point)
	}
	return total
}

// Project finds the segment closest to the given point and converts the
// local (segment index, fractional position) into a normalized progress
// value: (segmentIndex + t) / segmentCount.
//
// Segments are scanned in index order with a strict less-than comparison,
// so when a point is equidistant from two segments the earlier segment
// wins. A point closest to a later segment that geometrically loops back
// near an earlier one is assigned to whichever segment is nearer, not
// whichever comes first along the drive; that is an accepted limitation of
// nearest-segment projection.
func (p *Path) Project(point geo.Point) Projection {
	minDistance := -1.0
	closestSegment := 0
	closestT := 0.0

	for i := 0; i < len(p.waypoints)-1; i++ {
		distance, t := geo.ProjectOntoSegment(point, p.waypoints[i].Point, p.waypoints[i+1].Point)
		if minDistance < 0 || distance < minDistance {
			minDistance = distance
			closestSegment = i
			closestT = t
		}
	}

	return Projection{
		Position:      (float64(closestSegment) + closestT) / float64(p.Segments()),
		DistanceMiles: minDistance,
	}
}

// RedRocksScenicLoop returns the waypoint table for the 13-mile one-way
// Scenic Loop Drive, from the visitor center entrance around the horseshoe
// and back. The first and last waypoints share a coordinate because the
// drive returns to its starting point.
func RedRocksScenicLoop() []Waypoint {
	return []Waypoint{
		{geo.Point{Latitude: 36.1588, Longitude: -115.4264}, "Visitor Center / Entrance"},
		{geo.Point{Latitude: 36.1450, Longitude: -115.4450}, "Early Drive Section"},
		{geo.Point{Latitude: 36.1300, Longitude: -115.4600}, "Calico Hills Approach"},
		{geo.Point{Latitude: 36.1480, Longitude: -115.4280}, "Calico Basin / First Pullout"},
		{geo.Point{Latitude: 36.1200, Longitude: -115.4700}, "Central Canyon Area"},
		{geo.Point{Latitude: 36.1000, Longitude: -115.4800}, "Southern Canyon Area"},
		{geo.Point{Latitude: 36.1100, Longitude: -115.5000}, "Pine Creek Canyon"},
		{geo.Point{Latitude: 36.1150, Longitude: -115.4900}, "Juniper Canyon"},
		{geo.Point{Latitude: 36.1250, Longitude: -115.4850}, "Icebox Canyon Area"},
		{geo.Point{Latitude: 36.1350, Longitude: -115.4800}, "Willow Spring Area"},
		{geo.Point{Latitude: 36.1500, Longitude: -115.4650}, "Late Drive Section"},
		{geo.Point{Latitude: 36.1588, Longitude: -115.4264}, "Return to Visitor Center"},
	}
}
