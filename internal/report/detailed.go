package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rrcbeta/scenicloop/internal/lib/scenicpath"
	"github.com/rrcbeta/scenicloop/internal/services"
)

// WriteDetailedReport writes the plain-text report: methodology, the
// waypoint table, and every area with its full route listing in encounter
// order.
func WriteDetailedReport(w io.Writer, path *scenicpath.Path, aggregates []services.AreaAggregate) error {
	var b strings.Builder

	fmt.Fprintf(&b, "SCENIC LOOP DRIVE - DETAILED CLIMB ORDER\n")
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 65))
	fmt.Fprintf(&b, "METHODOLOGY:\n")
	fmt.Fprintf(&b, "This analysis uses waypoints along the %.1f-mile one-way scenic drive\n", path.LengthMiles())
	fmt.Fprintf(&b, "to determine the order of climbing areas as encountered while driving.\n")
	fmt.Fprintf(&b, "Each area's position is calculated based on distance to the road path.\n\n")

	fmt.Fprintf(&b, "WAYPOINTS USED:\n")
	for i, wp := range path.Waypoints() {
		fmt.Fprintf(&b, "%2d. %s - (%.4f, %.4f)\n", i+1, wp.Label, wp.Point.Latitude, wp.Point.Longitude)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "All climbing routes organized by area, in scenic drive order:\n\n")

	for i, area := range aggregates {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, area.Name())
		fmt.Fprintf(&b, "     Total Routes: %d\n", area.RouteCount)
		fmt.Fprintf(&b, "     Path Position: %.4f (0=start, 1=end)\n", area.AvgPathPosition)
		fmt.Fprintf(&b, "     Average Distance to Road: %.3f miles\n", area.AvgDistanceToRoad)
		fmt.Fprintf(&b, "     Average Coordinates: %.5f, %.5f\n", area.AvgLatitude, area.AvgLongitude)
		fmt.Fprintf(&b, "     All Routes:\n")

		names := make([]string, len(area.Routes))
		for j, r := range area.Routes {
			names[j] = r.Name
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "       - %s\n", name)
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write detailed report: %w", err)
	}
	return nil
}

// WriteEncounterListing writes the human-readable console listing of areas
// in drive order, with a few example routes per area.
func WriteEncounterListing(w io.Writer, aggregates []services.AreaAggregate) error {
	var b strings.Builder

	fmt.Fprintf(&b, "CLIMBING AREAS IN SCENIC LOOP DRIVE ORDER\n")
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 60))

	for i, area := range aggregates {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, area.Name())
		fmt.Fprintf(&b, "     Routes: %d\n", area.RouteCount)
		fmt.Fprintf(&b, "     Path Position: %.4f (0=start, 1=end)\n", area.AvgPathPosition)
		fmt.Fprintf(&b, "     Avg Distance to Road: %.2f miles\n", area.AvgDistanceToRoad)

		names := make([]string, len(area.Routes))
		for j, r := range area.Routes {
			names[j] = r.Name
		}
		if len(names) <= 3 {
			fmt.Fprintf(&b, "     Example routes: %s\n", strings.Join(names, ", "))
		} else {
			fmt.Fprintf(&b, "     Example routes: %s, ... (+%d more)\n",
				strings.Join(names[:3], ", "), len(names)-3)
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write encounter listing: %w", err)
	}
	return nil
}

// WriteTopScored writes the highest scoring areas, best first. Ties keep
// their encounter order.
func WriteTopScored(w io.Writer, summaries []services.AreaSummary, n int) error {
	ranked := make([]services.AreaSummary, len(summaries))
	copy(ranked, summaries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TOP %d HIGHEST SCORING AREAS\n", len(ranked))
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 60))

	for _, s := range ranked {
		fmt.Fprintf(&b, "%2d. %s (%s) - Order #%d, Score: %.1f, Routes: %d, Trad/Sport: %d/%d\n",
			s.ScoreRank, s.Area, s.Canyon, s.FirstScenicOrder,
			s.TotalScore, s.NumRoutes, s.NumTrad, s.NumSport)
	}
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write top scored listing: %w", err)
	}
	return nil
}
