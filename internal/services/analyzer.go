package services

import (
	"math"
	"sort"
	"strings"

	"github.com/rrcbeta/scenicloop/internal/clients/mountainproject"
	"github.com/rrcbeta/scenicloop/internal/lib/geo"
	"github.com/rrcbeta/scenicloop/internal/lib/grades"
	"github.com/rrcbeta/scenicloop/internal/lib/scenicpath"
	"github.com/rrcbeta/scenicloop/internal/lib/scoring"
)

// Analyzer assigns scenic loop positions to routes and aggregates them into
// climbing areas. It is a one-shot batch computation over an in-memory
// route set; nothing here is safe for concurrent mutation and nothing needs
// to be.
type Analyzer struct {
	path *scenicpath.Path
}

// NewAnalyzer creates an Analyzer for the given reference path.
func NewAnalyzer(path *scenicpath.Path) *Analyzer {
	return &Analyzer{path: path}
}

// AreaAggregate is a derived grouping of routes sharing an (Area, Canyon)
// label, summarized by mean statistics. Recomputed per run; no persisted
// identity.
type AreaAggregate struct {
	Area              string
	Canyon            string
	RouteCount        int
	AvgLatitude       float64
	AvgLongitude      float64
	AvgPathPosition   float64
	AvgDistanceToRoad float64
	Routes            []mountainproject.Route
}

// Name returns the presentation label for the aggregate.
func (a AreaAggregate) Name() string {
	return a.Area + " (" + a.Canyon + ")"
}

// AreaSummary is the scored view of an area, shaped for the summary CSV.
type AreaSummary struct {
	Area             string  `csv:"Area"`
	Canyon           string  `csv:"Canyon"`
	NumRoutes        int     `csv:"num_routes"`
	TotalScore       float64 `csv:"total_score"`
	AvgPathPosition  float64 `csv:"avg_path_position"`
	FirstScenicOrder int     `csv:"first_scenic_order"`
	AvgStars         float64 `csv:"avg_stars"`
	AvgLatitude      float64 `csv:"avg_latitude"`
	AvgLongitude     float64 `csv:"avg_longitude"`

	Grade50to56  int `csv:"5.0-5.6"`
	Grade57to58  int `csv:"5.7-5.8"`
	Grade59to510 int `csv:"5.9-5.10"`
	Grade511     int `csv:"5.11"`
	Grade512Plus int `csv:"5.12+"`
	GradeUnknown int `csv:"unknown"`

	NumTrad  int `csv:"num_trad"`
	NumSport int `csv:"num_sport"`

	ScorePerRoute float64 `csv:"score_per_route"`
	ScoreRank     int     `csv:"score_rank"`
}

// AssignLoopOrder projects every route onto the scenic path, attaches
// PathPosition and DistanceToRoad, and returns the routes sorted ascending
// by path position with ScenicLoopOrder ranks 1..N.
//
// Ties in path position keep their original input order (the sort is
// stable); beyond stability the tie order is unspecified.
func (a *Analyzer) AssignLoopOrder(routes []mountainproject.Route) []mountainproject.Route {
	ordered := make([]mountainproject.Route, len(routes))
	copy(ordered, routes)

	for i := range ordered {
		proj := a.path.Project(geo.Point{
			Latitude:  ordered[i].Latitude,
			Longitude: ordered[i].Longitude,
		})
		ordered[i].PathPosition = proj.Position
		ordered[i].DistanceToRoad = proj.DistanceMiles
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PathPosition < ordered[j].PathPosition
	})
	for i := range ordered {
		ordered[i].ScenicLoopOrder = i + 1
	}
	return ordered
}

// AggregateAreas groups routes by exact (Area, Canyon) match and computes
// mean coordinates, path position, and road distance per group. Groups come
// back sorted ascending by mean path position, the centroid encounter-order
// view used by the detailed report.
func (a *Analyzer) AggregateAreas(routes []mountainproject.Route) []AreaAggregate {
	groups, order := groupByArea(routes)

	aggregates := make([]AreaAggregate, 0, len(order))
	for _, key := range order {
		members := groups[key]
		agg := AreaAggregate{
			Area:       members[0].Area,
			Canyon:     members[0].Canyon,
			RouteCount: len(members),
			Routes:     members,
		}
		for _, r := range members {
			agg.AvgLatitude += r.Latitude
			agg.AvgLongitude += r.Longitude
			agg.AvgPathPosition += r.PathPosition
			agg.AvgDistanceToRoad += r.DistanceToRoad
		}
		n := float64(len(members))
		agg.AvgLatitude /= n
		agg.AvgLongitude /= n
		agg.AvgPathPosition /= n
		agg.AvgDistanceToRoad /= n
		aggregates = append(aggregates, agg)
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].AvgPathPosition < aggregates[j].AvgPathPosition
	})
	return aggregates
}

// SummarizeAreas builds the scored area summary. Routes must already carry
// their ScenicLoopOrder from AssignLoopOrder. The summary is ordered by
// first encounter on the drive (minimum member rank) rather than centroid
// position, since that reflects where a driver first meets the area.
func (a *Analyzer) SummarizeAreas(routes []mountainproject.Route) []AreaSummary {
	groups, order := groupByArea(routes)

	summaries := make([]AreaSummary, 0, len(order))
	for _, key := range order {
		members := groups[key]
		s := AreaSummary{
			Area:             members[0].Area,
			Canyon:           members[0].Canyon,
			NumRoutes:        len(members),
			FirstScenicOrder: members[0].ScenicLoopOrder,
		}

		for _, r := range members {
			s.TotalScore += scoring.Total(r.Rating, r.RouteType, r.Pitches, r.AvgStars)
			s.AvgPathPosition += r.PathPosition
			s.AvgStars += r.AvgStars
			s.AvgLatitude += r.Latitude
			s.AvgLongitude += r.Longitude
			if r.ScenicLoopOrder < s.FirstScenicOrder {
				s.FirstScenicOrder = r.ScenicLoopOrder
			}

			switch grades.Category(r.Rating) {
			case grades.Category50to56:
				s.Grade50to56++
			case grades.Category57to58:
				s.Grade57to58++
			case grades.Category59to510:
				s.Grade59to510++
			case grades.Category511:
				s.Grade511++
			case grades.Category512Plus:
				s.Grade512Plus++
			default:
				s.GradeUnknown++
			}

			if strings.Contains(r.RouteType, "Trad") {
				s.NumTrad++
			}
			if strings.Contains(r.RouteType, "Sport") {
				s.NumSport++
			}
		}

		n := float64(len(members))
		s.TotalScore = round4(s.TotalScore)
		s.AvgPathPosition = round4(s.AvgPathPosition / n)
		s.AvgStars = round4(s.AvgStars / n)
		s.AvgLatitude = round4(s.AvgLatitude / n)
		s.AvgLongitude = round4(s.AvgLongitude / n)
		s.ScorePerRoute = round2(s.TotalScore / n)
		summaries = append(summaries, s)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].FirstScenicOrder < summaries[j].FirstScenicOrder
	})
	assignScoreRanks(summaries)
	return summaries
}

// groupByArea buckets routes by exact (Area, Canyon) pair, preserving
// first-seen group order and input member order.
func groupByArea(routes []mountainproject.Route) (map[string][]mountainproject.Route, []string) {
	groups := make(map[string][]mountainproject.Route)
	var order []string
	for _, r := range routes {
		key := r.Area + "\x00" + r.Canyon
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
	}
	return groups, order
}

// assignScoreRanks sets a dense rank by total score, highest first: equal
// scores share a rank and the next distinct score gets the next integer.
func assignScoreRanks(summaries []AreaSummary) {
	scores := make([]float64, 0, len(summaries))
	seen := make(map[float64]bool)
	for _, s := range summaries {
		if !seen[s.TotalScore] {
			seen[s.TotalScore] = true
			scores = append(scores, s.TotalScore)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

	rankOf := make(map[float64]int, len(scores))
	for i, score := range scores {
		rankOf[score] = i + 1
	}
	for i := range summaries {
		summaries[i].ScoreRank = rankOf[summaries[i].TotalScore]
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
