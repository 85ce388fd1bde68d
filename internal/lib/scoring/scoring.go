// Package scoring computes a composite desirability score per climbing
// route, tuned toward moderate single-pitch sport climbing.
package scoring

import (
	"strings"

	"github.com/rrcbeta/scenicloop/internal/lib/grades"
)

// DifficultyScore rewards the 5.7-5.10d sweet spot with 2 points, easier
// warm-up grades with 1, and gives harder or unparseable grades nothing.
func DifficultyScore(rating string) float64 {
	difficulty := grades.Parse(rating)
	switch {
	case difficulty == 0:
		return 0
	case difficulty >= 7 && difficulty <= 10.75:
		return 2
	case difficulty < 7:
		return 1
	default:
		return 0
	}
}

// RouteTypeScore gives sport routes a bonus and multi-pitch routes a
// penalty for logistical complexity.
func RouteTypeScore(routeType string) float64 {
	switch {
	case strings.Contains(routeType, "Sport"):
		return 1
	case strings.Contains(routeType, "Multi-Pitch"):
		return -1
	default:
		return 0
	}
}

// PitchScore penalizes routes longer than a single pitch.
func PitchScore(pitches int) float64 {
	if pitches > 1 {
		return -1
	}
	return 0
}

// StarsScore passes the average star rating through when positive. A
// missing or non-positive value (including NaN) contributes nothing.
func StarsScore(avgStars float64) float64 {
	if avgStars > 0 {
		return avgStars
	}
	return 0
}

// Total is the composite route score: one base point plus the difficulty,
// route type, pitch, and stars components.
func Total(rating, routeType string, pitches int, avgStars float64) float64 {
	return 1 +
		DifficultyScore(rating) +
		RouteTypeScore(routeType) +
		PitchScore(pitches) +
		StarsScore(avgStars)
}
