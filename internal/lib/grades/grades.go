// Package grades parses Yosemite Decimal System climbing ratings into
// numeric difficulty values and coarse grade buckets.
package grades

import (
	"regexp"
	"strconv"
	"strings"
)

// Grade buckets used for the area summary breakdown.
const (
	Category50to56  = "5.0-5.6"
	Category57to58  = "5.7-5.8"
	Category59to510 = "5.9-5.10"
	Category511     = "5.11"
	Category512Plus = "5.12+"
	CategoryUnknown = "unknown"
)

// Categories returns all grade buckets in presentation order.
func Categories() []string {
	return []string{
		Category50to56,
		Category57to58,
		Category59to510,
		Category511,
		Category512Plus,
		CategoryUnknown,
	}
}

// modifierPattern strips protection and aid modifiers trailing the grade,
// e.g. "5.11c PG13" or "5.9 R".
var modifierPattern = regexp.MustCompile(`\s+(PG13|PG|R|X|A\d|C\d)`)

var letterValues = map[byte]float64{
	'A': 0.0,
	'B': 0.25,
	'C': 0.5,
	'D': 0.75,
}

// Parse converts a rating string like "5.10a" into a decimal difficulty
// value (10.0). Letter suffixes map to quarter steps: a=.00, b=.25, c=.50,
// d=.75. Plus/minus modifiers are ignored. Anything that is not a "5."
// rating, including an empty string, parses to 0, the "unknown" grade.
func Parse(rating string) float64 {
	r := strings.ToUpper(strings.TrimSpace(rating))
	if r == "" {
		return 0
	}

	r = modifierPattern.ReplaceAllString(r, "")
	if !strings.HasPrefix(r, "5.") {
		return 0
	}

	fields := strings.Fields(r[2:])
	if len(fields) == 0 {
		return 0
	}
	clean := strings.NewReplacer("+", "", "-", "").Replace(fields[0])
	if clean == "" {
		return 0
	}

	if isDigits(clean) {
		n, err := strconv.Atoi(clean)
		if err != nil {
			return 0
		}
		return float64(n)
	}

	if strings.Contains(clean, ".") {
		n, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return 0
		}
		return n
	}

	// Letter grades like 10A, 11D: numeric base plus a quarter-step
	// suffix.
	if len(clean) >= 2 && isDigits(clean[:len(clean)-1]) {
		base, err := strconv.Atoi(clean[:len(clean)-1])
		if err != nil {
			return 0
		}
		return float64(base) + letterValues[clean[len(clean)-1]]
	}

	return 0
}

// Category buckets a rating string into one of the grade categories.
func Category(rating string) string {
	d := Parse(rating)
	switch {
	case d == 0:
		return CategoryUnknown
	case d <= 6.75:
		return Category50to56
	case d >= 7 && d <= 8.75:
		return Category57to58
	case d >= 9 && d <= 10.75:
		return Category59to510
	case d >= 11 && d <= 11.75:
		return Category511
	case d >= 12:
		return Category512Plus
	default:
		return CategoryUnknown
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
