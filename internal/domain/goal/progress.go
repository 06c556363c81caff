package goal

import (
	"math"
	"strconv"
	"strings"
)

// CategoryWeight goals invert the progress formula: losing weight moves the
// current value toward the target from above, so progress is distance
// covered from the starting value, not current/target.
const CategoryWeight = "weight"

// Progress translates (current, target, initial) into a 0-100 integer
// percentage. initial is the value the goal started at; it only matters for
// the weight category.
func Progress(category string, current, target, initial float64) int {
	var pct float64

	if strings.EqualFold(category, CategoryWeight) {
		// initial is the larger value, target the smaller. Equal start and
		// target would divide by zero; that degenerate goal reports 0.
		if initial == target {
			return 0
		}
		pct = (initial - current) / (initial - target) * 100
	} else {
		if target == 0 {
			return 0
		}
		pct = current / target * 100
	}

	return clampPercent(pct)
}

// ProgressFromValues parses the goal's free-text values and computes stored
// progress. Non-numeric values yield 0 rather than an error: textual goals
// ("run a 10k") track progress manually.
func ProgressFromValues(category, current, target, initial string) int {
	cur, okC := parseNumber(current)
	tgt, okT := parseNumber(target)
	if !okC || !okT {
		return 0
	}
	ini, okI := parseNumber(initial)
	if !okI {
		ini = cur
	}
	return Progress(category, cur, tgt, ini)
}

// parseNumber treats non-finite values the same as non-numeric text:
// strconv accepts "NaN" and "Inf", but they are not usable goal values.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func clampPercent(pct float64) int {
	if math.IsNaN(pct) || pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(math.Round(pct))
}
