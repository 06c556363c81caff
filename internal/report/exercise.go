package report

import (
	"github.com/helioslabs/vitaltrack/internal/domain/exercise"
)

type TypeTotals struct {
	Type          string  `json:"type"`
	TotalMinutes  int     `json:"total_minutes"`
	TotalCalories float64 `json:"total_calories"`
	Sessions      int     `json:"sessions"`
}

type ExerciseReport struct {
	// ByType lists totals per activity type in first-seen order.
	ByType []TypeTotals `json:"by_type"`
	// ActiveDays counts distinct calendar dates with at least one log in range.
	ActiveDays    int     `json:"active_days"`
	TotalMinutes  int     `json:"total_minutes"`
	TotalCalories float64 `json:"total_calories"`
}

// Exercise aggregates exercise logs per activity type. Input must be sorted
// by date ascending.
func Exercise(logs []exercise.Log, r *DateRange) ExerciseReport {
	var rep ExerciseReport

	typeIndex := make(map[string]int)
	days := make(map[string]struct{})

	for _, l := range logs {
		if !r.Contains(l.Date) {
			continue
		}

		i, ok := typeIndex[l.Type]
		if !ok {
			i = len(rep.ByType)
			typeIndex[l.Type] = i
			rep.ByType = append(rep.ByType, TypeTotals{Type: l.Type})
		}

		rep.ByType[i].TotalMinutes += l.DurationMins
		rep.ByType[i].Sessions++
		if l.Calories != nil {
			rep.ByType[i].TotalCalories += *l.Calories
		}

		rep.TotalMinutes += l.DurationMins
		if l.Calories != nil {
			rep.TotalCalories += *l.Calories
		}

		days[DayKey(l.Date)] = struct{}{}
	}

	rep.ActiveDays = len(days)
	return rep
}
