package report

import (
	"math"
)

// Sub-score weights. They sum to 1 so the composite stays in [0,100].
const (
	scoreWeightWeight    = 0.3
	scoreWeightActivity  = 0.2
	scoreWeightSleep     = 0.2
	scoreWeightNutrition = 0.3
)

// activityCapacityMins is the implicit weekly capacity the activity
// sub-score is measured against: 7 days of 30 minutes.
const activityCapacityMins = 7 * 30.0

// ScoreInputs carries the already-aggregated facts the composite score
// needs. Zero targets and missing data mean "not configured yet" and score
// 0 for that component, never an error or NaN.
type ScoreInputs struct {
	LatestWeight float64
	HasWeight    bool
	TargetWeight float64 // kg

	ExerciseMinutes float64

	SleepHours   float64
	SleepEntries int
	TargetSleep  float64 // hours/night

	ProteinGrams float64
}

// HealthScore is the composite 0-100 score plus its four named sub-scores,
// each independently clamped to [0,100] before weighting.
type HealthScore struct {
	Total     int     `json:"total"`
	Weight    float64 `json:"weight"`
	Activity  float64 `json:"activity"`
	Sleep     float64 `json:"sleep"`
	Nutrition float64 `json:"nutrition"`
}

// Score computes the composite health score:
//
//	weight:    100 - |latest - target| / target * 100
//	activity:  exercise minutes / (7 x 30) * 100
//	sleep:     total hours / (entries x target hours) * 100
//	nutrition: protein grams / (1.2 x target weight) * 100
//
// weighted 0.3 / 0.2 / 0.2 / 0.3 and rounded to the nearest integer.
func Score(in ScoreInputs) HealthScore {
	var s HealthScore

	if in.HasWeight && in.TargetWeight > 0 {
		s.Weight = clampPercent(100 - math.Abs(in.LatestWeight-in.TargetWeight)/in.TargetWeight*100)
	}

	s.Activity = clampPercent(in.ExerciseMinutes / activityCapacityMins * 100)

	if in.SleepEntries > 0 && in.TargetSleep > 0 {
		s.Sleep = clampPercent(in.SleepHours / (float64(in.SleepEntries) * in.TargetSleep) * 100)
	}

	if in.TargetWeight > 0 {
		// Rough protein-per-kilogram proxy: 1.2 g per kg of target weight.
		s.Nutrition = clampPercent(in.ProteinGrams / (1.2 * in.TargetWeight) * 100)
	}

	total := scoreWeightWeight*s.Weight +
		scoreWeightActivity*s.Activity +
		scoreWeightSleep*s.Sleep +
		scoreWeightNutrition*s.Nutrition
	s.Total = int(math.Round(total))

	return s
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
