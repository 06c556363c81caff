package report

import (
	"time"

	"github.com/helioslabs/vitaltrack/internal/domain/meal"
)

type DayMacros struct {
	Label    string  `json:"label"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MacroSplit is the macro distribution as a percentage of total
// protein+carbs+fat grams. This is gram-share, not calorie-share: fat's
// higher caloric density is deliberately not weighted, matching the
// original dashboard's behavior.
type MacroSplit struct {
	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatPct     float64 `json:"fat_pct"`
}

type NutritionReport struct {
	Days          []DayMacros `json:"days"`
	Split         MacroSplit  `json:"split"`
	TotalCalories float64     `json:"total_calories"`
	TotalProtein  float64     `json:"total_protein"`
	TotalCarbs    float64     `json:"total_carbs"`
	TotalFat      float64     `json:"total_fat"`
}

// Nutrition rolls per-meal macros up to daily totals and an overall macro
// distribution. Input must be sorted by date ascending.
func Nutrition(meals []meal.Meal, r *DateRange) NutritionReport {
	var rep NutritionReport

	buckets := GroupBy(meals, func(m meal.Meal) time.Time { return m.Date }, DayKey, r)

	for _, b := range buckets {
		day := DayMacros{Label: b.Label}
		for _, m := range b.Items {
			day.Calories += m.Calories
			day.Protein += m.Protein
			day.Carbs += m.Carbs
			day.Fat += m.Fat
		}
		rep.Days = append(rep.Days, day)

		rep.TotalCalories += day.Calories
		rep.TotalProtein += day.Protein
		rep.TotalCarbs += day.Carbs
		rep.TotalFat += day.Fat
	}

	grams := rep.TotalProtein + rep.TotalCarbs + rep.TotalFat
	if grams > 0 {
		rep.Split = MacroSplit{
			ProteinPct: rep.TotalProtein / grams * 100,
			CarbsPct:   rep.TotalCarbs / grams * 100,
			FatPct:     rep.TotalFat / grams * 100,
		}
	}

	return rep
}
