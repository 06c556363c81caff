package report

import (
	"testing"
	"time"

	"github.com/helioslabs/vitaltrack/internal/domain/meal"
)

func TestNutritionDailyTotals(t *testing.T) {
	meals := []meal.Meal{
		{Type: meal.TypeBreakfast, Calories: 400, Protein: 20, Carbs: 50, Fat: 12, Date: day(2026, time.August, 1)},
		{Type: meal.TypeDinner, Calories: 700, Protein: 40, Carbs: 60, Fat: 25, Date: day(2026, time.August, 1)},
		{Type: meal.TypeLunch, Calories: 550, Protein: 30, Carbs: 45, Fat: 20, Date: day(2026, time.August, 2)},
	}

	rep := Nutrition(meals, nil)

	if len(rep.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(rep.Days))
	}
	if rep.Days[0].Calories != 1100 || rep.Days[0].Protein != 60 {
		t.Errorf("day 1 = %+v, want calories 1100 protein 60", rep.Days[0])
	}
	if rep.Days[1].Calories != 550 {
		t.Errorf("day 2 calories = %v, want 550", rep.Days[1].Calories)
	}
	if rep.TotalCalories != 1650 {
		t.Errorf("TotalCalories = %v, want 1650", rep.TotalCalories)
	}
}

func TestNutritionMacroSplitIsGramShare(t *testing.T) {
	// 50g protein + 100g carbs + 50g fat = 200g total. The split is share
	// of grams, not calories: fat's caloric density is not weighted.
	meals := []meal.Meal{
		{Protein: 50, Carbs: 100, Fat: 50, Date: day(2026, time.August, 1)},
	}

	rep := Nutrition(meals, nil)

	if rep.Split.ProteinPct != 25 {
		t.Errorf("ProteinPct = %v, want 25", rep.Split.ProteinPct)
	}
	if rep.Split.CarbsPct != 50 {
		t.Errorf("CarbsPct = %v, want 50", rep.Split.CarbsPct)
	}
	if rep.Split.FatPct != 25 {
		t.Errorf("FatPct = %v, want 25", rep.Split.FatPct)
	}
}

func TestNutritionEmpty(t *testing.T) {
	rep := Nutrition(nil, nil)
	if len(rep.Days) != 0 {
		t.Errorf("got %d days, want 0", len(rep.Days))
	}
	if rep.Split != (MacroSplit{}) {
		t.Errorf("Split = %+v, want zero (no division by zero grams)", rep.Split)
	}
}

func TestNutritionRangeFilter(t *testing.T) {
	meals := []meal.Meal{
		{Calories: 500, Date: day(2026, time.July, 31)},
		{Calories: 600, Date: day(2026, time.August, 1)},
	}
	r := &DateRange{Start: day(2026, time.August, 1), End: day(2026, time.August, 31)}

	rep := Nutrition(meals, r)

	if len(rep.Days) != 1 {
		t.Fatalf("got %d days, want 1", len(rep.Days))
	}
	if rep.TotalCalories != 600 {
		t.Errorf("TotalCalories = %v, want 600", rep.TotalCalories)
	}
}
