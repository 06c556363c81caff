package report

import (
	"testing"
	"time"

	"github.com/helioslabs/vitaltrack/internal/domain/exercise"
)

func fptr(v float64) *float64 { return &v }

func TestExerciseByType(t *testing.T) {
	logs := []exercise.Log{
		{Type: "running", DurationMins: 30, Calories: fptr(300), Date: day(2026, time.August, 1)},
		{Type: "yoga", DurationMins: 45, Date: day(2026, time.August, 1)},
		{Type: "running", DurationMins: 40, Calories: fptr(420), Date: day(2026, time.August, 3)},
	}

	rep := Exercise(logs, nil)

	if len(rep.ByType) != 2 {
		t.Fatalf("got %d types, want 2", len(rep.ByType))
	}
	// First-seen order, not alphabetical.
	if rep.ByType[0].Type != "running" || rep.ByType[1].Type != "yoga" {
		t.Errorf("type order = [%s, %s], want [running, yoga]", rep.ByType[0].Type, rep.ByType[1].Type)
	}
	if rep.ByType[0].TotalMinutes != 70 || rep.ByType[0].TotalCalories != 720 || rep.ByType[0].Sessions != 2 {
		t.Errorf("running totals = %+v, want 70 mins, 720 kcal, 2 sessions", rep.ByType[0])
	}
	if rep.ByType[1].TotalCalories != 0 {
		t.Errorf("yoga calories = %v, want 0 (nil calories tolerated)", rep.ByType[1].TotalCalories)
	}
	if rep.TotalMinutes != 115 {
		t.Errorf("TotalMinutes = %d, want 115", rep.TotalMinutes)
	}
}

func TestExerciseActiveDays(t *testing.T) {
	logs := []exercise.Log{
		{Type: "running", DurationMins: 30, Date: day(2026, time.August, 1)},
		{Type: "yoga", DurationMins: 20, Date: day(2026, time.August, 1)}, // same day
		{Type: "cycling", DurationMins: 60, Date: day(2026, time.August, 4)},
	}

	rep := Exercise(logs, nil)

	if rep.ActiveDays != 2 {
		t.Errorf("ActiveDays = %d, want 2 (distinct calendar dates)", rep.ActiveDays)
	}
}

func TestExerciseEmptyAndFilteredOut(t *testing.T) {
	rep := Exercise(nil, nil)
	if rep.ActiveDays != 0 || rep.TotalMinutes != 0 || len(rep.ByType) != 0 {
		t.Errorf("empty input should give zero report, got %+v", rep)
	}

	logs := []exercise.Log{{Type: "running", DurationMins: 30, Date: day(2026, time.August, 1)}}
	r := &DateRange{Start: day(2026, time.September, 1)}
	rep = Exercise(logs, r)
	if len(rep.ByType) != 0 {
		t.Errorf("range excluding all logs should give empty report, got %+v", rep)
	}
}
