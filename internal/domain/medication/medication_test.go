package medication

import (
	"testing"
	"time"
)

func TestValidateTimes(t *testing.T) {
	if err := ValidateTimes([]string{"08:00", "13:30", "21:15"}); err != nil {
		t.Errorf("valid times rejected: %v", err)
	}
	for _, bad := range []string{"8am", "25:00", "08:60", "0800", ""} {
		if err := ValidateTimes([]string{bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestIsActiveOn(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	m := &Medication{Active: true, StartDate: start, EndDate: &end}

	if m.IsActiveOn(time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)) {
		t.Error("day before course start should be inactive")
	}
	if !m.IsActiveOn(start) {
		t.Error("course start day should be active")
	}
	if !m.IsActiveOn(end) {
		t.Error("course end day should be active")
	}
	if m.IsActiveOn(end.AddDate(0, 0, 1)) {
		t.Error("day after course end should be inactive")
	}

	m.Active = false
	if m.IsActiveOn(start) {
		t.Error("deactivated medication is never active")
	}

	open := &Medication{Active: true, StartDate: start}
	if !open.IsActiveOn(start.AddDate(1, 0, 0)) {
		t.Error("open-ended course stays active")
	}
}

// Day boundaries are calendar days in the time's own location. 23:00 on the
// start day in UTC+3 is still the start day, even though it falls on the
// previous UTC day boundary a 24h truncation would use.
func TestIsActiveOnNonUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, loc)
	end := time.Date(2026, 8, 20, 0, 0, 0, 0, loc)

	m := &Medication{Active: true, StartDate: start, EndDate: &end}

	if !m.IsActiveOn(time.Date(2026, 8, 1, 23, 0, 0, 0, loc)) {
		t.Error("late evening of the start day should be active")
	}
	if m.IsActiveOn(time.Date(2026, 7, 31, 23, 0, 0, 0, loc)) {
		t.Error("late evening of the day before start should be inactive")
	}
	if !m.IsActiveOn(time.Date(2026, 8, 20, 1, 0, 0, 0, loc)) {
		t.Error("early morning of the end day should be active")
	}
	if m.IsActiveOn(time.Date(2026, 8, 21, 1, 0, 0, 0, loc)) {
		t.Error("early morning of the day after end should be inactive")
	}
}

func TestAdherencePercent(t *testing.T) {
	tests := []struct {
		name  string
		taken []bool
		want  int
	}{
		{"empty", nil, 0},
		{"all taken", []bool{true, true, true}, 100},
		{"none taken", []bool{false, false}, 0},
		{"two of three", []bool{true, true, false}, 67},
		{"half", []bool{true, false}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := make([]Log, len(tt.taken))
			for i, taken := range tt.taken {
				logs[i] = Log{Taken: taken}
			}
			if got := AdherencePercent(logs); got != tt.want {
				t.Errorf("AdherencePercent = %d, want %d", got, tt.want)
			}
		})
	}
}
