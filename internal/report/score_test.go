package report

import (
	"testing"
)

func TestScoreEmptyHistory(t *testing.T) {
	s := Score(ScoreInputs{})
	if s.Total != 0 {
		t.Errorf("Total = %d, want 0 for empty history", s.Total)
	}
	if s.Weight != 0 || s.Activity != 0 || s.Sleep != 0 || s.Nutrition != 0 {
		t.Errorf("sub-scores = %+v, want all zero", s)
	}
}

func TestScorePerfectUser(t *testing.T) {
	// Latest weight equals target, 7 days x 30 min exercise, exactly target
	// sleep every night, protein exactly 1.2 g/kg of target weight.
	s := Score(ScoreInputs{
		LatestWeight:    70,
		HasWeight:       true,
		TargetWeight:    70,
		ExerciseMinutes: 7 * 30,
		SleepHours:      7 * 8,
		SleepEntries:    7,
		TargetSleep:     8,
		ProteinGrams:    1.2 * 70,
	})

	if s.Weight != 100 || s.Activity != 100 || s.Sleep != 100 || s.Nutrition != 100 {
		t.Errorf("sub-scores = %+v, want all 100", s)
	}
	if s.Total != 100 {
		t.Errorf("Total = %d, want 100", s.Total)
	}
}

func TestScoreAlwaysInRange(t *testing.T) {
	inputs := []ScoreInputs{
		{},
		{LatestWeight: 200, HasWeight: true, TargetWeight: 70},                   // far from target
		{LatestWeight: 70, HasWeight: true, TargetWeight: 70, ExerciseMinutes: 1e6}, // absurd activity
		{SleepHours: -5, SleepEntries: 3, TargetSleep: 8},                        // negative data
		{ProteinGrams: 1e6, TargetWeight: 70},
		{LatestWeight: 70, HasWeight: true}, // no target
	}

	for i, in := range inputs {
		s := Score(in)
		if s.Total < 0 || s.Total > 100 {
			t.Errorf("case %d: Total = %d, out of [0,100]", i, s.Total)
		}
		for name, sub := range map[string]float64{
			"weight": s.Weight, "activity": s.Activity, "sleep": s.Sleep, "nutrition": s.Nutrition,
		} {
			if sub < 0 || sub > 100 {
				t.Errorf("case %d: %s sub-score = %v, out of [0,100]", i, name, sub)
			}
		}
	}
}

func TestScoreWeightDistance(t *testing.T) {
	// 10% away from target => 90.
	s := Score(ScoreInputs{LatestWeight: 77, HasWeight: true, TargetWeight: 70})
	if s.Weight != 90 {
		t.Errorf("Weight sub-score = %v, want 90", s.Weight)
	}

	// More than 100% away floors at 0.
	s = Score(ScoreInputs{LatestWeight: 200, HasWeight: true, TargetWeight: 70})
	if s.Weight != 0 {
		t.Errorf("Weight sub-score = %v, want 0", s.Weight)
	}
}

func TestScoreZeroTargetsContributeZero(t *testing.T) {
	s := Score(ScoreInputs{
		LatestWeight: 70,
		HasWeight:    true,
		TargetWeight: 0, // unset
		SleepHours:   56,
		SleepEntries: 7,
		TargetSleep:  0, // unset
		ProteinGrams: 100,
	})
	if s.Weight != 0 || s.Sleep != 0 || s.Nutrition != 0 {
		t.Errorf("unset targets must score 0, got %+v", s)
	}
}

func TestScoreWeighting(t *testing.T) {
	// Only activity at 50%: total = round(0.2 * 50) = 10.
	s := Score(ScoreInputs{ExerciseMinutes: 105})
	if s.Activity != 50 {
		t.Errorf("Activity = %v, want 50", s.Activity)
	}
	if s.Total != 10 {
		t.Errorf("Total = %d, want 10", s.Total)
	}
}
