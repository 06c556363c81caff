package goal

import (
	"math"
	"testing"
)

func TestProgressDefaultCategory(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		want            int
	}{
		{"halfway", 5000, 10000, 50},
		{"complete", 10000, 10000, 100},
		{"over target caps at 100", 12000, 10000, 100},
		{"zero target", 5000, 0, 0},
		{"negative current clamps to 0", -5, 10, 0},
		{"rounds to nearest", 1, 3, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress("steps", tt.current, tt.target, tt.current); got != tt.want {
				t.Errorf("Progress = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProgressWeightCategory(t *testing.T) {
	// Losing weight from 70 toward 60.
	tests := []struct {
		name    string
		current float64
		want    int
	}{
		{"at start", 70, 0},
		{"halfway", 65, 50},
		{"at target", 60, 100},
		{"past target caps at 100", 58, 100},
		{"regressed clamps to 0", 72, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress("weight", tt.current, 60, 70); got != tt.want {
				t.Errorf("Progress(weight, %v, 60, 70) = %d, want %d", tt.current, got, tt.want)
			}
		})
	}
}

func TestProgressWeightEqualStartAndTarget(t *testing.T) {
	if got := Progress("weight", 70, 70, 70); got != 0 {
		t.Errorf("Progress = %d, want 0 (divide-by-zero guard)", got)
	}
}

func TestProgressCategoryCaseInsensitive(t *testing.T) {
	if got := Progress("Weight", 65, 60, 70); got != 50 {
		t.Errorf("Progress = %d, want 50", got)
	}
}

func TestProgressFromValues(t *testing.T) {
	tests := []struct {
		name                     string
		category                 string
		current, target, initial string
		want                     int
	}{
		{"numeric steps", "activity", "5000", "10000", "5000", 50},
		{"weight loss", "weight", "65", "60", "70", 50},
		{"textual target", "habit", "done", "run a 10k", "", 0},
		{"textual current", "habit", "", "100", "", 0},
		{"missing initial falls back to current", "weight", "65", "60", "", 0},
		{"whitespace tolerated", "activity", " 25 ", " 100 ", "0", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressFromValues(tt.category, tt.current, tt.target, tt.initial)
			if got != tt.want {
				t.Errorf("ProgressFromValues = %d, want %d", got, tt.want)
			}
		})
	}
}

// strconv.ParseFloat accepts "NaN" and "Inf"; those must behave like
// textual values, never escape the [0,100] range.
func TestProgressFromValuesNonFinite(t *testing.T) {
	tests := []struct {
		name                     string
		category                 string
		current, target, initial string
	}{
		{"NaN current", "steps", "NaN", "100", ""},
		{"NaN target", "steps", "50", "NaN", ""},
		{"positive infinity current", "steps", "+Inf", "100", ""},
		{"negative infinity current", "steps", "-Inf", "100", ""},
		{"NaN initial on weight goal", "weight", "65", "60", "NaN"},
		{"infinite target on weight goal", "weight", "65", "Inf", "70"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressFromValues(tt.category, tt.current, tt.target, tt.initial)
			if got != 0 {
				t.Errorf("ProgressFromValues = %d, want 0 for non-finite input", got)
			}
		})
	}
}

func TestProgressNonFiniteArguments(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	for _, pct := range []int{
		Progress("steps", nan, 100, nan),
		Progress("steps", inf, 100, inf),
		Progress("weight", nan, 60, 70),
		Progress("weight", 65, 60, inf),
	} {
		if pct < 0 || pct > 100 {
			t.Errorf("Progress = %d, want a value in [0,100]", pct)
		}
	}
}
