package metric

import (
	"errors"
	"testing"
)

func TestParseNumericRoundTrip(t *testing.T) {
	values := []float64{0, 72.5, 98.6, 7.25, 10000, 0.1, 123.456789, -2.5}

	for _, v := range values {
		got, err := ParseNumeric(TypeWeight, EncodeNumeric(v))
		if err != nil {
			t.Fatalf("ParseNumeric(%q) returned error: %v", EncodeNumeric(v), err)
		}
		if got != v {
			t.Errorf("round trip: got %v, want %v", got, v)
		}
	}
}

func TestParseNumericMalformed(t *testing.T) {
	malformed := []string{"", "abc", "72.5kg", "{\"systolic\":120}", "1.2.3", "NaN kg"}

	for _, raw := range malformed {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseNumeric(TypeHeartRate, raw)
			if err == nil {
				t.Fatalf("ParseNumeric(%q) = nil error, want *ParseError", raw)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("error type = %T, want *ParseError", err)
			}
		})
	}
}

// Non-finite floats parse under strconv but are never valid readings, and
// would break JSON serialization of the report payloads downstream.
func TestParseNumericRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "nan", "+Inf", "-Inf", "Inf", "Infinity"} {
		t.Run(raw, func(t *testing.T) {
			v, err := ParseNumeric(TypeWeight, raw)
			if err == nil {
				t.Fatalf("ParseNumeric(%q) = %v, nil error; want *ParseError", raw, v)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("error type = %T, want *ParseError", err)
			}
		})
	}
}

func TestParseNumericRejectsBloodPressure(t *testing.T) {
	if _, err := ParseNumeric(TypeBloodPressure, "120"); err == nil {
		t.Error("expected error for non-numeric type")
	}
}

func TestParseNumericTrimsWhitespace(t *testing.T) {
	got, err := ParseNumeric(TypeSleep, " 7.5 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7.5 {
		t.Errorf("got %v, want 7.5", got)
	}
}

func TestParseBloodPressure(t *testing.T) {
	fallback := BloodPressure{}

	tests := []struct {
		name string
		raw  string
		want BloodPressure
	}{
		{"valid", `{"systolic":120,"diastolic":80}`, BloodPressure{Systolic: 120, Diastolic: 80}},
		{"malformed json", `{"systolic":120`, fallback},
		{"empty", "", fallback},
		{"plain number", "120", fallback},
		{"partial object", `{"systolic":135}`, BloodPressure{Systolic: 135}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBloodPressure(tt.raw, fallback)
			if got != tt.want {
				t.Errorf("ParseBloodPressure(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseBloodPressureCustomFallback(t *testing.T) {
	fb := BloodPressure{Systolic: 120, Diastolic: 80}
	if got := ParseBloodPressure("not json", fb); got != fb {
		t.Errorf("got %+v, want fallback %+v", got, fb)
	}
}

func TestTypeValidation(t *testing.T) {
	for _, valid := range []Type{TypeWeight, TypeBloodPressure, TypeHeartRate, TypeSleep, TypeSteps, TypeWater} {
		if !valid.IsValid() {
			t.Errorf("%s should be valid", valid)
		}
	}
	if Type("blood pressure").IsValid() {
		t.Error("unknown type should be invalid")
	}
	if TypeBloodPressure.IsNumeric() {
		t.Error("blood_pressure is not numeric")
	}
	if !TypeSteps.IsNumeric() {
		t.Error("steps is numeric")
	}
}
