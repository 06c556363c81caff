package metric

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError signals that a metric's Value field does not decode under its
// declared type. Aggregators that can tolerate missing data skip the record;
// callers that need a default choose their own fallback.
type ParseError struct {
	Type Type
	Raw  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("metric value %q is not a valid %s reading", e.Raw, e.Type)
}

// ParseNumeric decodes the value of a numeric metric type. It is pure: the
// same input always yields the same output. Malformed input returns a
// *ParseError rather than a silent default. Non-finite values are malformed:
// strconv accepts "NaN" and "Inf", but no reading is non-finite and
// encoding/json cannot marshal such floats back out.
func ParseNumeric(t Type, raw string) (float64, error) {
	if !t.IsNumeric() {
		return 0, &ParseError{Type: t, Raw: raw}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Type: t, Raw: raw}
	}
	return v, nil
}

// EncodeNumeric renders a numeric reading in the shortest form that
// round-trips exactly through ParseNumeric.
func EncodeNumeric(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type BloodPressure struct {
	Systolic  float64 `json:"systolic"`
	Diastolic float64 `json:"diastolic"`
}

// ParseBloodPressure decodes a blood_pressure value. Older records sometimes
// carry malformed or missing payloads, so this is deliberately lenient: on
// any decode failure the caller-supplied fallback is returned instead of an
// error.
func ParseBloodPressure(raw string, fallback BloodPressure) BloodPressure {
	var bp BloodPressure
	if err := json.Unmarshal([]byte(raw), &bp); err != nil {
		return fallback
	}
	return bp
}
