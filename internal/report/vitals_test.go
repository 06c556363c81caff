package report

import (
	"testing"
	"time"

	"github.com/helioslabs/vitaltrack/internal/domain/metric"
)

func weightMetric(d time.Time, value string) metric.HealthMetric {
	return metric.HealthMetric{Type: metric.TypeWeight, Value: value, Date: d}
}

func TestWeightReport(t *testing.T) {
	metrics := []metric.HealthMetric{
		weightMetric(day(2026, time.August, 1), "80"),
		weightMetric(day(2026, time.August, 8), "78.5"),
		weightMetric(day(2026, time.August, 15), "77.2"),
	}

	rep := Weight(metrics, nil)

	if len(rep.Points) != 3 {
		t.Fatalf("got %d points, want 3", len(rep.Points))
	}
	if rep.Latest != 77.2 {
		t.Errorf("Latest = %v, want 77.2", rep.Latest)
	}
	if rep.Delta != -2.8 {
		t.Errorf("Delta = %v, want -2.8", rep.Delta)
	}
	wantPct := (77.2 - 80) / 80 * 100
	if diff := rep.ChangePct - wantPct; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("ChangePct = %v, want %v", rep.ChangePct, wantPct)
	}
}

func TestWeightReportSkipsMalformed(t *testing.T) {
	metrics := []metric.HealthMetric{
		weightMetric(day(2026, time.August, 1), "80"),
		weightMetric(day(2026, time.August, 2), "not a number"),
		weightMetric(day(2026, time.August, 3), "79"),
	}

	rep := Weight(metrics, nil)
	if len(rep.Points) != 2 {
		t.Errorf("got %d points, want 2 (malformed skipped)", len(rep.Points))
	}
	if rep.Latest != 79 {
		t.Errorf("Latest = %v, want 79", rep.Latest)
	}
}

func TestWeightReportEmpty(t *testing.T) {
	rep := Weight(nil, nil)
	if len(rep.Points) != 0 || rep.Latest != 0 || rep.Delta != 0 || rep.ChangePct != 0 {
		t.Errorf("empty input should give zero report, got %+v", rep)
	}
}

func bpMetric(d time.Time, value string) metric.HealthMetric {
	return metric.HealthMetric{Type: metric.TypeBloodPressure, Value: value, Date: d}
}

func TestBloodPressureTrend(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"rising", []string{`{"systolic":118,"diastolic":76}`, `{"systolic":125,"diastolic":80}`}, TrendRising},
		{"falling", []string{`{"systolic":130,"diastolic":85}`, `{"systolic":122,"diastolic":80}`}, TrendFalling},
		{"tie is stable", []string{`{"systolic":120,"diastolic":78}`, `{"systolic":120,"diastolic":82}`}, TrendStable},
		{"single reading is stable", []string{`{"systolic":120,"diastolic":80}`}, TrendStable},
		{"no readings is stable", nil, TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := make([]metric.HealthMetric, len(tt.values))
			for i, v := range tt.values {
				metrics[i] = bpMetric(day(2026, time.August, i+1), v)
			}
			rep := BloodPressure(metrics, nil)
			if rep.Trend != tt.want {
				t.Errorf("Trend = %s, want %s", rep.Trend, tt.want)
			}
		})
	}
}

func TestBloodPressureMalformedFallsBackToZero(t *testing.T) {
	metrics := []metric.HealthMetric{
		bpMetric(day(2026, time.August, 1), "120/80"),
	}
	rep := BloodPressure(metrics, nil)

	if len(rep.Points) != 1 {
		t.Fatalf("got %d points, want 1 (fallback, not dropped)", len(rep.Points))
	}
	if rep.Points[0].Systolic != 0 || rep.Points[0].Diastolic != 0 {
		t.Errorf("fallback point = %+v, want all-zero", rep.Points[0])
	}
}

func TestHeartRateStatus(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"72", HeartRateStatusNormal},
		{"60", HeartRateStatusNormal},
		{"100", HeartRateStatusNormal},
		{"55", HeartRateStatusLow},
		{"110", HeartRateStatusHigh},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			metrics := []metric.HealthMetric{
				{Type: metric.TypeHeartRate, Value: tt.value, Date: day(2026, time.August, 1)},
			}
			rep := HeartRate(metrics, nil)
			if rep.Status != tt.want {
				t.Errorf("Status = %s, want %s", rep.Status, tt.want)
			}
		})
	}
}

func TestHeartRateEmpty(t *testing.T) {
	rep := HeartRate(nil, nil)
	if rep.Status != "" {
		t.Errorf("Status = %q, want empty for no data", rep.Status)
	}
}

func TestRound1(t *testing.T) {
	if got := Round1(-2.789); got != -2.8 {
		t.Errorf("Round1(-2.789) = %v, want -2.8", got)
	}
	if got := Round1(1.04); got != 1.0 {
		t.Errorf("Round1(1.04) = %v, want 1.0", got)
	}
}
