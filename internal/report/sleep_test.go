package report

import (
	"testing"
	"time"

	"github.com/helioslabs/vitaltrack/internal/domain/metric"
)

func TestSleepQualityBoundaries(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{5.99, SleepQualityPoor},
		{6.0, SleepQualityFair},
		{6.99, SleepQualityFair},
		{7.0, SleepQualityGood},
		{7.99, SleepQualityGood},
		{8.0, SleepQualityExcellent},
		{9.5, SleepQualityExcellent},
		{0, SleepQualityPoor},
	}

	for _, tt := range tests {
		if got := SleepQuality(tt.hours); got != tt.want {
			t.Errorf("SleepQuality(%v) = %s, want %s", tt.hours, got, tt.want)
		}
	}
}

func TestSleepWeeklyAverage(t *testing.T) {
	now := day(2026, time.August, 20)
	hours := []float64{6, 7, 8, 7, 6, 8, 9}

	metrics := make([]metric.HealthMetric, len(hours))
	for i, h := range hours {
		metrics[i] = metric.HealthMetric{
			Type:  metric.TypeSleep,
			Value: metric.EncodeNumeric(h),
			Date:  now.AddDate(0, 0, i-6), // last 7 calendar days inclusive of today
		}
	}

	rep := Sleep(metrics, nil, now)

	want := 51.0 / 7.0
	if diff := rep.WeeklyAverage - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("WeeklyAverage = %v, want %v", rep.WeeklyAverage, want)
	}
	if got := FormatHours(rep.WeeklyAverage); got != "7.3h" {
		t.Errorf("FormatHours = %q, want \"7.3h\"", got)
	}
}

func TestSleepWeeklyAverageExcludesOlderNights(t *testing.T) {
	now := day(2026, time.August, 20)
	metrics := []metric.HealthMetric{
		{Type: metric.TypeSleep, Value: "2", Date: now.AddDate(0, 0, -10)}, // outside window
		{Type: metric.TypeSleep, Value: "8", Date: now.AddDate(0, 0, -1)},
		{Type: metric.TypeSleep, Value: "6", Date: now},
	}

	rep := Sleep(metrics, nil, now)

	if rep.WeeklyAverage != 7 {
		t.Errorf("WeeklyAverage = %v, want 7 (old night excluded)", rep.WeeklyAverage)
	}
	if len(rep.Nights) != 3 {
		t.Errorf("Nights = %d, want 3 (series keeps all in-range nights)", len(rep.Nights))
	}
}

func TestSleepNightQualities(t *testing.T) {
	now := day(2026, time.August, 20)
	metrics := []metric.HealthMetric{
		{Type: metric.TypeSleep, Value: "5.5", Date: now.AddDate(0, 0, -1)},
		{Type: metric.TypeSleep, Value: "8.2", Date: now},
	}

	rep := Sleep(metrics, nil, now)

	if rep.Nights[0].Quality != SleepQualityPoor {
		t.Errorf("first night quality = %s, want Poor", rep.Nights[0].Quality)
	}
	if rep.Nights[1].Quality != SleepQualityExcellent {
		t.Errorf("second night quality = %s, want Excellent", rep.Nights[1].Quality)
	}
}

func TestSleepEmptyAndMalformed(t *testing.T) {
	now := day(2026, time.August, 20)

	rep := Sleep(nil, nil, now)
	if len(rep.Nights) != 0 || rep.WeeklyAverage != 0 {
		t.Errorf("empty input should give zero report, got %+v", rep)
	}

	rep = Sleep([]metric.HealthMetric{
		{Type: metric.TypeSleep, Value: "eight hours", Date: now},
	}, nil, now)
	if len(rep.Nights) != 0 {
		t.Errorf("malformed value should be skipped, got %d nights", len(rep.Nights))
	}
}
