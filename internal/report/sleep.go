package report

import (
	"fmt"
	"time"

	"github.com/helioslabs/vitaltrack/internal/domain/metric"
)

const (
	SleepQualityPoor      = "Poor"
	SleepQualityFair      = "Fair"
	SleepQualityGood      = "Good"
	SleepQualityExcellent = "Excellent"
)

// SleepQuality buckets nightly hours with fixed thresholds:
// <6 Poor, [6,7) Fair, [7,8) Good, >=8 Excellent.
func SleepQuality(hours float64) string {
	switch {
	case hours < 6:
		return SleepQualityPoor
	case hours < 7:
		return SleepQualityFair
	case hours < 8:
		return SleepQualityGood
	default:
		return SleepQualityExcellent
	}
}

type SleepNight struct {
	Label   string  `json:"label"`
	Hours   float64 `json:"hours"`
	Quality string  `json:"quality"`
}

type SleepReport struct {
	Nights []SleepNight `json:"nights"`
	// WeeklyAverage is the arithmetic mean over the last 7 calendar days
	// inclusive of today (the now argument), unrounded. FormatHours rounds
	// for display.
	WeeklyAverage float64 `json:"weekly_average"`
	TotalHours    float64 `json:"total_hours"`
}

// Sleep aggregates nightly sleep readings. Input must be sorted by date
// ascending; unparseable values are skipped. now anchors the weekly-average
// window so the function stays pure.
func Sleep(metrics []metric.HealthMetric, r *DateRange, now time.Time) SleepReport {
	var rep SleepReport

	weekStart := startOfDay(now).AddDate(0, 0, -6)
	var weekTotal float64
	var weekCount int

	for _, m := range metrics {
		if !r.Contains(m.Date) {
			continue
		}
		hours, err := metric.ParseNumeric(m.Type, m.Value)
		if err != nil {
			continue
		}
		rep.Nights = append(rep.Nights, SleepNight{
			Label:   DayLabel(m.Date),
			Hours:   hours,
			Quality: SleepQuality(hours),
		})
		rep.TotalHours += hours

		if !m.Date.Before(weekStart) && m.Date.Before(startOfDay(now).AddDate(0, 0, 1)) {
			weekTotal += hours
			weekCount++
		}
	}

	if weekCount > 0 {
		rep.WeeklyAverage = weekTotal / float64(weekCount)
	}

	return rep
}

// FormatHours renders an hour value the way the dashboard displays it, e.g.
// 7.2857 -> "7.3h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
