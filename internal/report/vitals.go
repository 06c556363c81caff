package report

import (
	"math"

	"github.com/helioslabs/vitaltrack/internal/domain/metric"
)

// WeightReport is the chart series plus headline stats for the weight card.
type WeightReport struct {
	Points []Point `json:"points"`
	// Latest is the most recent reading in range; zero when Points is empty.
	Latest float64 `json:"latest"`
	// ChangePct is percent change of the latest reading vs the first in range.
	ChangePct float64 `json:"change_pct"`
	// Delta is latest minus first, rounded to 1 decimal.
	Delta float64 `json:"delta"`
}

// Weight aggregates weight readings. Input must be sorted by date ascending;
// unparseable values are skipped, not defaulted.
func Weight(metrics []metric.HealthMetric, r *DateRange) WeightReport {
	var rep WeightReport

	for _, m := range metrics {
		if !r.Contains(m.Date) {
			continue
		}
		v, err := metric.ParseNumeric(m.Type, m.Value)
		if err != nil {
			continue
		}
		rep.Points = append(rep.Points, Point{Label: DayLabel(m.Date), Value: v})
	}

	if len(rep.Points) == 0 {
		return rep
	}

	first := rep.Points[0].Value
	rep.Latest = rep.Points[len(rep.Points)-1].Value
	rep.Delta = Round1(rep.Latest - first)
	if first != 0 {
		rep.ChangePct = (rep.Latest - first) / first * 100
	}

	return rep
}

// BPPoint pairs the systolic and diastolic readings of one measurement.
type BPPoint struct {
	Label     string  `json:"label"`
	Systolic  float64 `json:"systolic"`
	Diastolic float64 `json:"diastolic"`
}

const (
	TrendStable  = "stable"
	TrendRising  = "rising"
	TrendFalling = "falling"
)

type BloodPressureReport struct {
	Points []BPPoint `json:"points"`
	// Trend compares the systolic of the latest two readings only; a tie or
	// fewer than two readings is stable.
	Trend string `json:"trend"`
}

// BloodPressure aggregates blood pressure readings. Malformed payloads fall
// back to an all-zero reading for display rather than being dropped, since
// older records are known to carry absent payloads.
func BloodPressure(metrics []metric.HealthMetric, r *DateRange) BloodPressureReport {
	rep := BloodPressureReport{Trend: TrendStable}

	for _, m := range metrics {
		if !r.Contains(m.Date) {
			continue
		}
		bp := metric.ParseBloodPressure(m.Value, metric.BloodPressure{})
		rep.Points = append(rep.Points, BPPoint{
			Label:     DayLabel(m.Date),
			Systolic:  bp.Systolic,
			Diastolic: bp.Diastolic,
		})
	}

	if n := len(rep.Points); n >= 2 {
		prev, last := rep.Points[n-2].Systolic, rep.Points[n-1].Systolic
		switch {
		case last > prev:
			rep.Trend = TrendRising
		case last < prev:
			rep.Trend = TrendFalling
		}
	}

	return rep
}

// Display-only heart rate band; readings outside 60-100 bpm are flagged.
const (
	HeartRateNormalMin = 60.0
	HeartRateNormalMax = 100.0
)

const (
	HeartRateStatusNormal = "normal"
	HeartRateStatusLow    = "low"
	HeartRateStatusHigh   = "high"
)

type HeartRateReport struct {
	Points []Point `json:"points"`
	Latest float64 `json:"latest"`
	// Status classifies the latest reading against the fixed normal band;
	// empty when there is no data.
	Status string `json:"status,omitempty"`
}

// HeartRate aggregates heart rate readings. Input must be sorted by date
// ascending; unparseable values are skipped.
func HeartRate(metrics []metric.HealthMetric, r *DateRange) HeartRateReport {
	var rep HeartRateReport

	for _, m := range metrics {
		if !r.Contains(m.Date) {
			continue
		}
		v, err := metric.ParseNumeric(m.Type, m.Value)
		if err != nil {
			continue
		}
		rep.Points = append(rep.Points, Point{Label: DayLabel(m.Date), Value: v})
	}

	if len(rep.Points) == 0 {
		return rep
	}

	rep.Latest = rep.Points[len(rep.Points)-1].Value
	switch {
	case rep.Latest < HeartRateNormalMin:
		rep.Status = HeartRateStatusLow
	case rep.Latest > HeartRateNormalMax:
		rep.Status = HeartRateStatusHigh
	default:
		rep.Status = HeartRateStatusNormal
	}

	return rep
}

// Round1 rounds to one decimal place for display deltas.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
