// Package report is the aggregation engine: pure functions that turn raw
// record collections into chart-ready series, summary statistics and a
// composite health score. Nothing here touches storage or holds state;
// callers hand in already-materialized, date-ascending slices.
package report

import (
	"time"
)

// DateRange is an inclusive [Start, End] filter. A nil *DateRange means
// unbounded; a zero Start or End leaves that side open.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r *DateRange) Contains(t time.Time) bool {
	if r == nil {
		return true
	}
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// Point is one chart datum.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Bucket is a labeled group of records sharing a time-derived key.
type Bucket[T any] struct {
	Label string
	Items []T
}

// GroupBy partitions items into buckets keyed by keyOf(dateOf(item)),
// dropping items outside the range. Buckets appear in first-seen encounter
// order, never sorted by label: for date-ascending input that is
// chronological order. Empty input yields an empty (nil) slice.
func GroupBy[T any](items []T, dateOf func(T) time.Time, keyOf func(time.Time) string, r *DateRange) []Bucket[T] {
	var buckets []Bucket[T]
	index := make(map[string]int)

	for _, item := range items {
		d := dateOf(item)
		if !r.Contains(d) {
			continue
		}
		key := keyOf(d)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket[T]{Label: key})
		}
		buckets[i].Items = append(buckets[i].Items, item)
	}

	return buckets
}

// Reduce collapses each bucket to a single point with a caller-supplied
// aggregate (sum, mean, last, ...).
func Reduce[T any](buckets []Bucket[T], aggregate func([]T) float64) []Point {
	points := make([]Point, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, Point{Label: b.Label, Value: aggregate(b.Items)})
	}
	return points
}

// Sum and Mean are the common bucket aggregates.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// DayKey and MonthKey are the bucket keys the dashboard charts use.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func MonthKey(t time.Time) string {
	return t.Format("Jan 2006")
}

// DayLabel is the short display form used on chart axes.
func DayLabel(t time.Time) string {
	return t.Format("Jan 2")
}
