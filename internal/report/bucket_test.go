package report

import (
	"testing"
	"time"
)

type dated struct {
	at    time.Time
	value float64
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestGroupByEncounterOrder(t *testing.T) {
	// Month labels would sort "Aug 2026" before "Jul 2026" lexically; the
	// buckets must keep first-seen chronological order instead.
	items := []dated{
		{day(2026, time.July, 3), 1},
		{day(2026, time.July, 20), 2},
		{day(2026, time.August, 1), 3},
		{day(2026, time.August, 15), 4},
	}

	buckets := GroupBy(items, func(d dated) time.Time { return d.at }, MonthKey, nil)

	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if buckets[0].Label != "Jul 2026" || buckets[1].Label != "Aug 2026" {
		t.Errorf("bucket order = [%s, %s], want [Jul 2026, Aug 2026]", buckets[0].Label, buckets[1].Label)
	}
	if len(buckets[0].Items) != 2 || len(buckets[1].Items) != 2 {
		t.Errorf("bucket sizes = %d, %d, want 2, 2", len(buckets[0].Items), len(buckets[1].Items))
	}
}

func TestGroupByEmptyInput(t *testing.T) {
	buckets := GroupBy(nil, func(d dated) time.Time { return d.at }, DayKey, nil)
	if len(buckets) != 0 {
		t.Errorf("got %d buckets, want 0", len(buckets))
	}
}

func TestGroupByRangeExcludesEverything(t *testing.T) {
	items := []dated{
		{day(2026, time.July, 3), 1},
		{day(2026, time.July, 4), 2},
	}
	r := &DateRange{
		Start: day(2027, time.January, 1),
		End:   day(2027, time.December, 31),
	}

	buckets := GroupBy(items, func(d dated) time.Time { return d.at }, DayKey, r)
	if len(buckets) != 0 {
		t.Errorf("got %d buckets, want 0 for a range that excludes all records", len(buckets))
	}
}

func TestDateRangeInclusive(t *testing.T) {
	start := day(2026, time.August, 1)
	end := day(2026, time.August, 31)
	r := &DateRange{Start: start, End: end}

	if !r.Contains(start) {
		t.Error("range start is inclusive")
	}
	if !r.Contains(end) {
		t.Error("range end is inclusive")
	}
	if r.Contains(start.Add(-time.Second)) {
		t.Error("before start should be excluded")
	}
	if r.Contains(end.Add(time.Second)) {
		t.Error("after end should be excluded")
	}
}

func TestDateRangeNilAndOpenEnds(t *testing.T) {
	var r *DateRange
	if !r.Contains(day(1990, time.January, 1)) {
		t.Error("nil range contains everything")
	}

	openEnd := &DateRange{Start: day(2026, time.August, 1)}
	if !openEnd.Contains(day(2030, time.January, 1)) {
		t.Error("zero End leaves the range open-ended")
	}
	if openEnd.Contains(day(2026, time.July, 31)) {
		t.Error("Start still applies")
	}
}

func TestReduce(t *testing.T) {
	items := []dated{
		{day(2026, time.August, 1), 2},
		{day(2026, time.August, 1), 3},
		{day(2026, time.August, 2), 10},
	}
	buckets := GroupBy(items, func(d dated) time.Time { return d.at }, DayKey, nil)

	points := Reduce(buckets, func(ds []dated) float64 {
		total := 0.0
		for _, d := range ds {
			total += d.value
		}
		return total
	})

	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Value != 5 || points[1].Value != 10 {
		t.Errorf("values = %v, %v, want 5, 10", points[0].Value, points[1].Value)
	}
}

func TestSumAndMean(t *testing.T) {
	if got := Sum([]float64{1, 2, 3}); got != 6 {
		t.Errorf("Sum = %v, want 6", got)
	}
	if got := Mean([]float64{1, 2, 3}); got != 2 {
		t.Errorf("Mean = %v, want 2", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
}
