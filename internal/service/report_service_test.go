package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/helioslabs/vitaltrack/internal/domain"
	"github.com/helioslabs/vitaltrack/internal/domain/exercise"
	"github.com/helioslabs/vitaltrack/internal/domain/meal"
	"github.com/helioslabs/vitaltrack/internal/domain/metric"
)

type fakeUserRepo struct {
	user *domain.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*domain.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, ErrUserNotFound
	}
	return r.user, nil
}

func (r *fakeUserRepo) UpdateTargets(_ context.Context, _ uint, _ *TargetsUpdate) (*domain.User, error) {
	return r.user, nil
}

type fakeMetricRepo struct {
	metrics []metric.HealthMetric
}

func (r *fakeMetricRepo) Create(_ context.Context, _ *metric.HealthMetric) error { return nil }
func (r *fakeMetricRepo) GetByID(_ context.Context, _ uint) (*metric.HealthMetric, error) {
	return nil, metric.ErrMetricNotFound
}
func (r *fakeMetricRepo) Update(_ context.Context, _ uint, _ *metric.UpdateMetricCommand) (*metric.HealthMetric, error) {
	return nil, metric.ErrMetricNotFound
}
func (r *fakeMetricRepo) SoftDelete(_ context.Context, _ uint) error { return nil }
func (r *fakeMetricRepo) List(_ context.Context, _ *metric.ListMetricsQuery) (*metric.PagedMetrics, error) {
	return &metric.PagedMetrics{}, nil
}

func (r *fakeMetricRepo) ListByType(_ context.Context, userID uint, t metric.Type, from, to *time.Time) ([]metric.HealthMetric, error) {
	var out []metric.HealthMetric
	for _, m := range r.metrics {
		if m.UserID != userID || m.Type != t {
			continue
		}
		if from != nil && m.Date.Before(*from) {
			continue
		}
		if to != nil && m.Date.After(*to) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeMealRepo struct {
	meals []meal.Meal
}

func (r *fakeMealRepo) Create(_ context.Context, _ *meal.Meal) error { return nil }
func (r *fakeMealRepo) GetByID(_ context.Context, _ uint) (*meal.Meal, error) {
	return nil, meal.ErrMealNotFound
}
func (r *fakeMealRepo) Update(_ context.Context, _ uint, _ *meal.UpdateMealCommand) (*meal.Meal, error) {
	return nil, meal.ErrMealNotFound
}
func (r *fakeMealRepo) SoftDelete(_ context.Context, _ uint) error { return nil }
func (r *fakeMealRepo) List(_ context.Context, _ *meal.ListMealsQuery) (*meal.PagedMeals, error) {
	return &meal.PagedMeals{}, nil
}

func (r *fakeMealRepo) ListByDate(_ context.Context, userID uint, from, to *time.Time) ([]meal.Meal, error) {
	var out []meal.Meal
	for _, m := range r.meals {
		if m.UserID != userID {
			continue
		}
		if from != nil && m.Date.Before(*from) {
			continue
		}
		if to != nil && m.Date.After(*to) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeExerciseRepo struct {
	logs []exercise.Log
}

func (r *fakeExerciseRepo) Create(_ context.Context, _ *exercise.Log) error { return nil }
func (r *fakeExerciseRepo) GetByID(_ context.Context, _ uint) (*exercise.Log, error) {
	return nil, exercise.ErrLogNotFound
}
func (r *fakeExerciseRepo) Update(_ context.Context, _ uint, _ *exercise.UpdateLogCommand) (*exercise.Log, error) {
	return nil, exercise.ErrLogNotFound
}
func (r *fakeExerciseRepo) SoftDelete(_ context.Context, _ uint) error { return nil }
func (r *fakeExerciseRepo) List(_ context.Context, _ *exercise.ListLogsQuery) (*exercise.PagedLogs, error) {
	return &exercise.PagedLogs{}, nil
}

func (r *fakeExerciseRepo) ListByDate(_ context.Context, userID uint, from, to *time.Time) ([]exercise.Log, error) {
	var out []exercise.Log
	for _, l := range r.logs {
		if l.UserID != userID {
			continue
		}
		if from != nil && l.Date.Before(*from) {
			continue
		}
		if to != nil && l.Date.After(*to) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func newTestReportService(users *fakeUserRepo, metrics *fakeMetricRepo, meals *fakeMealRepo, logs *fakeExerciseRepo, now time.Time) *ReportService {
	goals := newFakeGoalRepo()
	svc := NewReportService(users, metrics, meals, logs, goals, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func day(d int) time.Time {
	return time.Date(2024, 6, d, 12, 0, 0, 0, time.UTC)
}

func TestReportService_ScorePerfectWeek(t *testing.T) {
	now := day(8)
	users := &fakeUserRepo{user: &domain.User{
		ID:           1,
		TargetWeight: 70,
		TargetSleep:  8,
	}}

	metrics := &fakeMetricRepo{}
	logs := &fakeExerciseRepo{}
	meals := &fakeMealRepo{}
	for d := 1; d <= 7; d++ {
		metrics.metrics = append(metrics.metrics,
			metric.HealthMetric{UserID: 1, Type: metric.TypeWeight, Value: "70", Date: day(d)},
			metric.HealthMetric{UserID: 1, Type: metric.TypeSleep, Value: "8", Date: day(d)},
		)
		logs.logs = append(logs.logs, exercise.Log{UserID: 1, Type: "running", DurationMins: 30, Date: day(d)})
		meals.meals = append(meals.meals, meal.Meal{UserID: 1, Protein: 12, Date: day(d)})
	}

	svc := newTestReportService(users, metrics, meals, logs, now)

	score, err := svc.Score(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 100, score.Total)
	assert.InDelta(t, 100, score.Weight, 0.001)
	assert.InDelta(t, 100, score.Activity, 0.001)
	assert.InDelta(t, 100, score.Sleep, 0.001)
	assert.InDelta(t, 100, score.Nutrition, 0.001)
}

func TestReportService_ScoreEmptyUserIsZero(t *testing.T) {
	users := &fakeUserRepo{user: &domain.User{ID: 1}}
	svc := newTestReportService(users, &fakeMetricRepo{}, &fakeMealRepo{}, &fakeExerciseRepo{}, day(8))

	score, err := svc.Score(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, score.Total)
}

func TestReportService_ScoreUnknownUser(t *testing.T) {
	svc := newTestReportService(&fakeUserRepo{}, &fakeMetricRepo{}, &fakeMealRepo{}, &fakeExerciseRepo{}, day(8))

	_, err := svc.Score(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestReportService_BuildDashboard(t *testing.T) {
	now := day(8)
	users := &fakeUserRepo{user: &domain.User{ID: 1, TargetWeight: 70, TargetSleep: 8}}

	metrics := &fakeMetricRepo{metrics: []metric.HealthMetric{
		{UserID: 1, Type: metric.TypeWeight, Value: "72.5", Date: day(1)},
		{UserID: 1, Type: metric.TypeWeight, Value: "71", Date: day(5)},
		{UserID: 1, Type: metric.TypeBloodPressure, Value: `{"systolic":120,"diastolic":80}`, Date: day(2)},
		{UserID: 1, Type: metric.TypeBloodPressure, Value: `{"systolic":118,"diastolic":78}`, Date: day(6)},
		{UserID: 1, Type: metric.TypeHeartRate, Value: "65", Date: day(3)},
		{UserID: 1, Type: metric.TypeSleep, Value: "7.5", Date: day(4)},
	}}
	meals := &fakeMealRepo{meals: []meal.Meal{
		{UserID: 1, Calories: 600, Protein: 40, Carbs: 50, Fat: 20, Date: day(3)},
	}}
	logs := &fakeExerciseRepo{logs: []exercise.Log{
		{UserID: 1, Type: "cycling", DurationMins: 45, Date: day(4)},
	}}

	svc := newTestReportService(users, metrics, meals, logs, now)

	d, err := svc.BuildDashboard(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, d.Weight.Points, 2)
	assert.InDelta(t, 71, d.Weight.Latest, 0.001)
	assert.Equal(t, "falling", d.BloodPressure.Trend)
	assert.Equal(t, "normal", d.HeartRate.Status)
	assert.Len(t, d.Sleep.Nights, 1)
	assert.Equal(t, "Good", d.Sleep.Nights[0].Quality)
	assert.InDelta(t, 600, d.Nutrition.TotalCalories, 0.001)
	assert.Equal(t, 45, d.Exercise.TotalMinutes)
	assert.Empty(t, d.OpenGoals)
}
